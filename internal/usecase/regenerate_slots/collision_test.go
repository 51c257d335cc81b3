package regenerate_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func slotAt(hour, minute, durationMinutes int) *domain.AvailabilitySlot {
	start := time.Date(2025, 6, 2, hour, minute, 0, 0, time.UTC)
	return &domain.AvailabilitySlot{
		StartsAt: start,
		EndsAt:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

func TestOverlapsAnyFixed(t *testing.T) {
	fixed := []*domain.AvailabilitySlot{slotAt(10, 0, 60)}

	c := slotAt(10, 30, 30)
	assert.True(t, overlapsAnyFixed(c.StartsAt, c.EndsAt, fixed))

	c = slotAt(9, 30, 60)
	assert.True(t, overlapsAnyFixed(c.StartsAt, c.EndsAt, fixed))

	// Соприкосновение границами при полуоткрытых интервалах
	c = slotAt(11, 0, 30)
	assert.False(t, overlapsAnyFixed(c.StartsAt, c.EndsAt, fixed))

	c = slotAt(9, 0, 60)
	assert.False(t, overlapsAnyFixed(c.StartsAt, c.EndsAt, fixed))

	c = slotAt(12, 0, 30)
	assert.False(t, overlapsAnyFixed(c.StartsAt, c.EndsAt, nil))
}

func TestFilterCollisions(t *testing.T) {
	candidates := []*domain.AvailabilitySlot{
		slotAt(9, 0, 30),
		slotAt(9, 30, 30),
		slotAt(10, 0, 30),
		slotAt(10, 30, 30),
	}

	t.Run("без фиксированных слотов кандидаты проходят как есть", func(t *testing.T) {
		got := filterCollisions(candidates, nil)
		assert.Equal(t, candidates, got)
	})

	t.Run("пересекающиеся кандидаты отбрасываются", func(t *testing.T) {
		fixed := []*domain.AvailabilitySlot{slotAt(9, 45, 30)}

		got := filterCollisions(candidates, fixed)
		assert.Len(t, got, 2)
		assert.Equal(t, candidates[0], got[0])
		assert.Equal(t, candidates[3], got[1])
	})

	t.Run("смежный фиксированный слот никого не вытесняет", func(t *testing.T) {
		fixed := []*domain.AvailabilitySlot{slotAt(11, 0, 30)}

		got := filterCollisions(candidates, fixed)
		assert.Len(t, got, 4)
	})
}
