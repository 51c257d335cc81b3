package regenerate_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLocation(t *testing.T) {
	loc, err := resolveLocation("Europe/Moscow")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())

	_, err = resolveLocation("Mars/Olympus")
	assert.ErrorIs(t, err, ErrInvalidTimezone)

	_, err = resolveLocation("")
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestLocalToUTC(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

	// Москва UTC+3 круглый год
	got := localToUTC(date, "09:00", moscow)
	assert.Equal(t, time.Date(2025, 11, 3, 6, 0, 0, 0, time.UTC), got)

	// Конец суток
	got = localToUTC(date, "24:00", moscow)
	assert.Equal(t, time.Date(2025, 11, 3, 21, 0, 0, 0, time.UTC), got)
}

func TestLocalToUTC_DST(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 8 марта 2026: переход на летнее время, 02:00-03:00 не существует
	springForward := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	before := localToUTC(springForward, "01:30", newYork) // EST, UTC-5
	assert.Equal(t, time.Date(2026, 3, 8, 6, 30, 0, 0, time.UTC), before)

	after := localToUTC(springForward, "03:30", newYork) // EDT, UTC-4
	assert.Equal(t, time.Date(2026, 3, 8, 7, 30, 0, 0, time.UTC), after)

	// Слот длиной 30 минут по обе стороны перехода сжимается до нуля или
	// отрицательной длины не получается: границы нормализуются независимо
	gapStart := localToUTC(springForward, "02:00", newYork)
	gapEnd := localToUTC(springForward, "03:00", newYork)
	assert.False(t, gapEnd.Before(gapStart))

	// 1 ноября 2026: переход на зимнее время, 01:00-02:00 повторяется
	fallBack := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	early := localToUTC(fallBack, "00:30", newYork) // EDT, UTC-4
	assert.Equal(t, time.Date(2026, 11, 1, 4, 30, 0, 0, time.UTC), early)

	late := localToUTC(fallBack, "03:00", newYork) // EST, UTC-5
	assert.Equal(t, time.Date(2026, 11, 1, 8, 0, 0, 0, time.UTC), late)
}
