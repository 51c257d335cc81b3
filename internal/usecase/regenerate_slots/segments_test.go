package regenerate_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func TestSubtractBreaks(t *testing.T) {
	tests := []struct {
		name   string
		start  types.TimeString
		end    types.TimeString
		breaks []domain.BreakWindow
		want   []segment
	}{
		{
			name:  "no breaks",
			start: "09:00", end: "17:00",
			want: []segment{{start: "09:00", end: "17:00"}},
		},
		{
			name:  "single break splits window",
			start: "09:00", end: "17:00",
			breaks: []domain.BreakWindow{{StartTime: "12:00", EndTime: "13:00"}},
			want: []segment{
				{start: "09:00", end: "12:00"},
				{start: "13:00", end: "17:00"},
			},
		},
		{
			name:  "two breaks in reverse order",
			start: "09:00", end: "18:00",
			breaks: []domain.BreakWindow{
				{StartTime: "15:00", EndTime: "15:30"},
				{StartTime: "12:00", EndTime: "13:00"},
			},
			want: []segment{
				{start: "09:00", end: "12:00"},
				{start: "13:00", end: "15:00"},
				{start: "15:30", end: "18:00"},
			},
		},
		{
			name:  "break at window start",
			start: "09:00", end: "17:00",
			breaks: []domain.BreakWindow{{StartTime: "09:00", EndTime: "10:00"}},
			want:   []segment{{start: "10:00", end: "17:00"}},
		},
		{
			name:  "break at window end",
			start: "09:00", end: "17:00",
			breaks: []domain.BreakWindow{{StartTime: "16:00", EndTime: "17:00"}},
			want:   []segment{{start: "09:00", end: "16:00"}},
		},
		{
			name:  "break covers whole window",
			start: "09:00", end: "17:00",
			breaks: []domain.BreakWindow{{StartTime: "09:00", EndTime: "17:00"}},
			want:   []segment{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := subtractBreaks(tt.start, tt.end, tt.breaks)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSliceSegment(t *testing.T) {
	// [09:00, 12:00) по 25 минут: хвост 11:55-12:00 отбрасывается
	starts := sliceSegment(segment{start: "09:00", end: "12:00"}, 25)
	require.Len(t, starts, 7)
	assert.Equal(t, types.TimeString("09:00"), starts[0])
	assert.Equal(t, types.TimeString("11:30"), starts[6])

	// Ровное деление без остатка
	starts = sliceSegment(segment{start: "09:00", end: "11:00"}, 30)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30"}, starts)

	// Отрезок короче слота не дает ни одного старта
	assert.Empty(t, sliceSegment(segment{start: "09:00", end: "09:20"}, 30))

	// Окно до конца суток
	starts = sliceSegment(segment{start: "23:00", end: "24:00"}, 30)
	assert.Equal(t, []types.TimeString{"23:00", "23:30"}, starts)

	assert.Nil(t, sliceSegment(segment{start: "09:00", end: "17:00"}, 0))
}
