package regenerate_slots

import (
	"sort"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// segment непрерывный рабочий отрезок дня в локальном времени, [start, end)
type segment struct {
	start types.TimeString
	end   types.TimeString
}

// subtractBreaks вычитает перерывы из рабочего окна, возвращая упорядоченный
// список непересекающихся рабочих отрезков
//
// Алгоритм: начинаем с единственного отрезка [start, end); каждый перерыв
// в порядке начала заменяет пересекаемые отрезки максимум двумя под-отрезками
// (до начала перерыва и после его конца), пустые под-отрезки отбрасываются.
// Перерывы сортируются по началу, поэтому результат не зависит от порядка
// на входе; попарное непересечение перерывов проверено при сохранении правила.
func subtractBreaks(windowStart, windowEnd types.TimeString, breaks []domain.BreakWindow) []segment {
	segments := []segment{{start: windowStart, end: windowEnd}}

	sorted := make([]domain.BreakWindow, len(breaks))
	copy(sorted, breaks)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime.IsBefore(sorted[j].StartTime)
	})

	for _, b := range sorted {
		next := make([]segment, 0, len(segments)+1)

		for _, seg := range segments {
			// Перерыв не задевает отрезок - отрезок остается как есть
			if !b.StartTime.IsBefore(seg.end) || !b.EndTime.IsAfter(seg.start) {
				next = append(next, seg)
				continue
			}

			// Часть отрезка до начала перерыва
			if b.StartTime.IsAfter(seg.start) {
				next = append(next, segment{start: seg.start, end: b.StartTime})
			}

			// Часть отрезка после конца перерыва
			if b.EndTime.IsBefore(seg.end) {
				next = append(next, segment{start: b.EndTime, end: seg.end})
			}
		}

		segments = next
	}

	return segments
}

// sliceSegment нарезает рабочий отрезок на последовательные старты слотов
// фиксированной длительности; неполный хвост короче слота отбрасывается
func sliceSegment(seg segment, durationMinutes int) []types.TimeString {
	if durationMinutes <= 0 {
		return nil
	}

	starts := make([]types.TimeString, 0)
	current := seg.start

	for {
		slotEnd, err := current.AddMinutes(durationMinutes)
		if err != nil || slotEnd.IsAfter(seg.end) {
			break
		}

		starts = append(starts, current)
		current = slotEnd
	}

	return starts
}
