package regenerate_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// overlapsAnyFixed проверяет пересечение кандидата [start, end) с любым
// фиксированным слотом. Полуоткрытые интервалы: соприкосновение границами
// пересечением не считается
func overlapsAnyFixed(start, end time.Time, fixed []*domain.AvailabilitySlot) bool {
	for _, f := range fixed {
		if f.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// filterCollisions отбрасывает кандидатов, пересекающих фиксированные слоты
// Единственная защита регенерации от затирания ручных и забронированных слотов
func filterCollisions(candidates []*domain.AvailabilitySlot, fixed []*domain.AvailabilitySlot) []*domain.AvailabilitySlot {
	if len(fixed) == 0 {
		return candidates
	}

	survivors := make([]*domain.AvailabilitySlot, 0, len(candidates))
	for _, c := range candidates {
		if !overlapsAnyFixed(c.StartsAt, c.EndsAt, fixed) {
			survivors = append(survivors, c)
		}
	}
	return survivors
}
