package regenerate_slots

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Ошибки диапазона и длительности отсекаются до любой работы с расписанием
func validateRequest(req *Request, maxRangeDays int) error {
	if req.WorkerID <= 0 {
		return fmt.Errorf("%w: workerID must be positive", ErrInvalidInput)
	}

	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.ScheduleID != nil && *req.ScheduleID <= 0 {
		return fmt.Errorf("%w: scheduleID must be positive", ErrInvalidInput)
	}

	if req.SlotDurationMinutes < domain.MinSlotDurationMinutes || req.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be in [%d, %d]",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidRange)
	}

	rangeDays := rangeLengthDays(req)
	if rangeDays > maxRangeDays {
		return fmt.Errorf("%w: range is %d days, maximum is %d", ErrInvalidRange, rangeDays, maxRangeDays)
	}

	return nil
}

// rangeLengthDays возвращает длину диапазона в днях (границы включительно)
func rangeLengthDays(req *Request) int {
	start := dateOnly(req.StartDate)
	end := dateOnly(req.EndDate)
	return int(end.Sub(start).Hours()/24) + 1
}
