package update_booking_status

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Напрямую выставляются только статусы жизненного цикла визита: отмена идет
// через cancel с обязательной причиной, rescheduled - через reschedule
func validateRequest(req *Request) (domain.BookingStatus, error) {
	if req.BookingID <= 0 {
		return "", fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	status := domain.BookingStatus(req.Status)
	if !domain.ValidBookingStatus(status) {
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	switch status {
	case domain.BookingStatusConfirmed, domain.BookingStatusCompleted, domain.BookingStatusNoShow:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrStatusNotAllowed, status)
	}
}
