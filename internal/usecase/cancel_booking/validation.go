package cancel_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Причина отмены обязательна и обрезается до допустимой длины
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	req.Reason = strings.TrimSpace(req.Reason)
	if req.Reason == "" {
		return fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}
	// Обрезаем по рунам, срез по байтам может разорвать кириллицу
	if utf8.RuneCountInString(req.Reason) > domain.MaxCancellationReasonLength {
		req.Reason = string([]rune(req.Reason)[:domain.MaxCancellationReasonLength])
	}

	switch req.CancelledBy {
	case domain.CancelActorCustomer, domain.CancelActorVendor:
	default:
		return fmt.Errorf("%w: cancelledBy must be %q or %q", ErrInvalidInput,
			domain.CancelActorCustomer, domain.CancelActorVendor)
	}

	return nil
}
