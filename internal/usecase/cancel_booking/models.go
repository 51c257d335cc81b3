package cancel_booking

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request запрос на отмену бронирования
type Request struct {
	BookingID   int64
	Reason      string
	CancelledBy domain.CancelActor
}

// Response данные отмененного бронирования
type Response struct {
	ID                 int64
	WorkerID           int64
	BusinessID         int64
	SlotID             int64
	Status             string
	CancellationReason string
	CancelledAt        time.Time
	UpdatedAt          time.Time
}
