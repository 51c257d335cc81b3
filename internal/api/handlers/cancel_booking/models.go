package cancel_booking

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	cancelBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/cancel_booking"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
	CancelledBy        string `json:"cancelledBy"` // customer | vendor
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	ID                 int64  `json:"id"`
	WorkerID           int64  `json:"workerId"`
	BusinessID         int64  `json:"businessId"`
	SlotID             int64  `json:"slotId"`
	Status             string `json:"status"`
	CancellationReason string `json:"cancellationReason"`
	CancelledAt        string `json:"cancelledAt"`
	UpdatedAt          string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelBookingRequest) ToUseCaseRequest(bookingID int64) *cancelBooking.Request {
	return &cancelBooking.Request{
		BookingID:   bookingID,
		Reason:      r.CancellationReason,
		CancelledBy: domain.CancelActor(r.CancelledBy),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		ID:                 resp.ID,
		WorkerID:           resp.WorkerID,
		BusinessID:         resp.BusinessID,
		SlotID:             resp.SlotID,
		Status:             resp.Status,
		CancellationReason: resp.CancellationReason,
		CancelledAt:        resp.CancelledAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
