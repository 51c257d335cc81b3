package reschedule_booking

import (
	"time"

	rescheduleBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/reschedule_booking"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	NewSlotID int64 `json:"newSlotId"`
}

// RescheduleBookingResponse HTTP response model
type RescheduleBookingResponse struct {
	ID         int64  `json:"id"`
	WorkerID   int64  `json:"workerId"`
	BusinessID int64  `json:"businessId"`
	SlotID     int64  `json:"slotId"`
	StartsAt   string `json:"startsAt"`
	EndsAt     string `json:"endsAt"`
	Status     string `json:"status"`
	UpdatedAt  string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID int64) *rescheduleBooking.Request {
	return &rescheduleBooking.Request{
		BookingID: bookingID,
		NewSlotID: r.NewSlotID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	return &RescheduleBookingResponse{
		ID:         resp.ID,
		WorkerID:   resp.WorkerID,
		BusinessID: resp.BusinessID,
		SlotID:     resp.SlotID,
		StartsAt:   resp.StartsAt.Format(time.RFC3339),
		EndsAt:     resp.EndsAt.Format(time.RFC3339),
		Status:     resp.Status,
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
