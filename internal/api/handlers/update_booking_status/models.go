package update_booking_status

import (
	"time"

	updateBookingStatus "github.com/m04kA/SMC-AvailabilityService/internal/usecase/update_booking_status"
)

// UpdateBookingStatusRequest HTTP request model
type UpdateBookingStatusRequest struct {
	Status string `json:"status"` // confirmed | completed | no_show
}

// UpdateBookingStatusResponse HTTP response model
type UpdateBookingStatusResponse struct {
	ID         int64  `json:"id"`
	WorkerID   int64  `json:"workerId"`
	BusinessID int64  `json:"businessId"`
	SlotID     int64  `json:"slotId"`
	Status     string `json:"status"`
	UpdatedAt  string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingStatusRequest) ToUseCaseRequest(bookingID int64) *updateBookingStatus.Request {
	return &updateBookingStatus.Request{
		BookingID: bookingID,
		Status:    r.Status,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBookingStatus.Response) *UpdateBookingStatusResponse {
	return &UpdateBookingStatusResponse{
		ID:         resp.ID,
		WorkerID:   resp.WorkerID,
		BusinessID: resp.BusinessID,
		SlotID:     resp.SlotID,
		Status:     resp.Status,
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
