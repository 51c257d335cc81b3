package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	SlotID     int64 `json:"slotId"`
	BusinessID int64 `json:"businessId"`
	ServiceID  int64 `json:"serviceId"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	WorkerID     int64   `json:"workerId"`
	BusinessID   int64   `json:"businessId"`
	ServiceID    int64   `json:"serviceId"`
	CustomerID   int64   `json:"customerId"`
	SlotID       int64   `json:"slotId"`
	StartsAt     string  `json:"startsAt"`
	EndsAt       string  `json:"endsAt"`
	Status       string  `json:"status"`
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Заказчиком выступает аутентифицированный пользователь
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) *createBooking.Request {
	return &createBooking.Request{
		SlotID:     r.SlotID,
		BusinessID: r.BusinessID,
		ServiceID:  r.ServiceID,
		CustomerID: customerID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		WorkerID:     resp.WorkerID,
		BusinessID:   resp.BusinessID,
		ServiceID:    resp.ServiceID,
		CustomerID:   resp.CustomerID,
		SlotID:       resp.SlotID,
		StartsAt:     resp.StartsAt.Format(time.RFC3339),
		EndsAt:       resp.EndsAt.Format(time.RFC3339),
		Status:       resp.Status,
		ServiceName:  resp.ServiceName,
		ServicePrice: resp.ServicePrice,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
