package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение бронирований работника за период
type ListBookingsRequest struct {
	WorkerID   int64     `json:"workerId"`
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	Status     *string   `json:"status,omitempty"`     // Фильтр по статусу (опционально)
	ActiveOnly bool      `json:"activeOnly,omitempty"` // Только активные бронирования
}

// Response модели

// BookingResponse бронирование в ответе API
type BookingResponse struct {
	ID           int64      `json:"id"`
	WorkerID     int64      `json:"workerId"`
	BusinessID   int64      `json:"businessId"`
	ServiceID    int64      `json:"serviceId"`
	CustomerID   int64      `json:"customerId"`
	SlotID       int64      `json:"slotId"`
	StartsAt     time.Time  `json:"startsAt"`
	EndsAt       time.Time  `json:"endsAt"`
	Status       string     `json:"status"`
	ServiceName  string     `json:"serviceName"`
	ServicePrice float64    `json:"servicePrice"`
	CancelledAt  *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !domain.ValidBookingStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// FromDomainBooking конвертирует domain модель в ответ API
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		WorkerID:     b.WorkerID,
		BusinessID:   b.BusinessID,
		ServiceID:    b.ServiceID,
		CustomerID:   b.CustomerID,
		SlotID:       b.SlotID,
		StartsAt:     b.StartsAt,
		EndsAt:       b.EndsAt,
		Status:       string(b.Status),
		ServiceName:  b.ServiceName,
		ServicePrice: b.ServicePrice,
		CancelledAt:  b.CancelledAt,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в ответ API
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}
