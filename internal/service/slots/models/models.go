package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid slot status")
)

// Request модели

// CreateSlotRequest запрос на ручное создание слота
type CreateSlotRequest struct {
	WorkerID   int64     `json:"workerId"`
	BusinessID int64     `json:"businessId"`
	StartsAt   time.Time `json:"startsAt"`
	EndsAt     time.Time `json:"endsAt"`
	Status     *string   `json:"status,omitempty"` // По умолчанию available
}

// ListSlotsRequest запрос на получение слотов работника за период
type ListSlotsRequest struct {
	WorkerID int64     `json:"workerId"`
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
	Status   *string   `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// UpdateSlotRequest запрос на изменение слота
// Допускает смену статуса и/или сдвиг временного окна
type UpdateSlotRequest struct {
	SlotID   int64      `json:"slotId"`
	Status   *string    `json:"status,omitempty"`
	StartsAt *time.Time `json:"startsAt,omitempty"`
	EndsAt   *time.Time `json:"endsAt,omitempty"`
}

// Response модели

// SlotResponse слот в ответе API
type SlotResponse struct {
	ID                   int64     `json:"id"`
	WorkerID             int64     `json:"workerId"`
	BusinessID           int64     `json:"businessId"`
	StartsAt             time.Time `json:"startsAt"`
	EndsAt               time.Time `json:"endsAt"`
	Status               string    `json:"status"`
	GeneratingScheduleID *int64    `json:"generatingScheduleId,omitempty"`
	BookingID            *int64    `json:"bookingId,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// SlotListResponse список слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// ToDomainSlotStatus конвертирует строку в domain.SlotStatus
func ToDomainSlotStatus(s string) (domain.SlotStatus, error) {
	status := domain.SlotStatus(s)
	if !domain.ValidSlotStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// FromDomainSlot конвертирует domain слот в response модель
func FromDomainSlot(s *domain.AvailabilitySlot) *SlotResponse {
	return &SlotResponse{
		ID:                   s.ID,
		WorkerID:             s.WorkerID,
		BusinessID:           s.BusinessID,
		StartsAt:             s.StartsAt,
		EndsAt:               s.EndsAt,
		Status:               string(s.Status),
		GeneratingScheduleID: s.GeneratingScheduleID,
		BookingID:            s.BookingID,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

// FromDomainSlotList конвертирует список domain слотов в response модель
func FromDomainSlotList(slots []*domain.AvailabilitySlot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, *FromDomainSlot(s))
	}
	return resp
}
