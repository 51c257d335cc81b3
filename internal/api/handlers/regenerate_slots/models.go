package regenerate_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	regenerateSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/regenerate_slots"
)

// RegenerateSlotsRequest HTTP request model
type RegenerateSlotsRequest struct {
	BusinessID          int64  `json:"businessId"`
	ScheduleID          *int64 `json:"scheduleId,omitempty"`
	StartDate           string `json:"startDate"` // "2025-11-01"
	EndDate             string `json:"endDate"`   // "2025-11-30"
	SlotDurationMinutes int    `json:"slotDurationMinutes,omitempty"`
	OverwriteGenerated  bool   `json:"overwriteGenerated,omitempty"`
}

// RegenerateSlotsResponse HTTP response model
type RegenerateSlotsResponse struct {
	ScheduleID   int64 `json:"scheduleId"`
	CreatedCount int   `json:"createdCount"`
	DeletedCount int64 `json:"deletedCount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RegenerateSlotsRequest) ToUseCaseRequest(workerID int64) (*regenerateSlots.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	duration := r.SlotDurationMinutes
	if duration == 0 {
		duration = domain.DefaultSlotDurationMinutes
	}

	return &regenerateSlots.Request{
		WorkerID:            workerID,
		BusinessID:          r.BusinessID,
		ScheduleID:          r.ScheduleID,
		StartDate:           startDate,
		EndDate:             endDate,
		SlotDurationMinutes: duration,
		OverwriteGenerated:  r.OverwriteGenerated,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *regenerateSlots.Response) *RegenerateSlotsResponse {
	return &RegenerateSlotsResponse{
		ScheduleID:   resp.ScheduleID,
		CreatedCount: resp.CreatedCount,
		DeletedCount: resp.DeletedCount,
	}
}
