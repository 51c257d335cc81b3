package update_slot

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/slots/models"
)

// UpdateSlotRequest HTTP request model
type UpdateSlotRequest struct {
	Status   *string `json:"status,omitempty"`
	StartsAt *string `json:"startsAt,omitempty"` // RFC3339
	EndsAt   *string `json:"endsAt,omitempty"`   // RFC3339
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateSlotRequest) ToServiceRequest(slotID int64) (*models.UpdateSlotRequest, error) {
	req := &models.UpdateSlotRequest{
		SlotID: slotID,
		Status: r.Status,
	}

	if r.StartsAt != nil {
		startsAt, err := time.Parse(time.RFC3339, *r.StartsAt)
		if err != nil {
			return nil, err
		}
		req.StartsAt = &startsAt
	}

	if r.EndsAt != nil {
		endsAt, err := time.Parse(time.RFC3339, *r.EndsAt)
		if err != nil {
			return nil, err
		}
		req.EndsAt = &endsAt
	}

	return req, nil
}
