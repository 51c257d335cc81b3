package create_slot

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/slots/models"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	BusinessID int64   `json:"businessId"`
	StartsAt   string  `json:"startsAt"` // RFC3339
	EndsAt     string  `json:"endsAt"`   // RFC3339
	Status     *string `json:"status,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateSlotRequest) ToServiceRequest(workerID int64) (*models.CreateSlotRequest, error) {
	startsAt, err := time.Parse(time.RFC3339, r.StartsAt)
	if err != nil {
		return nil, err
	}

	endsAt, err := time.Parse(time.RFC3339, r.EndsAt)
	if err != nil {
		return nil, err
	}

	return &models.CreateSlotRequest{
		WorkerID:   workerID,
		BusinessID: r.BusinessID,
		StartsAt:   startsAt,
		EndsAt:     endsAt,
		Status:     r.Status,
	}, nil
}
