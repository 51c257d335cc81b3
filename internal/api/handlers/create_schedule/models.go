package create_schedule

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedules/models"
)

// CreateScheduleRequest HTTP request model
type CreateScheduleRequest struct {
	BusinessID int64   `json:"businessId"`
	Name       string  `json:"name"`
	Timezone   string  `json:"timezone"`
	IsDefault  bool    `json:"isDefault"`
	StartDate  *string `json:"startDate,omitempty"` // "2025-11-01"
	EndDate    *string `json:"endDate,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateScheduleRequest) ToServiceRequest(workerID int64) (*models.CreateScheduleRequest, error) {
	req := &models.CreateScheduleRequest{
		WorkerID:   workerID,
		BusinessID: r.BusinessID,
		Name:       r.Name,
		Timezone:   r.Timezone,
		IsDefault:  r.IsDefault,
	}

	if r.StartDate != nil {
		startDate, err := time.Parse(domain.DateFormat, *r.StartDate)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if r.EndDate != nil {
		endDate, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	return req, nil
}
