package update_schedule_override

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedules/models"
)

type ScheduleService interface {
	UpsertOverride(ctx context.Context, req *models.UpsertOverrideRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
