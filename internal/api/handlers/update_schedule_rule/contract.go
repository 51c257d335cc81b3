package update_schedule_rule

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedules/models"
)

type ScheduleService interface {
	UpsertRule(ctx context.Context, req *models.UpsertRuleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
