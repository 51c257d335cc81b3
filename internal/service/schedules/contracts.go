package schedules

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
	GetDefaultByWorker(ctx context.Context, workerID int64) (*domain.Schedule, error)
	SaveRuleItem(ctx context.Context, scheduleID int64, item *domain.RuleItem) error
	SaveOverride(ctx context.Context, scheduleID int64, override *domain.Override) error
	DeleteOverride(ctx context.Context, scheduleID int64, date time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
