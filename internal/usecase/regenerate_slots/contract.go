package regenerate_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
	GetDefaultByWorker(ctx context.Context, workerID int64) (*domain.Schedule, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	CreateBatch(ctx context.Context, slots []*domain.AvailabilitySlot) (int, error)
	DeleteGeneratedUnbooked(ctx context.Context, workerID int64, from, to time.Time) (int64, error)
	ListFixedInRange(ctx context.Context, workerID int64, from, to time.Time) ([]*domain.AvailabilitySlot, error)
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
