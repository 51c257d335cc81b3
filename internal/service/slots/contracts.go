package slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.AvailabilitySlot) (*domain.AvailabilitySlot, error)
	GetByID(ctx context.Context, id int64) (*domain.AvailabilitySlot, error)
	ListByWorker(ctx context.Context, workerID int64, from, to time.Time, status *domain.SlotStatus) ([]*domain.AvailabilitySlot, error)
	Update(ctx context.Context, slot *domain.AvailabilitySlot) error
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
