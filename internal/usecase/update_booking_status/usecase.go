package update_booking_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	bookingRepository "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
)

// UseCase use case смены статуса бронирования вендором:
// подтверждение, завершение визита, неявка клиента
//
// Слот при этом не трогается: завершенное бронирование продолжает занимать
// свое прошедшее окно, освобождение слота выполняет только отмена
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case смены статуса бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBookingStatus: booking=%d, status=%s", req.BookingID, req.Status)

	// 1. Валидация входных данных
	target, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateBookingStatus: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepository.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBookingStatus: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBookingStatus: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Финальные статусы дальнейших переходов не допускают
		if booking.IsTerminal() {
			uc.logger.Warn("UpdateBookingStatus: booking id=%d already finalized, status=%s", booking.ID, booking.Status)
			return ErrAlreadyFinalized
		}

		// 2.3. Обновляем статус
		if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, target); err != nil {
			uc.logger.Error("UpdateBookingStatus: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		booking.Status = target
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBookingStatus: booking id=%d moved to status=%s", result.ID, result.Status)

	return &Response{
		ID:         result.ID,
		WorkerID:   result.WorkerID,
		BusinessID: result.BusinessID,
		SlotID:     result.SlotID,
		Status:     string(result.Status),
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
