package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	bookingRepository "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	slotRepository "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/slot"
)

// UseCase use case отмены бронирования
//
// Отмена и освобождение слота выполняются в одной сериализуемой транзакции:
// бронирование переводится в финальный статус, слот возвращается в available
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%d, by=%s", req.BookingID, req.CancelledBy)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepository.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Финальные статусы не допускают повторной отмены
		if booking.IsTerminal() {
			uc.logger.Warn("CancelBooking: booking id=%d already finalized, status=%s", booking.ID, booking.Status)
			return ErrAlreadyFinalized
		}

		// 2.3. Проверяем, что слот все еще связан с этим бронированием
		slot, err := uc.slotRepo.GetByID(txCtx, booking.SlotID)
		if err != nil {
			if errors.Is(err, slotRepository.ErrSlotNotFound) {
				uc.logger.Error("CancelBooking: slot id=%d for booking id=%d not found", booking.SlotID, booking.ID)
				return ErrDataIntegrity
			}
			uc.logger.Error("CancelBooking: failed to get slot id=%d: %v", booking.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}
		if slot.BookingID == nil || *slot.BookingID != booking.ID {
			uc.logger.Error("CancelBooking: slot id=%d is not linked to booking id=%d", slot.ID, booking.ID)
			return ErrDataIntegrity
		}

		// 2.4. Переводим бронирование в статус отмены соответствующего актора
		cancelled, err := uc.bookingRepo.Cancel(txCtx, booking.ID, domain.CancelStatusFor(req.CancelledBy), req.Reason)
		if err != nil {
			uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}

		// 2.5. Возвращаем слот в available
		if err := uc.slotRepo.Release(txCtx, slot.ID); err != nil {
			uc.logger.Error("CancelBooking: failed to release slot id=%d: %v", slot.ID, err)
			return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
		}

		result = cancelled
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: successfully cancelled booking id=%d, slot id=%d released", result.ID, result.SlotID)

	resp := &Response{
		ID:         result.ID,
		WorkerID:   result.WorkerID,
		BusinessID: result.BusinessID,
		SlotID:     result.SlotID,
		Status:     string(result.Status),
		UpdatedAt:  result.UpdatedAt,
	}
	if result.CancellationReason != nil {
		resp.CancellationReason = *result.CancellationReason
	}
	if result.CancelledAt != nil {
		resp.CancelledAt = *result.CancelledAt
	}

	return resp, nil
}
