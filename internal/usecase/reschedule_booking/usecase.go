package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	bookingRepository "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	slotRepository "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/slot"
)

// UseCase use case переноса бронирования на другой слот
//
// Освобождение старого слота, занятие нового и обновление бронирования
// выполняются в одной сериализуемой транзакции: перенос либо применяется
// целиком, либо не применяется вовсе
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

// Execute выполняет use case переноса бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%d, newSlot=%d", req.BookingID, req.NewSlotID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepository.ErrBookingNotFound) {
				uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Финальные статусы переносить нельзя
		if booking.IsTerminal() {
			uc.logger.Warn("RescheduleBooking: booking id=%d already finalized, status=%s", booking.ID, booking.Status)
			return ErrAlreadyFinalized
		}

		// 2.3. Перенос на тот же слот не имеет смысла
		if booking.SlotID == req.NewSlotID {
			uc.logger.Warn("RescheduleBooking: booking id=%d already occupies slot id=%d", booking.ID, req.NewSlotID)
			return ErrSameSlot
		}

		// 2.4. Получаем целевой слот с блокировкой
		newSlot, err := uc.slotRepo.GetByID(txCtx, req.NewSlotID)
		if err != nil {
			if errors.Is(err, slotRepository.ErrSlotNotFound) {
				uc.logger.Warn("RescheduleBooking: slot id=%d not found", req.NewSlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get slot id=%d: %v", req.NewSlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 2.5. Целевой слот должен принадлежать тому же работнику
		if newSlot.WorkerID != booking.WorkerID {
			uc.logger.Warn("RescheduleBooking: slot id=%d belongs to worker=%d, booking worker=%d",
				newSlot.ID, newSlot.WorkerID, booking.WorkerID)
			return ErrWorkerMismatch
		}

		// 2.6. Целевой слот должен быть свободен
		if newSlot.Status != domain.SlotStatusAvailable {
			uc.logger.Warn("RescheduleBooking: slot id=%d is not available, status=%s", newSlot.ID, newSlot.Status)
			return ErrSlotNotAvailable
		}

		// 2.7. Длительность целевого слота должна совпадать с окном бронирования
		if newSlot.EndsAt.Sub(newSlot.StartsAt) != booking.EndsAt.Sub(booking.StartsAt) {
			uc.logger.Warn("RescheduleBooking: slot id=%d duration does not match booking id=%d", newSlot.ID, booking.ID)
			return ErrDurationMismatch
		}

		// 2.8. Проверяем, что старый слот все еще связан с бронированием
		oldSlot, err := uc.slotRepo.GetByID(txCtx, booking.SlotID)
		if err != nil {
			if errors.Is(err, slotRepository.ErrSlotNotFound) {
				uc.logger.Error("RescheduleBooking: slot id=%d for booking id=%d not found", booking.SlotID, booking.ID)
				return ErrDataIntegrity
			}
			uc.logger.Error("RescheduleBooking: failed to get slot id=%d: %v", booking.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}
		if oldSlot.BookingID == nil || *oldSlot.BookingID != booking.ID {
			uc.logger.Error("RescheduleBooking: slot id=%d is not linked to booking id=%d", oldSlot.ID, booking.ID)
			return ErrDataIntegrity
		}

		// 2.9. Освобождаем старый слот
		if err := uc.slotRepo.Release(txCtx, oldSlot.ID); err != nil {
			uc.logger.Error("RescheduleBooking: failed to release slot id=%d: %v", oldSlot.ID, err)
			return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
		}

		// 2.10. Занимаем новый слот compare-and-set'ом
		if err := uc.slotRepo.MarkBooked(txCtx, newSlot.ID, booking.ID); err != nil {
			if errors.Is(err, slotRepository.ErrSlotConflict) {
				uc.logger.Warn("RescheduleBooking: slot id=%d booked concurrently", newSlot.ID)
				return ErrSlotConflict
			}
			uc.logger.Error("RescheduleBooking: failed to mark slot booked: %v", err)
			return fmt.Errorf("%w: failed to mark slot booked: %v", ErrInternal, err)
		}

		// 2.11. Переносим бронирование на окно нового слота
		moved, err := uc.bookingRepo.MoveToSlot(txCtx, booking.ID, newSlot.ID,
			newSlot.StartsAt, newSlot.EndsAt, domain.BookingStatusRescheduled)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to move booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to move booking: %v", ErrInternal, err)
		}

		result = moved
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: successfully moved booking id=%d to slot id=%d", result.ID, result.SlotID)

	return &Response{
		ID:         result.ID,
		WorkerID:   result.WorkerID,
		BusinessID: result.BusinessID,
		SlotID:     result.SlotID,
		StartsAt:   result.StartsAt,
		EndsAt:     result.EndsAt,
		Status:     string(result.Status),
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
