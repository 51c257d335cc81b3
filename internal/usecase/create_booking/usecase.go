package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	slotRepository "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/slot"
	catalogClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/catalogservice"
)

// UseCase use case создания бронирования
//
// Бронирование и занятие слота фиксируются в одной сериализуемой транзакции;
// переход слота available -> booked выполняется compare-and-set'ом, поэтому
// конкурирующий писатель получает конфликт, а не молча перезаписывает слот
type UseCase struct {
	bookingRepo   BookingRepository
	slotRepo      SlotRepository
	catalogClient CatalogServiceClient
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		slotRepo:      slotRepo,
		catalogClient: catalogClient,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: slot=%d, business=%d, service=%d, customer=%d",
		req.SlotID, req.BusinessID, req.ServiceID, req.CustomerID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу из каталога (название, цена, длительность)
	service, err := uc.catalogClient.GetService(ctx, req.BusinessID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем слот с блокировкой (FOR UPDATE)
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepository.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 3.2. Слот должен принадлежать бизнесу из запроса
		if slot.BusinessID != req.BusinessID {
			uc.logger.Warn("CreateBooking: slot id=%d does not belong to business=%d", req.SlotID, req.BusinessID)
			return ErrSlotNotFound
		}

		// 3.3. Слот должен быть свободен
		if slot.Status != domain.SlotStatusAvailable {
			uc.logger.Warn("CreateBooking: slot id=%d is not available, status=%s", req.SlotID, slot.Status)
			return ErrSlotNotAvailable
		}

		// 3.4. Длительность слота должна точно совпадать с длительностью услуги
		// Частичное бронирование слота не поддерживается
		slotDuration := slot.EndsAt.Sub(slot.StartsAt)
		if slotDuration != time.Duration(service.DurationMinutes)*time.Minute {
			uc.logger.Warn("CreateBooking: duration mismatch, slot=%s service=%dm",
				slotDuration, service.DurationMinutes)
			return ErrDurationMismatch
		}

		// 3.5. Создаем бронирование со снимком данных услуги и окна слота
		booking := &domain.Booking{
			WorkerID:     slot.WorkerID,
			BusinessID:   slot.BusinessID,
			ServiceID:    req.ServiceID,
			CustomerID:   req.CustomerID,
			SlotID:       slot.ID,
			StartsAt:     slot.StartsAt,
			EndsAt:       slot.EndsAt,
			Status:       domain.BookingStatusPendingConfirmation,
			ServiceName:  service.Name,
			ServicePrice: servicePrice(service),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 3.6. Занимаем слот compare-and-set'ом
		if err := uc.slotRepo.MarkBooked(txCtx, slot.ID, created.ID); err != nil {
			if errors.Is(err, slotRepository.ErrSlotConflict) {
				uc.logger.Warn("CreateBooking: slot id=%d booked concurrently", slot.ID)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateBooking: failed to mark slot booked: %v", err)
			return fmt.Errorf("%w: failed to mark slot booked: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d on slot id=%d", result.ID, result.SlotID)

	return &Response{
		ID:           result.ID,
		WorkerID:     result.WorkerID,
		BusinessID:   result.BusinessID,
		ServiceID:    result.ServiceID,
		CustomerID:   result.CustomerID,
		SlotID:       result.SlotID,
		StartsAt:     result.StartsAt,
		EndsAt:       result.EndsAt,
		Status:       string(result.Status),
		ServiceName:  result.ServiceName,
		ServicePrice: result.ServicePrice,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

// servicePrice извлекает цену из услуги
// Если цена не указана (nil), возвращает 0.0
func servicePrice(service *catalogClient.Service) float64 {
	if service.Price == nil {
		return 0.0
	}
	return *service.Price
}
