package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	slotRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/slots/models"
)

// Service сервис для работы со слотами доступности
type Service struct {
	slotRepo  SlotRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:  slotRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// List получает слоты работника, пересекающие диапазон [from, to)
// Опционально фильтрует по статусу
func (s *Service) List(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	s.logger.Info("List: fetching slots for worker=%d, from=%s, to=%s",
		req.WorkerID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if req.WorkerID <= 0 {
		return nil, fmt.Errorf("%w: workerID must be positive", ErrInvalidInput)
	}
	if !req.To.After(req.From) {
		return nil, fmt.Errorf("%w: to must be after from", ErrInvalidTimeRange)
	}

	var domainStatus *domain.SlotStatus
	if req.Status != nil {
		status, err := models.ToDomainSlotStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s for worker=%d", *req.Status, req.WorkerID)
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *req.Status)
		}
		domainStatus = &status
	}

	slots, err := s.slotRepo.ListByWorker(ctx, req.WorkerID, req.From, req.To, domainStatus)
	if err != nil {
		s.logger.Error("List: repository error for worker=%d: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d slots for worker=%d", len(slots), req.WorkerID)
	return models.FromDomainSlotList(slots), nil
}

// CreateManual создает слот вручную, вне генерации по расписанию
// Ручные слоты не привязаны к расписанию и переживают перегенерацию
func (s *Service) CreateManual(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("CreateManual: creating slot for worker=%d, starts=%s",
		req.WorkerID, req.StartsAt.Format("2006-01-02 15:04"))

	if req.WorkerID <= 0 {
		return nil, fmt.Errorf("%w: workerID must be positive", ErrInvalidInput)
	}
	if req.BusinessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}
	if !req.EndsAt.After(req.StartsAt) {
		return nil, fmt.Errorf("%w: endsAt must be after startsAt", ErrInvalidTimeRange)
	}

	status := domain.SlotStatusAvailable
	if req.Status != nil {
		parsed, err := models.ToDomainSlotStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *req.Status)
		}
		// Занятые статусы выставляются только через бронирование
		if parsed == domain.SlotStatusBooked || parsed == domain.SlotStatusPending {
			return nil, fmt.Errorf("%w: status %s is managed by bookings", ErrInvalidStatus, parsed)
		}
		status = parsed
	}

	slot := &domain.AvailabilitySlot{
		WorkerID:   req.WorkerID,
		BusinessID: req.BusinessID,
		StartsAt:   req.StartsAt.UTC(),
		EndsAt:     req.EndsAt.UTC(),
		Status:     status,
	}

	created, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		s.logger.Error("CreateManual: repository error for worker=%d: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: CreateManual - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateManual: successfully created slot id=%d for worker=%d", created.ID, created.WorkerID)
	return models.FromDomainSlot(created), nil
}

// Update изменяет статус и/или временное окно слота
// Переходы статусов подчиняются правилам доменной модели; окно
// забронированного слота менять нельзя
func (s *Service) Update(ctx context.Context, req *models.UpdateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Update: updating slot id=%d", req.SlotID)

	if req.SlotID <= 0 {
		return nil, fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}
	if req.Status == nil && req.StartsAt == nil && req.EndsAt == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if (req.StartsAt == nil) != (req.EndsAt == nil) {
		return nil, fmt.Errorf("%w: startsAt and endsAt must be set together", ErrInvalidTimeRange)
	}

	var targetStatus *domain.SlotStatus
	if req.Status != nil {
		status, err := models.ToDomainSlotStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *req.Status)
		}
		if status == domain.SlotStatusBooked {
			return nil, fmt.Errorf("%w: status %s is managed by bookings", ErrInvalidStatus, status)
		}
		targetStatus = &status
	}

	var result *domain.AvailabilitySlot

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		slot, err := s.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				s.logger.Warn("Update: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			s.logger.Error("Update: repository error for slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		if targetStatus != nil {
			if err := applyStatus(slot, *targetStatus); err != nil {
				s.logger.Warn("Update: transition %s -> %s rejected for slot id=%d",
					slot.Status, *targetStatus, slot.ID)
				return err
			}
		}

		if req.StartsAt != nil && req.EndsAt != nil {
			if err := slot.UpdateTime(req.StartsAt.UTC(), req.EndsAt.UTC()); err != nil {
				switch {
				case errors.Is(err, domain.ErrSlotBooked):
					return ErrSlotBooked
				case errors.Is(err, domain.ErrInvalidTimeWindow):
					return fmt.Errorf("%w: endsAt must be after startsAt", ErrInvalidTimeRange)
				default:
					return fmt.Errorf("%w: Update - domain error: %v", ErrInternal, err)
				}
			}
		}

		if err := s.slotRepo.Update(txCtx, slot); err != nil {
			s.logger.Error("Update: failed to persist slot id=%d: %v", slot.ID, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		result = slot
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully updated slot id=%d, status=%s", result.ID, result.Status)
	return models.FromDomainSlot(result), nil
}

// applyStatus применяет целевой статус через доменные переходы
func applyStatus(slot *domain.AvailabilitySlot, target domain.SlotStatus) error {
	if slot.Status == target {
		return nil
	}

	var err error
	switch target {
	case domain.SlotStatusAvailable:
		switch slot.Status {
		case domain.SlotStatusPending:
			err = slot.Release()
		case domain.SlotStatusUnavailable, domain.SlotStatusBreak:
			err = slot.Reopen()
		default:
			err = domain.ErrInvalidTransition
		}
	case domain.SlotStatusPending:
		err = slot.Hold()
	case domain.SlotStatusUnavailable:
		err = slot.MarkUnavailable()
	case domain.SlotStatusBreak:
		err = slot.MarkBreak()
	default:
		err = domain.ErrInvalidTransition
	}

	if err != nil {
		if errors.Is(err, domain.ErrSlotBooked) {
			return ErrSlotBooked
		}
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, slot.Status, target)
	}
	return nil
}
