package schedules

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedules/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Service сервис для работы с расписаниями работников
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Create создает расписание работника
func (s *Service) Create(ctx context.Context, req *models.CreateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Create: creating schedule for worker=%d, timezone=%s", req.WorkerID, req.Timezone)

	if req.WorkerID <= 0 {
		return nil, fmt.Errorf("%w: workerID must be positive", ErrInvalidInput)
	}
	if req.BusinessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		s.logger.Warn("Create: unknown timezone=%s for worker=%d", req.Timezone, req.WorkerID)
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimezone, req.Timezone)
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	schedule := &domain.Schedule{
		WorkerID:   req.WorkerID,
		BusinessID: req.BusinessID,
		Name:       req.Name,
		Timezone:   req.Timezone,
		IsDefault:  req.IsDefault,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	}

	created, err := s.scheduleRepo.Create(ctx, schedule)
	if err != nil {
		s.logger.Error("Create: repository error for worker=%d: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created schedule id=%d for worker=%d", created.ID, created.WorkerID)
	return models.FromDomainSchedule(created), nil
}

// Get получает основное расписание работника вместе с правилами и исключениями
func (s *Service) Get(ctx context.Context, workerID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("Get: fetching schedule for worker=%d", workerID)

	if workerID <= 0 {
		return nil, fmt.Errorf("%w: workerID must be positive", ErrInvalidInput)
	}

	schedule, err := s.getDefault(ctx, workerID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Get: successfully fetched schedule id=%d for worker=%d", schedule.ID, workerID)
	return models.FromDomainSchedule(schedule), nil
}

// UpsertRule добавляет или заменяет правило для дня недели
// Инварианты правила проверяются доменной моделью перед сохранением
func (s *Service) UpsertRule(ctx context.Context, req *models.UpsertRuleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpsertRule: worker=%d, weekday=%d", req.WorkerID, req.Weekday)

	if req.WorkerID <= 0 {
		return nil, fmt.Errorf("%w: workerID must be positive", ErrInvalidInput)
	}
	if req.Weekday < 0 || req.Weekday > 6 {
		return nil, fmt.Errorf("%w: weekday must be in [0, 6]", ErrInvalidInput)
	}

	item := domain.RuleItem{
		Weekday:      time.Weekday(req.Weekday),
		IsWorkingDay: req.IsWorkingDay,
	}

	if req.IsWorkingDay {
		start, err := types.NewTimeStringFromString(req.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
		}
		end, err := types.NewTimeStringFromString(req.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
		}
		item.StartTime = start
		item.EndTime = end

		breaks, err := models.ToDomainBreaks(req.Breaks)
		if err != nil {
			return nil, fmt.Errorf("%w: breaks: %v", ErrInvalidInput, err)
		}
		item.Breaks = breaks
	}

	var resp *models.ScheduleResponse

	// Замена правила это DELETE + INSERT + вставка перерывов,
	// выполняем под одной транзакцией
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		schedule, err := s.getDefault(txCtx, req.WorkerID)
		if err != nil {
			return err
		}

		item.ScheduleID = schedule.ID
		if err := schedule.UpsertRuleItem(item); err != nil {
			s.logger.Warn("UpsertRule: validation failed for worker=%d, weekday=%d: %v", req.WorkerID, req.Weekday, err)
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}

		if err := s.scheduleRepo.SaveRuleItem(txCtx, schedule.ID, &item); err != nil {
			s.logger.Error("UpsertRule: repository error for schedule id=%d: %v", schedule.ID, err)
			return fmt.Errorf("%w: UpsertRule - repository error: %v", ErrInternal, err)
		}

		resp = models.FromDomainSchedule(schedule)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpsertRule: successfully saved rule for worker=%d, weekday=%d", req.WorkerID, req.Weekday)
	return resp, nil
}

// UpsertOverride добавляет или заменяет исключение на дату
func (s *Service) UpsertOverride(ctx context.Context, req *models.UpsertOverrideRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpsertOverride: worker=%d, date=%s", req.WorkerID, req.Date.Format(domain.DateFormat))

	if req.WorkerID <= 0 {
		return nil, fmt.Errorf("%w: workerID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if len(req.Reason) > domain.MaxOverrideReasonLength {
		return nil, fmt.Errorf("%w: reason too long", ErrInvalidInput)
	}

	override := domain.Override{
		Date:         req.Date,
		Reason:       req.Reason,
		IsWorkingDay: req.IsWorkingDay,
	}

	if req.StartTime != nil {
		start, err := types.NewTimeStringFromString(*req.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
		}
		override.StartTime = &start
	}
	if req.EndTime != nil {
		end, err := types.NewTimeStringFromString(*req.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
		}
		override.EndTime = &end
	}

	breaks, err := models.ToDomainBreaks(req.Breaks)
	if err != nil {
		return nil, fmt.Errorf("%w: breaks: %v", ErrInvalidInput, err)
	}
	override.Breaks = breaks

	var resp *models.ScheduleResponse

	// Замена исключения это DELETE + INSERT + вставка перерывов,
	// выполняем под одной транзакцией
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		schedule, err := s.getDefault(txCtx, req.WorkerID)
		if err != nil {
			return err
		}

		override.ScheduleID = schedule.ID

		// PUT-семантика: существующее исключение на эту дату заменяется
		schedule.RemoveOverride(req.Date)
		if err := schedule.AddOverride(override); err != nil {
			s.logger.Warn("UpsertOverride: validation failed for worker=%d, date=%s: %v",
				req.WorkerID, req.Date.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}

		if err := s.scheduleRepo.SaveOverride(txCtx, schedule.ID, &override); err != nil {
			s.logger.Error("UpsertOverride: repository error for schedule id=%d: %v", schedule.ID, err)
			return fmt.Errorf("%w: UpsertOverride - repository error: %v", ErrInternal, err)
		}

		resp = models.FromDomainSchedule(schedule)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpsertOverride: successfully saved override for worker=%d, date=%s",
		req.WorkerID, req.Date.Format(domain.DateFormat))
	return resp, nil
}

// DeleteOverride удаляет исключение на дату
func (s *Service) DeleteOverride(ctx context.Context, workerID int64, date time.Time) error {
	s.logger.Info("DeleteOverride: worker=%d, date=%s", workerID, date.Format(domain.DateFormat))

	if workerID <= 0 {
		return fmt.Errorf("%w: workerID must be positive", ErrInvalidInput)
	}

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		schedule, err := s.getDefault(txCtx, workerID)
		if err != nil {
			return err
		}

		if !schedule.RemoveOverride(date) {
			s.logger.Warn("DeleteOverride: no override for worker=%d, date=%s", workerID, date.Format(domain.DateFormat))
			return ErrOverrideNotFound
		}

		if err := s.scheduleRepo.DeleteOverride(txCtx, schedule.ID, date); err != nil {
			s.logger.Error("DeleteOverride: repository error for schedule id=%d: %v", schedule.ID, err)
			return fmt.Errorf("%w: DeleteOverride - repository error: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("DeleteOverride: successfully deleted override for worker=%d, date=%s",
		workerID, date.Format(domain.DateFormat))
	return nil
}

// getDefault получает основное расписание работника
func (s *Service) getDefault(ctx context.Context, workerID int64) (*domain.Schedule, error) {
	schedule, err := s.scheduleRepo.GetDefaultByWorker(ctx, workerID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("getDefault: schedule for worker=%d not found", workerID)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("getDefault: repository error for worker=%d: %v", workerID, err)
		return nil, fmt.Errorf("%w: getDefault - repository error: %v", ErrInternal, err)
	}
	return schedule, nil
}
