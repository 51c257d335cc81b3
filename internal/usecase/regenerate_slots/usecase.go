package regenerate_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/schedule"
)

// UseCase use case регенерации слотов доступности по расписанию
//
// Конвейер на каждую дату диапазона: разрешение плана дня (переопределение
// либо правило дня недели) -> вычитание перерывов -> нарезка на слоты ->
// перевод границ в UTC -> фильтрация коллизий с фиксированными слотами.
// Запись результата выполняется одним батчем, поэтому прерванная регенерация
// не оставляет частичного результата
type UseCase struct {
	scheduleRepo ScheduleRepository
	slotRepo     SlotRepository
	txManager    TransactionManager
	maxRangeDays int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	maxRangeDays int,
	logger Logger,
) *UseCase {
	if maxRangeDays <= 0 {
		maxRangeDays = domain.DefaultMaxRangeDays
	}
	return &UseCase{
		scheduleRepo: scheduleRepo,
		slotRepo:     slotRepo,
		txManager:    txManager,
		maxRangeDays: maxRangeDays,
		logger:       logger,
	}
}

// Execute выполняет регенерацию слотов
// Повторный запуск с overwrite=true при неизменном расписании и фиксированных
// слотах дает идентичный итоговый набор слотов (идемпотентность)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RegenerateSlots: worker=%d, business=%d, range=%s..%s, duration=%d, overwrite=%t",
		req.WorkerID, req.BusinessID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		req.SlotDurationMinutes, req.OverwriteGenerated)

	// 1. Валидация входных данных до какой-либо работы
	if err := validateRequest(req, uc.maxRangeDays); err != nil {
		uc.logger.Warn("RegenerateSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем расписание: явный ID либо расписание работника по умолчанию
	schedule, err := uc.resolveSchedule(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Разрешаем таймзону расписания
	loc, err := resolveLocation(schedule.Timezone)
	if err != nil {
		uc.logger.Warn("RegenerateSlots: schedule id=%d has invalid timezone %q", schedule.ID, schedule.Timezone)
		return nil, err
	}

	// Границы диапазона в UTC: от локальной полуночи первой даты
	// до локальной полуночи дня после последней даты
	startDate := dateOnly(req.StartDate)
	endDate := dateOnly(req.EndDate)
	rangeFromUTC := localToUTC(startDate, "00:00", loc)
	rangeToUTC := localToUTC(endDate.AddDate(0, 0, 1), "00:00", loc)

	// 4. Удаляем устаревшие сгенерированные незабронированные слоты
	// Отдельная транзакция, зафиксированная до чтения фиксированных слотов
	var deleted int64
	if req.OverwriteGenerated {
		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			var delErr error
			deleted, delErr = uc.slotRepo.DeleteGeneratedUnbooked(txCtx, req.WorkerID, rangeFromUTC, rangeToUTC)
			return delErr
		})
		if err != nil {
			uc.logger.Error("RegenerateSlots: failed to delete stale slots: %v", err)
			return nil, fmt.Errorf("%w: failed to delete stale slots: %v", ErrInternal, err)
		}
		uc.logger.Info("RegenerateSlots: deleted %d stale generated slots for worker=%d", deleted, req.WorkerID)
	}

	// 5. Получаем фиксированные слоты с буфером по границам диапазона
	fixed, err := uc.slotRepo.ListFixedInRange(ctx, req.WorkerID,
		rangeFromUTC.Add(-domain.FixedSlotFetchBuffer), rangeToUTC.Add(domain.FixedSlotFetchBuffer))
	if err != nil {
		uc.logger.Error("RegenerateSlots: failed to list fixed slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list fixed slots: %v", ErrInternal, err)
	}

	// 6. Прогоняем конвейер по каждой дате диапазона и копим выживших
	survivors := make([]*domain.AvailabilitySlot, 0)
	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		candidates := uc.resolveDateSlots(schedule, req, date, loc)
		survivors = append(survivors, filterCollisions(candidates, fixed)...)
	}

	// 7. Записываем выживших одним батчем
	created := 0
	if len(survivors) > 0 {
		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			var batchErr error
			created, batchErr = uc.slotRepo.CreateBatch(txCtx, survivors)
			return batchErr
		})
		if err != nil {
			uc.logger.Error("RegenerateSlots: failed to persist slots: %v", err)
			return nil, fmt.Errorf("%w: failed to persist slots: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("RegenerateSlots: created %d slots (deleted %d) for worker=%d, schedule=%d",
		created, deleted, req.WorkerID, schedule.ID)

	return &Response{
		ScheduleID:   schedule.ID,
		CreatedCount: created,
		DeletedCount: deleted,
	}, nil
}

// resolveSchedule находит расписание и проверяет его принадлежность
// работнику и бизнесу из запроса
func (uc *UseCase) resolveSchedule(ctx context.Context, req *Request) (*domain.Schedule, error) {
	var (
		schedule *domain.Schedule
		err      error
	)

	if req.ScheduleID != nil {
		schedule, err = uc.scheduleRepo.GetByID(ctx, *req.ScheduleID)
	} else {
		schedule, err = uc.scheduleRepo.GetDefaultByWorker(ctx, req.WorkerID)
	}

	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("RegenerateSlots: schedule not found for worker=%d", req.WorkerID)
			return nil, ErrScheduleNotFound
		}
		uc.logger.Error("RegenerateSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	if schedule.WorkerID != req.WorkerID || schedule.BusinessID != req.BusinessID {
		uc.logger.Warn("RegenerateSlots: schedule id=%d does not belong to worker=%d business=%d",
			schedule.ID, req.WorkerID, req.BusinessID)
		return nil, ErrScheduleNotFound
	}

	return schedule, nil
}

// resolveDateSlots выполняет чистую часть конвейера для одной даты
func (uc *UseCase) resolveDateSlots(schedule *domain.Schedule, req *Request, date time.Time, loc *time.Location) []*domain.AvailabilitySlot {
	plan := schedule.ResolveDay(date)
	if !plan.IsWorkingDay {
		return nil
	}

	candidates := make([]*domain.AvailabilitySlot, 0)

	for _, seg := range subtractBreaks(plan.StartTime, plan.EndTime, plan.Breaks) {
		for _, slotStart := range sliceSegment(seg, req.SlotDurationMinutes) {
			slotEnd, err := slotStart.AddMinutes(req.SlotDurationMinutes)
			if err != nil {
				continue
			}

			startsAt := localToUTC(date, slotStart, loc)
			endsAt := localToUTC(date, slotEnd, loc)

			// Переход на летнее время может схлопнуть слот - такой кандидат отбрасываем
			if !endsAt.After(startsAt) {
				continue
			}

			candidates = append(candidates, &domain.AvailabilitySlot{
				WorkerID:             req.WorkerID,
				BusinessID:           req.BusinessID,
				StartsAt:             startsAt,
				EndsAt:               endsAt,
				Status:               domain.SlotStatusAvailable,
				GeneratingScheduleID: &schedule.ID,
			})
		}
	}

	return candidates
}

// dateOnly обнуляет компонент времени, сохраняя только дату
func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
