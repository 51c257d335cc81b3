package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с расписаниями
// Расписание загружается целиком: правила по дням недели с перерывами
// и переопределения дат с их перерывами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает расписание (без дочерних записей)
func (r *Repository) Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedules").
		Columns("worker_id", "business_id", "name", "timezone", "is_default", "start_date", "end_date").
		Values(s.WorkerID, s.BusinessID, s.Name, s.Timezone, s.IsDefault, s.StartDate, s.EndDate).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает расписание по ID со всеми дочерними записями
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetDefaultByWorker получает расписание работника по умолчанию
func (r *Repository) GetDefaultByWorker(ctx context.Context, workerID int64) (*domain.Schedule, error) {
	return r.getOne(ctx, squirrel.Eq{"worker_id": workerID, "is_default": true})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"worker_id",
		"business_id",
		"name",
		"timezone",
		"is_default",
		"start_date",
		"end_date",
		"created_at",
		"updated_at",
	).
		From("schedules").
		Where(where).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Schedule
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.WorkerID,
		&s.BusinessID,
		&s.Name,
		&s.Timezone,
		&s.IsDefault,
		&s.StartDate,
		&s.EndDate,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan schedule: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	if err := r.loadRuleItems(ctx, &s); err != nil {
		return nil, err
	}
	if err := r.loadOverrides(ctx, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

// SaveRuleItem сохраняет правило дня недели и его перерывы
// Существующее правило на тот же день недели заменяется целиком
func (r *Repository) SaveRuleItem(ctx context.Context, scheduleID int64, item *domain.RuleItem) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Удаляем прежнее правило этого дня недели (перерывы каскадом)
	delQuery, delArgs, err := psqlbuilder.Delete("schedule_rule_items").
		Where(squirrel.Eq{"schedule_id": scheduleID, "weekday": int(item.Weekday)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SaveRuleItem - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, delQuery, delArgs...); err != nil {
		return fmt.Errorf("%w: SaveRuleItem - execute delete: %v", ErrExecQuery, err)
	}

	insQuery, insArgs, err := psqlbuilder.Insert("schedule_rule_items").
		Columns("schedule_id", "weekday", "is_working_day", "start_time", "end_time").
		Values(scheduleID, int(item.Weekday), item.IsWorkingDay, item.StartTime, item.EndTime).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SaveRuleItem - build insert query: %v", ErrBuildQuery, err)
	}
	if err := executor.QueryRowContext(ctx, insQuery, insArgs...).Scan(&item.ID); err != nil {
		return fmt.Errorf("%w: SaveRuleItem - execute insert: %v", ErrExecQuery, err)
	}

	return r.insertBreaks(ctx, "rule_item_id", item.ID, item.Breaks)
}

// SaveOverride сохраняет переопределение даты и его перерывы
// Существующее переопределение той же даты заменяется целиком
func (r *Repository) SaveOverride(ctx context.Context, scheduleID int64, o *domain.Override) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	delQuery, delArgs, err := psqlbuilder.Delete("schedule_overrides").
		Where(squirrel.Eq{"schedule_id": scheduleID, "date": o.Date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SaveOverride - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, delQuery, delArgs...); err != nil {
		return fmt.Errorf("%w: SaveOverride - execute delete: %v", ErrExecQuery, err)
	}

	insQuery, insArgs, err := psqlbuilder.Insert("schedule_overrides").
		Columns("schedule_id", "date", "reason", "is_working_day", "start_time", "end_time").
		Values(scheduleID, o.Date, o.Reason, o.IsWorkingDay, o.StartTime, o.EndTime).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SaveOverride - build insert query: %v", ErrBuildQuery, err)
	}
	if err := executor.QueryRowContext(ctx, insQuery, insArgs...).Scan(&o.ID); err != nil {
		return fmt.Errorf("%w: SaveOverride - execute insert: %v", ErrExecQuery, err)
	}

	return r.insertBreaks(ctx, "override_id", o.ID, o.Breaks)
}

// DeleteOverride удаляет переопределение даты
func (r *Repository) DeleteOverride(ctx context.Context, scheduleID int64, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedule_overrides").
		Where(squirrel.Eq{"schedule_id": scheduleID, "date": date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteOverride - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

func (r *Repository) insertBreaks(ctx context.Context, ownerColumn string, ownerID int64, breaks []domain.BreakRule) error {
	if len(breaks) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("schedule_breaks").
		Columns(ownerColumn, "name", "start_time", "end_time")
	for _, b := range breaks {
		insertBuilder = insertBuilder.Values(ownerID, b.Name, b.StartTime, b.EndTime)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertBreaks - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertBreaks - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) loadRuleItems(ctx context.Context, s *domain.Schedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "weekday", "is_working_day", "start_time", "end_time", "created_at", "updated_at").
		From("schedule_rule_items").
		Where(squirrel.Eq{"schedule_id": s.ID}).
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadRuleItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadRuleItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]domain.RuleItem, 0)
	ids := make([]int64, 0)

	for rows.Next() {
		var item domain.RuleItem
		var weekday int
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&item.ID, &weekday, &item.IsWorkingDay, &item.StartTime, &item.EndTime, &createdAt, &updatedAt); err != nil {
			return fmt.Errorf("%w: loadRuleItems - scan row: %v", ErrScanRow, err)
		}

		item.ScheduleID = s.ID
		item.Weekday = time.Weekday(weekday)
		item.CreatedAt = createdAt.Time
		item.UpdatedAt = updatedAt.Time

		items = append(items, item)
		ids = append(ids, item.ID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadRuleItems - rows error: %v", ErrScanRow, err)
	}

	breaksByOwner, err := r.loadBreaks(ctx, "rule_item_id", ids)
	if err != nil {
		return err
	}
	for i := range items {
		items[i].Breaks = breaksByOwner[items[i].ID]
	}

	s.RuleItems = items
	return nil
}

func (r *Repository) loadOverrides(ctx context.Context, s *domain.Schedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "date", "reason", "is_working_day", "start_time", "end_time", "created_at", "updated_at").
		From("schedule_overrides").
		Where(squirrel.Eq{"schedule_id": s.ID}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadOverrides - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadOverrides - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]domain.Override, 0)
	ids := make([]int64, 0)

	for rows.Next() {
		var o domain.Override
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&o.ID, &o.Date, &o.Reason, &o.IsWorkingDay, &o.StartTime, &o.EndTime, &createdAt, &updatedAt); err != nil {
			return fmt.Errorf("%w: loadOverrides - scan row: %v", ErrScanRow, err)
		}

		o.ScheduleID = s.ID
		o.CreatedAt = createdAt.Time
		o.UpdatedAt = updatedAt.Time

		overrides = append(overrides, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadOverrides - rows error: %v", ErrScanRow, err)
	}

	breaksByOwner, err := r.loadBreaks(ctx, "override_id", ids)
	if err != nil {
		return err
	}
	for i := range overrides {
		overrides[i].Breaks = breaksByOwner[overrides[i].ID]
	}

	s.Overrides = overrides
	return nil
}

func (r *Repository) loadBreaks(ctx context.Context, ownerColumn string, ownerIDs []int64) (map[int64][]domain.BreakRule, error) {
	result := make(map[int64][]domain.BreakRule)
	if len(ownerIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", ownerColumn, "name", "start_time", "end_time").
		From("schedule_breaks").
		Where(squirrel.Eq{ownerColumn: ownerIDs}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadBreaks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadBreaks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var b domain.BreakRule
		var ownerID int64

		if err := rows.Scan(&b.ID, &ownerID, &b.Name, &b.StartTime, &b.EndTime); err != nil {
			return nil, fmt.Errorf("%w: loadBreaks - scan row: %v", ErrScanRow, err)
		}

		result[ownerID] = append(result[ownerID], b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadBreaks - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
