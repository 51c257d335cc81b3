package slot

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

var slotColumns = []string{
	"id",
	"worker_id",
	"business_id",
	"starts_at",
	"ends_at",
	"status",
	"generating_schedule_id",
	"booking_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со слотами доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает один слот (ручное создание оператором)
func (r *Repository) Create(ctx context.Context, s *domain.AvailabilitySlot) (*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_slots").
		Columns(
			"worker_id",
			"business_id",
			"starts_at",
			"ends_at",
			"status",
			"generating_schedule_id",
		).
		Values(
			s.WorkerID,
			s.BusinessID,
			s.StartsAt,
			s.EndsAt,
			s.Status,
			s.GeneratingScheduleID,
		).
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

// CreateBatch создает набор слотов одним запросом
// Используется регенерацией для атомарной записи всего результата
func (r *Repository) CreateBatch(ctx context.Context, slots []*domain.AvailabilitySlot) (int, error) {
	if len(slots) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("availability_slots").
		Columns(
			"worker_id",
			"business_id",
			"starts_at",
			"ends_at",
			"status",
			"generating_schedule_id",
		)

	for _, s := range slots {
		insertBuilder = insertBuilder.Values(
			s.WorkerID,
			s.BusinessID,
			s.StartsAt,
			s.EndsAt,
			s.Status,
			s.GeneratingScheduleID,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - get rows affected: %v", ErrExecQuery, err)
	}

	return int(rowsAffected), nil
}

// GetByID получает слот по ID
// Внутри транзакции добавляет FOR UPDATE для блокировки строки
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("availability_slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.AvailabilitySlot
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.WorkerID,
		&s.BusinessID,
		&s.StartsAt,
		&s.EndsAt,
		&s.Status,
		&s.GeneratingScheduleID,
		&s.BookingID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// ListByWorker получает слоты работника, пересекающие диапазон [from, to)
// Опционально фильтрует по статусу
func (r *Repository) ListByWorker(ctx context.Context, workerID int64, from, to time.Time, status *domain.SlotStatus) ([]*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("availability_slots").
		Where(squirrel.Eq{"worker_id": workerID}).
		Where(squirrel.Lt{"starts_at": to}).
		Where(squirrel.Gt{"ends_at": from}).
		OrderBy("starts_at ASC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByWorker - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByWorker - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// ListFixedInRange получает фиксированные слоты работника в диапазоне [from, to):
// созданные вручную либо уже не находящиеся в статусе available
// Именно эти слоты регенерация обязана обходить стороной
func (r *Repository) ListFixedInRange(ctx context.Context, workerID int64, from, to time.Time) ([]*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("availability_slots").
		Where(squirrel.Eq{"worker_id": workerID}).
		Where(squirrel.Lt{"starts_at": to}).
		Where(squirrel.Gt{"ends_at": from}).
		Where(squirrel.Or{
			squirrel.Eq{"generating_schedule_id": nil},
			squirrel.NotEq{"status": domain.SlotStatusAvailable},
		}).
		OrderBy("starts_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListFixedInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFixedInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// DeleteGeneratedUnbooked удаляет сгенерированные и незабронированные слоты
// работника в диапазоне [from, to) одним запросом
// Ручные, забронированные и помеченные оператором слоты не затрагиваются
func (r *Repository) DeleteGeneratedUnbooked(ctx context.Context, workerID int64, from, to time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_slots").
		Where(squirrel.Eq{"worker_id": workerID}).
		Where(squirrel.GtOrEq{"starts_at": from}).
		Where(squirrel.Lt{"starts_at": to}).
		Where(squirrel.NotEq{"generating_schedule_id": nil}).
		Where(squirrel.Eq{"status": domain.SlotStatusAvailable}).
		Where(squirrel.Eq{"booking_id": nil}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteGeneratedUnbooked - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteGeneratedUnbooked - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteGeneratedUnbooked - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// MarkBooked переводит слот available -> booked с привязкой бронирования
// Compare-and-set: условие по статусу в WHERE гарантирует, что конкурентный
// писатель получит ErrSlotConflict, а не молча перезапишет чужое бронирование
func (r *Repository) MarkBooked(ctx context.Context, slotID, bookingID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_slots").
		Set("status", domain.SlotStatusBooked).
		Set("booking_id", bookingID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slotID}).
		Where(squirrel.Eq{"status": domain.SlotStatusAvailable}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkBooked - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotConflict
	}

	return nil
}

// Release переводит слот booked/pending -> available и очищает привязку
func (r *Repository) Release(ctx context.Context, slotID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_slots").
		Set("status", domain.SlotStatusAvailable).
		Set("booking_id", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slotID}).
		Where(squirrel.Eq{"status": []domain.SlotStatus{domain.SlotStatusBooked, domain.SlotStatusPending}}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotConflict
	}

	return nil
}

// Update сохраняет статус, привязку бронирования и окно слота
// Доменная валидация перехода выполняется до вызова, на загруженном слоте
func (r *Repository) Update(ctx context.Context, s *domain.AvailabilitySlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_slots").
		Set("status", s.Status).
		Set("booking_id", s.BookingID).
		Set("starts_at", s.StartsAt).
		Set("ends_at", s.EndsAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.AvailabilitySlot, error) {
	slots := make([]*domain.AvailabilitySlot, 0)

	for rows.Next() {
		var s domain.AvailabilitySlot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.WorkerID,
			&s.BusinessID,
			&s.StartsAt,
			&s.EndsAt,
			&s.Status,
			&s.GeneratingScheduleID,
			&s.BookingID,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time

		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
