package slot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SlotService/pkg/psqlbuilder"
)

// Repository репозиторий для работы со слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ExistsForDate проверяет, созданы ли слоты на указанную дату
func (r *Repository) ExistsForDate(ctx context.Context, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("slots").
		Where(squirrel.Eq{"date": date}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsForDate - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsForDate - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// EnsureForDate создает слоты дневного шаблона для даты, если их еще нет.
// Идемпотентен: повторный вызов после создания строк ничего не меняет.
// Уникальный индекс (date, time) вместе с ON CONFLICT DO NOTHING закрывает
// гонку check-then-act между конкурентными первыми запросами на одну дату.
func (r *Repository) EnsureForDate(ctx context.Context, date time.Time, template []domain.TemplateEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	exists, err := r.ExistsForDate(ctx, date)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("slots").
		Columns("date", "time", "slot_type", "price", "is_full")

	for _, entry := range template {
		insertBuilder = insertBuilder.Values(date, entry.Time, entry.Type, entry.Price, false)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (date, time) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: EnsureForDate - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: EnsureForDate - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает слот по ID
// Внутри транзакции строка блокируется через FOR UPDATE, чтобы две
// конкурентные попытки бронирования одного слота сериализовались
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"date",
		"time",
		"slot_type",
		"price",
		"is_full",
		"created_at",
	).
		From("slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.Slot
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.Date,
		&slot.Time,
		&slot.Type,
		&slot.Price,
		&slot.IsFull,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	slot.CreatedAt = createdAt.Time

	return &slot, nil
}

// ListByDateWithCounts получает слоты даты вместе с количеством бронирований
func (r *Repository) ListByDateWithCounts(ctx context.Context, date time.Time) ([]*domain.SlotWithCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.date",
		"s.time",
		"s.slot_type",
		"s.price",
		"s.is_full",
		"s.created_at",
		"COUNT(b.id) AS booking_count",
	).
		From("slots s").
		LeftJoin("bookings b ON b.slot_id = s.id").
		Where(squirrel.Eq{"s.date": date}).
		GroupBy("s.id").
		OrderBy("s.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateWithCounts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateWithCounts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.SlotWithCount, 0)

	for rows.Next() {
		var slot domain.SlotWithCount
		var createdAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.Date,
			&slot.Time,
			&slot.Type,
			&slot.Price,
			&slot.IsFull,
			&createdAt,
			&slot.BookingCount,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListByDateWithCounts - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDateWithCounts - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// MarkFull помечает групповой слот занятым.
// Условный UPDATE с проверкой is_full = FALSE играет роль compare-and-swap:
// если флаг уже выставлен, возвращается ErrSlotAlreadyFull и вызывающая
// транзакция откатывается целиком
func (r *Repository) MarkFull(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("is_full", true).
		Where(squirrel.Eq{"id": id, "is_full": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkFull - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkFull - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkFull - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotAlreadyFull
	}

	return nil
}
