package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SlotService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL unique_violation
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Нарушение уникального индекса (user_id, slot_id) мапится в
// ErrDuplicateBooking: проверка "уже бронировал" выполняется раньше в
// usecase, индекс страхует от гонки между конкурентными транзакциями
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"slot_id",
			"number_of_seats",
			"amount",
			"is_leader",
		).
		Values(
			booking.UserID,
			booking.SlotID,
			booking.NumberOfSeats,
			booking.Amount,
			booking.IsLeader,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateBooking
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// CountBySlot получает количество бронирований слота
func (r *Repository) CountBySlot(ctx context.Context, slotID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"slot_id": slotID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountBySlot - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountBySlot - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// ExistsByUserAndSlot проверяет, есть ли у пользователя бронирование слота
func (r *Repository) ExistsByUserAndSlot(ctx context.Context, userID, slotID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"user_id": userID, "slot_id": slotID}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByUserAndSlot - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByUserAndSlot - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// ListByUserWithSlots получает бронирования пользователя вместе с данными слотов
// Порядок стабильный - по id бронирования
func (r *Repository) ListByUserWithSlots(ctx context.Context, userID int64) ([]*domain.BookingWithSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.user_id",
		"b.slot_id",
		"b.number_of_seats",
		"b.amount",
		"b.is_leader",
		"b.created_at",
		"s.id",
		"s.date",
		"s.time",
		"s.slot_type",
		"s.price",
		"s.is_full",
	).
		From("bookings b").
		Join("slots s ON s.id = b.slot_id").
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByUserWithSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUserWithSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.BookingWithSlot, 0)

	for rows.Next() {
		var item domain.BookingWithSlot
		var createdAt sql.NullTime

		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.SlotID,
			&item.NumberOfSeats,
			&item.Amount,
			&item.IsLeader,
			&createdAt,
			&item.Slot.ID,
			&item.Slot.Date,
			&item.Slot.Time,
			&item.Slot.Type,
			&item.Slot.Price,
			&item.Slot.IsFull,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListByUserWithSlots - scan row: %v", ErrScanRow, err)
		}

		item.CreatedAt = createdAt.Time

		bookings = append(bookings, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUserWithSlots - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// ListOccupantsBySlot получает всех бронировавших слот вместе с именами
// Используется для показа со-бронирующих в выписке пользователя
func (r *Repository) ListOccupantsBySlot(ctx context.Context, slotID int64) ([]*domain.SlotOccupant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.user_id",
		"u.name",
	).
		From("bookings b").
		Join("users u ON u.id = b.user_id").
		Where(squirrel.Eq{"b.slot_id": slotID}).
		OrderBy("b.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupantsBySlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupantsBySlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	occupants := make([]*domain.SlotOccupant, 0)

	for rows.Next() {
		var occupant domain.SlotOccupant

		if err := rows.Scan(&occupant.BookingID, &occupant.UserID, &occupant.UserName); err != nil {
			return nil, fmt.Errorf("%w: ListOccupantsBySlot - scan row: %v", ErrScanRow, err)
		}

		occupants = append(occupants, &occupant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOccupantsBySlot - rows error: %v", ErrScanRow, err)
	}

	return occupants, nil
}
