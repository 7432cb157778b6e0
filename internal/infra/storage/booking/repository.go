package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/m04kA/SMC-SportsBooking/internal/domain"
	"github.com/m04kA/SMC-SportsBooking/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL unique_violation
const uniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"user_id",
	"facility_id",
	"court_index",
	"facility_name",
	"sport",
	"location",
	"facility_size",
	"date_label",
	"time_range",
	"participant_count",
	"participants",
	"status",
	"created_at",
	"cancelled_at",
}

// Repository репозиторий бронирований в PostgreSQL
// Уникальность ID обеспечивается первичным ключом
type Repository struct {
	db    DBExecutor
	newID func() string
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db, newID: NewID}
}

// Create создает новое бронирование
// При совпадении ID (unique_violation) генерирует новый и повторяет вставку
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	stored := *booking
	stored.Status = domain.StatusUpcoming
	stored.CancelledAt = nil
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	for i := 0; i < maxIDAttempts; i++ {
		stored.ID = r.newID()

		query, args, err := buildInsert(&stored)
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
		}

		_, err = r.db.ExecContext(ctx, query, args...)
		if err == nil {
			return &stored, nil
		}

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			continue
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil, ErrDuplicateID
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает бронирования пользователя, новые первыми
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	query, args, err := buildSelectByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// Cancel переводит бронирование в статус Cancelled
// Обновление выполняется одним запросом с условием на текущий статус
func (r *Repository) Cancel(ctx context.Context, id string, cancelledAt time.Time) (*domain.Booking, error) {
	query, args, err := buildCancel(id, cancelledAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	booking, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Запись есть, но не обновилась: уже отменена
	if rowsAffected == 0 {
		return nil, ErrCannotCancel
	}

	return booking, nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func buildInsert(b *domain.Booking) (string, []interface{}, error) {
	return psqlbuilder.Insert("bookings").
		Columns(bookingColumns...).
		Values(
			b.ID,
			b.UserID,
			b.FacilityID,
			b.CourtIndex,
			b.FacilityName,
			b.Sport,
			b.Location,
			b.FacilitySize,
			b.Date,
			b.Time,
			b.ParticipantCount,
			b.Participants,
			string(b.Status),
			b.CreatedAt,
			b.CancelledAt,
		).
		ToSql()
}

func buildSelectByUser(userID int64) (string, []interface{}, error) {
	return psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
}

func buildCancel(id string, cancelledAt time.Time) (string, []interface{}, error) {
	return psqlbuilder.Update("bookings").
		Set("status", string(domain.StatusCancelled)).
		Set("cancelled_at", cancelledAt).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		ToSql()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var status string
	var cancelledAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.FacilityID,
		&b.CourtIndex,
		&b.FacilityName,
		&b.Sport,
		&b.Location,
		&b.FacilitySize,
		&b.Date,
		&b.Time,
		&b.ParticipantCount,
		&b.Participants,
		&status,
		&b.CreatedAt,
		&cancelledAt,
	)
	if err != nil {
		return nil, err
	}

	b.Status = domain.BookingStatus(status)
	if cancelledAt.Valid {
		t := cancelledAt.Time
		b.CancelledAt = &t
	}

	return &b, nil
}
