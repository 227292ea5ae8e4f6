package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/CWS-BookingService/pkg/types"
)

// endTimeExpr вычисляет end_time на стороне БД из start_time и длительности в часах.
// Инвариант end_time = start_time + duration поддерживается самим запросом,
// Go-код время окончания никогда не считает.
func endTimeExpr(startTime types.TimeString, durationHours int) squirrel.Sqlizer {
	return squirrel.Expr("?::time + make_interval(hours => ?)", startTime, durationHours)
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// end_time вычисляется внутри INSERT, созданная строка возвращается через RETURNING
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"title",
			"description",
			"date",
			"start_time",
			"end_time",
			"duration",
			"phone_number",
			"user_email",
			"room_id",
		).
		Values(
			booking.Title,
			booking.Description,
			booking.Date,
			booking.StartTime,
			endTimeExpr(booking.StartTime, booking.Duration),
			booking.Duration,
			booking.PhoneNumber,
			booking.UserEmail,
			booking.RoomID,
		).
		Suffix("RETURNING id, end_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.EndTime,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// ListByUser возвращает бронирования пользователя вместе с типом комнаты
// Фильтр опционально ограничивает выборку предстоящими бронированиями
// или конкретной датой. Сортировка по дате и времени начала
func (r *Repository) ListByUser(ctx context.Context, filter domain.UserBookingsFilter) ([]*domain.UserBooking, error) {
	selectBuilder := psqlbuilder.Select(
		"bookings.id",
		"bookings.title",
		"bookings.description",
		"bookings.date",
		"bookings.start_time",
		"bookings.end_time",
		"bookings.user_email",
		"bookings.phone_number",
		"rooms.type",
	).
		From("bookings").
		Join("rooms ON bookings.room_id = rooms.id").
		Where(squirrel.Eq{"bookings.user_email": filter.UserEmail})

	if filter.UpcomingOnly {
		selectBuilder = selectBuilder.Where(squirrel.Expr("bookings.date >= CURRENT_DATE"))
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"bookings.date": *filter.Date})
	}

	selectBuilder = selectBuilder.OrderBy("bookings.date ASC", "bookings.start_time ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanUserBookings(rows)
}

// Update перезаписывает start_time, duration, date и пересчитанный end_time
// Обновление несуществующего id выполняется успешно и не затрагивает ни одной строки
func (r *Repository) Update(ctx context.Context, id int64, startTime types.TimeString, durationHours int, date time.Time) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("start_time", startTime).
		Set("duration", durationHours).
		Set("date", date).
		Set("end_time", endTimeExpr(startTime, durationHours)).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete физически удаляет бронирование
// Удаление несуществующего id выполняется успешно и не затрагивает ни одной строки
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// scanUserBookings сканирует результаты запроса в слайс бронирований с типом комнаты
func scanUserBookings(rows *sql.Rows) ([]*domain.UserBooking, error) {
	bookings := make([]*domain.UserBooking, 0)

	for rows.Next() {
		var booking domain.UserBooking

		err := rows.Scan(
			&booking.ID,
			&booking.Title,
			&booking.Description,
			&booking.Date,
			&booking.StartTime,
			&booking.EndTime,
			&booking.UserEmail,
			&booking.PhoneNumber,
			&booking.RoomType,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanUserBookings - scan row: %v", ErrScanRow, err)
		}

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanUserBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
