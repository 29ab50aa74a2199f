package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Crystallized21/spacecase/internal/model"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// Create создаёт новое бронирование. Нарушение уникальности
// (room_id, date, period) отдаётся как есть, разбор на уровне сервиса.
func (r *BookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	booking.ID = uuid.NewString()

	query := `
		INSERT INTO bookings (id, user_id, room_id, subject_id, date, period, justification)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
		RETURNING created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		booking.ID,
		booking.UserID,
		booking.RoomID,
		booking.SubjectID,
		booking.Date,
		booking.Period,
		booking.Justification,
	).Scan(&booking.CreatedAt)

	if err != nil {
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

// GetBookedPeriodsForRoom получает занятые периоды кабинета на дату
func (r *BookingRepository) GetBookedPeriodsForRoom(ctx context.Context, roomID int64, date string) ([]int, error) {
	query := `
		SELECT period
		FROM bookings
		WHERE room_id = $1 AND date = $2
	`

	return r.queryPeriods(ctx, query, roomID, date)
}

// GetBookedPeriods получает занятые периоды на дату по всем кабинетам.
// Грубый сигнал для формы, пока кабинет ещё не выбран.
func (r *BookingRepository) GetBookedPeriods(ctx context.Context, date string) ([]int, error) {
	query := `
		SELECT DISTINCT period
		FROM bookings
		WHERE date = $1
	`

	return r.queryPeriods(ctx, query, date)
}

// GetBookedRoomIDs получает кабинеты, занятые на дату и период
func (r *BookingRepository) GetBookedRoomIDs(ctx context.Context, date string, period int) ([]int64, error) {
	query := `
		SELECT room_id
		FROM bookings
		WHERE date = $1 AND period = $2
	`

	rows, err := r.pool.Query(ctx, query, date, period)
	if err != nil {
		return nil, fmt.Errorf("get booked rooms: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan booked room id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// ListViews получает бронирования с данными учителя, кабинета и предмета.
// Пустой clerkID отдаёт все записи в порядке вставки,
// по учителю — его записи по дате по убыванию.
func (r *BookingRepository) ListViews(ctx context.Context, clerkID string) ([]*model.BookingView, error) {
	query, args := listViewsQuery(clerkID)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list booking views: %w", err)
	}
	defer rows.Close()

	var views []*model.BookingView
	for rows.Next() {
		var view model.BookingView
		err := rows.Scan(
			&view.ID,
			&view.Date,
			&view.Time,
			&view.Notes,
			&view.TeacherName,
			&view.TeacherEmail,
			&view.Room,
			&view.Commons,
			&view.Subject,
			&view.SubjectCode,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking view: %w", err)
		}
		views = append(views, &view)
	}

	return views, nil
}

// listViewsQuery собирает выборку витрины бронирований
func listViewsQuery(clerkID string) (string, []interface{}) {
	query := `
		SELECT b.id::text, b.date::text, b.period,
			COALESCE(b.justification, ''),
			COALESCE(u.name, ''), COALESCE(u.email, ''),
			COALESCE(r.name, ''), COALESCE(c.name, ''),
			COALESCE(s.name, ''), COALESCE(s.code, '')
		FROM bookings b
		LEFT JOIN users u ON u.user_id = b.user_id
		LEFT JOIN rooms r ON r.id = b.room_id
		LEFT JOIN commons c ON c.id = r.common_id
		LEFT JOIN subjects s ON s.id = b.subject_id
	`
	if clerkID == "" {
		return query, nil
	}
	return query + ` WHERE b.user_id = $1 ORDER BY b.date DESC`, []interface{}{clerkID}
}

// queryPeriods общий сканер для запросов, отдающих только номера периодов
func (r *BookingRepository) queryPeriods(ctx context.Context, query string, args ...interface{}) ([]int, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get booked periods: %w", err)
	}
	defer rows.Close()

	var periods []int
	for rows.Next() {
		var period int
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("scan period: %w", err)
		}
		periods = append(periods, period)
	}

	return periods, nil
}
