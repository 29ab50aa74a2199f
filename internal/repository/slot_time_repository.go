package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Crystallized21/spacecase/internal/model"
)

type SlotTimeRepository struct {
	pool *pgxpool.Pool
}

func NewSlotTimeRepository(pool *pgxpool.Pool) *SlotTimeRepository {
	return &SlotTimeRepository{pool: pool}
}

// GetByWeekday получает периоды дня недели по возрастанию номера.
// Пустой weekday отдаёт всё расписание целиком.
func (r *SlotTimeRepository) GetByWeekday(ctx context.Context, weekday string) ([]*model.SlotTime, error) {
	query := `
		SELECT id, slot_number, weekday, start_time, end_time
		FROM slot_times
	`
	var args []interface{}
	if weekday != "" {
		query += ` WHERE weekday = $1`
		args = append(args, weekday)
	}
	query += ` ORDER BY slot_number`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get slot times: %w", err)
	}
	defer rows.Close()

	var slots []*model.SlotTime
	for rows.Next() {
		var slot model.SlotTime
		err := rows.Scan(
			&slot.ID,
			&slot.SlotNumber,
			&slot.Weekday,
			&slot.StartTime,
			&slot.EndTime,
		)
		if err != nil {
			return nil, fmt.Errorf("scan slot time: %w", err)
		}
		slots = append(slots, &slot)
	}

	return slots, nil
}
