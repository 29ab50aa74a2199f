package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type LineSlotRepository struct {
	pool *pgxpool.Pool
}

func NewLineSlotRepository(pool *pgxpool.Pool) *LineSlotRepository {
	return &LineSlotRepository{pool: pool}
}

// GetSlotNumbers получает номера периодов линии на день недели.
// Возвращает не-nil срез: отсутствие строк значит "линии нечего
// предложить в этот день", а не "ограничения нет".
func (r *LineSlotRepository) GetSlotNumbers(ctx context.Context, line int, weekday string) ([]int, error) {
	query := `
		SELECT slot_number
		FROM line_slots
		WHERE line_number = $1 AND weekday = $2
		ORDER BY slot_number
	`

	rows, err := r.pool.Query(ctx, query, line, weekday)
	if err != nil {
		return nil, fmt.Errorf("get line slots: %w", err)
	}
	defer rows.Close()

	numbers := make([]int, 0)
	for rows.Next() {
		var number int
		if err := rows.Scan(&number); err != nil {
			return nil, fmt.Errorf("scan line slot: %w", err)
		}
		numbers = append(numbers, number)
	}

	return numbers, nil
}
