package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Crystallized21/spacecase/internal/model"
)

type RoomRepository struct {
	pool *pgxpool.Pool
}

func NewRoomRepository(pool *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{pool: pool}
}

// GetBookableByCommon получает все доступные для брони кабинеты зоны
func (r *RoomRepository) GetBookableByCommon(ctx context.Context, commonID int64) ([]*model.Room, error) {
	query := `
		SELECT id, name, common_id, is_bookable
		FROM rooms
		WHERE common_id = $1 AND is_bookable = true
	`

	rows, err := r.pool.Query(ctx, query, commonID)
	if err != nil {
		return nil, fmt.Errorf("get bookable rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*model.Room
	for rows.Next() {
		var room model.Room
		err := rows.Scan(
			&room.ID,
			&room.Name,
			&room.CommonID,
			&room.IsBookable,
		)
		if err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}

// GetByName получает кабинет по названию без привязки к зоне.
// Названия кабинетов в школе уникальны, берём первый попавшийся.
func (r *RoomRepository) GetByName(ctx context.Context, name string) (*model.Room, error) {
	query := `
		SELECT id, name, common_id, is_bookable
		FROM rooms
		WHERE name = $1
		LIMIT 1
	`

	var room model.Room
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&room.ID,
		&room.Name,
		&room.CommonID,
		&room.IsBookable,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get room by name: %w", err)
	}

	return &room, nil
}

// GetByNameAndCommon получает кабинет по названию внутри конкретной зоны.
// Кабинет из чужой зоны не находится, это не ошибка запроса.
func (r *RoomRepository) GetByNameAndCommon(ctx context.Context, name string, commonID int64) (*model.Room, error) {
	query := `
		SELECT id, name, common_id, is_bookable
		FROM rooms
		WHERE name = $1 AND common_id = $2
	`

	var room model.Room
	err := r.pool.QueryRow(ctx, query, name, commonID).Scan(
		&room.ID,
		&room.Name,
		&room.CommonID,
		&room.IsBookable,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get room by name: %w", err)
	}

	return &room, nil
}
