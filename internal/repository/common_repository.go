package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Crystallized21/spacecase/internal/model"
)

type CommonRepository struct {
	pool *pgxpool.Pool
}

func NewCommonRepository(pool *pgxpool.Pool) *CommonRepository {
	return &CommonRepository{pool: pool}
}

// GetAllNames получает названия всех зон
func (r *CommonRepository) GetAllNames(ctx context.Context) ([]string, error) {
	query := `SELECT name FROM commons ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get commons: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan common name: %w", err)
		}
		names = append(names, name)
	}

	return names, nil
}

// GetByName получает зону по названию
func (r *CommonRepository) GetByName(ctx context.Context, name string) (*model.Common, error) {
	query := `
		SELECT id, name
		FROM commons
		WHERE name = $1
	`

	var common model.Common
	err := r.pool.QueryRow(ctx, query, name).Scan(&common.ID, &common.Name)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Зона не найдена
		}
		return nil, fmt.Errorf("get common by name: %w", err)
	}

	return &common, nil
}
