package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Crystallized21/spacecase/internal/model"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create создаёт нового пользователя (учителя из вебхука Clerk)
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (user_id, name, email, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		user.UserID,
		user.Name,
		user.Email,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// GetByClerkID получает пользователя по Clerk subject
func (r *UserRepository) GetByClerkID(ctx context.Context, clerkID string) (*model.User, error) {
	query := `
		SELECT id::text, user_id, name, email, role, created_at
		FROM users
		WHERE user_id = $1
	`

	var user model.User
	err := r.pool.QueryRow(ctx, query, clerkID).Scan(
		&user.ID,
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Пользователь не найден
		}
		return nil, fmt.Errorf("get user by clerk id: %w", err)
	}

	return &user, nil
}
