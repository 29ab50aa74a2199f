package service

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Ошибки бизнес-логики. HTTP-слой раскладывает их по статусам,
// всё остальное считается ошибкой хранилища и уходит как 500.
var (
	ErrUnauthenticated = errors.New("no authenticated identity")
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrCommonNotFound  = errors.New("common not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrValidation      = errors.New("missing required fields")
	ErrSlotConflict    = errors.New("slot already booked")
)

// uniqueViolation код Postgres для нарушения уникального ограничения
const uniqueViolation = "23505"

// isUniqueViolation проверяет что ошибка — конфликт уникальности.
// Так отличаем двойную бронь от остальных ошибок вставки.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
