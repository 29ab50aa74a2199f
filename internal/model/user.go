package model

import "time"

type UserRole string

const (
	UserRoleTeacher UserRole = "teacher"
	UserRoleAdmin   UserRole = "admin"
)

// User учитель, синхронизированный из Clerk через вебхук.
// После создания запись с нашей стороны не меняется.
type User struct {
	ID        string    `json:"id"`      // внутренний uuid
	UserID    string    `json:"user_id"` // Clerk subject (user_xxx)
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
