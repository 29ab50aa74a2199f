package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Crystallized21/spacecase/internal/model"
)

type SubjectRepository struct {
	pool *pgxpool.Pool
}

func NewSubjectRepository(pool *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{pool: pool}
}

// GetByID получает предмет по ID
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*model.Subject, error) {
	query := `
		SELECT id, code, name
		FROM subjects
		WHERE id = $1
	`

	var subject model.Subject
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&subject.ID,
		&subject.Code,
		&subject.Name,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get subject by id: %w", err)
	}

	return &subject, nil
}

// GetLinesForTeacher получает предметы учителя вместе с линиями расписания.
// Один предмет может встретиться несколько раз с разными линиями.
func (r *SubjectRepository) GetLinesForTeacher(ctx context.Context, clerkID string) ([]*model.SubjectLine, error) {
	query := `
		SELECT st.subject_id, s.name, s.code, st.line_number
		FROM subject_teachers st
		JOIN subjects s ON s.id = st.subject_id
		WHERE st.teacher_id = $1
		ORDER BY s.name, st.line_number
	`

	rows, err := r.pool.Query(ctx, query, clerkID)
	if err != nil {
		return nil, fmt.Errorf("get subject lines for teacher: %w", err)
	}
	defer rows.Close()

	var lines []*model.SubjectLine
	for rows.Next() {
		var line model.SubjectLine
		var name string
		err := rows.Scan(
			&line.SubjectID,
			&name,
			&line.Code,
			&line.Line,
		)
		if err != nil {
			return nil, fmt.Errorf("scan subject line: %w", err)
		}
		line.Name = fmt.Sprintf("%s (Line %d)", name, line.Line)
		lines = append(lines, &line)
	}

	return lines, nil
}

// TeacherHasLine проверяет что учитель ведёт предмет на этой линии
func (r *SubjectRepository) TeacherHasLine(ctx context.Context, clerkID string, subjectID int64, line int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM subject_teachers
			WHERE teacher_id = $1 AND subject_id = $2 AND line_number = $3
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query, clerkID, subjectID, line).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check teacher line: %w", err)
	}

	return exists, nil
}
