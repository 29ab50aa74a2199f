package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Crystallized21/spacecase/internal/model"
	"github.com/Crystallized21/spacecase/internal/repository"
	"github.com/Crystallized21/spacecase/internal/telemetry"
)

// EmailRules правила отбора учителей по школьному email
type EmailRules struct {
	TeacherDomain string // "@ormiston.school.nz"
	StudentPrefix string // "st" — ученики, их не заводим
	DevPrefix     string // "st23030" — исключение для разработчика
}

// IsTeacher учительский адрес: школьный домен и не ученический префикс
func (r EmailRules) IsTeacher(email string) bool {
	return !strings.HasPrefix(email, r.StudentPrefix) && strings.HasSuffix(email, r.TeacherDomain)
}

// IsDev адрес разработчика, пускаем несмотря на ученический префикс
func (r EmailRules) IsDev(email string) bool {
	return strings.HasPrefix(email, r.DevPrefix)
}

type UserService struct {
	userRepo    *repository.UserRepository
	subjectRepo *repository.SubjectRepository
	rules       EmailRules
	logger      *zap.Logger
}

func NewUserService(
	userRepo *repository.UserRepository,
	subjectRepo *repository.SubjectRepository,
	rules EmailRules,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		subjectRepo: subjectRepo,
		rules:       rules,
		logger:      logger,
	}
}

// SyncCreatedUser заводит учителя по событию user.created из Clerk.
// Не-учителя молча пропускаются, дубликаты логируются и не считаются
// ошибкой — Clerk ретраит вебхуки.
func (s *UserService) SyncCreatedUser(ctx context.Context, clerkID, firstName, lastName, email string) error {
	email = strings.ToLower(email)

	if !s.rules.IsTeacher(email) && !s.rules.IsDev(email) {
		s.logger.Info("🚫 Not a teacher, skipping insert", zap.String("email", email))
		return nil
	}

	user := &model.User{
		UserID: clerkID,
		Name:   fmt.Sprintf("%s %s", firstName, lastName),
		Email:  email,
		Role:   model.UserRoleTeacher,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			s.logger.Warn("⚠️  User already exists", zap.String("email", email))
			return nil
		}
		telemetry.CaptureError(err, "users.insert", map[string]any{"email": email})
		return err
	}

	s.logger.Info("✅ Teacher added",
		zap.String("user_id", clerkID),
		zap.String("email", email),
	)

	return nil
}

// ResolveTeacher находит учителя по Clerk subject.
// Пустой subject — незалогиненный запрос.
func (s *UserService) ResolveTeacher(ctx context.Context, clerkID string) (*model.User, error) {
	if clerkID == "" {
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.GetByClerkID(ctx, clerkID)
	if err != nil {
		telemetry.CaptureError(err, "users.select", map[string]any{"user_id": clerkID})
		return nil, err
	}
	if user == nil {
		telemetry.CaptureMessage("User not found for Clerk ID: " + clerkID)
		return nil, ErrTeacherNotFound
	}

	return user, nil
}

// SubjectsForTeacher предметы учителя с линиями расписания
func (s *UserService) SubjectsForTeacher(ctx context.Context, clerkID string) ([]*model.SubjectLine, error) {
	if _, err := s.ResolveTeacher(ctx, clerkID); err != nil {
		return nil, err
	}

	lines, err := s.subjectRepo.GetLinesForTeacher(ctx, clerkID)
	if err != nil {
		telemetry.CaptureError(err, "subject_teachers.select", map[string]any{"teacher_id": clerkID})
		return nil, err
	}
	if lines == nil {
		lines = []*model.SubjectLine{}
	}

	return lines, nil
}
