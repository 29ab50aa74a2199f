package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Crystallized21/spacecase/internal/model"
	"github.com/Crystallized21/spacecase/internal/telemetry"
)

// Узкие интерфейсы под нужды сервиса, в проде их закрывают репозитории.
type teacherGetter interface {
	GetByClerkID(ctx context.Context, clerkID string) (*model.User, error)
}

type commonGetter interface {
	GetByName(ctx context.Context, name string) (*model.Common, error)
}

type roomGetter interface {
	GetByNameAndCommon(ctx context.Context, name string, commonID int64) (*model.Room, error)
}

type bookingStore interface {
	Create(ctx context.Context, booking *model.Booking) error
	ListViews(ctx context.Context, clerkID string) ([]*model.BookingView, error)
}

type BookingService struct {
	userRepo    teacherGetter
	commonRepo  commonGetter
	roomRepo    roomGetter
	bookingRepo bookingStore
	logger      *zap.Logger
}

func NewBookingService(
	userRepo teacherGetter,
	commonRepo commonGetter,
	roomRepo roomGetter,
	bookingRepo bookingStore,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		userRepo:    userRepo,
		commonRepo:  commonRepo,
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// CreateBookingInput поля формы бронирования как их шлёт фронт
type CreateBookingInput struct {
	SubjectID     int64
	Line          int
	Common        string
	Room          string
	Date          string
	Period        int
	Justification string
}

// Create создаёт бронирование от имени учителя.
// Названия зоны и кабинета из формы резолвятся в id, одна вставка,
// конфликт (room, date, period) разруливает уникальный индекс в базе.
func (s *BookingService) Create(ctx context.Context, clerkID string, input CreateBookingInput) (*model.Booking, error) {
	if clerkID == "" {
		return nil, ErrUnauthenticated
	}

	teacher, err := s.userRepo.GetByClerkID(ctx, clerkID)
	if err != nil {
		return nil, fmt.Errorf("resolve teacher: %w", err)
	}
	if teacher == nil {
		return nil, ErrTeacherNotFound
	}

	date, ok := NormalizeDate(input.Date)
	if !ok || input.SubjectID == 0 || input.Room == "" || input.Period == 0 {
		return nil, ErrValidation
	}

	common, err := s.commonRepo.GetByName(ctx, input.Common)
	if err != nil {
		return nil, fmt.Errorf("resolve common: %w", err)
	}
	if common == nil {
		return nil, ErrCommonNotFound
	}

	// Кабинет ищем только внутри выбранной зоны: кабинет с таким же
	// названием из другой зоны не должен подойти молча.
	room, err := s.roomRepo.GetByNameAndCommon(ctx, input.Room, common.ID)
	if err != nil {
		return nil, fmt.Errorf("resolve room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	booking := &model.Booking{
		UserID:        teacher.UserID,
		RoomID:        room.ID,
		SubjectID:     input.SubjectID,
		Date:          date,
		Period:        input.Period,
		Justification: input.Justification,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	s.logger.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("teacher", teacher.Email),
		zap.String("room", room.Name),
		zap.String("date", date),
		zap.Int("period", input.Period),
	)

	return booking, nil
}

// List получает бронирования для показа, опционально по одному учителю
func (s *BookingService) List(ctx context.Context, clerkID string) ([]*model.BookingView, error) {
	views, err := s.bookingRepo.ListViews(ctx, clerkID)
	if err != nil {
		telemetry.CaptureError(err, "bookings.select", map[string]any{"userId": clerkID})
		return nil, err
	}
	if views == nil {
		views = []*model.BookingView{}
	}
	return views, nil
}

// NormalizeDate приводит дату из формы к yyyy-mm-dd.
// Фронт иногда шлёт полный ISO timestamp, лишнее отрезаем.
func NormalizeDate(raw string) (string, bool) {
	if len(raw) > 10 {
		raw = raw[:10]
	}
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		return "", false
	}
	return raw, true
}
