package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Crystallized21/spacecase/internal/model"
)

type stubTeachers struct{ user *model.User }

func (s *stubTeachers) GetByClerkID(_ context.Context, _ string) (*model.User, error) {
	return s.user, nil
}

type stubCommons struct{ common *model.Common }

func (s *stubCommons) GetByName(_ context.Context, name string) (*model.Common, error) {
	if s.common != nil && s.common.Name == name {
		return s.common, nil
	}
	return nil, nil
}

type stubRooms struct{ rooms []*model.Room }

func (s *stubRooms) GetByNameAndCommon(_ context.Context, name string, commonID int64) (*model.Room, error) {
	for _, room := range s.rooms {
		if room.Name == name && room.CommonID == commonID {
			return room, nil
		}
	}
	return nil, nil
}

// stubBookings повторяет поведение уникального индекса (room_id, date, period)
type stubBookings struct{ created []*model.Booking }

func (s *stubBookings) Create(_ context.Context, booking *model.Booking) error {
	for _, prev := range s.created {
		if prev.RoomID == booking.RoomID && prev.Date == booking.Date && prev.Period == booking.Period {
			return fmt.Errorf("create booking: %w", &pgconn.PgError{Code: "23505"})
		}
	}
	s.created = append(s.created, booking)
	return nil
}

func (s *stubBookings) ListViews(_ context.Context, _ string) ([]*model.BookingView, error) {
	return []*model.BookingView{}, nil
}

// Две зоны с кабинетами, но резолвится только Pavilion:
// кабинет чужой зоны не должен подойти по одному названию.
func bookingFixture() (*BookingService, *stubBookings) {
	bookings := &stubBookings{}
	svc := NewBookingService(
		&stubTeachers{user: &model.User{ID: "u-1", UserID: "user_42", Email: "jsmith@ormiston.school.nz"}},
		&stubCommons{common: &model.Common{ID: 1, Name: "Pavilion"}},
		&stubRooms{rooms: []*model.Room{
			{ID: 7, Name: "Room 2", CommonID: 1},
			{ID: 9, Name: "Science 3", CommonID: 2},
		}},
		bookings,
		zap.NewNop(),
	)
	return svc, bookings
}

func TestCreateBooking(t *testing.T) {
	svc, store := bookingFixture()

	booking, err := svc.Create(context.Background(), "user_42", CreateBookingInput{
		SubjectID: 5,
		Common:    "Pavilion",
		Room:      "Room 2",
		Date:      "2025-07-14",
		Period:    3,
	})
	require.NoError(t, err)

	assert.Equal(t, "user_42", booking.UserID)
	assert.Equal(t, int64(7), booking.RoomID)
	assert.Equal(t, "2025-07-14", booking.Date)
	assert.Len(t, store.created, 1)
}

func TestCreateBookingRoomOutsideCommon(t *testing.T) {
	svc, store := bookingFixture()

	_, err := svc.Create(context.Background(), "user_42", CreateBookingInput{
		SubjectID: 5,
		Common:    "Pavilion",
		Room:      "Science 3",
		Date:      "2025-07-14",
		Period:    3,
	})

	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.Empty(t, store.created)
}

func TestCreateBookingDuplicateSlot(t *testing.T) {
	svc, store := bookingFixture()

	input := CreateBookingInput{
		SubjectID: 5,
		Common:    "Pavilion",
		Room:      "Room 2",
		Date:      "2025-07-14",
		Period:    3,
	}

	_, err := svc.Create(context.Background(), "user_42", input)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "user_42", input)
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Len(t, store.created, 1)
}

func TestCreateBookingUnknownCommon(t *testing.T) {
	svc, _ := bookingFixture()

	_, err := svc.Create(context.Background(), "user_42", CreateBookingInput{
		SubjectID: 5,
		Common:    "Atrium",
		Room:      "Room 2",
		Date:      "2025-07-14",
		Period:    3,
	})

	assert.ErrorIs(t, err, ErrCommonNotFound)
}

func TestCreateBookingUnknownTeacher(t *testing.T) {
	bookings := &stubBookings{}
	svc := NewBookingService(&stubTeachers{}, &stubCommons{}, &stubRooms{}, bookings, zap.NewNop())

	_, err := svc.Create(context.Background(), "user_missing", CreateBookingInput{
		SubjectID: 5,
		Common:    "Pavilion",
		Room:      "Room 2",
		Date:      "2025-07-14",
		Period:    3,
	})

	assert.ErrorIs(t, err, ErrTeacherNotFound)
}

func TestNormalizeDate(t *testing.T) {
	date, ok := NormalizeDate("2025-07-14")
	assert.True(t, ok)
	assert.Equal(t, "2025-07-14", date)
}

func TestNormalizeDateTruncatesTimestamp(t *testing.T) {
	date, ok := NormalizeDate("2025-07-14T09:00:00.000Z")
	assert.True(t, ok)
	assert.Equal(t, "2025-07-14", date)
}

func TestNormalizeDateRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "not-a-date", "14/07/2025", "2025-13-99"} {
		_, ok := NormalizeDate(raw)
		assert.False(t, ok, "input %q", raw)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}
	assert.True(t, isUniqueViolation(pgErr))
	assert.True(t, isUniqueViolation(fmt.Errorf("create booking: %w", pgErr)))

	assert.False(t, isUniqueViolation(fmt.Errorf("boom")))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
}
