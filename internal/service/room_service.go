package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/Crystallized21/spacecase/internal/cache"
	"github.com/Crystallized21/spacecase/internal/model"
	"github.com/Crystallized21/spacecase/internal/natsort"
	"github.com/Crystallized21/spacecase/internal/repository"
	"github.com/Crystallized21/spacecase/internal/telemetry"
)

type RoomService struct {
	commonRepo  *repository.CommonRepository
	roomRepo    *repository.RoomRepository
	bookingRepo *repository.BookingRepository
	cache       *cache.Cache
	logger      *zap.Logger
}

func NewRoomService(
	commonRepo *repository.CommonRepository,
	roomRepo *repository.RoomRepository,
	bookingRepo *repository.BookingRepository,
	cache *cache.Cache,
	logger *zap.Logger,
) *RoomService {
	return &RoomService{
		commonRepo:  commonRepo,
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
		logger:      logger,
	}
}

// Commons получает названия всех зон, через кэш
func (s *RoomService) Commons(ctx context.Context) ([]string, error) {
	const key = "commons"

	var names []string
	if s.cache.Get(ctx, key, &names) {
		return names, nil
	}

	names, err := s.commonRepo.GetAllNames(ctx)
	if err != nil {
		telemetry.CaptureError(err, "commons.select", nil)
		return nil, err
	}
	if names == nil {
		names = []string{}
	}

	s.cache.Set(ctx, key, names)
	return names, nil
}

// Rooms отдаёт кабинеты зоны с флагом занятости на дату и период,
// отсортированные натурально ("Room 2" раньше "Room 10").
// Ошибка проверки занятости не валит запрос — кабинеты показываем
// свободными, двойную бронь всё равно поймает вставка.
func (s *RoomService) Rooms(ctx context.Context, commonName, rawDate string, period int) ([]model.RoomAvailability, error) {
	common, err := s.commonRepo.GetByName(ctx, commonName)
	if err != nil {
		telemetry.CaptureError(err, "commons.select", map[string]any{"common": commonName})
		return nil, err
	}
	if common == nil {
		telemetry.CaptureError(fmt.Errorf("common %q not found", commonName), "commons.select", nil)
		return nil, ErrCommonNotFound
	}

	rooms, err := s.roomRepo.GetBookableByCommon(ctx, common.ID)
	if err != nil {
		telemetry.CaptureError(err, "rooms.select", map[string]any{"common_id": common.ID})
		return nil, err
	}

	var bookedIDs []int64
	if date, ok := NormalizeDate(rawDate); ok && period > 0 {
		bookedIDs, err = s.bookingRepo.GetBookedRoomIDs(ctx, date, period)
		if err != nil {
			s.logger.Error("Failed to check room bookings",
				zap.String("date", date),
				zap.Int("period", period),
				zap.Error(err),
			)
			telemetry.CaptureError(err, "bookings.select", map[string]any{"date": date, "slot": period})
			bookedIDs = nil
		}
	}

	return AnnotateRooms(rooms, bookedIDs), nil
}

// AnnotateRooms собирает ответ по кабинетам: флаг занятости
// плюс натуральная сортировка по названию
func AnnotateRooms(rooms []*model.Room, bookedIDs []int64) []model.RoomAvailability {
	booked := make(map[int64]bool, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = true
	}

	result := make([]model.RoomAvailability, 0, len(rooms))
	for _, room := range rooms {
		result = append(result, model.RoomAvailability{
			Name:     room.Name,
			IsBooked: booked[room.ID],
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return natsort.Compare(result[i].Name, result[j].Name) < 0
	})

	return result
}
