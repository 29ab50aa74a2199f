package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Crystallized21/spacecase/internal/cache"
	"github.com/Crystallized21/spacecase/internal/model"
	"github.com/Crystallized21/spacecase/internal/repository"
	"github.com/Crystallized21/spacecase/internal/telemetry"
)

type SlotService struct {
	slotRepo     *repository.SlotTimeRepository
	lineSlotRepo *repository.LineSlotRepository
	roomRepo     *repository.RoomRepository
	commonRepo   *repository.CommonRepository
	bookingRepo  *repository.BookingRepository
	cache        *cache.Cache
	logger       *zap.Logger
}

func NewSlotService(
	slotRepo *repository.SlotTimeRepository,
	lineSlotRepo *repository.LineSlotRepository,
	roomRepo *repository.RoomRepository,
	commonRepo *repository.CommonRepository,
	bookingRepo *repository.BookingRepository,
	cache *cache.Cache,
	logger *zap.Logger,
) *SlotService {
	return &SlotService{
		slotRepo:     slotRepo,
		lineSlotRepo: lineSlotRepo,
		roomRepo:     roomRepo,
		commonRepo:   commonRepo,
		bookingRepo:  bookingRepo,
		cache:        cache,
		logger:       logger,
	}
}

// SlotQuery параметры запроса периодов. Всё кроме дня опционально.
type SlotQuery struct {
	Day    string
	Room   string // название кабинета, занятость считается точно по нему
	Common string // зона, нужна чтобы найти кабинет по названию
	Date   string
	Line   int // линия расписания, ограничивает допустимые периоды
}

// Slots отдаёт периоды дня с флагом занятости. Ошибки чтения не валят
// запрос: форма должна показаться, пусть и без пометок занятости.
func (s *SlotService) Slots(ctx context.Context, q SlotQuery) []model.SlotAvailability {
	slots := s.catalogue(ctx, q.Day)

	restrict := s.lineRestriction(ctx, q.Line, q.Day)

	booked := s.bookedPeriods(ctx, q)

	return MarkBooked(slots, restrict, booked)
}

// catalogue расписание периодов дня, через кэш
func (s *SlotService) catalogue(ctx context.Context, day string) []*model.SlotTime {
	key := "slots:" + day

	var slots []*model.SlotTime
	if s.cache.Get(ctx, key, &slots) {
		return slots
	}

	slots, err := s.slotRepo.GetByWeekday(ctx, day)
	if err != nil {
		s.logger.Error("Failed to fetch slot times",
			zap.String("day", day),
			zap.Error(err),
		)
		telemetry.CaptureError(err, "slot_times.select", map[string]any{"day": day})
		return nil
	}

	s.cache.Set(ctx, key, slots)
	return slots
}

// lineRestriction номера периодов линии на этот день.
// nil значит "ограничения нет", пустой срез — "линии нечего предложить".
func (s *SlotService) lineRestriction(ctx context.Context, line int, day string) []int {
	if line == 0 {
		return nil
	}

	numbers, err := s.lineSlotRepo.GetSlotNumbers(ctx, line, day)
	if err != nil {
		s.logger.Error("Failed to fetch line slots",
			zap.Int("line", line),
			zap.String("day", day),
			zap.Error(err),
		)
		telemetry.CaptureError(err, "line_slots.select", map[string]any{"line": line, "day": day})
		return nil // деградируем до полного списка, не прячем форму
	}

	return numbers
}

// bookedPeriods занятые периоды: точно по кабинету, если он выбран,
// иначе грубо по всем кабинетам на дату
func (s *SlotService) bookedPeriods(ctx context.Context, q SlotQuery) map[int]bool {
	date, ok := NormalizeDate(q.Date)
	if !ok {
		return nil
	}

	var (
		periods []int
		err     error
	)

	if roomID, found := s.resolveRoom(ctx, q.Room, q.Common); found {
		periods, err = s.bookingRepo.GetBookedPeriodsForRoom(ctx, roomID, date)
	} else {
		periods, err = s.bookingRepo.GetBookedPeriods(ctx, date)
	}

	if err != nil {
		s.logger.Error("Failed to fetch booked periods",
			zap.String("date", date),
			zap.String("room", q.Room),
			zap.Error(err),
		)
		telemetry.CaptureError(err, "bookings.select", map[string]any{"date": date, "room": q.Room})
		return nil // считаем всё свободным, конфликт поймает вставка
	}

	booked := make(map[int]bool, len(periods))
	for _, p := range periods {
		booked[p] = true
	}
	return booked
}

// resolveRoom находит кабинет по названию, внутри зоны если она указана
func (s *SlotService) resolveRoom(ctx context.Context, roomName, commonName string) (int64, bool) {
	if roomName == "" {
		return 0, false
	}

	var (
		room *model.Room
		err  error
	)

	if commonName != "" {
		var common *model.Common
		common, err = s.commonRepo.GetByName(ctx, commonName)
		if err != nil || common == nil {
			return 0, false
		}
		room, err = s.roomRepo.GetByNameAndCommon(ctx, roomName, common.ID)
	} else {
		room, err = s.roomRepo.GetByName(ctx, roomName)
	}

	if err != nil || room == nil {
		return 0, false
	}

	return room.ID, true
}

// MarkBooked фильтрует расписание по линии и проставляет занятость.
// restrict == nil пропускает все периоды, пустой restrict не пропускает
// ни одного — это сигнал "нет допустимых периодов", а не "все".
func MarkBooked(slots []*model.SlotTime, restrict []int, booked map[int]bool) []model.SlotAvailability {
	var allowed map[int]bool
	if restrict != nil {
		allowed = make(map[int]bool, len(restrict))
		for _, n := range restrict {
			allowed[n] = true
		}
	}

	result := make([]model.SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		if allowed != nil && !allowed[slot.SlotNumber] {
			continue
		}
		result = append(result, model.SlotAvailability{
			ID:        slot.ID,
			Number:    slot.SlotNumber,
			Day:       slot.Weekday,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			IsBooked:  booked[slot.SlotNumber],
		})
	}

	return result
}
