package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Crystallized21/spacecase/internal/model"
)

func mondaySlots() []*model.SlotTime {
	return []*model.SlotTime{
		{ID: 1, SlotNumber: 1, Weekday: "Monday", StartTime: "08:45", EndTime: "09:45"},
		{ID: 2, SlotNumber: 2, Weekday: "Monday", StartTime: "09:50", EndTime: "10:50"},
		{ID: 3, SlotNumber: 3, Weekday: "Monday", StartTime: "11:15", EndTime: "12:15"},
		{ID: 4, SlotNumber: 4, Weekday: "Monday", StartTime: "12:20", EndTime: "13:20"},
	}
}

func TestMarkBookedSinglePeriod(t *testing.T) {
	result := MarkBooked(mondaySlots(), nil, map[int]bool{3: true})

	assert.Len(t, result, 4)
	for _, slot := range result {
		assert.Equal(t, slot.Number == 3, slot.IsBooked, "period %d", slot.Number)
	}
}

func TestMarkBookedNoBookings(t *testing.T) {
	result := MarkBooked(mondaySlots(), nil, nil)

	assert.Len(t, result, 4)
	for _, slot := range result {
		assert.False(t, slot.IsBooked)
	}
}

func TestMarkBookedLineRestriction(t *testing.T) {
	result := MarkBooked(mondaySlots(), []int{2, 4}, nil)

	assert.Len(t, result, 2)
	assert.Equal(t, 2, result[0].Number)
	assert.Equal(t, 4, result[1].Number)
}

func TestMarkBookedEmptyRestriction(t *testing.T) {
	// пустое ограничение — "нет допустимых периодов", а не "все"
	result := MarkBooked(mondaySlots(), []int{}, nil)
	assert.Empty(t, result)
}

func TestMarkBookedKeepsOrder(t *testing.T) {
	result := MarkBooked(mondaySlots(), nil, nil)
	for i := 1; i < len(result); i++ {
		assert.Less(t, result[i-1].Number, result[i].Number)
	}
}
