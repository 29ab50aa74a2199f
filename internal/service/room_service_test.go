package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Crystallized21/spacecase/internal/model"
)

func TestAnnotateRoomsNaturalOrder(t *testing.T) {
	rooms := []*model.Room{
		{ID: 1, Name: "Room 10"},
		{ID: 2, Name: "Room 2"},
		{ID: 3, Name: "Room 1"},
	}

	result := AnnotateRooms(rooms, nil)

	assert.Equal(t, "Room 1", result[0].Name)
	assert.Equal(t, "Room 2", result[1].Name)
	assert.Equal(t, "Room 10", result[2].Name)
}

func TestAnnotateRoomsBookedFlag(t *testing.T) {
	rooms := []*model.Room{
		{ID: 1, Name: "Room 1"},
		{ID: 2, Name: "Room 2"},
	}

	result := AnnotateRooms(rooms, []int64{2})

	assert.False(t, result[0].IsBooked)
	assert.True(t, result[1].IsBooked)
}

func TestAnnotateRoomsEmpty(t *testing.T) {
	result := AnnotateRooms(nil, nil)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
