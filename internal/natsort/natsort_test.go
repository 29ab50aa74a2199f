package natsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringsNumericRuns(t *testing.T) {
	rooms := []string{"Room 10", "Room 2", "Room 1"}
	Strings(rooms)
	assert.Equal(t, []string{"Room 1", "Room 2", "Room 10"}, rooms)
}

func TestCompareCaseInsensitive(t *testing.T) {
	assert.Equal(t, 0, Compare("room 5", "Room 5"))
	assert.Equal(t, -1, Compare("Lab 1", "room 1"))
}

func TestCompareMixed(t *testing.T) {
	rooms := []string{"B12", "A2", "A10", "A1", "B2"}
	Strings(rooms)
	assert.Equal(t, []string{"A1", "A2", "A10", "B2", "B12"}, rooms)
}

func TestCompareLeadingZeros(t *testing.T) {
	assert.Equal(t, 0, Compare("Room 007", "Room 7"))
	assert.Equal(t, -1, Compare("Room 007", "Room 8"))
}

func TestComparePrefix(t *testing.T) {
	assert.Equal(t, -1, Compare("Room", "Room 1"))
	assert.Equal(t, 1, Compare("Room 1a", "Room 1"))
}
