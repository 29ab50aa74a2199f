package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTermAndWeekStartOfTerm(t *testing.T) {
	tw := TermAndWeek(date(2025, time.January, 27))
	assert.True(t, tw.Known)
	assert.Equal(t, 1, tw.Term)
	assert.Equal(t, 1, tw.WeekInTerm)
}

func TestTermAndWeekEightDaysIn(t *testing.T) {
	tw := TermAndWeek(date(2025, time.January, 27).AddDate(0, 0, 8))
	assert.Equal(t, 1, tw.Term)
	assert.Equal(t, 2, tw.WeekInTerm)
}

func TestTermAndWeekMidYear(t *testing.T) {
	// 29 июля — третья неделя третьей четверти (старт 14 июля)
	tw := TermAndWeek(date(2025, time.July, 29))
	assert.Equal(t, 3, tw.Term)
	assert.Equal(t, 3, tw.WeekInTerm)
}

func TestTermAndWeekIgnoresInputYear(t *testing.T) {
	// год входной даты отбрасывается, 2024-07-14 считается как 2025-07-14
	tw := TermAndWeek(date(2024, time.July, 14))
	assert.Equal(t, 3, tw.Term)
	assert.Equal(t, 1, tw.WeekInTerm)
}

func TestTermAndWeekBeforeFirstTerm(t *testing.T) {
	tw := TermAndWeek(date(2025, time.January, 5))
	assert.True(t, tw.Known)
	assert.Equal(t, 1, tw.Term)
	assert.Equal(t, 1, tw.WeekInTerm)
}

func TestTermAndWeekAfterLastTerm(t *testing.T) {
	// 13 октября + 10 недель = 22 декабря, дальше только клемп
	tw := TermAndWeek(date(2025, time.December, 25))
	assert.Equal(t, 4, tw.Term)
	assert.Equal(t, 10, tw.WeekInTerm)
}

func TestTermAndWeekRange(t *testing.T) {
	for d := date(2025, time.January, 1); d.Year() == 2025; d = d.AddDate(0, 0, 1) {
		tw := TermAndWeek(d)
		assert.True(t, tw.Known)
		assert.GreaterOrEqual(t, tw.Term, 1)
		assert.LessOrEqual(t, tw.Term, 4)
		assert.GreaterOrEqual(t, tw.WeekInTerm, 1)
	}
}
