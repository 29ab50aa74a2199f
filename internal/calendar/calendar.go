// Package calendar вычисляет учебную четверть и неделю внутри четверти по дате.
package calendar

import "time"

// referenceYear единственный год, для которого захардкожены даты четвертей.
// Любая входная дата приводится к этому году по месяцу и дню. Это осознанный
// хак из исходной версии: для дат из других учебных лет результат будет
// неверным, но наблюдаемое поведение сохраняем как есть.
const referenceYear = 2025

// termStartsByYear даты начала четвертей по годам.
var termStartsByYear = map[int][]time.Time{
	2025: {
		time.Date(2025, time.January, 27, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.April, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.July, 14, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.October, 13, 0, 0, 0, 0, time.UTC),
	},
}

// termWeeks длительность каждой четверти в неделях.
var termWeeks = [4]int{11, 9, 10, 10}

// TermWeek результат вычисления. Known=false значит что для года нет
// таблицы четвертей и на границе надо отдать "N/A" / "?".
type TermWeek struct {
	Term       int
	WeekInTerm int
	Known      bool
}

// TermAndWeek определяет четверть (1..4) и неделю внутри четверти для даты.
// Дата до начала первой четверти даёт четверть 1, неделю 1; дата после конца
// последней — четверть 4 и её последнюю неделю (без экстраполяции).
func TermAndWeek(date time.Time) TermWeek {
	// Принудительно переносим дату на учебный календарь 2025 года.
	target := time.Date(referenceYear, date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	starts, ok := termStartsByYear[referenceYear]
	if !ok {
		return TermWeek{}
	}

	for i, termStart := range starts {
		var termEnd time.Time
		if i < len(starts)-1 {
			termEnd = starts[i+1]
		} else {
			termEnd = termStart.AddDate(0, 0, termWeeks[i]*7)
		}

		if !target.Before(termStart) && target.Before(termEnd) {
			daysSinceTermStart := int(target.Sub(termStart).Hours() / 24)
			return TermWeek{
				Term:       i + 1,
				WeekInTerm: daysSinceTermStart/7 + 1,
				Known:      true,
			}
		}
	}

	if target.Before(starts[0]) {
		return TermWeek{Term: 1, WeekInTerm: 1, Known: true}
	}
	return TermWeek{Term: 4, WeekInTerm: termWeeks[3], Known: true}
}
