// Package natsort сравнивает строки с учётом числовых фрагментов,
// чтобы "Room 2" шёл раньше "Room 10". Аналог localeCompare с numeric: true.
package natsort

import (
	"sort"
	"strings"
	"unicode"
)

// Compare возвращает -1, 0 или 1. Числовые серии сравниваются как числа,
// остальные фрагменты — без учёта регистра.
func Compare(a, b string) int {
	for len(a) > 0 && len(b) > 0 {
		ra, rb := rune(a[0]), rune(b[0])

		if unicode.IsDigit(ra) && unicode.IsDigit(rb) {
			numA, restA := splitNumber(a)
			numB, restB := splitNumber(b)
			if c := compareNumbers(numA, numB); c != 0 {
				return c
			}
			a, b = restA, restB
			continue
		}

		la, lb := unicode.ToLower(ra), unicode.ToLower(rb)
		if la != lb {
			if la < lb {
				return -1
			}
			return 1
		}
		a, b = a[1:], b[1:]
	}

	switch {
	case len(a) == len(b):
		return 0
	case len(a) == 0:
		return -1
	default:
		return 1
	}
}

// Strings сортирует срез на месте в натуральном порядке.
func Strings(items []string) {
	sort.SliceStable(items, func(i, j int) bool {
		return Compare(items[i], items[j]) < 0
	})
}

// splitNumber отрезает ведущую числовую серию.
func splitNumber(s string) (string, string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

// compareNumbers сравнивает две числовые строки как целые без парсинга,
// чтобы не упереться в переполнение на длинных сериях.
func compareNumbers(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
