package calendar

import (
	"fmt"
	"strings"
	"time"
)

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
}

// ToDate coerces a persisted date-like string. Zoned timestamps are converted to
// loc; date-only values are read as midnight in loc. It never panics.
func ToDate(raw string, loc *time.Location) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}

	if parsed, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return parsed.In(loc), true
	}

	for _, layout := range localLayouts {
		if parsed, err := time.ParseInLocation(layout, value, loc); err == nil {
			return parsed, true
		}
	}

	if m := reDayMonthYear.FindStringSubmatch(value); m != nil {
		return dateFromParts(m[3], m[2], m[1], loc)
	}

	return time.Time{}, false
}

// SameDay compares calendar days and ignores the time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FormatLong renders "5 de mayo de 2025".
func FormatLong(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

// FormatShortDate renders "05/05/2025".
func FormatShortDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatClock renders "14:30".
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

// FormatISODate renders "2025-05-05", the form used when dates are persisted.
func FormatISODate(t time.Time) string {
	return t.Format("2006-01-02")
}
