// Package calendar resolves Spanish date expressions against a reference moment.
package calendar

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthNames = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// weekdayNames is indexed by time.Weekday. Unaccented spellings are accepted too.
var weekdayNames = [][]string{
	{"domingo"},
	{"lunes"},
	{"martes"},
	{"miércoles", "miercoles"},
	{"jueves"},
	{"viernes"},
	{"sábado", "sabado"},
}

var (
	reDayAfterTomorrow = regexp.MustCompile(`\bpasado\s+mañana\b`)
	reToday            = regexp.MustCompile(`\bhoy\b`)
	reTomorrow         = regexp.MustCompile(`\bmañana\b`)
	reDayMonthYear     = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{4})\b`)
	reYearMonthDay     = regexp.MustCompile(`\b(\d{4})[/-](\d{1,2})[/-](\d{1,2})\b`)
	reDayOfMonth       = regexp.MustCompile(`(?i)\b(\d{1,2})\s+de\s+(` + strings.Join(monthNames, "|") + `)(?:\s+de\s+(\d{4}))?\b`)
)

// ParseDateFromText finds the first date reference in text. Relative references
// keep now's time of day; explicit dates resolve to midnight in now's location.
func ParseDateFromText(text string, now time.Time) (time.Time, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return time.Time{}, false
	}

	// "pasado mañana" contains "mañana", so it has to be tried first.
	if reDayAfterTomorrow.MatchString(t) {
		return now.AddDate(0, 0, 2), true
	}
	if reToday.MatchString(t) {
		return now, true
	}
	if reTomorrow.MatchString(t) {
		return now.AddDate(0, 0, 1), true
	}

	for weekday, names := range weekdayNames {
		for _, name := range names {
			if strings.Contains(t, name) {
				diff := (weekday - int(now.Weekday()) + 7) % 7
				return now.AddDate(0, 0, diff), true
			}
		}
	}

	if m := reDayMonthYear.FindStringSubmatch(t); m != nil {
		if d, ok := dateFromParts(m[3], m[2], m[1], now.Location()); ok {
			return d, true
		}
	}

	if m := reYearMonthDay.FindStringSubmatch(t); m != nil {
		if d, ok := dateFromParts(m[1], m[2], m[3], now.Location()); ok {
			return d, true
		}
	}

	if m := reDayOfMonth.FindStringSubmatch(t); m != nil {
		year := now.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		month := monthIndex(m[2])
		day, _ := strconv.Atoi(m[1])
		if month > 0 && validDate(year, month, day) {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location()), true
		}
	}

	return time.Time{}, false
}

func monthIndex(name string) int {
	name = strings.ToLower(name)
	for i, candidate := range monthNames {
		if candidate == name {
			return i + 1
		}
	}

	return 0
}

func dateFromParts(rawYear, rawMonth, rawDay string, loc *time.Location) (time.Time, bool) {
	year, err := strconv.Atoi(rawYear)
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(rawMonth)
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(rawDay)
	if err != nil {
		return time.Time{}, false
	}
	if !validDate(year, month, day) {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), true
}

// validDate rejects components that time.Date would silently normalize.
func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}

	return day <= daysIn(year, time.Month(month))
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
