package calendar

import (
	"fmt"
	"time"
)

type RangeLabel string

const (
	RangeToday     RangeLabel = "today"
	RangeTomorrow  RangeLabel = "tomorrow"
	RangeThisWeek  RangeLabel = "this-week"
	RangeThisMonth RangeLabel = "this-month"
	RangeNextMonth RangeLabel = "next-month"
)

// Range is the half-open interval [Start, End).
type Range struct {
	Start time.Time
	End   time.Time
	Label RangeLabel
}

func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// DateRange resolves a label against now. Weeks start on Monday.
func DateRange(label RangeLabel, now time.Time) (Range, error) {
	start := StartOfDay(now)

	switch label {
	case RangeToday:
		return Range{Start: start, End: start.AddDate(0, 0, 1), Label: label}, nil
	case RangeTomorrow:
		tomorrow := start.AddDate(0, 0, 1)
		return Range{Start: tomorrow, End: tomorrow.AddDate(0, 0, 1), Label: label}, nil
	case RangeThisWeek:
		weekday := int(start.Weekday())
		diffToMonday := 1 - weekday
		if weekday == 0 {
			diffToMonday = -6
		}
		monday := start.AddDate(0, 0, diffToMonday)
		return Range{Start: monday, End: monday.AddDate(0, 0, 7), Label: label}, nil
	case RangeThisMonth:
		first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
		return Range{Start: first, End: first.AddDate(0, 1, 0), Label: label}, nil
	case RangeNextMonth:
		first := time.Date(start.Year(), start.Month()+1, 1, 0, 0, 0, 0, start.Location())
		return Range{Start: first, End: first.AddDate(0, 1, 0), Label: label}, nil
	default:
		return Range{}, fmt.Errorf("unsupported range label %q", label)
	}
}
