package application

import (
	"strings"
	"time"

	"github.com/bnema/vehicle-assistant-cli/internal/calendar"
)

const notAvailable = "N/D"

// bullets renders one "• item" line per non-empty item.
func bullets(lines []string) string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, "• "+line)
	}

	return strings.Join(out, "\n")
}

// longDate renders raw as a long Spanish date. Unparseable values are shown
// verbatim and empty values as N/D.
func longDate(raw string, loc *time.Location) string {
	if strings.TrimSpace(raw) == "" {
		return notAvailable
	}
	if t, ok := calendar.ToDate(raw, loc); ok {
		return calendar.FormatLong(t)
	}

	return raw
}

func stamp(t time.Time) string {
	return calendar.FormatShortDate(t) + " " + calendar.FormatClock(t)
}

func orNotAvailable(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}

	return s
}
