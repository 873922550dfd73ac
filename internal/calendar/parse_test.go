package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-05-14 is a Wednesday.
var refNow = time.Date(2025, 5, 14, 10, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDateFromText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{name: "today keeps time of day", text: "Agenda hoy", want: refNow},
		{name: "tomorrow", text: "agenda mañana", want: refNow.AddDate(0, 0, 1)},
		{name: "day after tomorrow wins over tomorrow", text: "preventivo pasado mañana", want: refNow.AddDate(0, 0, 2)},
		{name: "weekday later this week", text: "tareas del viernes", want: refNow.AddDate(0, 0, 2)},
		{name: "weekday wraps to next week", text: "el lunes", want: refNow.AddDate(0, 0, 5)},
		{name: "same weekday is today", text: "el miércoles", want: refNow},
		{name: "unaccented weekday", text: "el sabado", want: refNow.AddDate(0, 0, 3)},
		{name: "day month year with slash", text: "preventivo 15/08/2025", want: day(2025, time.August, 15)},
		{name: "day month year with dash", text: "el 1-6-2025", want: day(2025, time.June, 1)},
		{name: "iso date", text: "agenda 2025-06-01", want: day(2025, time.June, 1)},
		{name: "iso date with slash", text: "agenda 2025/12/31", want: day(2025, time.December, 31)},
		{name: "day of month defaults to current year", text: "agenda 5 de junio", want: day(2025, time.June, 5)},
		{name: "day of month with year", text: "el 3 de Enero de 2026", want: day(2026, time.January, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseDateFromText(tt.text, refNow)
			require.True(t, ok)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestParseDateFromTextNoMatch(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"",
		"   ",
		"resumen preventivo",
		"31/02/2025",
		"12/13/2025",
		"2025-00-10",
		"30 de febrero",
		"hoyo profundo",
	} {
		_, ok := ParseDateFromText(text, refNow)
		assert.False(t, ok, "text %q", text)
	}
}

func TestParseDateFromTextUsesNowLocation(t *testing.T) {
	t.Parallel()

	bogota := time.FixedZone("COT", -5*60*60)
	now := time.Date(2025, 5, 14, 22, 0, 0, 0, bogota)

	got, ok := ParseDateFromText("15/05/2025", now)
	require.True(t, ok)
	assert.Equal(t, bogota, got.Location())
	assert.Equal(t, 15, got.Day())
	assert.Equal(t, 0, got.Hour())
}

func TestValidDateLeapYear(t *testing.T) {
	t.Parallel()

	assert.True(t, validDate(2024, 2, 29))
	assert.False(t, validDate(2025, 2, 29))
	assert.False(t, validDate(2025, 4, 31))
	assert.True(t, validDate(2025, 12, 31))
}
