package application

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vehicle-assistant-cli/internal/calendar"
	"github.com/bnema/vehicle-assistant-cli/internal/domain"
)

func rangeIntent(t *testing.T, label calendar.RangeLabel, display string) domain.Intent {
	t.Helper()

	r, err := calendar.DateRange(label, refNow)
	require.NoError(t, err)
	return domain.Intent{Screen: domain.ScreenAgenda, Kind: domain.IntentListRange, Start: r.Start, End: r.End, Label: display}
}

func TestAnswerAgendaListRange(t *testing.T) {
	t.Parallel()

	st := domain.AgendaState{Appointments: []domain.Appointment{
		{Title: "Taller", Description: "Cambio de aceite", Date: "2025-06-01T15:00:00Z"},
		appointment("Lavado", time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)),
		appointment("Mañana", time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)),
		{Title: "Sin fecha", Date: "algún día"},
	}}

	got := answerAgenda(domain.ScreenAgenda, st, rangeIntent(t, calendar.RangeToday, "hoy"), refNow)
	assert.Equal(t, "Agenda (hoy): 2 evento(s).\n• Lavado\n• Taller — Cambio de aceite", got)
}

func TestAnswerAgendaListRangeEmpty(t *testing.T) {
	t.Parallel()

	got := answerAgenda(domain.ScreenAgenda, domain.AgendaState{}, rangeIntent(t, calendar.RangeToday, "hoy"), refNow)
	assert.Equal(t, "Agenda (hoy): sin eventos.", got)
}

func TestAnswerAgendaListRangeTruncatesToTwenty(t *testing.T) {
	t.Parallel()

	var st domain.AgendaState
	for i := 24; i >= 0; i-- {
		st.Appointments = append(st.Appointments, appointment(fmt.Sprintf("Evento %02d", i), time.Date(2025, 7, 1, 0, i, 0, 0, time.UTC)))
	}
	got := answerAgenda(domain.ScreenAgenda, st, rangeIntent(t, calendar.RangeNextMonth, "próximo mes"), refNow)
	assert.Contains(t, got, "Agenda (próximo mes): 25 evento(s).\n• Evento 00\n")
	assert.Contains(t, got, "• Evento 19")
	assert.NotContains(t, got, "Evento 20")
}

func TestAnswerAgendaRangeIsHalfOpen(t *testing.T) {
	t.Parallel()

	st := domain.AgendaState{Appointments: []domain.Appointment{
		appointment("Medianoche de mañana", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)),
	}}

	assert.Equal(t, "Agenda (hoy): sin eventos.", answerAgenda(domain.ScreenAgenda, st, rangeIntent(t, calendar.RangeToday, "hoy"), refNow))
}

func TestAnswerAgendaListByDate(t *testing.T) {
	t.Parallel()

	st := domain.AgendaState{Appointments: []domain.Appointment{
		appointment("Tarde", time.Date(2025, 6, 5, 18, 0, 0, 0, time.UTC)),
		{Title: "Mañana", Description: "ITV", Date: "2025-06-05T08:00:00Z"},
	}}
	in := domain.Intent{Screen: domain.ScreenDaily, Kind: domain.IntentListByDate, Date: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)}

	assert.Equal(t, "Daily — 5 de junio de 2025:\n• Mañana — ITV\n• Tarde", answerAgenda(domain.ScreenDaily, st, in, refNow))

	in.Date = time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "No encuentro eventos en Daily para 6 de junio de 2025.", answerAgenda(domain.ScreenDaily, st, in, refNow))
}

func TestAnswerAgendaSummary(t *testing.T) {
	t.Parallel()

	st := domain.AgendaState{Appointments: []domain.Appointment{
		appointment("Pasada hoy", refNow.Add(-time.Hour)),
		appointment("Luego hoy", refNow.Add(time.Hour)),
		appointment("Ayer", refNow.AddDate(0, 0, -1)),
		appointment("Semana próxima", refNow.AddDate(0, 0, 7)),
	}}

	got := answerAgenda(domain.ScreenAgenda, st, domain.Intent{Screen: domain.ScreenAgenda, Kind: domain.IntentSummary}, refNow)
	assert.Equal(t, "Agenda: 4 en total, 2 hoy, 2 próximas.", got)
}
