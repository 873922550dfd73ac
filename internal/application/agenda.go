package application

import (
	"fmt"
	"slices"
	"time"

	"github.com/bnema/vehicle-assistant-cli/internal/calendar"
	"github.com/bnema/vehicle-assistant-cli/internal/domain"
)

const rangeShown = 20

type datedAppointment struct {
	appointment domain.Appointment
	at          time.Time
}

func (d datedAppointment) line() string {
	if d.appointment.Description == "" {
		return d.appointment.Title
	}

	return d.appointment.Title + " — " + d.appointment.Description
}

// answerAgenda serves both Agenda and Daily, which share one record shape.
func answerAgenda(screen domain.Screen, st domain.AgendaState, in domain.Intent, now time.Time) string {
	apps := datedAppointments(st.Appointments, now.Location())

	switch in.Kind {
	case domain.IntentListByDate:
		var lines []string
		for _, a := range apps {
			if calendar.SameDay(a.at, in.Date) {
				lines = append(lines, a.line())
			}
		}
		if len(lines) == 0 {
			return fmt.Sprintf("No encuentro eventos en %s para %s.", screen, calendar.FormatLong(in.Date))
		}
		return fmt.Sprintf("%s — %s:\n%s", screen, calendar.FormatLong(in.Date), bullets(lines))

	case domain.IntentListRange:
		var hits []datedAppointment
		for _, a := range apps {
			if !a.at.Before(in.Start) && a.at.Before(in.End) {
				hits = append(hits, a)
			}
		}
		label := ""
		if in.Label != "" {
			label = " (" + in.Label + ")"
		}
		if len(hits) == 0 {
			return fmt.Sprintf("%s%s: sin eventos.", screen, label)
		}
		lines := make([]string, 0, rangeShown)
		for _, a := range hits[:min(rangeShown, len(hits))] {
			lines = append(lines, a.line())
		}
		return fmt.Sprintf("%s%s: %d evento(s).\n%s", screen, label, len(hits), bullets(lines))
	}

	today, upcoming := 0, 0
	for _, a := range apps {
		if calendar.SameDay(a.at, now) {
			today++
		}
		if a.at.After(now) {
			upcoming++
		}
	}
	return fmt.Sprintf("%s: %d en total, %d hoy, %d próximas.", screen, len(apps), today, upcoming)
}

// datedAppointments drops appointments without a readable date and sorts the
// rest chronologically.
func datedAppointments(appointments []domain.Appointment, loc *time.Location) []datedAppointment {
	out := make([]datedAppointment, 0, len(appointments))
	for _, a := range appointments {
		if at, ok := calendar.ToDate(a.Date, loc); ok {
			out = append(out, datedAppointment{appointment: a, at: at})
		}
	}
	slices.SortStableFunc(out, func(a, b datedAppointment) int { return a.at.Compare(b.at) })

	return out
}
