package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/vehicle-assistant-cli/internal/calendar"
	"github.com/bnema/vehicle-assistant-cli/internal/domain"
)

// Digest is the one-line summary of a screen. UpdatedAt is zero when the
// screen never reported a readable lastUpdated; Progress is only set for
// screens tracking completable tasks.
type Digest struct {
	Screen    domain.Screen `json:"screen"`
	Details   string        `json:"details"`
	UpdatedAt time.Time     `json:"updatedAt,omitzero"`
	Progress  *Progress     `json:"progress,omitempty"`
	Overdue   int           `json:"overdue,omitempty"`
}

type Progress struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}

// Percent is 0 for an empty task list.
func (p Progress) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}

	return float64(p.Done) * 100 / float64(p.Total)
}

func digestScreen(snap domain.ScreenStateSnapshot, screen domain.Screen, now time.Time) string {
	switch screen {
	case domain.ScreenDaily, domain.ScreenAgenda:
		return answerAgenda(screen, snap.AgendaFor(screen), domain.Intent{Screen: screen, Kind: domain.IntentSummary}, now)
	case domain.ScreenGeneral:
		var st domain.GeneralState
		if snap.General != nil {
			st = *snap.General
		}
		return fmt.Sprintf("General: %d servicios. Último: %s.", len(st.Services), longDate(st.LastService, now.Location()))
	case domain.ScreenPreventive:
		return answerPreventive(snap.Preventive, domain.Intent{Screen: screen, Kind: domain.IntentSummary}, now)
	case domain.ScreenEmergency:
		var st domain.EmergencyState
		if snap.Emergency != nil {
			st = *snap.Emergency
		}
		out := fmt.Sprintf("Emergencia: %d contacto(s).", len(st.Contacts))
		if st.EntriesCount > 0 {
			out += fmt.Sprintf(" Entradas: %d.", st.EntriesCount)
		}
		return out
	case domain.ScreenProfile:
		return answerProfile(snap.Profile, domain.Intent{Screen: screen, Kind: domain.IntentDocsStatus}, now)
	case domain.ScreenRoute:
		var st domain.RouteState
		if snap.Route != nil {
			st = *snap.Route
		}
		return fmt.Sprintf("Rutas: %d. Favorita: %s.", len(st.Routes), orNotAvailable(st.Favorite))
	default:
		return "Pantalla no reconocida."
	}
}

func digests(snap domain.ScreenStateSnapshot, now time.Time) []Digest {
	out := make([]Digest, 0, len(domain.Screens))
	for _, screen := range domain.Screens {
		d := Digest{Screen: screen, Details: digestScreen(snap, screen, now)}
		if at, ok := calendar.ToDate(lastUpdated(snap, screen), now.Location()); ok {
			d.UpdatedAt = at
		}
		if screen == domain.ScreenPreventive && snap.Preventive != nil {
			p := Progress{Total: len(snap.Preventive.Tasks)}
			for _, t := range snap.Preventive.Tasks {
				if t.Completed {
					p.Done++
				}
			}
			d.Progress = &p
			d.Overdue = len(overdueTasks(snap.Preventive.Tasks, now))
		}
		out = append(out, d)
	}

	return out
}

func lastUpdated(snap domain.ScreenStateSnapshot, screen domain.Screen) string {
	switch screen {
	case domain.ScreenDaily:
		if snap.Daily != nil {
			return snap.Daily.LastUpdated
		}
	case domain.ScreenAgenda:
		if snap.Agenda != nil {
			return snap.Agenda.LastUpdated
		}
	case domain.ScreenGeneral:
		if snap.General != nil {
			return snap.General.LastUpdated
		}
	case domain.ScreenPreventive:
		if snap.Preventive != nil {
			return snap.Preventive.LastUpdated
		}
	case domain.ScreenEmergency:
		if snap.Emergency != nil {
			return snap.Emergency.LastUpdated
		}
	case domain.ScreenProfile:
		if snap.Profile != nil {
			return snap.Profile.LastUpdated
		}
	case domain.ScreenRoute:
		if snap.Route != nil {
			return snap.Route.LastUpdated
		}
	}

	return ""
}

// contextSummary prefixes each digest with its screen key, even where the
// digest already names the screen.
func contextSummary(snap domain.ScreenStateSnapshot, now time.Time) string {
	var b strings.Builder
	b.WriteString("Resumen de tu aplicación:")
	for _, d := range digests(snap, now) {
		fmt.Fprintf(&b, "\n• %s: %s", d.Screen, d.Details)
	}

	return b.String()
}
