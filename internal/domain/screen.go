package domain

import (
	"fmt"
	"strings"
)

type Screen string

const (
	ScreenDaily      Screen = "Daily"
	ScreenAgenda     Screen = "Agenda"
	ScreenGeneral    Screen = "General"
	ScreenPreventive Screen = "Preventive"
	ScreenEmergency  Screen = "Emergency"
	ScreenProfile    Screen = "Profile"
	ScreenRoute      Screen = "Route"
)

// Screens lists every screen in digest order.
var Screens = []Screen{
	ScreenDaily,
	ScreenAgenda,
	ScreenGeneral,
	ScreenPreventive,
	ScreenEmergency,
	ScreenProfile,
	ScreenRoute,
}

// ParseScreen accepts a screen name in any case, with or without the "Screen" suffix.
func ParseScreen(raw string) (Screen, error) {
	trimmed := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(raw)), "screen")
	for _, screen := range Screens {
		if strings.ToLower(string(screen)) == trimmed {
			return screen, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownScreen, raw)
}

// Label returns the Spanish name shown to the user.
func (s Screen) Label() string {
	switch s {
	case ScreenPreventive:
		return "Preventivo"
	case ScreenEmergency:
		return "Emergencia"
	case ScreenProfile:
		return "Perfil"
	case ScreenRoute:
		return "Rutas"
	default:
		return string(s)
	}
}

// HasJournal reports whether the screen keeps its own bitácora.
func (s Screen) HasJournal() bool {
	switch s {
	case ScreenPreventive, ScreenGeneral, ScreenEmergency, ScreenRoute:
		return true
	default:
		return false
	}
}
