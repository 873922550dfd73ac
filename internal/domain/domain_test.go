package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScreen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Screen
	}{
		{in: "Preventive", want: ScreenPreventive},
		{in: "route", want: ScreenRoute},
		{in: " RouteScreen ", want: ScreenRoute},
		{in: "dailyscreen", want: ScreenDaily},
		{in: "EMERGENCY", want: ScreenEmergency},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseScreen(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseScreenUnknown(t *testing.T) {
	t.Parallel()

	_, err := ParseScreen("garage")
	require.ErrorIs(t, err, ErrUnknownScreen)
	assert.Contains(t, err.Error(), `"garage"`)
}

func TestScreenHasJournal(t *testing.T) {
	t.Parallel()

	var withJournal []Screen
	for _, s := range Screens {
		if s.HasJournal() {
			withJournal = append(withJournal, s)
		}
	}
	assert.Equal(t, []Screen{ScreenGeneral, ScreenPreventive, ScreenEmergency, ScreenRoute}, withJournal)
}

func TestScreenLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Preventivo", ScreenPreventive.Label())
	assert.Equal(t, "Rutas", ScreenRoute.Label())
	assert.Equal(t, "Agenda", ScreenAgenda.Label())
}

func TestAgendaForNeverNil(t *testing.T) {
	t.Parallel()

	var snap ScreenStateSnapshot
	assert.Empty(t, snap.AgendaFor(ScreenAgenda).Appointments)

	snap.Daily = &AgendaState{Appointments: []Appointment{{Title: "Lavado"}}}
	assert.Len(t, snap.AgendaFor(ScreenDaily).Appointments, 1)
	assert.Empty(t, snap.AgendaFor(ScreenAgenda).Appointments)
	assert.Empty(t, snap.AgendaFor(ScreenRoute).Appointments)
}

func TestPreventiveTaskReferenceDate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2025-05-01", PreventiveTask{DueDate: "2025-05-01"}.ReferenceDate())
	assert.Equal(t, "2025-05-03", PreventiveTask{DueDate: "2025-05-01", CompletedAt: "2025-05-03"}.ReferenceDate())
}
