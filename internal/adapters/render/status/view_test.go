package status

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vehicle-assistant-cli/internal/application"
	"github.com/bnema/vehicle-assistant-cli/internal/domain"
)

var now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func TestRenderDigests(t *testing.T) {
	output, err := Render([]application.Digest{
		{
			Screen:    domain.ScreenPreventive,
			Details:   "Preventivo: 4 tareas, 1 completadas, 1 vencidas.",
			UpdatedAt: now.Add(-3 * time.Hour),
			Progress:  &application.Progress{Done: 1, Total: 4},
			Overdue:   1,
		},
		{
			Screen:  domain.ScreenRoute,
			Details: "Rutas: 2. Favorita: Centro.",
		},
	}, RenderOptions{Now: now, StaleAfter: 24 * time.Hour})

	require.NoError(t, err)
	assert.Contains(t, output, "Estado del vehículo")
	assert.Contains(t, output, "pantallas: 2 · 1 de junio de 2025")
	assert.Contains(t, output, "Preventivo")
	assert.Contains(t, output, "Rutas")
	assert.Contains(t, output, "Favorita: Centro.")
	assert.Contains(t, output, "(actualizado hace 3 horas)")
	assert.Contains(t, output, "["+strings.Repeat("=", 6)+strings.Repeat("-", 18)+"]")
	assert.Contains(t, output, "25% completado")
	assert.Contains(t, output, "[1 vencida(s)]")
	assert.NotContains(t, output, "[desactualizado]")
}

func TestRenderMarksStaleScreen(t *testing.T) {
	output, err := Render([]application.Digest{
		{Screen: domain.ScreenGeneral, Details: "General: 0 servicios.", UpdatedAt: now.Add(-72 * time.Hour)},
	}, RenderOptions{Now: now, StaleAfter: 48 * time.Hour})

	require.NoError(t, err)
	assert.Contains(t, output, "actualizado hace 3 días (29/05/2025)")
	assert.Contains(t, output, "[desactualizado]")
}

func TestRenderWithoutNowSkipsAge(t *testing.T) {
	output, err := Render([]application.Digest{
		{Screen: domain.ScreenGeneral, Details: "General: 0 servicios.", UpdatedAt: now.Add(-72 * time.Hour)},
	}, RenderOptions{StaleAfter: time.Hour})

	require.NoError(t, err)
	assert.NotContains(t, output, "actualizado")
	assert.NotContains(t, output, "[desactualizado]")
	assert.Contains(t, output, "pantallas: 1")
}

func TestRenderMultilineDetails(t *testing.T) {
	output, err := Render([]application.Digest{
		{Screen: domain.ScreenAgenda, Details: "Agenda: 2 citas.\n• Revisión\n• Lavado"},
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "• Revisión")
	assert.Contains(t, output, "• Lavado")
}

func TestRenderFiltersAndOrdersScreens(t *testing.T) {
	output, err := Render([]application.Digest{
		{Screen: domain.ScreenRoute, Details: "Rutas: 1 guardada."},
		{Screen: domain.ScreenGeneral, Details: "General: 0 servicios."},
		{Screen: domain.ScreenAgenda, Details: "Agenda: 2 citas."},
	}, RenderOptions{Screens: []domain.Screen{domain.ScreenRoute, domain.ScreenAgenda}})

	require.NoError(t, err)
	assert.Contains(t, output, "pantallas: 2")
	assert.NotContains(t, output, "General: 0 servicios.")
	assert.Less(t, strings.Index(output, "Agenda: 2 citas."), strings.Index(output, "Rutas: 1 guardada."))
}

func TestRenderEmpty(t *testing.T) {
	output, err := Render(nil, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "pantallas: 0")
	assert.Contains(t, output, "No hay datos de pantallas disponibles.")
}

func TestFormatAge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{name: "future", at: now.Add(time.Minute), want: "actualizado ahora"},
		{name: "minutes", at: now.Add(-10 * time.Minute), want: "actualizado hace menos de 1 hora"},
		{name: "one hour", at: now.Add(-time.Hour), want: "actualizado hace 1 hora"},
		{name: "one day", at: now.Add(-25 * time.Hour), want: "actualizado hace 1 día (31/05/2025)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatAge(tt.at, now))
		})
	}
}
