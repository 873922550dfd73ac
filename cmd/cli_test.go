package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vehicle-assistant-cli/internal/domain"
)

func TestVersionPrintsVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "va dev (commit none)\n", stdout)

	stdout, _, err = executeCLI(t, t.TempDir(), "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestRecordProfileThenAskSoat(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "record", "profile", "--soat", "2025-12-01", "--picoyplaca", "Lunes")
	require.NoError(t, err)
	assert.Contains(t, stdout, "profile saved")

	stdout, _, err = executeCLI(t, home, "ask", "--at", "2025-06-01", "¿Cuándo", "vence", "el", "SOAT?")
	require.NoError(t, err)
	assert.Contains(t, stdout, "SOAT vence: 1 de diciembre de 2025.")

	_, err = os.Stat(filepath.Join(home, ".vehiculo", "store.toml"))
	require.NoError(t, err)
}

func TestAskCatalogQuestion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "ask", "hola")
	require.NoError(t, err)
	assert.NotEmpty(t, bytes.TrimSpace([]byte(stdout)))
}

func TestAskGreetingSeesStoredState(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "record", "screen", "route", "favorite=Centro", `routes=["Casa","Centro"]`)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "ask", "hola")
	require.NoError(t, err)
	assert.Contains(t, stdout, "• Route: Rutas: 2. Favorita: Centro.")
}

func TestAskRejectsInvalidInstant(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "ask", "--at", "ayer por la tarde", "hola")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid instant")
}

func TestAskRequiresMessage(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "ask")
	require.Error(t, err)
}

func TestRecordScreenThenStatusJSON(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "record", "screen", "route", "favorite=Centro", `routes=["Casa","Centro"]`)
	require.NoError(t, err)
	assert.Contains(t, stdout, "updated Route (2 field(s))")

	stdout, _, err = executeCLI(t, home, "status", "--json")
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(stdout)))

	var out struct {
		Snapshot struct {
			Route struct {
				Favorite string   `json:"favorite"`
				Routes   []string `json:"routes"`
			} `json:"Route"`
		} `json:"snapshot"`
		Digests []struct {
			Screen  string `json:"screen"`
			Details string `json:"details"`
		} `json:"digests"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "Centro", out.Snapshot.Route.Favorite)
	assert.Equal(t, []string{"Casa", "Centro"}, out.Snapshot.Route.Routes)
	assert.Len(t, out.Digests, 7)
}

func TestStoreImportOfAppExportKeepsLooseFields(t *testing.T) {
	home := t.TempDir()
	dump := filepath.Join(home, "dump.json")
	require.NoError(t, os.WriteFile(dump, []byte(`{
		"@screen_states": {
			"Route": {"routes": [{"name": "Casa-Oficina"}], "totalDistance": 12.5, "favorite": "Casa-Oficina"},
			"Preventive": {"tasks": [{"id": 1, "description": "Cambio de aceite", "dueDate": "2025-01-01", "completed": false}]}
		}
	}`), 0o600))

	_, _, err := executeCLI(t, home, "store", "import", dump)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "ask", "--at", "2025-06-01", "¿Qué tareas preventivas tengo vencidas?")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Cambio de aceite")

	stdout, _, err = executeCLI(t, home, "status", "--screen", "route")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Rutas: 1. Favorita: Casa-Oficina.")
}

func TestStatusRendersDigests(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Estado del vehículo")
	assert.Contains(t, stdout, "pantallas: 7")
	assert.Contains(t, stdout, "Rutas")
}

func TestStatusFiltersScreens(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "status", "--screen", "route", "--screen", "ProfileScreen")
	require.NoError(t, err)
	assert.Contains(t, stdout, "pantallas: 2")
	assert.Contains(t, stdout, "Rutas")
	assert.NotContains(t, stdout, "Preventivo")
}

func TestStatusRejectsUnknownScreen(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "status", "--screen", "garage")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownScreen)
}

func TestRecordScreenRejectsBadField(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "record", "screen", "route", "sin-valor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want key=value")
}

func TestRecordScreenRejectsUnknownScreen(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "record", "screen", "garage", "a=1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown screen")
}

func TestRecordJournalRequiresJournalScreen(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "record", "journal", "--screen", "profile", "--text", "nota")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "screen has no journal")
}

func TestRecordJournalAndAction(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "record", "journal", "--screen", "preventive", "--text", "Cambio de aceite", "--at", "2025-05-20")
	require.NoError(t, err)
	assert.Contains(t, stdout, "recorded journal entry")

	stdout, _, err = executeCLI(t, home, "record", "action", "abrir_ruta", "--screen", "route", "--data", `{"id":1}`)
	require.NoError(t, err)
	assert.Contains(t, stdout, "recorded action abrir_ruta")

	stdout, _, err = executeCLI(t, home, "store", "export")
	require.NoError(t, err)
	assert.Contains(t, stdout, "@journal_entries_Preventive")
	assert.Contains(t, stdout, "Cambio de aceite")
	assert.Contains(t, stdout, "@app_history")
}

func TestRecordActionRequiresScreenFlag(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "record", "action", "abrir")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"screen\" not set")
}

func TestStoreImportThenAsk(t *testing.T) {
	home := t.TempDir()
	dump := filepath.Join(home, "dump.json")
	require.NoError(t, os.WriteFile(dump, []byte(`{
		"@tabData": "{\"soat\":\"2026-01-15\"}",
		"@screen_states": {"Route": {"favorite": "Norte"}}
	}`), 0o600))

	stdout, _, err := executeCLI(t, home, "store", "import", dump)
	require.NoError(t, err)
	assert.Contains(t, stdout, "imported 2 key(s)")

	stdout, _, err = executeCLI(t, home, "ask", "--at", "2025-06-01", "¿Cuándo vence el SOAT?")
	require.NoError(t, err)
	assert.Contains(t, stdout, "15 de enero de 2026")

	stdout, _, err = executeCLI(t, home, "store", "export")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"favorite": "Norte"`)
}

func TestFAQListsQuestions(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "faq")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Preguntas frecuentes")
	assert.Contains(t, stdout, "¿Cuándo vence el SOAT?")
	assert.Contains(t, stdout, "Preguntas informativas")
}

func TestRemindOncePrintsBriefing(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "remind", "--once")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Recordatorio del")
}

func TestRemindRejectsBadSchedule(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "remind", "--once", "--schedule", "cada día")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse reminder schedule")
}

func TestTelegramRequiresToken(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "telegram")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telegram token is empty")
}

func TestSQLiteDriver(t *testing.T) {
	home := t.TempDir()
	t.Setenv("VA_STORE_DRIVER", "sqlite")

	_, _, err := executeCLI(t, home, "record", "profile", "--tecnico", "2025-09-10")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "ask", "--at", "2025-06-01", "vencimiento técnico mecánica")
	require.NoError(t, err)
	assert.Contains(t, stdout, "10 de septiembre de 2025")

	_, err = os.Stat(filepath.Join(home, ".vehiculo", "store.db"))
	require.NoError(t, err)
}

func TestInvalidConfigurationSurfacesError(t *testing.T) {
	t.Setenv("VA_STORE_DRIVER", "redis")

	_, _, err := executeCLI(t, t.TempDir(), "status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store driver")
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "lavar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command \"lavar\"")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("VA_LOG_LEVEL", "off")

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
