package chat

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type answererFunc func(ctx context.Context, message string) string

func (f answererFunc) Answer(ctx context.Context, message string) string { return f(ctx, message) }

type recordingSayer struct {
	mu      sync.Mutex
	said    []string
	stopped int
}

func (r *recordingSayer) Say(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.said = append(r.said, text)
}

func (r *recordingSayer) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped++
}

func newTestModel(t *testing.T, sayer Sayer) model {
	t.Helper()

	return newModel(context.Background(), Options{
		Answerer: answererFunc(func(_ context.Context, message string) string {
			return "respuesta a " + message
		}),
		Sayer:       sayer,
		Welcome:     "¡Hola! Soy tu asistente.",
		Suggestions: []string{"¿Cuándo vence el SOAT?", "¿Qué tengo hoy en la agenda?"},
		Now:         func() time.Time { return now },
	})
}

func typeText(m model, text string) model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(model)
}

func TestNewModelShowsWelcome(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	require.Len(t, m.history, 1)
	assert.False(t, m.history[0].fromUser)
	assert.Contains(t, m.renderHistory(), "¡Hola! Soy tu asistente.")
	assert.Contains(t, m.renderHistory(), "10:00")
}

func TestSubmitStartsThinkingAndAsks(t *testing.T) {
	t.Parallel()

	m := typeText(newTestModel(t, nil), "hola")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	require.NotNil(t, cmd)
	assert.True(t, m.loading)
	assert.Empty(t, m.input.Value())
	require.Len(t, m.history, 2)
	assert.True(t, m.history[1].fromUser)
	assert.Equal(t, "hola", m.history[1].text)
	assert.Contains(t, m.View(), thinkingLabel)

	msg := m.ask("hola")()
	assert.Equal(t, answerMsg{text: "respuesta a hola"}, msg)
}

func TestSubmitIgnoresBlankInput(t *testing.T) {
	t.Parallel()

	m := typeText(newTestModel(t, nil), "   ")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)

	assert.Nil(t, cmd)
	assert.False(t, m.loading)
	assert.Len(t, m.history, 1)
}

func TestSubmitIgnoredWhileThinking(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)
	m.loading = true
	m.input.SetValue("otra")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	assert.Nil(t, cmd)
	assert.Len(t, m.history, 1)
}

func TestAnswerIsShownAndSpoken(t *testing.T) {
	t.Parallel()

	sayer := &recordingSayer{}
	m := newTestModel(t, sayer)
	m.loading = true

	next, _ := m.Update(answerMsg{text: "Tu SOAT vence el 1 de diciembre de 2025."})
	m = next.(model)

	assert.False(t, m.loading)
	assert.NotContains(t, m.View(), thinkingLabel)
	assert.Contains(t, m.renderHistory(), "Tu SOAT vence el 1 de diciembre de 2025.")
	assert.Equal(t, []string{"Tu SOAT vence el 1 de diciembre de 2025."}, sayer.said)
}

func TestTabCyclesSuggestions(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(model)
	assert.Equal(t, "¿Cuándo vence el SOAT?", m.input.Value())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(model)
	assert.Equal(t, "¿Qué tengo hoy en la agenda?", m.input.Value())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(model)
	assert.Equal(t, "¿Cuándo vence el SOAT?", m.input.Value())
}

func TestEscStopsSpeechAndQuits(t *testing.T) {
	t.Parallel()

	sayer := &recordingSayer{}
	m := newTestModel(t, sayer)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, 1, sayer.stopped)
}

func TestRunRequiresAnswerer(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), Options{})
	require.Error(t, err)
}
