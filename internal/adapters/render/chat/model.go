// Package chat is the interactive terminal conversation with the assistant.
package chat

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/vehicle-assistant-cli/internal/calendar"
)

const (
	thinkingLabel = "Analizando…"
	placeholder   = "Escribe tu pregunta… (Enter envía, Tab sugiere, Esc sale)"
	inputLimit    = 1024
	headerHeight  = 3
	footerHeight  = 3
)

type Answerer interface {
	Answer(ctx context.Context, message string) string
}

// Sayer speaks an answer without blocking the caller.
type Sayer interface {
	Say(text string)
	Stop()
}

type Options struct {
	Answerer    Answerer
	Sayer       Sayer
	Welcome     string
	Suggestions []string
	Now         func() time.Time
	Input       io.Reader
	Output      io.Writer
}

type chatMessage struct {
	fromUser bool
	text     string
	at       time.Time
}

type answerMsg struct {
	text string
}

type model struct {
	ctx         context.Context
	answerer    Answerer
	sayer       Sayer
	now         func() time.Time
	suggestions []string
	nextSuggest int

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	styles   styles

	history []chatMessage
	loading bool
	ready   bool
	width   int
}

func newModel(ctx context.Context, opts Options) model {
	st := newStyles()

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "│ "
	ti.PromptStyle = st.prompt
	ti.CharLimit = inputLimit
	ti.Width = 80
	ti.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(st.spinner),
	)

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := model{
		ctx:         ctx,
		answerer:    opts.Answerer,
		sayer:       opts.Sayer,
		now:         now,
		suggestions: opts.Suggestions,
		input:       ti,
		viewport:    viewport.New(80, 20),
		spinner:     sp,
		styles:      st,
		width:       80,
	}
	if strings.TrimSpace(opts.Welcome) != "" {
		m.history = append(m.history, chatMessage{text: opts.Welcome, at: now()})
	}
	m.viewport.SetContent(m.renderHistory())

	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			if m.sayer != nil {
				m.sayer.Stop()
			}
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyTab:
			if !m.loading && len(m.suggestions) > 0 {
				m.input.SetValue(m.suggestions[m.nextSuggest%len(m.suggestions)])
				m.input.CursorEnd()
				m.nextSuggest++
			}
			return m, nil
		}
		if !m.loading {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := msg.Height - headerHeight - footerHeight
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.input.Width = msg.Width - 4
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case answerMsg:
		m.loading = false
		m.history = append(m.history, chatMessage{text: msg.text, at: m.now()})
		if m.sayer != nil {
			m.sayer.Say(msg.text)
		}
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()
		return m, nil
	}

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	cmds = append(cmds, vpCmd)

	return m, tea.Batch(cmds...)
}

func (m model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if m.loading || text == "" {
		return m, nil
	}

	m.history = append(m.history, chatMessage{fromUser: true, text: text, at: m.now()})
	m.input.Reset()
	m.loading = true
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()

	return m, tea.Batch(m.spinner.Tick, m.ask(text))
}

func (m model) ask(text string) tea.Cmd {
	ctx := m.ctx
	answerer := m.answerer
	return func() tea.Msg {
		return answerMsg{text: answerer.Answer(ctx, text)}
	}
}

func (m model) renderHistory() string {
	blocks := make([]string, 0, len(m.history))
	for _, msg := range m.history {
		who := m.styles.assistant.Render("Asistente")
		if msg.fromUser {
			who = m.styles.user.Render("Tú")
		}
		header := lipgloss.JoinHorizontal(lipgloss.Top, who, " ", m.styles.stamp.Render(calendar.FormatClock(msg.at)))
		body := m.styles.body.Width(max(m.width-2, 20)).Render(msg.text)
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, header, body))
	}

	return strings.Join(blocks, "\n\n")
}

func (m model) View() string {
	status := m.styles.help.Render("Esc para salir")
	if m.loading {
		status = fmt.Sprintf("%s %s", m.spinner.View(), m.styles.thinking.Render(thinkingLabel))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.title.Render("Asistente del vehículo"),
		"",
		m.viewport.View(),
		status,
		m.input.View(),
	)
}

// Run blocks until the user leaves the chat or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Answerer == nil {
		return fmt.Errorf("run chat: answerer is nil")
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	_, err := tea.NewProgram(newModel(ctx, opts), programOpts...).Run()
	if err != nil {
		return fmt.Errorf("run chat: %w", err)
	}

	return nil
}
