package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// loadStep is one named stage of a command's startup, such as reading the
// screen states or connecting to Telegram.
type loadStep struct {
	label string
	run   func(context.Context) error
}

type stepDoneMsg struct {
	index int
	err   error
}

type loadProgressModel struct {
	ctx     context.Context
	spinner spinner.Model
	title   string
	steps   []loadStep
	current int
	failed  error
	done    bool
}

var failedStepStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

func newLoadProgressModel(ctx context.Context, title string, steps []loadStep) loadProgressModel {
	return loadProgressModel{
		ctx: ctx,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		title: title,
		steps: steps,
	}
}

func (m loadProgressModel) runStep(i int) tea.Cmd {
	step := m.steps[i]
	ctx := m.ctx
	return func() tea.Msg {
		return stepDoneMsg{index: i, err: step.run(ctx)}
	}
}

func (m loadProgressModel) Init() tea.Cmd {
	if len(m.steps) == 0 {
		return tea.Quit
	}

	return tea.Batch(m.spinner.Tick, m.runStep(0))
}

func (m loadProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case stepDoneMsg:
		if msg.err != nil {
			m.failed = msg.err
			m.done = true
			return m, tea.Quit
		}
		m.current = msg.index + 1
		if m.current == len(m.steps) {
			m.done = true
			return m, tea.Quit
		}
		return m, m.runStep(m.current)
	default:
		return m, nil
	}
}

func (m loadProgressModel) View() string {
	if m.failed != nil {
		return failedStepStyle.Render(fmt.Sprintf("✗ %s: falló %s", m.title, m.steps[m.current].label)) + "\n"
	}
	if m.done || len(m.steps) == 0 {
		return ""
	}

	return fmt.Sprintf("%s %s %s (%d/%d)", m.spinner.View(), m.title, m.steps[m.current].label, m.current+1, len(m.steps))
}

// runLoadSteps runs steps in order on output's spinner and stops at the first
// error, which it returns unchanged.
func runLoadSteps(ctx context.Context, output io.Writer, title string, steps ...loadStep) error {
	p := tea.NewProgram(
		newLoadProgressModel(ctx, title, steps),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := final.(loadProgressModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", final)
	}

	return result.failed
}
