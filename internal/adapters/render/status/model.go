package status

import (
	"errors"
	"io"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/vehicle-assistant-cli/internal/application"
	"github.com/bnema/vehicle-assistant-cli/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// frameMsg carries the finished view back into the program.
type frameMsg string

type model struct {
	digests []application.Digest
	opts    RenderOptions
	styles  styles
	frame   string
}

func newModel(digests []application.Digest, opts RenderOptions) model {
	return model{
		digests: selectDigests(digests, opts.Screens),
		opts:    opts,
		styles:  newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	digests, opts, s := m.digests, m.opts, m.styles
	return func() tea.Msg {
		return frameMsg(renderView(digests, opts, s))
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if frame, ok := msg.(frameMsg); ok {
		m.frame = string(frame)
		return m, tea.Quit
	}

	return m, nil
}

func (m model) View() string {
	return m.frame
}

// selectDigests keeps the digests for screens (all when empty) and orders
// them the way domain.Screens lists them.
func selectDigests(digests []application.Digest, screens []domain.Screen) []application.Digest {
	out := make([]application.Digest, 0, len(digests))
	for _, d := range digests {
		if len(screens) == 0 || slices.Contains(screens, d.Screen) {
			out = append(out, d)
		}
	}

	slices.SortStableFunc(out, func(a, b application.Digest) int {
		return slices.Index(domain.Screens, a.Screen) - slices.Index(domain.Screens, b.Screen)
	})

	return out
}

// Render runs the view once without a terminal and returns the text.
func Render(digests []application.Digest, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(digests, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := final.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
