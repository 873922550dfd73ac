package chat

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	help      lipgloss.Style
	user      lipgloss.Style
	assistant lipgloss.Style
	stamp     lipgloss.Style
	body      lipgloss.Style
	thinking  lipgloss.Style
	spinner   lipgloss.Style
	prompt    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		user:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		assistant: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		stamp:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		body:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2),
		thinking:  lipgloss.NewStyle().Faint(true).Italic(true),
		spinner:   lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}
