package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/vehicle-assistant-cli/internal/application"
	"github.com/bnema/vehicle-assistant-cli/internal/calendar"
	"github.com/bnema/vehicle-assistant-cli/internal/domain"
)

// RenderOptions controls the time-relative parts of the view. A zero Now
// disables the age and stale markers. Screens limits the view to the listed
// screens.
type RenderOptions struct {
	Now        time.Time
	StaleAfter time.Duration
	Screens    []domain.Screen
}

const progressWidth = 24

func renderView(digests []application.Digest, opts RenderOptions, s styles) string {
	header := fmt.Sprintf("pantallas: %d", len(digests))
	if !opts.Now.IsZero() {
		header += " · " + calendar.FormatLong(opts.Now)
	}

	lines := []string{
		s.title.Render("Estado del vehículo"),
		s.header.Render(header),
	}

	if len(digests) == 0 {
		lines = append(lines, s.empty.Render("No hay datos de pantallas disponibles."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, d := range digests {
		lines = append(lines, s.section.Render(renderDigest(d, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderDigest(d application.Digest, opts RenderOptions, s styles) string {
	title := s.screen.Render(d.Screen.Label())
	if age := updatedLine(d.UpdatedAt, opts, s); age != "" {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, " ", age)
	}

	parts := []string{title}
	for _, line := range strings.Split(d.Details, "\n") {
		parts = append(parts, s.detail.Render(line))
	}
	if d.Progress != nil && d.Progress.Total > 0 {
		parts = append(parts, progressLine(*d.Progress, d.Overdue, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func updatedLine(at time.Time, opts RenderOptions, s styles) string {
	if at.IsZero() || opts.Now.IsZero() {
		return ""
	}

	line := s.updated.Render(fmt.Sprintf("(%s)", formatAge(at, opts.Now)))
	if opts.StaleAfter > 0 && opts.Now.Sub(at) > opts.StaleAfter {
		line += " " + s.warning.Render("[desactualizado]")
	}

	return line
}

func progressLine(p application.Progress, overdue int, s styles) string {
	percent := p.Percent()
	percentStyle := lipgloss.NewStyle().Foreground(interpolateColor(percent, 0, 100))

	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		renderProgressBar(percent, progressWidth, s),
		" ",
		percentStyle.Render(fmt.Sprintf("%2.0f%% completado", percent)),
	)
	if overdue > 0 {
		line += " " + s.warning.Render(fmt.Sprintf("[%d vencida(s)]", overdue))
	}

	return line
}

func renderProgressBar(donePercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(donePercent) / 100.0))
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// formatAge reports how long ago at was, in hours below a day and days above.
func formatAge(at, now time.Time) string {
	if !at.Before(now) {
		return "actualizado ahora"
	}

	elapsed := now.Sub(at)
	if elapsed < time.Hour {
		return "actualizado hace menos de 1 hora"
	}
	if elapsed < 24*time.Hour {
		hours := int(elapsed.Hours())
		return fmt.Sprintf("actualizado hace %d %s", hours, plural(hours, "hora", "horas"))
	}

	days := int(elapsed.Hours() / 24)
	return fmt.Sprintf("actualizado hace %d %s (%s)", days, plural(days, "día", "días"), calendar.FormatShortDate(at))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// interpolateColor maps value onto the 240..255 greyscale ramp.
func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	return lipgloss.Color(fmt.Sprintf("%d", int(240+15*normalized)))
}
