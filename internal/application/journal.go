package application

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bnema/vehicle-assistant-cli/internal/calendar"
	"github.com/bnema/vehicle-assistant-cli/internal/domain"
)

const historyShown = 5

type historyLine struct {
	at   time.Time
	text string
}

func (a *Assistant) answerHistory(ctx context.Context, screen domain.Screen, now time.Time) string {
	lines := a.journalLines(ctx, screen, now.Location())
	if len(lines) == 0 && screen == domain.ScreenRoute {
		lines = a.actionLines(ctx, "route", now.Location())
	}

	if len(lines) == 0 {
		return fmt.Sprintf("%s — No encuentro registros recientes.", screen.Label())
	}

	return fmt.Sprintf("%s — Últimos %d registros:\n%s", screen.Label(), len(lines), bullets(lines))
}

func (a *Assistant) journalLines(ctx context.Context, screen domain.Screen, loc *time.Location) []string {
	if a.journals == nil {
		return nil
	}
	entries, err := a.journals.JournalEntries(ctx, screen)
	if err != nil {
		a.logger.Warn("read journal entries", zap.String("screen", string(screen)), zap.Error(err))
		return nil
	}

	dated := make([]historyLine, 0, len(entries))
	for _, e := range entries {
		at, ok := calendar.ToDate(e.Date, loc)
		if !ok {
			a.logger.Debug("skip journal entry without date", zap.String("screen", string(screen)), zap.String("id", e.ID))
			continue
		}

		line := stamp(at)
		if e.Text != "" {
			line += " — " + e.Text
		}
		if e.Image != "" {
			line += " — [imagen adjunta]"
		}
		dated = append(dated, historyLine{at: at, text: line})
	}

	return newestFirst(dated)
}

// actionLines reads the global action log for items whose screen tag contains
// needle, case-insensitively.
func (a *Assistant) actionLines(ctx context.Context, needle string, loc *time.Location) []string {
	if a.actions == nil {
		return nil
	}
	items, err := a.actions.ActionHistory(ctx)
	if err != nil {
		a.logger.Warn("read action history", zap.Error(err))
		return nil
	}

	needle = strings.ToLower(needle)
	dated := make([]historyLine, 0, len(items))
	for _, it := range items {
		if !strings.Contains(strings.ToLower(it.Screen), needle) {
			continue
		}
		at, ok := calendar.ToDate(it.Timestamp, loc)
		if !ok {
			continue
		}

		line := stamp(at) + " — " + it.Action
		if details := compactData(it.Data); details != "" {
			line += " — " + details
		}
		dated = append(dated, historyLine{at: at, text: line})
	}

	return newestFirst(dated)
}

func newestFirst(lines []historyLine) []string {
	slices.SortStableFunc(lines, func(a, b historyLine) int { return b.at.Compare(a.at) })

	out := make([]string, 0, historyShown)
	for _, l := range lines[:min(historyShown, len(lines))] {
		out = append(out, l.text)
	}

	return out
}

// compactData returns "" for absent, null or empty-object payloads.
func compactData(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return string(trimmed)
	}
	switch out := buf.String(); out {
	case "null", "{}":
		return ""
	default:
		return out
	}
}
