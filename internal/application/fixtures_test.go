package application

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/bnema/vehicle-assistant-cli/internal/domain"
	"github.com/bnema/vehicle-assistant-cli/internal/ports"
)

// 2025-06-01 is a Sunday.
var refNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

// memoryState serves fixed data to the assistant.
type memoryState struct {
	snapshot domain.ScreenStateSnapshot
	tab      *domain.TabData
	journals map[domain.Screen][]domain.JournalEntry
	actions  []domain.AppHistoryItem
}

var (
	_ ports.ScreenStateSource   = (*memoryState)(nil)
	_ ports.JournalSource       = (*memoryState)(nil)
	_ ports.ActionHistorySource = (*memoryState)(nil)
)

func (m *memoryState) ScreenStateSnapshot(context.Context) (domain.ScreenStateSnapshot, error) {
	return m.snapshot, nil
}

func (m *memoryState) ProfileTabData(context.Context) (domain.TabData, bool, error) {
	if m.tab == nil {
		return domain.TabData{}, false, nil
	}
	return *m.tab, true, nil
}

func (m *memoryState) JournalEntries(_ context.Context, screen domain.Screen) ([]domain.JournalEntry, error) {
	return m.journals[screen], nil
}

func (m *memoryState) ActionHistory(context.Context) ([]domain.AppHistoryItem, error) {
	return m.actions, nil
}

func newTestAssistant(t *testing.T, state *memoryState, now time.Time) *Assistant {
	t.Helper()

	a := New(Deps{
		States:   state,
		Journals: state,
		Actions:  state,
		Clock:    ports.FixedClock{At: now},
		Logger:   zaptest.NewLogger(t),
	})
	_ = a.Refresh(context.Background())

	return a
}

func appointment(title string, at time.Time) domain.Appointment {
	return domain.Appointment{Title: title, Date: at.Format(time.RFC3339)}
}

func fixedClock(at time.Time) ports.Clock {
	return ports.FixedClock{At: at}
}
