package ports

import (
	"context"
	"encoding/json"

	"github.com/bnema/vehicle-assistant-cli/internal/domain"
)

type ScreenStateSource interface {
	ScreenStateSnapshot(ctx context.Context) (domain.ScreenStateSnapshot, error)
	// ProfileTabData returns false when the profile form was never saved.
	ProfileTabData(ctx context.Context) (domain.TabData, bool, error)
}

type JournalSource interface {
	// JournalEntries returns nil when the screen has no journal stored.
	JournalEntries(ctx context.Context, screen domain.Screen) ([]domain.JournalEntry, error)
}

type ActionHistorySource interface {
	ActionHistory(ctx context.Context) ([]domain.AppHistoryItem, error)
}

type AppStateWriter interface {
	SaveScreenState(ctx context.Context, screen domain.Screen, fields map[string]json.RawMessage) error
	RecordAppAction(ctx context.Context, item domain.AppHistoryItem) error
	AppendJournalEntry(ctx context.Context, screen domain.Screen, entry domain.JournalEntry) error
	SaveTabData(ctx context.Context, data domain.TabData) error
}
