package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bnema/vehicle-assistant-cli/internal/domain"
	"github.com/bnema/vehicle-assistant-cli/internal/ports"
)

// Recorder is the write side used by the screens: it appends to the action
// log and journals and merges screen state.
type Recorder struct {
	writer ports.AppStateWriter
	clock  ports.Clock
	logger *zap.Logger
	newID  func() string
}

func NewRecorder(writer ports.AppStateWriter, clock ports.Clock, logger *zap.Logger) *Recorder {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Recorder{
		writer: writer,
		clock:  clock,
		logger: logger,
		newID:  uuid.NewString,
	}
}

func (r *Recorder) RecordAction(ctx context.Context, action string, screen domain.Screen, data json.RawMessage) (domain.AppHistoryItem, error) {
	action = strings.TrimSpace(action)
	if action == "" {
		return domain.AppHistoryItem{}, fmt.Errorf("record action: %w", domain.ErrEmptyMessage)
	}
	if len(data) > 0 && !json.Valid(data) {
		return domain.AppHistoryItem{}, fmt.Errorf("record action: data is not valid JSON")
	}

	item := domain.AppHistoryItem{
		ID:        r.newID(),
		Action:    action,
		Screen:    string(screen),
		Data:      data,
		Timestamp: r.clock.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := r.writer.RecordAppAction(ctx, item); err != nil {
		return domain.AppHistoryItem{}, fmt.Errorf("record action: %w", err)
	}
	r.logger.Debug("action recorded", zap.String("action", action), zap.String("screen", item.Screen))

	return item, nil
}

// AddJournalEntry stamps the entry with at, or with the clock when at is zero.
func (r *Recorder) AddJournalEntry(ctx context.Context, screen domain.Screen, text, image string, at time.Time) (domain.JournalEntry, error) {
	if !screen.HasJournal() {
		return domain.JournalEntry{}, fmt.Errorf("add journal entry for %s: %w", screen, domain.ErrNoJournal)
	}
	text = strings.TrimSpace(text)
	image = strings.TrimSpace(image)
	if text == "" && image == "" {
		return domain.JournalEntry{}, fmt.Errorf("add journal entry: %w", domain.ErrEmptyEntry)
	}
	if at.IsZero() {
		at = r.clock.Now()
	}

	entry := domain.JournalEntry{
		ID:    r.newID(),
		Text:  text,
		Image: image,
		Date:  at.Format(time.RFC3339),
	}
	if err := r.writer.AppendJournalEntry(ctx, screen, entry); err != nil {
		return domain.JournalEntry{}, fmt.Errorf("add journal entry: %w", err)
	}

	return entry, nil
}

// UpdateScreen shallow-merges fields into the screen record.
func (r *Recorder) UpdateScreen(ctx context.Context, screen domain.Screen, fields map[string]json.RawMessage) error {
	for key, value := range fields {
		if !json.Valid(value) {
			return fmt.Errorf("update %s state: field %q is not valid JSON", screen, key)
		}
	}
	if err := r.writer.SaveScreenState(ctx, screen, fields); err != nil {
		return fmt.Errorf("update %s state: %w", screen, err)
	}

	return nil
}

func (r *Recorder) SaveProfileForm(ctx context.Context, data domain.TabData) error {
	if err := r.writer.SaveTabData(ctx, data); err != nil {
		return fmt.Errorf("save profile form: %w", err)
	}

	return nil
}
