// Package state reads and writes the typed application state kept in a blob store.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/bnema/vehicle-assistant-cli/internal/domain"
	"github.com/bnema/vehicle-assistant-cli/internal/ports"
)

const lastUpdatedLayout = "2006-01-02T15:04:05.000Z"

// Store decodes persisted JSON leniently: a malformed key, screen record or
// screen field is logged and treated as absent. Writes are read-modify-write and serialized.
type Store struct {
	blobs  ports.BlobStore
	clock  ports.Clock
	logger *zap.Logger
	mu     sync.Mutex
}

var (
	_ ports.ScreenStateSource   = (*Store)(nil)
	_ ports.JournalSource       = (*Store)(nil)
	_ ports.ActionHistorySource = (*Store)(nil)
	_ ports.AppStateWriter      = (*Store)(nil)
)

func New(blobs ports.BlobStore, clock ports.Clock, logger *zap.Logger) *Store {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Store{blobs: blobs, clock: clock, logger: logger}
}

func (s *Store) ScreenStateSnapshot(ctx context.Context) (domain.ScreenStateSnapshot, error) {
	var snap domain.ScreenStateSnapshot

	records, err := s.screenRecords(ctx)
	if err != nil {
		if errors.Is(err, errMalformed) {
			return snap, nil
		}
		return snap, err
	}

	snap.Daily = decodeScreen(s, records, domain.ScreenDaily, fieldDecoder.agenda)
	snap.Agenda = decodeScreen(s, records, domain.ScreenAgenda, fieldDecoder.agenda)
	snap.General = decodeScreen(s, records, domain.ScreenGeneral, fieldDecoder.general)
	snap.Preventive = decodeScreen(s, records, domain.ScreenPreventive, fieldDecoder.preventive)
	snap.Emergency = decodeScreen(s, records, domain.ScreenEmergency, fieldDecoder.emergency)
	snap.Profile = decodeScreen(s, records, domain.ScreenProfile, fieldDecoder.profile)
	snap.Route = decodeScreen(s, records, domain.ScreenRoute, fieldDecoder.route)

	return snap, nil
}

// decodeScreen returns nil when the screen is absent or its record is not a
// JSON object.
func decodeScreen[T any](s *Store, records map[string]json.RawMessage, screen domain.Screen, read func(fieldDecoder, record) *T) *T {
	d := fieldDecoder{logger: s.logger, screen: screen}
	r, ok := d.object("", records[string(screen)])
	if !ok {
		return nil
	}

	return read(d, r)
}

func (s *Store) ProfileTabData(ctx context.Context) (domain.TabData, bool, error) {
	var tab domain.TabData
	ok, err := s.readJSON(ctx, KeyTabData, &tab)
	if err != nil || !ok {
		return domain.TabData{}, false, err
	}

	return tab, true, nil
}

func (s *Store) JournalEntries(ctx context.Context, screen domain.Screen) ([]domain.JournalEntry, error) {
	key, ok := JournalKey(screen)
	if !ok {
		return nil, nil
	}

	var entries []domain.JournalEntry
	if _, err := s.readJSON(ctx, key, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (s *Store) ActionHistory(ctx context.Context) ([]domain.AppHistoryItem, error) {
	var items []domain.AppHistoryItem
	if _, err := s.readJSON(ctx, KeyAppHistory, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// SaveScreenState shallow-merges fields into the screen record and stamps lastUpdated.
func (s *Store) SaveScreenState(ctx context.Context, screen domain.Screen, fields map[string]json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.screenRecords(ctx)
	if err != nil {
		return fmt.Errorf("save %s state: %w", screen, err)
	}
	if records == nil {
		records = map[string]json.RawMessage{}
	}

	record := map[string]json.RawMessage{}
	if existing, ok := records[string(screen)]; ok && !isNull(existing) {
		if err := json.Unmarshal(existing, &record); err != nil {
			s.logger.Warn("replace malformed screen state", zap.String("screen", string(screen)), zap.Error(err))
			record = map[string]json.RawMessage{}
		}
	}
	for key, value := range fields {
		record[key] = value
	}
	stamp, err := json.Marshal(s.clock.Now().UTC().Format(lastUpdatedLayout))
	if err != nil {
		return fmt.Errorf("save %s state: %w", screen, err)
	}
	record["lastUpdated"] = stamp

	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s state: %w", screen, err)
	}
	records[string(screen)] = encoded

	return s.writeJSON(ctx, KeyScreenStates, records)
}

func (s *Store) RecordAppAction(ctx context.Context, item domain.AppHistoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.appendTo(ctx, KeyAppHistory, item)
}

func (s *Store) AppendJournalEntry(ctx context.Context, screen domain.Screen, entry domain.JournalEntry) error {
	key, ok := JournalKey(screen)
	if !ok {
		return fmt.Errorf("append journal entry for %s: %w", screen, domain.ErrNoJournal)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.appendTo(ctx, key, entry)
}

// SaveTabData sets the non-empty document fields of the profile form and keeps
// any other field already stored there.
func (s *Store) SaveTabData(ctx context.Context, data domain.TabData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := map[string]json.RawMessage{}
	if _, err := s.readJSON(ctx, KeyTabData, &current); err != nil {
		return fmt.Errorf("save tab data: %w", err)
	}
	if current == nil {
		current = map[string]json.RawMessage{}
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode tab data: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &fields); err != nil {
		return fmt.Errorf("encode tab data: %w", err)
	}
	for key, value := range fields {
		current[key] = value
	}

	return s.writeJSON(ctx, KeyTabData, current)
}
