package application

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/bnema/vehicle-assistant-cli/internal/domain"
	"github.com/bnema/vehicle-assistant-cli/internal/ports/mocks"
)

func newTestRecorder(t *testing.T, writer *mocks.MockAppStateWriter) *Recorder {
	t.Helper()

	r := NewRecorder(writer, fixedClock(refNow), zaptest.NewLogger(t))
	r.newID = func() string { return "id-1" }
	return r
}

func TestRecorderRecordAction(t *testing.T) {
	t.Parallel()

	writer := mocks.NewMockAppStateWriter(t)
	want := domain.AppHistoryItem{
		ID:        "id-1",
		Action:    "route_saved",
		Screen:    "Route",
		Data:      json.RawMessage(`{"name":"Casa"}`),
		Timestamp: "2025-06-01T10:00:00Z",
	}
	writer.EXPECT().RecordAppAction(mock.Anything, want).Return(nil)

	got, err := newTestRecorder(t, writer).RecordAction(context.Background(), " route_saved ", domain.ScreenRoute, json.RawMessage(`{"name":"Casa"}`))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRecorderRecordActionValidation(t *testing.T) {
	t.Parallel()

	r := newTestRecorder(t, mocks.NewMockAppStateWriter(t))

	_, err := r.RecordAction(context.Background(), "  ", domain.ScreenRoute, nil)
	require.ErrorIs(t, err, domain.ErrEmptyMessage)

	_, err = r.RecordAction(context.Background(), "x", domain.ScreenRoute, json.RawMessage(`{bad`))
	require.Error(t, err)
}

func TestRecorderRecordActionWrapsWriterError(t *testing.T) {
	t.Parallel()

	writer := mocks.NewMockAppStateWriter(t)
	boom := errors.New("boom")
	writer.EXPECT().RecordAppAction(mock.Anything, mock.Anything).Return(boom)

	_, err := newTestRecorder(t, writer).RecordAction(context.Background(), "x", domain.ScreenGeneral, nil)
	require.ErrorIs(t, err, boom)
}

func TestRecorderAddJournalEntry(t *testing.T) {
	t.Parallel()

	writer := mocks.NewMockAppStateWriter(t)
	at := time.Date(2025, 5, 30, 8, 0, 0, 0, time.UTC)
	writer.EXPECT().AppendJournalEntry(mock.Anything, domain.ScreenEmergency, domain.JournalEntry{
		ID:   "id-1",
		Text: "Llanta pinchada",
		Date: "2025-05-30T08:00:00Z",
	}).Return(nil)

	entry, err := newTestRecorder(t, writer).AddJournalEntry(context.Background(), domain.ScreenEmergency, "Llanta pinchada", "", at)
	require.NoError(t, err)
	assert.Equal(t, "id-1", entry.ID)
}

func TestRecorderAddJournalEntryDefaultsToClock(t *testing.T) {
	t.Parallel()

	writer := mocks.NewMockAppStateWriter(t)
	writer.EXPECT().AppendJournalEntry(mock.Anything, domain.ScreenGeneral, mock.Anything).
		Run(func(_ context.Context, _ domain.Screen, entry domain.JournalEntry) {
			assert.Equal(t, "2025-06-01T10:00:00Z", entry.Date)
			assert.Equal(t, "foto.jpg", entry.Image)
		}).
		Return(nil)

	_, err := newTestRecorder(t, writer).AddJournalEntry(context.Background(), domain.ScreenGeneral, "", "foto.jpg", time.Time{})
	require.NoError(t, err)
}

func TestRecorderAddJournalEntryValidation(t *testing.T) {
	t.Parallel()

	r := newTestRecorder(t, mocks.NewMockAppStateWriter(t))

	_, err := r.AddJournalEntry(context.Background(), domain.ScreenProfile, "texto", "", time.Time{})
	require.ErrorIs(t, err, domain.ErrNoJournal)

	_, err = r.AddJournalEntry(context.Background(), domain.ScreenGeneral, " ", "", time.Time{})
	require.ErrorIs(t, err, domain.ErrEmptyEntry)
}

func TestRecorderUpdateScreen(t *testing.T) {
	t.Parallel()

	writer := mocks.NewMockAppStateWriter(t)
	fields := map[string]json.RawMessage{"favorite": json.RawMessage(`"Casa"`)}
	writer.EXPECT().SaveScreenState(mock.Anything, domain.ScreenRoute, fields).Return(nil)

	r := newTestRecorder(t, writer)
	require.NoError(t, r.UpdateScreen(context.Background(), domain.ScreenRoute, fields))

	err := r.UpdateScreen(context.Background(), domain.ScreenRoute, map[string]json.RawMessage{"favorite": json.RawMessage(`Casa`)})
	require.Error(t, err)
}

func TestRecorderSaveProfileForm(t *testing.T) {
	t.Parallel()

	writer := mocks.NewMockAppStateWriter(t)
	data := domain.TabData{Soat: "15/08/2025", PicoYPlaca: "Lunes"}
	writer.EXPECT().SaveTabData(mock.Anything, data).Return(nil)

	require.NoError(t, newTestRecorder(t, writer).SaveProfileForm(context.Background(), data))
}
