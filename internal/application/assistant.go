package application

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/bnema/vehicle-assistant-cli/internal/calendar"
	"github.com/bnema/vehicle-assistant-cli/internal/catalog"
	"github.com/bnema/vehicle-assistant-cli/internal/domain"
	"github.com/bnema/vehicle-assistant-cli/internal/intent"
	"github.com/bnema/vehicle-assistant-cli/internal/ports"
)

var defaultDocuments = []string{"SOAT", "Técnico Mecánica"}

type Deps struct {
	States   ports.ScreenStateSource
	Journals ports.JournalSource
	Actions  ports.ActionHistorySource
	Catalog  *catalog.Catalog
	Clock    ports.Clock
	Logger   *zap.Logger
}

// Assistant answers free-text questions from cached screen state. It is safe
// for concurrent use; calls are serialized.
type Assistant struct {
	mu       sync.Mutex
	states   ports.ScreenStateSource
	journals ports.JournalSource
	actions  ports.ActionHistorySource
	catalog  *catalog.Catalog
	clock    ports.Clock
	logger   *zap.Logger
	snapshot domain.ScreenStateSnapshot
	history  *ResponseHistory
}

func New(deps Deps) *Assistant {
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Catalog == nil {
		deps.Catalog = catalog.New(catalog.Default())
	}

	return &Assistant{
		states:   deps.States,
		journals: deps.Journals,
		actions:  deps.Actions,
		catalog:  deps.Catalog,
		clock:    deps.Clock,
		logger:   deps.Logger,
		history:  NewResponseHistory(responseHistoryCapacity),
	}
}

// Refresh reloads the snapshot. On failure the previous snapshot is kept and
// the error is returned for callers that want to report it.
func (a *Assistant) Refresh(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.refresh(ctx)
}

func (a *Assistant) refresh(ctx context.Context) error {
	if a.states == nil {
		return nil
	}

	snap, err := a.states.ScreenStateSnapshot(ctx)
	if err != nil {
		a.logger.Warn("refresh screen states", zap.Error(err))
		return err
	}

	if snap.Profile == nil || snap.Profile.DocumentsExpiry == nil {
		tab, ok, err := a.states.ProfileTabData(ctx)
		switch {
		case err != nil:
			a.logger.Warn("read profile tab data", zap.Error(err))
		case ok:
			snap.Profile = reconcileProfile(snap.Profile, tab, a.clock.Now())
		}
	}

	a.snapshot = snap
	return nil
}

// reconcileProfile fills documentsExpiry from the raw profile form. Dates are
// read loosely and stored as ISO dates; the Pico y Placa label is kept as is.
func reconcileProfile(current *domain.ProfileState, tab domain.TabData, now time.Time) *domain.ProfileState {
	var profile domain.ProfileState
	if current != nil {
		profile = *current
	}

	exp := domain.DocumentsExpiry{PicoPlacaDay: strings.TrimSpace(tab.PicoYPlaca)}
	if d, ok := calendar.ParseDateFromText(tab.Soat, now); ok {
		exp.Soat = calendar.FormatISODate(d)
	}
	if d, ok := calendar.ParseDateFromText(tab.Tecnico, now); ok {
		exp.Tecnico = calendar.FormatISODate(d)
	}
	profile.DocumentsExpiry = &exp

	if len(profile.Documents) == 0 {
		profile.Documents = append([]string(nil), defaultDocuments...)
	}

	return &profile
}

// Answer always returns a non-empty reply. Lookup order: exact catalog
// question, classified intent, screen keyword, canned replies, generic digest.
func (a *Assistant) Answer(ctx context.Context, message string) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	reply := a.answer(ctx, message)
	a.history.Push(reply)
	a.logger.Debug("answered", zap.String("message", message), zap.Int("reply_len", len(reply)))

	return reply
}

func (a *Assistant) answer(ctx context.Context, message string) string {
	text := strings.TrimSpace(message)
	low := strings.ToLower(text)

	if qa, ok := a.catalog.Lookup(low); ok {
		return qa.Answer
	}

	now := a.clock.Now()

	if in, ok := intent.Detect(low, now); ok {
		_ = a.refresh(ctx)
		return a.dispatch(ctx, in, now)
	}

	for _, kw := range screenKeywords {
		if strings.Contains(low, kw.keyword) {
			_ = a.refresh(ctx)
			return digestScreen(a.snapshot, kw.screen, now)
		}
	}

	_ = a.refresh(ctx)
	summary := contextSummary(a.snapshot, now)

	switch {
	case reGreeting.MatchString(low):
		return greetingReply(summary)
	case reHelp.MatchString(low):
		return helpReply
	case reStatus.MatchString(low):
		return summary
	default:
		return genericReply(text, summary)
	}
}

func (a *Assistant) dispatch(ctx context.Context, in domain.Intent, now time.Time) string {
	if in.Kind == domain.IntentHistoryLast5 {
		return a.answerHistory(ctx, in.Screen, now)
	}

	switch in.Screen {
	case domain.ScreenPreventive:
		return answerPreventive(a.snapshot.Preventive, in, now)
	case domain.ScreenProfile:
		return answerProfile(a.snapshot.Profile, in, now)
	case domain.ScreenAgenda, domain.ScreenDaily:
		return answerAgenda(in.Screen, a.snapshot.AgendaFor(in.Screen), in, now)
	default:
		return digestScreen(a.snapshot, in.Screen, now)
	}
}

// LastResponses returns up to the five most recent answers, oldest first.
func (a *Assistant) LastResponses() []string {
	return a.history.Items()
}

// ContextSummary renders the digest of every screen from the cached snapshot.
func (a *Assistant) ContextSummary() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return contextSummary(a.snapshot, a.clock.Now())
}

// Digests returns the per-screen summaries in display order.
func (a *Assistant) Digests() []Digest {
	a.mu.Lock()
	defer a.mu.Unlock()

	return digests(a.snapshot, a.clock.Now())
}

// Snapshot returns the cached state as last refreshed.
func (a *Assistant) Snapshot() domain.ScreenStateSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.snapshot
}
