package application

import (
	"context"
	"strings"

	"github.com/bnema/vehicle-assistant-cli/internal/calendar"
	"github.com/bnema/vehicle-assistant-cli/internal/domain"
)

// Briefing refreshes the snapshot and reports overdue maintenance, document
// expiry dates and today's agenda. It is not recorded in the response history.
func (a *Assistant) Briefing(ctx context.Context) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	_ = a.refresh(ctx)
	now := a.clock.Now()

	today := domain.Intent{Screen: domain.ScreenAgenda, Kind: domain.IntentListRange, Label: "hoy"}
	if r, err := calendar.DateRange(calendar.RangeToday, now); err == nil {
		today.Start, today.End = r.Start, r.End
	}

	parts := []string{
		"Recordatorio del " + calendar.FormatLong(now) + ":",
		answerPreventive(a.snapshot.Preventive, domain.Intent{Screen: domain.ScreenPreventive, Kind: domain.IntentOverdue}, now),
		answerProfile(a.snapshot.Profile, domain.Intent{Screen: domain.ScreenProfile, Kind: domain.IntentSoatDue}, now),
		answerProfile(a.snapshot.Profile, domain.Intent{Screen: domain.ScreenProfile, Kind: domain.IntentTecDue}, now),
		answerAgenda(domain.ScreenAgenda, a.snapshot.AgendaFor(domain.ScreenAgenda), today, now),
	}

	return strings.Join(parts, "\n\n")
}
