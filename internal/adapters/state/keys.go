package state

import "github.com/bnema/vehicle-assistant-cli/internal/domain"

// Persisted keys. The spellings, including the mixed case of the journal keys,
// match data exported by the mobile app.
const (
	KeyScreenStates = "@screen_states"
	KeyTabData      = "@tabData"
	KeyAppHistory   = "@app_history"
)

var journalKeys = map[domain.Screen]string{
	domain.ScreenPreventive: "@journal_entries_Preventive",
	domain.ScreenGeneral:    "@journal_entries_general",
	domain.ScreenEmergency:  "@journal_entries_emergency",
	domain.ScreenRoute:      "@journal_entries_route",
}

// JournalKey returns the key of a screen's journal, or false when it has none.
func JournalKey(screen domain.Screen) (string, bool) {
	key, ok := journalKeys[screen]
	return key, ok
}
