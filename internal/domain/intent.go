package domain

import "time"

type IntentKind string

const (
	IntentLastDone     IntentKind = "LAST_DONE"
	IntentNextDue      IntentKind = "NEXT_DUE"
	IntentOverdue      IntentKind = "OVERDUE"
	IntentListByDate   IntentKind = "LIST_BY_DATE"
	IntentSummary      IntentKind = "SUMMARY"
	IntentSoatDue      IntentKind = "SOAT_DUE"
	IntentTecDue       IntentKind = "TEC_DUE"
	IntentDocsStatus   IntentKind = "DOCS_STATUS"
	IntentPicoPlaca    IntentKind = "PICO_PLACA"
	IntentListRange    IntentKind = "LIST_RANGE"
	IntentHistoryLast5 IntentKind = "HISTORY_LAST5"
)

// Intent is a classified user goal. Date is set for LIST_BY_DATE; Start, End and
// Label are set for LIST_RANGE, where the range is half-open.
type Intent struct {
	Screen Screen
	Kind   IntentKind
	Date   time.Time
	Start  time.Time
	End    time.Time
	Label  string
}

// HasDate reports whether the intent targets a specific calendar day.
func (i Intent) HasDate() bool {
	return i.Kind == IntentListByDate && !i.Date.IsZero()
}
