package domain

import "encoding/json"

// ScreenStateSnapshot is the cached, read-only summary of every screen.
// A nil field means the screen has not published any data yet.
type ScreenStateSnapshot struct {
	Daily      *AgendaState     `json:"Daily,omitempty"`
	Agenda     *AgendaState     `json:"Agenda,omitempty"`
	General    *GeneralState    `json:"General,omitempty"`
	Preventive *PreventiveState `json:"Preventive,omitempty"`
	Emergency  *EmergencyState  `json:"Emergency,omitempty"`
	Profile    *ProfileState    `json:"Profile,omitempty"`
	Route      *RouteState      `json:"Route,omitempty"`
}

// AgendaFor returns the agenda-like state for Daily or Agenda, never nil.
func (s ScreenStateSnapshot) AgendaFor(screen Screen) AgendaState {
	var st *AgendaState
	switch screen {
	case ScreenDaily:
		st = s.Daily
	case ScreenAgenda:
		st = s.Agenda
	}
	if st == nil {
		return AgendaState{}
	}

	return *st
}

type Appointment struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Completed   bool   `json:"completed,omitempty"`
}

type AgendaState struct {
	Appointments []Appointment `json:"appointments,omitempty"`
	LastUpdated  string        `json:"lastUpdated,omitempty"`
}

type GeneralState struct {
	Services    []string `json:"services,omitempty"`
	LastService string   `json:"lastService,omitempty"`
	LastUpdated string   `json:"lastUpdated,omitempty"`
}

// PreventiveTask is pending while Completed is false; "overdue" means pending with DueDate before now.
type PreventiveTask struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Completed   bool   `json:"completed"`
	CompletedAt string `json:"completedAt,omitempty"`
}

// ReferenceDate is the completion date when present, otherwise the due date.
func (t PreventiveTask) ReferenceDate() string {
	if t.CompletedAt != "" {
		return t.CompletedAt
	}

	return t.DueDate
}

type PreventiveState struct {
	Tasks       []PreventiveTask `json:"tasks,omitempty"`
	LastUpdated string           `json:"lastUpdated,omitempty"`
}

type EmergencyState struct {
	Contacts          []string `json:"contacts,omitempty"`
	EmergencyProtocol string   `json:"emergencyProtocol,omitempty"`
	LastEntryAt       string   `json:"lastEntryAt,omitempty"`
	EntriesCount      int      `json:"entriesCount,omitempty"`
	LastUpdated       string   `json:"lastUpdated,omitempty"`
}

type DocumentsExpiry struct {
	Soat         string `json:"soat,omitempty"`
	Tecnico      string `json:"tecnico,omitempty"`
	PicoPlacaDay string `json:"picoPlacaDay,omitempty"`
}

type ProfileState struct {
	Name            string           `json:"name,omitempty"`
	Documents       []string         `json:"documents,omitempty"`
	DocumentsStatus string           `json:"documentsStatus,omitempty"`
	DocumentsExpiry *DocumentsExpiry `json:"documentsExpiry,omitempty"`
	LastUpdated     string           `json:"lastUpdated,omitempty"`
}

// TabData is the raw profile form persisted under @tabData.
type TabData struct {
	Soat       string `json:"soat,omitempty"`
	Tecnico    string `json:"tecnico,omitempty"`
	PicoYPlaca string `json:"picoyplaca,omitempty"`
}

type RouteState struct {
	Routes        []string `json:"routes,omitempty"`
	Favorite      string   `json:"favorite,omitempty"`
	TotalDistance string   `json:"totalDistance,omitempty"`
	LastUpdated   string   `json:"lastUpdated,omitempty"`
}

// JournalEntry is one bitácora line of a screen.
type JournalEntry struct {
	ID    string `json:"id"`
	Text  string `json:"text,omitempty"`
	Image string `json:"image,omitempty"`
	Date  string `json:"date"`
}

// AppHistoryItem is one element of the global, append-only action log.
type AppHistoryItem struct {
	ID        string          `json:"id"`
	Action    string          `json:"action"`
	Screen    string          `json:"screen"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp string          `json:"timestamp"`
}
