package state

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/bnema/vehicle-assistant-cli/internal/domain"
)

var errNotText = errors.New("value has no text form")

// record is one JSON object whose fields are decoded one by one.
type record map[string]json.RawMessage

// fieldDecoder reads loosely typed screen records. A field that cannot be
// read is logged and left at its zero value; its siblings are unaffected.
type fieldDecoder struct {
	logger *zap.Logger
	screen domain.Screen
	path   string
}

func (d fieldDecoder) within(field string) fieldDecoder {
	d.path = d.field(field)
	return d
}

func (d fieldDecoder) field(name string) string {
	if d.path == "" {
		return name
	}
	return d.path + "." + name
}

func (d fieldDecoder) skip(field string, err error) {
	d.logger.Warn("ignore malformed state field",
		zap.String("screen", string(d.screen)),
		zap.String("field", d.field(field)),
		zap.Error(err))
}

// object decodes raw as a JSON object; null yields false without a log.
func (d fieldDecoder) object(field string, raw json.RawMessage) (record, bool) {
	if isNull(raw) {
		return nil, false
	}

	var r record
	if err := json.Unmarshal(raw, &r); err != nil {
		d.skip(field, err)
		return nil, false
	}

	return r, true
}

// text reads a string, a number, a boolean or an object carrying a "name".
func (d fieldDecoder) text(r record, key string) string {
	raw, ok := r[key]
	if !ok || isNull(raw) {
		return ""
	}

	s, err := textOf(raw)
	if err != nil {
		d.skip(key, err)
		return ""
	}

	return s
}

// texts reads a list whose elements are labelled with textOf. Elements without
// a text form keep their compact JSON so that the list length is preserved.
func (d fieldDecoder) texts(r record, key string) []string {
	elems, ok := d.list(r, key)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(elems))
	for _, raw := range elems {
		if isNull(raw) {
			continue
		}
		s, err := textOf(raw)
		if err != nil {
			s = compact(raw)
		}
		out = append(out, s)
	}

	return out
}

// items reads a list of objects, skipping the elements that are not objects.
func (d fieldDecoder) items(r record, key string) []record {
	elems, ok := d.list(r, key)
	if !ok {
		return nil
	}

	out := make([]record, 0, len(elems))
	for i, raw := range elems {
		if item, ok := d.object(fmt.Sprintf("%s[%d]", key, i), raw); ok {
			out = append(out, item)
		}
	}

	return out
}

func (d fieldDecoder) list(r record, key string) ([]json.RawMessage, bool) {
	raw, ok := r[key]
	if !ok || isNull(raw) {
		return nil, false
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		d.skip(key, err)
		return nil, false
	}

	return elems, true
}

// flag reads a boolean or its string spelling.
func (d fieldDecoder) flag(r record, key string) bool {
	raw, ok := r[key]
	if !ok || isNull(raw) {
		return false
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	s, err := textOf(raw)
	if err == nil {
		if b, err = strconv.ParseBool(s); err == nil {
			return b
		}
	}
	d.skip(key, fmt.Errorf("not a boolean: %s", compact(raw)))

	return false
}

// count reads a number or a numeric string, truncated to an int.
func (d fieldDecoder) count(r record, key string) int {
	raw, ok := r[key]
	if !ok || isNull(raw) {
		return 0
	}

	s, err := textOf(raw)
	if err == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f)
		}
	}
	d.skip(key, fmt.Errorf("not a number: %s", compact(raw)))

	return 0
}

func textOf(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", errNotText
	}

	switch trimmed[0] {
	case '"':
		var s string
		err := json.Unmarshal(trimmed, &s)
		return s, err
	case '{':
		var named struct {
			Name json.RawMessage `json:"name"`
		}
		if err := json.Unmarshal(trimmed, &named); err != nil {
			return "", err
		}
		if isNull(named.Name) || bytes.HasPrefix(bytes.TrimSpace(named.Name), []byte("{")) {
			return "", errNotText
		}
		return textOf(named.Name)
	case '[':
		return "", errNotText
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return "", err
		}
		return strconv.FormatBool(b), nil
	default:
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return "", err
		}
		return n.String(), nil
	}
}

func compact(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(bytes.TrimSpace(raw))
	}
	return buf.String()
}

func (d fieldDecoder) agenda(r record) *domain.AgendaState {
	st := &domain.AgendaState{LastUpdated: d.text(r, "lastUpdated")}
	for i, item := range d.items(r, "appointments") {
		in := d.within(fmt.Sprintf("appointments[%d]", i))
		st.Appointments = append(st.Appointments, domain.Appointment{
			Title:       in.text(item, "title"),
			Description: in.text(item, "description"),
			Date:        in.text(item, "date"),
			Completed:   in.flag(item, "completed"),
		})
	}

	return st
}

func (d fieldDecoder) general(r record) *domain.GeneralState {
	return &domain.GeneralState{
		Services:    d.texts(r, "services"),
		LastService: d.text(r, "lastService"),
		LastUpdated: d.text(r, "lastUpdated"),
	}
}

func (d fieldDecoder) preventive(r record) *domain.PreventiveState {
	st := &domain.PreventiveState{LastUpdated: d.text(r, "lastUpdated")}
	for i, item := range d.items(r, "tasks") {
		in := d.within(fmt.Sprintf("tasks[%d]", i))
		st.Tasks = append(st.Tasks, domain.PreventiveTask{
			ID:          in.text(item, "id"),
			Description: in.text(item, "description"),
			DueDate:     in.text(item, "dueDate"),
			Completed:   in.flag(item, "completed"),
			CompletedAt: in.text(item, "completedAt"),
		})
	}

	return st
}

func (d fieldDecoder) emergency(r record) *domain.EmergencyState {
	return &domain.EmergencyState{
		Contacts:          d.texts(r, "contacts"),
		EmergencyProtocol: d.text(r, "emergencyProtocol"),
		LastEntryAt:       d.text(r, "lastEntryAt"),
		EntriesCount:      d.count(r, "entriesCount"),
		LastUpdated:       d.text(r, "lastUpdated"),
	}
}

func (d fieldDecoder) profile(r record) *domain.ProfileState {
	st := &domain.ProfileState{
		Name:            d.text(r, "name"),
		Documents:       d.texts(r, "documents"),
		DocumentsStatus: d.text(r, "documentsStatus"),
		LastUpdated:     d.text(r, "lastUpdated"),
	}
	if expiry, ok := d.object("documentsExpiry", r["documentsExpiry"]); ok {
		in := d.within("documentsExpiry")
		st.DocumentsExpiry = &domain.DocumentsExpiry{
			Soat:         in.text(expiry, "soat"),
			Tecnico:      in.text(expiry, "tecnico"),
			PicoPlacaDay: in.text(expiry, "picoPlacaDay"),
		}
	}

	return st
}

func (d fieldDecoder) route(r record) *domain.RouteState {
	return &domain.RouteState{
		Routes:        d.texts(r, "routes"),
		Favorite:      d.text(r, "favorite"),
		TotalDistance: d.text(r, "totalDistance"),
		LastUpdated:   d.text(r, "lastUpdated"),
	}
}
