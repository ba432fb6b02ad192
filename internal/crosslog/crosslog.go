// Package crosslog keeps the append-only reconciliation log: one CSV row
// each time an entry is crossed or uncrossed.
package crosslog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event is one row in the reconciliation log.
type Event struct {
	EventID   uuid.UUID `json:"eventId"`
	Timestamp time.Time `json:"timestamp"`
	EntryID   string    `json:"entryId"`
	Crossed   bool      `json:"crossed"`
	Actor     string    `json:"actor"`
	Source    string    `json:"source"` // "cli" or "http"
}

// Header is the CSV header for crossing-log.csv.
const Header = "event_id,timestamp,entry_id,crossed,actor,source"

const (
	numFields    = 6
	colEventID   = 0
	colTimestamp = 1
	colEntryID   = 2
	colCrossed   = 3
	colActor     = 4
	colSource    = 5
)

// NewEvent stamps a toggle with a fresh event id and the current time.
func NewEvent(entryID string, crossed bool, actor, source string) Event {
	return Event{
		EventID:   uuid.New(),
		Timestamp: time.Now().UTC().Truncate(time.Second),
		EntryID:   entryID,
		Crossed:   crossed,
		Actor:     actor,
		Source:    source,
	}
}

// MarshalEvent converts an Event to a CSV row.
func MarshalEvent(e Event) []string {
	row := make([]string, numFields)
	row[colEventID] = e.EventID.String()
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colEntryID] = e.EntryID
	row[colCrossed] = strconv.FormatBool(e.Crossed)
	row[colActor] = e.Actor
	row[colSource] = e.Source
	return row
}

// UnmarshalEvent converts a CSV row to an Event.
func UnmarshalEvent(record []string) (Event, error) {
	if len(record) != numFields {
		return Event{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	id, err := uuid.Parse(record[colEventID])
	if err != nil {
		return Event{}, fmt.Errorf("parsing event id %q: %w", record[colEventID], err)
	}
	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Event{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}
	crossed, err := strconv.ParseBool(record[colCrossed])
	if err != nil {
		return Event{}, fmt.Errorf("parsing crossed %q: %w", record[colCrossed], err)
	}

	return Event{
		EventID:   id,
		Timestamp: ts,
		EntryID:   record[colEntryID],
		Crossed:   crossed,
		Actor:     record[colActor],
		Source:    record[colSource],
	}, nil
}

// AppendFile writes events to path, creating the file and header if needed.
func AppendFile(path string, events []Event) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}

	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening crossing log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i, e := range events {
		if err := cw.Write(MarshalEvent(e)); err != nil {
			return fmt.Errorf("writing event %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing crossing log: %w", err)
	}
	return f.Close()
}

// ReadFile returns all events in path, or nil if the file does not exist.
func ReadFile(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening crossing log: %w", err)
	}
	defer f.Close()

	return readEvents(f)
}

func readEvents(r io.Reader) ([]Event, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading crossing log CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	if got := strings.Join(records[0], ","); got != Header {
		return nil, fmt.Errorf("unexpected crossing log header %q", got)
	}

	var events []Event
	for i, rec := range records[1:] {
		e, err := UnmarshalEvent(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		events = append(events, e)
	}
	return events, nil
}

// Latest returns the last recorded crossed state per entry.
func Latest(events []Event) map[string]bool {
	out := make(map[string]bool, len(events))
	for _, e := range events {
		out[e.EntryID] = e.Crossed
	}
	return out
}
