package ledger

import (
	"errors"

	"github.com/cleared-dev/ledger/internal/model"
)

// ErrEntryNotFound is returned when no entry carries the requested ID.
var ErrEntryNotFound = errors.New("entry not found")

// SetCrossed returns a copy of entries in which only the entry identified by
// entryID has IsCrossed set to crossed. Lines are shared with the input,
// which is never modified. When entryID is unknown the input is returned
// unchanged together with ErrEntryNotFound.
func SetCrossed(entries []model.JournalEntry, entryID string, crossed bool) ([]model.JournalEntry, error) {
	pos := -1
	for i, e := range entries {
		if e.EntryID == entryID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return entries, ErrEntryNotFound
	}

	out := make([]model.JournalEntry, len(entries))
	copy(out, entries)
	out[pos].IsCrossed = crossed
	return out, nil
}

// Find returns the entry with entryID.
func Find(entries []model.JournalEntry, entryID string) (model.JournalEntry, bool) {
	for _, e := range entries {
		if e.EntryID == entryID {
			return e, true
		}
	}
	return model.JournalEntry{}, false
}
