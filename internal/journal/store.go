package journal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cleared-dev/ledger/internal/ledger"
	"github.com/cleared-dev/ledger/internal/model"
)

// EntriesPath is the journal location relative to a repo root.
const EntriesPath = "journal/entries.csv"

// Store holds the current journal snapshot. Readers get an immutable slice;
// crossing toggles are serialised and swap in a new slice.
type Store struct {
	mu      sync.RWMutex
	entries []model.JournalEntry
}

// NewStore creates a Store over entries. The slice is not copied; the caller
// must not modify it afterwards.
func NewStore(entries []model.JournalEntry) *Store {
	return &Store{entries: entries}
}

// Load reads and validates a journal file. Invalid journals are rejected.
func Load(path string, accounts AccountChecker) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}

	if verrs := ValidateEntries(entries, accounts); len(verrs) > 0 {
		return nil, joinValidation(verrs)
	}
	return NewStore(entries), nil
}

// Snapshot returns the current journal. It must be treated as read-only.
func (s *Store) Snapshot() []model.JournalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries
}

// Get returns the entry with entryID.
func (s *Store) Get(entryID string) (model.JournalEntry, bool) {
	return ledger.Find(s.Snapshot(), entryID)
}

// SetCrossed sets the reconciliation flag of one entry and returns the
// updated entry. Unknown IDs yield ledger.ErrEntryNotFound.
func (s *Store) SetCrossed(entryID string, crossed bool) (model.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := ledger.SetCrossed(s.entries, entryID, crossed)
	if err != nil {
		return model.JournalEntry{}, fmt.Errorf("crossing %s: %w", entryID, err)
	}
	s.entries = next
	e, _ := ledger.Find(next, entryID)
	return e, nil
}

// Save writes the current snapshot to path, creating parent directories.
func (s *Store) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating journal dir: %w", err)
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating journal file: %w", err)
	}
	if err := WriteEntries(f, s.Snapshot()); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing journal: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing journal: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing journal: %w", err)
	}
	return nil
}

// ErrInvalidJournal wraps validation failures returned by Load.
var ErrInvalidJournal = errors.New("invalid journal")

func joinValidation(verrs []ValidationError) error {
	msgs := make([]string, len(verrs))
	for i, ve := range verrs {
		msgs[i] = ve.Error()
	}
	return fmt.Errorf("%w: %s", ErrInvalidJournal, strings.Join(msgs, "; "))
}
