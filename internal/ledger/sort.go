package ledger

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cleared-dev/ledger/internal/model"
)

// SortField names the column entries are ordered by.
type SortField string

const (
	SortNone      SortField = ""
	SortDate      SortField = "date"
	SortEntryID   SortField = "entryId"
	SortAmount    SortField = "amount"
	SortAccountID SortField = "accountId"
	SortEntryType SortField = "entryType"
)

// SortDirection is ascending or descending.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// SortOptions selects an explicit ordering. The zero value keeps source order.
type SortOptions struct {
	Field     SortField
	Direction SortDirection
}

// ParseSortOptions validates a field and direction as given by a caller.
// An empty direction means ascending.
func ParseSortOptions(field, direction string) (SortOptions, error) {
	opts := SortOptions{Field: SortField(field), Direction: SortDirection(strings.ToLower(direction))}
	switch opts.Field {
	case SortNone, SortDate, SortEntryID, SortAmount, SortAccountID, SortEntryType:
	default:
		return SortOptions{}, fmt.Errorf("unknown sort field %q", field)
	}
	switch opts.Direction {
	case "":
		opts.Direction = Asc
	case Asc, Desc:
	default:
		return SortOptions{}, fmt.Errorf("unknown sort direction %q", direction)
	}
	return opts, nil
}

// Sort returns a stably sorted copy of entries.
func Sort(entries []model.JournalEntry, opts SortOptions) []model.JournalEntry {
	out := make([]model.JournalEntry, len(entries))
	copy(out, entries)

	cmp := comparator(opts.Field)
	if cmp == nil {
		return out
	}
	desc := opts.Direction == Desc
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return cmp(out[j], out[i]) < 0
		}
		return cmp(out[i], out[j]) < 0
	})
	return out
}

func comparator(field SortField) func(a, b model.JournalEntry) int {
	switch field {
	case SortDate:
		return func(a, b model.JournalEntry) int { return a.Date.Compare(b.Date) }
	case SortEntryID:
		return func(a, b model.JournalEntry) int { return strings.Compare(a.EntryID, b.EntryID) }
	case SortAmount:
		return func(a, b model.JournalEntry) int { return a.Amount().Cmp(b.Amount()) }
	case SortAccountID:
		return func(a, b model.JournalEntry) int {
			return strings.Compare(a.PrimaryAccountID(), b.PrimaryAccountID())
		}
	case SortEntryType:
		return func(a, b model.JournalEntry) int {
			return strings.Compare(string(a.EntryType), string(b.EntryType))
		}
	default:
		return nil
	}
}
