// Package ledger turns a journal and a chart of accounts into the filtered,
// grouped and totalled general-ledger view. Every function is pure: inputs
// are never mutated and results are freshly allocated.
package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/cleared-dev/ledger/internal/model"
)

// CrossingMode narrows the view by reconciliation state when crossing is enabled.
type CrossingMode string

const (
	CrossingAll     CrossingMode = "all"
	CrossingOpen    CrossingMode = "open"
	CrossingCrossed CrossingMode = "crossed"
)

// ParseCrossingMode accepts "", "all", "open" or "crossed". Empty means all.
func ParseCrossingMode(s string) (CrossingMode, error) {
	switch m := CrossingMode(strings.ToLower(s)); m {
	case "":
		return CrossingAll, nil
	case CrossingAll, CrossingOpen, CrossingCrossed:
		return m, nil
	default:
		return "", fmt.Errorf("unknown crossing mode %q", s)
	}
}

// Period selects a fiscal year and, optionally, a month within it.
// Year 0 means any year; Month 0 means the whole year.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month,omitempty"`
}

// Filter is a ledger selection. The zero Filter matches every entry.
type Filter struct {
	Period          Period
	EntryType       model.EntryType // empty = any
	AccountID       string          // empty = any
	CrossingEnabled bool
	CrossingMode    CrossingMode
	ProjectID       string
	Search          string
	From            time.Time // inclusive, zero = open
	To              time.Time // inclusive, zero = open
}

type predicate func(e model.JournalEntry) bool

// Matcher compiles the filter into a single predicate. Constraints that are
// not set contribute nothing.
func (f Filter) Matcher() func(model.JournalEntry) bool {
	var preds []predicate

	if f.Period.Year != 0 || f.Period.Month != 0 {
		year, month := f.Period.Year, f.Period.Month
		if month < 0 || month > 12 {
			return func(model.JournalEntry) bool { return false }
		}
		preds = append(preds, func(e model.JournalEntry) bool {
			if year != 0 && e.Date.Year() != year {
				return false
			}
			return month == 0 || int(e.Date.Month()) == month
		})
	}

	if f.EntryType != "" {
		et := f.EntryType
		preds = append(preds, func(e model.JournalEntry) bool { return e.EntryType == et })
	}

	if f.AccountID != "" {
		acct := f.AccountID
		preds = append(preds, func(e model.JournalEntry) bool { return e.Touches(acct) })
	}

	if f.CrossingEnabled {
		switch f.CrossingMode {
		case CrossingOpen:
			preds = append(preds, func(e model.JournalEntry) bool { return e.IsOpen })
		case CrossingCrossed:
			preds = append(preds, func(e model.JournalEntry) bool { return e.IsCrossed })
		}
	}

	if f.ProjectID != "" {
		project := f.ProjectID
		preds = append(preds, func(e model.JournalEntry) bool { return e.ProjectID == project })
	}

	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		preds = append(preds, func(e model.JournalEntry) bool { return matchesSearch(e, q) })
	}

	if !f.From.IsZero() {
		from := dayOf(f.From)
		preds = append(preds, func(e model.JournalEntry) bool { return !dayOf(e.Date).Before(from) })
	}
	if !f.To.IsZero() {
		to := dayOf(f.To)
		preds = append(preds, func(e model.JournalEntry) bool { return !dayOf(e.Date).After(to) })
	}

	return func(e model.JournalEntry) bool {
		for _, p := range preds {
			if !p(e) {
				return false
			}
		}
		return true
	}
}

// Apply returns the entries matching f in their original order.
func Apply(entries []model.JournalEntry, f Filter) []model.JournalEntry {
	match := f.Matcher()
	out := make([]model.JournalEntry, 0, len(entries))
	for _, e := range entries {
		if match(e) {
			out = append(out, e)
		}
	}
	return out
}

func matchesSearch(e model.JournalEntry, q string) bool {
	fields := []string{e.EntryID, e.Reference, e.CounterpartyID}
	for _, l := range e.Lines {
		fields = append(fields, l.Description, l.AccountName)
	}
	for _, s := range fields {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

// dayOf truncates t to its calendar date so range bounds compare by day.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
