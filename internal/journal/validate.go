package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/id"
	"github.com/cleared-dev/ledger/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	EntryID     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.EntryID, e.Description)
}

// AccountChecker tests whether an account ID exists in the chart of accounts.
type AccountChecker interface {
	Exists(id string) bool
}

// ValidateEntries enforces 8 invariants on a journal at ingestion. A nil
// checker skips the account-reference check.
func ValidateEntries(entries []model.JournalEntry, accounts AccountChecker) []ValidationError {
	var errs []ValidationError
	add := func(inv int, entryID, format string, args ...any) {
		errs = append(errs, ValidationError{Invariant: inv, EntryID: entryID, Description: fmt.Sprintf(format, args...)})
	}

	hundred := decimal.NewFromInt(100)
	seen := make(map[string]bool, len(entries))

	for _, e := range entries {
		// Invariant 7: Entry has lines and a known type.
		if len(e.Lines) == 0 {
			add(7, e.EntryID, "entry has no lines")
		}
		if !e.EntryType.Valid() {
			add(7, e.EntryID, "unknown entry type %q", e.EntryType)
		}

		// Invariant 5: Unique, well-formed voucher numbers.
		if seen[e.EntryID] {
			add(5, e.EntryID, "duplicate entry ID")
		}
		seen[e.EntryID] = true
		if year, _, err := id.ParseEntryID(e.EntryID); err != nil {
			add(5, e.EntryID, "invalid entry ID: %v", err)
		} else if year != e.Date.Year() {
			add(5, e.EntryID, "entry ID year %d does not match date %s", year, e.Date.Format(dateFormat))
		}

		// Invariant 1: Debits equal credits.
		if totals := e.Totals(); !totals.Balanced() {
			add(1, e.EntryID, "debits (%s) != credits (%s)", totals.Debit.StringFixed(2), totals.Credit.StringFixed(2))
		}

		for _, l := range e.Lines {
			ref := e.EntryID + "/" + l.LineID

			// Invariant 2: Exactly one of debit/credit per line.
			if l.IsDebit() == l.IsCredit() {
				add(2, ref, "line must have exactly one of debit or credit")
				continue
			}

			// Invariant 3: Amount mirrors the posted side and is positive.
			side := l.DebitOrZero()
			if l.IsCredit() {
				side = l.CreditOrZero()
			}
			if !side.IsPositive() {
				add(3, ref, "posted amount %s must be positive", side.StringFixed(2))
			}
			if !l.Amount.Equal(side) {
				add(3, ref, "amount %s does not match posted %s", l.Amount.StringFixed(2), side.StringFixed(2))
			}

			// Invariant 4: Valid account references.
			if accounts != nil && !accounts.Exists(l.AccountID) {
				add(4, ref, "unknown account %s", l.AccountID)
			}

			// Invariant 6: No more than 2 decimal places.
			if !side.Mul(hundred).Equal(side.Mul(hundred).Floor()) {
				add(6, ref, "amount %s has more than 2 decimal places", side)
			}

			// Invariant 8: MVA code, when set, is in the code table.
			if l.VATCode != "" && !l.VATCode.Known() {
				add(8, ref, "unknown VAT code %q", l.VATCode)
			}
		}
	}

	return errs
}
