package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/model"
)

// Side says which side of the ledger a balance falls on.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
	SideZero   Side = "zero"
)

// Totals are the debit, credit and balance for one account.
// Balance is Debit - Credit with its sign preserved.
type Totals struct {
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
	Balance decimal.Decimal `json:"balance"`
}

func zeroTotals() Totals {
	return Totals{Debit: decimal.Zero, Credit: decimal.Zero, Balance: decimal.Zero}
}

// Add returns the sum of t and o.
func (t Totals) Add(o Totals) Totals {
	return Totals{
		Debit:   t.Debit.Add(o.Debit),
		Credit:  t.Credit.Add(o.Credit),
		Balance: t.Balance.Add(o.Balance),
	}
}

// Side reports a positive balance as debit, negative as credit.
func (t Totals) Side() Side {
	switch t.Balance.Sign() {
	case 1:
		return SideDebit
	case -1:
		return SideCredit
	default:
		return SideZero
	}
}

// AbsBalance is for display only.
func (t Totals) AbsBalance() decimal.Decimal {
	return t.Balance.Abs()
}

// EntriesForAccount returns the entries with at least one line on accountID.
func EntriesForAccount(entries []model.JournalEntry, accountID string) []model.JournalEntry {
	out := make([]model.JournalEntry, 0)
	for _, e := range entries {
		if e.Touches(accountID) {
			out = append(out, e)
		}
	}
	return out
}

// TotalsForAccount sums every line posted to accountID.
func TotalsForAccount(entries []model.JournalEntry, accountID string) Totals {
	t := zeroTotals()
	for _, e := range entries {
		for _, l := range e.Lines {
			if l.AccountID != accountID {
				continue
			}
			t.Debit = t.Debit.Add(l.DebitOrZero())
			t.Credit = t.Credit.Add(l.CreditOrZero())
		}
	}
	t.Balance = t.Debit.Sub(t.Credit)
	return t
}

// Index maps account IDs to the positions of the entries touching them.
// Each entry is listed at most once per account.
type Index map[string][]int

// NewIndex scans entries once.
func NewIndex(entries []model.JournalEntry) Index {
	idx := make(Index)
	for i, e := range entries {
		for _, l := range e.Lines {
			positions := idx[l.AccountID]
			if n := len(positions); n > 0 && positions[n-1] == i {
				continue
			}
			idx[l.AccountID] = append(positions, i)
		}
	}
	return idx
}

// Entries returns the indexed entries for accountID in source order.
func (idx Index) Entries(entries []model.JournalEntry, accountID string) []model.JournalEntry {
	positions := idx[accountID]
	out := make([]model.JournalEntry, 0, len(positions))
	for _, p := range positions {
		out = append(out, entries[p])
	}
	return out
}

// Has reports whether any entry touches accountID.
func (idx Index) Has(accountID string) bool {
	return len(idx[accountID]) > 0
}

// AccountsWithEntries lists the chart accounts referenced by at least one
// entry, sorted by account ID.
func AccountsWithEntries(chart []model.Category, entries []model.JournalEntry) []model.Account {
	idx := NewIndex(entries)
	seen := make(map[string]bool)
	out := make([]model.Account, 0)
	for _, c := range chart {
		for _, a := range c.Accounts() {
			if seen[a.AccountID] || !idx.Has(a.AccountID) {
				continue
			}
			seen[a.AccountID] = true
			out = append(out, a.Account)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return out
}
