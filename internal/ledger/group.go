package ledger

import (
	"github.com/cleared-dev/ledger/internal/model"
)

// GroupOptions narrows grouping to a single selected account.
type GroupOptions struct {
	AccountID string
}

// AccountView is one account row inside a category.
type AccountView struct {
	Account         model.Account        `json:"account"`
	SubcategoryID   string               `json:"subcategoryId"`
	SubcategoryName string               `json:"subcategoryName"`
	Entries         []model.JournalEntry `json:"entries"`
	Totals          Totals               `json:"totals"`
}

// HasEntries reports whether any entry touches the account.
func (a AccountView) HasEntries() bool { return len(a.Entries) > 0 }

// CategoryView is one chart category with its accounts and entry count.
type CategoryView struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	AccountRange string              `json:"accountRange"`
	Color        model.CategoryColor `json:"color"`
	// EntryCount counts distinct entries touching the category, so an entry
	// with several lines in the category is counted once.
	EntryCount int `json:"entryCount"`
	// Accounts holds every visible account, with or without entries.
	Accounts []AccountView `json:"accounts"`
	Totals   Totals        `json:"totals"`
}

// WithEntries returns only the accounts that have entries.
func (c CategoryView) WithEntries() []AccountView {
	out := make([]AccountView, 0, len(c.Accounts))
	for _, a := range c.Accounts {
		if a.HasEntries() {
			out = append(out, a)
		}
	}
	return out
}

// Group partitions entries into the chart's categories. Categories keep
// chart order and accounts keep declared order. A category is left out when
// a selected account is not one of its members, or when none of its visible
// accounts has entries.
func Group(chart []model.Category, entries []model.JournalEntry, opts GroupOptions) []CategoryView {
	idx := NewIndex(entries)
	out := make([]CategoryView, 0, len(chart))

	for _, c := range chart {
		ids := c.AccountIDs()
		if opts.AccountID != "" {
			if _, ok := ids[opts.AccountID]; !ok {
				continue
			}
		}

		view := CategoryView{
			ID:           c.ID,
			Name:         c.Name,
			Description:  c.Description,
			AccountRange: c.AccountRange,
			Color:        c.Color.OrDefault(),
			Totals:       zeroTotals(),
		}

		withEntries := 0
		for _, member := range c.Accounts() {
			if opts.AccountID != "" && member.AccountID != opts.AccountID {
				continue
			}
			acctEntries := idx.Entries(entries, member.AccountID)
			av := AccountView{
				Account:         member.Account,
				SubcategoryID:   member.SubcategoryID,
				SubcategoryName: member.SubcategoryName,
				Entries:         acctEntries,
				Totals:          TotalsForAccount(acctEntries, member.AccountID),
			}
			if av.HasEntries() {
				withEntries++
			}
			view.Totals = view.Totals.Add(av.Totals)
			view.Accounts = append(view.Accounts, av)
		}
		if withEntries == 0 {
			continue
		}

		view.EntryCount = countTouching(entries, ids)
		out = append(out, view)
	}
	return out
}

// CategoryEntries returns the distinct entries touching any account of c.
func CategoryEntries(c model.Category, entries []model.JournalEntry) []model.JournalEntry {
	ids := c.AccountIDs()
	out := make([]model.JournalEntry, 0)
	for _, e := range entries {
		if e.TouchesAny(ids) {
			out = append(out, e)
		}
	}
	return out
}

func countTouching(entries []model.JournalEntry, ids map[string]struct{}) int {
	n := 0
	for _, e := range entries {
		if e.TouchesAny(ids) {
			n++
		}
	}
	return n
}
