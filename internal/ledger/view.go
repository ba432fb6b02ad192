package ledger

import "github.com/cleared-dev/ledger/internal/model"

// Query is everything a caller selects for one render.
type Query struct {
	Filter Filter
	Sort   SortOptions
}

// View is the computed general ledger handed to a presentation layer.
type View struct {
	FilteredCount int                  `json:"filteredCount"`
	Entries       []model.JournalEntry `json:"entries"`
	Categories    []CategoryView       `json:"categories"`
	// Summary counts the whole journal, not just the filtered entries.
	Summary Summary `json:"summary"`
	// Accounts lists the accounts that have entries anywhere in the journal.
	Accounts []model.Account `json:"accounts"`
}

// Build recomputes the whole view from the current journal snapshot.
func Build(chart []model.Category, entries []model.JournalEntry, q Query) View {
	filtered := Sort(Apply(entries, q.Filter), q.Sort)
	return View{
		FilteredCount: len(filtered),
		Entries:       filtered,
		Categories:    Group(chart, filtered, GroupOptions{AccountID: q.Filter.AccountID}),
		Summary:       Summarize(entries),
		Accounts:      AccountsWithEntries(chart, entries),
	}
}
