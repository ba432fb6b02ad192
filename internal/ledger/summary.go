package ledger

import "github.com/cleared-dev/ledger/internal/model"

// Summary holds the status-line counters.
type Summary struct {
	Total   int `json:"total"`
	Crossed int `json:"crossed"`
	Open    int `json:"open"`
}

// Summarize counts entries, crossed entries and open entries.
func Summarize(entries []model.JournalEntry) Summary {
	s := Summary{Total: len(entries)}
	for _, e := range entries {
		if e.IsCrossed {
			s.Crossed++
		}
		if e.IsOpen {
			s.Open++
		}
	}
	return s
}
