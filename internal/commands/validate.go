package commands

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledger/internal/accounts"
	"github.com/cleared-dev/ledger/internal/config"
	"github.com/cleared-dev/ledger/internal/crosslog"
	"github.com/cleared-dev/ledger/internal/id"
	"github.com/cleared-dev/ledger/internal/journal"
	"github.com/cleared-dev/ledger/internal/model"
	"github.com/cleared-dev/ledger/internal/workspace"
)

func newValidateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the chart of accounts, journal and crossing log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadRepo(opts.repo)
			if err != nil {
				return err
			}
			// Open would refuse an invalid journal, so read the files directly.
			ws := &workspace.Workspace{Root: opts.repo, Config: cfg}

			chart, err := accounts.LoadFile(ws.Path(cfg.Paths.Chart))
			if err != nil {
				return err
			}
			entries, err := readJournal(ws.Path(cfg.Paths.Journal))
			if err != nil {
				return err
			}
			events, err := crosslog.ReadFile(ws.Path(cfg.Paths.Reconciliation))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			problems := 0
			for _, ve := range journal.ValidateEntries(entries, chart) {
				fmt.Fprintln(out, ve.Error())
				problems++
			}
			problems += checkCrossingLog(out, entries, events)
			if problems > 0 {
				return fmt.Errorf("%w: %d problems", journal.ErrInvalidJournal, problems)
			}

			fmt.Fprintf(out, "OK: %d entries, %d accounts, %d crossing events\n", len(entries), len(chart.All()), len(events))
			if year, ok := latestYear(entries); ok {
				ids := make([]string, len(entries))
				for i, e := range entries {
					ids[i] = e.EntryID
				}
				fmt.Fprintf(out, "Next voucher: %s\n", id.NextEntryID(ids, year))
			}
			return nil
		},
	}
}

func readJournal(path string) ([]model.JournalEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()
	entries, err := journal.ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal: %w", err)
	}
	return entries, nil
}

// checkCrossingLog reports entries whose flag differs from the last toggle
// recorded for them, and log events for entries missing from the journal.
// Entries never toggled are not checked.
func checkCrossingLog(out io.Writer, entries []model.JournalEntry, events []crosslog.Event) int {
	latest := crosslog.Latest(events)
	problems := 0
	for _, e := range entries {
		want, logged := latest[e.EntryID]
		delete(latest, e.EntryID)
		if logged && want != e.IsCrossed {
			fmt.Fprintf(out, "crossing log [%s]: journal has crossed=%t, last toggle was crossed=%t\n", e.EntryID, e.IsCrossed, want)
			problems++
		}
	}
	orphans := make([]string, 0, len(latest))
	for entryID := range latest {
		orphans = append(orphans, entryID)
	}
	sort.Strings(orphans)
	for _, entryID := range orphans {
		fmt.Fprintf(out, "crossing log [%s]: entry not in journal\n", entryID)
		problems++
	}
	return problems
}

func latestYear(entries []model.JournalEntry) (int, bool) {
	year := 0
	for _, e := range entries {
		if y := e.Date.Year(); y > year {
			year = y
		}
	}
	return year, year > 0
}
