package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledger/internal/ledger"
	"github.com/cleared-dev/ledger/internal/model"
)

// queryFlags are the filter and sort flags shared by view and export.
type queryFlags struct {
	year      int
	month     int
	entryType string
	accountID string
	crossing  string
	projectID string
	search    string
	from      string
	to        string
	sort      string
	dir       string
}

func (f *queryFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.year, "year", 0, "fiscal year (0 = config default, -1 = all years)")
	fs.IntVar(&f.month, "month", 0, "month 1-12 (0 = whole year)")
	fs.StringVar(&f.entryType, "type", "", "entry type")
	fs.StringVar(&f.accountID, "account", "", "account id")
	fs.StringVar(&f.crossing, "crossing", "", "reconciliation mode: all, open or crossed")
	fs.StringVar(&f.projectID, "project", "", "project id")
	fs.StringVar(&f.search, "search", "", "free-text search")
	fs.StringVar(&f.from, "from", "", "first date, YYYY-MM-DD")
	fs.StringVar(&f.to, "to", "", "last date, YYYY-MM-DD")
	fs.StringVar(&f.sort, "sort", "", "sort field: date, entryId, amount, accountId, entryType")
	fs.StringVar(&f.dir, "dir", "", "sort direction: asc or desc")
}

func (f *queryFlags) query(defaultYear int) (ledger.Query, error) {
	var q ledger.Query
	switch {
	case f.year == 0:
		q.Filter.Period.Year = defaultYear
	case f.year > 0:
		q.Filter.Period.Year = f.year
	}
	q.Filter.Period.Month = f.month
	if f.entryType != "" {
		q.Filter.EntryType, _ = model.ParseEntryType(f.entryType)
	}
	q.Filter.AccountID = f.accountID
	q.Filter.ProjectID = f.projectID
	q.Filter.Search = f.search

	if f.crossing != "" {
		mode, err := ledger.ParseCrossingMode(f.crossing)
		if err != nil {
			return q, err
		}
		q.Filter.CrossingEnabled = true
		q.Filter.CrossingMode = mode
	}

	var err error
	if q.Filter.From, err = parseFlagDate("from", f.from); err != nil {
		return q, err
	}
	if q.Filter.To, err = parseFlagDate("to", f.to); err != nil {
		return q, err
	}

	q.Sort, err = ledger.ParseSortOptions(f.sort, f.dir)
	return q, err
}

func parseFlagDate(name, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q: %w", name, s, err)
	}
	return t, nil
}

func newViewCommand(opts *rootOptions) *cobra.Command {
	var (
		flags     queryFlags
		showEmpty bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show the general ledger grouped by category and account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := opts.open()
			if err != nil {
				return err
			}
			q, err := flags.query(ws.Config.View.DefaultYear)
			if err != nil {
				return err
			}
			v := ledger.Build(ws.Chart.Categories(), ws.Journal.Snapshot(), q)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(v)
			}
			return printView(cmd.OutOrStdout(), v, showEmpty || ws.Config.View.ShowEmpty)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&showEmpty, "show-empty", false, "list accounts without entries")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the view as JSON")

	return cmd
}

func printView(out io.Writer, v ledger.View, showEmpty bool) error {
	if len(v.Categories) == 0 {
		fmt.Fprintln(out, "No entries match the filter.")
		return printSummary(out, v)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, c := range v.Categories {
		fmt.Fprintf(out, "%s (%s) - %d entries\n", c.Name, c.AccountRange, c.EntryCount)
		fmt.Fprintln(tw, "Account\tName\tDebit\tCredit\tBalance\t")
		accounts := c.WithEntries()
		if showEmpty {
			accounts = c.Accounts
		}
		for _, a := range accounts {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n", a.Account.AccountID, a.Account.Name,
				a.Totals.Debit.StringFixed(2), a.Totals.Credit.StringFixed(2), a.Totals.Balance.StringFixed(2))
			for _, e := range a.Entries {
				fmt.Fprintf(tw, "\t  %s %s %s%s\t\t\t\t\n", e.EntryID, e.Date.Format("2006-01-02"), e.EntryType, crossedSuffix(e))
			}
		}
		fmt.Fprintf(tw, "\tTotal\t%s\t%s\t%s\t\n",
			c.Totals.Debit.StringFixed(2), c.Totals.Credit.StringFixed(2), c.Totals.Balance.StringFixed(2))
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	return printSummary(out, v)
}

func crossedSuffix(e model.JournalEntry) string {
	switch {
	case e.IsCrossed:
		return " [crossed]"
	case e.IsOpen:
		return " [open]"
	default:
		return ""
	}
}

func printSummary(out io.Writer, v ledger.View) error {
	_, err := fmt.Fprintf(out, "%d of %d entries shown, %d crossed, %d open\n",
		v.FilteredCount, v.Summary.Total, v.Summary.Crossed, v.Summary.Open)
	return err
}
