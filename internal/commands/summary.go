package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledger/internal/ledger"
)

func newSummaryCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show entry counters for the whole journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := opts.open()
			if err != nil {
				return err
			}
			s := ledger.Summarize(ws.Journal.Snapshot())
			fmt.Fprintf(cmd.OutOrStdout(), "Entries: %d\nCrossed: %d\nOpen:    %d\n", s.Total, s.Crossed, s.Open)
			return nil
		},
	}
}

func newAccountsCommand(opts *rootOptions) *cobra.Command {
	var withEntries bool

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the chart of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := opts.open()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			if withEntries {
				for _, a := range ledger.AccountsWithEntries(ws.Chart.Categories(), ws.Journal.Snapshot()) {
					fmt.Fprintf(tw, "%s\t%s\n", a.AccountID, a.Name)
				}
				return tw.Flush()
			}
			for _, c := range ws.Chart.Categories() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", c.AccountRange, c.Name, c.Color.OrDefault())
				for _, a := range c.Accounts() {
					fmt.Fprintf(tw, "  %s\t%s\t%s\n", a.AccountID, a.Name, a.SubcategoryName)
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&withEntries, "with-entries", false, "only accounts that have entries")
	return cmd
}
