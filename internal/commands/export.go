package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledger/internal/export"
	"github.com/cleared-dev/ledger/internal/ledger"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	var (
		flags  queryFlags
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the general ledger as XLSX or PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			ws, err := opts.open()
			if err != nil {
				return err
			}
			q, err := flags.query(ws.Config.View.DefaultYear)
			if err != nil {
				return err
			}

			report := export.Report{
				Business:    ws.Config.Business.Name,
				Period:      q.Filter.Period,
				GeneratedAt: time.Now(),
				View:        ledger.Build(ws.Chart.Categories(), ws.Journal.Snapshot(), q),
			}
			if output == "" {
				output = filepath.Join(ws.Root, "exports", fmt.Sprintf("ledger-%s.%s", report.PeriodLabel(), f))
			}
			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				return fmt.Errorf("creating export dir: %w", err)
			}

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			defer file.Close()
			if err := export.Write(file, f, report); err != nil {
				return err
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&format, "format", "xlsx", "xlsx or pdf")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default exports/ledger-<period>.<format>)")
	return cmd
}
