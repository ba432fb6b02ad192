package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/ledger/internal/buildinfo"
	"github.com/cleared-dev/ledger/internal/obs"
	"github.com/cleared-dev/ledger/internal/workspace"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	repo     string
	logLevel string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "ledger",
		Short:   "General ledger view over a journal and chart of accounts",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.repo, "repo", ".", "repository directory")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides ledger.yaml)")

	rootCmd.AddCommand(
		newInitCommand(),
		newViewCommand(opts),
		newSummaryCommand(opts),
		newAccountsCommand(opts),
		newCrossCommand(opts),
		newValidateCommand(opts),
		newExportCommand(opts),
		newServeCommand(opts),
	)

	return rootCmd
}

func (o *rootOptions) open() (*workspace.Workspace, error) {
	ws, err := workspace.Open(o.repo)
	if err != nil {
		return nil, fmt.Errorf("opening repository: %w", err)
	}
	if o.logLevel != "" {
		ws.Config.Log.Level = o.logLevel
	}
	return ws, nil
}

func newLogger(ws *workspace.Workspace) (*zap.Logger, error) {
	return obs.NewLogger(ws.Config.Log.Level, ws.Config.Log.Format)
}
