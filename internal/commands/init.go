package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledger/internal/gitops"
	"github.com/cleared-dev/ledger/internal/workspace"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a ledger repository with the demo journal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			ws, err := workspace.Init(root, name)
			if err != nil {
				return err
			}

			versioned := "not versioned, git not found"
			if gitops.IsRepo(ws.Root) {
				versioned = "git repository"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized ledger at %s (%d entries, %d accounts, %s)\n",
				ws.Root, len(ws.Journal.Snapshot()), len(ws.Chart.All()), versioned)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
