package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/ledger/internal/workspace"
)

func newCrossCommand(opts *rootOptions) *cobra.Command {
	var (
		undo  bool
		actor string
	)

	cmd := &cobra.Command{
		Use:   "cross <entry-id>",
		Short: "Mark an entry as reconciled",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := opts.open()
			if err != nil {
				return err
			}
			logger, err := newLogger(ws)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if actor == "" {
				actor = os.Getenv("USER")
			}
			e, event, err := ws.Cross(args[0], !undo, actor, "cli")
			switch {
			case errors.Is(err, workspace.ErrCommit):
				logger.Warn("toggle saved but not committed", zap.Error(err))
			case err != nil:
				return err
			}
			logger.Debug("entry crossed",
				zap.String("entry_id", e.EntryID),
				zap.Bool("crossed", e.IsCrossed),
				zap.Stringer("event_id", event.EventID),
			)

			state := "crossed"
			if !e.IsCrossed {
				state = "uncrossed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", e.EntryID, state)
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "clear the reconciliation mark")
	cmd.Flags().StringVar(&actor, "actor", "", "who reconciled the entry (default $USER)")
	return cmd
}
