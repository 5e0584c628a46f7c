package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ownlists/internal/journal"
	"github.com/mesh-intelligence/ownlists/pkg/types"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List recorded runs, or show the steps of one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openJournal()
			if err != nil {
				return err
			}
			defer store.Close()

			if len(args) == 1 {
				run, err := store.Get(args[0])
				if errors.Is(err, types.ErrRunNotFound) || errors.Is(err, types.ErrInvalidID) {
					return userError(fmt.Errorf("run %q: %w", args[0], err))
				}
				if err != nil {
					return sysError(err)
				}
				if a.flags.jsonMode {
					return writeJSON(cmd.OutOrStdout(), run)
				}
				printRun(cmd.OutOrStdout(), run)
				return nil
			}

			runs, err := store.Runs(limit)
			if err != nil {
				return sysError(err)
			}
			if a.flags.jsonMode {
				if runs == nil {
					runs = []types.Run{}
				}
				return writeJSON(cmd.OutOrStdout(), runs)
			}
			printRuns(cmd.OutOrStdout(), runs)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum runs to list (0 for all)")
	return cmd
}

// openJournal opens the journal in the resolved data directory.
func (a *app) openJournal() (*journal.Store, error) {
	dataDir, err := a.dataDir()
	if err != nil {
		return nil, sysError(fmt.Errorf("resolve data dir: %w", err))
	}
	store, err := journal.Open(dataDir)
	if err != nil {
		return nil, sysError(err)
	}
	return store, nil
}
