package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ownlists/internal/journal"
	"github.com/mesh-intelligence/ownlists/internal/script"
	"github.com/mesh-intelligence/ownlists/pkg/types"
)

// errStepsFailed is returned when a run completes with failed steps.
var errStepsFailed = errors.New("steps failed")

type runFlags struct {
	variant   string
	noJournal bool
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run [--variant name] op...",
		Short: "Run a push/pop script against one list variant",
		Long: `Run a script of operations against a fresh list and print one line per step.

Operations: push <int> (or push=<int>), pop, peek, len, empty.
Variants:   value, borrowed, cell, owned (default from config).

The value variant holds at most one element; a second push fails with a
depth error, because its depth is fixed when the program is compiled.`,
		Example: "  ownlists run push 1 push 2 push 3 peek len pop pop pop pop\n" +
			"  ownlists run --variant value push 1 push 2",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScript(cmd, f, args)
		},
	}
	cmd.Flags().StringVar(&f.variant, "variant", "", "list variant (value, borrowed, cell, owned)")
	cmd.Flags().BoolVar(&f.noJournal, "no-journal", false, "do not record the run")
	return cmd
}

func (a *app) runScript(cmd *cobra.Command, f runFlags, args []string) error {
	variant := f.variant
	if variant == "" {
		variant = a.config.Variant
	}
	if err := types.ValidateVariant(variant); err != nil {
		return userError(fmt.Errorf("variant %q: %w", variant, err))
	}

	ops, err := script.Parse(args)
	if err != nil {
		return userError(err)
	}
	driver, err := script.NewDriver(variant)
	if err != nil {
		return userError(err)
	}

	run := types.Run{
		Variant:   variant,
		Script:    script.Format(ops),
		CreatedAt: time.Now(),
		Steps:     script.Run(driver, ops, a.logger.With("variant", variant)),
	}

	if a.config.Journal && !f.noJournal {
		id, err := a.record(run)
		if err != nil {
			return sysError(err)
		}
		run.RunID = id
	}

	if a.flags.jsonMode {
		if err := writeJSON(cmd.OutOrStdout(), run); err != nil {
			return sysError(err)
		}
	} else {
		printRun(cmd.OutOrStdout(), run)
	}

	if n := run.Failures(); n > 0 {
		return userError(fmt.Errorf("%d of %d %w", n, len(run.Steps), errStepsFailed))
	}
	return nil
}

// record stores run in the journal and returns its ID.
func (a *app) record(run types.Run) (string, error) {
	dataDir, err := a.dataDir()
	if err != nil {
		return "", fmt.Errorf("resolve data dir: %w", err)
	}
	store, err := journal.Open(dataDir)
	if err != nil {
		return "", err
	}
	defer store.Close()

	id, err := store.Record(run)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	a.logger.Debug("run recorded", "run_id", id, "journal", store.Path())
	return id, nil
}
