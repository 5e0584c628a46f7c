package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ownlists/internal/journal"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the config file and the run journal",
		Long:  "Create the configuration directory with a default config.yaml, then create the journal database in the data directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	if err := os.MkdirAll(a.configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	cfg := a.config
	if a.flags.dataDir != "" {
		cfg.DataDir = a.flags.dataDir
	}
	written, err := writeConfigIfMissing(a.configDir, cfg)
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}
	if written {
		a.logger.Info("config written", "dir", a.configDir)
	}

	dataDir, err := a.dataDir()
	if err != nil {
		return sysError(fmt.Errorf("resolve data dir: %w", err))
	}
	store, err := journal.Open(dataDir)
	if err != nil {
		return sysError(fmt.Errorf("initialize journal: %w", err))
	}
	if err := store.Close(); err != nil {
		return sysError(fmt.Errorf("finalize journal: %w", err))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "ownlists initialized")
	fmt.Fprintf(cmd.OutOrStdout(), "config:  %s\njournal: %s\n", a.configDir, store.Path())
	return nil
}
