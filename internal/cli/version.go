package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ownlists/pkg/ownlists"
)

const modulePath = "github.com/mesh-intelligence/ownlists"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ownlists version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "ownlists v%s\nmodule: %s\n", ownlists.Version, modulePath)
			return nil
		},
	}
}
