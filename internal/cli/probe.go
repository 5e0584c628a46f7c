package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ownlists/pkg/valuelist"
)

func newProbeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Print the memory footprint of value-embedded lists",
		Long: "Compare the size of fixed-depth value-embedded lists with arrays of the same\n" +
			"capacity and with a single pointer.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			probes := valuelist.Probes()
			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), probes)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "REPRESENTATION\tCAPACITY\tBYTES\t")
			for _, p := range probes {
				fmt.Fprintf(tw, "%s\t%d\t%d\t\n", p.Name, p.Capacity, p.Bytes)
			}
			return tw.Flush()
		},
	}
}
