package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/mesh-intelligence/ownlists/pkg/types"
)

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printRun writes one line per step, then the run ID when the run was
// recorded.
func printRun(w io.Writer, run types.Run) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "variant: %s\n", run.Variant)
	for _, s := range run.Steps {
		op := types.Op{Name: s.Op, Arg: s.Arg}.String()
		switch {
		case s.Failed():
			fmt.Fprintf(tw, "%d\t%s\terror: %s\n", s.Seq, op, s.Error)
		case s.Result != "":
			fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Seq, op, s.Result)
		default:
			fmt.Fprintf(tw, "%d\t%s\t\n", s.Seq, op)
		}
	}
	tw.Flush()
	if run.RunID != "" {
		fmt.Fprintf(w, "run: %s\n", run.RunID)
	}
}

// printRuns writes a one-line summary per run.
func printRuns(w io.Writer, runs []types.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "no runs recorded")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tVARIANT\tCREATED\tSCRIPT")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.RunID, r.Variant, r.CreatedAt.Local().Format(time.DateTime), r.Script)
	}
	tw.Flush()
}
