package cli

import (
	"fmt"
	"io"

	"github.com/keilerkonzept/countmin/internal/bench"
	"github.com/keilerkonzept/countmin/internal/config"
	"github.com/keilerkonzept/countmin/internal/ui"
	"github.com/spf13/cobra"
)

// NewRunCommand creates the 'run' subcommand.
func NewRunCommand(load loader) *cobra.Command {
	def := config.Default()
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate one sketch configuration and export its error distribution.",
		Long: `Generates a Zipf trace, inserts it into a Count-Min sketch, queries every flow,
and writes the sorted relative errors as a JSON array to --out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load(cmd)
			if err != nil {
				return err
			}
			res, err := bench.Run(cmd.Context(), cfg, logger)
			if err != nil {
				return fmt.Errorf("benchmark failed: %w", err)
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	fs := cmd.Flags()
	addSketchFlags(fs)
	fs.Int("columns", def.Sketch.Columns, "requested counters per row (rounded up to a prime)")
	fs.StringP("out", "o", def.Output.Path, "output path of the JSON error distribution (empty to skip)")
	fs.Bool("gzip", def.Output.Gzip, "gzip the output file")
	fs.Int("top", def.Output.Top, "number of largest estimated flows to print")
	return cmd
}

func printResult(w io.Writer, res *bench.Result) {
	fmt.Fprintln(w, ui.HeaderColor(fmt.Sprintf("Count-Min sketch %dx%d (%d bytes)", res.Rows, res.Columns, res.SizeBytes)))
	fmt.Fprintln(w, ui.DetailColor(fmt.Sprintf("%d flows, %d total, %d estimated exactly, %s", res.Flows, res.Total, res.Exact, res.Elapsed)))

	s := res.Summary
	ui.Table(w, []string{"Min", "Median", "P90", "P99", "Mean", "Max"}, [][]string{{
		ui.Float(s.Min), ui.Float(s.Median), ui.Float(s.P90), ui.Float(s.P99), ui.Float(s.Mean), ui.Float(s.Max),
	}})

	if res.Errors.NonNegative() {
		fmt.Fprintln(w, ui.SuccessColor("No flow was under-estimated."))
	} else {
		fmt.Fprintln(w, ui.ErrorColor("Some flows were under-estimated: a counter overflowed."))
	}

	if len(res.Top) > 0 {
		fmt.Fprintln(w, ui.HeaderColor("Largest estimated flows:"))
		rows := make([][]string, 0, len(res.Top))
		for _, f := range res.Top {
			rows = append(rows, []string{ui.Int(f.Key), ui.Int(f.Estimate), ui.Int(f.Truth)})
		}
		ui.Table(w, []string{"Flow", "Estimate", "True"}, rows)
	}

	if res.Output != "" {
		fmt.Fprintln(w, ui.InfoColor("Error distribution written to "+res.Output))
	}
}
