package cli

import (
	"fmt"
	"io"

	"github.com/keilerkonzept/countmin/internal/bench"
	"github.com/keilerkonzept/countmin/internal/ui"
	"github.com/spf13/cobra"
)

var defaultSweepColumns = []int{1000, 2500, 5000, 10000, 25000, 50000, 100000}

// NewSweepCommand creates the 'sweep' subcommand.
func NewSweepCommand(load loader) *cobra.Command {
	var columns []int
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compare the error distribution across several column counts.",
		Long: `Evaluates one sketch per --columns value on the same trace, in parallel,
and prints the error summary of each.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load(cmd)
			if err != nil {
				return err
			}
			points, err := bench.Sweep(cmd.Context(), cfg, columns, logger)
			if err != nil {
				return fmt.Errorf("sweep failed: %w", err)
			}
			printSweep(cmd.OutOrStdout(), cfg.Sketch.Rows, points)
			return nil
		},
	}

	addSketchFlags(cmd.Flags())
	cmd.Flags().IntSliceVar(&columns, "columns", defaultSweepColumns, "requested column counts to compare")
	return cmd
}

func printSweep(w io.Writer, rows int, points []bench.SweepPoint) {
	fmt.Fprintln(w, ui.HeaderColor(fmt.Sprintf("Relative error by column count (%d rows):", rows)))
	table := make([][]string, 0, len(points))
	for _, p := range points {
		table = append(table, []string{
			ui.Int(p.RequestedColumns),
			ui.Int(p.Columns),
			ui.Int(p.SizeBytes),
			ui.Float(p.Summary.Median),
			ui.Float(p.Summary.P99),
			ui.Float(p.Summary.Mean),
		})
	}
	ui.Table(w, []string{"Requested", "Columns", "Bytes", "Median", "P99", "Mean"}, table)
}
