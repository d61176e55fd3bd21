package cli

import (
	"log/slog"

	"github.com/keilerkonzept/countmin/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type loader func(cmd *cobra.Command) (*config.Config, *slog.Logger, error)

// addSketchFlags registers the flags shared by run and sweep. Defaults mirror config.Default.
func addSketchFlags(fs *pflag.FlagSet) {
	def := config.Default()
	fs.Int("rows", def.Sketch.Rows, "number of hash rows")
	fs.Uint64("sketch-seed", def.Sketch.Seed, "base seed of the row hashes")
	fs.String("hash", def.Sketch.Hash, "row hash family (xxhash, metro)")
	fs.Bool("saturate", def.Sketch.Saturate, "clamp counters instead of wrapping on overflow")
	fs.Int("flows", def.Trace.Flows, "number of distinct flows")
	fs.Uint32("max-size", def.Trace.MaxSize, "largest flow size")
	fs.Float64("exponent", def.Trace.Exponent, "Zipf exponent (> 1)")
	fs.Uint64("seed", def.Trace.Seed, "trace random seed")
}

// applyFlags overrides cfg with every flag set explicitly on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "rows":
			cfg.Sketch.Rows, err = fs.GetInt(f.Name)
		case "columns":
			if f.Value.Type() == "int" { // sweep takes a list instead
				cfg.Sketch.Columns, err = fs.GetInt(f.Name)
			}
		case "sketch-seed":
			cfg.Sketch.Seed, err = fs.GetUint64(f.Name)
		case "hash":
			cfg.Sketch.Hash, err = fs.GetString(f.Name)
		case "saturate":
			cfg.Sketch.Saturate, err = fs.GetBool(f.Name)
		case "flows":
			cfg.Trace.Flows, err = fs.GetInt(f.Name)
		case "max-size":
			cfg.Trace.MaxSize, err = fs.GetUint32(f.Name)
		case "exponent":
			cfg.Trace.Exponent, err = fs.GetFloat64(f.Name)
		case "seed":
			cfg.Trace.Seed, err = fs.GetUint64(f.Name)
		case "out":
			cfg.Output.Path, err = fs.GetString(f.Name)
		case "gzip":
			cfg.Output.Gzip, err = fs.GetBool(f.Name)
		case "top":
			cfg.Output.Top, err = fs.GetInt(f.Name)
		}
	})
	if err != nil {
		return err
	}
	return cfg.Validate()
}
