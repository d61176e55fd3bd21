package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/keilerkonzept/countmin/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCommand returns the cms-bench command tree.
func NewRootCommand(version string) *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	rootCmd := &cobra.Command{
		Use:   "cms-bench",
		Short: "cms-bench measures Count-Min sketch accuracy on synthetic Zipf traces.",
		Long: `cms-bench inserts a synthetic trace of Zipf-distributed flow sizes into a
Count-Min sketch, queries every flow, and reports the relative error distribution.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	load := func(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
		logger, err := newLogger(cmd.ErrOrStderr(), logLevel)
		if err != nil {
			return nil, nil, err
		}
		cfg := config.Default()
		if configPath != "" {
			if cfg, err = config.LoadConfig(configPath); err != nil {
				return nil, nil, err
			}
			logger.Debug("loaded config", "path", configPath)
		}
		if err := applyFlags(cmd, cfg); err != nil {
			return nil, nil, err
		}
		return cfg, logger, nil
	}

	rootCmd.AddCommand(NewRunCommand(load))
	rootCmd.AddCommand(NewSweepCommand(load))

	return rootCmd
}

// Execute runs the command tree and reports a failure on stderr.
func Execute(version string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCommand(version).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
