package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/configuron/internal/logging"
)

// rootOptions holds the persistent flag values and the logger built from them.
type rootOptions struct {
	logLevel  string
	logFormat string
	logger    *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "configuron",
		Short:        "Inspect the configuration lifecycle of a configurable module",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(opts.logLevel, opts.logFormat)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "console", "log format (json, console)")

	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newLifecycleCmd(opts))
	return cmd
}
