package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/configuron/internal/sample"
)

func newLifecycleCmd(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "lifecycle",
		Short: "Walk the sample module through configure, reset and reconstruction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sample.Attach(opts.logger); err != nil {
				return fmt.Errorf("attach sample module: %w", err)
			}
			return runLifecycle(cmd.OutOrStdout(), opts.logger, port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 9090, "port to set through configure")
	return cmd
}

// runLifecycle prints what the module returns at each step.
func runLifecycle(w io.Writer, logger *zap.Logger, port int) error {
	first, err := sample.Module.Configuration()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "initial:     port=%d\n", first.Port)

	if err := sample.Module.Configure(func(cfg *sample.Config) {
		cfg.Port = port
	}); err != nil {
		return err
	}
	logger.Info("configured", zap.String("module", sample.Module.Name()), zap.Int("port", port))

	configured, err := sample.Module.Configuration()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "configured:  port=%d same=%t\n", configured.Port, configured == first)

	sample.Module.Reset()
	logger.Info("reset", zap.String("module", sample.Module.Name()))

	fresh, err := sample.Module.Configuration()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "after reset: port=%d same=%t\n", fresh.Port, fresh == first)
	return nil
}
