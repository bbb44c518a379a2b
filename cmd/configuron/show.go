package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/configuron/internal/overrides"
	"github.com/lixenwraith/configuron/internal/render"
	"github.com/lixenwraith/configuron/internal/sample"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	var (
		format string
		sets   []string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the sample module's configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			values, err := overrides.Parse(sets)
			if err != nil {
				return err
			}

			if err := sample.Attach(opts.logger); err != nil {
				return fmt.Errorf("attach sample module: %w", err)
			}

			if len(values) > 0 {
				var applyErr error
				if err := sample.Module.Configure(overrides.Mutator[sample.Config](values, &applyErr)); err != nil {
					return err
				}
				if applyErr != nil {
					return applyErr
				}
			}

			cfg, err := sample.Module.Configuration()
			if err != nil {
				return err
			}
			return render.Write(cmd.OutOrStdout(), cfg, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(render.FormatTOML), "output format (toml, yaml, json, flat)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "override a setting as key.path=value (repeatable)")
	return cmd
}
