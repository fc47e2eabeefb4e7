package main

import (
	"github.com/spf13/cobra"

	"github.com/toyz/roast/internal/cli"
)

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print the discovered types and methods as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			logger := a.logger()
			defer func() { _ = logger.Sync() }()

			reg, err := cli.NewGenerator(cfg, a.diagnostics(cmd), logger).Inspect()
			if err != nil {
				return err
			}

			out, err := reg.Snapshot().YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
