package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/toyz/roast/internal/cli"
)

func (a *app) cleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove generated glue, Java classes and the build record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			diagnostics := a.diagnostics(cmd)
			removed, err := cli.NewCleaner(cfg, a.logger()).CleanGeneratedFiles()
			if len(removed) > 0 {
				diagnostics.Category("Removed")
				diagnostics.Indent()
			}
			for _, path := range removed {
				if rel, relErr := filepath.Rel(cfg.Project.Root, path); relErr == nil {
					path = rel
				}
				diagnostics.List("%s", path)
			}
			diagnostics.Unindent()
			if err != nil {
				return err
			}

			diagnostics.Success("Removed %d generated files", len(removed))
			return nil
		},
	}
}
