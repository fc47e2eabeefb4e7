package main

import (
	"github.com/spf13/cobra"

	"github.com/toyz/roast/internal/build"
	"github.com/toyz/roast/internal/config"
	"github.com/toyz/roast/internal/errors"
)

func (a *app) buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the native library and copy it into the Java project",
		Long: `Run cargo build, then copy the shared library from bin_source to bin_target
and the generated Java sources from java_source to java_target.

The locations come from the build record written by 'roast generate'.
Extra cargo arguments are read from [build] cargo_args in roast.toml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			record, err := config.LoadBuildRecord(cfg.BuildRecordPath())
			if err != nil {
				return err
			}

			cargoArgs, err := cfg.CargoArgs()
			if err != nil {
				return errors.WrapConfigurationError(cfg.Source(), "parse build.cargo_args", err)
			}

			diagnostics := a.diagnostics(cmd)
			logger := a.logger()
			defer func() { _ = logger.Sync() }()

			diagnostics.RoastHeader("Building " + record.Name)
			diagnostics.PhaseProgress("cargo build (this may take a while)")

			builder := build.NewBuilder(build.Options{
				Record:    *record,
				CargoArgs: cargoArgs,
				Logger:    logger.Named("build"),
			})
			result, err := builder.Run(cmd.Context())
			if err != nil {
				return err
			}

			diagnostics.PhaseHeader("Artifacts")
			diagnostics.PhaseItem("Copied " + result.Library)
			diagnostics.PhaseItem("Copied Java sources into " + record.JavaTarget)
			for _, file := range result.JavaFiles {
				diagnostics.Verbose("%s", file)
			}

			diagnostics.Success("Build complete! Enjoy your roast!")
			return nil
		},
	}
}
