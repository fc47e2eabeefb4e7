package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/toyz/roast/internal/cli"
	"github.com/toyz/roast/internal/utils"
)

func (a *app) generateCmd() *cobra.Command {
	var (
		entities []string
		watch    bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate JNI glue and Java classes",
		Long: `Discover the public methods of the selected types and write one Rust glue
file and one Java class per type. Nothing is written unless every type binds.

Without --entity, the entities listed in roast.toml are bound, or else every
struct deriving the export marker.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			diagnostics := a.diagnostics(cmd)
			logger := a.logger()
			defer func() { _ = logger.Sync() }()

			generator := cli.NewGenerator(cfg, diagnostics, logger)
			opts := cli.Config{Entities: entities, Verbose: a.verbosity > 0}

			if watch {
				watcher, err := cli.NewWatcher(generator, opts)
				if err != nil {
					return err
				}
				watcher.OnRun(func(summary cli.GenerationSummary, err error) {
					if err == nil {
						reportSummary(diagnostics, cfg.Project.Root, summary)
					}
				})

				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()

				diagnostics.Info("Watching %s for changes (Ctrl+C to stop)", cfg.SourceRoot())
				return watcher.Run(ctx)
			}

			if err := generator.Run(opts); err != nil {
				return err
			}
			reportSummary(diagnostics, cfg.Project.Root, generator.GetSummary())
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&entities, "entity", "e", nil, "Type to bind (repeatable)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Regenerate whenever a Rust source changes")
	return cmd
}

func reportSummary(diagnostics *utils.DiagnosticSystem, root string, summary cli.GenerationSummary) {
	diagnostics.Summary("Generation Summary", map[string]interface{}{
		"Files scanned":   summary.FilesScanned,
		"Entities bound":  summary.EntitiesBound,
		"Methods bound":   summary.MethodsBound,
		"Files generated": len(summary.GeneratedFiles),
	})

	if diagnostics.Level() >= utils.DiagnosticVerbose && len(summary.GeneratedFiles) > 0 {
		diagnostics.Category("Generated Files")
		diagnostics.Indent()
		for _, file := range summary.GeneratedFiles {
			path := file.Path
			if rel, err := filepath.Rel(root, path); err == nil {
				path = rel
			}
			diagnostics.List("%s (%s)", path, file.Kind)
		}
		diagnostics.Unindent()
	}
}
