package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/toyz/roast/internal/config"
	"github.com/toyz/roast/internal/utils"
)

// app holds the global flags shared by every command
type app struct {
	root       *cobra.Command
	verbosity  int
	quiet      bool
	configPath string
	projectDir string
}

func newApp() *app {
	a := &app{}
	a.root = &cobra.Command{
		Use:   "roast",
		Short: "Generate JNI bindings for Rust types",
		Long: `roast - Rust to Java native binding generator

Scans a Rust crate for exported types, emits the JNI glue functions and
the matching Java classes, and builds and packages the native library.

Examples:
  roast new demo                 # Create a new project in ./demo
  roast generate                 # Bind every #[derive(RoastExport)] type
  roast generate --entity Point  # Bind one type
  roast generate --watch         # Regenerate on every source change
  roast build                    # cargo build, then copy the artifacts
  roast inspect                  # Show what discovery found`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := a.root.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "Only show errors")
	flags.StringVarP(&a.configPath, "config", "c", "", "Path to "+config.FileName+" (defaults to the project root)")
	flags.StringVarP(&a.projectDir, "root", "r", ".", "Project root directory")

	a.root.AddCommand(
		a.generateCmd(),
		a.buildCmd(),
		a.newCmd(),
		a.inspectCmd(),
		a.cleanCmd(),
	)
	return a
}

// diagnostics creates the user-facing output for cmd. Redirected
// streams, as in tests, get plain uncolored output.
func (a *app) diagnostics(cmd *cobra.Command) *utils.DiagnosticSystem {
	d := utils.NewDiagnosticSystem(utils.LevelFromFlags(a.verbosity, a.quiet))
	if cmd.OutOrStdout() != os.Stdout || cmd.ErrOrStderr() != os.Stderr {
		d.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	}
	return d
}

// logger is a development console logger at -vv, otherwise a no-op
func (a *app) logger() *zap.Logger {
	if a.verbosity < 2 || a.quiet {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// loadConfig reads the project configuration selected by the global flags
func (a *app) loadConfig() (*config.Config, error) {
	return config.Load(a.projectDir, a.configPath)
}
