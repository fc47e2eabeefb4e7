package main

import (
	"os"

	"github.com/toyz/roast/internal/cli"
)

func main() {
	app := newApp()
	if err := app.root.Execute(); err != nil {
		cli.NewDiagnosticReporter(app.verbosity > 0).ReportError(err)
		os.Exit(1)
	}
}
