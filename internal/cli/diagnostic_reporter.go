package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/toyz/roast/internal/errors"
	"github.com/toyz/roast/internal/models"
)

// DiagnosticReporter provides user-friendly error reporting and diagnostics
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
	errOut  io.Writer
}

// NewDiagnosticReporter creates a reporter writing to stdout and stderr
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return NewDiagnosticReporterWithWriters(verbose, os.Stdout, os.Stderr)
}

// NewDiagnosticReporterWithWriters creates a reporter writing to the given streams
func NewDiagnosticReporterWithWriters(verbose bool, out, errOut io.Writer) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		out:     out,
		errOut:  errOut,
	}
}

// ReportWarning prints a one-line warning
func (r *DiagnosticReporter) ReportWarning(message string, suggestions ...string) {
	orange := color.New(color.FgYellow, color.Bold)
	orange.Fprint(r.errOut, "! ")
	fmt.Fprintf(r.errOut, "%s\n", message)
	if r.verbose {
		for _, suggestion := range suggestions {
			fmt.Fprintf(r.errOut, "  %s\n", suggestion)
		}
	}
}

// ReportError prints every error in err with its location, context and suggestions
func (r *DiagnosticReporter) ReportError(err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(r.errOut, "\nERROR: Binding Generation Failed\n")
	fmt.Fprintf(r.errOut, "================================\n\n")

	var multi *errors.MultipleErrors
	if errors.As(err, &multi) && !multi.IsEmpty() {
		if multi.Count() > 1 {
			fmt.Fprintf(r.errOut, "%d errors found\n\n", multi.Count())
		}
		for i, each := range multi.Errors {
			if multi.Count() > 1 {
				fmt.Fprintf(r.errOut, "[%d/%d] ", i+1, multi.Count())
			}
			r.reportRoastError(each, each.Suggestions())
		}
		fmt.Fprintf(r.errOut, "\n")
		return
	}

	var roastErr errors.RoastError
	if errors.As(err, &roastErr) {
		r.reportRoastError(roastErr, errors.Hints(err))
	} else {
		r.reportBasicError(err)
	}
	fmt.Fprintf(r.errOut, "\n")
}

// reportRoastError reports a typed error with full context and suggestions
func (r *DiagnosticReporter) reportRoastError(err errors.RoastError, suggestions []string) {
	r.printErrorHeader(err.ErrorCode())

	fmt.Fprintf(r.errOut, "Message: %s\n\n", err.Error())

	if r.verbose && err.Unwrap() != nil {
		fmt.Fprintf(r.errOut, "Underlying cause: %s\n\n", err.Unwrap().Error())
	}

	if loc := err.Location(); !loc.IsEmpty() {
		fmt.Fprintf(r.errOut, "Location: %s\n\n", loc.String())
	}

	if ctx := err.Context(); len(ctx) > 0 {
		r.printContext(ctx)
	}

	if len(suggestions) > 0 {
		r.printSuggestions(suggestions)
	}

	if r.verbose {
		r.printErrorChain(err)
	}
}

// reportBasicError reports an error that carries no roast metadata
func (r *DiagnosticReporter) reportBasicError(err error) {
	fmt.Fprintf(r.errOut, "Message: %s\n\n", err.Error())
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		r.printSuggestions(hints)
	}
}

// printErrorHeader prints a formatted error header based on error code
func (r *DiagnosticReporter) printErrorHeader(code errors.ErrorCode) {
	var title string
	switch code {
	case errors.SyntaxErrorCode:
		title = "Rust Syntax Error"
	case errors.ArgumentShapeErrorCode:
		title = "Unsupported Argument Shape"
	case errors.ReturnShapeErrorCode:
		title = "Unsupported Return Shape"
	case errors.UnsupportedReturnTypeErrorCode:
		title = "Unsupported Return Type"
	case errors.UnsupportedArgumentTypeErrorCode:
		title = "Unsupported Argument Type"
	case errors.SymbolCollisionErrorCode:
		title = "Native Symbol Collision"
	case errors.FileSystemErrorCode:
		title = "File System Error"
	case errors.ConfigurationErrorCode:
		title = "Configuration Error"
	default:
		title = code.String()
	}

	fmt.Fprintf(r.errOut, "Type: %s\n", title)
	fmt.Fprintf(r.errOut, "%s\n\n", strings.Repeat("-", len(title)+6))
}

// printContext prints the well-known keys first, then the rest sorted
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	fmt.Fprintf(r.errOut, "Context:\n")

	importantKeys := []string{"entity", "method", "argument", "raw_type", "symbol", "signature"}
	printed := make(map[string]bool)

	for _, key := range importantKeys {
		if value, exists := context[key]; exists {
			fmt.Fprintf(r.errOut, "   %s: %v\n", formatContextKey(key), value)
			printed[key] = true
		}
	}

	var rest []string
	for key := range context {
		if !printed[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		fmt.Fprintf(r.errOut, "   %s: %v\n", formatContextKey(key), context[key])
	}

	fmt.Fprintf(r.errOut, "\n")
}

// formatContextKey turns snake_case keys into Title Case
func formatContextKey(key string) string {
	if key == "raw_type" {
		return "Type"
	}
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

// printSuggestions prints actionable suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(r.errOut, "Suggestions:\n")

	for i, suggestion := range suggestions {
		lines := strings.Split(suggestion, "\n")
		fmt.Fprintf(r.errOut, "   %d. %s\n", i+1, lines[0])
		for _, line := range lines[1:] {
			if strings.TrimSpace(line) != "" {
				fmt.Fprintf(r.errOut, "      %s\n", line)
			}
		}
	}

	fmt.Fprintf(r.errOut, "\n")
}

// printErrorChain prints every wrapped cause in verbose mode
func (r *DiagnosticReporter) printErrorChain(err error) {
	fmt.Fprintf(r.errOut, "Error Chain:\n")
	level := 1
	for err != nil {
		fmt.Fprintf(r.errOut, "   %d. %s\n", level, err.Error())
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = unwrapper.Unwrap()
		level++
	}
	fmt.Fprintf(r.errOut, "\n")
}

// ReportSuccess reports successful generation with summary information
func (r *DiagnosticReporter) ReportSuccess(summary GenerationSummary) {
	fmt.Fprintf(r.out, "\nBinding Generation Completed Successfully!\n")
	fmt.Fprintf(r.out, "==========================================\n\n")

	fmt.Fprintf(r.out, "Scanned %d source files\n", summary.FilesScanned)
	if summary.EntitiesBound > 0 {
		fmt.Fprintf(r.out, "Bound %d entities (%d methods)\n", summary.EntitiesBound, summary.MethodsBound)
	}

	if len(summary.GeneratedFiles) > 0 {
		fmt.Fprintf(r.out, "\nGenerated files:\n")
		for _, file := range summary.GeneratedFiles {
			fmt.Fprintf(r.out, "  - %s (%s)\n", file.Path, file.Kind)
		}
	}

	if r.verbose {
		fmt.Fprintf(r.out, "\nCompleted in %s\n", summary.Duration.Round(time.Millisecond))
	}
}

// GenerationSummary contains information about the generation process
type GenerationSummary struct {
	FilesScanned   int
	EntitiesBound  int
	MethodsBound   int
	GeneratedFiles []models.GeneratedFile
	Duration       time.Duration
}
