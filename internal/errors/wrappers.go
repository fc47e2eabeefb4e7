package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Stack-carrying helpers for the I/O layers (config, build, scaffold)
var (
	New         = crdb.New
	Newf        = crdb.Newf
	Wrap        = crdb.Wrap
	Wrapf       = crdb.Wrapf
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	Is          = crdb.Is
	As          = crdb.As
	GetAllHints = crdb.GetAllHints
)

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s '%s'", operation, path)
	return WrapCode(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapTemplateError wraps template processing errors
func WrapTemplateError(templateName, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s template '%s'", operation, templateName)
	return WrapCode(TemplateErrorCode, message, cause).
		WithContext("template", templateName).
		WithContext("operation", operation)
}

// WrapConfigurationError wraps configuration-related errors
func WrapConfigurationError(path, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s configuration '%s'", operation, path)
	return WrapCode(ConfigurationErrorCode, message, cause).
		WithContext("path", path).
		WithContext("operation", operation)
}

// WrapBuildError wraps failures of the native build and artifact copy steps
func WrapBuildError(step string, cause error) *BaseError {
	return WrapCode(BuildErrorCode, fmt.Sprintf("build step '%s' failed", step), cause).
		WithContext("step", step)
}

// ScaffoldError creates a project scaffolding error
func ScaffoldError(target, message string) *BaseError {
	return NewCodef(ScaffoldErrorCode, "cannot create project '%s': %s", target, message).
		WithContext("target", target)
}

// Hints collects suggestions from RoastErrors and cockroach hints anywhere in the chain
func Hints(err error) []string {
	var hints []string
	var re RoastError
	if As(err, &re) {
		hints = append(hints, re.Suggestions()...)
	}
	return append(hints, GetAllHints(err)...)
}
