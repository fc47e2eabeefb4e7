package parser

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/roast/internal/errors"
	"github.com/toyz/roast/internal/syntax"
)

// ErrorReporter builds discovery errors with a source location and fix-up hints
type ErrorReporter struct{}

// NewErrorReporter creates a new discovery error reporter
func NewErrorReporter() *ErrorReporter {
	return &ErrorReporter{}
}

// ArgumentShape reports a parameter discovery cannot classify
func (r *ErrorReporter) ArgumentShape(file string, fn *syntax.Function, param *syntax.Param, detail string) error {
	err := errors.NewArgumentShapeError(fn.Name, param.String(), detail)
	err.WithLocation(locationOf(file, param.Pos)).
		WithContext("signature", fn.Signature())

	if param.Typed != nil {
		if name, ok := param.Typed.BindingName(); ok {
			err.WithSuggestion("Bind the value by name and convert it inside the function, e.g. '" + name + ": i32'")
		} else {
			err.WithSuggestion("Destructure the value inside the function body instead of in the parameter list")
		}
	}
	return err
}

// ReturnShape reports a return type that is not a named type path
func (r *ErrorReporter) ReturnShape(file string, fn *syntax.Function) error {
	err := errors.NewReturnShapeError(fn.Name, fn.ReturnText())
	err.WithLocation(locationOf(file, fn.Pos)).
		WithContext("signature", fn.Signature()).
		WithSuggestion("Return an owned value such as 'String' or 'Vec<u8>' instead of a reference or tuple")
	return err
}

func locationOf(file string, pos lexer.Position) errors.SourceLocation {
	return errors.SourceLocation{File: file, Line: pos.Line, Column: pos.Column}
}
