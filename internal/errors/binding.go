package errors

import (
	"fmt"
	"strings"

	"github.com/toyz/roast/internal/typemap"
)

// UnsupportedReturnTypeError is raised by either emitter when a method's
// return type is outside the mapping table
type UnsupportedReturnTypeError struct {
	*BaseError
	Method  string // declared method name
	RawType string // return type as written
}

// Error renders the fixed message format; location is reported separately
func (e *UnsupportedReturnTypeError) Error() string {
	return e.Message
}

// NewUnsupportedReturnTypeError creates an unsupported return type error
func NewUnsupportedReturnTypeError(method, rawType string) *UnsupportedReturnTypeError {
	return &UnsupportedReturnTypeError{
		BaseError: NewCode(UnsupportedReturnTypeErrorCode,
			fmt.Sprintf("Unsupported Return Type %s on function %s", rawType, method)).
			WithContext("method", method).
			WithContext("raw_type", rawType).
			WithSuggestion(supportedHint()),
		Method:  method,
		RawType: rawType,
	}
}

// UnsupportedArgumentTypeError is raised when a captured argument's type is outside the mapping table
type UnsupportedArgumentTypeError struct {
	*BaseError
	Method   string
	Argument string
	RawType  string
}

// NewUnsupportedArgumentTypeError creates an unsupported argument type error
func NewUnsupportedArgumentTypeError(method, argument, rawType string) *UnsupportedArgumentTypeError {
	return &UnsupportedArgumentTypeError{
		BaseError: NewCodef(UnsupportedArgumentTypeErrorCode,
			"unsupported argument type %s for argument '%s' on function %s", rawType, argument, method).
			WithContext("method", method).
			WithContext("argument", argument).
			WithContext("raw_type", rawType).
			WithSuggestion(supportedHint()),
		Method:   method,
		Argument: argument,
		RawType:  rawType,
	}
}

// ArgumentShapeError is raised by discovery for an argument it cannot classify
type ArgumentShapeError struct {
	*BaseError
	Method   string
	Argument string // argument as written
	Detail   string
}

// NewArgumentShapeError creates an argument shape error
func NewArgumentShapeError(method, argument, detail string) *ArgumentShapeError {
	return &ArgumentShapeError{
		BaseError: NewCodef(ArgumentShapeErrorCode,
			"function %s: unsupported argument '%s': %s", method, argument, detail).
			WithContext("method", method).
			WithContext("argument", argument).
			WithSuggestion("Arguments must be a plain identifier with a named type, e.g. 'count: i32'"),
		Method:   method,
		Argument: argument,
		Detail:   detail,
	}
}

// ReturnShapeError is raised by discovery for a return type that is not a named type path
type ReturnShapeError struct {
	*BaseError
	Method  string
	RawType string
}

// NewReturnShapeError creates a return shape error
func NewReturnShapeError(method, rawType string) *ReturnShapeError {
	return &ReturnShapeError{
		BaseError: NewCodef(ReturnShapeErrorCode,
			"function %s: return type '%s' is not a named type", method, rawType).
			WithContext("method", method).
			WithContext("raw_type", rawType),
		Method:  method,
		RawType: rawType,
	}
}

// SyntaxError is raised when a source file cannot be parsed
type SyntaxError struct {
	*BaseError
}

// NewSyntaxError creates a syntax error at the given location
func NewSyntaxError(message string, loc SourceLocation, cause error) *SyntaxError {
	return &SyntaxError{
		BaseError: WrapCode(SyntaxErrorCode, message, cause).WithLocation(loc),
	}
}

// SymbolCollisionError is raised when two methods of one entity mangle to the same native symbol
type SymbolCollisionError struct {
	*BaseError
	Entity  string
	Symbol  string
	Methods []string
}

// NewSymbolCollisionError creates a symbol collision error
func NewSymbolCollisionError(entity, symbol string, methods ...string) *SymbolCollisionError {
	return &SymbolCollisionError{
		BaseError: NewCodef(SymbolCollisionErrorCode,
			"entity %s: native symbol %s is produced by more than one method (%s)",
			entity, symbol, strings.Join(methods, ", ")).
			WithContext("entity", entity).
			WithContext("symbol", symbol).
			WithSuggestion("Rename one of the methods; overloads cannot share a JNI symbol"),
		Entity:  entity,
		Symbol:  symbol,
		Methods: methods,
	}
}

// GenerationError wraps a failure while producing an artifact
type GenerationError struct {
	*BaseError
	Entity string
	Stage  string // "glue", "stub" or "write"
}

// NewGenerationError creates a generation error
func NewGenerationError(entity, stage string, cause error) *GenerationError {
	return &GenerationError{
		BaseError: WrapCode(GenerationErrorCode,
			fmt.Sprintf("failed to generate %s for %s", stage, entity), cause).
			WithContext("entity", entity).
			WithContext("stage", stage),
		Entity: entity,
		Stage:  stage,
	}
}

func supportedHint() string {
	return "Supported types: " + strings.Join(typemap.Supported(), ", ")
}
