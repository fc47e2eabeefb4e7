package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsupportedReturnTypeError_Message(t *testing.T) {
	err := NewUnsupportedReturnTypeError("foobar", "HashMap<String,i32>")

	assert.Equal(t, "Unsupported Return Type HashMap<String,i32> on function foobar", err.Error())
	assert.Equal(t, UnsupportedReturnTypeErrorCode, err.ErrorCode())
	assert.Equal(t, "foobar", err.Method)
	assert.Equal(t, "HashMap<String,i32>", err.RawType)
	assert.NotEmpty(t, err.Suggestions())

	// Location does not change the rendered message
	err.WithLocation(SourceLocation{File: "src/lib.rs", Line: 4})
	assert.Equal(t, "Unsupported Return Type HashMap<String,i32> on function foobar", err.Error())
}

func TestUnsupportedReturnTypeError_As(t *testing.T) {
	wrapped := fmt.Errorf("entity Entity: %w", NewUnsupportedReturnTypeError("foobar", "Foo"))

	var target *UnsupportedReturnTypeError
	require.True(t, As(wrapped, &target))
	assert.Equal(t, "Foo", target.RawType)
	assert.Equal(t, UnsupportedReturnTypeErrorCode, CodeOf(wrapped))
}

func TestBaseError_Location(t *testing.T) {
	err := NewSyntaxError("unexpected token", SourceLocation{File: "a.rs", Line: 3, Column: 7}, nil)
	assert.Equal(t, "a.rs:3:7: unexpected token", err.Error())
	assert.Equal(t, SyntaxErrorCode, err.ErrorCode())
}

func TestSourceLocation_String(t *testing.T) {
	tests := []struct {
		loc      SourceLocation
		expected string
	}{
		{SourceLocation{}, "unknown location"},
		{SourceLocation{File: "a.rs"}, "a.rs"},
		{SourceLocation{File: "a.rs", Line: 2}, "a.rs:2"},
		{SourceLocation{File: "a.rs", Line: 2, Column: 5}, "a.rs:2:5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.loc.String())
	}
}

func TestSymbolCollisionError(t *testing.T) {
	err := NewSymbolCollisionError("Entity", "Host_Entity_getX", "get_x", "getX")
	assert.Contains(t, err.Error(), "Host_Entity_getX")
	assert.Contains(t, err.Error(), "get_x, getX")
	assert.Equal(t, SymbolCollisionErrorCode, CodeOf(err))
}

func TestMultipleErrors(t *testing.T) {
	multi := NewMultipleErrors()
	assert.Nil(t, multi.ErrorOrNil())

	multi.Add(NewReturnShapeError("a", "&str"))
	multi.Add(NewArgumentShapeError("b", "(x, y): (i32, i32)", "tuple pattern"))

	require.Error(t, multi.ErrorOrNil())
	assert.Equal(t, 2, multi.Count())
	assert.True(t, multi.HasCode(ArgumentShapeErrorCode))
	assert.False(t, multi.HasCode(SyntaxErrorCode))
	assert.Contains(t, multi.Error(), "multiple errors (2 total)")

	var shape *ArgumentShapeError
	require.True(t, stderrors.As(multi, &shape))
	assert.Equal(t, "b", shape.Method)
}

func TestHints(t *testing.T) {
	base := WrapConfigurationError("roast.toml", "read", stderrors.New("boom")).
		WithSuggestion("run roast new")
	err := WithHint(base, "check the file permissions")

	hints := Hints(err)
	assert.Contains(t, hints, "run roast new")
	assert.Contains(t, hints, "check the file permissions")
	assert.Equal(t, ConfigurationErrorCode, CodeOf(err))
}

func TestErrorCode_String(t *testing.T) {
	assert.Equal(t, "UnsupportedReturnType", UnsupportedReturnTypeErrorCode.String())
	assert.Equal(t, "UnknownError", ErrorCode(999).String())
}
