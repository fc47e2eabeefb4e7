package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name      string
		validator Validator[string]
		value     string
		wantErr   bool
	}{
		{"not empty ok", NotEmpty("name"), "x", false},
		{"not empty fails", NotEmpty("name"), "", true},
		{"rust ident", IsValidRustIdentifier("ident"), "get_foo_bar", false},
		{"rust ident digit start", IsValidRustIdentifier("ident"), "1abc", true},
		{"rust ident dash", IsValidRustIdentifier("ident"), "a-b", true},
		{"crate name dash", IsValidCrateName("crate"), "my-lib", false},
		{"crate name underscore start", IsValidCrateName("crate"), "_lib", true},
		{"java package", IsValidJavaPackage("group"), "rs.roast.gen", false},
		{"java package empty segment", IsValidJavaPackage("group"), "rs..gen", true},
		{"java package empty", IsValidJavaPackage("group"), "", true},
		{"one of", IsOneOf("flavor", "maven"), "maven", false},
		{"one of fails", IsOneOf("flavor", "maven"), "gradle", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validator(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatorChain_StopsAtFirstFailure(t *testing.T) {
	chain := NewValidatorChain(NotEmpty("field"), MatchesRegex("field", `^a`))

	err := chain.Validate("")
	assert.EqualError(t, err, "validation error for field 'field': cannot be empty")

	err = chain.Add(MatchesRegex("field", `b$`)).Validate("ac")
	assert.EqualError(t, err, "validation error for field 'field': must match pattern 'b$'")
}
