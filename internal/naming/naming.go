// Package naming rewrites identifiers between the Rust and Java conventions.
package naming

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// DefaultSymbolPrefix is the leading segment of every exported native symbol
const DefaultSymbolPrefix = "Host"

// CamelCase converts an underscore separated name to lowerCamelCase
func CamelCase(s string) string {
	return strcase.ToLowerCamel(strings.TrimPrefix(s, "r#"))
}

// PascalCase converts a name to its capitalized-word form
func PascalCase(s string) string {
	return strcase.ToCamel(strings.TrimPrefix(s, "r#"))
}

// SnakeCase converts a capitalized name to snake_case
func SnakeCase(s string) string {
	return strcase.ToSnake(s)
}

// NativeSymbol builds the exported function name <prefix>_<Entity>_<camelMethod>
func NativeSymbol(prefix, entity, method string) string {
	if prefix == "" {
		prefix = DefaultSymbolPrefix
	}
	return prefix + "_" + entity + "_" + CamelCase(method)
}

// ModulePath maps a source file, relative to the crate's source root and
// slash separated, to its module path: lib.rs is crate, foo/mod.rs and
// foo.rs are crate::foo
func ModulePath(rel string) string {
	rel = strings.TrimSuffix(rel, ".rs")
	segments := []string{"crate"}
	parts := strings.Split(rel, "/")
	for i, part := range parts {
		last := i == len(parts)-1
		if last && (part == "mod" || (i == 0 && (part == "lib" || part == "main"))) {
			break
		}
		segments = append(segments, part)
	}
	return strings.Join(segments, "::")
}
