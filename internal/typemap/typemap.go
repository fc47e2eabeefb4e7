// Package typemap holds the closed table of Rust types that can cross the
// JNI boundary, together with their boundary and Java representations.
package typemap

// DefaultRuntimeCrate is the crate that provides the boundary types and
// the conversion functions referenced by generated glue
const DefaultRuntimeCrate = "roast"

// Mapping describes how one Rust type crosses the boundary
type Mapping struct {
	Rust         string // Rust type as written, e.g. "Vec<u8>"
	Boundary     string // JNI boundary type, unqualified
	Host         string // Java declared type
	ArgConverter string // boundary -> Rust conversion function
	RetConverter string // Rust -> boundary conversion function
}

// table is ordered; Supported reports keys in this order
var table = []Mapping{
	{Rust: "i8", Boundary: "jbyte", Host: "byte", ArgConverter: "convert_arg_jbyte", RetConverter: "convert_retval_i8"},
	{Rust: "bool", Boundary: "jboolean", Host: "boolean", ArgConverter: "convert_arg_jboolean", RetConverter: "convert_retval_bool"},
	{Rust: "i16", Boundary: "jshort", Host: "short", ArgConverter: "convert_arg_jshort", RetConverter: "convert_retval_i16"},
	{Rust: "u16", Boundary: "jchar", Host: "char", ArgConverter: "convert_arg_jchar", RetConverter: "convert_retval_u16"},
	{Rust: "i32", Boundary: "jint", Host: "int", ArgConverter: "convert_arg_jint", RetConverter: "convert_retval_i32"},
	// u32 does not fit a signed jint, so it travels in a jlong slot
	{Rust: "u32", Boundary: "jlong", Host: "long", ArgConverter: "convert_arg_jlong_u32", RetConverter: "convert_retval_u32"},
	{Rust: "i64", Boundary: "jlong", Host: "long", ArgConverter: "convert_arg_jlong", RetConverter: "convert_retval_i64"},
	{Rust: "f32", Boundary: "jfloat", Host: "float", ArgConverter: "convert_arg_jfloat", RetConverter: "convert_retval_f32"},
	{Rust: "f64", Boundary: "jdouble", Host: "double", ArgConverter: "convert_arg_jdouble", RetConverter: "convert_retval_f64"},
	{Rust: "String", Boundary: "jstring", Host: "String", ArgConverter: "convert_arg_jstring", RetConverter: "convert_retval_string"},
	{Rust: "Vec<u8>", Boundary: "jbyteArray", Host: "byte[]", ArgConverter: "convert_arg_jbytearray", RetConverter: "convert_retval_vecu8"},
}

var index = func() map[string]Mapping {
	m := make(map[string]Mapping, len(table))
	for _, entry := range table {
		m[entry.Rust] = entry
	}
	return m
}()

// Lookup returns the mapping for a Rust type. ok is false for any type
// outside the table; callers decide whether that is fatal.
func Lookup(rustType string) (Mapping, bool) {
	m, ok := index[rustType]
	return m, ok
}

// Supported lists every mappable Rust type in table order
func Supported() []string {
	types := make([]string, len(table))
	for i, entry := range table {
		types[i] = entry.Rust
	}
	return types
}

// IsByteSequence reports whether the type is the one generic type the table accepts
func IsByteSequence(rustType string) bool {
	return rustType == "Vec<u8>"
}

// QualifiedBoundary returns the boundary type qualified with the runtime crate
func (m Mapping) QualifiedBoundary(crate string) string {
	return qualify(crate, m.Boundary)
}

// QualifiedArgConverter returns the crate-qualified argument conversion function
func (m Mapping) QualifiedArgConverter(crate string) string {
	return qualify(crate, "convert::"+m.ArgConverter)
}

// QualifiedRetConverter returns the crate-qualified return conversion function
func (m Mapping) QualifiedRetConverter(crate string) string {
	return qualify(crate, "convert::"+m.RetConverter)
}

func qualify(crate, name string) string {
	if crate == "" {
		crate = DefaultRuntimeCrate
	}
	return crate + "::" + name
}
