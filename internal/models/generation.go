package models

// GeneratedBinding holds both artifacts produced for one entity.
// Nothing is written to disk until every binding of a run has been generated.
type GeneratedBinding struct {
	Entity       string // entity name
	NativeGlue   string // Rust source with one exported function per method
	HostStub     string // Java stub class source
	GlueFileName string // file name for NativeGlue, relative to the native output dir
	StubFileName string // file name for HostStub, relative to the Java output dir
	Symbols      []string
}

// GeneratedFile is a file written by a generation run
type GeneratedFile struct {
	Path   string // absolute path written
	Entity string // entity the file belongs to
	Kind   string // "glue" or "stub"
}
