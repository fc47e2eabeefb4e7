package parser

const (
	// DefaultExportMarker is the derive that marks a type for binding generation
	DefaultExportMarker = "RoastExport"

	// ByteSequenceType is the only generic type accepted for arguments
	ByteSequenceType = "Vec<u8>"
)
