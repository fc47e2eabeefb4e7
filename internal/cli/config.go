package cli

import "time"

// DefaultDebounce is how long watch mode waits for a burst of changes to settle
const DefaultDebounce = 200 * time.Millisecond

// Config holds the options of one generation run
type Config struct {
	// Entities are the names to bind, normalized to PascalCase.
	// When empty the configured entities are used, then every exported type.
	Entities []string

	// Verbose enables detailed error reporting
	Verbose bool
}
