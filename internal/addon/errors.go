package addon

import "fmt"

// ScanError represents a fatal scan failure. Only an unreadable root
// directory is fatal; everything below the root degrades to warnings.
type ScanError struct {
	// Root is the addons root directory that could not be read.
	Root string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	return fmt.Sprintf("cannot read addons directory %s: %v", e.Root, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *ScanError) Unwrap() error {
	return e.Cause
}
