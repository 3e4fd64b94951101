package hexes

import (
	"errors"
	"fmt"
)

var (
	// ErrNotEditable is returned by Edit when the target box is not marked
	// editable.
	ErrNotEditable = errors.New("hexes: box is not editable")

	// ErrEditActive is returned by Edit when another edit session is already
	// in progress. At most one edit session exists at a time.
	ErrEditActive = errors.New("hexes: an edit session is already active")
)

// DriverError wraps a fatal terminal driver failure. Driver failures are the
// only error class that terminates the dispatch loop; the terminal is
// restored before the error is returned to the caller of Run.
type DriverError struct {
	Err error
}

// Error implements the error interface.
func (e *DriverError) Error() string {
	return fmt.Sprintf("hexes: terminal driver failure: %v", e.Err)
}

// Unwrap returns the underlying driver error.
func (e *DriverError) Unwrap() error {
	return e.Err
}
