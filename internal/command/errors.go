package command

import (
	"errors"
	"fmt"
)

// Sentinel errors a command implementation returns. Wrap with
// fmt.Errorf's %w (or return bare) so callers can still match with
// errors.Is.
var (
	ErrReadOnly  = errors.New("buffer is read-only")
	ErrNoMark    = errors.New("no mark set")
	ErrNoMatch   = errors.New("no match")
	ErrCancelled = errors.New("cancelled")
	ErrNotFound  = errors.New("command not found")
)

// NotFoundError reports that CommandRegistry.Execute was asked to run
// a name that was never registered.
func NotFoundError(name string) error {
	return fmt.Errorf("%s: %w", name, ErrNotFound)
}
