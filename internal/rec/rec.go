// Package rec turns panics into errors at command and request boundaries.
package rec

import (
	"fmt"
	"runtime/debug"
)

func rec(r any) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(error); ok {
		return fmt.Errorf("recovered panic: %w\n%s", err, debug.Stack())
	}
	return fmt.Errorf("recovered panic: %v\n%s", r, debug.Stack())
}

// Error recovers a panic and assigns it to the provided error.
func Error(err *error) {
	if r := rec(recover()); r != nil {
		*err = r
	}
}

// Wrap recovers a panic, or takes the error already returned, and wraps it
// with the provided format and arguments. The error is appended to the end
// of the arguments, so the format should end in %w.
func Wrap(err *error, format string, a ...any) {
	if r := rec(recover()); r != nil {
		*err = fmt.Errorf(format, append(a, r)...)
	} else if *err != nil {
		*err = fmt.Errorf(format, append(a, *err)...)
	}
}
