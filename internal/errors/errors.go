// Package errors provides the sentinel errors of the decoder surface
// and assertion helpers for structural invariants. The move generation
// core itself returns no errors: boundary conditions during scanning
// are handled as data, while violated invariants (off-board move
// destination, missing king) are unrecoverable and panic.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the recoverable failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrSuiteFailed indicates a position suite with at least one
	// mismatched expectation.
	ErrSuiteFailed = errors.New("position suite failed")
)

// Assert panics with msg if cond is false. It is used for invariants
// whose violation means the caller handed the core a board that breaks
// its basic assumptions; such failures are never caught or retried.
func Assert(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}

// Assertf is Assert with a formatted diagnostic.
func Assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the
// underlying error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
