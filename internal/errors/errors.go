// Package errors provides sentinel errors and error types for the chess
// rules engine. It defines the common failure conditions and a structured
// move error that preserves context while allowing inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move request that violates chess rules:
	// an empty or wrong-colour origin, or a destination outside the
	// legal set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSquare indicates text that does not name a board square.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidPromotion indicates a promotion selector outside q/r/b/n.
	ErrInvalidPromotion = errors.New("invalid promotion piece")
)

// MoveError wraps a rejected move with its origin and destination. It
// supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	From string // Origin square as given by the caller
	To   string // Destination square as given by the caller
}

// Error returns a formatted error message including the move context.
func (e *MoveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("move %s %s: %v", e.From, e.To, e.Err)
	}
	return fmt.Sprintf("move %s %s rejected", e.From, e.To)
}

// Unwrap returns the underlying error, enabling errors.Is() and
// errors.As() to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
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
