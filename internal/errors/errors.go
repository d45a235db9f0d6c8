// Package errors provides sentinel errors and error types for gochess.
// It defines common error conditions and structured error types that
// preserve context while allowing error inspection with errors.Is()
// and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSquare indicates a malformed algebraic coordinate.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidPiece indicates a malformed piece code.
	ErrInvalidPiece = errors.New("invalid piece code")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a requested move that is not in the
	// legal move set for the current position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrOutOfTurn indicates a move request by the side not to move.
	ErrOutOfTurn = errors.New("not your turn")

	// ErrGameOver indicates a move request after the game has ended.
	ErrGameOver = errors.New("game is over")

	// ErrGameNotFound indicates an unknown game ID.
	ErrGameNotFound = errors.New("game not found")

	// ErrSearchPending indicates an engine search is already
	// outstanding for the game.
	ErrSearchPending = errors.New("engine search already pending")

	// ErrInvalidSnapshot indicates a snapshot that cannot be
	// reconstructed into a game state.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a move rejection with the squares involved. It
// implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	From   string // Origin square in algebraic form
	To     string // Destination square in algebraic form
	Reason string // Human-readable rejection reason
}

// Error returns a formatted error message including the move context.
func (e *MoveError) Error() string {
	msg := fmt.Sprintf("move %s%s", e.From, e.To)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
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
