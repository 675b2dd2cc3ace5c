// Package errors provides sentinel errors and error types for the chess match engine.
// It defines the user-correctable move errors and structured error types that
// preserve context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrNoPieceAtSource indicates the source square is empty.
	ErrNoPieceAtSource = errors.New("there is no piece on source position")

	// ErrNotOwnPiece indicates the source piece belongs to the player not on move.
	ErrNotOwnPiece = errors.New("the chosen piece is not yours")

	// ErrNoLegalMoves indicates the source piece cannot move anywhere.
	ErrNoLegalMoves = errors.New("there are no possible moves for the chosen piece")

	// ErrIllegalTarget indicates the target square is not reachable by the source piece.
	ErrIllegalTarget = errors.New("the chosen piece can't move to target position")

	// ErrSelfCheck indicates a move that would leave the mover's own king attacked.
	ErrSelfCheck = errors.New("you can't put yourself in check")

	// ErrInvalidPosition indicates a square that is not a1..h8.
	ErrInvalidPosition = errors.New("invalid position: valid values are from a1 to h8")

	// ErrPositionOccupied indicates a placement onto a square that already holds a piece.
	ErrPositionOccupied = errors.New("there is already a piece on position")

	// ErrPositionNotOnBoard indicates board coordinates outside the grid.
	ErrPositionNotOnBoard = errors.New("position not on the board")

	// ErrInvalidBoard indicates board dimensions that cannot hold a piece.
	ErrInvalidBoard = errors.New("there must be at least 1 row and 1 column")

	// ErrInvalidSetup indicates a starting layout the engine cannot play from.
	ErrInvalidSetup = errors.New("invalid setup")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with match context, including the squares involved,
// the turn number and the player on move. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	Source string // Source square in chess notation (if known)
	Target string // Target square in chess notation (if known)
	Turn   int    // Turn number when the error occurred
	Player string // Player on move
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Turn > 0 {
		parts = append(parts, fmt.Sprintf("turn %d", e.Turn))
	}
	if e.Player != "" {
		parts = append(parts, e.Player)
	}

	switch {
	case e.Source != "" && e.Target != "":
		parts = append(parts, fmt.Sprintf("move %s-%s", e.Source, e.Target))
	case e.Source != "":
		parts = append(parts, fmt.Sprintf("square %s", e.Source))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// InvariantError reports a broken engine invariant, such as a king missing
// from the board. It is raised with panic and is never returned by the move
// validation layer.
type InvariantError struct {
	Colour string
	Reason string
}

func (e *InvariantError) Error() string {
	if e.Colour == "" {
		return "invariant violated: " + e.Reason
	}
	return fmt.Sprintf("invariant violated: %s: %s", e.Colour, e.Reason)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
