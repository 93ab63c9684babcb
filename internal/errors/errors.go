// Package errors provides sentinel errors and error types for chessticle.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNotYourTurn indicates an attempt to move the other side's piece.
	ErrNotYourTurn = errors.New("piece belongs to the side not to move")

	// ErrEmptySquare indicates a move from a square with no piece on it.
	ErrEmptySquare = errors.New("no piece on origin square")

	// ErrInvalidPromotion indicates a promotion to a kind a pawn cannot become.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrInvalidSquare indicates a square name or index off the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFEN indicates a malformed or unplayable FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidNotation indicates a move that is not in coordinate notation.
	ErrInvalidNotation = errors.New("invalid move notation")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the ply at which the move was
// attempted and its text. It implements the error interface and supports
// unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply of the attempted move (0 if not applicable)
	MoveText string // The move in coordinate notation (if known)
	File     string // Source file name (if known)
	Line     int    // Line number in source file (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	// Add file/line context if available
	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	}

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents an input parsing error with position context.
// It's used for FEN and move notation errors.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Column   int    // Column number (1-based, 0 if unknown)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc += fmt.Sprintf(" at column %d", e.Column)
		}
		parts = append(parts, loc)
	}

	// Add expected/got context
	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	// Add underlying error
	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
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

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
