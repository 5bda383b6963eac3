// Package errors provides sentinel errors and error types for the rpgchess
// engine and its callers. It defines common error conditions and structured
// error types that preserve context while allowing error inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSquare indicates a square name or position off the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidBoardSize indicates an unusable board size.
	ErrInvalidBoardSize = errors.New("invalid board size")

	// ErrUnknownPiece indicates a piece name that does not normalise.
	ErrUnknownPiece = errors.New("unknown piece type")

	// ErrUnknownColour indicates a colour name that does not normalise.
	ErrUnknownColour = errors.New("unknown colour")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCacheClosed indicates use of a move cache after Close.
	ErrCacheClosed = errors.New("move cache closed")
)

// MoveError wraps errors with move context: the move text, the ply at which
// it was attempted and the position it was attempted from.
type MoveError struct {
	Err      error  // The underlying error
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move in coordinate notation (if applicable)
	FEN      string // The position the move was attempted from (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}

	return joinContext(parts, ", ", e.Err, "move error")
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with location context.
// It's used for FEN, square and move notation errors.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Column   int    // Column number (1-based, 0 if unknown)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error renders the input, the column and the expected/got pair, followed
// by the underlying error.
func (e *ParseError) Error() string {
	var parts []string
	if e.Input != "" {
		if e.Column > 0 {
			parts = append(parts, fmt.Sprintf("%q at column %d", e.Input, e.Column))
		} else {
			parts = append(parts, fmt.Sprintf("%q", e.Input))
		}
	}
	switch {
	case e.Expected != "" && e.Got != "":
		parts = append(parts, "expected "+e.Expected+", got "+e.Got)
	case e.Expected != "":
		parts = append(parts, "expected "+e.Expected)
	case e.Got != "":
		parts = append(parts, "unexpected "+e.Got)
	}
	return joinContext(parts, ": ", e.Err, "parse error")
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// joinContext prefixes err with the joined context parts. With neither it
// returns fallback.
func joinContext(parts []string, sep string, err error, fallback string) string {
	context := strings.Join(parts, sep)
	switch {
	case err != nil && context != "":
		return context + ": " + err.Error()
	case err != nil:
		return err.Error()
	case context != "":
		return context
	}
	return fallback
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

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
