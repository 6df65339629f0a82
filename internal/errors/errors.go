// Package errors provides sentinel errors and error types for the wildchess rules core.
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
	// ErrVariantMismatch indicates a rule operation was handed a position
	// bound to a different variant. It always signals an integration bug.
	ErrVariantMismatch = errors.New("position belongs to a different variant")

	// ErrIllegalOperation indicates an operation that is not available in
	// the current position, such as castling after the king has moved.
	ErrIllegalOperation = errors.New("operation not available in this position")

	// ErrUnsupported indicates an operation the variant does not support at all.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrIllegalMove indicates a move that violates the variant's rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSquare indicates malformed algebraic square text or coordinates.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidPiece indicates malformed piece notation.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrInvalidFEN indicates a malformed FEN or lexigraphic string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidTag indicates a PGN tag with an empty name or broken syntax.
	ErrInvalidTag = errors.New("invalid PGN tag")

	// ErrParseFailure indicates a general move text or input parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrUnknownVariant indicates a variant name missing from the registry.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// GameError wraps errors with game context, including the game identifier,
// ply position, and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameID   string // Game identifier (if known)
	Variant  string // Variant name (if known)
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	}
	if e.Variant != "" {
		parts = append(parts, fmt.Sprintf("variant %s", e.Variant))
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "game error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with input location context.
// It's used for move text, PGN tag and batch input decoding errors.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

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
