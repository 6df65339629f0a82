package chess

import (
	"fmt"

	"github.com/lgbarn/wildchess-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// Square identifies one square of the board as rank*8+file.
// NoSquare stands in for a square that is unknown, as in hidden moves.
type Square uint8

// NoSquare is the nil square.
const NoSquare Square = NumSquares

// NewSquare returns the square at the given 0-based file and rank.
func NewSquare(file, rank int) (Square, error) {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare, fmt.Errorf("file %d, rank %d: %w", file, rank, errors.ErrInvalidSquare)
	}
	return Square(rank*BoardSize + file), nil
}

// MustSquare is like ParseSquare but panics on malformed input.
// It is intended for constants and tests.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	file := int(s[0]) - FileBase
	rank := int(s[1]) - RankBase
	sq, err := NewSquare(file, rank)
	if err != nil {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// File returns the 0-based file (0 = a).
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the 0-based rank (0 = 1).
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// IsValid reports whether s is on the board.
func (s Square) IsValid() bool {
	return s < NoSquare
}

// IsLight reports whether s is a light square (h1 is light).
func (s Square) IsLight() bool {
	return (s.File()+s.Rank())%2 == 1
}

// Offset returns the square df files and dr ranks away, if it is on the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	if !s.IsValid() {
		return NoSquare, false
	}
	sq, err := NewSquare(s.File()+df, s.Rank()+dr)
	if err != nil {
		return NoSquare, false
	}
	return sq, true
}

// String returns the algebraic name, or "-" for NoSquare.
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File()), byte(RankBase + s.Rank())})
}

// FileLetter returns the file letter for a 0-based file.
func FileLetter(file int) byte {
	return byte(FileBase + file)
}
