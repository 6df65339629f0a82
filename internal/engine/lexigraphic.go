package engine

import (
	"fmt"

	"github.com/lgbarn/wildchess-go/internal/chess"
	"github.com/lgbarn/wildchess-go/internal/errors"
)

// LexigraphicEmpty marks an empty square in lexigraphic notation.
const LexigraphicEmpty = '-'

// ParseLexigraphic replaces the position's placement with the one in s.
// Lexigraphic notation lists all 64 squares from a8 to h8, then rank 7,
// down to h1, one piece letter or '-' per square. Only placement is
// carried; the rest of the state is reset to its defaults.
func ParseLexigraphic(pos *chess.Position, s string) error {
	return pos.Modify(func(mod *chess.Modifier) error {
		return ApplyLexigraphic(mod, s)
	})
}

// ApplyLexigraphic writes the placement in s through mod.
func ApplyLexigraphic(mod *chess.Modifier, s string) error {
	if len(s) != chess.NumSquares {
		return fmt.Errorf("lexigraphic string has %d squares: %w", len(s), errors.ErrInvalidFEN)
	}

	mod.Clear()
	for i := 0; i < len(s); i++ {
		sq, _ := chess.NewSquare(i%chess.BoardSize, chess.BoardSize-1-i/chess.BoardSize)
		c := s[i]
		if c == LexigraphicEmpty {
			continue
		}
		piece := chess.PieceFromLetter(c)
		if piece == chess.NoPiece {
			return fmt.Errorf("invalid lexigraphic character %q at %s: %w", c, sq, errors.ErrInvalidFEN)
		}
		mod.SetPieceAt(piece, sq)
	}
	return nil
}

// Lexigraphic returns the position's placement in lexigraphic notation.
func Lexigraphic(pos *chess.Position) string {
	buf := make([]byte, 0, chess.NumSquares)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < chess.BoardSize; file++ {
			sq, _ := chess.NewSquare(file, rank)
			piece := pos.PieceAt(sq)
			if piece == chess.NoPiece {
				buf = append(buf, LexigraphicEmpty)
			} else {
				buf = append(buf, piece.Letter())
			}
		}
	}
	return string(buf)
}
