package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/wildchess-go/internal/chess"
	"github.com/lgbarn/wildchess-go/internal/engine"
)

// MoveCreator is the part of a variant that turns squares into moves.
type MoveCreator interface {
	chess.Rules
	CreateMove(pos *chess.Position, from, to chess.Square, promotion chess.PieceKind) (chess.Move, error)
}

// MustFEN returns a position bound to rules and loaded from fen.
// It calls t.Fatal if the FEN does not parse.
func MustFEN(t *testing.T, rules chess.Rules, fen string) *chess.Position {
	t.Helper()
	pos := chess.NewPosition(rules)
	if err := engine.ParseFEN(pos, fen); err != nil {
		t.Fatalf("failed to load FEN %q: %v", fen, err)
	}
	return pos
}

// Squares parses square names such as "e4".
func Squares(names ...string) []chess.Square {
	squares := make([]chess.Square, len(names))
	for i, name := range names {
		squares[i] = chess.MustSquare(name)
	}
	return squares
}

// SortedSquares returns the squares ordered a1, b1 ... h8 so target lists
// can be compared independent of generation order.
func SortedSquares(squares []chess.Square) []chess.Square {
	out := append([]chess.Square(nil), squares...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MustPlay plays coordinate moves such as "e2e4" or "e7e8q" through v.
// It calls t.Fatal on the first move that cannot be created or made.
func MustPlay(t *testing.T, v MoveCreator, pos *chess.Position, moves ...string) {
	t.Helper()
	for _, text := range moves {
		if len(text) != 4 && len(text) != 5 {
			t.Fatalf("bad move text %q", text)
		}
		from, err := chess.ParseSquare(text[0:2])
		if err != nil {
			t.Fatalf("move %q: %v", text, err)
		}
		to, err := chess.ParseSquare(text[2:4])
		if err != nil {
			t.Fatalf("move %q: %v", text, err)
		}
		promotion := chess.NoKind
		if len(text) == 5 {
			promotion = chess.KindFromLetter(text[4])
		}
		m, err := v.CreateMove(pos, from, to, promotion)
		if err != nil {
			t.Fatalf("create %q: %v", text, err)
		}
		if err := pos.MakeMove(m); err != nil {
			t.Fatalf("make %q: %v", text, err)
		}
	}
}
