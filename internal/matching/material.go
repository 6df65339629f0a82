package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/wildchess-go/internal/chess"
	"github.com/lgbarn/wildchess-go/internal/errors"
	"github.com/lgbarn/wildchess-go/internal/game"
)

// pieceValues bounds the Piece encoding.
const pieceValues = int(chess.NumPieceKinds) << chess.PieceShift

// MaterialMatcher matches games by the material left in the final position.
type MaterialMatcher struct {
	pattern    string
	exactMatch bool
	counts     [pieceValues]int // indexed by Piece
}

// NewMaterialMatcher creates a material matcher from a pattern such as
// "QR:qrr": white pieces, a colon, black pieces, using FEN letters. Without
// exact the position may hold more pieces than the pattern names.
func NewMaterialMatcher(pattern string, exact bool) (*MaterialMatcher, error) {
	white, black, ok := strings.Cut(pattern, ":")
	if !ok {
		return nil, fmt.Errorf("material %q needs white:black: %w", pattern, errors.ErrInvalidPiece)
	}
	mm := &MaterialMatcher{pattern: pattern, exactMatch: exact}
	for _, side := range []struct {
		letters string
		player  chess.Player
	}{{white, chess.White}, {black, chess.Black}} {
		for i := 0; i < len(side.letters); i++ {
			kind := chess.KindFromLetter(side.letters[i])
			if kind == chess.NoKind {
				return nil, fmt.Errorf("material %q: letter %q: %w", pattern, side.letters[i], errors.ErrInvalidPiece)
			}
			mm.counts[chess.NewPiece(side.player, kind)]++
		}
	}
	return mm, nil
}

// Match implements GameMatcher.
func (mm *MaterialMatcher) Match(g *game.Game) bool {
	return mm.MatchPosition(g.Position())
}

// MatchPosition checks the material of pos.
func (mm *MaterialMatcher) MatchPosition(pos *chess.Position) bool {
	var counts [pieceValues]int
	st := pos.State()
	for _, piece := range st.Squares {
		if piece != chess.NoPiece {
			counts[piece]++
		}
	}
	for piece, want := range mm.counts {
		got := counts[piece]
		if got < want || (mm.exactMatch && got != want) {
			return false
		}
	}
	return true
}

// Name implements GameMatcher.
func (mm *MaterialMatcher) Name() string {
	return "MaterialMatcher(" + mm.pattern + ")"
}
