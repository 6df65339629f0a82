package output

import (
	"strings"

	"github.com/lgbarn/wildchess-go/internal/chess"
	"github.com/lgbarn/wildchess-go/internal/engine"
	"github.com/lgbarn/wildchess-go/internal/game"
	"github.com/lgbarn/wildchess-go/internal/pgn"
)

// Move kinds reported in JSONMove.Kind.
const (
	KindStandard      = "standard"
	KindCastling      = "castling"
	KindHidden        = "hidden"
	KindPartialHidden = "partial-hidden"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID         string            `json:"id"`
	Variant    string            `json:"variant"`
	Tags       map[string]string `json:"tags"`
	Moves      []JSONMove        `json:"moves,omitempty"`
	Result     string            `json:"result,omitempty"`
	PlyCount   int               `json:"plyCount"`
	InitialFEN string            `json:"initialFEN"`
	FinalFEN   string            `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply        int    `json:"ply"`
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	Notation   string `json:"notation"`
	Kind       string `json:"kind"`
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	Piece      string `json:"piece,omitempty"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game to JSON format, replaying its moves from the
// start position to record the position after each one.
func GameToJSON(g *game.Game) (*JSONGame, error) {
	jg := &JSONGame{
		ID:         g.ID,
		Variant:    g.Variant().Name(),
		Tags:       copyTags(g.Tags()),
		PlyCount:   g.Ply(),
		InitialFEN: g.StartFEN(),
		FinalFEN:   g.FEN(),
	}

	jg.Result = jg.Tags[pgn.TagResult]

	pos := chess.NewPosition(g.Variant())
	if err := engine.ParseFEN(pos, g.StartFEN()); err != nil {
		return nil, err
	}
	moves, err := convertMoveList(g.Moves(), pos)
	if err != nil {
		return nil, err
	}
	jg.Moves = moves
	return jg, nil
}

// copyTags copies game tags, filling in the seven tag roster.
func copyTags(tags pgn.Tags) map[string]string {
	result := make(map[string]string, len(tags))
	for _, tag := range tags.Ordered() {
		result[tag.Name] = tag.Value
	}
	return result
}

// convertMoveList converts moves to JSON format, applying each to pos.
func convertMoveList(moves []chess.Move, pos *chess.Position) ([]JSONMove, error) {
	result := make([]JSONMove, 0, len(moves))
	for i, m := range moves {
		jm := convertSingleMove(m, pos)
		jm.Ply = i + 1
		if err := pos.MakeMove(m); err != nil {
			return nil, err
		}
		jm.FEN = engine.FEN(pos)
		result = append(result, jm)
	}
	return result, nil
}

// convertSingleMove describes m as played from pos.
func convertSingleMove(m chess.Move, pos *chess.Position) JSONMove {
	jm := JSONMove{
		Color:    strings.ToLower(m.Player().String()),
		Notation: game.Notation(m),
	}
	if m.Player().IsWhite() {
		jm.MoveNumber = int(pos.MoveNumber())
	}

	switch mv := m.(type) {
	case *chess.StandardMove:
		jm.Kind = KindStandard
		jm.From = mv.From().String()
		jm.To = mv.To().String()
		jm.Piece = pieceTypeName(mv.Moving().Kind())
		if mv.IsCapture() {
			jm.Captured = pieceTypeName(mv.Captured().Kind())
		}
		if mv.IsPromotion() {
			jm.Promotion = pieceTypeName(mv.Promotion())
		}
	case *chess.CastlingMove:
		jm.Kind = KindCastling
		jm.From = mv.From().String()
		jm.To = mv.To().String()
		jm.Piece = pieceTypeName(chess.King)
	case *chess.PartialHiddenMove:
		jm.Kind = KindPartialHidden
		jm.To = mv.To().String()
		jm.Captured = pieceTypeName(mv.Captured().Kind())
	case *chess.HiddenMove:
		jm.Kind = KindHidden
	}
	return jm
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(k chess.PieceKind) string {
	if k == chess.NoKind {
		return ""
	}
	return strings.ToLower(k.String())
}
