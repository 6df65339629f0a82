package game

import (
	"fmt"
	"strings"

	"github.com/lgbarn/wildchess-go/internal/chess"
	"github.com/lgbarn/wildchess-go/internal/errors"
	"github.com/lgbarn/wildchess-go/internal/variant"
)

// Move text forms understood by Decode.
const (
	HiddenText          = "?"
	HiddenCapturePrefix = "?x"
)

// Decode turns move text into a move for pos. It accepts coordinate moves
// ("e2e4", "e7e8q", "e7e8=Q", "e2-e4"), castling ("O-O", "O-O-O" and the
// zero-digit forms) and the Kriegspiel forms "?" and "?x<square>". Check
// and mate suffixes are ignored.
func Decode(v variant.WildVariant, pos *chess.Position, text string) (chess.Move, error) {
	s := strings.TrimRight(strings.TrimSpace(text), "+#!?")
	if s == "" && strings.Contains(text, HiddenText) {
		s = HiddenText
	}

	switch {
	case s == HiddenText:
		return v.CreateHiddenMove(pos)
	case strings.HasPrefix(s, HiddenCapturePrefix):
		sq, err := chess.ParseSquare(s[len(HiddenCapturePrefix):])
		if err != nil {
			return nil, err
		}
		return v.CreatePartialHiddenMove(pos, sq)
	case s == "O-O" || s == "0-0":
		return v.CreateShortCastling(pos)
	case s == "O-O-O" || s == "0-0-0":
		return v.CreateLongCastling(pos)
	}

	from, to, promotion, err := parseCoordinate(s)
	if err != nil {
		return nil, err
	}
	return v.CreateMove(pos, from, to, promotion)
}

func parseCoordinate(s string) (from, to chess.Square, promotion chess.PieceKind, err error) {
	fail := func(got string) error {
		return &errors.ParseError{Err: errors.ErrParseFailure, Expected: "coordinate move", Got: fmt.Sprintf("%q", got)}
	}
	compact := strings.NewReplacer("-", "", "x", "", "=", "").Replace(s)
	if len(compact) != 4 && len(compact) != 5 {
		return chess.NoSquare, chess.NoSquare, chess.NoKind, fail(s)
	}
	if from, err = chess.ParseSquare(compact[0:2]); err != nil {
		return chess.NoSquare, chess.NoSquare, chess.NoKind, err
	}
	if to, err = chess.ParseSquare(compact[2:4]); err != nil {
		return chess.NoSquare, chess.NoSquare, chess.NoKind, err
	}
	promotion = chess.NoKind
	if len(compact) == 5 {
		promotion = chess.KindFromLetter(compact[4])
		if promotion == chess.NoKind || promotion == chess.Pawn {
			return chess.NoSquare, chess.NoSquare, chess.NoKind,
				fmt.Errorf("promotion %q: %w", compact[4:], errors.ErrInvalidPiece)
		}
	}
	return from, to, promotion, nil
}

// Notation returns the text Decode reads back as m: coordinates for
// standard moves, O-O or O-O-O for castling, and the Kriegspiel forms for
// hidden moves.
func Notation(m chess.Move) string {
	switch m := m.(type) {
	case *chess.StandardMove:
		return m.UCI()
	case *chess.CastlingMove:
		return m.String()
	case *chess.HiddenMove:
		return HiddenText
	case *chess.PartialHiddenMove:
		return HiddenCapturePrefix + m.To().String()
	}
	return ""
}
