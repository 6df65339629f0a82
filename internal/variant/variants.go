package variant

import (
	"github.com/lgbarn/wildchess-go/internal/chess"
	"github.com/lgbarn/wildchess-go/internal/engine"
)

// Canonical variant names.
const (
	NameChess             = "chess"
	NameAtomic            = "atomic"
	NameFischerRandom     = "fischerrandom"
	NameGiveaway          = "giveaway"
	NameKriegspiel        = "kriegspiel"
	NameShatranj          = "shatranj"
	NameBothSidesCastling = "bothsidescastling"
	NameNoCastling        = "nocastling"
	NameShuffleBoth       = "shuffleboth"
)

// noCastlingFEN is the standard array without castling rights.
const noCastlingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// Chess returns orthodox chess.
func Chess() *Variant {
	return New(NameChess)
}

// Atomic returns atomic chess: every capture explodes the capturing piece
// and all non-pawn pieces around the capture square.
func Atomic() *Variant {
	return New(NameAtomic, WithEffect(Explode))
}

// FischerRandom returns Chess960.
func FischerRandom() *Variant {
	return New(NameFischerRandom,
		WithSetup(ShuffledSetup(FischerRandomRank)),
		WithTopology(FischerTopology{}),
	)
}

// Giveaway returns giveaway chess, where pawns may also promote to a king.
func Giveaway() *Variant {
	return New(NameGiveaway, WithPromotion(GiveawayPromotion))
}

// Kriegspiel returns Kriegspiel, where the opponent's moves may be hidden.
func Kriegspiel() *Variant {
	return New(NameKriegspiel,
		WithSetup(LexigraphicSetup(chess.InitialPositionLexigraphic, chess.StandardCastling())),
		WithHiddenMoves(),
	)
}

func noCastlingOptions() []Option {
	return []Option{
		WithSetup(FixedFEN(noCastlingFEN)),
		WithTopology(nil),
	}
}

// NoCastling returns chess without castling.
func NoCastling() *Variant {
	return New(NameNoCastling, noCastlingOptions()...)
}

// Shatranj returns the old Persian game: no castling, no double step or en
// passant, the queen slot holds a fers moving one square diagonally, the
// bishop slot an elephant jumping two squares diagonally, and pawns promote
// to fers only.
func Shatranj() *Variant {
	opts := append(noCastlingOptions(),
		WithGeometry(Geometry{
			Pawn:   shatranjPawnTargets,
			Bishop: stepper(elephantOffsets),
			Queen:  stepper(engine.DiagonalDirections),
		}),
		WithPromotion(ShatranjPromotion),
	)
	return New(NameShatranj, opts...)
}

var elephantOffsets = []engine.Offset{
	engine.DiagonalDirections[0].Scale(2),
	engine.DiagonalDirections[1].Scale(2),
	engine.DiagonalDirections[2].Scale(2),
	engine.DiagonalDirections[3].Scale(2),
}

// shatranjPawnTargets drops the double step and en passant from the
// orthodox pawn moves.
func shatranjPawnTargets(v *Variant, pos *chess.Position, from chess.Square) []chess.Square {
	var targets []chess.Square
	for _, to := range standardPawnTargets(v, pos, from) {
		if isDoublePushGeometry(pos, from, to) || isEnPassantGeometry(pos, from, to) {
			continue
		}
		targets = append(targets, to)
	}
	return targets
}

func bothSidesOptions() []Option {
	return []Option{WithTopology(BothSidesTopology{})}
}

// BothSidesCastling returns chess where a king on the d-file castles too,
// mirroring the e-file king.
func BothSidesCastling() *Variant {
	return New(NameBothSidesCastling, bothSidesOptions()...)
}

// ShuffleBoth returns both-sides castling from a shuffled back rank with
// corner rooks and the king on d or e.
func ShuffleBoth() *Variant {
	opts := append(bothSidesOptions(), WithSetup(ShuffledSetup(ShuffleBothRank)))
	return New(NameShuffleBoth, opts...)
}

// Explode is the atomic capture effect. The capturing piece and every
// non-pawn piece on the eight surrounding squares leave the board, and
// castling rights tied to exploded rooks or kings are revoked.
func Explode(m chess.Move, mod *chess.Modifier) {
	if !m.IsCapture() {
		return
	}
	center := m.To()
	for _, o := range engine.KingOffsets {
		sq, ok := center.Offset(o.DF, o.DR)
		if !ok {
			continue
		}
		piece := mod.PieceAt(sq)
		if piece == chess.NoPiece || piece.Kind() == chess.Pawn {
			continue
		}
		blast(mod, sq, piece)
	}
	blast(mod, center, mod.PieceAt(center))
}

func blast(mod *chess.Modifier, sq chess.Square, piece chess.Piece) {
	mod.SetPieceAt(chess.NoPiece, sq)
	if piece.Kind() == chess.King {
		mod.SetCastling(mod.Castling().WithoutPlayer(piece.Player()))
	}
	revokeRookRights(mod, sq)
}
