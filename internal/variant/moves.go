package variant

import (
	"fmt"

	"github.com/lgbarn/wildchess-go/internal/chess"
	"github.com/lgbarn/wildchess-go/internal/engine"
	"github.com/lgbarn/wildchess-go/internal/errors"
)

// CreateMove validates a move of the side to move and classifies it as
// castling or as a standard move with its capture, promotion, double-push
// and en passant facts filled in. The king may castle by naming its ending
// square, or its own rook where the topology allows. Promotions must name
// their piece.
func (v *Variant) CreateMove(pos *chess.Position, from, to chess.Square, promotion chess.PieceKind) (chess.Move, error) {
	if err := v.checkPosition(pos); err != nil {
		return nil, err
	}
	if !from.IsValid() || !to.IsValid() {
		return nil, fmt.Errorf("move %s-%s: %w", from, to, errors.ErrInvalidSquare)
	}
	player := pos.CurrentPlayer()
	moving := pos.PieceAt(from)
	if !moving.BelongsTo(player) {
		return nil, fmt.Errorf("%s: no %s piece on %s: %w", v.name, player, from, errors.ErrIllegalMove)
	}

	for _, long := range []bool{false, true} {
		castling, err := v.isCastling(pos, from, to, promotion, long)
		if err != nil {
			return nil, err
		}
		if castling {
			return v.createCastling(pos, long)
		}
	}

	targets, err := v.TargetSquares(pos, from)
	if err != nil {
		return nil, err
	}
	if !engine.Contains(targets, to) {
		return nil, fmt.Errorf("%s: %s cannot move %s-%s: %w", v.name, moving, from, to, errors.ErrIllegalMove)
	}

	var d chess.StandardDetails
	if isPromotion(pos, from, to) {
		if promotion == chess.NoKind {
			return nil, fmt.Errorf("%s: %s-%s needs a promotion piece: %w", v.name, from, to, errors.ErrIllegalMove)
		}
		if !v.promotion.allows(promotion) {
			return nil, fmt.Errorf("%s: cannot promote to %s: %w", v.name, promotion, errors.ErrIllegalMove)
		}
		d.Promotion = promotion
	} else if promotion != chess.NoKind {
		return nil, fmt.Errorf("%s: %s-%s is not a promotion: %w", v.name, from, to, errors.ErrIllegalMove)
	}

	if d.EnPassant, err = v.IsEnPassant(pos, from, to); err != nil {
		return nil, err
	}
	if d.DoublePush, err = v.IsDoublePush(pos, from, to); err != nil {
		return nil, err
	}
	if d.EnPassant {
		d.CaptureSquare = enPassantVictim(from, to)
		d.Captured = pos.PieceAt(d.CaptureSquare)
	} else {
		d.Captured = pos.PieceAt(to)
	}
	return chess.NewStandardMove(v, player, from, to, moving, d)
}

// CreateHiddenMove returns a fully hidden move for the side to move.
// Only variants with hidden moves support it.
func (v *Variant) CreateHiddenMove(pos *chess.Position) (*chess.HiddenMove, error) {
	if err := v.checkPosition(pos); err != nil {
		return nil, err
	}
	if !v.hiddenMoves {
		return nil, fmt.Errorf("%s: hidden moves: %w", v.name, errors.ErrUnsupported)
	}
	return chess.NewHiddenMove(v, pos.CurrentPlayer()), nil
}

// CreatePartialHiddenMove returns an unseen capture on sq by the side to
// move. The square must hold a piece of the opponent.
func (v *Variant) CreatePartialHiddenMove(pos *chess.Position, sq chess.Square) (*chess.PartialHiddenMove, error) {
	if err := v.checkPosition(pos); err != nil {
		return nil, err
	}
	if !v.hiddenMoves {
		return nil, fmt.Errorf("%s: hidden moves: %w", v.name, errors.ErrUnsupported)
	}
	player := pos.CurrentPlayer()
	captured := pos.PieceAt(sq)
	if captured.BelongsTo(player) {
		return nil, fmt.Errorf("%s: hidden capture of own piece on %s: %w", v.name, sq, errors.ErrIllegalMove)
	}
	return chess.NewPartialHiddenMove(v, player, sq, captured)
}

// MakeMove applies m through mod, then runs the variant's after-move effects.
func (v *Variant) MakeMove(m chess.Move, pos *chess.Position, mod *chess.Modifier) error {
	if err := v.checkPosition(pos); err != nil {
		return err
	}
	if m.Player() != mod.CurrentPlayer() {
		return fmt.Errorf("%s: %s move with %s to move: %w", v.name, m.Player(), mod.CurrentPlayer(), errors.ErrIllegalMove)
	}

	var err error
	switch mv := m.(type) {
	case *chess.StandardMove:
		err = applyStandard(mv, mod)
	case *chess.CastlingMove:
		err = applyCastling(mv, mod)
	case *chess.HiddenMove:
		err = v.applyHidden(mod)
	case *chess.PartialHiddenMove:
		if err = v.applyHidden(mod); err == nil {
			applyHiddenCapture(mv, mod)
		}
	default:
		err = fmt.Errorf("%s: unknown move type %T: %w", v.name, m, errors.ErrIllegalMove)
	}
	if err != nil {
		return err
	}

	for _, effect := range v.effects {
		effect(m, mod)
	}
	mod.EndTurn()
	return nil
}

func applyStandard(m *chess.StandardMove, mod *chess.Modifier) error {
	from, to := m.From(), m.To()
	moving := mod.PieceAt(from)
	if moving != m.Moving() {
		return fmt.Errorf("move %s: %s stands on %s: %w", m, moving, from, errors.ErrIllegalMove)
	}
	player := moving.Player()

	mod.SetPieceAt(chess.NoPiece, from)
	if m.IsEnPassant() {
		mod.SetPieceAt(chess.NoPiece, m.CaptureSquare())
	}
	placed := moving
	if m.IsPromotion() {
		placed = chess.NewPiece(player, m.Promotion())
	}
	mod.SetPieceAt(placed, to)

	if moving.Kind() == chess.King && from.Rank() == player.BackRank() {
		mod.SetCastling(mod.Castling().WithoutPlayer(player))
	}
	revokeRookRights(mod, from)
	revokeRookRights(mod, to)

	if m.IsDoublePush() {
		mod.SetEnPassantFile(from.File())
	} else {
		mod.SetEnPassantFile(chess.NoFile)
	}

	if moving.Kind() == chess.Pawn || m.IsCapture() {
		mod.SetHalfmoveClock(0)
	} else {
		mod.SetHalfmoveClock(mod.HalfmoveClock() + 1)
	}
	return nil
}

func applyCastling(m *chess.CastlingMove, mod *chess.Modifier) error {
	player := m.Player()
	king := mod.PieceAt(m.From())
	rook := mod.PieceAt(m.RookFrom())
	if !king.Is(player, chess.King) || !rook.Is(player, chess.Rook) {
		return fmt.Errorf("%s castling: king or rook missing: %w", player, errors.ErrIllegalMove)
	}

	mod.SetPieceAt(chess.NoPiece, m.From())
	mod.SetPieceAt(chess.NoPiece, m.RookFrom())
	mod.SetPieceAt(king, m.To())
	mod.SetPieceAt(rook, m.RookTo())

	mod.SetCastling(mod.Castling().WithoutPlayer(player))
	mod.SetEnPassantFile(chess.NoFile)
	mod.SetHalfmoveClock(mod.HalfmoveClock() + 1)
	return nil
}

// applyHidden records that an unseen move was made. Nothing is known about
// a double step, so the en passant file is cleared.
func (v *Variant) applyHidden(mod *chess.Modifier) error {
	if !v.hiddenMoves {
		return fmt.Errorf("%s: hidden moves: %w", v.name, errors.ErrUnsupported)
	}
	mod.SetEnPassantFile(chess.NoFile)
	mod.SetHalfmoveClock(mod.HalfmoveClock() + 1)
	return nil
}

func applyHiddenCapture(m *chess.PartialHiddenMove, mod *chess.Modifier) {
	mod.SetPieceAt(chess.NoPiece, m.To())
	revokeRookRights(mod, m.To())
	mod.SetHalfmoveClock(0)
}

// revokeRookRights drops any castling right whose rook stands on sq.
func revokeRookRights(mod *chess.Modifier, sq chess.Square) {
	rights := mod.Castling()
	for _, player := range []chess.Player{chess.White, chess.Black} {
		if sq.Rank() != player.BackRank() {
			continue
		}
		for _, wing := range []chess.Wing{chess.KingWing, chess.QueenWing} {
			if rights.Has(player, wing) && rights.RookFile(player, wing) == sq.File() {
				mod.RevokeCastling(player, wing)
			}
		}
	}
}
