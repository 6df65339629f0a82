package variant

import (
	"github.com/lgbarn/wildchess-go/internal/chess"
)

// Promotion lists the kinds a pawn may promote to, in preference order.
type Promotion []chess.PieceKind

// Promotion policies.
var (
	StandardPromotion = Promotion{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}
	GiveawayPromotion = Promotion{chess.Queen, chess.Rook, chess.Bishop, chess.Knight, chess.King}
	ShatranjPromotion = Promotion{chess.Queen}
)

// allows reports whether kind is in the policy.
func (p Promotion) allows(kind chess.PieceKind) bool {
	for _, k := range p {
		if k == kind {
			return true
		}
	}
	return false
}

// pieces returns the policy's kinds as player's pieces.
func (p Promotion) pieces(player chess.Player) []chess.Piece {
	out := make([]chess.Piece, len(p))
	for i, kind := range p {
		out[i] = chess.NewPiece(player, kind)
	}
	return out
}

// isPromotion reports whether the pawn on from reaches its last rank on to.
func isPromotion(pos *chess.Position, from, to chess.Square) bool {
	piece := pos.PieceAt(from)
	return piece.Kind() == chess.Pawn && to.Rank() == pawnPromotionRank(piece.Player())
}

// PromotionTargets returns the pieces a pawn moving from-to may become, in
// preference order, or nil when the move is not a promotion.
func (v *Variant) PromotionTargets(pos *chess.Position, from, to chess.Square) ([]chess.Piece, error) {
	if err := v.checkPosition(pos); err != nil {
		return nil, err
	}
	if !isPromotion(pos, from, to) {
		return nil, nil
	}
	return v.promotion.pieces(pos.PieceAt(from).Player()), nil
}
