package variant

import (
	"github.com/lgbarn/wildchess-go/internal/chess"
	"github.com/lgbarn/wildchess-go/internal/engine"
)

// TargetFunc returns the squares the piece on from could move to, ignoring
// check. The piece's owner is the mover, whoever is to move.
type TargetFunc func(v *Variant, pos *chess.Position, from chess.Square) []chess.Square

// Geometry holds one TargetFunc per piece kind.
type Geometry struct {
	Pawn   TargetFunc
	Knight TargetFunc
	Bishop TargetFunc
	Rook   TargetFunc
	Queen  TargetFunc
	King   TargetFunc
}

// StandardGeometry returns orthodox chess piece movement.
func StandardGeometry() Geometry {
	return Geometry{
		Pawn:   standardPawnTargets,
		Knight: stepper(engine.KnightOffsets),
		Bishop: slider(engine.DiagonalDirections),
		Rook:   slider(engine.OrthogonalDirections),
		Queen:  slider(append(append([]engine.Offset{}, engine.OrthogonalDirections...), engine.DiagonalDirections...)),
		King:   stepper(engine.KingOffsets),
	}
}

func (g Geometry) merge(o Geometry) Geometry {
	for _, pair := range []struct {
		dst *TargetFunc
		src TargetFunc
	}{
		{&g.Pawn, o.Pawn},
		{&g.Knight, o.Knight},
		{&g.Bishop, o.Bishop},
		{&g.Rook, o.Rook},
		{&g.Queen, o.Queen},
		{&g.King, o.King},
	} {
		if pair.src != nil {
			*pair.dst = pair.src
		}
	}
	return g
}

func (g Geometry) forKind(kind chess.PieceKind) TargetFunc {
	switch kind {
	case chess.Pawn:
		return g.Pawn
	case chess.Knight:
		return g.Knight
	case chess.Bishop:
		return g.Bishop
	case chess.Rook:
		return g.Rook
	case chess.Queen:
		return g.Queen
	case chess.King:
		return g.King
	}
	return nil
}

func stepper(offsets []engine.Offset) TargetFunc {
	return func(_ *Variant, pos *chess.Position, from chess.Square) []chess.Square {
		return engine.Steps(pos, from, pos.PieceAt(from).Player(), offsets)
	}
}

func slider(directions []engine.Offset) TargetFunc {
	return func(_ *Variant, pos *chess.Position, from chess.Square) []chess.Square {
		return engine.Slides(pos, from, pos.PieceAt(from).Player(), directions)
	}
}

// standardPawnTargets covers single and double advances, diagonal captures
// and en passant.
func standardPawnTargets(_ *Variant, pos *chess.Position, from chess.Square) []chess.Square {
	pawn := pos.PieceAt(from)
	player := pawn.Player()
	dir := player.PawnDirection()

	var targets []chess.Square
	if one, ok := from.Offset(0, dir); ok && pos.PieceAt(one) == chess.NoPiece {
		targets = append(targets, one)
		if two, ok := one.Offset(0, dir); ok && isDoublePushGeometry(pos, from, two) {
			targets = append(targets, two)
		}
	}
	for _, df := range []int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		victim := pos.PieceAt(to)
		if victim != chess.NoPiece && !victim.BelongsTo(player) {
			targets = append(targets, to)
			continue
		}
		if isEnPassantGeometry(pos, from, to) {
			targets = append(targets, to)
		}
	}
	return targets
}

// pawnStartRank returns the rank a player's pawns double-step from.
func pawnStartRank(player chess.Player) int {
	return player.BackRank() + player.PawnDirection()
}

// pawnPromotionRank returns the rank a player's pawns promote on.
func pawnPromotionRank(player chess.Player) int {
	return player.Opponent().BackRank()
}

// isDoublePushGeometry reports whether from-to is a two-square advance from
// the start rank over an empty square onto an empty square.
func isDoublePushGeometry(pos *chess.Position, from, to chess.Square) bool {
	pawn := pos.PieceAt(from)
	if pawn.Kind() != chess.Pawn {
		return false
	}
	player := pawn.Player()
	dir := player.PawnDirection()
	if from.Rank() != pawnStartRank(player) || to.File() != from.File() || to.Rank() != from.Rank()+2*dir {
		return false
	}
	mid, _ := from.Offset(0, dir)
	return pos.PieceAt(mid) == chess.NoPiece && pos.PieceAt(to) == chess.NoPiece
}

// isEnPassantGeometry reports whether from-to captures a pawn that just
// double-stepped past to.
func isEnPassantGeometry(pos *chess.Position, from, to chess.Square) bool {
	pawn := pos.PieceAt(from)
	if pawn.Kind() != chess.Pawn {
		return false
	}
	player := pawn.Player()
	if player != pos.CurrentPlayer() || pos.EnPassantFile() == chess.NoFile {
		return false
	}
	dir := player.PawnDirection()
	df := to.File() - from.File()
	if (df != 1 && df != -1) || to.Rank() != from.Rank()+dir || to.File() != pos.EnPassantFile() {
		return false
	}
	// The double-stepped pawn stands beside the capturer, two ranks past
	// its own start rank.
	if from.Rank() != pawnStartRank(player.Opponent())+2*player.Opponent().PawnDirection() {
		return false
	}
	if pos.PieceAt(to) != chess.NoPiece {
		return false
	}
	victim, _ := chess.NewSquare(to.File(), from.Rank())
	return pos.PieceAt(victim).Is(player.Opponent(), chess.Pawn)
}

// enPassantVictim returns the square of the pawn an en passant capture from-to removes.
func enPassantVictim(from, to chess.Square) chess.Square {
	sq, _ := chess.NewSquare(to.File(), from.Rank())
	return sq
}

func (v *Variant) targets(pos *chess.Position, from chess.Square, kind chess.PieceKind) ([]chess.Square, error) {
	if err := v.checkPosition(pos); err != nil {
		return nil, err
	}
	piece := pos.PieceAt(from)
	if piece == chess.NoPiece || (kind != chess.NoKind && piece.Kind() != kind) {
		return nil, nil
	}
	fn := v.geometry.forKind(piece.Kind())
	if fn == nil {
		return nil, nil
	}
	return fn(v, pos, from), nil
}

// TargetSquares returns where the piece on from could move, ignoring check.
// Castling is not included. An empty square yields no targets.
func (v *Variant) TargetSquares(pos *chess.Position, from chess.Square) ([]chess.Square, error) {
	return v.targets(pos, from, chess.NoKind)
}

// PawnTargets returns the targets of the pawn on from.
func (v *Variant) PawnTargets(pos *chess.Position, from chess.Square) ([]chess.Square, error) {
	return v.targets(pos, from, chess.Pawn)
}

// KnightTargets returns the targets of the knight on from.
func (v *Variant) KnightTargets(pos *chess.Position, from chess.Square) ([]chess.Square, error) {
	return v.targets(pos, from, chess.Knight)
}

// BishopTargets returns the targets of the bishop on from.
func (v *Variant) BishopTargets(pos *chess.Position, from chess.Square) ([]chess.Square, error) {
	return v.targets(pos, from, chess.Bishop)
}

// RookTargets returns the targets of the rook on from.
func (v *Variant) RookTargets(pos *chess.Position, from chess.Square) ([]chess.Square, error) {
	return v.targets(pos, from, chess.Rook)
}

// QueenTargets returns the targets of the queen on from.
func (v *Variant) QueenTargets(pos *chess.Position, from chess.Square) ([]chess.Square, error) {
	return v.targets(pos, from, chess.Queen)
}

// KingTargets returns the targets of the king on from.
func (v *Variant) KingTargets(pos *chess.Position, from chess.Square) ([]chess.Square, error) {
	return v.targets(pos, from, chess.King)
}

// IsEnPassant reports whether from-to is an en passant capture this
// variant's pawns may make.
func (v *Variant) IsEnPassant(pos *chess.Position, from, to chess.Square) (bool, error) {
	return v.pawnPredicate(pos, from, to, isEnPassantGeometry)
}

// IsDoublePush reports whether from-to is a two-square advance this
// variant's pawns may make.
func (v *Variant) IsDoublePush(pos *chess.Position, from, to chess.Square) (bool, error) {
	return v.pawnPredicate(pos, from, to, isDoublePushGeometry)
}

func (v *Variant) pawnPredicate(pos *chess.Position, from, to chess.Square, pred func(*chess.Position, chess.Square, chess.Square) bool) (bool, error) {
	if err := v.checkPosition(pos); err != nil {
		return false, err
	}
	if !pred(pos, from, to) {
		return false, nil
	}
	targets, err := v.PawnTargets(pos, from)
	if err != nil {
		return false, err
	}
	return engine.Contains(targets, to), nil
}
