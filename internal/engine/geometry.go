package engine

import "github.com/lgbarn/wildchess-go/internal/chess"

// Board is read access to a placement. Both *chess.Position and
// *chess.Modifier satisfy it.
type Board interface {
	PieceAt(sq chess.Square) chess.Piece
}

// Offset is a (file, rank) displacement.
type Offset struct {
	DF, DR int
}

// Movement offsets shared by the variants.
var (
	KnightOffsets = []Offset{
		{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	KingOffsets = []Offset{
		{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	}
	DiagonalDirections   = []Offset{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	OrthogonalDirections = []Offset{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
)

// Scale returns the offset multiplied by n.
func (o Offset) Scale(n int) Offset {
	return Offset{DF: o.DF * n, DR: o.DR * n}
}

// Steps returns the squares one offset away from `from` that are empty or
// hold an opponent piece of mover. Nothing between is examined, so it also
// serves for jumping pieces.
func Steps(board Board, from chess.Square, mover chess.Player, offsets []Offset) []chess.Square {
	var targets []chess.Square
	for _, o := range offsets {
		sq, ok := from.Offset(o.DF, o.DR)
		if !ok {
			continue
		}
		if board.PieceAt(sq).BelongsTo(mover) {
			continue
		}
		targets = append(targets, sq)
	}
	return targets
}

// Slides returns the squares reachable by sliding along each direction until
// the edge, stopping before an own piece and on an opponent piece.
func Slides(board Board, from chess.Square, mover chess.Player, directions []Offset) []chess.Square {
	var targets []chess.Square
	for _, d := range directions {
		sq := from
		for {
			next, ok := sq.Offset(d.DF, d.DR)
			if !ok {
				break
			}
			piece := board.PieceAt(next)
			if piece.BelongsTo(mover) {
				break
			}
			targets = append(targets, next)
			if piece != chess.NoPiece {
				break
			}
			sq = next
		}
	}
	return targets
}

// Between returns the squares strictly between two squares on one rank,
// file or diagonal, or nil when they are not aligned.
func Between(from, to chess.Square) []chess.Square {
	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()
	if df != 0 && dr != 0 && abs(df) != abs(dr) {
		return nil
	}
	stepF, stepR := sign(df), sign(dr)
	var squares []chess.Square
	sq, ok := from.Offset(stepF, stepR)
	for ok && sq != to {
		squares = append(squares, sq)
		sq, ok = sq.Offset(stepF, stepR)
	}
	return squares
}

// IsPathClear reports whether every square strictly between from and to is empty.
func IsPathClear(board Board, from, to chess.Square) bool {
	for _, sq := range Between(from, to) {
		if board.PieceAt(sq) != chess.NoPiece {
			return false
		}
	}
	return true
}

// RankSpan returns the squares of one rank from file a to file b inclusive,
// in either order.
func RankSpan(rank, a, b int) []chess.Square {
	if a > b {
		a, b = b, a
	}
	squares := make([]chess.Square, 0, b-a+1)
	for file := a; file <= b; file++ {
		sq, err := chess.NewSquare(file, rank)
		if err == nil {
			squares = append(squares, sq)
		}
	}
	return squares
}

// Contains reports whether sq is in squares.
func Contains(squares []chess.Square, sq chess.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
