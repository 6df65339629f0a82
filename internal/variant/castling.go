package variant

import (
	"fmt"

	"github.com/lgbarn/wildchess-go/internal/chess"
	"github.com/lgbarn/wildchess-go/internal/engine"
	"github.com/lgbarn/wildchess-go/internal/errors"
)

// Topology decides where king and rook land when castling.
type Topology interface {
	// Destinations returns, for a king on kingFile, the wing short or long
	// castling heads to and the king's and rook's ending files. ok is false
	// when the king cannot castle that way from kingFile.
	Destinations(kingFile int, long bool) (wing chess.Wing, kingTo, rookTo int, ok bool)

	// KingTakesRook reports whether moving the king onto its own castling
	// rook denotes castling.
	KingTakesRook() bool
}

const (
	fileA = iota
	fileB
	fileC
	fileD
	fileE
	fileF
	fileG
	fileH
)

// StandardTopology castles a king on the e-file: short to g with the rook
// on f, long to c with the rook on d.
type StandardTopology struct{}

// Destinations implements Topology.
func (StandardTopology) Destinations(kingFile int, long bool) (chess.Wing, int, int, bool) {
	if kingFile != fileE {
		return chess.KingWing, 0, 0, false
	}
	if long {
		return chess.QueenWing, fileC, fileD, true
	}
	return chess.KingWing, fileG, fileF, true
}

// KingTakesRook implements Topology.
func (StandardTopology) KingTakesRook() bool { return false }

// BothSidesTopology castles a king on the e- or d-file. Short castling
// heads for the h-file from e and for the a-file from d, and the king ends
// two files away with the rook beside it.
type BothSidesTopology struct{}

// Destinations implements Topology.
func (BothSidesTopology) Destinations(kingFile int, long bool) (chess.Wing, int, int, bool) {
	switch kingFile {
	case fileE:
		return StandardTopology{}.Destinations(kingFile, long)
	case fileD:
		if long {
			return chess.KingWing, fileF, fileE, true
		}
		return chess.QueenWing, fileB, fileC, true
	}
	return chess.KingWing, 0, 0, false
}

// KingTakesRook implements Topology.
func (BothSidesTopology) KingTakesRook() bool { return false }

// FischerTopology castles a king from any file to the standard ending
// squares: g and f toward the h-file, c and d toward the a-file.
type FischerTopology struct{}

// Destinations implements Topology.
func (FischerTopology) Destinations(_ int, long bool) (chess.Wing, int, int, bool) {
	if long {
		return chess.QueenWing, fileC, fileD, true
	}
	return chess.KingWing, fileG, fileF, true
}

// KingTakesRook implements Topology.
func (FischerTopology) KingTakesRook() bool { return true }

// castlingPlan is a castling move worked out against a board.
type castlingPlan struct {
	kingFrom, kingTo chess.Square
	rookFrom, rookTo chess.Square
	wing             chess.Wing
	long             bool
}

// plan works out castling for player. It fails with ErrUnsupported when the
// variant has no castling and with ErrIllegalOperation when the right is
// gone, the pieces are missing or the path is blocked.
func (v *Variant) plan(board engine.Board, rights chess.CastlingRights, player chess.Player, long bool) (castlingPlan, error) {
	kind := "short"
	if long {
		kind = "long"
	}
	if v.topology == nil {
		return castlingPlan{}, fmt.Errorf("%s: %s castling: %w", v.name, kind, errors.ErrUnsupported)
	}
	fail := func(reason string) (castlingPlan, error) {
		return castlingPlan{}, fmt.Errorf("%s: %s %s castling: %s: %w", v.name, player, kind, reason, errors.ErrIllegalOperation)
	}

	rank := player.BackRank()
	kingFrom := backRankKing(board, player)
	if !kingFrom.IsValid() {
		return fail("no king on the back rank")
	}
	wing, kingToFile, rookToFile, ok := v.topology.Destinations(kingFrom.File(), long)
	if !ok {
		return fail("king not on a castling file")
	}
	if !rights.Has(player, wing) {
		return fail("no castling right")
	}
	rookFile := rights.RookFile(player, wing)
	if (rookFile-kingFrom.File())*wing.Direction() <= 0 {
		return fail("rook not beside the king's wing")
	}
	rookFrom, _ := chess.NewSquare(rookFile, rank)
	if !board.PieceAt(rookFrom).Is(player, chess.Rook) {
		return fail("castling rook missing")
	}

	p := castlingPlan{wing: wing, long: long, kingFrom: kingFrom, rookFrom: rookFrom}
	p.kingTo, _ = chess.NewSquare(kingToFile, rank)
	p.rookTo, _ = chess.NewSquare(rookToFile, rank)

	if !engine.IsPathClear(board, kingFrom, rookFrom) {
		return fail("pieces between king and rook")
	}
	// Every square the king or rook crosses or lands on must be empty apart
	// from the two castling pieces.
	spans := [][]chess.Square{
		engine.RankSpan(rank, kingFrom.File(), kingToFile),
		engine.RankSpan(rank, rookFile, rookToFile),
	}
	for _, span := range spans {
		for _, sq := range span {
			if sq == kingFrom || sq == rookFrom {
				continue
			}
			if board.PieceAt(sq) != chess.NoPiece {
				return fail("path blocked at " + sq.String())
			}
		}
	}
	return p, nil
}

// backRankKing returns the square of player's king on its back rank, or
// NoSquare.
func backRankKing(board engine.Board, player chess.Player) chess.Square {
	king := chess.NewPiece(player, chess.King)
	for file := 0; file < chess.BoardSize; file++ {
		sq, _ := chess.NewSquare(file, player.BackRank())
		if board.PieceAt(sq) == king {
			return sq
		}
	}
	return chess.NoSquare
}

// IsShortCastling reports whether from-to denotes short castling.
func (v *Variant) IsShortCastling(pos *chess.Position, from, to chess.Square, promotion chess.PieceKind) (bool, error) {
	return v.isCastling(pos, from, to, promotion, false)
}

// IsLongCastling reports whether from-to denotes long castling.
func (v *Variant) IsLongCastling(pos *chess.Position, from, to chess.Square, promotion chess.PieceKind) (bool, error) {
	return v.isCastling(pos, from, to, promotion, true)
}

// isCastling matches a king move against the castling plan. The king may
// name its ending square or, where the topology allows it, its own rook.
// A one-square king step onto the ending square stays an ordinary move.
func (v *Variant) isCastling(pos *chess.Position, from, to chess.Square, promotion chess.PieceKind, long bool) (bool, error) {
	if err := v.checkPosition(pos); err != nil {
		return false, err
	}
	if promotion != chess.NoKind || v.topology == nil {
		return false, nil
	}
	player := pos.CurrentPlayer()
	if !pos.PieceAt(from).Is(player, chess.King) {
		return false, nil
	}
	p, err := v.plan(pos, pos.Castling(), player, long)
	if err != nil || from != p.kingFrom {
		return false, nil
	}
	if v.topology.KingTakesRook() && to == p.rookFrom {
		return true, nil
	}
	return to == p.kingTo && !isKingStep(from, to), nil
}

func isKingStep(from, to chess.Square) bool {
	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()
	return df >= -1 && df <= 1 && dr >= -1 && dr <= 1
}

// CreateShortCastling returns short castling for the side to move.
func (v *Variant) CreateShortCastling(pos *chess.Position) (*chess.CastlingMove, error) {
	return v.createCastling(pos, false)
}

// CreateLongCastling returns long castling for the side to move.
func (v *Variant) CreateLongCastling(pos *chess.Position) (*chess.CastlingMove, error) {
	return v.createCastling(pos, true)
}

func (v *Variant) createCastling(pos *chess.Position, long bool) (*chess.CastlingMove, error) {
	if err := v.checkPosition(pos); err != nil {
		return nil, err
	}
	player := pos.CurrentPlayer()
	p, err := v.plan(pos, pos.Castling(), player, long)
	if err != nil {
		return nil, err
	}
	return chess.NewCastlingMove(v, player, p.kingFrom, p.kingTo, p.rookFrom, p.rookTo, p.wing, p.long)
}
