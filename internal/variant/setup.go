package variant

import (
	"math/rand/v2"

	"github.com/lgbarn/wildchess-go/internal/chess"
	"github.com/lgbarn/wildchess-go/internal/engine"
)

// FixedFEN sets up the position described by fen.
func FixedFEN(fen string) Setup {
	return func(mod *chess.Modifier) error {
		return engine.ApplyFEN(mod, fen)
	}
}

// LexigraphicSetup places the pieces in lexigraphic notation, with White to
// move and the given castling rights.
func LexigraphicSetup(placement string, rights chess.CastlingRights) Setup {
	return func(mod *chess.Modifier) error {
		if err := engine.ApplyLexigraphic(mod, placement); err != nil {
			return err
		}
		mod.SetCastling(rights)
		return nil
	}
}

// BackRank is a white back rank, a-file first.
type BackRank [chess.BoardSize]chess.PieceKind

// ShuffledSetup places a freshly drawn back rank for White, mirrors it for
// Black, fills both pawn ranks and grants castling with the outermost rook
// on each side of the king.
func ShuffledSetup(draw func() BackRank) Setup {
	return func(mod *chess.Modifier) error {
		rank := draw()
		mod.Clear()
		rights := chess.NoCastling
		for _, player := range []chess.Player{chess.White, chess.Black} {
			king := -1
			for file, kind := range rank {
				sq, _ := chess.NewSquare(file, player.BackRank())
				mod.SetPieceAt(chess.NewPiece(player, kind), sq)
				pawn, _ := chess.NewSquare(file, pawnStartRank(player))
				mod.SetPieceAt(chess.NewPiece(player, chess.Pawn), pawn)
				if kind == chess.King {
					king = file
				}
			}
			for file, kind := range rank {
				if kind != chess.Rook {
					continue
				}
				if file < king && !rights.Has(player, chess.QueenWing) {
					rights = rights.With(player, chess.QueenWing, file)
				}
				if file > king {
					rights = rights.With(player, chess.KingWing, file)
				}
			}
		}
		mod.SetCastling(rights)
		return nil
	}
}

// intN draws from the shared goroutine-safe source.
var intN = rand.IntN

// placeRandom puts kind on a random empty file of rank, sampling until the
// drawn file is empty and passes accept.
func placeRandom(rank *BackRank, kind chess.PieceKind, accept func(file int) bool) {
	for {
		file := intN(chess.BoardSize)
		if rank[file] != chess.NoKind || (accept != nil && !accept(file)) {
			continue
		}
		rank[file] = kind
		return
	}
}

func darkFile(file int) bool  { return file%2 == 0 }
func lightFile(file int) bool { return file%2 == 1 }

// FischerRandomRank draws one of the 960 Chess960 back ranks: bishops on
// opposite colours and the king between the rooks.
func FischerRandomRank() BackRank {
	var rank BackRank
	placeRandom(&rank, chess.Bishop, darkFile)
	placeRandom(&rank, chess.Bishop, lightFile)
	placeRandom(&rank, chess.Queen, nil)
	placeRandom(&rank, chess.Knight, nil)
	placeRandom(&rank, chess.Knight, nil)
	// The three files left take rook, king, rook from the a-file on.
	next := []chess.PieceKind{chess.Rook, chess.King, chess.Rook}
	for file := range rank {
		if rank[file] == chess.NoKind {
			rank[file] = next[0]
			next = next[1:]
		}
	}
	return rank
}

// ShuffleBothRank draws a back rank with the rooks in the corners, the king
// on the d- or e-file and bishops on opposite colours.
func ShuffleBothRank() BackRank {
	var rank BackRank
	rank[fileA] = chess.Rook
	rank[fileH] = chess.Rook
	if intN(2) == 0 {
		rank[fileD] = chess.King
	} else {
		rank[fileE] = chess.King
	}
	placeRandom(&rank, chess.Bishop, darkFile)
	placeRandom(&rank, chess.Bishop, lightFile)
	placeRandom(&rank, chess.Queen, nil)
	placeRandom(&rank, chess.Knight, nil)
	placeRandom(&rank, chess.Knight, nil)
	return rank
}
