package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/wildchess-go/internal/chess"
)

// zobristSeed fixes the key tables so hashes are stable across runs.
const zobristSeed = 0x77696c6463686573

const numPieceValues = int(chess.NumPieceKinds) << chess.PieceShift

type zobristKeys struct {
	pieces    [numPieceValues][chess.NumSquares]uint64
	black     uint64
	castling  [2][2][chess.BoardSize]uint64
	enPassant [chess.BoardSize]uint64
}

var keys = newZobristKeys()

func newZobristKeys() *zobristKeys {
	r := rand.New(rand.NewPCG(zobristSeed, zobristSeed>>1))
	k := &zobristKeys{black: r.Uint64()}
	for p := range k.pieces {
		for sq := range k.pieces[p] {
			k.pieces[p][sq] = r.Uint64()
		}
	}
	for player := range k.castling {
		for wing := range k.castling[player] {
			for file := range k.castling[player][wing] {
				k.castling[player][wing][file] = r.Uint64()
			}
		}
	}
	for file := range k.enPassant {
		k.enPassant[file] = r.Uint64()
	}
	return k
}

// GenerateZobristHash returns the Zobrist key of a position: placement,
// side to move, castling rook files and the en passant file when a capture
// there is possible. The clocks are not part of the key.
func GenerateZobristHash(st chess.State) uint64 {
	var hash uint64
	for sq, piece := range st.Squares {
		if piece != chess.NoPiece {
			hash ^= keys.pieces[piece][sq]
		}
	}
	if st.ToMove == chess.Black {
		hash ^= keys.black
	}
	for _, player := range []chess.Player{chess.White, chess.Black} {
		for _, wing := range []chess.Wing{chess.KingWing, chess.QueenWing} {
			if st.Castling.Has(player, wing) {
				hash ^= keys.castling[player][wing][st.Castling.RookFile(player, wing)]
			}
		}
	}
	if enPassantCapturable(st) {
		hash ^= keys.enPassant[st.EnPassantFile]
	}
	return hash
}

// enPassantCapturable reports whether a pawn of the side to move stands
// beside the pawn that just made a double step.
func enPassantCapturable(st chess.State) bool {
	if st.EnPassantFile == chess.NoFile {
		return false
	}
	rank := 3
	if st.ToMove == chess.White {
		rank = 4
	}
	capturer := chess.NewPiece(st.ToMove, chess.Pawn)
	for _, df := range []int{-1, 1} {
		file := st.EnPassantFile + df
		if file >= 0 && file < chess.BoardSize && st.Squares[rank*chess.BoardSize+file] == capturer {
			return true
		}
	}
	return false
}

// WeakHash is a cheap placement-only checksum used to confirm Zobrist
// matches.
func WeakHash(st chess.State) uint64 {
	var hash uint64
	for sq, piece := range st.Squares {
		hash = hash*31 + uint64(piece)*uint64(sq+1)
	}
	return hash
}
