// Package engine provides position notation (FEN, Shredder-FEN, lexigraphic)
// and the board geometry helpers the variants build piece movement from.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/wildchess-go/internal/chess"
	"github.com/lgbarn/wildchess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = chess.InitialFEN

// ParseFEN replaces the position's state with the one described by fen.
// The position is untouched when fen is malformed.
func ParseFEN(pos *chess.Position, fen string) error {
	return pos.Modify(func(mod *chess.Modifier) error {
		return ApplyFEN(mod, fen)
	})
}

// ApplyFEN writes the state described by fen through mod.
// Missing trailing fields take their defaults, as in the initial position.
func ApplyFEN(mod *chess.Modifier, fen string) error {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	mod.Clear()

	if err := parsePiecePositions(mod, parts[0]); err != nil {
		return err
	}
	if err := parseSideToMove(mod, parts); err != nil {
		return err
	}
	if err := parseCastlingRights(mod, parts); err != nil {
		return err
	}
	if err := parseEnPassant(mod, parts); err != nil {
		return err
	}
	return parseClocks(mod, parts)
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(mod *chess.Modifier, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks in placement %q: %w", len(ranks), positions, errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece := chess.PieceFromLetter(c)
				if piece == chess.NoPiece {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				sq, err := chess.NewSquare(file, rank)
				if err != nil {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}
				mod.SetPieceAt(piece, sq)
				file++
			}
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(mod *chess.Modifier, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		mod.SetCurrentPlayer(chess.White)
	case "b":
		mod.SetCurrentPlayer(chess.Black)
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Both the
// KQkq letters and Shredder/X-FEN rook file letters are accepted.
func parseCastlingRights(mod *chess.Modifier, parts []string) error {
	rights := chess.NoCastling
	if len(parts) < 3 || parts[2] == "-" {
		mod.SetCastling(rights)
		return nil
	}

	for i := 0; i < len(parts[2]); i++ {
		c := parts[2][i]
		player := chess.White
		if c >= 'a' && c <= 'z' {
			player = chess.Black
		}
		kingFile := NoKingFile
		if king := mod.FindKing(player); king.IsValid() {
			kingFile = king.File()
		}

		switch c {
		case 'K', 'k':
			rights = rights.With(player, chess.KingWing, outermostRook(mod, player, chess.KingWing, kingFile))
		case 'Q', 'q':
			rights = rights.With(player, chess.QueenWing, outermostRook(mod, player, chess.QueenWing, kingFile))
		default:
			file := int(c|0x20) - chess.FileBase
			if file < 0 || file >= chess.BoardSize {
				return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file > kingFile {
				rights = rights.With(player, chess.KingWing, file)
			} else {
				rights = rights.With(player, chess.QueenWing, file)
			}
		}
	}
	mod.SetCastling(rights)
	return nil
}

// NoKingFile is used when a side has no king on the board.
const NoKingFile = 4

// outermostRook resolves a K/Q castling letter to a rook file: the corner
// file when a rook stands there, otherwise the outermost own rook between
// the corner and the king, otherwise the corner file.
func outermostRook(mod *chess.Modifier, player chess.Player, wing chess.Wing, kingFile int) int {
	rank := player.BackRank()
	rook := chess.NewPiece(player, chess.Rook)
	corner := 0
	if wing == chess.KingWing {
		corner = chess.BoardSize - 1
	}
	for file := corner; file != kingFile && file >= 0 && file < chess.BoardSize; file -= wing.Direction() {
		sq, _ := chess.NewSquare(file, rank)
		if mod.PieceAt(sq) == rook {
			return file
		}
	}
	return corner
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(mod *chess.Modifier, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		mod.SetEnPassantFile(chess.NoFile)
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}
	if sq.Rank() != 2 && sq.Rank() != 5 {
		return fmt.Errorf("en passant square %s not on rank 3 or 6: %w", sq, errors.ErrInvalidFEN)
	}
	mod.SetEnPassantFile(sq.File())
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(mod *chess.Modifier, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return fmt.Errorf("halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
		mod.SetHalfmoveClock(uint(n))
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil || n == 0 {
			return fmt.Errorf("move number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		mod.SetMoveNumber(uint(n))
	}
	return nil
}

// FEN converts a position to a FEN string. Castling rights use KQkq when
// they describe the standard a/h rooks with the king on the e-file, and
// Shredder file letters otherwise, so every position round-trips.
func FEN(pos *chess.Position) string {
	return buildFEN(pos, IsChess960Position(pos))
}

// ShredderFEN converts a position to a FEN string using Shredder notation
// for castling, where rights are indicated by rook file letters.
func ShredderFEN(pos *chess.Position) string {
	return buildFEN(pos, true)
}

func buildFEN(pos *chess.Position, shredder bool) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos)
	sb.WriteByte(' ')
	if shredder {
		writeShredderCastlingRights(&sb, pos)
	} else {
		writeCastlingRights(&sb, pos)
	}
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos)
	fmt.Fprintf(&sb, " %d %d", pos.HalfmoveClock(), pos.MoveNumber())

	return sb.String()
}

// Placement returns only the piece placement field of the position's FEN.
func Placement(pos *chess.Position) string {
	var sb strings.Builder
	writePiecePositions(&sb, pos)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			sq, _ := chess.NewSquare(file, rank)
			piece := pos.PieceAt(sq)
			if piece == chess.NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, pos *chess.Position) {
	if pos.CurrentPlayer() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, pos *chess.Position) {
	rights := pos.Castling()
	if !rights.Any() {
		sb.WriteByte('-')
		return
	}
	if rights.Has(chess.White, chess.KingWing) {
		sb.WriteByte('K')
	}
	if rights.Has(chess.White, chess.QueenWing) {
		sb.WriteByte('Q')
	}
	if rights.Has(chess.Black, chess.KingWing) {
		sb.WriteByte('k')
	}
	if rights.Has(chess.Black, chess.QueenWing) {
		sb.WriteByte('q')
	}
}

// writeShredderCastlingRights writes castling rights using rook file letters.
func writeShredderCastlingRights(sb *strings.Builder, pos *chess.Position) {
	rights := pos.Castling()
	if !rights.Any() {
		sb.WriteByte('-')
		return
	}
	for _, player := range []chess.Player{chess.White, chess.Black} {
		for _, wing := range []chess.Wing{chess.KingWing, chess.QueenWing} {
			if !rights.Has(player, wing) {
				continue
			}
			letter := chess.FileLetter(rights.RookFile(player, wing))
			if player == chess.White {
				letter -= 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, pos *chess.Position) {
	file := pos.EnPassantFile()
	if file == chess.NoFile {
		sb.WriteByte('-')
		return
	}
	sb.WriteByte(chess.FileLetter(file))
	// The square behind the pawn that just moved.
	if pos.CurrentPlayer() == chess.White {
		sb.WriteByte('6')
	} else {
		sb.WriteByte('3')
	}
}

// IsChess960Position returns true if a castling right uses a rook off the
// a/h files or belongs to a king off the e-file.
func IsChess960Position(pos *chess.Position) bool {
	rights := pos.Castling()
	if !rights.IsStandard() {
		return true
	}
	for _, player := range []chess.Player{chess.White, chess.Black} {
		if !rights.Has(player, chess.KingWing) && !rights.Has(player, chess.QueenWing) {
			continue
		}
		king := pos.FindKing(player)
		if !king.IsValid() || king.File() != 4 || king.Rank() != player.BackRank() {
			return true
		}
		for _, wing := range []chess.Wing{chess.KingWing, chess.QueenWing} {
			if !rights.Has(player, wing) {
				continue
			}
			sq, _ := chess.NewSquare(rights.RookFile(player, wing), player.BackRank())
			if !pos.PieceAt(sq).Is(player, chess.Rook) {
				return true
			}
		}
	}
	return false
}
