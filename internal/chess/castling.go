package chess

// CastlingRights records, for each player and wing, the file of the rook
// that may still castle. A stored value is file+1 so the zero value means
// no rights at all.
type CastlingRights [2][2]int8

// NoCastling is the empty set of castling rights.
var NoCastling CastlingRights

// StandardCastling returns full rights with rooks on the a- and h-files.
func StandardCastling() CastlingRights {
	return NoCastling.
		With(White, KingWing, 7).
		With(White, QueenWing, 0).
		With(Black, KingWing, 7).
		With(Black, QueenWing, 0)
}

// Has reports whether player may still castle toward wing.
func (c CastlingRights) Has(player Player, wing Wing) bool {
	return c[player][wing] != 0
}

// RookFile returns the file of the castling rook, or NoFile.
func (c CastlingRights) RookFile(player Player, wing Wing) int {
	if c[player][wing] == 0 {
		return NoFile
	}
	return int(c[player][wing]) - 1
}

// With returns a copy granting the right with the rook on file.
func (c CastlingRights) With(player Player, wing Wing, file int) CastlingRights {
	if file < 0 || file >= BoardSize {
		return c.Without(player, wing)
	}
	c[player][wing] = int8(file + 1)
	return c
}

// Without returns a copy with the player's wing right removed.
func (c CastlingRights) Without(player Player, wing Wing) CastlingRights {
	c[player][wing] = 0
	return c
}

// WithoutPlayer returns a copy with both of the player's rights removed.
func (c CastlingRights) WithoutPlayer(player Player) CastlingRights {
	c[player][KingWing] = 0
	c[player][QueenWing] = 0
	return c
}

// Any reports whether any right remains.
func (c CastlingRights) Any() bool {
	return c != NoCastling
}

// IsStandard reports whether every held right uses the a- or h-file rook.
func (c CastlingRights) IsStandard() bool {
	for _, player := range []Player{White, Black} {
		if c.Has(player, KingWing) && c.RookFile(player, KingWing) != 7 {
			return false
		}
		if c.Has(player, QueenWing) && c.RookFile(player, QueenWing) != 0 {
			return false
		}
	}
	return true
}
