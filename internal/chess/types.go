// Package chess provides the value types of the rules core: squares, players,
// pieces, positions and moves. Rule logic lives in the variant package; this
// package only owns the data and the single mutation path into a Position.
package chess

import "fmt"

// Player represents one of the two sides.
type Player int

const (
	Black Player = iota
	White
)

// String returns the string representation of a player.
func (p Player) String() string {
	if p == White {
		return "White"
	}
	return "Black"
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == White {
		return Black
	}
	return White
}

// IsWhite reports whether p is White.
func (p Player) IsWhite() bool { return p == White }

// IsBlack reports whether p is Black.
func (p Player) IsBlack() bool { return p == Black }

// BackRank returns the 0-based rank the player's pieces start on.
func (p Player) BackRank() int {
	if p == White {
		return 0
	}
	return BoardSize - 1
}

// PawnDirection returns +1 for White, -1 for Black.
func (p Player) PawnDirection() int {
	if p == White {
		return 1
	}
	return -1
}

// PieceKind represents a chess piece type independent of colour.
type PieceKind int

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to its kind.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// Piece is a coloured piece. The zero value is NoPiece (an empty square).
type Piece int

// NoPiece marks an empty square.
const NoPiece Piece = 0

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// NewPiece creates a coloured piece value.
func NewPiece(player Player, kind PieceKind) Piece {
	if kind <= NoKind || kind >= NumPieceKinds {
		return NoPiece
	}
	return Piece((int(kind) << PieceShift) | int(player))
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return NewPiece(White, kind)
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return NewPiece(Black, kind)
}

// Kind extracts the piece type.
func (p Piece) Kind() PieceKind {
	return PieceKind(p >> PieceShift)
}

// Player extracts the colour. Meaningless for NoPiece.
func (p Piece) Player() Player {
	return Player(p & 0x01)
}

// IsEmpty reports whether p is NoPiece.
func (p Piece) IsEmpty() bool {
	return p == NoPiece
}

// Is reports whether p is a piece of the given player and kind.
func (p Piece) Is(player Player, kind PieceKind) bool {
	return p != NoPiece && p == NewPiece(player, kind)
}

// BelongsTo reports whether p is a piece owned by player.
func (p Piece) BelongsTo(player Player) bool {
	return p != NoPiece && p.Player() == player
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p == NoPiece {
		return ' '
	}
	letter := p.Kind().Letter()
	if p.Player() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// PieceFromLetter converts a FEN letter to a coloured piece.
func PieceFromLetter(c byte) Piece {
	kind := KindFromLetter(c)
	if kind == NoKind {
		return NoPiece
	}
	if c >= 'a' && c <= 'z' {
		return B(kind)
	}
	return W(kind)
}

// String returns a readable name such as "WhiteQueen".
func (p Piece) String() string {
	if p == NoPiece {
		return "Empty"
	}
	return fmt.Sprintf("%s%s", p.Player(), p.Kind())
}

// Wing identifies a side of the board for castling purposes.
// The king wing runs toward the h-file, the queen wing toward the a-file.
type Wing int

const (
	KingWing Wing = iota
	QueenWing
)

// String returns the string representation of a wing.
func (w Wing) String() string {
	if w == KingWing {
		return "kingside"
	}
	return "queenside"
}

// Direction returns the file step toward the wing: +1 or -1.
func (w Wing) Direction() int {
	if w == KingWing {
		return 1
	}
	return -1
}

// NoFile marks an absent file (no en passant, no castling rook).
const NoFile = -1
