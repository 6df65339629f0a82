package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/wildchess-go/internal/errors"
)

// Move describes a played or hypothetical move. It is a closed set of
// concrete types: *StandardMove, *CastlingMove, *HiddenMove and
// *PartialHiddenMove. Consumers switch on the concrete type.
type Move interface {
	// Rules returns the rules the move was created for.
	Rules() Rules

	// Player returns the side making the move.
	Player() Player

	// From returns the starting square, or NoSquare when hidden.
	From() Square

	// To returns the ending square, or NoSquare when fully hidden.
	To() Square

	// IsCapture reports whether the move is known to capture.
	IsCapture() bool

	// String returns the move's text representation.
	String() string

	isMove()
}

// StandardDetails carries the optional facts of a StandardMove.
type StandardDetails struct {
	Captured      Piece     // Captured piece (NoPiece if none)
	CaptureSquare Square    // Square of the captured piece; defaults to the ending square
	Promotion     PieceKind // Promotion target (NoKind if none)
	DoublePush    bool      // Pawn advanced two squares
	EnPassant     bool      // En passant capture
	Text          string    // Externally supplied string representation (e.g. SAN)
}

// StandardMove is an ordinary visible move, including promotions and
// en passant captures.
type StandardMove struct {
	rules   Rules
	player  Player
	from    Square
	to      Square
	moving  Piece
	details StandardDetails
}

// NewStandardMove creates a visible move. Both squares must be on the board.
func NewStandardMove(rules Rules, player Player, from, to Square, moving Piece, d StandardDetails) (*StandardMove, error) {
	if !from.IsValid() || !to.IsValid() {
		return nil, fmt.Errorf("move %s-%s: %w", from, to, errors.ErrInvalidSquare)
	}
	if d.Captured != NoPiece && !d.CaptureSquare.IsValid() {
		d.CaptureSquare = to
	}
	if d.Captured == NoPiece {
		d.CaptureSquare = NoSquare
	}
	return &StandardMove{
		rules:   rules,
		player:  player,
		from:    from,
		to:      to,
		moving:  moving,
		details: d,
	}, nil
}

func (*StandardMove) isMove() {}

// Rules returns the rules the move was created for.
func (m *StandardMove) Rules() Rules { return m.rules }

// Player returns the side making the move.
func (m *StandardMove) Player() Player { return m.player }

// From returns the starting square.
func (m *StandardMove) From() Square { return m.from }

// To returns the ending square.
func (m *StandardMove) To() Square { return m.to }

// Moving returns the piece being moved.
func (m *StandardMove) Moving() Piece { return m.moving }

// Captured returns the captured piece, or NoPiece.
func (m *StandardMove) Captured() Piece { return m.details.Captured }

// CaptureSquare returns where the captured piece stood, or NoSquare.
func (m *StandardMove) CaptureSquare() Square { return m.details.CaptureSquare }

// IsCapture reports whether a piece is captured.
func (m *StandardMove) IsCapture() bool { return m.details.Captured != NoPiece }

// Promotion returns the promotion target kind, or NoKind.
func (m *StandardMove) Promotion() PieceKind { return m.details.Promotion }

// IsPromotion reports whether the move promotes a pawn.
func (m *StandardMove) IsPromotion() bool { return m.details.Promotion != NoKind }

// IsDoublePush reports whether a pawn advanced two squares.
func (m *StandardMove) IsDoublePush() bool { return m.details.DoublePush }

// IsEnPassant reports whether the move is an en passant capture.
func (m *StandardMove) IsEnPassant() bool { return m.details.EnPassant }

// String returns the supplied text, or long algebraic notation.
func (m *StandardMove) String() string {
	if m.details.Text != "" {
		return m.details.Text
	}
	return m.LongAlgebraic()
}

// LongAlgebraic returns notation such as "Ng1-f3", "e5xd6" or "e7-e8=Q".
func (m *StandardMove) LongAlgebraic() string {
	var sb strings.Builder
	if kind := m.moving.Kind(); kind != Pawn && kind != NoKind {
		sb.WriteByte(kind.Letter())
	}
	sb.WriteString(m.from.String())
	if m.IsCapture() {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(m.to.String())
	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(m.details.Promotion.Letter())
	}
	return sb.String()
}

// UCI returns coordinate notation such as "e7e8q".
func (m *StandardMove) UCI() string {
	s := m.from.String() + m.to.String()
	if m.IsPromotion() {
		s += strings.ToLower(string(m.details.Promotion.Letter()))
	}
	return s
}

// CastlingMove relocates a king and its castling rook in one move.
type CastlingMove struct {
	rules    Rules
	player   Player
	kingFrom Square
	kingTo   Square
	rookFrom Square
	rookTo   Square
	wing     Wing
	long     bool
}

// NewCastlingMove creates a castling move. All four squares must be on the board.
func NewCastlingMove(rules Rules, player Player, kingFrom, kingTo, rookFrom, rookTo Square, wing Wing, long bool) (*CastlingMove, error) {
	for _, sq := range []Square{kingFrom, kingTo, rookFrom, rookTo} {
		if !sq.IsValid() {
			return nil, fmt.Errorf("castling square: %w", errors.ErrInvalidSquare)
		}
	}
	return &CastlingMove{
		rules:    rules,
		player:   player,
		kingFrom: kingFrom,
		kingTo:   kingTo,
		rookFrom: rookFrom,
		rookTo:   rookTo,
		wing:     wing,
		long:     long,
	}, nil
}

func (*CastlingMove) isMove() {}

// Rules returns the rules the move was created for.
func (m *CastlingMove) Rules() Rules { return m.rules }

// Player returns the castling side.
func (m *CastlingMove) Player() Player { return m.player }

// From returns the king's starting square.
func (m *CastlingMove) From() Square { return m.kingFrom }

// To returns the king's ending square.
func (m *CastlingMove) To() Square { return m.kingTo }

// RookFrom returns the rook's starting square.
func (m *CastlingMove) RookFrom() Square { return m.rookFrom }

// RookTo returns the rook's ending square.
func (m *CastlingMove) RookTo() Square { return m.rookTo }

// Wing returns the board side the rook came from.
func (m *CastlingMove) Wing() Wing { return m.wing }

// IsShort reports whether this is short castling.
func (m *CastlingMove) IsShort() bool { return !m.long }

// IsLong reports whether this is long castling.
func (m *CastlingMove) IsLong() bool { return m.long }

// IsCapture always returns false.
func (m *CastlingMove) IsCapture() bool { return false }

// String returns "O-O" or "O-O-O".
func (m *CastlingMove) String() string {
	if m.long {
		return "O-O-O"
	}
	return "O-O"
}

// HiddenMove is a Kriegspiel move of which nothing is known but that it
// was made.
type HiddenMove struct {
	rules  Rules
	player Player
}

// NewHiddenMove creates a fully hidden move.
func NewHiddenMove(rules Rules, player Player) *HiddenMove {
	return &HiddenMove{rules: rules, player: player}
}

func (*HiddenMove) isMove() {}

// Rules returns the rules the move was created for.
func (m *HiddenMove) Rules() Rules { return m.rules }

// Player returns the side making the move.
func (m *HiddenMove) Player() Player { return m.player }

// From returns NoSquare.
func (m *HiddenMove) From() Square { return NoSquare }

// To returns NoSquare.
func (m *HiddenMove) To() Square { return NoSquare }

// IsCapture returns false; a capture would make the move partially visible.
func (m *HiddenMove) IsCapture() bool { return false }

// String returns "?".
func (m *HiddenMove) String() string { return "?" }

// PartialHiddenMove is a Kriegspiel capture whose ending square and victim
// are known but whose starting square is not.
type PartialHiddenMove struct {
	rules    Rules
	player   Player
	to       Square
	captured Piece
}

// NewPartialHiddenMove creates a partially hidden capture. The captured
// piece must exist.
func NewPartialHiddenMove(rules Rules, player Player, to Square, captured Piece) (*PartialHiddenMove, error) {
	if !to.IsValid() {
		return nil, fmt.Errorf("hidden capture square: %w", errors.ErrInvalidSquare)
	}
	if captured == NoPiece {
		return nil, fmt.Errorf("hidden capture on empty square %s: %w", to, errors.ErrIllegalMove)
	}
	return &PartialHiddenMove{rules: rules, player: player, to: to, captured: captured}, nil
}

func (*PartialHiddenMove) isMove() {}

// Rules returns the rules the move was created for.
func (m *PartialHiddenMove) Rules() Rules { return m.rules }

// Player returns the side making the move.
func (m *PartialHiddenMove) Player() Player { return m.player }

// From returns NoSquare.
func (m *PartialHiddenMove) From() Square { return NoSquare }

// To returns the capture square.
func (m *PartialHiddenMove) To() Square { return m.to }

// Captured returns the piece that disappeared.
func (m *PartialHiddenMove) Captured() Piece { return m.captured }

// IsCapture always returns true.
func (m *PartialHiddenMove) IsCapture() bool { return true }

// String returns "?x" followed by the capture square.
func (m *PartialHiddenMove) String() string { return "?x" + m.to.String() }
