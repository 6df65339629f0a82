// Package variant implements the rule sets: standard chess and its wild
// variants. Each variant is one immutable Variant value assembled from a
// base rule table plus the slices it overrides (castling topology, piece
// geometry, promotion policy, starting setup, after-move effects).
package variant

import (
	"fmt"

	"github.com/lgbarn/wildchess-go/internal/chess"
	"github.com/lgbarn/wildchess-go/internal/errors"
)

// WildVariant is the rule set a family of positions is played under.
// Every method taking a position fails with errors.ErrVariantMismatch when
// the position is bound to another variant.
type WildVariant interface {
	chess.Rules

	// Init sets up the starting position.
	Init(pos *chess.Position) error

	// NewPosition returns a position bound to the variant, already initialised.
	NewPosition() (*chess.Position, error)

	// IsShortCastling reports whether from-to denotes short castling.
	IsShortCastling(pos *chess.Position, from, to chess.Square, promotion chess.PieceKind) (bool, error)

	// IsLongCastling reports whether from-to denotes long castling.
	IsLongCastling(pos *chess.Position, from, to chess.Square, promotion chess.PieceKind) (bool, error)

	// CreateShortCastling returns short castling for the side to move.
	CreateShortCastling(pos *chess.Position) (*chess.CastlingMove, error)

	// CreateLongCastling returns long castling for the side to move.
	CreateLongCastling(pos *chess.Position) (*chess.CastlingMove, error)

	// CreateMove validates and classifies a move of the side to move.
	CreateMove(pos *chess.Position, from, to chess.Square, promotion chess.PieceKind) (chess.Move, error)

	// CreateHiddenMove returns a move the observer cannot see at all.
	CreateHiddenMove(pos *chess.Position) (*chess.HiddenMove, error)

	// CreatePartialHiddenMove returns an unseen capture on sq.
	CreatePartialHiddenMove(pos *chess.Position, sq chess.Square) (*chess.PartialHiddenMove, error)

	// PromotionTargets returns the pieces a pawn moving from-to may become,
	// in preference order, or nil when the move is not a promotion.
	PromotionTargets(pos *chess.Position, from, to chess.Square) ([]chess.Piece, error)

	// TargetSquares returns where the piece on from could move, ignoring check.
	TargetSquares(pos *chess.Position, from chess.Square) ([]chess.Square, error)

	PawnTargets(pos *chess.Position, from chess.Square) ([]chess.Square, error)
	KnightTargets(pos *chess.Position, from chess.Square) ([]chess.Square, error)
	BishopTargets(pos *chess.Position, from chess.Square) ([]chess.Square, error)
	RookTargets(pos *chess.Position, from chess.Square) ([]chess.Square, error)
	QueenTargets(pos *chess.Position, from chess.Square) ([]chess.Square, error)
	KingTargets(pos *chess.Position, from chess.Square) ([]chess.Square, error)

	// IsEnPassant reports whether from-to is a legal en passant capture.
	IsEnPassant(pos *chess.Position, from, to chess.Square) (bool, error)

	// IsDoublePush reports whether from-to is a legal two-square pawn advance.
	IsDoublePush(pos *chess.Position, from, to chess.Square) (bool, error)

	// ParsePiece converts one-letter notation to a piece.
	ParsePiece(s string) (chess.Piece, error)

	// PieceString converts a piece to one-letter notation.
	PieceString(p chess.Piece) string
}

// Setup writes a starting position through mod.
type Setup func(mod *chess.Modifier) error

// Effect runs after a move has been applied, still inside the move's
// Modifier scope.
type Effect func(m chess.Move, mod *chess.Modifier)

// Variant is a rule table. Its zero value is not usable; build variants
// with the constructors in this package.
type Variant struct {
	name        string
	setup       Setup
	topology    Topology
	geometry    Geometry
	promotion   Promotion
	effects     []Effect
	hiddenMoves bool
}

var _ WildVariant = (*Variant)(nil)

// Option configures a Variant at construction.
type Option func(*Variant)

// WithSetup sets the starting position.
func WithSetup(setup Setup) Option {
	return func(v *Variant) {
		if setup != nil {
			v.setup = setup
		}
	}
}

// WithTopology sets the castling topology. A nil topology disables castling.
func WithTopology(t Topology) Option {
	return func(v *Variant) {
		v.topology = t
	}
}

// WithGeometry overrides piece movement. Nil entries keep the current hook.
func WithGeometry(g Geometry) Option {
	return func(v *Variant) {
		v.geometry = v.geometry.merge(g)
	}
}

// WithPromotion sets the promotion policy.
func WithPromotion(p Promotion) Option {
	return func(v *Variant) {
		if p != nil {
			v.promotion = p
		}
	}
}

// WithEffect adds an after-move effect.
func WithEffect(e Effect) Option {
	return func(v *Variant) {
		if e != nil {
			v.effects = append(v.effects, e)
		}
	}
}

// WithHiddenMoves allows Kriegspiel hidden moves.
func WithHiddenMoves() Option {
	return func(v *Variant) {
		v.hiddenMoves = true
	}
}

// New builds a variant on top of the standard chess rule table.
func New(name string, opts ...Option) *Variant {
	v := &Variant{
		name:      name,
		setup:     FixedFEN(chess.InitialFEN),
		topology:  StandardTopology{},
		geometry:  StandardGeometry(),
		promotion: StandardPromotion,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Name returns the variant's canonical name.
func (v *Variant) Name() string {
	return v.name
}

// String returns the variant's name.
func (v *Variant) String() string {
	return v.name
}

// checkPosition fails unless pos is bound to v.
func (v *Variant) checkPosition(pos *chess.Position) error {
	if pos == nil {
		return fmt.Errorf("%s: nil position: %w", v.name, errors.ErrVariantMismatch)
	}
	if pos.Rules() != chess.Rules(v) {
		name := "<nil>"
		if pos.Rules() != nil {
			name = pos.Rules().Name()
		}
		return fmt.Errorf("%s rules given a %s position: %w", v.name, name, errors.ErrVariantMismatch)
	}
	return nil
}

// Init sets up the starting position.
func (v *Variant) Init(pos *chess.Position) error {
	if err := v.checkPosition(pos); err != nil {
		return err
	}
	return pos.Modify(func(mod *chess.Modifier) error {
		return v.setup(mod)
	})
}

// NewPosition returns an initialised position bound to v.
func (v *Variant) NewPosition() (*chess.Position, error) {
	pos := chess.NewPosition(v)
	if err := v.Init(pos); err != nil {
		return nil, err
	}
	return pos, nil
}

// ParsePiece converts one-letter notation, upper case for White, to a piece.
func (v *Variant) ParsePiece(s string) (chess.Piece, error) {
	if len(s) != 1 {
		return chess.NoPiece, fmt.Errorf("%q: %w", s, errors.ErrInvalidPiece)
	}
	piece := chess.PieceFromLetter(s[0])
	if piece == chess.NoPiece {
		return chess.NoPiece, fmt.Errorf("%q: %w", s, errors.ErrInvalidPiece)
	}
	return piece, nil
}

// PieceString converts a piece to one-letter notation. NoPiece yields "".
func (v *Variant) PieceString(p chess.Piece) string {
	if p == chess.NoPiece {
		return ""
	}
	return string(p.Letter())
}
