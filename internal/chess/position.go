package chess

import (
	"fmt"

	"github.com/lgbarn/wildchess-go/internal/errors"
)

// Rules is the part of a variant a Position needs: an identity to bind to
// and the move application hook. The full rule set lives in the variant package.
type Rules interface {
	// Name returns the variant's canonical name.
	Name() string

	// MakeMove applies an already validated move's side effects through mod.
	MakeMove(m Move, pos *Position, mod *Modifier) error
}

// State captures all placement-relevant position data.
// It is a plain value so snapshots are cheap and comparable.
type State struct {
	// The board squares, indexed by Square.
	Squares [NumSquares]Piece

	// Who has the next move.
	ToMove Player

	// Rook files for the castling options still available.
	Castling CastlingRights

	// File of a pawn that just made a double step, or NoFile.
	EnPassantFile int

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current full move number.
	MoveNumber uint
}

// EmptyState returns an empty board with White to move on move 1.
func EmptyState() State {
	return State{
		ToMove:        White,
		EnPassantFile: NoFile,
		MoveNumber:    1,
	}
}

// Position is a State permanently bound to one variant's Rules.
// It can only be changed through a Modifier handed out by MakeMove or Modify.
type Position struct {
	rules Rules
	state State
	undo  []State
	redo  []State
}

// NewPosition creates an empty position bound to rules.
func NewPosition(rules Rules) *Position {
	return &Position{
		rules: rules,
		state: EmptyState(),
	}
}

// Rules returns the rules the position is bound to.
func (p *Position) Rules() Rules {
	return p.rules
}

// PieceAt returns the piece on sq, or NoPiece for empty or invalid squares.
func (p *Position) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return p.state.Squares[sq]
}

// CurrentPlayer returns the side to move.
func (p *Position) CurrentPlayer() Player {
	return p.state.ToMove
}

// Castling returns the castling rights.
func (p *Position) Castling() CastlingRights {
	return p.state.Castling
}

// EnPassantFile returns the en passant file, or NoFile.
func (p *Position) EnPassantFile() int {
	return p.state.EnPassantFile
}

// HalfmoveClock returns the half-move clock.
func (p *Position) HalfmoveClock() uint {
	return p.state.HalfmoveClock
}

// MoveNumber returns the full move number.
func (p *Position) MoveNumber() uint {
	return p.state.MoveNumber
}

// State returns a snapshot of the position.
func (p *Position) State() State {
	return p.state
}

// FindKing returns the square of player's king, or NoSquare.
func (p *Position) FindKing(player Player) Square {
	return findPiece(&p.state, NewPiece(player, King))
}

// Copy returns a position with the same rules and state and no history.
func (p *Position) Copy() *Position {
	return &Position{rules: p.rules, state: p.state}
}

// Modify runs fn against a staged copy of the state and commits it if fn
// succeeds. It is the setup path (initial placement, FEN loading) and
// discards undo history, since the edited position has no move lineage.
func (p *Position) Modify(fn func(mod *Modifier) error) error {
	staged := p.state
	mod := &Modifier{state: &staged}
	err := fn(mod)
	mod.close()
	if err != nil {
		return err
	}
	p.state = staged
	p.undo = nil
	p.redo = nil
	return nil
}

// MakeMove applies m through the position's rules. The move must have been
// created for the same rules. On error the position is left untouched.
func (p *Position) MakeMove(m Move) error {
	if m == nil {
		return fmt.Errorf("nil move: %w", errors.ErrIllegalMove)
	}
	if m.Rules() != p.rules {
		return fmt.Errorf("move for %s applied to %s position: %w",
			rulesName(m.Rules()), rulesName(p.rules), errors.ErrVariantMismatch)
	}

	staged := p.state
	mod := &Modifier{state: &staged}
	err := p.rules.MakeMove(m, p, mod)
	mod.close()
	if err != nil {
		return err
	}

	p.undo = append(p.undo, p.state)
	p.redo = nil
	p.state = staged
	return nil
}

// CanUndo reports whether there is a move to take back.
func (p *Position) CanUndo() bool {
	return len(p.undo) > 0
}

// CanRedo reports whether there is an undone move to replay.
func (p *Position) CanRedo() bool {
	return len(p.redo) > 0
}

// Undo restores the state before the last applied move.
func (p *Position) Undo() bool {
	if len(p.undo) == 0 {
		return false
	}
	last := len(p.undo) - 1
	p.redo = append(p.redo, p.state)
	p.state = p.undo[last]
	p.undo = p.undo[:last]
	return true
}

// Redo re-applies the most recently undone move.
func (p *Position) Redo() bool {
	if len(p.redo) == 0 {
		return false
	}
	last := len(p.redo) - 1
	p.undo = append(p.undo, p.state)
	p.state = p.redo[last]
	p.redo = p.redo[:last]
	return true
}

// String returns a simple diagram of the board, rank 8 first.
func (p *Position) String() string {
	buf := make([]byte, 0, (BoardSize+1)*BoardSize)
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			piece := p.state.Squares[rank*BoardSize+file]
			if piece == NoPiece {
				buf = append(buf, '.')
			} else {
				buf = append(buf, piece.Letter())
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

func findPiece(st *State, piece Piece) Square {
	for sq := Square(0); sq < NoSquare; sq++ {
		if st.Squares[sq] == piece {
			return sq
		}
	}
	return NoSquare
}

func rulesName(r Rules) string {
	if r == nil {
		return "<nil>"
	}
	return r.Name()
}

// Standard starting array in the two supported placement notations.
const (
	InitialFEN                 = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	InitialPositionLexigraphic = "rnbqkbnrpppppppp--------------------------------PPPPPPPPRNBQKBNR"
)
