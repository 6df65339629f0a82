// Package game records a game played under one variant: its identifier,
// position, move list and PGN tags. Move text is decoded through the
// variant, and listeners are told about every applied move.
package game

import (
	"github.com/google/uuid"

	"github.com/lgbarn/wildchess-go/internal/chess"
	"github.com/lgbarn/wildchess-go/internal/engine"
	"github.com/lgbarn/wildchess-go/internal/errors"
	"github.com/lgbarn/wildchess-go/internal/hashing"
	"github.com/lgbarn/wildchess-go/internal/pgn"
	"github.com/lgbarn/wildchess-go/internal/variant"
)

// MoveEvent describes a move just applied to a game.
type MoveEvent struct {
	GameID string
	Ply    int
	Move   chess.Move
	FEN    string
}

// Listener observes applied moves. Listeners must not modify the game.
type Listener interface {
	MoveMade(e MoveEvent)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(e MoveEvent)

// MoveMade calls f(e).
func (f ListenerFunc) MoveMade(e MoveEvent) { f(e) }

// Option configures a Game.
type Option func(*Game)

// WithID sets the game identifier instead of generating one.
func WithID(id string) Option {
	return func(g *Game) {
		g.ID = id
	}
}

// WithStartFEN starts the game from fen instead of the variant's own setup.
func WithStartFEN(fen string) Option {
	return func(g *Game) {
		g.startFEN = fen
	}
}

// WithListener adds a listener.
func WithListener(l Listener) Option {
	return func(g *Game) {
		if l != nil {
			g.listeners = append(g.listeners, l)
		}
	}
}

// Game is a game in progress. It is not safe for concurrent use.
type Game struct {
	ID string

	variant   variant.WildVariant
	pos       *chess.Position
	startFEN  string
	moves     []chess.Move
	undone    []chess.Move
	keys      []uint64 // position keys, start position first
	tags      pgn.Tags
	listeners []Listener
}

// New creates a game under v. Without WithStartFEN the position comes from
// the variant's setup, which for shuffled variants draws a new array.
func New(v variant.WildVariant, opts ...Option) (*Game, error) {
	g := &Game{variant: v}
	for _, opt := range opts {
		opt(g)
	}
	if g.ID == "" {
		g.ID = uuid.New().String()
	}

	var err error
	if g.startFEN != "" {
		g.pos = chess.NewPosition(v)
		err = engine.ParseFEN(g.pos, g.startFEN)
	} else {
		g.pos, err = v.NewPosition()
	}
	if err != nil {
		return nil, &errors.GameError{Err: err, GameID: g.ID, Variant: v.Name()}
	}
	g.startFEN = engine.FEN(g.pos)
	g.keys = []uint64{hashing.GenerateZobristHash(g.pos.State())}

	g.tags = pgn.SetupTags(v.Name(), g.startFEN, g.startFEN == engine.InitialFEN)
	if err := g.tags.Set(pgn.TagGameID, g.ID); err != nil {
		return nil, err
	}
	return g, nil
}

// Variant returns the game's rules.
func (g *Game) Variant() variant.WildVariant {
	return g.variant
}

// Position returns a copy of the current position.
func (g *Game) Position() *chess.Position {
	return g.pos.Copy()
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return engine.FEN(g.pos)
}

// StartFEN returns the position the game started from.
func (g *Game) StartFEN() string {
	return g.startFEN
}

// Ply returns the number of moves played.
func (g *Game) Ply() int {
	return len(g.moves)
}

// Moves returns the moves played, oldest first.
func (g *Game) Moves() []chess.Move {
	return append([]chess.Move(nil), g.moves...)
}

// MoveText returns the notation of each move played.
func (g *Game) MoveText() []string {
	text := make([]string, len(g.moves))
	for i, m := range g.moves {
		text[i] = Notation(m)
	}
	return text
}

// Tags returns a copy of the game's tags.
func (g *Game) Tags() pgn.Tags {
	return append(pgn.Tags(nil), g.tags...)
}

// SetTag sets a tag on the game record.
func (g *Game) SetTag(name, value string) error {
	return g.tags.Set(name, value)
}

// Play decodes text through the variant and applies the move.
func (g *Game) Play(text string) error {
	m, err := Decode(g.variant, g.pos, text)
	if err == nil {
		err = g.pos.MakeMove(m)
	}
	if err != nil {
		return g.wrap(err, text)
	}
	g.applied(m)
	return nil
}

// PlayAll plays each move of texts in turn, stopping at the first failure.
func (g *Game) PlayAll(texts []string) error {
	for _, text := range texts {
		if err := g.Play(text); err != nil {
			return err
		}
	}
	return nil
}

// Apply applies a move created by the game's variant for the current position.
func (g *Game) Apply(m chess.Move) error {
	if err := g.pos.MakeMove(m); err != nil {
		text := ""
		if m != nil {
			text = m.String()
		}
		return g.wrap(err, text)
	}
	g.applied(m)
	return nil
}

func (g *Game) applied(m chess.Move) {
	g.moves = append(g.moves, m)
	g.keys = append(g.keys, hashing.GenerateZobristHash(g.pos.State()))
	g.undone = nil
	g.notify(m)
}

func (g *Game) notify(m chess.Move) {
	if len(g.listeners) == 0 {
		return
	}
	e := MoveEvent{GameID: g.ID, Ply: len(g.moves), Move: m, FEN: engine.FEN(g.pos)}
	for _, l := range g.listeners {
		l.MoveMade(e)
	}
}

func (g *Game) wrap(err error, text string) error {
	return &errors.GameError{
		Err:      err,
		GameID:   g.ID,
		Variant:  g.variant.Name(),
		PlyNum:   len(g.moves) + 1,
		MoveText: text,
	}
}

// Undo takes back the last move.
func (g *Game) Undo() bool {
	if len(g.moves) == 0 || !g.pos.Undo() {
		return false
	}
	last := len(g.moves) - 1
	g.undone = append(g.undone, g.moves[last])
	g.moves = g.moves[:last]
	g.keys = g.keys[:len(g.keys)-1]
	return true
}

// Redo replays the last move taken back. Listeners see it again.
func (g *Game) Redo() bool {
	if len(g.undone) == 0 || !g.pos.Redo() {
		return false
	}
	last := len(g.undone) - 1
	m := g.undone[last]
	g.undone = g.undone[:last]
	g.moves = append(g.moves, m)
	g.keys = append(g.keys, hashing.GenerateZobristHash(g.pos.State()))
	g.notify(m)
	return true
}

// Repetitions returns how many times the current position has occurred in
// the game, counting the current occurrence.
func (g *Game) Repetitions() int {
	current := g.keys[len(g.keys)-1]
	n := 0
	for _, key := range g.keys {
		if key == current {
			n++
		}
	}
	return n
}

// MaxRepetitions returns the highest number of times any position of the
// game occurred.
func (g *Game) MaxRepetitions() int {
	seen := make(map[uint64]int, len(g.keys))
	most := 0
	for _, key := range g.keys {
		seen[key]++
		most = max(most, seen[key])
	}
	return most
}

// Signature identifies the game by its final position for duplicate
// detection.
func (g *Game) Signature() hashing.GameSignature {
	return hashing.Signature(g.pos, len(g.moves))
}

// Record returns the game as a PGN record. The result is the Result tag,
// or unknown when the tag is unset.
func (g *Game) Record() *pgn.Record {
	result := g.tags.Get(pgn.TagResult)
	if result == "" {
		result = pgn.ResultUnknown
	}
	return &pgn.Record{
		Tags:   g.Tags(),
		Moves:  g.MoveText(),
		Result: result,
	}
}

// WritePGN writes the game record, numbering moves from the start position.
func (g *Game) WritePGN(w *pgn.Writer) error {
	start := chess.NewPosition(g.variant)
	if err := engine.ParseFEN(start, g.startFEN); err != nil {
		return err
	}
	return w.Write(g.Record(), start.MoveNumber(), start.CurrentPlayer().IsBlack())
}
