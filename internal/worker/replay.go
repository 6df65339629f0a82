package worker

import (
	"github.com/lgbarn/wildchess-go/internal/errors"
	"github.com/lgbarn/wildchess-go/internal/game"
	"github.com/lgbarn/wildchess-go/internal/pgn"
	"github.com/lgbarn/wildchess-go/internal/variant"
)

// setupTags are rebuilt by the game itself and not copied from a record.
var setupTags = map[string]bool{
	pgn.TagVariant: true,
	pgn.TagSetUp:   true,
	pgn.TagFEN:     true,
	pgn.TagGameID:  true,
}

// Replayer turns game records into games.
type Replayer struct {
	registry       *variant.Registry
	defaultVariant string
	listener       game.Listener
}

// NewReplayer creates a replayer resolving variant names in registry.
// Records without a Variant tag use defaultVariant. listener, if not nil,
// is attached to every game and may be called from several goroutines.
func NewReplayer(registry *variant.Registry, defaultVariant string, listener game.Listener) *Replayer {
	return &Replayer{registry: registry, defaultVariant: defaultVariant, listener: listener}
}

// Replay creates the game rec describes and plays its moves. On a move
// failure the game is returned with the moves before it applied.
func (r *Replayer) Replay(rec *pgn.Record) (*game.Game, error) {
	name := rec.Tags.Get(pgn.TagVariant)
	if name == "" {
		name = r.defaultVariant
	}
	v, err := r.registry.Lookup(name)
	if err != nil {
		return nil, errors.Wrapf(err, "record at line %d", rec.Line)
	}

	opts := []game.Option{game.WithListener(r.listener)}
	if id := rec.Tags.Get(pgn.TagGameID); id != "" {
		opts = append(opts, game.WithID(id))
	}
	if fen := rec.Tags.Get(pgn.TagFEN); fen != "" {
		opts = append(opts, game.WithStartFEN(fen))
	}
	g, err := game.New(v, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "record at line %d", rec.Line)
	}
	for _, tag := range rec.Tags {
		if setupTags[tag.Name] {
			continue
		}
		if err := g.SetTag(tag.Name, tag.Value); err != nil {
			return g, err
		}
	}
	if rec.Result != "" && rec.Result != pgn.ResultUnknown {
		if err := g.SetTag(pgn.TagResult, rec.Result); err != nil {
			return g, err
		}
	}
	return g, g.PlayAll(rec.Moves)
}

// ProcessFunc returns a ProcessFunc replaying each item's record.
func (r *Replayer) ProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		g, err := r.Replay(item.Record)
		return ProcessResult{Record: item.Record, Index: item.Index, Game: g, Error: err}
	}
}

// ReplayEach replays records on a pool configured by opts and hands each
// result to fn in record order. When fn fails the pool is stopped, records
// not yet started are skipped and fn's error is returned.
func ReplayEach(records []*pgn.Record, process ProcessFunc, fn func(ProcessResult) error, opts ...PoolOption) error {
	pool := NewPool(process, opts...)
	pool.Start()

	go func() {
		for i, rec := range records {
			if !pool.Submit(WorkItem{Record: rec, Index: i}) {
				break
			}
		}
		pool.Close()
	}()

	pending := make(map[int]ProcessResult)
	next := 0
	var err error
	for result := range pool.Results() {
		if err != nil {
			continue
		}
		pending[result.Index] = result
		for r, ok := pending[next]; ok; r, ok = pending[next] {
			delete(pending, next)
			next++
			if err = fn(r); err != nil {
				pool.Stop()
				break
			}
		}
	}
	return err
}
