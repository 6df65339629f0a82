// Package output writes replayed games in the supported output formats.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/wildchess-go/internal/config"
	"github.com/lgbarn/wildchess-go/internal/engine"
	"github.com/lgbarn/wildchess-go/internal/errors"
	"github.com/lgbarn/wildchess-go/internal/game"
	"github.com/lgbarn/wildchess-go/internal/pgn"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (FEN, PGN, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(g *game.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer for the configured format.
func NewGameWriter(w io.Writer, cfg config.OutputConfig) (GameWriter, error) {
	fen := NewFENWriter(w, cfg.ShredderFEN)
	pgnWriter := NewPGNWriter(w, cfg.MaxLineLength)
	switch cfg.Format {
	case config.FEN:
		return fen, nil
	case config.PGN:
		return pgnWriter, nil
	case config.Both:
		return MultiWriter{pgnWriter, fen}, nil
	case config.JSON:
		return NewJSONWriter(w), nil
	}
	return nil, fmt.Errorf("output format %v: %w", cfg.Format, errors.ErrInvalidConfig)
}

// PGNWriter writes games in PGN format.
type PGNWriter struct {
	pw *pgn.Writer
}

// NewPGNWriter creates a new PGN writer wrapping move text at lineLength.
func NewPGNWriter(w io.Writer, lineLength uint) *PGNWriter {
	return &PGNWriter{pw: pgn.NewWriter(w, int(lineLength))}
}

// WriteGame writes a game in PGN format.
func (pw *PGNWriter) WriteGame(g *game.Game) error {
	return g.WritePGN(pw.pw)
}

// Flush flushes the PGN writer (no-op for PGN as it writes immediately).
func (pw *PGNWriter) Flush() error {
	return nil
}

// Close closes the PGN writer.
func (pw *PGNWriter) Close() error {
	return nil
}

// FENWriter writes the final position of each game, one per line.
type FENWriter struct {
	w        io.Writer
	shredder bool
}

// NewFENWriter creates a FEN writer. With shredder set castling rights are
// written as rook files.
func NewFENWriter(w io.Writer, shredder bool) *FENWriter {
	return &FENWriter{w: w, shredder: shredder}
}

// WriteGame writes the game's current position.
func (fw *FENWriter) WriteGame(g *game.Game) error {
	fen := g.FEN()
	if fw.shredder {
		fen = engine.ShredderFEN(g.Position())
	}
	_, err := fmt.Fprintln(fw.w, fen)
	return err
}

// Flush is a no-op.
func (fw *FENWriter) Flush() error {
	return nil
}

// Close is a no-op.
func (fw *FENWriter) Close() error {
	return nil
}

// MultiWriter writes every game to each writer in turn.
type MultiWriter []GameWriter

// WriteGame writes g to each writer, stopping at the first error.
func (mw MultiWriter) WriteGame(g *game.Game) error {
	for _, w := range mw {
		if err := w.WriteGame(g); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes each writer.
func (mw MultiWriter) Flush() error {
	for _, w := range mw {
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// Close closes each writer and returns the first error.
func (mw MultiWriter) Close() error {
	var first error
	for _, w := range mw {
		if err := w.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*JSONGame, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(g *game.Game) error {
	jsonGame, err := GameToJSON(g)
	if err != nil {
		return err
	}
	if jw.single {
		return jw.encode(jsonGame)
	}

	// Buffer for batch output
	jw.games = append(jw.games, jsonGame)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	err := jw.encode(&JSONOutput{Games: jw.games})

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v any) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
