package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/wildchess-go/internal/config"
	"github.com/lgbarn/wildchess-go/internal/game"
	"github.com/lgbarn/wildchess-go/internal/pgn"
	"github.com/lgbarn/wildchess-go/internal/variant"
)

func playTestGame(t *testing.T, v variant.WildVariant, start string, moves ...string) *game.Game {
	t.Helper()
	opts := []game.Option{game.WithID("test")}
	if start != "" {
		opts = append(opts, game.WithStartFEN(start))
	}
	g, err := game.New(v, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := g.PlayAll(moves); err != nil {
		t.Fatalf("PlayAll failed: %v", err)
	}
	return g
}

// TestPGNWriter_WriteGame verifies PGN writer outputs correct format
func TestPGNWriter_WriteGame(t *testing.T) {
	g := playTestGame(t, variant.Chess(), "", "e2e4", "e7e5", "g1f3")
	if err := g.SetTag(pgn.TagWhite, "Fischer"); err != nil {
		t.Fatal(err)
	}
	if err := g.SetTag(pgn.TagResult, pgn.ResultWhiteWins); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	writer := NewPGNWriter(&buf, 80)
	if err := writer.WriteGame(g); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, `[White "Fischer"]`) {
		t.Error("Missing White tag")
	}
	if !strings.Contains(output, `[GameId "test"]`) {
		t.Error("Missing GameId tag")
	}
	if !strings.Contains(output, "1. e2e4 e7e5 2. g1f3 1-0") {
		t.Errorf("Missing moves:\n%s", output)
	}
}

// TestFENWriter_WriteGame verifies the final position is written
func TestFENWriter_WriteGame(t *testing.T) {
	g := playTestGame(t, variant.Chess(), "4k3/8/8/8/8/8/8/4K2R w K - 0 1", "e1e2")

	var buf bytes.Buffer
	if err := NewFENWriter(&buf, false).WriteGame(g); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if got, want := buf.String(), "4k3/8/8/8/8/8/4K3/7R b - - 1 1\n"; got != want {
		t.Errorf("FEN = %q, want %q", got, want)
	}

	g = playTestGame(t, variant.Chess(), "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	buf.Reset()
	if err := NewFENWriter(&buf, true).WriteGame(g); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if got, want := buf.String(), "4k3/8/8/8/8/8/8/4K2R w H - 0 1\n"; got != want {
		t.Errorf("Shredder FEN = %q, want %q", got, want)
	}
}

// TestNewGameWriter verifies the writer chosen for each format
func TestNewGameWriter(t *testing.T) {
	g := playTestGame(t, variant.Chess(), "", "e2e4")
	tests := []struct {
		format config.OutputFormat
		check  func(out string) bool
	}{
		{config.FEN, func(out string) bool { return strings.HasPrefix(out, "rnbqkbnr/") }},
		{config.PGN, func(out string) bool { return strings.HasPrefix(out, `[Event "?"]`) && !strings.Contains(out, "KQkq") }},
		{config.Both, func(out string) bool {
			return strings.HasPrefix(out, `[Event "?"]`) && strings.HasSuffix(out, "b KQkq e3 0 1\n")
		}},
		{config.JSON, func(out string) bool { return strings.HasPrefix(out, "{") }},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			cfg := *config.NewOutputConfig()
			cfg.Format = tt.format
			w, err := NewGameWriter(&buf, cfg)
			if err != nil {
				t.Fatalf("NewGameWriter failed: %v", err)
			}
			if err := w.WriteGame(g); err != nil {
				t.Fatalf("WriteGame failed: %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}
			if !tt.check(buf.String()) {
				t.Errorf("unexpected output:\n%s", buf.String())
			}
		})
	}

	cfg := *config.NewOutputConfig()
	cfg.Format = config.OutputFormat(99)
	if _, err := NewGameWriter(&bytes.Buffer{}, cfg); err == nil {
		t.Error("expected error for unknown format")
	}
}

// TestJSONWriter_WriteGame verifies JSON writer outputs correct format
func TestJSONWriter_WriteGame(t *testing.T) {
	g := playTestGame(t, variant.Atomic(), "", "e2e4", "d7d5", "e4d5")
	if err := g.SetTag(pgn.TagWhite, "Fischer"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)
	if err := writer.WriteGame(g); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Error("batch writer wrote before Flush")
	}
	if err := writer.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(out.Games) != 1 {
		t.Fatalf("got %d games, want 1", len(out.Games))
	}
	jg := out.Games[0]
	if jg.ID != "test" || jg.Variant != "atomic" || jg.PlyCount != 3 || jg.Result != "*" {
		t.Errorf("game = %+v", jg)
	}
	if jg.Tags["White"] != "Fischer" || jg.Tags["Site"] != "?" {
		t.Errorf("tags = %v", jg.Tags)
	}
	if jg.FinalFEN != "rnbqkbnr/ppp1pppp/8/8/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2" {
		t.Errorf("FinalFEN = %q", jg.FinalFEN)
	}

	want := []JSONMove{
		{Ply: 1, MoveNumber: 1, Color: "white", Notation: "e2e4", Kind: KindStandard, From: "e2", To: "e4", Piece: "pawn",
			FEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"},
		{Ply: 2, Color: "black", Notation: "d7d5", Kind: KindStandard, From: "d7", To: "d5", Piece: "pawn",
			FEN: "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2"},
		{Ply: 3, MoveNumber: 2, Color: "white", Notation: "e4d5", Kind: KindStandard, From: "e4", To: "d5", Piece: "pawn",
			Captured: "pawn", FEN: jg.FinalFEN},
	}
	if diff := cmp.Diff(want, jg.Moves); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
}

// TestGameToJSON_MoveKinds verifies castling, promotion and hidden moves
func TestGameToJSON_MoveKinds(t *testing.T) {
	castle, err := GameToJSON(playTestGame(t, variant.Chess(), "4k3/P7/8/8/8/8/8/4K2R w K - 0 1", "O-O", "e8d7", "a7a8q"))
	if err != nil {
		t.Fatalf("GameToJSON failed: %v", err)
	}
	if m := castle.Moves[0]; m.Kind != KindCastling || m.Notation != "O-O" || m.From != "e1" || m.To != "g1" || m.Piece != "king" {
		t.Errorf("castling move = %+v", m)
	}
	if m := castle.Moves[2]; m.Promotion != "queen" || m.Notation != "a7a8q" {
		t.Errorf("promotion move = %+v", m)
	}

	hidden, err := GameToJSON(playTestGame(t, variant.Kriegspiel(), "", "e2e4", "?", "?xe7"))
	if err != nil {
		t.Fatalf("GameToJSON failed: %v", err)
	}
	if m := hidden.Moves[1]; m.Kind != KindHidden || m.Notation != "?" || m.From != "" || m.Color != "black" {
		t.Errorf("hidden move = %+v", m)
	}
	if m := hidden.Moves[2]; m.Kind != KindPartialHidden || m.To != "e7" || m.Captured != "pawn" {
		t.Errorf("partial hidden move = %+v", m)
	}
}

// TestJSONWriter_Single verifies single mode writes each game immediately
func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriterSingle(&buf)
	if err := writer.WriteGame(playTestGame(t, variant.Chess(), "", "e2e4")); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("single writer did not write immediately")
	}
	var jg JSONGame
	if err := json.Unmarshal(buf.Bytes(), &jg); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if jg.PlyCount != 1 {
		t.Errorf("PlyCount = %d, want 1", jg.PlyCount)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

// TestGameWriter_Interface verifies that writers implement the interface
func TestGameWriter_Interface(t *testing.T) {
	var buf bytes.Buffer

	var _ GameWriter = NewPGNWriter(&buf, 80)
	var _ GameWriter = NewFENWriter(&buf, false)
	var _ GameWriter = NewJSONWriter(&buf)
	var _ GameWriter = MultiWriter{}
}

// TestJSONWriter_Close verifies Close flushes pending games
func TestJSONWriter_Close(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)
	for i := 0; i < 2; i++ {
		if err := writer.WriteGame(playTestGame(t, variant.Chess(), "", "e2e4")); err != nil {
			t.Fatal(err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out.Games) != 2 {
		t.Errorf("got %d games, want 2", len(out.Games))
	}

	buf.Reset()
	if err := writer.Close(); err != nil || buf.Len() != 0 {
		t.Errorf("second Close wrote %q, err %v", buf.String(), err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestMultiWriter_StopsOnError verifies the first write error is returned
func TestMultiWriter_StopsOnError(t *testing.T) {
	var buf bytes.Buffer
	mw := MultiWriter{NewFENWriter(failingWriter{}, false), NewFENWriter(&buf, false)}
	if err := mw.WriteGame(playTestGame(t, variant.Chess(), "")); err == nil {
		t.Error("expected write error")
	}
	if buf.Len() != 0 {
		t.Error("later writer ran after a failure")
	}
	if err := mw.Flush(); err != nil {
		t.Errorf("Flush failed: %v", err)
	}
}
