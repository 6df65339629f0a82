package matching

import (
	"testing"

	"github.com/lgbarn/wildchess-go/internal/game"
	"github.com/lgbarn/wildchess-go/internal/variant"
)

func TestPositionMatcher(t *testing.T) {
	pm := NewPositionMatcher()
	if err := pm.AddFEN("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3", "Two knights"); err != nil {
		t.Fatal(err)
	}
	if pm.PatternCount() != 1 {
		t.Errorf("PatternCount() = %d, want 1", pm.PatternCount())
	}

	// Clocks and side to move are not compared.
	g := newTestGame(t, []string{"g1f3", "b8c6", "e2e4", "e7e5", "f1c4"})
	label, ok := pm.MatchGame(g)
	if !ok || label != "Two knights" {
		t.Errorf("MatchGame() = %q, %v", label, ok)
	}

	if pm.Match(newTestGame(t, []string{"e2e4", "e7e5"})) {
		t.Error("game never reached the position")
	}
}

func TestPositionMatcher_StartPosition(t *testing.T) {
	pm := NewPositionMatcher()
	start := "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1"
	if err := pm.AddFEN(start, "start"); err != nil {
		t.Fatal(err)
	}
	g, err := game.New(variant.Chess(), game.WithStartFEN(start))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.PlayAll([]string{"O-O-O", "e8d7"}); err != nil {
		t.Fatal(err)
	}
	if !pm.Match(g) {
		t.Error("start position not matched")
	}
	if NewPositionMatcher().Match(g) {
		t.Error("empty matcher matched")
	}
}
