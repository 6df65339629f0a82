package matching

import (
	"testing"

	"github.com/lgbarn/wildchess-go/internal/game"
	"github.com/lgbarn/wildchess-go/internal/pgn"
	"github.com/lgbarn/wildchess-go/internal/variant"
)

// newTestGame plays moves in standard chess and sets tags given as
// name/value pairs.
func newTestGame(t *testing.T, moves []string, tags ...string) *game.Game {
	t.Helper()
	g, err := game.New(variant.Chess())
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	if err := g.PlayAll(moves); err != nil {
		t.Fatalf("PlayAll: %v", err)
	}
	for i := 0; i+1 < len(tags); i += 2 {
		if err := g.SetTag(tags[i], tags[i+1]); err != nil {
			t.Fatalf("SetTag: %v", err)
		}
	}
	return g
}

type fixedMatcher bool

func (f fixedMatcher) Match(*game.Game) bool { return bool(f) }
func (f fixedMatcher) Name() string {
	if f {
		return "yes"
	}
	return "no"
}

func TestCompositeMatcher(t *testing.T) {
	g := newTestGame(t, nil)
	tests := []struct {
		name     string
		mode     MatchMode
		matchers []GameMatcher
		want     bool
	}{
		{"empty and", MatchAll, nil, true},
		{"empty or", MatchAny, nil, false},
		{"and all true", MatchAll, []GameMatcher{fixedMatcher(true), fixedMatcher(true)}, true},
		{"and one false", MatchAll, []GameMatcher{fixedMatcher(true), fixedMatcher(false)}, false},
		{"or one true", MatchAny, []GameMatcher{fixedMatcher(false), fixedMatcher(true)}, true},
		{"or all false", MatchAny, []GameMatcher{fixedMatcher(false), fixedMatcher(false)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCompositeMatcher(tt.mode, tt.matchers...)
			if got := c.Match(g); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompositeMatcher_Name(t *testing.T) {
	c := NewCompositeMatcher(MatchAny)
	if got := c.Name(); got != "CompositeMatcher(empty)" {
		t.Errorf("Name() = %q", got)
	}
	c.Add(fixedMatcher(true))
	c.Add(Not{fixedMatcher(true)})
	if got, want := c.Name(), "CompositeMatcher(OR: yes, Not(yes))"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestNot(t *testing.T) {
	g := newTestGame(t, nil)
	if (Not{fixedMatcher(true)}).Match(g) {
		t.Error("Not(true) matched")
	}
	if !(Not{fixedMatcher(false)}).Match(g) {
		t.Error("Not(false) did not match")
	}
}

func TestPlyMatcher(t *testing.T) {
	g := newTestGame(t, []string{"e2e4", "e7e5", "g1f3", "b8c6"})
	tests := []struct {
		min, max int
		want     bool
	}{
		{0, 0, true},
		{4, 0, true},
		{5, 0, false},
		{0, 4, true},
		{0, 3, false},
		{2, 6, true},
	}

	for _, tt := range tests {
		m := PlyMatcher{Min: tt.min, Max: tt.max}
		if got := m.Match(g); got != tt.want {
			t.Errorf("%s.Match() = %v, want %v", m.Name(), got, tt.want)
		}
	}
}

func TestRepetitionMatcher(t *testing.T) {
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	twice := newTestGame(t, shuffle)
	thrice := newTestGame(t, append(append([]string{}, shuffle...), shuffle...))

	m := RepetitionMatcher{Count: 3}
	if m.Match(twice) {
		t.Error("two occurrences matched a threefold repetition")
	}
	if !m.Match(thrice) {
		t.Error("three occurrences did not match")
	}
}

func TestGameFilter(t *testing.T) {
	g := newTestGame(t, []string{"e2e4", "e7e5"}, pgn.TagWhite, "Fischer, Robert", pgn.TagResult, "1-0")

	f := NewGameFilter()
	if f.HasCriteria() {
		t.Error("new filter has criteria")
	}
	if !f.Match(g) {
		t.Error("empty filter should match")
	}

	f.AddPlayerFilter("fischer")
	f.AddResultFilter("1-0")
	if err := f.AddFENFilter("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"); err != nil {
		t.Fatalf("AddFENFilter: %v", err)
	}
	f.AddMatcher(PlyMatcher{Min: 2})
	if !f.HasCriteria() {
		t.Error("filter should have criteria")
	}
	if !f.Match(g) {
		t.Error("filter should match")
	}

	f.AddMatcher(PlyMatcher{Min: 3})
	if f.Match(g) {
		t.Error("ply criterion should fail")
	}
}

func TestGameFilter_PositionRequired(t *testing.T) {
	g := newTestGame(t, []string{"d2d4"})
	f := NewGameFilter()
	if err := f.AddFENFilter("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"); err != nil {
		t.Fatal(err)
	}
	if f.Match(g) {
		t.Error("game never reached the position")
	}
	if err := f.AddFENFilter("not a fen"); err == nil {
		t.Error("expected error for bad FEN")
	}
}
