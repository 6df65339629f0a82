package engine

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/wildchess-go/internal/chess"
)

func names(squares []chess.Square) []string {
	out := make([]string, 0, len(squares))
	for _, s := range squares {
		out = append(out, s.String())
	}
	sort.Strings(out)
	return out
}

func TestSlides(t *testing.T) {
	pos := newPosition(t, "8/8/8/3p4/8/1N6/8/3R4 w - - 0 1")
	got := names(Slides(pos, sq("d1"), chess.White, OrthogonalDirections))
	want := []string{"a1", "b1", "c1", "d2", "d3", "d4", "d5", "e1", "f1", "g1", "h1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rook slides mismatch (-want +got):\n%s", diff)
	}
}

func TestSteps(t *testing.T) {
	pos := newPosition(t, "8/8/8/8/8/8/3P4/1N6 w - - 0 1")
	got := names(Steps(pos, sq("b1"), chess.White, KnightOffsets))
	want := []string{"a3", "c3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("knight steps mismatch (-want +got):\n%s", diff)
	}
}

func TestBetweenAndPathClear(t *testing.T) {
	if got := names(Between(sq("a1"), sq("d4"))); !cmp.Equal(got, []string{"b2", "c3"}) {
		t.Errorf("Between(a1, d4) = %v", got)
	}
	if got := Between(sq("a1"), sq("b3")); got != nil {
		t.Errorf("Between(a1, b3) = %v; want nil", got)
	}
	if got := names(Between(sq("h1"), sq("e1"))); !cmp.Equal(got, []string{"f1", "g1"}) {
		t.Errorf("Between(h1, e1) = %v", got)
	}

	pos := newPosition(t, InitialFEN)
	if IsPathClear(pos, sq("e1"), sq("h1")) {
		t.Error("e1-h1 should be blocked in the initial position")
	}
	if !IsPathClear(pos, sq("a2"), sq("a7")) {
		t.Error("a2-a7 should be clear")
	}
}

func TestRankSpan(t *testing.T) {
	got := names(RankSpan(0, 6, 4))
	if !cmp.Equal(got, []string{"e1", "f1", "g1"}) {
		t.Errorf("RankSpan(0, 6, 4) = %v", got)
	}
	if !Contains(RankSpan(7, 0, 7), sq("h8")) {
		t.Error("RankSpan(7, 0, 7) should contain h8")
	}
}
