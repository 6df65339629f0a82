// Package matching selects replayed games by their tags, positions and
// length.
package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/wildchess-go/internal/game"
)

// GameMatcher is the interface for all game matching implementations.
type GameMatcher interface {
	// Match returns true if the game matches the matcher's criteria.
	Match(g *game.Game) bool

	// Name returns a descriptive name for this matcher.
	Name() string
}

// MatchMode specifies how multiple matchers are combined.
type MatchMode int

const (
	// MatchAll requires all matchers to match (AND logic).
	MatchAll MatchMode = iota

	// MatchAny requires at least one matcher to match (OR logic).
	MatchAny
)

// CompositeMatcher combines multiple GameMatchers with AND or OR logic.
type CompositeMatcher struct {
	matchers []GameMatcher
	mode     MatchMode
}

// NewCompositeMatcher creates a new CompositeMatcher with the given mode and matchers.
func NewCompositeMatcher(mode MatchMode, matchers ...GameMatcher) *CompositeMatcher {
	return &CompositeMatcher{
		matchers: matchers,
		mode:     mode,
	}
}

// Match implements GameMatcher.
func (c *CompositeMatcher) Match(g *game.Game) bool {
	if len(c.matchers) == 0 {
		// Empty composite: AND mode is vacuously true, OR mode has no conditions
		return c.mode == MatchAll
	}

	for _, m := range c.matchers {
		if m.Match(g) == (c.mode == MatchAny) {
			return c.mode == MatchAny
		}
	}
	return c.mode == MatchAll
}

// Name implements GameMatcher.
func (c *CompositeMatcher) Name() string {
	if len(c.matchers) == 0 {
		return "CompositeMatcher(empty)"
	}

	names := make([]string, len(c.matchers))
	for i, m := range c.matchers {
		names[i] = m.Name()
	}

	modeStr := "AND"
	if c.mode == MatchAny {
		modeStr = "OR"
	}

	return fmt.Sprintf("CompositeMatcher(%s: %s)", modeStr, strings.Join(names, ", "))
}

// Add adds a matcher to the composite.
func (c *CompositeMatcher) Add(m GameMatcher) {
	c.matchers = append(c.matchers, m)
}

// Len returns the number of matchers in the composite.
func (c *CompositeMatcher) Len() int {
	return len(c.matchers)
}

// Not inverts a matcher.
type Not struct {
	M GameMatcher
}

// Match implements GameMatcher.
func (n Not) Match(g *game.Game) bool { return !n.M.Match(g) }

// Name implements GameMatcher.
func (n Not) Name() string { return "Not(" + n.M.Name() + ")" }

// PlyMatcher matches games by their number of half-moves.
type PlyMatcher struct {
	Min int
	Max int // zero for no upper bound
}

// Match implements GameMatcher.
func (p PlyMatcher) Match(g *game.Game) bool {
	n := g.Ply()
	return n >= p.Min && (p.Max == 0 || n <= p.Max)
}

// Name implements GameMatcher.
func (p PlyMatcher) Name() string {
	return fmt.Sprintf("PlyMatcher(%d-%d)", p.Min, p.Max)
}

// RepetitionMatcher matches games in which some position occurred at least
// Count times.
type RepetitionMatcher struct {
	Count int
}

// Match implements GameMatcher.
func (r RepetitionMatcher) Match(g *game.Game) bool {
	return g.MaxRepetitions() >= r.Count
}

// Name implements GameMatcher.
func (r RepetitionMatcher) Name() string {
	return fmt.Sprintf("RepetitionMatcher(%d)", r.Count)
}
