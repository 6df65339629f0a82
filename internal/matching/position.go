package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/wildchess-go/internal/chess"
	"github.com/lgbarn/wildchess-go/internal/engine"
	"github.com/lgbarn/wildchess-go/internal/game"
)

// PositionMatcher matches games that pass through a given placement.
// Only the piece placement field of each FEN is compared.
type PositionMatcher struct {
	placements map[string]string // placement to label
}

// NewPositionMatcher creates an empty position matcher.
func NewPositionMatcher() *PositionMatcher {
	return &PositionMatcher{placements: make(map[string]string)}
}

// AddFEN adds the placement of fen, which must parse.
func (pm *PositionMatcher) AddFEN(fen, label string) error {
	pos := chess.NewPosition(nil)
	if err := engine.ParseFEN(pos, fen); err != nil {
		return fmt.Errorf("position filter: %w", err)
	}
	pm.placements[placement(engine.FEN(pos))] = label
	return nil
}

// PatternCount returns the number of placements.
func (pm *PositionMatcher) PatternCount() int {
	return len(pm.placements)
}

// Match implements GameMatcher.
func (pm *PositionMatcher) Match(g *game.Game) bool {
	_, ok := pm.MatchGame(g)
	return ok
}

// Name implements GameMatcher.
func (pm *PositionMatcher) Name() string {
	return fmt.Sprintf("PositionMatcher(%d)", len(pm.placements))
}

// MatchGame replays g from its start and returns the label of the first
// placement reached, including the start position.
func (pm *PositionMatcher) MatchGame(g *game.Game) (string, bool) {
	if len(pm.placements) == 0 {
		return "", false
	}
	pos := chess.NewPosition(g.Variant())
	if err := engine.ParseFEN(pos, g.StartFEN()); err != nil {
		return "", false
	}
	if label, ok := pm.placements[placement(engine.FEN(pos))]; ok {
		return label, true
	}
	for _, m := range g.Moves() {
		if err := pos.MakeMove(m); err != nil {
			return "", false
		}
		if label, ok := pm.placements[placement(engine.FEN(pos))]; ok {
			return label, true
		}
	}
	return "", false
}

// placement returns the first field of a FEN.
func placement(fen string) string {
	field, _, _ := strings.Cut(fen, " ")
	return field
}

