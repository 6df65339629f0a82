package processing

import (
	"strings"

	"github.com/lgbarn/wildchess-go/internal/game"
)

// Feature is a rule event found by AnalyzeGame. Repetitions are matched
// from the game's own position keys instead.
type Feature int

const (
	FiftyMoveRule Feature = iota
	SeventyFiveMoveRule
	Underpromotion
	InsufficientMaterial
	MaterialOdds
)

var featureNames = map[Feature]string{
	FiftyMoveRule:        "fifty",
	SeventyFiveMoveRule:  "75",
	Underpromotion:       "underpromotion",
	InsufficientMaterial: "insufficient",
	MaterialOdds:         "odds",
}

// String returns the feature's name.
func (f Feature) String() string {
	return featureNames[f]
}

// Has reports whether the analysis found f.
func (ga *GameAnalysis) Has(f Feature) bool {
	switch f {
	case FiftyMoveRule:
		return ga.HasFiftyMoveRule
	case SeventyFiveMoveRule:
		return ga.Has75MoveRule
	case Underpromotion:
		return ga.HasUnderpromotion
	case InsufficientMaterial:
		return ga.HasInsufficientMaterial
	case MaterialOdds:
		return ga.HasMaterialOdds
	}
	return false
}

// FeatureMatcher matches games showing every one of its features.
type FeatureMatcher struct {
	Features []Feature
}

// Match analyses g. Games that cannot be analysed do not match.
func (fm FeatureMatcher) Match(g *game.Game) bool {
	analysis, err := AnalyzeGame(g)
	if err != nil {
		return false
	}
	for _, f := range fm.Features {
		if !analysis.Has(f) {
			return false
		}
	}
	return true
}

// Name describes the matcher.
func (fm FeatureMatcher) Name() string {
	names := make([]string, len(fm.Features))
	for i, f := range fm.Features {
		names[i] = f.String()
	}
	return "FeatureMatcher(" + strings.Join(names, ", ") + ")"
}
