// filters.go - Game selection built from the filter configuration
package main

import (
	"github.com/lgbarn/wildchess-go/internal/config"
	"github.com/lgbarn/wildchess-go/internal/matching"
	"github.com/lgbarn/wildchess-go/internal/processing"
)

// Occurrence counts the repetition filters ask for.
const (
	threefold = 3
	fivefold  = 5
)

// buildFilter returns the matcher selecting games for output, or nil when
// no criterion is configured.
func buildFilter(f config.FilterConfig) (matching.GameMatcher, error) {
	if !f.Active() {
		return nil, nil
	}

	filter := matching.NewGameFilter()
	filter.SetUseSoundex(f.UseSoundex)
	if f.TagFile != "" {
		if err := filter.LoadTagFile(f.TagFile); err != nil {
			return nil, err
		}
	}
	if f.Player != "" {
		filter.AddPlayerFilter(f.Player)
	}
	if f.Result != "" {
		filter.AddResultFilter(f.Result)
	}
	if f.FEN != "" {
		if err := filter.AddFENFilter(f.FEN); err != nil {
			return nil, err
		}
	}
	if f.Material != "" {
		mm, err := matching.NewMaterialMatcher(f.Material, false)
		if err != nil {
			return nil, err
		}
		filter.AddMatcher(mm)
	}
	if f.MinPly > 0 || f.MaxPly > 0 {
		filter.AddMatcher(matching.PlyMatcher{Min: f.MinPly, Max: f.MaxPly})
	}
	if f.CheckRepetition {
		filter.AddMatcher(matching.RepetitionMatcher{Count: threefold})
	}
	if f.Check5FoldRepetition {
		filter.AddMatcher(matching.RepetitionMatcher{Count: fivefold})
	}

	var features []processing.Feature
	for _, want := range []struct {
		set     bool
		feature processing.Feature
	}{
		{f.CheckFiftyMoveRule, processing.FiftyMoveRule},
		{f.Check75MoveRule, processing.SeventyFiveMoveRule},
		{f.MatchUnderpromotion, processing.Underpromotion},
		{f.MatchInsufficient, processing.InsufficientMaterial},
		{f.MatchMaterialOdds, processing.MaterialOdds},
	} {
		if want.set {
			features = append(features, want.feature)
		}
	}
	if len(features) > 0 {
		filter.AddMatcher(processing.FeatureMatcher{Features: features})
	}

	if f.Negate {
		return matching.Not{M: filter}, nil
	}
	return filter, nil
}
