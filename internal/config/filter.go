package config

import (
	"fmt"

	"github.com/lgbarn/wildchess-go/internal/errors"
)

// FilterConfig holds settings for selecting which replayed games are written.
type FilterConfig struct {
	// Tag criteria
	TagFile    string
	Player     string
	Result     string
	UseSoundex bool

	// Position criteria
	FEN      string
	Material string

	// Ply bounds, zero for no bound
	MinPly int
	MaxPly int

	// Rule events found by replaying the game
	CheckRepetition      bool
	Check5FoldRepetition bool
	CheckFiftyMoveRule   bool
	Check75MoveRule      bool
	MatchUnderpromotion  bool
	MatchInsufficient    bool
	MatchMaterialOdds    bool

	// Negate writes the games that do not match
	Negate bool
}

// NewFilterConfig creates a FilterConfig with default values.
// All filters are disabled by default.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// Active reports whether any criterion is set.
func (f *FilterConfig) Active() bool {
	return f.TagFile != "" || f.Player != "" || f.Result != "" || f.FEN != "" ||
		f.Material != "" || f.MinPly > 0 || f.MaxPly > 0 || f.CheckRepetition ||
		f.Check5FoldRepetition || f.CheckFiftyMoveRule || f.Check75MoveRule ||
		f.MatchUnderpromotion || f.MatchInsufficient || f.MatchMaterialOdds
}

// Validate checks that the filter configuration is valid.
func (f *FilterConfig) Validate() error {
	if f.MinPly < 0 || f.MaxPly < 0 {
		return fmt.Errorf("negative ply bound: %w", errors.ErrInvalidConfig)
	}
	if f.MaxPly > 0 && f.MinPly > f.MaxPly {
		return fmt.Errorf("minimum ply (%d) > maximum ply (%d): %w",
			f.MinPly, f.MaxPly, errors.ErrInvalidConfig)
	}
	return nil
}
