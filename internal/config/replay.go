package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/lgbarn/wildchess-go/internal/errors"
)

// DefaultVariant is the variant used when none is configured.
const DefaultVariant = "chess"

// ReplayConfig holds settings for the games to replay.
type ReplayConfig struct {
	// Variant names the rules, as known to the variant registry
	Variant string

	// StartFEN overrides the variant's own setup when non-empty
	StartFEN string

	// Moves is a move list replayed as a single game
	Moves []string

	// InputFile is a PGN file of games to replay; "-" reads standard input
	InputFile string

	// Workers is the number of games replayed concurrently
	Workers int
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{
		Variant: DefaultVariant,
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the replay configuration is usable.
func (r *ReplayConfig) Validate() error {
	if strings.TrimSpace(r.Variant) == "" {
		return fmt.Errorf("empty variant name: %w", errors.ErrInvalidConfig)
	}
	if r.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", r.Workers, errors.ErrInvalidConfig)
	}
	if r.InputFile != "" && len(r.Moves) > 0 {
		return fmt.Errorf("moves and an input file are mutually exclusive: %w", errors.ErrInvalidConfig)
	}
	return nil
}
