package config

import (
	"fmt"

	"github.com/lgbarn/wildchess-go/internal/errors"
)

// MinLineLength is the narrowest move text wrap accepted.
const MinLineLength = 20

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects FEN, PGN or both
	Format OutputFormat

	// MaxLineLength is the maximum line length for PGN move text
	MaxLineLength uint

	// ShredderFEN writes castling rights as rook files
	ShredderFEN bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        FEN,
		MaxLineLength: 80,
	}
}

// Validate checks the output settings.
func (o *OutputConfig) Validate() error {
	if _, ok := formatNames[o.Format]; !ok {
		return fmt.Errorf("unknown %v: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.MaxLineLength < MinLineLength {
		return fmt.Errorf("line length %d below %d: %w", o.MaxLineLength, MinLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
