package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lgbarn/wildchess-go/internal/errors"
)

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a zerolog level name such as "debug" or "warn"
	Level string

	// Console selects human-readable output instead of JSON lines
	Console bool
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{Level: zerolog.InfoLevel.String(), Console: true}
}

// ZerologLevel returns the parsed level.
func (l *LogConfig) ZerologLevel() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	return lvl, nil
}

// Validate checks that the level parses.
func (l *LogConfig) Validate() error {
	_, err := l.ZerologLevel()
	return err
}
