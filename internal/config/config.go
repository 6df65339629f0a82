// Package config provides configuration for the wildchess command.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/wildchess-go/internal/errors"
)

// OutputFormat selects what is printed for each replayed game.
type OutputFormat int

const (
	FEN  OutputFormat = iota // Final position only
	PGN                      // Game record only
	Both                     // Game record followed by the final position
	JSON                     // Games as a JSON document
)

var formatNames = map[OutputFormat]string{
	FEN:  "fen",
	PGN:  "pgn",
	Both: "both",
	JSON: "json",
}

// String returns the name accepted by ParseOutputFormat.
func (f OutputFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat parses a format name such as "pgn", ignoring case.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for f, name := range formatNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return f, nil
		}
	}
	return FEN, fmt.Errorf("output format %q: %w", s, errors.ErrInvalidConfig)
}

// UnmarshalText parses a format name, letting OutputFormat be read from
// environment variables.
func (f *OutputFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseOutputFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Config holds all program configuration.
type Config struct {
	Replay    ReplayConfig
	Output    OutputConfig
	Duplicate DuplicateConfig
	Filter    FilterConfig
	Log       LogConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Replay:     *NewReplayConfig(),
		Output:     *NewOutputConfig(),
		Duplicate:  *NewDuplicateConfig(),
		Filter:     *NewFilterConfig(),
		Log:        *NewLogConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogOutput sets the log writer.
func (c *Config) SetLogOutput(w io.Writer) {
	c.LogFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Replay.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Filter.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}
