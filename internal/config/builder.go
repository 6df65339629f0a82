package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVariant sets the variant name.
func (b *ConfigBuilder) WithVariant(name string) *ConfigBuilder {
	b.cfg.Replay.Variant = name
	return b
}

// WithStartFEN sets the start position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Replay.StartFEN = fen
	return b
}

// WithMoves sets the move list of a single game.
func (b *ConfigBuilder) WithMoves(moves ...string) *ConfigBuilder {
	b.cfg.Replay.Moves = moves
	return b
}

// WithInputFile sets the PGN input file.
func (b *ConfigBuilder) WithInputFile(path string) *ConfigBuilder {
	b.cfg.Replay.InputFile = path
	return b
}

// WithWorkers sets the number of concurrent replays.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Replay.Workers = n
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithShredderFEN selects Shredder castling notation.
func (b *ConfigBuilder) WithShredderFEN(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShredderFEN = enabled
	return b
}

// WithDuplicateSuppression drops repeated games. exact also compares
// move counts.
func (b *ConfigBuilder) WithDuplicateSuppression(suppress, exact bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = suppress
	b.cfg.Duplicate.ExactMatch = exact
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithConsoleLog selects console or JSON log output.
func (b *ConfigBuilder) WithConsoleLog(enabled bool) *ConfigBuilder {
	b.cfg.Log.Console = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogOutput sets the log writer.
func (b *ConfigBuilder) WithLogOutput(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
