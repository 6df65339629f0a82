package config

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/lgbarn/wildchess-go/internal/errors"
)

// EnvPrefix starts the name of every variable read by ApplyEnv.
const EnvPrefix = "WILDCHESS_"

// Environment variables read by ApplyEnv.
const (
	EnvVariant    = EnvPrefix + "VARIANT"
	EnvWorkers    = EnvPrefix + "WORKERS"
	EnvFormat     = EnvPrefix + "FORMAT"
	EnvLineLength = EnvPrefix + "LINE_LENGTH"
	EnvLogLevel   = EnvPrefix + "LOG_LEVEL"
	EnvDuplicates = EnvPrefix + "SUPPRESS_DUPLICATES"
)

// envSettings maps the environment variables onto the settings they
// override. Unset and blank variables leave a field unchanged.
type envSettings struct {
	Variant    string       `env:"VARIANT"`
	Workers    int          `env:"WORKERS"`
	Format     OutputFormat `env:"FORMAT"`
	LineLength uint         `env:"LINE_LENGTH"`
	LogLevel   string       `env:"LOG_LEVEL"`
	Duplicates bool         `env:"SUPPRESS_DUPLICATES"`
}

// LoadEnv returns the process environment layered over the variables of
// the given .env files (".env" when none are named). Missing files are
// skipped, earlier files win over later ones and a non-blank process
// variable wins over every file.
func LoadEnv(paths ...string) (map[string]string, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	vars := make(map[string]string)
	for _, path := range paths {
		fileVars, err := readEnvFile(path)
		if err != nil {
			return nil, err
		}
		for k, v := range fileVars {
			if _, ok := vars[k]; !ok {
				vars[k] = v
			}
		}
	}
	for k, v := range processEnv() {
		if strings.TrimSpace(v) != "" {
			vars[k] = v
		}
	}
	return vars, nil
}

func readEnvFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()

	vars, err := ParseEnv(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return vars, nil
}

// ParseEnv reads .env formatted text.
func ParseEnv(r io.Reader) (map[string]string, error) {
	vars, err := godotenv.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return vars, nil
}

func processEnv() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars
}

// ApplyEnv overrides settings in cfg from vars. A nil vars reads the
// process environment. Blank values are ignored.
func ApplyEnv(cfg *Config, vars map[string]string) error {
	if vars == nil {
		vars = processEnv()
	}
	trimmed := make(map[string]string, len(vars))
	for k, v := range vars {
		if v = strings.TrimSpace(v); v != "" {
			trimmed[k] = v
		}
	}

	settings := envSettings{
		Variant:    cfg.Replay.Variant,
		Workers:    cfg.Replay.Workers,
		Format:     cfg.Output.Format,
		LineLength: cfg.Output.MaxLineLength,
		LogLevel:   cfg.Log.Level,
		Duplicates: cfg.Duplicate.Suppress,
	}
	err := env.ParseWithOptions(&settings, env.Options{
		Environment: trimmed,
		Prefix:      EnvPrefix,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	cfg.Replay.Variant = settings.Variant
	cfg.Replay.Workers = settings.Workers
	cfg.Output.Format = settings.Format
	cfg.Output.MaxLineLength = settings.LineLength
	cfg.Log.Level = settings.LogLevel
	cfg.Duplicate.Suppress = settings.Duplicates
	return nil
}
