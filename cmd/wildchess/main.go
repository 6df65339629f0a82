// wildchess replays games of standard chess and its variants and prints
// the resulting positions or game records.
package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/wildchess-go/internal/config"
	"github.com/lgbarn/wildchess-go/internal/hashing"
	"github.com/lgbarn/wildchess-go/internal/matching"
	"github.com/lgbarn/wildchess-go/internal/output"
	"github.com/lgbarn/wildchess-go/internal/pgn"
	"github.com/lgbarn/wildchess-go/internal/processing"
	"github.com/lgbarn/wildchess-go/internal/variant"
	"github.com/lgbarn/wildchess-go/internal/worker"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK      = 0
	exitFailed  = 1 // at least one game could not be replayed
	exitUsage   = 2
	exitIOError = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is the whole program with its streams passed in.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "wildchess: %v\n", err)
		return exitUsage
	}

	if opts.version {
		fmt.Fprintf(stdout, "wildchess version %s\n", programVersion)
		return exitOK
	}

	registry := variant.Builtin()
	if opts.list {
		for _, name := range registry.Names() {
			fmt.Fprintln(stdout, name)
		}
		return exitOK
	}

	cfg, err := buildConfig(opts, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "wildchess: %v\n", err)
		return exitUsage
	}

	logger, err := newLogger(cfg.Log, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(stderr, "wildchess: %v\n", err)
		return exitUsage
	}

	if _, err := registry.Lookup(cfg.Replay.Variant); err != nil {
		logger.Error().Err(err).Msg("cannot start")
		return exitUsage
	}
	filter, err := buildFilter(cfg.Filter)
	if err != nil {
		logger.Error().Err(err).Msg("invalid filter")
		return exitUsage
	}

	records, err := loadRecords(cfg, stdin)
	if err != nil {
		logger.Error().Err(err).Str("input", cfg.Replay.InputFile).Msg("cannot read games")
		return exitIOError
	}
	for _, rec := range records {
		if v := processing.ValidateTags(rec); !v.Valid {
			logger.Warn().Int("line", rec.Line).Str("problems", v.String()).Msg("suspect record")
		}
	}
	logger.Info().
		Int("games", len(records)).
		Int("workers", cfg.Replay.Workers).
		Str("variant", cfg.Replay.Variant).
		Msg("replaying")

	out, err := newResultWriter(cfg, logger, filter)
	if err != nil {
		logger.Error().Err(err).Msg("cannot write output")
		return exitIOError
	}
	replayer := worker.NewReplayer(registry, cfg.Replay.Variant, moveLogger(logger))
	err = worker.ReplayEach(records, replayer.ProcessFunc(), out.write,
		worker.WithWorkers(cfg.Replay.Workers),
		worker.WithBufferSize(2*cfg.Replay.Workers))
	if err == nil {
		err = out.close()
	}
	if err != nil {
		logger.Error().Err(err).Msg("cannot write output")
		return exitIOError
	}
	logger.Info().Int("games", out.games).Int("failed", out.failed).Msg("done")
	if out.failed > 0 {
		return exitFailed
	}
	return exitOK
}

// buildConfig layers defaults, the environment and the command line.
func buildConfig(opts *options, stdout, stderr io.Writer) (*config.Config, error) {
	cfg := config.NewConfigBuilder().
		WithOutput(stdout).
		WithLogOutput(stderr).
		Build()

	var envFiles []string
	if opts.envFile != "" {
		envFiles = append(envFiles, opts.envFile)
	}
	vars, err := config.LoadEnv(envFiles...)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg, vars); err != nil {
		return nil, err
	}
	if err := applyFlags(cfg, opts); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadRecords returns the games to replay: the PGN input when one is
// configured, otherwise a single game from the move list.
func loadRecords(cfg *config.Config, stdin io.Reader) ([]*pgn.Record, error) {
	if cfg.Replay.InputFile == "" {
		rec := &pgn.Record{Moves: cfg.Replay.Moves, Result: pgn.ResultUnknown, Line: 1}
		if cfg.Replay.StartFEN != "" {
			rec.Tags = pgn.Tags{
				{Name: pgn.TagSetUp, Value: "1"},
				{Name: pgn.TagFEN, Value: cfg.Replay.StartFEN},
			}
		}
		return []*pgn.Record{rec}, nil
	}

	name := cfg.Replay.InputFile
	in := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	} else {
		name = "stdin"
	}
	return pgn.NewReader(in, name).ReadAll()
}

// resultWriter prints the replayed games selected by filter, which may be
// nil, in record order and logs each failure.
type resultWriter struct {
	logger   zerolog.Logger
	filter   matching.GameMatcher
	writer   output.GameWriter
	detector *hashing.DuplicateDetector

	games  int
	failed int
}

func newResultWriter(cfg *config.Config, logger zerolog.Logger, filter matching.GameMatcher) (*resultWriter, error) {
	writer, err := output.NewGameWriter(cfg.OutputFile, cfg.Output)
	if err != nil {
		return nil, err
	}
	rw := &resultWriter{logger: logger, filter: filter, writer: writer}
	if cfg.Duplicate.Suppress {
		rw.detector = hashing.NewDuplicateDetector(cfg.Duplicate.ExactMatch)
	}
	return rw, nil
}

// write handles one replay result. Only output errors are returned.
func (rw *resultWriter) write(result worker.ProcessResult) error {
	rw.games++
	if result.Error != nil {
		rw.failed++
		rw.logger.Error().
			Err(result.Error).
			Int("game", result.Index+1).
			Int("line", result.Record.Line).
			Msg("replay failed")
		return nil
	}
	g := result.Game
	if rw.filter != nil && !rw.filter.Match(g) {
		return nil
	}
	if rw.detector != nil && rw.detector.CheckAndAdd(g.Signature()) {
		rw.logger.Debug().Str("game", g.ID).Int("line", result.Record.Line).Msg("duplicate skipped")
		return nil
	}
	return rw.writer.WriteGame(g)
}

func (rw *resultWriter) close() error {
	if err := rw.writer.Close(); err != nil {
		return err
	}
	if rw.detector != nil {
		rw.logger.Info().
			Int("unique", rw.detector.UniqueCount()).
			Int("duplicates", rw.detector.DuplicateCount()).
			Msg("duplicates suppressed")
	}
	return nil
}
