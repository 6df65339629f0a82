// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/wildchess-go/internal/config"
)

// options holds the parsed command line.
type options struct {
	variant    string
	fen        string
	moves      string
	input      string
	workers    int
	format     string
	lineLength uint
	shredder   bool
	dedupe     bool
	exactDupes bool
	filter     config.FilterConfig
	logLevel   string
	logJSON    bool
	envFile    string
	list       bool
	version    bool

	set map[string]bool // flags given explicitly
}

// parseFlags parses args into options. Usage and parse errors go to stderr.
func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("wildchess", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Game selection
	fs.StringVar(&opts.variant, "variant", config.DefaultVariant, "Variant name (see -list)")
	fs.StringVar(&opts.fen, "fen", "", "Start position in FEN (default: the variant's setup)")
	fs.StringVar(&opts.moves, "moves", "", "Moves to replay, separated by spaces or commas")
	fs.StringVar(&opts.input, "i", "", "PGN file of games to replay (- for stdin)")
	fs.IntVar(&opts.workers, "j", 0, "Games replayed concurrently (default: number of CPUs)")

	// Output options
	fs.StringVar(&opts.format, "format", "fen", "Output format: fen, pgn, both, json")
	fs.UintVar(&opts.lineLength, "w", 80, "Maximum PGN line length")
	fs.BoolVar(&opts.shredder, "shredder", false, "Write castling rights as rook files")

	// Duplicates
	fs.BoolVar(&opts.dedupe, "D", false, "Suppress games ending in a position already written")
	fs.BoolVar(&opts.exactDupes, "exact", false, "With -D, duplicates must also have the same move count")

	// Filtering
	fs.StringVar(&opts.filter.TagFile, "t", "", "Tag criteria file for filtering")
	fs.StringVar(&opts.filter.Player, "p", "", "Filter by player name (either color)")
	fs.BoolVar(&opts.filter.UseSoundex, "S", false, "Use Soundex for player name matching")
	fs.StringVar(&opts.filter.Result, "Tr", "", "Filter by result (1-0, 0-1, 1/2-1/2)")
	fs.StringVar(&opts.filter.FEN, "Tf", "", "Filter by a position the game passes through")
	fs.StringVar(&opts.filter.Material, "material", "", "Filter by final material, e.g. KR:k")
	fs.IntVar(&opts.filter.MinPly, "minply", 0, "Minimum ply count")
	fs.IntVar(&opts.filter.MaxPly, "maxply", 0, "Maximum ply count (0 = no limit)")
	fs.BoolVar(&opts.filter.CheckRepetition, "repetition", false, "Games with 3-fold repetition")
	fs.BoolVar(&opts.filter.Check5FoldRepetition, "repetition5", false, "Games with 5-fold repetition")
	fs.BoolVar(&opts.filter.CheckFiftyMoveRule, "fifty", false, "Games with 50-move rule")
	fs.BoolVar(&opts.filter.Check75MoveRule, "75", false, "Games with 75-move rule (automatic draw)")
	fs.BoolVar(&opts.filter.MatchUnderpromotion, "underpromotion", false, "Games with underpromotion")
	fs.BoolVar(&opts.filter.MatchInsufficient, "insufficient", false, "Games ending with insufficient mating material")
	fs.BoolVar(&opts.filter.MatchMaterialOdds, "odds", false, "Games played at material odds (unequal starting material)")
	fs.BoolVar(&opts.filter.Negate, "n", false, "Output games that DON'T match criteria")

	// Logging
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.BoolVar(&opts.logJSON, "log-json", false, "Log JSON lines instead of console text")
	fs.StringVar(&opts.envFile, "env", "", "Environment file with WILDCHESS_* defaults (default: .env)")

	// Information
	fs.BoolVar(&opts.list, "list", false, "List the known variants and exit")
	fs.BoolVar(&opts.version, "version", false, "Show version and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: wildchess [options]\n\n")
		fmt.Fprintf(stderr, "Replays chess variant games and prints the resulting positions.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		if opts.input != "" {
			return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
		}
		opts.input = fs.Arg(0)
	}

	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	if fs.NArg() > 0 {
		opts.set["i"] = true
	}
	return opts, nil
}

// splitMoves splits a move list on spaces and commas.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// applyFlags copies explicitly given flags into cfg, so that defaults
// taken from the environment survive.
func applyFlags(cfg *config.Config, opts *options) error {
	if opts.set["variant"] {
		cfg.Replay.Variant = opts.variant
	}
	if opts.set["fen"] {
		cfg.Replay.StartFEN = opts.fen
	}
	if opts.set["moves"] {
		cfg.Replay.Moves = splitMoves(opts.moves)
	}
	if opts.set["i"] {
		cfg.Replay.InputFile = opts.input
	}
	if opts.set["j"] {
		cfg.Replay.Workers = opts.workers
	}
	if opts.set["format"] {
		f, err := config.ParseOutputFormat(opts.format)
		if err != nil {
			return err
		}
		cfg.Output.Format = f
	}
	if opts.set["w"] {
		cfg.Output.MaxLineLength = opts.lineLength
	}
	if opts.set["shredder"] {
		cfg.Output.ShredderFEN = opts.shredder
	}
	if opts.set["D"] {
		cfg.Duplicate.Suppress = opts.dedupe
	}
	if opts.set["exact"] {
		cfg.Duplicate.ExactMatch = opts.exactDupes
	}
	applyFilterFlags(&cfg.Filter, opts)
	if opts.set["log-level"] {
		cfg.Log.Level = opts.logLevel
	}
	if opts.set["log-json"] {
		cfg.Log.Console = !opts.logJSON
	}
	return nil
}

// applyFilterFlags copies explicitly given filter flags.
func applyFilterFlags(f *config.FilterConfig, opts *options) {
	for name, apply := range map[string]func(){
		"t":              func() { f.TagFile = opts.filter.TagFile },
		"p":              func() { f.Player = opts.filter.Player },
		"S":              func() { f.UseSoundex = opts.filter.UseSoundex },
		"Tr":             func() { f.Result = opts.filter.Result },
		"Tf":             func() { f.FEN = opts.filter.FEN },
		"material":       func() { f.Material = opts.filter.Material },
		"minply":         func() { f.MinPly = opts.filter.MinPly },
		"maxply":         func() { f.MaxPly = opts.filter.MaxPly },
		"repetition":     func() { f.CheckRepetition = opts.filter.CheckRepetition },
		"repetition5":    func() { f.Check5FoldRepetition = opts.filter.Check5FoldRepetition },
		"fifty":          func() { f.CheckFiftyMoveRule = opts.filter.CheckFiftyMoveRule },
		"75":             func() { f.Check75MoveRule = opts.filter.Check75MoveRule },
		"underpromotion": func() { f.MatchUnderpromotion = opts.filter.MatchUnderpromotion },
		"insufficient":   func() { f.MatchInsufficient = opts.filter.MatchInsufficient },
		"odds":           func() { f.MatchMaterialOdds = opts.filter.MatchMaterialOdds },
		"n":              func() { f.Negate = opts.filter.Negate },
	} {
		if opts.set[name] {
			apply()
		}
	}
}
