package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/lgbarn/wildchess-go/internal/config"
	"github.com/lgbarn/wildchess-go/internal/game"
)

// newLogger builds the program logger writing to w.
func newLogger(cfg config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	lvl, err := cfg.ZerologLevel()
	if err != nil {
		return zerolog.Nop(), err
	}
	if cfg.Console {
		color := false
		if f, ok := w.(*os.File); ok {
			color = isatty.IsTerminal(f.Fd())
		}
		w = zerolog.ConsoleWriter{Out: w, NoColor: !color, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// moveLogger logs every applied move at debug level.
func moveLogger(logger zerolog.Logger) game.Listener {
	return game.ListenerFunc(func(e game.MoveEvent) {
		logger.Debug().
			Str("game", e.GameID).
			Int("ply", e.Ply).
			Str("move", game.Notation(e.Move)).
			Str("player", e.Move.Player().String()).
			Bool("capture", e.Move.IsCapture()).
			Str("fen", e.FEN).
			Msg("move")
	})
}
