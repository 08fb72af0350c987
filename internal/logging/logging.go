// Package logging builds the zerolog logger used by the digitsplit command.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/zephyrtronium/digitsplit/internal/config"
	"github.com/zephyrtronium/digitsplit/internal/term"
)

// New creates a logger from cfg. Logs go to a rotated file if cfg.File is
// set and to stderr otherwise. The returned closer releases the file and
// must be called when logging is done.
func New(cfg config.Log, stderr io.Writer) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	var (
		w      io.Writer = stderr
		closer io.Closer = nopCloser{}
		color            = term.IsTerminal(stderr)
	)
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		w, closer, color = lj, lj, false
	}
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    !color,
			TimeFormat: time.TimeOnly,
		}
	}
	log := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return log, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
