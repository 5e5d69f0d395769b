package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds the CLI logger on w. Default level is info; quiet keeps
// errors only and verbose adds the renderer's debug state transitions.
func newLogger(w io.Writer, quiet, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case verbose:
		level = zerolog.DebugLevel
	case quiet:
		level = zerolog.ErrorLevel
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
