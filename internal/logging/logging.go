// Package logging builds the zerolog logger used by the command line.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a human-readable logger writing to w.
// Quiet limits output to warnings and errors; verbose enables debug output.
func New(w io.Writer, quiet, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel

	switch {
	case quiet:
		level = zerolog.WarnLevel
	case verbose:
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}

	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}
