// Package logging constructs the zerolog loggers used across winroles.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// NewStderr returns a console logger writing to stderr. Verbose enables
// debug-level output.
func NewStderr(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return New(os.Stderr, level)
}

// Nop returns a logger that discards everything, for tests and optional
// dependencies.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
