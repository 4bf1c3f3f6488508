// Package logging configures the zerolog logger used across the CLI.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w (normally stderr). Debug level is
// opt-in via the --debug flag; everything above warn stays visible otherwise
// so backend trouble is never silently swallowed.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Nop returns a disabled logger for tests and for callers that did not ask
// for output.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
