// Package logging builds the zerolog logger used for diagnostics.
//
// Diagnostics (skipped lines, rejected statuses, load and save notices) go
// through the logger; messages meant for the person at the keyboard are
// written to the command's output directly.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/rs/zerolog"
)

const DefaultLevel = "warn"

// Nop discards everything. Tests and library callers that do not care
// about diagnostics use it.
var Nop = zerolog.Nop()

// New returns a logger writing to w. Terminals get the console writer,
// anything else gets JSON lines.
func New(w io.Writer, level string) zerolog.Logger {
	if isTerminal(w) && os.Getenv("LOG_FORMAT") != "json" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	}

	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel falls back to DefaultLevel for empty or unknown input.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl, _ = zerolog.ParseLevel(DefaultLevel)
	}
	return lvl
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}
