// Package logging builds the cursoctl diagnostic logger.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
)

// New returns a pterm logger writing to w at info, or debug when debug is set.
// A nil w writes to stderr.
func New(w io.Writer, debug bool) *pterm.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := pterm.LogLevelInfo
	if debug {
		level = pterm.LogLevelDebug
	}
	return pterm.DefaultLogger.WithLevel(level).WithWriter(w)
}

// NewSlog bridges logger into log/slog for the SDK and the router.
func NewSlog(logger *pterm.Logger) *slog.Logger {
	return slog.New(pterm.NewSlogHandler(logger))
}
