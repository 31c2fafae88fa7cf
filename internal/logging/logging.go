// Package logging provides the shared stderr logger for folderchat.
package logging

import (
	"io"
	"os"
	"sync/atomic"

	charm "github.com/charmbracelet/log"
)

// defaultLogger is the global logger stored atomically.
var defaultLogger atomic.Pointer[charm.Logger]

func init() {
	defaultLogger.Store(New(os.Stderr, false))
}

// New creates a logger writing to w. Verbose loggers emit debug records,
// otherwise only warnings and errors are written.
func New(w io.Writer, verbose bool) *charm.Logger {
	l := charm.NewWithOptions(w, charm.Options{
		Prefix:          "folderchat",
		ReportTimestamp: false,
	})
	SetVerbosity(l, verbose)
	return l
}

// SetVerbosity switches l between debug and warn levels.
func SetVerbosity(l *charm.Logger, verbose bool) {
	if verbose {
		l.SetLevel(charm.DebugLevel)
		return
	}
	l.SetLevel(charm.WarnLevel)
}

// Default returns the global logger.
func Default() *charm.Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the global logger. Nil is ignored.
func SetDefault(l *charm.Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}
