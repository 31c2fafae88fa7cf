package commands

import (
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/diogo/folderchat/internal/config"
	"github.com/diogo/folderchat/internal/models"
	"github.com/diogo/folderchat/internal/render"
	"github.com/diogo/folderchat/internal/tui"
)

// ViewerFunc opens an interactive viewer over a transcript.
type ViewerFunc func(t *models.Transcript, opts render.Options, theme render.TUITheme) error

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// StdinPiped reports whether Stdin carries piped data rather than a terminal.
	StdinPiped func() bool

	// TerminalWidth returns the width of the output terminal.
	TerminalWidth func() int

	// Clipboard copies text to the system clipboard.
	Clipboard func(text string) error

	// Viewer runs the interactive transcript viewer.
	Viewer ViewerFunc

	// ConfigPath returns the location of the user config file.
	ConfigPath func() (string, error)
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		Stdin:         os.Stdin,
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		StdinPiped:    stdinPiped,
		TerminalWidth: getTerminalWidth,
		Clipboard:     clipboard.WriteAll,
		Viewer:        tui.RunViewer,
		ConfigPath:    config.GetConfigPath,
	}
}

func stdinPiped() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
