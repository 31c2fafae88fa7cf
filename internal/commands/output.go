package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	apierrors "github.com/diogo/folderchat/internal/errors"
)

var (
	colorTextDim = lipgloss.Color("#565f89")
	colorSuccess = lipgloss.Color("#9ece6a")
	colorError   = lipgloss.Color("#f7768e")
)

// getTerminalWidth returns the terminal width or a default value
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // default width
	}
	return width
}

// readInput returns the message text from --file, the positional argument
// or piped stdin, in that order.
func (c *cli) readInput(args []string, file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), nil
	}

	if len(args) > 0 {
		return args[0], nil
	}

	if c.deps.StdinPiped() {
		data, err := io.ReadAll(c.deps.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	return "", fmt.Errorf("%w: pass text, --file or pipe it on stdin", apierrors.ErrEmptyInput)
}

// emit writes out to the output file, or to stdout when path is empty.
func (c *cli) emit(out, path string) error {
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}

	if path == "" {
		_, err := io.WriteString(c.deps.Stdout, out)
		return err
	}

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	c.success(fmt.Sprintf("Saved to %s", path))
	return nil
}

// export runs write against stdout, or renders it fully before creating the
// output file so a failed render leaves no partial file behind.
func (c *cli) export(path string, write func(io.Writer) error) error {
	if path == "" {
		return write(c.deps.Stdout)
	}

	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// copyToClipboard copies text, reporting failure without aborting the command.
func (c *cli) copyToClipboard(text string) {
	if err := c.deps.Clipboard(text); err != nil {
		warnMsg := lipgloss.NewStyle().Foreground(colorError).Render(
			fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err),
		)
		fmt.Fprintln(c.deps.Stderr, warnMsg)
		return
	}
	c.success("Copied to clipboard")
}

func (c *cli) success(msg string) {
	fmt.Fprintln(c.deps.Stderr, lipgloss.NewStyle().Foreground(colorSuccess).Render("✓ "+msg))
}

// formatErrorMessage formats an error with additional context from structured errors
func formatErrorMessage(err error, context string) string {
	if err == nil {
		return ""
	}

	errorStyle := lipgloss.NewStyle().Foreground(colorError)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	sb.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s: %v", context, err)))

	if endpoint := apierrors.GetEndpoint(err); endpoint != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  Endpoint: %s", endpoint)))
	}
	if path := apierrors.GetParsePath(err); path != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  At: %s", path)))
	}

	switch {
	case apierrors.IsAPIError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: The backend reported a failure. Save the history again and retry"))
	case apierrors.IsParseError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: Expected a /api/chat/history response or an array of messages"))
	case apierrors.IsConfigError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: Run 'folderchat config show' to list valid keys and values"))
	case errors.Is(err, apierrors.ErrEmptyInput):
		sb.WriteString(dimStyle.Render("\n  Hint: Try 'folderchat format \"**hello**\"'"))
	}

	return sb.String()
}

// truncate shortens s to maxLen runes on a single line, adding "..." when cut
func truncate(s string, maxLen int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
