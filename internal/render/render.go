package render

import (
	"strings"

	"github.com/diogo/folderchat/internal/format"
)

// Terminal renders doc for terminal display through a pooled glamour renderer.
// An empty document renders to the empty string.
func Terminal(doc *format.Document, opts Options) (string, error) {
	if doc.IsEmpty() {
		return "", nil
	}

	renderer, err := globalPool.get(opts)
	if err != nil {
		return "", err
	}
	defer globalPool.put(opts, renderer)

	out, err := renderer.Render(commonMark(doc))
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

// TerminalText formats content and renders it for the terminal.
func TerminalText(content string, opts Options) (string, error) {
	return Terminal(format.Format(content), opts)
}

// HTMLText formats content and renders it as an HTML fragment.
func HTMLText(content string, opts HTMLOptions) string {
	return HTML(format.Format(content), opts)
}
