package transcript

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/diogo/folderchat/internal/config"
	"github.com/diogo/folderchat/internal/format"
	"github.com/diogo/folderchat/internal/models"
	"github.com/diogo/folderchat/internal/render"
)

// ExportOptions configures how a transcript is written
type ExportOptions struct {
	Format   string // one of config.Format*
	Sanitize bool   // HTML only
	Width    int    // terminal only
	Terminal render.Options
	Theme    render.TUITheme
}

// DefaultExportOptions returns terminal output with default styling
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Format:   config.FormatTerminal,
		Width:    80,
		Terminal: render.DefaultOptions(),
		Theme:    render.DefaultTUITheme(),
	}
}

// Export writes every message of t to w in the requested format.
func Export(w io.Writer, t *models.Transcript, opts ExportOptions) error {
	if t == nil {
		return fmt.Errorf("nil transcript")
	}

	var (
		out string
		err error
	)
	switch opts.Format {
	case config.FormatHTML:
		out = exportHTML(t, opts.Sanitize)
	case config.FormatMarkdown:
		out = exportMarkdown(t)
	case config.FormatJSON:
		out, err = exportJSON(t)
	case config.FormatTerminal, "":
		out, err = exportTerminal(t, opts)
	default:
		return fmt.Errorf("unknown export format: %s", opts.Format)
	}
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}

func exportHTML(t *models.Transcript, sanitize bool) string {
	var sb strings.Builder
	sb.WriteString(`<section class="chat-history" data-folder="`)
	sb.WriteString(html.EscapeString(t.FolderID))
	sb.WriteString("\">\n")

	for i := range t.Messages {
		msg := &t.Messages[i]
		sb.WriteString(`<article class="message message-`)
		sb.WriteString(string(msg.Role))
		sb.WriteString("\">")
		sb.WriteString(render.HTML(format.FormatMessage(msg), render.HTMLOptions{
			Wrap:     true,
			Role:     msg.Role,
			Sanitize: sanitize,
		}))
		sb.WriteString("</article>\n")
	}

	sb.WriteString("</section>\n")
	return sb.String()
}

func exportMarkdown(t *models.Transcript) string {
	var sb strings.Builder

	sb.WriteString("# Folder ")
	sb.WriteString(t.FolderID)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("**Messages:** %d\n\n---\n\n", t.Len()))

	for i := range t.Messages {
		msg := &t.Messages[i]

		sb.WriteString("## ")
		sb.WriteString(msg.Role.Label())
		if !msg.Timestamp.IsZero() {
			sb.WriteString(" (")
			sb.WriteString(msg.Timestamp.Format("2006-01-02 15:04:05"))
			sb.WriteString(")")
		}
		sb.WriteString("\n\n")

		sb.WriteString(render.Markdown(format.FormatMessage(msg)))
		sb.WriteString("\n")

		if i < len(t.Messages)-1 {
			sb.WriteString("\n---\n\n")
		}
	}

	return sb.String()
}

type exportMessage struct {
	ID        string           `json:"id,omitempty"`
	Role      models.Role      `json:"type"`
	Content   string           `json:"content"`
	Timestamp *time.Time       `json:"timestamp,omitempty"`
	Provider  string           `json:"ai_provider,omitempty"`
	Document  *format.Document `json:"document"`
}

type exportTranscript struct {
	FolderID string          `json:"folder_id"`
	Messages []exportMessage `json:"messages"`
}

func exportJSON(t *models.Transcript) (string, error) {
	export := exportTranscript{
		FolderID: t.FolderID,
		Messages: make([]exportMessage, len(t.Messages)),
	}
	for i := range t.Messages {
		msg := &t.Messages[i]
		em := exportMessage{
			ID:       msg.ID,
			Role:     msg.Role,
			Content:  msg.Content,
			Provider: msg.Provider,
			Document: format.FormatMessage(msg),
		}
		if !msg.Timestamp.IsZero() {
			ts := msg.Timestamp
			em.Timestamp = &ts
		}
		export.Messages[i] = em
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode transcript: %w", err)
	}
	return string(data) + "\n", nil
}

func exportTerminal(t *models.Transcript, opts ExportOptions) (string, error) {
	parts := make([]string, 0, len(t.Messages))

	for i := range t.Messages {
		bubble, err := render.MessageBubble(&t.Messages[i], opts.Width, opts.Terminal, opts.Theme)
		if err != nil {
			return "", fmt.Errorf("failed to render message %d: %w", i, err)
		}
		parts = append(parts, bubble)
	}

	if len(parts) == 0 {
		return "", nil
	}
	return strings.Join(parts, "\n\n") + "\n", nil
}
