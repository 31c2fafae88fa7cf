package results

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

// ExportOptions configures how folder results are written
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

// Export writes every result of f to w in the requested format.
func Export(w io.Writer, f *models.FolderResults, opts ExportOptions) error {
	if f == nil {
		return fmt.Errorf("nil folder results")
	}

	var (
		out string
		err error
	)
	switch opts.Format {
	case config.FormatHTML:
		out = exportHTML(f, opts.Sanitize)
	case config.FormatMarkdown:
		out = exportMarkdown(f)
	case config.FormatJSON:
		out, err = exportJSON(f)
	case config.FormatTerminal, "":
		out, err = exportTerminal(f, opts)
	default:
		return fmt.Errorf("unknown export format: %s", opts.Format)
	}
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}

// linkable reports whether url may be emitted as a link target.
func linkable(url string) bool {
	u := strings.ToLower(url)
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}

func exportHTML(f *models.FolderResults, sanitize bool) string {
	var sb strings.Builder
	sb.WriteString(`<section class="folder-results" data-folder="`)
	sb.WriteString(html.EscapeString(f.FolderID))
	sb.WriteString("\">\n")

	for i := range f.Results {
		r := &f.Results[i]
		sb.WriteString(`<article class="result">`)

		sb.WriteString("<h3>")
		if linkable(r.URL) {
			sb.WriteString(`<a href="`)
			sb.WriteString(html.EscapeString(r.URL))
			sb.WriteString(`" target="_blank" rel="noopener noreferrer">`)
			sb.WriteString(html.EscapeString(r.Title))
			sb.WriteString("</a>")
		} else {
			sb.WriteString(html.EscapeString(r.Title))
		}
		sb.WriteString("</h3>")

		if r.Description != "" {
			sb.WriteString(`<p class="description">`)
			sb.WriteString(html.EscapeString(r.Description))
			sb.WriteString("</p>")
		}

		writeHTMLSection(&sb, "summary", "AI Summary", r.Summary, sanitize)
		writeHTMLSection(&sb, "notes", "Notes", r.Notes, sanitize)

		sb.WriteString("</article>\n")
	}

	sb.WriteString("</section>\n")
	return sb.String()
}

func writeHTMLSection(sb *strings.Builder, class, label, body string, sanitize bool) {
	doc := format.Format(body)
	if doc.IsEmpty() {
		return
	}
	sb.WriteString(`<div class="`)
	sb.WriteString(class)
	sb.WriteString(`"><h4>`)
	sb.WriteString(label)
	sb.WriteString("</h4>")
	sb.WriteString(render.HTML(doc, render.HTMLOptions{Sanitize: sanitize}))
	sb.WriteString("</div>")
}

func exportMarkdown(f *models.FolderResults) string {
	var sb strings.Builder

	sb.WriteString("# Folder ")
	sb.WriteString(f.FolderID)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("**Results:** %d\n\n---\n\n", f.Len()))

	for i := range f.Results {
		r := &f.Results[i]

		sb.WriteString("## ")
		sb.WriteString(r.Title)
		sb.WriteString("\n\n")
		if linkable(r.URL) {
			sb.WriteString("<" + r.URL + ">\n\n")
		}
		if r.Description != "" {
			sb.WriteString(r.Description)
			sb.WriteString("\n\n")
		}

		for _, s := range []struct{ label, body string }{
			{"AI Summary", r.Summary},
			{"Notes", r.Notes},
		} {
			doc := format.Format(s.body)
			if doc.IsEmpty() {
				continue
			}
			sb.WriteString("### ")
			sb.WriteString(s.label)
			sb.WriteString("\n\n")
			sb.WriteString(render.Markdown(doc))
			sb.WriteString("\n\n")
		}

		if i < len(f.Results)-1 {
			sb.WriteString("---\n\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

type exportResult struct {
	ID          string           `json:"id,omitempty"`
	Title       string           `json:"title"`
	URL         string           `json:"url,omitempty"`
	Description string           `json:"description,omitempty"`
	Engine      string           `json:"engine,omitempty"`
	SavedAt     *time.Time       `json:"saved_at,omitempty"`
	Summary     string           `json:"ai_summary,omitempty"`
	Notes       string           `json:"custom_notes,omitempty"`
	SummaryDoc  *format.Document `json:"summary_document,omitempty"`
	NotesDoc    *format.Document `json:"notes_document,omitempty"`
}

type exportFolder struct {
	FolderID string         `json:"folder_id"`
	Results  []exportResult `json:"results"`
}

func exportJSON(f *models.FolderResults) (string, error) {
	export := exportFolder{
		FolderID: f.FolderID,
		Results:  make([]exportResult, len(f.Results)),
	}
	for i := range f.Results {
		r := &f.Results[i]
		er := exportResult{
			ID:          r.ID,
			Title:       r.Title,
			URL:         r.URL,
			Description: r.Description,
			Engine:      r.Engine,
			Summary:     r.Summary,
			Notes:       r.Notes,
		}
		if !r.SavedAt.IsZero() {
			ts := r.SavedAt
			er.SavedAt = &ts
		}
		if doc := format.Format(r.Summary); !doc.IsEmpty() {
			er.SummaryDoc = doc
		}
		if doc := format.Format(r.Notes); !doc.IsEmpty() {
			er.NotesDoc = doc
		}
		export.Results[i] = er
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode folder results: %w", err)
	}
	return string(data) + "\n", nil
}

func exportTerminal(f *models.FolderResults, opts ExportOptions) (string, error) {
	parts := make([]string, 0, len(f.Results))

	for i := range f.Results {
		card, err := render.ResultCard(&f.Results[i], opts.Width, opts.Terminal, opts.Theme)
		if err != nil {
			return "", fmt.Errorf("failed to render result %d: %w", i, err)
		}
		parts = append(parts, card)
	}

	if len(parts) == 0 {
		return "", nil
	}
	return strings.Join(parts, "\n\n") + "\n", nil
}
