package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/folderchat/internal/format"
	"github.com/diogo/folderchat/internal/models"
)

// ResultCard renders a saved folder result as a bordered card: title, link
// and description, then the AI summary and the notes when present. Summary
// and notes go through the message formatter.
func ResultCard(r *models.SavedResult, width int, opts Options, theme TUITheme) (string, error) {
	if r == nil {
		return "", nil
	}

	cardWidth := BubbleWidth(width)
	contentWidth := cardWidth - 4

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.User)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent)

	title := r.Title
	if title == "" {
		title = "(untitled)"
	}
	lines := []string{titleStyle.Render(title)}

	var meta []string
	if r.URL != "" && r.URL != "#" {
		meta = append(meta, r.URL)
	}
	if r.Engine != "" {
		meta = append(meta, r.Engine)
	}
	if !r.SavedAt.IsZero() {
		meta = append(meta, r.SavedAt.Format("2006-01-02 15:04"))
	}
	if len(meta) > 0 {
		lines = append(lines, dimStyle.Render(strings.Join(meta, " · ")))
	}
	if r.Description != "" {
		lines = append(lines, "", lipgloss.NewStyle().Width(contentWidth).Render(r.Description))
	}

	sections := []struct{ label, body string }{
		{"AI Summary", r.Summary},
		{"Notes", r.Notes},
	}
	for _, s := range sections {
		if strings.TrimSpace(s.body) == "" {
			continue
		}
		body, err := Terminal(format.Format(s.body), opts.WithWidth(contentWidth))
		if err != nil {
			return "", err
		}
		lines = append(lines, "", labelStyle.Render(s.label), body)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(cardWidth).
		Render(strings.Join(lines, "\n")), nil
}
