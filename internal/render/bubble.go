package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/folderchat/internal/format"
	"github.com/diogo/folderchat/internal/models"
)

const (
	minBubbleWidth = 40
	maxBubbleWidth = 120
)

// BubbleWidth clamps a terminal width to the width used for message bubbles.
func BubbleWidth(termWidth int) int {
	w := termWidth - 4
	if w < minBubbleWidth {
		w = minBubbleWidth
	}
	if w > maxBubbleWidth {
		w = maxBubbleWidth
	}
	return w
}

// RoleLabel returns the styled header line for a message.
func RoleLabel(msg *models.Message, theme TUITheme) string {
	isUser := msg.IsUser()

	icon := "✦ "
	if isUser {
		icon = "● "
	}
	label := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.RoleColor(isUser)).
		Render(icon + msg.Role.Label())

	var meta []string
	if msg.Provider != "" && msg.Provider != models.ProviderUnknown && !isUser {
		meta = append(meta, msg.Provider)
	}
	if !msg.Timestamp.IsZero() {
		meta = append(meta, msg.Timestamp.Format("2006-01-02 15:04"))
	}
	if len(meta) > 0 {
		label += " " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(meta, " · "))
	}
	return label
}

// MessageBubble renders one chat message as a labelled, bordered bubble.
// Role changes colours only; the content goes through the same formatter.
func MessageBubble(msg *models.Message, width int, opts Options, theme TUITheme) (string, error) {
	if msg == nil {
		return "", nil
	}

	bubbleWidth := BubbleWidth(width)
	contentWidth := bubbleWidth - 4

	body, err := Terminal(format.FormatMessage(msg), opts.WithWidth(contentWidth))
	if err != nil {
		return "", err
	}

	bubble := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.RoleColor(msg.IsUser())).
		Padding(0, 1).
		Width(bubbleWidth).
		Render(body)

	return RoleLabel(msg, theme) + "\n" + bubble, nil
}
