// Package tui provides the scrollable transcript viewer for folderchat.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/folderchat/internal/models"
	"github.com/diogo/folderchat/internal/render"
)

const (
	headerHeight = 3 // title panel with border
	footerHeight = 1 // status line
	minVPHeight  = 5
)

// ViewerModel is a read-only pager over a rendered transcript
type ViewerModel struct {
	transcript *models.Transcript
	opts       render.Options
	theme      render.TUITheme

	viewport viewport.Model
	ready    bool
	err      error

	width  int
	height int
}

// NewViewerModel creates a viewer for t using the given rendering options
func NewViewerModel(t *models.Transcript, opts render.Options, theme render.TUITheme) ViewerModel {
	return ViewerModel{
		transcript: t,
		opts:       opts,
		theme:      theme,
	}
}

// Init implements tea.Model
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update handles resize and navigation keys
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - headerHeight - footerHeight
		if vpHeight < minVPHeight {
			vpHeight = minVPHeight
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the header, the scrollable messages and a status line
func (m ViewerModel) View() string {
	if !m.ready {
		return "  Loading..."
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent).Render("✦ Folder " + m.folderName())
	count := lipgloss.NewStyle().Foreground(m.theme.TextDim).Render(fmt.Sprintf("  •  %d messages", m.transcript.Len()))
	header := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1).
		Width(m.width - 2).
		Render(title + count)

	var status string
	if m.err != nil {
		status = lipgloss.NewStyle().Foreground(m.theme.Error).Render("✗ " + m.err.Error())
	} else {
		status = lipgloss.NewStyle().Foreground(m.theme.TextDim).Render(
			fmt.Sprintf(" %3.f%%  ↑/↓ scroll  g/G top/bottom  q quit", m.viewport.ScrollPercent()*100),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), status)
}

func (m ViewerModel) folderName() string {
	if m.transcript == nil || m.transcript.FolderID == "" {
		return "chat"
	}
	return m.transcript.FolderID
}

// refresh re-renders every message at the current width
func (m *ViewerModel) refresh() {
	content, err := renderTranscript(m.transcript, m.width, m.opts, m.theme)
	m.err = err
	m.viewport.SetContent(content)
}

func renderTranscript(t *models.Transcript, width int, opts render.Options, theme render.TUITheme) (string, error) {
	if t.Len() == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("  No messages in this folder yet."), nil
	}

	var sb strings.Builder
	for i := range t.Messages {
		bubble, err := render.MessageBubble(&t.Messages[i], width, opts, theme)
		if err != nil {
			return sb.String(), fmt.Errorf("message %d: %w", i, err)
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(bubble)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// RunViewer opens the transcript viewer in the alternate screen
func RunViewer(t *models.Transcript, opts render.Options, theme render.TUITheme) error {
	p := tea.NewProgram(
		NewViewerModel(t, opts, theme),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
