package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/glide/internal/deck"
)

// detailModal shows one slide in full, outside the carousel's clipping.
type detailModal struct {
	slide deck.Slide
	index int
	total int
}

func newDetailModal(d *deck.Deck, index int) Modal {
	return detailModal{slide: d.Slides[index], index: index, total: len(d.Slides)}
}

func (m detailModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Quit):
		return m, tea.Quit, true
	case key.Matches(keyMsg, keys.Escape):
		return m, nil, true
	}
	return m, nil, false
}

func (m detailModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	modalWidth := min(DetailModalWidth, max(width-4, 20))

	var b strings.Builder
	b.WriteString(styles.SlideTitle.Render(m.slide.Title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", modalWidth-6)))
	b.WriteString("\n\n")
	if m.slide.Body != "" {
		b.WriteString(styles.Text.Render(m.slide.Body))
		b.WriteString("\n\n")
	}
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("Slide %d of %d · esc to close", m.index+1, m.total)))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(modalWidth).
		MaxHeight(max(height, 3))

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
