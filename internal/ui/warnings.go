package ui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/five82/glide/internal/logging"
)

// recentWarnings returns up to n of the newest records at WARN or above.
func recentWarnings(buffer *logging.RingBuffer, n int) []logging.Entry {
	if buffer == nil || n <= 0 {
		return nil
	}
	all := buffer.All()
	out := make([]logging.Entry, 0, n)
	for i := len(all) - 1; i >= 0 && len(out) < n; i-- {
		if all[i].Level >= slog.LevelWarn {
			out = append(out, all[i])
		}
	}
	// oldest first
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// renderWarnings draws the warnings panel: a rule followed by
// WarningPanelLines rows.
func (m Model) renderWarnings() string {
	styles := m.theme.Styles()
	lines := make([]string, 0, WarningPanelLines+1)

	title := " Warnings "
	rule := styles.FaintText.Render("──" + title + strings.Repeat("─", max(m.width-len(title)-2, 0)))
	lines = append(lines, ansi.Truncate(rule, m.width, ""))

	var buffer *logging.RingBuffer
	if m.logger != nil {
		buffer = m.logger.Buffer
	}
	entries := recentWarnings(buffer, WarningPanelLines)
	if len(entries) == 0 {
		lines = append(lines, styles.FaintText.Render(" no warnings"))
	}
	for _, e := range entries {
		line := styles.FaintText.Render(e.Time.Format("15:04:05")) + " " +
			styles.LevelStyle(e.Level).Render(e.Level.String()) + " " +
			styles.Text.Render(e.Message)
		if e.Attrs != "" {
			line += " " + styles.MutedText.Render(e.Attrs)
		}
		lines = append(lines, ansi.Truncate(line, m.width, "…"))
	}
	for len(lines) < WarningPanelLines+1 {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
