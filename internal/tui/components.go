package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderCentered centers the provided content within the given width/height box.
func renderCentered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// renderSeparator draws a full-width rule in the muted color.
func (t Theme) renderSeparator(width int) string {
	if width < 1 {
		width = 1
	}
	return t.Separator.Render(strings.Repeat("─", width))
}

// renderCard draws one carousel card at a fixed outer width and height.
func (t Theme) renderCard(title, body string, width, height int) string {
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	lines := strings.Split(lipgloss.NewStyle().Width(inner).Render(body), "\n")
	if limit := height - 3; len(lines) > limit {
		if limit < 0 {
			limit = 0
		}
		lines = lines[:limit]
	}
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		append([]string{t.CardTitle.Render(truncateEnd(title, inner))}, lines...)...,
	)
	return t.Card.
		Width(width - 2).
		Height(height - 2).
		Render(content)
}
