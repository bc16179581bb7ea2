package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// truncateEnd shortens s to at most max characters, appending an ellipsis
// if truncation occurs. Handles negative or tiny limits gracefully.
func truncateEnd(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 1 {
		return "…"
	}
	return string(r[:limit-1]) + "…"
}

// fit clips a styled line to width cells and pads it with spaces so every
// row of a region has the same width.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// fitBlock splits a rendered block into exactly height rows of width cells.
func fitBlock(block string, width, height int) []string {
	if height <= 0 {
		return nil
	}
	lines := strings.Split(block, "\n")
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = fit(line, width)
	}
	return out
}

// overlay replaces the right part of each base row with the matching row of
// top, starting at column x.
func overlay(base []string, top []string, x, y int) {
	for i, row := range top {
		at := y + i
		if at < 0 || at >= len(base) {
			continue
		}
		base[at] = fit(base[at], x) + row
	}
}
