package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/pagesnap/internal/site"
)

// contactModal is the form overlay opened from the contact popup. It scrolls
// natively while the page underneath is frozen.
type contactModal struct {
	open     bool
	title    string
	body     string
	viewport viewport.Model
}

func newContactModal() contactModal {
	return contactModal{viewport: viewport.New(0, 0)}
}

func (m *contactModal) show(c *site.Contact, r rect) {
	m.open = true
	m.title = c.Headline
	m.body = c.ModalBody
	if m.body == "" {
		m.body = c.Headline
	}
	m.resize(r)
	m.viewport.GotoTop()
}

func (m *contactModal) hide() {
	m.open = false
}

// resize fits the viewport inside the modal frame: border, padding and the
// title row.
func (m *contactModal) resize(r rect) {
	w := r.w - 4
	h := r.h - 4
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	m.viewport.Width = w
	m.viewport.Height = h
	m.viewport.SetContent(lipgloss.NewStyle().Width(w).Render(m.body))
}

func (m *contactModal) update(msg tea.Msg) tea.Cmd {
	if !m.open {
		return nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *contactModal) view(t Theme, r rect) string {
	title := t.ModalTitle.Render(truncateEnd(m.title, r.w-4))
	return t.Modal.
		Width(r.w - 2).
		Height(r.h - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View()))
}
