package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/pders01/pagesnap/internal/site"
)

func (a *App) getRenderer(width int) (*glamour.TermRenderer, error) {
	wordWrapWidth := width - 4
	if wordWrapWidth > 100 {
		wordWrapWidth = 100
	}
	if wordWrapWidth < 20 {
		wordWrapWidth = 20
	}

	if a.glamourRenderer == nil || a.rendererWidth != wordWrapWidth {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(a.config.UI.GlamourStyle),
			glamour.WithWordWrap(wordWrapWidth),
		)
		if err != nil {
			return nil, err
		}
		a.glamourRenderer = r
		a.rendererWidth = wordWrapWidth
	}
	return a.glamourRenderer, nil
}

// renderPage turns a page into its Markdown rendition, cached per width.
func (a *App) renderPage(i, width int) string {
	if a.pageCache == nil || a.cacheWidth != width {
		a.pageCache = make(map[int]string)
		a.cacheWidth = width
	}
	if out, ok := a.pageCache[i]; ok {
		return out
	}

	p := a.site.Pages[i]
	var md strings.Builder
	if p.Title != "" && p.Kind != site.KindBanner {
		fmt.Fprintf(&md, "# %s\n\n", p.Title)
	}
	md.WriteString(p.Body)

	out := md.String()
	if r, err := a.getRenderer(width); err == nil {
		if rendered, err := r.Render(out); err == nil {
			out = strings.Trim(rendered, "\n")
		} else {
			a.log.Warnf("rendering page %s: %v", p.ID, err)
		}
	} else {
		a.log.Warnf("creating renderer: %v", err)
	}
	a.pageCache[i] = out
	return out
}

func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	g := a.geometry()

	rows := make([]string, 0, a.height)
	rows = append(rows, a.viewNavbar(g))

	page := a.viewPage(g)
	dots := a.viewDots(g)
	for i := range page {
		rows = append(rows, page[i]+dots[i])
	}

	rows = append(rows, a.viewHint())
	rows = append(rows, a.viewStatus())
	return strings.Join(rows, "\n")
}

func (a *App) viewNavbar(g geometry) string {
	if !a.chromeVisible {
		return fit("", a.width)
	}
	left := " "
	if a.site.HasLogo() {
		left += a.theme.Logo.Render(a.site.Logo) + "  "
	}
	left += a.theme.NavTitle.Render(a.site.Title)

	right := ""
	if g.toggle.w > 0 {
		label := toggleLabel
		if a.popupOpen {
			label = "✕ contact"
		}
		right = a.theme.NavToggle.Render(" "+label+" ") + " "
	}
	space := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		return fit(left, a.width)
	}
	return left + strings.Repeat(" ", space) + right
}

func (a *App) viewPage(g geometry) []string {
	if g.page.h == 0 {
		return nil
	}
	rows := a.viewPageContent(g)
	if a.modal.open {
		dim := a.theme.Separator.Faint(true)
		for i, row := range rows {
			rows[i] = dim.Render(ansi.Strip(row))
		}
		overlay(rows, strings.Split(a.modal.view(a.theme, g.modal), "\n"), g.modal.x, g.modal.y-g.page.y)
		rows = fitRows(rows, g.page.w)
	}
	return rows
}

func (a *App) viewPageContent(g geometry) []string {
	index := a.layout.Index
	if index < 0 || index >= len(a.site.Pages) {
		return fitBlock("", g.page.w, g.page.h)
	}

	body := a.renderPage(index, g.page.w)
	if a.site.Pages[index].Kind == site.KindBanner {
		body = renderCentered(g.page.w, g.page.h, lipgloss.JoinVertical(
			lipgloss.Center,
			a.theme.Logo.Render(a.site.Title),
			"",
			body,
		))
	}
	rows := fitBlock(body, g.page.w, g.page.h)

	if g.strip.h > 0 {
		strip := a.viewStrip(g.strip)
		for i, row := range strip {
			rows[g.strip.y-g.page.y+i] = row
		}
	}
	if g.popup.h > 0 {
		overlay(rows, strings.Split(a.viewPopup(g.popup), "\n"), g.popup.x, g.popup.y-g.page.y)
		rows = fitRows(rows, g.page.w)
	}
	return rows
}

// fitRows clips rows that an overlay may have widened.
func fitRows(rows []string, width int) []string {
	for i := range rows {
		rows[i] = fit(rows[i], width)
	}
	return rows
}

func (a *App) viewStrip(r rect) []string {
	if a.video.visible {
		return fitBlock(a.video.view(a.theme, r), r.w, r.h)
	}

	cards := a.site.Cards
	if len(cards) == 0 {
		return fitBlock("", r.w, r.h)
	}

	cw := a.cardCells()
	gap := int(math.Round(a.config.Carousel.Gap / a.config.Input.CellWidth))
	stride := float64(cw)*a.config.Input.CellWidth + a.config.Carousel.Gap
	first := int(math.Round(-a.cardOffset / stride))
	if first < 0 || first >= len(cards) {
		first = a.cardIndex
	}

	var blocks []string
	used := 0
	for i := first; i < len(cards) && used < r.w; i++ {
		if len(blocks) > 0 {
			blocks = append(blocks, strings.Repeat(" ", gap))
		}
		blocks = append(blocks, a.theme.renderCard(cards[i].Title, cards[i].Body, cw, r.h-1))
		used += cw + gap
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	indicator := a.theme.Help.Render(fmt.Sprintf("‹ %d/%d ›", a.cardIndex+1, len(cards)))
	return fitBlock(lipgloss.JoinVertical(lipgloss.Left, strip, indicator), r.w, r.h)
}

func (a *App) viewPopup(r rect) string {
	c := a.site.Contact
	inner := r.w - 4
	lines := []string{a.theme.ModalTitle.Render(truncateEnd(c.Headline, inner))}
	for _, l := range c.Lines {
		lines = append(lines, truncateEnd(l, inner))
	}
	lines = append(lines, "", a.theme.PopupButton.Render(a.contactButton()))
	return a.theme.Popup.Width(r.w - 2).Render(strings.Join(lines, "\n"))
}

func (a *App) viewDots(g geometry) []string {
	rows := make([]string, g.page.h)
	blank := strings.Repeat(" ", dotsCols)
	for i := range rows {
		rows[i] = blank
	}
	if a.dotsOpacity <= 0 {
		return rows
	}
	for i, d := range g.dots {
		row := d.y - g.page.y
		if row < 0 || row >= len(rows) || i >= len(a.layout.Dots) {
			continue
		}
		glyph := a.theme.DotIdle.Render("○")
		if a.layout.Dots[i].Active {
			glyph = a.theme.DotActive.Render("●")
		}
		if a.dotsOpacity < 1 {
			glyph = lipgloss.NewStyle().Faint(true).Render(glyph)
		}
		rows[row] = " " + glyph + " "
	}
	return rows
}

func (a *App) viewHint() string {
	if !a.hint.Visible {
		return a.theme.renderSeparator(a.width)
	}
	return lipgloss.NewStyle().
		Width(a.width).
		Align(lipgloss.Center).
		Render(a.theme.Hint.Render("↓ " + a.hint.Text))
}

func (a *App) viewStatus() string {
	var left string
	switch {
	case a.err != nil:
		left = a.theme.StatusError.Render(fmt.Sprintf("✗ %v", a.err))
	case a.reloading:
		left = a.theme.StatusInfo.Render(MsgReloading)
	default:
		parts := []string{MsgPagePosition(a.layout.Index, len(a.site.Pages))}
		if a.status.text != "" {
			parts = append(parts, a.status.text)
		}
		left = a.theme.StatusStyle(a.status.kind).Render(strings.Join(parts, " • "))
	}
	right := a.help.View(a.keys)

	space := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if space < 1 {
		return fit(" "+left, a.width)
	}
	return " " + left + strings.Repeat(" ", space) + right + " "
}
