package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/pagesnap/internal/snap"
)

const (
	dotsCols     = 3
	footerRows   = 2
	stripHeight  = 7
	popupWidth   = 34
	modalWidth   = 64
	modalHeight  = 18
	minCardCells = 18
	maxCardCells = 40
)

type cell struct {
	x, y int
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return r.w > 0 && r.h > 0 && x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// geometry is the screen partition shared by View and the mouse handler.
type geometry struct {
	width, height int

	page   rect
	logo   rect
	toggle rect
	dots   []rect
	strip  rect
	popup  rect
	button rect
	modal  rect
}

type hitKind int

const (
	hitNone hitKind = iota
	hitDot
	hitLogo
	hitToggle
	hitButton
	hitModal
	hitOutsideModal
)

type hit struct {
	kind  hitKind
	index int
}

const toggleLabel = "✉ contact"

func (a *App) geometry() geometry {
	g := geometry{width: a.width, height: a.height}

	pageH := a.height - 1 - footerRows
	if pageH < 0 {
		pageH = 0
	}
	pageW := a.width - dotsCols
	if pageW < 0 {
		pageW = 0
	}
	g.page = rect{x: 0, y: 1, w: pageW, h: pageH}

	if a.chromeVisible {
		if a.site.HasLogo() {
			g.logo = rect{x: 1, y: 0, w: lipgloss.Width(a.site.Logo), h: 1}
		}
		if a.site.HasPopup() {
			w := lipgloss.Width(toggleLabel) + 2
			g.toggle = rect{x: a.width - w - 1, y: 0, w: w, h: 1}
		}
	}

	if a.dotsShown {
		n := len(a.layout.Dots)
		top := g.page.y + (g.page.h-n)/2
		for i := 0; i < n; i++ {
			g.dots = append(g.dots, rect{x: a.width - dotsCols, y: top + i, w: dotsCols, h: 1})
		}
	}

	if cp := a.site.CardsPage(); cp >= 0 && a.layout.Index == cp && g.page.h >= stripHeight+2 {
		g.strip = rect{x: 0, y: g.page.y + g.page.h - stripHeight, w: g.page.w, h: stripHeight}
	}

	if a.popupOpen && a.chromeVisible && a.site.Contact != nil {
		h := len(a.site.Contact.Lines) + 5
		if h > g.page.h {
			h = g.page.h
		}
		w := popupWidth
		if w > g.page.w {
			w = g.page.w
		}
		g.popup = rect{x: g.page.w - w, y: g.page.y + g.page.h - h, w: w, h: h}
		label := a.contactButton()
		g.button = rect{x: g.popup.x + 2, y: g.popup.y + h - 2, w: lipgloss.Width(label) + 2, h: 1}
	}

	if a.modal.open {
		w, h := modalWidth, modalHeight
		if w > a.width-4 {
			w = a.width - 4
		}
		if h > g.page.h {
			h = g.page.h
		}
		g.modal = rect{x: (g.page.w - w) / 2, y: g.page.y + (g.page.h-h)/2, w: w, h: h}
	}
	return g
}

// hitTest resolves a click. Surfaces stacked on top win.
func (g geometry) hitTest(x, y int, modalOpen bool) hit {
	if modalOpen {
		if g.modal.contains(x, y) {
			return hit{kind: hitModal}
		}
		return hit{kind: hitOutsideModal}
	}
	if g.button.contains(x, y) {
		return hit{kind: hitButton}
	}
	if g.popup.contains(x, y) {
		return hit{kind: hitNone}
	}
	if g.toggle.contains(x, y) {
		return hit{kind: hitToggle}
	}
	if g.logo.contains(x, y) {
		return hit{kind: hitLogo}
	}
	for i, d := range g.dots {
		if d.contains(x, y) {
			return hit{kind: hitDot, index: i}
		}
	}
	return hit{kind: hitNone}
}

// touchTarget names the element a press lands on.
func (a *App) touchTarget(g geometry, x, y int) snap.Target {
	if a.modal.open || g.popup.contains(x, y) {
		return snap.TargetPage
	}
	if g.strip.contains(x, y) {
		return snap.TargetCards
	}
	if a.site.HasBanner() && a.layout.Index == 0 && g.page.contains(x, y) {
		return snap.TargetBanner
	}
	return snap.TargetPage
}

// cardCells is the outer width of one carousel card.
func (a *App) cardCells() int {
	w := (a.width - dotsCols) * 2 / 3
	if w < minCardCells {
		w = minCardCells
	}
	if w > maxCardCells {
		w = maxCardCells
	}
	if limit := a.width - dotsCols; limit > 0 && w > limit {
		w = limit
	}
	return w
}

func (a *App) toPoint(x, y int) snap.Point {
	return snap.Point{
		X: float64(x) * a.config.Input.CellWidth,
		Y: float64(y) * a.config.Input.CellHeight,
	}
}
