package snap

// PageFrame is the placement of one page relative to the viewport.
type PageFrame struct {
	// OffsetPercent is the vertical translation in percent of the viewport
	// height. Zero means the page fills the viewport.
	OffsetPercent int
	Visible       bool
}

// Dot is one entry of the page indicator.
type Dot struct {
	Active bool
}

// Layout is the full placement of pages and dots for one index.
type Layout struct {
	Index int
	Pages []PageFrame
	Dots  []Dot
}

// Renderer computes layouts for a fixed set of pages and dots. The dot set
// may be empty when the site has no indicator.
type Renderer struct {
	pages int
	dots  int
}

func NewRenderer(pages, dots int) Renderer {
	return Renderer{pages: pages, dots: dots}
}

func (r Renderer) Layout(index int) Layout {
	l := Layout{
		Index: index,
		Pages: make([]PageFrame, r.pages),
		Dots:  make([]Dot, r.dots),
	}
	for i := range l.Pages {
		l.Pages[i] = PageFrame{
			OffsetPercent: (i - index) * 100,
			Visible:       i == index,
		}
	}
	for i := range l.Dots {
		l.Dots[i].Active = i == index
	}
	return l
}

// VisibleRatio is the fraction of page i inside the viewport, in [0, 1].
func (l Layout) VisibleRatio(i int) float64 {
	if i < 0 || i >= len(l.Pages) {
		return 0
	}
	off := l.Pages[i].OffsetPercent
	if off < 0 {
		off = -off
	}
	if off >= 100 {
		return 0
	}
	return 1 - float64(off)/100
}

// ActiveDot returns the index of the active dot, or -1.
func (l Layout) ActiveDot() int {
	for i, d := range l.Dots {
		if d.Active {
			return i
		}
	}
	return -1
}
