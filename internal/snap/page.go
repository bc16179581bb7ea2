// Package snap holds the page-snap navigation core: the page index, the
// layout renderer, the scroll/modal locks and the input dispatcher that
// coordinates them. Every transition returns plain Effect values so the
// surface that draws them stays outside this package.
package snap

// PageIndex is the current page over a fixed page count.
type PageIndex struct {
	current int
	count   int
}

func NewPageIndex(count int) *PageIndex {
	if count < 0 {
		count = 0
	}
	return &PageIndex{count: count}
}

func (p *PageIndex) Current() int { return p.current }

func (p *PageIndex) Count() int { return p.count }

func (p *PageIndex) Last() int { return p.count - 1 }

// Set moves to page i. It reports false, leaving the index untouched, when i
// is out of range or already current.
func (p *PageIndex) Set(i int) bool {
	if i < 0 || i >= p.count || i == p.current {
		return false
	}
	p.current = i
	return true
}
