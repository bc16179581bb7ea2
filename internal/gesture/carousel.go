package gesture

import (
	"math"

	"github.com/pders01/pagesnap/internal/snap"
)

// Carousel is a horizontal swipe over a fixed set of cards. The index wraps
// in both directions.
type Carousel struct {
	modal     ModalLock
	count     int
	index     int
	startX    float64
	threshold float64
	gap       float64
	cardWidth float64
}

func NewCarousel(modal ModalLock, count int, threshold, gap float64) *Carousel {
	if threshold <= 0 {
		threshold = 50
	}
	if gap <= 0 {
		gap = 16
	}
	return &Carousel{modal: modal, count: count, threshold: threshold, gap: gap}
}

func (c *Carousel) Index() int { return c.index }

func (c *Carousel) Count() int { return c.count }

func (c *Carousel) SetCardWidth(w float64) { c.cardWidth = w }

// Offset is the strip translation for the current card in pixels.
func (c *Carousel) Offset() float64 {
	return -float64(c.index) * (c.cardWidth + c.gap)
}

func (c *Carousel) Start(x float64) {
	if c.count == 0 || c.modal.ModalOpen() {
		return
	}
	c.startX = x
}

func (c *Carousel) End(x float64) []snap.Effect {
	if c.count == 0 || c.modal.ModalOpen() {
		return nil
	}
	diff := c.startX - x
	if math.Abs(diff) <= c.threshold {
		return nil
	}

	if diff > 0 {
		c.index++
	} else {
		c.index--
	}
	c.index = (c.index%c.count + c.count) % c.count

	return []snap.Effect{snap.CarouselMove{Index: c.index, OffsetPx: c.Offset()}}
}
