package tui

import "github.com/pders01/pagesnap/internal/snap"

// observer reports how much of the banner and the cards page is on screen
// after each render, once on first sight and then only on change.
type observer struct {
	banner    bool
	cardsPage int

	seen  map[snap.Section]bool
	ratio map[snap.Section]float64
}

func newObserver(banner bool, cardsPage int) observer {
	return observer{
		banner:    banner,
		cardsPage: cardsPage,
		seen:      make(map[snap.Section]bool),
		ratio:     make(map[snap.Section]float64),
	}
}

func (o *observer) observe(layout snap.Layout) []snap.Event {
	var events []snap.Event
	if o.banner {
		events = o.track(events, snap.SectionBanner, layout.VisibleRatio(0))
	}
	if o.cardsPage >= 0 {
		events = o.track(events, snap.SectionCards, layout.VisibleRatio(o.cardsPage))
	}
	return events
}

func (o *observer) track(events []snap.Event, section snap.Section, ratio float64) []snap.Event {
	if o.seen[section] && o.ratio[section] == ratio {
		return events
	}
	o.seen[section] = true
	o.ratio[section] = ratio
	return append(events, snap.Intersection{Section: section, Ratio: ratio})
}
