// Package session wires the navigation core and the gesture state machines
// behind a single Handle entry point.
package session

import (
	"time"

	"github.com/pders01/pagesnap/internal/debuglog"
	"github.com/pders01/pagesnap/internal/gesture"
	"github.com/pders01/pagesnap/internal/snap"
)

// Shape describes which collaborators the site provides. Anything absent
// disables the features built on it.
type Shape struct {
	Pages     int
	Dots      bool
	Banner    bool // the banner is always page 0
	CardsPage int  // -1 when there is no cards section
	Cards     int
	Video     bool
	Popup     bool
}

type Options struct {
	Navigation        snap.Options
	Refresh           gesture.RefreshOptions
	CarouselThreshold float64
	CarouselGap       float64
	TutorialThreshold float64
}

// Session is the whole interactive state of one loaded site. It is not safe
// for concurrent use; all events must come from one loop.
type Session struct {
	shape Shape
	clock snap.Clock

	nav        *snap.Dispatcher
	visibility *gesture.Visibility
	refresh    *gesture.PullToRefresh
	carousel   *gesture.Carousel
	tutorial   *gesture.Tutorial

	target    snap.Target
	touching  bool
	popupOpen bool

	log *debuglog.FieldLogger
}

func New(shape Shape, opts Options, clock snap.Clock) *Session {
	if clock == nil {
		clock = snap.SystemClock()
	}
	dots := 0
	if shape.Dots {
		dots = shape.Pages
	}
	nav := snap.NewDispatcher(shape.Pages, dots, opts.Navigation)
	locks := nav.Locks()

	hasCards := shape.CardsPage >= 0 && shape.CardsPage < shape.Pages

	s := &Session{
		shape:      shape,
		clock:      clock,
		nav:        nav,
		visibility: gesture.NewVisibility(shape.Banner && shape.Pages > 0, shape.Dots),
		refresh:    gesture.NewPullToRefresh(locks, opts.Refresh),
		tutorial:   gesture.NewTutorial(hasCards, shape.Video, opts.TutorialThreshold),
		log:        debuglog.WithFields(map[string]interface{}{"component": "session"}),
	}
	cards := 0
	if hasCards {
		cards = shape.Cards
	}
	s.carousel = gesture.NewCarousel(locks, cards, opts.CarouselThreshold, opts.CarouselGap)
	return s
}

func (s *Session) Shape() Shape { return s.shape }

func (s *Session) Current() int { return s.nav.Index().Current() }

func (s *Session) ModalOpen() bool { return s.nav.Locks().ModalOpen() }

func (s *Session) CardIndex() int { return s.carousel.Index() }

func (s *Session) RefreshTriggered() bool { return s.refresh.Triggered() }

func (s *Session) TutorialPlayed() bool { return s.tutorial.Played() }

func (s *Session) PopupOpen() bool { return s.popupOpen }

// Start returns the effects that put a freshly loaded site on screen.
func (s *Session) Start() []snap.Effect {
	effects := s.visibility.Start()
	if s.shape.Dots {
		effects = append(effects, snap.DotsOpacity{Value: s.nav.Options().DotsIdleOpacity})
	}
	if s.shape.Pages > 0 {
		effects = append(effects, s.nav.Render()...)
	}
	return effects
}

// Handle applies one event and returns the effects it produced, in order.
func (s *Session) Handle(ev snap.Event) []snap.Effect {
	now := s.clock.Now()

	switch ev := ev.(type) {
	case snap.Wheel:
		return s.traceNav("wheel", s.nav.Wheel(ev.DeltaY, now))

	case snap.TouchStart:
		at := stamp(ev.At, now)
		s.touching = true
		s.target = ev.Target
		s.nav.TouchStart(ev.Y)
		switch ev.Target {
		case snap.TargetBanner:
			s.refresh.Start(ev.Point, at)
		case snap.TargetCards:
			s.carousel.Start(ev.X)
		}
		return nil

	case snap.TouchMove:
		if s.touching && s.target == snap.TargetBanner {
			return s.refresh.Move(ev.Point)
		}
		return nil

	case snap.TouchEnd:
		// A release with no press on record is dropped, never measured
		// against a stale start.
		if !s.touching {
			return nil
		}
		s.touching = false
		at := stamp(ev.At, now)
		effects := s.traceNav("touch", s.nav.TouchEnd(ev.Y, at))
		switch s.target {
		case snap.TargetBanner:
			armed := !s.refresh.Triggered()
			refresh := s.refresh.End(ev.Point, at)
			if armed && s.refresh.Triggered() {
				s.log.Infof("pull-to-refresh triggered")
			}
			effects = append(effects, refresh...)
		case snap.TargetCards:
			effects = append(effects, s.carousel.End(ev.X)...)
		}
		return effects

	case snap.DotClick:
		return s.traceNav("dot", s.nav.DotClick(ev.Index))

	case snap.LogoClick:
		return s.traceNav("logo", s.nav.LogoClick())

	case snap.PopupToggle:
		if !s.shape.Popup {
			return nil
		}
		s.popupOpen = !s.popupOpen
		return []snap.Effect{snap.PopupOpen{Open: s.popupOpen}}

	case snap.ModalOpening:
		s.log.Debugf("modal opening")
		return s.nav.SetModal(true)

	case snap.ModalClosed:
		s.log.Debugf("modal closed")
		return s.nav.SetModal(false)

	case snap.Intersection:
		switch ev.Section {
		case snap.SectionBanner:
			return s.visibility.Observe(ev.Ratio)
		case snap.SectionCards:
			effects := s.tutorial.Observe(ev.Ratio)
			if len(effects) > 0 {
				s.log.Debugf("tutorial started")
			}
			return effects
		}
		return nil

	case snap.Resize:
		s.carousel.SetCardWidth(ev.CardWidth)
		return s.refresh.Resize(ev.Width)

	case snap.DotsIdle:
		return s.nav.DotsIdle(ev.Seq)

	case snap.VideoEnded:
		return s.tutorial.Ended()
	}
	return nil
}

// Navigate is the programmatic form of a wheel or swipe request.
func (s *Session) Navigate(dir snap.Direction) []snap.Effect {
	return s.traceNav(dir.String(), s.nav.Navigate(dir, s.clock.Now()))
}

func (s *Session) traceNav(source string, effects []snap.Effect) []snap.Effect {
	for _, e := range effects {
		if r, ok := e.(snap.Render); ok {
			s.log.Debugf("%s moved to page %d", source, r.Layout.Index)
		}
	}
	return effects
}

func stamp(at, now time.Time) time.Time {
	if at.IsZero() {
		return now
	}
	return at
}
