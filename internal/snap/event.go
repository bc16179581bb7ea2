package snap

import "time"

// Event is one input delivered to a session. The set of variants is closed.
type Event interface {
	isEvent()
}

// Point is a position in viewport pixels.
type Point struct {
	X, Y float64
}

// Target names the element a touch started on.
type Target int

const (
	TargetPage Target = iota
	TargetBanner
	TargetCards
)

func (t Target) String() string {
	switch t {
	case TargetBanner:
		return "banner"
	case TargetCards:
		return "cards"
	default:
		return "page"
	}
}

// Section names an observed region of the site.
type Section int

const (
	SectionBanner Section = iota
	SectionCards
)

func (s Section) String() string {
	if s == SectionCards {
		return "cards"
	}
	return "banner"
}

type (
	Wheel struct {
		DeltaY float64
	}

	TouchStart struct {
		Point
		At     time.Time
		Target Target
	}

	TouchMove struct {
		Point
		At time.Time
	}

	TouchEnd struct {
		Point
		At time.Time
	}

	DotClick struct {
		Index int
	}

	LogoClick struct{}

	PopupToggle struct{}

	ModalOpening struct{}

	ModalClosed struct{}

	// Intersection reports how much of a section is inside the viewport.
	Intersection struct {
		Section Section
		Ratio   float64
	}

	// Resize carries the viewport size and the current card width, all in
	// pixels.
	Resize struct {
		Width     float64
		Height    float64
		CardWidth float64
	}

	// DotsIdle fires when a scheduled dot fade comes due.
	DotsIdle struct {
		Seq int
	}

	VideoEnded struct{}
)

func (Wheel) isEvent()        {}
func (TouchStart) isEvent()   {}
func (TouchMove) isEvent()    {}
func (TouchEnd) isEvent()     {}
func (DotClick) isEvent()     {}
func (LogoClick) isEvent()    {}
func (PopupToggle) isEvent()  {}
func (ModalOpening) isEvent() {}
func (ModalClosed) isEvent()  {}
func (Intersection) isEvent() {}
func (Resize) isEvent()       {}
func (DotsIdle) isEvent()     {}
func (VideoEnded) isEvent()   {}
