package snap

import "time"

// Effect is a side effect requested by a transition. Surfaces apply effects
// in the order they are returned.
type Effect interface {
	isEffect()
}

type (
	// Render places every page and dot for Layout.Index.
	Render struct {
		Layout Layout
	}

	// PreventDefault suppresses the surface's own handling of the input.
	PreventDefault struct{}

	DotsOpacity struct {
		Value float64
	}

	// ScheduleDotsIdle asks for a DotsIdle{Seq} event after the delay.
	ScheduleDotsIdle struct {
		Seq   int
		After time.Duration
	}

	DotsDisplay struct {
		Shown bool
	}

	// Chrome shows or hides the navbar and the contact popup.
	Chrome struct {
		Visible bool
	}

	Hint struct {
		Visible bool
		Text    string
	}

	// Reload asks for a full reload of the site after the delay.
	Reload struct {
		After time.Duration
	}

	CarouselMove struct {
		Index    int
		OffsetPx float64
	}

	VideoPlay struct{}

	VideoHide struct{}

	PopupOpen struct {
		Open bool
	}

	// ModalSurface marks the whole surface as covered by a modal.
	ModalSurface struct {
		Open bool
	}
)

func (Render) isEffect()           {}
func (PreventDefault) isEffect()   {}
func (DotsOpacity) isEffect()      {}
func (ScheduleDotsIdle) isEffect() {}
func (DotsDisplay) isEffect()      {}
func (Chrome) isEffect()           {}
func (Hint) isEffect()             {}
func (Reload) isEffect()           {}
func (CarouselMove) isEffect()     {}
func (VideoPlay) isEffect()        {}
func (VideoHide) isEffect()        {}
func (PopupOpen) isEffect()        {}
func (ModalSurface) isEffect()     {}
