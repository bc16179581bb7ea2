package gesture

import (
	"math"
	"time"

	"github.com/pders01/pagesnap/internal/snap"
)

// RefreshOptions tunes the pull-to-refresh gesture. Distances are pixels.
type RefreshOptions struct {
	MobileMaxWidth float64
	HintDistance   float64
	MinDistance    float64
	MaxHorizontal  float64
	MaxDuration    time.Duration
	ReloadDelay    time.Duration
	HintText       string
	RefreshingText string
}

func DefaultRefreshOptions() RefreshOptions {
	return RefreshOptions{
		MobileMaxWidth: 768,
		HintDistance:   20,
		MinDistance:    70,
		MaxHorizontal:  50,
		MaxDuration:    900 * time.Millisecond,
		ReloadDelay:    220 * time.Millisecond,
		HintText:       "Pull to refresh",
		RefreshingText: "Refreshing…",
	}
}

// PullToRefresh tracks a downward pull on the banner and asks for a single
// reload when the pull is long, straight and quick enough. The trigger flag
// survives until the viewport is resized.
type PullToRefresh struct {
	opts  RefreshOptions
	modal ModalLock
	width float64

	startX    float64
	startY    float64
	startTime time.Time
	moved     bool

	triggered bool
}

func NewPullToRefresh(modal ModalLock, opts RefreshOptions) *PullToRefresh {
	def := DefaultRefreshOptions()
	if opts.MobileMaxWidth <= 0 {
		opts.MobileMaxWidth = def.MobileMaxWidth
	}
	if opts.HintDistance <= 0 {
		opts.HintDistance = def.HintDistance
	}
	if opts.MinDistance <= 0 {
		opts.MinDistance = def.MinDistance
	}
	if opts.MaxHorizontal <= 0 {
		opts.MaxHorizontal = def.MaxHorizontal
	}
	if opts.MaxDuration <= 0 {
		opts.MaxDuration = def.MaxDuration
	}
	if opts.ReloadDelay <= 0 {
		opts.ReloadDelay = def.ReloadDelay
	}
	if opts.HintText == "" {
		opts.HintText = def.HintText
	}
	if opts.RefreshingText == "" {
		opts.RefreshingText = def.RefreshingText
	}
	return &PullToRefresh{opts: opts, modal: modal}
}

func (p *PullToRefresh) active() bool {
	return p.width <= p.opts.MobileMaxWidth && !p.modal.ModalOpen()
}

func (p *PullToRefresh) Triggered() bool { return p.triggered }

// Start opens a tracking session. Both start coordinates belong to the
// session and are replaced on every touch start.
func (p *PullToRefresh) Start(pt snap.Point, at time.Time) {
	if !p.active() {
		return
	}
	p.startX = pt.X
	p.startY = pt.Y
	p.startTime = at
	p.moved = false
}

func (p *PullToRefresh) Move(pt snap.Point) []snap.Effect {
	if !p.active() {
		return nil
	}
	dy := pt.Y - p.startY
	dx := math.Abs(pt.X - p.startX)
	if dy > p.opts.HintDistance && dx < p.opts.MaxHorizontal {
		p.moved = true
		return []snap.Effect{snap.Hint{Visible: true, Text: p.opts.HintText}}
	}
	return nil
}

func (p *PullToRefresh) End(pt snap.Point, at time.Time) []snap.Effect {
	if !p.active() {
		return nil
	}
	effects := []snap.Effect{snap.Hint{Visible: false}}
	if !p.moved {
		return effects
	}

	dy := pt.Y - p.startY
	dx := math.Abs(pt.X - p.startX)
	dt := at.Sub(p.startTime)
	if dy < p.opts.MinDistance || dx > p.opts.MaxHorizontal || dt > p.opts.MaxDuration {
		return effects
	}
	if p.triggered {
		return effects
	}

	p.triggered = true
	return append(effects,
		snap.Hint{Visible: true, Text: p.opts.RefreshingText},
		snap.Reload{After: p.opts.ReloadDelay},
	)
}

// Resize records the new viewport width, hides the hint and re-arms the
// trigger.
func (p *PullToRefresh) Resize(width float64) []snap.Effect {
	p.width = width
	p.triggered = false
	return []snap.Effect{snap.Hint{Visible: false}}
}
