package snap

import "time"

// Direction is the way a navigation request moves through the pages.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// Options tunes the dispatcher. Zero values fall back to the defaults.
type Options struct {
	ScrollCooldown  time.Duration
	WheelDeadzone   float64
	SwipeThreshold  float64
	DotsIdle        time.Duration
	DotsIdleOpacity float64
}

func DefaultOptions() Options {
	return Options{
		ScrollCooldown:  DefaultScrollCooldown,
		WheelDeadzone:   10,
		SwipeThreshold:  50,
		DotsIdle:        time.Second,
		DotsIdleOpacity: 0.3,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.ScrollCooldown <= 0 {
		o.ScrollCooldown = def.ScrollCooldown
	}
	if o.WheelDeadzone <= 0 {
		o.WheelDeadzone = def.WheelDeadzone
	}
	if o.SwipeThreshold <= 0 {
		o.SwipeThreshold = def.SwipeThreshold
	}
	if o.DotsIdle <= 0 {
		o.DotsIdle = def.DotsIdle
	}
	if o.DotsIdleOpacity <= 0 {
		o.DotsIdleOpacity = def.DotsIdleOpacity
	}
	return o
}

// Dispatcher turns wheel, touch and click input into page changes. It owns
// the page index and the locks; rendering is always an explicit step after
// the index has moved.
type Dispatcher struct {
	opts     Options
	index    *PageIndex
	renderer Renderer
	locks    *Locks
	hasDots  bool

	touchStartY float64
	dotsSeq     int
}

// NewDispatcher builds a dispatcher over pages pages. dots is the size of the
// indicator; zero disables every dot effect.
func NewDispatcher(pages, dots int, opts Options) *Dispatcher {
	opts = opts.withDefaults()
	return &Dispatcher{
		opts:     opts,
		index:    NewPageIndex(pages),
		renderer: NewRenderer(pages, dots),
		locks:    NewLocks(opts.ScrollCooldown),
		hasDots:  dots > 0,
	}
}

func (d *Dispatcher) Index() *PageIndex { return d.index }

func (d *Dispatcher) Locks() *Locks { return d.locks }

func (d *Dispatcher) Options() Options { return d.opts }

// Render returns the layout effect for the current page.
func (d *Dispatcher) Render() []Effect {
	return []Effect{Render{Layout: d.renderer.Layout(d.index.Current())}}
}

// Navigate moves one page in dir. The scroll lock is taken before the bounds
// are checked, so a request at either end still burns one cooldown.
func (d *Dispatcher) Navigate(dir Direction, now time.Time) []Effect {
	if !d.locks.TryBeginScroll(now) {
		return nil
	}

	cur := d.index.Current()
	next := cur
	switch {
	case dir == Down && cur < d.index.Last():
		next = cur + 1
	case dir == Up && cur > 0:
		next = cur - 1
	default:
		return nil
	}

	if !d.index.Set(next) {
		return nil
	}
	return d.Render()
}

// Wheel handles one wheel tick. While a modal is open the tick is left to
// the surface untouched.
func (d *Dispatcher) Wheel(deltaY float64, now time.Time) []Effect {
	if d.locks.ModalOpen() {
		return nil
	}

	effects := []Effect{PreventDefault{}}
	if d.hasDots {
		d.dotsSeq++
		effects = append(effects,
			DotsOpacity{Value: 1},
			ScheduleDotsIdle{Seq: d.dotsSeq, After: d.opts.DotsIdle},
		)
	}

	switch {
	case deltaY > d.opts.WheelDeadzone:
		effects = append(effects, d.Navigate(Down, now)...)
	case deltaY < -d.opts.WheelDeadzone:
		effects = append(effects, d.Navigate(Up, now)...)
	}
	return effects
}

// DotsIdle reverts the dot pulse when seq belongs to the latest wheel tick.
func (d *Dispatcher) DotsIdle(seq int) []Effect {
	if !d.hasDots || seq != d.dotsSeq {
		return nil
	}
	return []Effect{DotsOpacity{Value: d.opts.DotsIdleOpacity}}
}

// TouchStart records where a vertical swipe began. It is recorded even
// under a modal; only the end of the swipe is gated.
func (d *Dispatcher) TouchStart(y float64) {
	d.touchStartY = y
}

func (d *Dispatcher) TouchEnd(y float64, now time.Time) []Effect {
	if d.locks.ModalOpen() {
		return nil
	}
	delta := d.touchStartY - y
	switch {
	case delta > d.opts.SwipeThreshold:
		return d.Navigate(Down, now)
	case delta < -d.opts.SwipeThreshold:
		return d.Navigate(Up, now)
	}
	return nil
}

// DotClick jumps straight to page i without consulting the scroll lock.
func (d *Dispatcher) DotClick(i int) []Effect {
	if d.locks.ModalOpen() || i == d.index.Current() {
		return nil
	}
	if !d.index.Set(i) {
		return nil
	}
	return d.Render()
}

// LogoClick returns to the first page. The surface's own link handling is
// always suppressed.
func (d *Dispatcher) LogoClick() []Effect {
	effects := []Effect{PreventDefault{}}
	if d.locks.ModalOpen() || d.index.Current() == 0 {
		return effects
	}
	if d.index.Set(0) {
		effects = append(effects, d.Render()...)
	}
	return effects
}

// SetModal engages or releases the modal lock.
func (d *Dispatcher) SetModal(open bool) []Effect {
	d.locks.SetModal(open)
	effects := []Effect{ModalSurface{Open: open}}
	if d.hasDots {
		effects = append(effects, DotsDisplay{Shown: !open})
	}
	return effects
}
