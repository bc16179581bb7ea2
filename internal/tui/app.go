package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/pders01/pagesnap/internal/config"
	"github.com/pders01/pagesnap/internal/debuglog"
	"github.com/pders01/pagesnap/internal/session"
	"github.com/pders01/pagesnap/internal/site"
	"github.com/pders01/pagesnap/internal/snap"
	"github.com/pders01/pagesnap/internal/watch"
)

// App renders one site and feeds terminal input into its session.
type App struct {
	config  *config.Config
	theme   Theme
	keys    keyMap
	help    help.Model
	clock   snap.Clock
	watcher *watch.Watcher

	site     *site.Manifest
	session  *session.Session
	observer observer

	width  int
	height int

	layout        snap.Layout
	chromeVisible bool
	dotsShown     bool
	dotsOpacity   float64
	hint          snap.Hint
	cardIndex     int
	cardOffset    float64
	popupOpen     bool
	modalSurface  bool
	modal         contactModal
	video         tutorialPlayer

	press    *cell
	touching bool

	status    status
	reloading bool
	err       error

	glamourRenderer *glamour.TermRenderer
	rendererWidth   int
	pageCache       map[int]string
	cacheWidth      int

	log *debuglog.FieldLogger
}

// NewApp builds the surface for m. A nil clock uses the system clock; a nil
// watcher disables live reload.
func NewApp(m *site.Manifest, cfg *config.Config, clock snap.Clock, w *watch.Watcher) *App {
	if clock == nil {
		clock = snap.SystemClock()
	}
	a := &App{
		config:  cfg,
		theme:   NewTheme(cfg.UI.Colors),
		keys:    newKeyMap(cfg.Keys),
		help:    help.New(),
		clock:   clock,
		watcher: w,
		log:     debuglog.WithFields(map[string]interface{}{"component": "tui"}),
	}
	a.reset(m)
	return a
}

// reset replaces the site and every piece of state derived from it, the way
// a browser reload would.
func (a *App) reset(m *site.Manifest) {
	a.site = m
	a.session = session.New(session.Shape{
		Pages:     len(m.Pages),
		Dots:      m.Dots,
		Banner:    m.HasBanner(),
		CardsPage: m.CardsPage(),
		Cards:     len(m.Cards),
		Video:     m.HasVideo(),
		Popup:     m.HasPopup(),
	}, a.config.SessionOptions(), a.clock)
	a.observer = newObserver(m.HasBanner(), m.CardsPage())

	gen := a.video.gen
	a.video = newTutorialPlayer(m.Tutorial, a.theme)
	a.video.gen = gen + 1
	a.modal = newContactModal()

	a.layout = snap.Layout{}
	a.chromeVisible = true
	a.dotsShown = m.Dots
	a.dotsOpacity = 1
	a.hint = snap.Hint{}
	a.cardIndex = 0
	a.cardOffset = 0
	a.popupOpen = false
	a.modalSurface = false
	a.press = nil
	a.touching = false
	a.reloading = false
	a.err = nil
	a.pageCache = nil
	a.status = status{text: MsgSiteLoaded(m.Title, m.Source, len(m.Pages)), kind: StatusInfo}
}

// start puts the current session on screen.
func (a *App) start() tea.Cmd {
	cmds := []tea.Cmd{a.run(a.session.Start())}
	if a.width > 0 {
		cmds = append(cmds, a.dispatch(a.resizeEvent()))
	}
	return tea.Batch(cmds...)
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.start()}
	if a.watcher != nil {
		cmds = append(cmds, waitForSiteChange(a.watcher))
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.modal.open {
			a.modal.resize(a.geometry().modal)
		}
		return a, a.dispatch(a.resizeEvent())

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case tea.MouseMsg:
		return a, a.handleMouse(msg)

	case dotsIdleMsg:
		return a, a.dispatch(snap.DotsIdle{Seq: msg.seq})

	case videoFrameMsg:
		ended, cmd := a.video.advance(msg.gen)
		if ended {
			return a, a.dispatch(snap.VideoEnded{})
		}
		return a, cmd

	case modalOpeningMsg:
		return a, a.dispatch(snap.ModalOpening{})

	case modalClosedMsg:
		return a, a.dispatch(snap.ModalClosed{})

	case reloadMsg:
		a.status = status{text: MsgReloading, kind: StatusInfo}
		return a, a.loadSite()

	case siteChangedMsg:
		a.status = status{text: MsgSiteChanged, kind: StatusInfo}
		return a, tea.Batch(a.loadSite(), waitForSiteChange(a.watcher))

	case siteLoadedMsg:
		if msg.err != nil {
			a.reloading = false
			a.hint = snap.Hint{}
			a.err = wrapErr("reloading site", msg.err)
			a.log.Warnf("%v", a.err)
			return a, nil
		}
		a.log.Infof("site reloaded from %q", msg.site.Source)
		a.reset(msg.site)
		return a, a.start()
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.Close):
		if a.modal.open {
			return a.closeModal()
		}
		if a.popupOpen {
			return a.dispatch(snap.PopupToggle{})
		}
		return nil
	}
	if a.modal.open {
		return a.modal.update(msg)
	}
	return nil
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	x, y := msg.X, msg.Y

	if msg.Action == tea.MouseActionPress && (msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown) {
		delta := a.config.Navigation.WheelDelta
		if msg.Button == tea.MouseButtonWheelUp {
			delta = -delta
		}
		var cmds []tea.Cmd
		if a.modal.open {
			cmds = append(cmds, a.modal.update(msg))
		}
		cmds = append(cmds, a.dispatch(snap.Wheel{DeltaY: delta}))
		return tea.Batch(cmds...)
	}

	g := a.geometry()
	now := a.clock.Now()

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		a.press = &cell{x: x, y: y}
		a.touching = true
		return a.dispatch(snap.TouchStart{Point: a.toPoint(x, y), At: now, Target: a.touchTarget(g, x, y)})

	case msg.Action == tea.MouseActionMotion && a.touching:
		return a.dispatch(snap.TouchMove{Point: a.toPoint(x, y), At: now})

	case msg.Action == tea.MouseActionRelease && a.touching:
		a.touching = false
		cmds := []tea.Cmd{a.dispatch(snap.TouchEnd{Point: a.toPoint(x, y), At: now})}
		if a.press != nil && *a.press == (cell{x: x, y: y}) {
			cmds = append(cmds, a.click(g, x, y))
		}
		a.press = nil
		return tea.Batch(cmds...)
	}
	return nil
}

func (a *App) click(g geometry, x, y int) tea.Cmd {
	h := g.hitTest(x, y, a.modal.open)
	switch h.kind {
	case hitDot:
		return a.dispatch(snap.DotClick{Index: h.index})
	case hitLogo:
		return a.dispatch(snap.LogoClick{})
	case hitToggle:
		return a.dispatch(snap.PopupToggle{})
	case hitButton:
		return a.openModal()
	case hitOutsideModal:
		return a.closeModal()
	}
	return nil
}

func (a *App) openModal() tea.Cmd {
	if a.site.Contact == nil || a.modal.open {
		return nil
	}
	a.modal.open = true
	a.modal.show(a.site.Contact, a.geometry().modal)
	return func() tea.Msg { return modalOpeningMsg{} }
}

func (a *App) closeModal() tea.Cmd {
	if !a.modal.open {
		return nil
	}
	a.modal.hide()
	return func() tea.Msg { return modalClosedMsg{} }
}

func (a *App) resizeEvent() snap.Resize {
	return snap.Resize{
		Width:     float64(a.width) * a.config.Input.CellWidth,
		Height:    float64(a.height) * a.config.Input.CellHeight,
		CardWidth: float64(a.cardCells()) * a.config.Input.CellWidth,
	}
}

func (a *App) contactButton() string {
	if a.site.Contact == nil || a.site.Contact.Button == "" {
		return "Get in touch"
	}
	return a.site.Contact.Button
}
