package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pders01/pagesnap/internal/site"
	"github.com/pders01/pagesnap/internal/snap"
	"github.com/pders01/pagesnap/internal/watch"
)

type (
	dotsIdleMsg struct {
		seq int
	}

	videoFrameMsg struct {
		gen int
	}

	modalOpeningMsg struct{}

	modalClosedMsg struct{}

	reloadMsg struct{}

	siteChangedMsg struct{}

	siteLoadedMsg struct {
		site *site.Manifest
		err  error
	}
)

func (a *App) dispatch(ev snap.Event) tea.Cmd {
	return a.run(a.session.Handle(ev))
}

// run applies effects in order. Renders feed the observer, whose
// intersection events go back through the session until nothing is left.
func (a *App) run(effects []snap.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for len(effects) > 0 {
		events, more := a.apply(effects)
		cmds = append(cmds, more...)
		effects = nil
		for _, ev := range events {
			effects = append(effects, a.session.Handle(ev)...)
		}
	}
	return tea.Batch(cmds...)
}

func (a *App) apply(effects []snap.Effect) ([]snap.Event, []tea.Cmd) {
	var (
		events []snap.Event
		cmds   []tea.Cmd
	)
	for _, e := range effects {
		switch e := e.(type) {
		case snap.Render:
			a.layout = e.Layout
			events = append(events, a.observer.observe(e.Layout)...)

		case snap.PreventDefault:
			// a terminal has no native scroll to suppress

		case snap.DotsOpacity:
			a.dotsOpacity = e.Value

		case snap.ScheduleDotsIdle:
			seq := e.Seq
			cmds = append(cmds, tea.Tick(e.After, func(time.Time) tea.Msg {
				return dotsIdleMsg{seq: seq}
			}))

		case snap.DotsDisplay:
			a.dotsShown = e.Shown

		case snap.Chrome:
			a.chromeVisible = e.Visible

		case snap.Hint:
			a.hint = e

		case snap.Reload:
			a.reloading = true
			cmds = append(cmds, tea.Tick(e.After, func(time.Time) tea.Msg {
				return reloadMsg{}
			}))

		case snap.CarouselMove:
			a.cardIndex = e.Index
			a.cardOffset = e.OffsetPx

		case snap.VideoPlay:
			cmds = append(cmds, a.video.play())

		case snap.VideoHide:
			a.video.hide()

		case snap.PopupOpen:
			a.popupOpen = e.Open

		case snap.ModalSurface:
			a.modalSurface = e.Open
			if e.Open {
				a.status = status{text: MsgModalOpen, kind: StatusInfo}
			} else {
				a.status = status{}
			}
		}
	}
	return events, cmds
}

// loadSite re-reads the manifest the current site came from.
func (a *App) loadSite() tea.Cmd {
	path := a.site.Source
	return func() tea.Msg {
		m, err := site.Load(path)
		return siteLoadedMsg{site: m, err: err}
	}
}

func waitForSiteChange(w *watch.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		<-w.Changed()
		return siteChangedMsg{}
	}
}
