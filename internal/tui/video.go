package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/pagesnap/internal/site"
)

// tutorialPlayer plays the tutorial frames over the card strip. gen
// invalidates frame ticks from an earlier playback or an earlier site.
type tutorialPlayer struct {
	frames   []string
	interval time.Duration
	frame    int
	visible  bool
	gen      int
	bar      progress.Model
}

func newTutorialPlayer(tut *site.Tutorial, theme Theme) tutorialPlayer {
	p := tutorialPlayer{
		bar: progress.New(
			progress.WithGradient(string(theme.Secondary), string(theme.Primary)),
			progress.WithoutPercentage(),
		),
	}
	if tut != nil {
		p.frames = tut.Frames
		p.interval = time.Duration(tut.FrameMS) * time.Millisecond
	}
	if p.interval <= 0 {
		p.interval = 400 * time.Millisecond
	}
	return p
}

func (p *tutorialPlayer) play() tea.Cmd {
	p.gen++
	p.frame = 0
	p.visible = true
	return p.tick()
}

func (p *tutorialPlayer) hide() {
	p.gen++
	p.visible = false
}

func (p *tutorialPlayer) tick() tea.Cmd {
	gen := p.gen
	return tea.Tick(p.interval, func(time.Time) tea.Msg {
		return videoFrameMsg{gen: gen}
	})
}

// advance moves to the next frame. It reports true once the last frame has
// been shown.
func (p *tutorialPlayer) advance(gen int) (ended bool, cmd tea.Cmd) {
	if gen != p.gen || !p.visible {
		return false, nil
	}
	p.frame++
	if p.frame >= len(p.frames) {
		return true, nil
	}
	return false, p.tick()
}

func (p *tutorialPlayer) percent() float64 {
	if len(p.frames) == 0 {
		return 1
	}
	f := p.frame + 1
	if f > len(p.frames) {
		f = len(p.frames)
	}
	return float64(f) / float64(len(p.frames))
}

func (p *tutorialPlayer) view(t Theme, r rect) string {
	frame := ""
	if p.frame < len(p.frames) {
		frame = p.frames[p.frame]
	}
	inner := r.w - 4
	if inner < 1 {
		inner = 1
	}
	p.bar.Width = inner
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		t.Hint.Render("▶ tutorial"),
		lipgloss.NewStyle().Width(inner).Height(r.h-4).MaxHeight(r.h-4).Render(frame),
		p.bar.ViewAs(p.percent()),
	)
	return t.Video.Width(r.w - 2).Render(content)
}
