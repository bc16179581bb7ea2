package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/pagesnap/internal/snap"
)

var epoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fakeModal struct{ open bool }

func (m *fakeModal) ModalOpen() bool { return m.open }

func hasEffect[T snap.Effect](effects []snap.Effect) bool {
	for _, e := range effects {
		if _, ok := e.(T); ok {
			return true
		}
	}
	return false
}

func TestVisibilityRule(t *testing.T) {
	v := NewVisibility(true, true)

	assert.Equal(t, []snap.Effect{snap.Chrome{Visible: false}, snap.DotsOpacity{Value: 0}}, v.Start())
	assert.Equal(t, []snap.Effect{snap.Chrome{Visible: false}, snap.DotsOpacity{Value: 0}}, v.Observe(1))
	assert.Equal(t, []snap.Effect{snap.Chrome{Visible: true}, snap.DotsOpacity{Value: 1}}, v.Observe(0))
	assert.Equal(t, []snap.Effect{snap.Chrome{Visible: true}, snap.DotsOpacity{Value: 1}}, v.Observe(0.5))
	assert.Equal(t, v.Observe(0), v.Observe(0), "observation is idempotent")
}

func TestVisibilityDegrades(t *testing.T) {
	assert.Nil(t, NewVisibility(false, true).Start())
	assert.Nil(t, NewVisibility(false, true).Observe(1))
	assert.Equal(t, []snap.Effect{snap.Chrome{Visible: true}}, NewVisibility(true, false).Observe(0))
}

func pull(p *PullToRefresh, dx, dy float64, dt time.Duration) []snap.Effect {
	start := snap.Point{X: 100, Y: 100}
	p.Start(start, epoch)
	p.Move(snap.Point{X: start.X + dx/2, Y: start.Y + dy/2})
	return p.End(snap.Point{X: start.X + dx, Y: start.Y + dy}, epoch.Add(dt))
}

func TestPullToRefreshTriggersOnce(t *testing.T) {
	modal := &fakeModal{}
	p := NewPullToRefresh(modal, RefreshOptions{})
	p.Resize(400)

	effects := pull(p, 10, 80, 500*time.Millisecond)
	require.True(t, hasEffect[snap.Reload](effects))
	assert.Contains(t, effects, snap.Reload{After: 220 * time.Millisecond})
	assert.Contains(t, effects, snap.Hint{Visible: true, Text: "Refreshing…"})
	assert.True(t, p.Triggered())

	again := pull(p, 10, 80, 500*time.Millisecond)
	assert.False(t, hasEffect[snap.Reload](again), "second pull before resize must not reload")

	p.Resize(400)
	assert.False(t, p.Triggered())
	assert.True(t, hasEffect[snap.Reload](pull(p, 10, 80, 500*time.Millisecond)))
}

func TestPullToRefreshRejects(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		dx    float64
		dy    float64
		dt    time.Duration
		modal bool
	}{
		{"too short", 400, 0, 60, 300 * time.Millisecond, false},
		{"too diagonal", 400, 60, 120, 300 * time.Millisecond, false},
		{"too slow", 400, 0, 120, 901 * time.Millisecond, false},
		{"desktop width", 1024, 0, 120, 300 * time.Millisecond, false},
		{"modal open", 400, 0, 120, 300 * time.Millisecond, true},
		{"pulling up", 400, 0, -120, 300 * time.Millisecond, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modal := &fakeModal{}
			p := NewPullToRefresh(modal, RefreshOptions{})
			p.Resize(tt.width)
			modal.open = tt.modal

			effects := pull(p, tt.dx, tt.dy, tt.dt)
			assert.False(t, hasEffect[snap.Reload](effects))
			assert.False(t, p.Triggered())
		})
	}
}

func TestPullToRefreshBoundaries(t *testing.T) {
	p := NewPullToRefresh(&fakeModal{}, RefreshOptions{})
	p.Resize(768)

	effects := pull(p, 50, 70, 900*time.Millisecond)
	assert.True(t, hasEffect[snap.Reload](effects), "limits are inclusive")
}

func TestPullToRefreshHint(t *testing.T) {
	p := NewPullToRefresh(&fakeModal{}, RefreshOptions{HintText: "pull"})
	p.Resize(320)

	p.Start(snap.Point{X: 10, Y: 10}, epoch)
	assert.Nil(t, p.Move(snap.Point{X: 10, Y: 25}))
	assert.Equal(t, []snap.Effect{snap.Hint{Visible: true, Text: "pull"}}, p.Move(snap.Point{X: 12, Y: 40}))

	assert.Equal(t, snap.Hint{Visible: false}, p.End(snap.Point{X: 12, Y: 45}, epoch.Add(time.Second))[0])
}

func TestPullWithoutMoveOnlyHidesHint(t *testing.T) {
	p := NewPullToRefresh(&fakeModal{}, RefreshOptions{})
	p.Resize(320)

	p.Start(snap.Point{X: 10, Y: 10}, epoch)
	effects := p.End(snap.Point{X: 10, Y: 200}, epoch.Add(100*time.Millisecond))
	assert.Equal(t, []snap.Effect{snap.Hint{Visible: false}}, effects)
}

func TestCarouselScenario(t *testing.T) {
	c := NewCarousel(&fakeModal{}, 5, 50, 16)
	c.SetCardWidth(300)

	swipeLeft := func() []snap.Effect {
		c.Start(200)
		return c.End(120)
	}

	effects := swipeLeft()
	assert.Equal(t, []snap.Effect{snap.CarouselMove{Index: 1, OffsetPx: -316}}, effects)

	for i := 0; i < 3; i++ {
		swipeLeft()
	}
	assert.Equal(t, 4, c.Index())

	swipeLeft()
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 0.0, c.Offset())
}

func TestCarouselZeroGapUsesDefault(t *testing.T) {
	c := NewCarousel(&fakeModal{}, 3, 0, 0)
	c.SetCardWidth(240)

	c.Start(300)
	effects := c.End(220)
	assert.Equal(t, []snap.Effect{snap.CarouselMove{Index: 1, OffsetPx: -256}}, effects)
}

func TestCarouselWrapsBackwards(t *testing.T) {
	c := NewCarousel(&fakeModal{}, 3, 50, 16)

	c.Start(100)
	c.End(200)
	assert.Equal(t, 2, c.Index())

	c.Start(100)
	assert.Nil(t, c.End(150), "below threshold")
	assert.Equal(t, 2, c.Index())
}

func TestCarouselIgnoresInputUnderModal(t *testing.T) {
	modal := &fakeModal{open: true}
	c := NewCarousel(modal, 3, 50, 16)

	c.Start(300)
	assert.Nil(t, c.End(100))
	assert.Equal(t, 0, c.Index())

	empty := NewCarousel(&fakeModal{}, 0, 50, 16)
	empty.Start(300)
	assert.Nil(t, empty.End(0))
}

func TestTutorialPlaysOnce(t *testing.T) {
	tut := NewTutorial(true, true, 4)

	assert.Nil(t, tut.Observe(0.5))
	assert.Equal(t, []snap.Effect{snap.VideoPlay{}}, tut.Observe(1))
	assert.Nil(t, tut.Observe(1), "second intersection does not replay")
	assert.True(t, tut.Played())

	assert.Equal(t, []snap.Effect{snap.VideoHide{}}, tut.Ended())
	assert.Nil(t, tut.Ended())
	assert.Nil(t, tut.Observe(1))
}

func TestTutorialWithoutVideo(t *testing.T) {
	tut := NewTutorial(true, false, 1)
	assert.Nil(t, tut.Observe(1))
	assert.False(t, tut.Played())
}
