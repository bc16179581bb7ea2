package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/pders01/pagesnap/internal/debuglog"
	"github.com/pders01/pagesnap/internal/snap"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func fullShape() Shape {
	return Shape{Pages: 4, Dots: true, Banner: true, CardsPage: 2, Cards: 5, Video: true, Popup: true}
}

func contains[T snap.Effect](effects []snap.Effect) (T, bool) {
	for _, e := range effects {
		if v, ok := e.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func TestStartEffects(t *testing.T) {
	s := New(fullShape(), Options{}, newClock())

	effects := s.Start()
	require.Len(t, effects, 4)
	assert.Equal(t, snap.Chrome{Visible: false}, effects[0])
	assert.Equal(t, snap.DotsOpacity{Value: 0}, effects[1])
	assert.Equal(t, snap.DotsOpacity{Value: 0.3}, effects[2])
	r, ok := effects[3].(snap.Render)
	require.True(t, ok)
	assert.Equal(t, 0, r.Layout.Index)
}

func TestStartWithoutCollaborators(t *testing.T) {
	s := New(Shape{Pages: 2, CardsPage: -1}, Options{}, newClock())
	effects := s.Start()
	require.Len(t, effects, 1)

	assert.Nil(t, s.Handle(snap.PopupToggle{}))
	assert.Nil(t, s.Handle(snap.Intersection{Section: snap.SectionBanner, Ratio: 1}))
	assert.Nil(t, s.Handle(snap.Intersection{Section: snap.SectionCards, Ratio: 1}))
}

func TestWheelCooldownScenario(t *testing.T) {
	clock := newClock()
	s := New(fullShape(), Options{}, clock)

	s.Handle(snap.Wheel{DeltaY: 50})
	assert.Equal(t, 1, s.Current())

	s.Handle(snap.Wheel{DeltaY: 50})
	assert.Equal(t, 1, s.Current())

	clock.Advance(700 * time.Millisecond)
	s.Handle(snap.Wheel{DeltaY: 50})
	assert.Equal(t, 2, s.Current())
}

func TestDotClickIgnoresScrollLock(t *testing.T) {
	s := New(fullShape(), Options{}, newClock())
	s.Handle(snap.Wheel{DeltaY: 50})
	s.Handle(snap.LogoClick{})
	require.Equal(t, 0, s.Current())

	s.Handle(snap.DotClick{Index: 3})
	assert.Equal(t, 3, s.Current())
}

func TestModalBlocksAllNavigation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		clock := newClock()
		s := New(fullShape(), Options{}, clock)
		s.Handle(snap.Resize{Width: 400, CardWidth: 200})
		s.Handle(snap.ModalOpening{})

		events := rapid.SliceOf(rapid.SampledFrom([]snap.Event{
			snap.Wheel{DeltaY: 120},
			snap.Wheel{DeltaY: -120},
			snap.TouchStart{Point: snap.Point{X: 100, Y: 600}},
			snap.TouchEnd{Point: snap.Point{X: 100, Y: 0}},
			snap.DotClick{Index: 2},
			snap.DotClick{Index: 3},
			snap.LogoClick{},
		})).Draw(t, "events")

		for _, ev := range events {
			clock.Advance(time.Second)
			if _, ok := contains[snap.Render](s.Handle(ev)); ok {
				t.Fatalf("render while modal open after %#v", ev)
			}
		}
		if s.Current() != 0 {
			t.Fatalf("index moved to %d under modal", s.Current())
		}
	})
}

func TestModalLifecycle(t *testing.T) {
	clock := newClock()
	s := New(fullShape(), Options{}, clock)

	effects := s.Handle(snap.ModalOpening{})
	assert.Contains(t, effects, snap.DotsDisplay{Shown: false})
	assert.True(t, s.ModalOpen())

	effects = s.Handle(snap.ModalClosed{})
	assert.Contains(t, effects, snap.DotsDisplay{Shown: true})

	s.Handle(snap.Wheel{DeltaY: 50})
	assert.Equal(t, 1, s.Current())
}

func TestPullToRefreshOnBanner(t *testing.T) {
	clock := newClock()
	s := New(fullShape(), Options{}, clock)
	s.Handle(snap.Resize{Width: 400})

	gesture := func() []snap.Effect {
		start := clock.Now()
		s.Handle(snap.TouchStart{Point: snap.Point{X: 100, Y: 100}, At: start, Target: snap.TargetBanner})
		s.Handle(snap.TouchMove{Point: snap.Point{X: 105, Y: 140}, At: start.Add(200 * time.Millisecond)})
		return s.Handle(snap.TouchEnd{Point: snap.Point{X: 110, Y: 180}, At: start.Add(500 * time.Millisecond)})
	}

	reload, ok := contains[snap.Reload](gesture())
	require.True(t, ok)
	assert.Equal(t, 220*time.Millisecond, reload.After)

	clock.Advance(2 * time.Second)
	_, ok = contains[snap.Reload](gesture())
	assert.False(t, ok, "one reload per session until resize")

	s.Handle(snap.Resize{Width: 400})
	clock.Advance(2 * time.Second)
	_, ok = contains[snap.Reload](gesture())
	assert.True(t, ok)
}

func TestPullToRefreshLogsOncePerTrigger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "session.log")
	require.NoError(t, debuglog.Setup(debuglog.LevelInfo, logPath))

	clock := newClock()
	s := New(fullShape(), Options{}, clock)
	s.Handle(snap.Resize{Width: 400})

	pull := func() {
		start := clock.Now()
		s.Handle(snap.TouchStart{Point: snap.Point{X: 100, Y: 100}, At: start, Target: snap.TargetBanner})
		s.Handle(snap.TouchMove{Point: snap.Point{X: 105, Y: 140}, At: start.Add(200 * time.Millisecond)})
		s.Handle(snap.TouchEnd{Point: snap.Point{X: 110, Y: 180}, At: start.Add(500 * time.Millisecond)})
		clock.Advance(2 * time.Second)
	}
	pull()
	pull()
	s.Handle(snap.TouchStart{Point: snap.Point{X: 100, Y: 100}, Target: snap.TargetBanner})
	s.Handle(snap.TouchEnd{Point: snap.Point{X: 100, Y: 100}})
	require.NoError(t, debuglog.Close())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(content), "pull-to-refresh triggered"))
}

func TestTouchEndWithoutStartIsDropped(t *testing.T) {
	s := New(fullShape(), Options{}, newClock())
	s.Handle(snap.Resize{Width: 400})

	assert.Nil(t, s.Handle(snap.TouchEnd{Point: snap.Point{X: 100, Y: 600}}))
	assert.Equal(t, 0, s.Current())
}

func TestPullOffBannerDoesNothing(t *testing.T) {
	s := New(fullShape(), Options{}, newClock())
	s.Handle(snap.Resize{Width: 400})

	s.Handle(snap.TouchStart{Point: snap.Point{X: 100, Y: 100}, Target: snap.TargetPage})
	assert.Nil(t, s.Handle(snap.TouchMove{Point: snap.Point{X: 100, Y: 160}}))
	effects := s.Handle(snap.TouchEnd{Point: snap.Point{X: 100, Y: 180}})
	_, ok := contains[snap.Reload](effects)
	assert.False(t, ok)
}

func TestCarouselThroughSession(t *testing.T) {
	s := New(fullShape(), Options{}, newClock())
	s.Handle(snap.Resize{Width: 400, CardWidth: 240})

	swipe := func() []snap.Effect {
		s.Handle(snap.TouchStart{Point: snap.Point{X: 300, Y: 200}, Target: snap.TargetCards})
		return s.Handle(snap.TouchEnd{Point: snap.Point{X: 220, Y: 200}})
	}

	move, ok := contains[snap.CarouselMove](swipe())
	require.True(t, ok)
	assert.Equal(t, snap.CarouselMove{Index: 1, OffsetPx: -256}, move)

	for i := 0; i < 4; i++ {
		swipe()
	}
	assert.Equal(t, 0, s.CardIndex())
	assert.Equal(t, 0, s.Current(), "horizontal swipe does not change page")
}

func TestTutorialOnlyOnce(t *testing.T) {
	s := New(fullShape(), Options{}, newClock())

	first := s.Handle(snap.Intersection{Section: snap.SectionCards, Ratio: 1})
	assert.Equal(t, []snap.Effect{snap.VideoPlay{}}, first)
	assert.Nil(t, s.Handle(snap.Intersection{Section: snap.SectionCards, Ratio: 1}))
	assert.Equal(t, []snap.Effect{snap.VideoHide{}}, s.Handle(snap.VideoEnded{}))
	assert.True(t, s.TutorialPlayed())
}

func TestPopupToggle(t *testing.T) {
	s := New(fullShape(), Options{}, newClock())
	assert.Equal(t, []snap.Effect{snap.PopupOpen{Open: true}}, s.Handle(snap.PopupToggle{}))
	assert.Equal(t, []snap.Effect{snap.PopupOpen{Open: false}}, s.Handle(snap.PopupToggle{}))
}

func TestDotsIdleFollowsLatestWheel(t *testing.T) {
	s := New(fullShape(), Options{}, newClock())

	first, ok := contains[snap.ScheduleDotsIdle](s.Handle(snap.Wheel{DeltaY: 1}))
	require.True(t, ok)
	second, _ := contains[snap.ScheduleDotsIdle](s.Handle(snap.Wheel{DeltaY: 1}))

	assert.Nil(t, s.Handle(snap.DotsIdle{Seq: first.Seq}))
	assert.Equal(t, []snap.Effect{snap.DotsOpacity{Value: 0.3}}, s.Handle(snap.DotsIdle{Seq: second.Seq}))
}

func TestNavigateProgrammatic(t *testing.T) {
	clock := newClock()
	s := New(fullShape(), Options{}, clock)

	s.Navigate(snap.Down)
	clock.Advance(time.Second)
	s.Navigate(snap.Down)
	assert.Equal(t, 2, s.Current())
}
