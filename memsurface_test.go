package vtable_test

import (
	"slices"
	"testing"
	"time"

	"github.com/go-theft-auto/vtable"
)

var start = time.Unix(1000, 0)

func TestMemorySurfaceScrollClamps(t *testing.T) {
	s := vtable.NewMemorySurface(400, 400)
	s.SetContentSize(800, 4000)

	s.ScrollTo(vtable.AxisVertical, 10000, vtable.ScrollAuto)
	s.ScrollTo(vtable.AxisHorizontal, -30, vtable.ScrollAuto)
	g, _ := s.Measure()
	if g.ScrollTop != 3600 || g.ScrollLeft != 0 {
		t.Errorf("Expected offsets clamped to (3600, 0), got (%v, %v)", g.ScrollTop, g.ScrollLeft)
	}
}

func TestMemorySurfaceShrinkingContentClamps(t *testing.T) {
	s := vtable.NewMemorySurface(400, 400)
	s.SetContentSize(400, 4000)
	s.ScrollTo(vtable.AxisVertical, 3000, vtable.ScrollAuto)

	scrolls := 0
	s.OnScroll(func() { scrolls++ })
	s.SetContentSize(400, 1000)

	g, _ := s.Measure()
	if g.ScrollTop != 600 {
		t.Errorf("Expected scrollTop clamped to 600, got %v", g.ScrollTop)
	}
	if scrolls != 1 {
		t.Errorf("Expected the clamp to be reported as a scroll, got %d", scrolls)
	}
}

func TestMemorySurfaceSmoothScroll(t *testing.T) {
	s := vtable.NewMemorySurface(400, 400)
	s.SetContentSize(400, 4000)
	s.ScrollTo(vtable.AxisVertical, 1000, vtable.ScrollSmooth)

	if g, _ := s.Measure(); g.ScrollTop != 0 {
		t.Fatalf("Smooth scroll must not jump, got %v", g.ScrollTop)
	}
	if !s.Animating() {
		t.Fatal("Expected an animation in flight")
	}

	prev := float32(0)
	for i := 0; i < 200 && s.Animating(); i++ {
		s.Advance(16 * time.Millisecond)
		g, _ := s.Measure()
		if g.ScrollTop < prev || g.ScrollTop > 1000 {
			t.Fatalf("Step %d: scrollTop %v not moving monotonically toward 1000", i, g.ScrollTop)
		}
		prev = g.ScrollTop
	}
	if g, _ := s.Measure(); g.ScrollTop != 1000 || s.Animating() {
		t.Errorf("Expected animation to settle at 1000, got %v (animating=%v)", g.ScrollTop, s.Animating())
	}
}

func TestMemorySurfaceInstantScrollCancelsAnimation(t *testing.T) {
	s := vtable.NewMemorySurface(400, 400)
	s.SetContentSize(400, 4000)
	s.ScrollTo(vtable.AxisVertical, 1000, vtable.ScrollSmooth)
	s.ScrollTo(vtable.AxisVertical, 200, vtable.ScrollAuto)
	s.Advance(time.Second)

	if g, _ := s.Measure(); g.ScrollTop != 200 || s.Animating() {
		t.Errorf("Expected instant scroll to win, got %v (animating=%v)", g.ScrollTop, s.Animating())
	}
}

func TestMemorySurfaceListeners(t *testing.T) {
	s := vtable.NewMemorySurface(400, 400)
	var resizes, contents int
	cancelResize := s.OnResize(func() { resizes++ })
	cancelContent := s.OnContentChange(func() { contents++ })

	s.SetViewportSize(400, 400) // unchanged
	s.SetViewportSize(500, 400)
	s.SetContentSize(500, 2000)
	s.SetContentSize(500, 2000) // unchanged
	if resizes != 1 || contents != 1 {
		t.Errorf("Expected one resize and one content change, got %d and %d", resizes, contents)
	}

	cancelResize()
	cancelContent()
	if s.ListenerCount() != 0 {
		t.Errorf("Expected all listeners detached, got %d", s.ListenerCount())
	}
	s.SetViewportSize(600, 400)
	if resizes != 1 {
		t.Error("Detached listener still fired")
	}
}

func TestMemorySurfaceUnmounted(t *testing.T) {
	s := vtable.NewMemorySurface(400, 400)
	s.Unmount()
	if _, ok := s.Measure(); ok {
		t.Error("Expected unmounted surface to report not ready")
	}
	s.Mount()
	if _, ok := s.Measure(); !ok {
		t.Error("Expected mounted surface to report ready")
	}
}

func TestMemoryBox(t *testing.T) {
	b := vtable.NewMemoryBox(200, 100)
	resizes := 0
	b.OnResize(func() { resizes++ })

	b.SetPadding(10)
	r, ok := b.Measure()
	if !ok || r.W != 180 || r.H != 80 || r.X != 10 {
		t.Errorf("Expected padded content box, got %+v", r)
	}
	b.SetSize(200, 100) // unchanged
	b.SetSize(300, 100)
	if resizes != 2 {
		t.Errorf("Expected 2 resize notifications, got %d", resizes)
	}

	b.SetScrollLeft(42)
	if b.ScrollLeft() != 42 {
		t.Errorf("Expected mirrored scrollLeft 42, got %v", b.ScrollLeft())
	}
}

func TestScrollbarDetectorPublishesChanges(t *testing.T) {
	sched := vtable.NewScheduler(start)
	s := vtable.NewMemorySurface(400, 400)
	s.SetContentSize(400, 300)

	d := vtable.NewScrollbarDetector(s, sched)
	var published []vtable.ScrollState
	d.Subscribe(func(st vtable.ScrollState) { published = append(published, st) })

	st, ready := d.State()
	if !ready || st.Vertical || st.Horizontal {
		t.Fatalf("Expected initial sample without scrollbars, got %+v (ready=%v)", st, ready)
	}

	// Same geometry: nothing to publish.
	d.Sample()
	if len(published) != 0 {
		t.Fatalf("Expected no publication without a change, got %d", len(published))
	}

	// Content growth without a container resize is picked up after the debounce.
	s.SetContentSize(400, 4000)
	sched.RunFrame(start.Add(5 * time.Millisecond))
	if len(published) != 0 {
		t.Fatal("Expected content change to wait for the debounce")
	}
	sched.RunFrame(start.Add(vtable.ContentDebounce))
	if len(published) != 1 || !published[0].Vertical {
		t.Fatalf("Expected vertical scrollbar after content growth, got %+v", published)
	}

	// Viewport resize goes through the frame throttle; the leading edge is immediate.
	s.SetViewportSize(300, 400)
	if len(published) != 2 || !published[1].Horizontal {
		t.Errorf("Expected horizontal scrollbar after shrinking the viewport, got %+v", published)
	}
}

func TestScrollbarDetectorUnmounted(t *testing.T) {
	sched := vtable.NewScheduler(start)
	s := vtable.NewMemorySurface(400, 400)
	s.Unmount()

	d := vtable.NewScrollbarDetector(s, sched)
	if _, ready := d.State(); ready {
		t.Error("Expected no sample from an unmounted surface")
	}
	s.Mount()
	d.Sample()
	if _, ready := d.State(); !ready {
		t.Error("Expected a sample once mounted")
	}
}

func TestScrollbarDetectorClose(t *testing.T) {
	sched := vtable.NewScheduler(start)
	s := vtable.NewMemorySurface(400, 400)
	d := vtable.NewScrollbarDetector(s, sched)
	calls := 0
	d.Subscribe(func(vtable.ScrollState) { calls++ })

	s.SetContentSize(400, 4000) // arms the debounce
	d.Close()

	if s.ListenerCount() != 0 {
		t.Errorf("Expected detector to detach, %d listeners left", s.ListenerCount())
	}
	if sched.Pending() != 0 {
		t.Errorf("Expected no pending timers, got %d", sched.Pending())
	}
	sched.RunFrame(start.Add(time.Second))
	if calls != 0 {
		t.Errorf("Expected no publication after Close, got %d", calls)
	}
}

func TestActivityFader(t *testing.T) {
	sched := vtable.NewScheduler(start)
	var changes []bool
	f := vtable.NewActivityFader(sched, true, 500*time.Millisecond, 1, 0.25, func(a bool) {
		changes = append(changes, a)
	})

	if !f.Active() || f.Opacity() != 1 {
		t.Fatal("Expected fader to start active")
	}
	sched.RunFrame(start.Add(400 * time.Millisecond))
	if !f.Active() {
		t.Fatal("Fader dimmed before the delay")
	}
	// Nobody touched the table: it still dims.
	sched.RunFrame(start.Add(500 * time.Millisecond))
	if f.Active() || f.Opacity() != 0.25 {
		t.Fatalf("Expected an idle fader to dim, got active=%v opacity=%v", f.Active(), f.Opacity())
	}

	f.Activity() // armed until 1s
	sched.RunFrame(start.Add(900 * time.Millisecond))
	f.Activity() // re-arms until 1.4s
	sched.RunFrame(start.Add(1200 * time.Millisecond))
	if !f.Active() {
		t.Fatal("Expected activity to restart the countdown")
	}
	sched.RunFrame(start.Add(1400 * time.Millisecond))
	if f.Active() {
		t.Error("Expected dimmed after the delay")
	}
	if !slices.Equal(changes, []bool{false, true, false}) {
		t.Errorf("Expected [false true false] transitions, got %v", changes)
	}

	f.Activity()
	f.Stop()
	if sched.Pending() != 0 {
		t.Errorf("Expected Stop to cancel the timer, got %d pending", sched.Pending())
	}
}

func TestActivityFaderArmKeepsState(t *testing.T) {
	sched := vtable.NewScheduler(start)
	changes := 0
	f := vtable.NewActivityFader(sched, true, 100*time.Millisecond, 1, 0.25, func(bool) { changes++ })

	sched.RunFrame(start.Add(100 * time.Millisecond))
	f.Arm()
	if f.Active() || changes != 1 {
		t.Errorf("Arm must not mark activity, got active=%v changes=%d", f.Active(), changes)
	}
	if sched.Pending() != 1 {
		t.Errorf("Expected one armed timer, got %d", sched.Pending())
	}
	f.Stop()
}

func TestActivityFaderDisabled(t *testing.T) {
	sched := vtable.NewScheduler(start)
	f := vtable.NewActivityFader(sched, false, 0, 1, 0.25, nil)
	f.Activity()
	sched.RunFrame(start.Add(time.Hour))
	if !f.Active() || f.Opacity() != 1 || sched.Pending() != 0 {
		t.Error("Disabled fader must stay fully visible with nothing armed")
	}
}
