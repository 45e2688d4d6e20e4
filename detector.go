package vtable

import "time"

// ContentDebounce coalesces bursts of content-change notifications.
const ContentDebounce = 10 * time.Millisecond

// ScrollState is what the detector publishes: the raw geometry plus which
// axes need a scrollbar.
type ScrollState struct {
	Geometry   ScrollGeometry
	Vertical   bool
	Horizontal bool
}

// ScrollbarDetector observes a Surface and republishes its geometry on
// resize, scroll and content change.
//
// All three sources are needed: a virtualized body changes its scrollable
// extent when the row count changes without the container itself resizing.
// Resize and scroll notifications are throttled to about one sample per
// frame; content changes are debounced.
type ScrollbarDetector struct {
	surface Surface
	state   ScrollState
	ready   bool

	notify   []func(ScrollState)
	throttle *frameThrottle
	debounce *debouncer
	cancels  []func()
}

// NewScrollbarDetector attaches to surface and takes an initial sample.
func NewScrollbarDetector(surface Surface, sched *Scheduler) *ScrollbarDetector {
	d := &ScrollbarDetector{surface: surface}
	d.throttle = newFrameThrottle(sched, FrameInterval, d.Sample)
	d.debounce = newDebouncer(sched, ContentDebounce, d.Sample)
	d.cancels = append(d.cancels,
		surface.OnResize(d.throttle.Trigger),
		surface.OnScroll(d.throttle.Trigger),
		surface.OnContentChange(d.debounce.Trigger),
	)
	d.Sample()
	return d
}

// Subscribe registers fn for every published change and returns a function
// that removes it.
func (d *ScrollbarDetector) Subscribe(fn func(ScrollState)) (cancel func()) {
	d.notify = append(d.notify, fn)
	idx := len(d.notify) - 1
	return func() {
		if idx < len(d.notify) {
			d.notify[idx] = nil
		}
	}
}

// State returns the last published state and whether any sample succeeded.
func (d *ScrollbarDetector) State() (ScrollState, bool) {
	return d.state, d.ready
}

// Sample measures the surface now and publishes if anything changed. An
// unmounted surface is ignored.
func (d *ScrollbarDetector) Sample() {
	g, ok := d.surface.Measure()
	if !ok {
		return
	}
	next := ScrollState{Geometry: g, Vertical: g.HasVertical(), Horizontal: g.HasHorizontal()}
	if d.ready && next == d.state {
		return
	}
	d.state = next
	d.ready = true
	if verbose() {
		tableLogger.Debug("scrollbar detector sample",
			"scrollHeight", g.ScrollHeight, "clientHeight", g.ClientHeight,
			"scrollWidth", g.ScrollWidth, "clientWidth", g.ClientWidth,
			"vertical", next.Vertical, "horizontal", next.Horizontal)
	}
	for _, fn := range d.notify {
		if fn != nil {
			fn(next)
		}
	}
}

// Close detaches all surface observers and pending timers.
func (d *ScrollbarDetector) Close() {
	for _, cancel := range d.cancels {
		cancel()
	}
	d.cancels = nil
	d.throttle.Stop()
	d.debounce.Stop()
	d.notify = nil
}
