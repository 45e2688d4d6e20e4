package vtable

import "time"

// DefaultFadeDelay is how long scrollbars stay fully visible after the last
// scroll or pointer move when auto-hide is on.
const DefaultFadeDelay = 1500 * time.Millisecond

// ActivityFader is the auto-hide state machine:
//
//	active -(fade delay elapsed)-> inactive -(activity)-> active
//
// Any activity re-arms the timer. When disabled the fader stays active.
type ActivityFader struct {
	sched    *Scheduler
	delay    time.Duration
	enabled  bool
	visible  float32
	dimmed   float32
	active   bool
	timer    *Timer
	onChange func(active bool)
}

// NewActivityFader creates a fader in the active state. When enabled the
// countdown starts immediately, so an untouched table still dims.
// onChange may be nil.
func NewActivityFader(sched *Scheduler, enabled bool, delay time.Duration, visible, dimmed float32, onChange func(active bool)) *ActivityFader {
	if delay <= 0 {
		delay = DefaultFadeDelay
	}
	f := &ActivityFader{
		sched:    sched,
		delay:    delay,
		enabled:  enabled,
		visible:  visible,
		dimmed:   dimmed,
		active:   true,
		onChange: onChange,
	}
	f.Arm()
	return f
}

// Arm restarts the countdown without changing the state.
func (f *ActivityFader) Arm() {
	if !f.enabled {
		return
	}
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = f.sched.AfterFunc(f.delay, f.expire)
}

// Activity marks user activity: become active and restart the countdown.
func (f *ActivityFader) Activity() {
	if !f.enabled {
		return
	}
	f.Arm()
	f.set(true)
}

func (f *ActivityFader) expire() {
	f.timer = nil
	f.set(false)
}

func (f *ActivityFader) set(active bool) {
	if f.active == active {
		return
	}
	f.active = active
	tableLogger.Debug("scrollbar fader", "active", active)
	if f.onChange != nil {
		f.onChange(active)
	}
}

// Active reports whether the scrollbars are in the visible state.
func (f *ActivityFader) Active() bool {
	return !f.enabled || f.active
}

// Opacity returns the scrollbar opacity for the current state.
func (f *ActivityFader) Opacity() float32 {
	if f.Active() {
		return f.visible
	}
	return f.dimmed
}

// Stop cancels the pending fade timer.
func (f *ActivityFader) Stop() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}
