package vtable

import "time"

// frameThrottle runs fn at most once per interval. The first notification
// in a quiet period runs immediately (leading edge); notifications inside
// the window are dropped except for a single trailing run at the end of
// the window, so the last position of a fast scroll is never lost.
type frameThrottle struct {
	sched    *Scheduler
	interval time.Duration
	fn       func()

	last     time.Time
	ran      bool
	trailing *Timer
}

func newFrameThrottle(sched *Scheduler, interval time.Duration, fn func()) *frameThrottle {
	return &frameThrottle{sched: sched, interval: interval, fn: fn}
}

func (t *frameThrottle) Trigger() {
	now := t.sched.Now()
	if !t.ran || now.Sub(t.last) >= t.interval {
		t.ran = true
		t.last = now
		t.fn()
		return
	}
	if t.trailing != nil {
		return
	}
	t.trailing = t.sched.AfterFunc(t.interval-now.Sub(t.last), func() {
		t.trailing = nil
		t.last = t.sched.Now()
		t.fn()
	})
}

func (t *frameThrottle) Stop() {
	if t.trailing != nil {
		t.trailing.Stop()
		t.trailing = nil
	}
}

// debouncer coalesces a burst of notifications into one call delay after
// the last of them.
type debouncer struct {
	sched *Scheduler
	delay time.Duration
	fn    func()
	timer *Timer
}

func newDebouncer(sched *Scheduler, delay time.Duration, fn func()) *debouncer {
	return &debouncer{sched: sched, delay: delay, fn: fn}
}

func (d *debouncer) Trigger() {
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.sched.AfterFunc(d.delay, func() {
		d.timer = nil
		d.fn()
	})
}

func (d *debouncer) Stop() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
