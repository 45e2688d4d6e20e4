package vtable

import (
	"sort"
	"time"
)

// FrameInterval is the nominal frame period used for throttling.
const FrameInterval = 16 * time.Millisecond

// Scheduler is a cooperative, single-threaded frame loop. It stands in for
// requestAnimationFrame and setTimeout: callbacks only ever run inside
// RunFrame, on the caller's goroutine, so engine state needs no locking.
//
// Usage:
//
//	sched := vtable.NewScheduler(time.Now())
//	for running {
//	    pollEvents()
//	    sched.RunFrame(time.Now())
//	    draw(engine.Render())
//	}
//
// A Scheduler is not safe for concurrent use.
type Scheduler struct {
	now    time.Time
	frames []frameTask
	timers []*Timer
	nextID uint64
}

type frameTask struct {
	id uint64
	fn func()
}

// Timer is a one-shot callback armed with AfterFunc.
type Timer struct {
	sched    *Scheduler
	id       uint64
	deadline time.Time
	fn       func()
	pending  bool
}

// NewScheduler creates a scheduler whose clock starts at now.
func NewScheduler(now time.Time) *Scheduler {
	return &Scheduler{now: now}
}

// Now returns the time of the last RunFrame.
func (s *Scheduler) Now() time.Time {
	return s.now
}

// RequestFrame queues fn for the next RunFrame. Callbacks requested while a
// frame is running wait for the following frame. The returned function
// cancels the request.
func (s *Scheduler) RequestFrame(fn func()) (cancel func()) {
	s.nextID++
	id := s.nextID
	s.frames = append(s.frames, frameTask{id: id, fn: fn})
	return func() {
		for i, t := range s.frames {
			if t.id == id {
				s.frames = append(s.frames[:i], s.frames[i+1:]...)
				return
			}
		}
	}
}

// AfterFunc arms a timer that fires on the first RunFrame at or after
// Now()+d.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) *Timer {
	s.nextID++
	t := &Timer{sched: s, id: s.nextID, deadline: s.now.Add(d), fn: fn, pending: true}
	s.timers = append(s.timers, t)
	return t
}

// Stop disarms the timer. It reports whether the timer was still pending.
func (t *Timer) Stop() bool {
	if t == nil || !t.pending {
		return false
	}
	t.pending = false
	s := t.sched
	for i, other := range s.timers {
		if other == t {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			break
		}
	}
	return true
}

// Deadline returns when the timer fires.
func (t *Timer) Deadline() time.Time {
	return t.deadline
}

// RunFrame advances the clock to now, fires due timers in deadline order and
// then runs the frame callbacks that were queued before this call.
func (s *Scheduler) RunFrame(now time.Time) {
	if now.After(s.now) {
		s.now = now
	}

	var due []*Timer
	kept := s.timers[:0]
	for _, t := range s.timers {
		if !t.deadline.After(s.now) {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	s.timers = kept
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].deadline.Before(due[j].deadline)
	})
	for _, t := range due {
		// An earlier callback in this frame may have stopped t.
		if !t.pending {
			continue
		}
		t.pending = false
		t.fn()
	}

	frames := s.frames
	s.frames = nil
	for _, f := range frames {
		f.fn()
	}
}

// Pending returns the number of queued frame callbacks and armed timers.
func (s *Scheduler) Pending() int {
	return len(s.frames) + len(s.timers)
}
