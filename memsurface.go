package vtable

import "time"

// smoothScrollRate is the fraction of the remaining distance covered per
// second of smooth scrolling (exponential ease-out).
const smoothScrollRate = 14

// listeners is an ordered callback set with detachable entries.
type listeners struct {
	nextID int
	fns    []listener
}

type listener struct {
	id int
	fn func()
}

func (l *listeners) add(fn func()) func() {
	l.nextID++
	id := l.nextID
	l.fns = append(l.fns, listener{id: id, fn: fn})
	return func() {
		for i, e := range l.fns {
			if e.id == id {
				l.fns = append(l.fns[:i], l.fns[i+1:]...)
				return
			}
		}
	}
}

func (l *listeners) fire() {
	// Copy so callbacks may detach themselves.
	fns := append([]listener(nil), l.fns...)
	for _, e := range fns {
		e.fn()
	}
}

func (l *listeners) len() int {
	return len(l.fns)
}

// MemorySurface is an in-memory scroll container for hosts without a layout
// engine (OpenGL, terminals) and for tests. The host sets the viewport and
// content sizes; every change is reported synchronously to observers.
type MemorySurface struct {
	geom    ScrollGeometry
	mounted bool

	resize  listeners
	scroll  listeners
	content listeners

	target    [2]float32
	animating [2]bool
}

// NewMemorySurface creates a mounted surface with the given viewport size
// and no content.
func NewMemorySurface(width, height float32) *MemorySurface {
	return &MemorySurface{
		geom:    ScrollGeometry{ClientWidth: width, ClientHeight: height},
		mounted: true,
	}
}

// Measure implements Surface.
func (s *MemorySurface) Measure() (ScrollGeometry, bool) {
	return s.geom, s.mounted
}

// OnResize implements Surface.
func (s *MemorySurface) OnResize(fn func()) func() { return s.resize.add(fn) }

// OnScroll implements Surface.
func (s *MemorySurface) OnScroll(fn func()) func() { return s.scroll.add(fn) }

// OnContentChange implements Surface.
func (s *MemorySurface) OnContentChange(fn func()) func() { return s.content.add(fn) }

// ListenerCount returns the number of attached callbacks. Hosts use it to
// check that teardown detached everything.
func (s *MemorySurface) ListenerCount() int {
	return s.resize.len() + s.scroll.len() + s.content.len()
}

// ScrollTo implements Surface. Offsets are clamped to the scrollable range.
func (s *MemorySurface) ScrollTo(axis Axis, offset float32, behavior ScrollBehavior) {
	offset = clampf(offset, 0, s.geom.MaxOffset(axis))
	if behavior == ScrollSmooth {
		s.target[axis] = offset
		s.animating[axis] = offset != s.geom.Offset(axis)
		return
	}
	s.animating[axis] = false
	s.setOffset(axis, offset)
}

// Animating reports whether a smooth scroll is in flight.
func (s *MemorySurface) Animating() bool {
	return s.animating[AxisVertical] || s.animating[AxisHorizontal]
}

// Advance steps in-flight smooth scrolls by dt.
func (s *MemorySurface) Advance(dt time.Duration) {
	step := clampf(float32(dt.Seconds())*smoothScrollRate, 0, 1)
	for _, axis := range [...]Axis{AxisVertical, AxisHorizontal} {
		if !s.animating[axis] {
			continue
		}
		cur := s.geom.Offset(axis)
		next := cur + (s.target[axis]-cur)*step
		if diff := s.target[axis] - next; diff < 0.5 && diff > -0.5 {
			next = s.target[axis]
			s.animating[axis] = false
		}
		s.setOffset(axis, next)
	}
}

// SetContentSize implements ContentSizer. A shrinking extent clamps the
// scroll offsets, which is reported as a scroll.
func (s *MemorySurface) SetContentSize(width, height float32) {
	if s.geom.ScrollWidth == width && s.geom.ScrollHeight == height {
		return
	}
	s.geom.ScrollWidth = width
	s.geom.ScrollHeight = height
	s.clampOffsets()
	s.content.fire()
}

// SetViewportSize implements ViewportSizer.
func (s *MemorySurface) SetViewportSize(width, height float32) {
	if s.geom.ClientWidth == width && s.geom.ClientHeight == height {
		return
	}
	s.geom.ClientWidth = width
	s.geom.ClientHeight = height
	s.clampOffsets()
	s.resize.fire()
}

// Mount and Unmount toggle whether Measure reports a ready surface.
func (s *MemorySurface) Mount()   { s.mounted = true }
func (s *MemorySurface) Unmount() { s.mounted = false }

func (s *MemorySurface) clampOffsets() {
	for _, axis := range [...]Axis{AxisVertical, AxisHorizontal} {
		if maxOff := s.geom.MaxOffset(axis); s.geom.Offset(axis) > maxOff {
			s.setOffset(axis, maxOff)
		}
		if s.animating[axis] {
			s.target[axis] = clampf(s.target[axis], 0, s.geom.MaxOffset(axis))
		}
	}
}

func (s *MemorySurface) setOffset(axis Axis, offset float32) {
	if s.geom.Offset(axis) == offset {
		return
	}
	if axis == AxisHorizontal {
		s.geom.ScrollLeft = offset
	} else {
		s.geom.ScrollTop = offset
	}
	s.scroll.fire()
}

// MemoryBox is an in-memory Box. It also mirrors a horizontal scroll
// offset so it can stand in for a footer band.
type MemoryBox struct {
	rect       Rect
	padding    float32
	mounted    bool
	scrollLeft float32
	resize     listeners
}

// NewMemoryBox creates a mounted box of the given outer size.
func NewMemoryBox(width, height float32) *MemoryBox {
	return &MemoryBox{rect: Rect{W: width, H: height}, mounted: true}
}

// Measure implements Box. The content box excludes padding on every side.
func (b *MemoryBox) Measure() (Rect, bool) {
	r := b.rect
	r.X += b.padding
	r.Y += b.padding
	r.W = maxf(0, r.W-2*b.padding)
	r.H = maxf(0, r.H-2*b.padding)
	return r, b.mounted
}

// OnResize implements Box.
func (b *MemoryBox) OnResize(fn func()) func() { return b.resize.add(fn) }

// SetSize changes the outer size and notifies observers.
func (b *MemoryBox) SetSize(width, height float32) {
	if b.rect.W == width && b.rect.H == height {
		return
	}
	b.rect.W = width
	b.rect.H = height
	b.resize.fire()
}

// SetPadding changes the padding and notifies observers.
func (b *MemoryBox) SetPadding(p float32) {
	if b.padding == p {
		return
	}
	b.padding = p
	b.resize.fire()
}

// SetScrollLeft implements ScrollMirror.
func (b *MemoryBox) SetScrollLeft(x float32) { b.scrollLeft = x }

// ScrollLeft returns the mirrored horizontal offset.
func (b *MemoryBox) ScrollLeft() float32 { return b.scrollLeft }

// Mount and Unmount toggle whether Measure reports a ready box.
func (b *MemoryBox) Mount()   { b.mounted = true }
func (b *MemoryBox) Unmount() { b.mounted = false }

// ListenerCount returns the number of attached callbacks.
func (b *MemoryBox) ListenerCount() int { return b.resize.len() }
