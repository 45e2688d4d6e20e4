package vtable

// ScrollGeometry is a sample of a scroll container's extents and offsets.
type ScrollGeometry struct {
	ScrollLeft   float32
	ScrollTop    float32
	ScrollWidth  float32
	ScrollHeight float32
	ClientWidth  float32
	ClientHeight float32
}

// HasVertical reports whether the content overflows vertically.
func (g ScrollGeometry) HasVertical() bool {
	return g.ScrollHeight > g.ClientHeight
}

// HasHorizontal reports whether the content overflows horizontally.
func (g ScrollGeometry) HasHorizontal() bool {
	return g.ScrollWidth > g.ClientWidth
}

// Offset returns the scroll offset along axis.
func (g ScrollGeometry) Offset(axis Axis) float32 {
	if axis == AxisHorizontal {
		return g.ScrollLeft
	}
	return g.ScrollTop
}

// ScrollExtent returns the content extent along axis.
func (g ScrollGeometry) ScrollExtent(axis Axis) float32 {
	if axis == AxisHorizontal {
		return g.ScrollWidth
	}
	return g.ScrollHeight
}

// ClientExtent returns the viewport extent along axis.
func (g ScrollGeometry) ClientExtent(axis Axis) float32 {
	if axis == AxisHorizontal {
		return g.ClientWidth
	}
	return g.ClientHeight
}

// MaxOffset returns the largest valid scroll offset along axis.
func (g ScrollGeometry) MaxOffset(axis Axis) float32 {
	return MaxScroll(g.ScrollExtent(axis), g.ClientExtent(axis))
}

// ScrollBehavior selects how a programmatic scroll is applied.
type ScrollBehavior int

const (
	// ScrollAuto jumps immediately (used while dragging a thumb).
	ScrollAuto ScrollBehavior = iota
	// ScrollSmooth animates toward the target (used for track clicks).
	ScrollSmooth
)

func (b ScrollBehavior) String() string {
	if b == ScrollSmooth {
		return "smooth"
	}
	return "auto"
}

// Surface is the scrollable body the engine virtualizes into. It is the
// only place real layout lives, so the engine's math stays testable with a
// fake that calls back synchronously.
//
// Every On* method returns a function that detaches the callback.
type Surface interface {
	// Measure samples the current geometry. ok is false while the surface
	// is not mounted; callers treat that as "not ready yet".
	Measure() (g ScrollGeometry, ok bool)
	// ScrollTo requests a new scroll offset along one axis.
	ScrollTo(axis Axis, offset float32, behavior ScrollBehavior)
	OnResize(fn func()) (cancel func())
	OnScroll(fn func()) (cancel func())
	// OnContentChange fires when the scrollable content changes without
	// the container itself being resized.
	OnContentChange(fn func()) (cancel func())
}

// Box is a measurable band: the header, the footer, or the sized parent of
// an auto-height table.
type Box interface {
	// Measure returns the content box (padding excluded). ok is false
	// while the box is not mounted.
	Measure() (r Rect, ok bool)
	OnResize(fn func()) (cancel func())
}

// ContentSizer is implemented by surfaces whose scrollable extent is set by
// the host rather than computed by a layout engine.
type ContentSizer interface {
	SetContentSize(width, height float32)
}

// ViewportSizer is implemented by surfaces whose client area is set by the
// host.
type ViewportSizer interface {
	SetViewportSize(width, height float32)
}

// ScrollMirror is implemented by bands that scroll horizontally in
// lockstep with the body.
type ScrollMirror interface {
	SetScrollLeft(x float32)
}

// Surfaces groups everything an engine observes. Only Body is required.
type Surfaces struct {
	Body   Surface
	Header Box
	Footer Box
	Parent Box
}
