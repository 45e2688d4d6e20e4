package vtable

// ThumbGeometry is the size and position of a scrollbar thumb along its
// track.
type ThumbGeometry struct {
	Size        float32 // Thumb length
	Offset      float32 // Distance from the track start, in [0, TrackSpace]
	TrackSpace  float32 // TrackLength - Size: how far the thumb can travel
	TrackLength float32
}

// ComputeThumb maps scroll geometry onto a track:
//
//	size   = max(trackLength * client/scroll, thumbMin), capped at trackLength
//	offset = scrollOffset / (scroll - client) * (trackLength - size)
//
// The offset is clamped to [0, TrackSpace] so the thumb never leaves the
// track, even when scrollOffset is stale relative to the extents. Content
// that fits yields a thumb filling the whole track.
func ComputeThumb(scrollOffset, scrollExtent, clientExtent, trackLength, thumbMin float32) ThumbGeometry {
	trackLength = maxf(0, trackLength)
	if scrollExtent <= clientExtent || scrollExtent <= 0 {
		return ThumbGeometry{Size: trackLength, TrackLength: trackLength}
	}

	size := maxf(trackLength*(clientExtent/scrollExtent), thumbMin)
	size = minf(size, trackLength)
	space := trackLength - size

	maxScroll := scrollExtent - clientExtent
	offset := clampf(scrollOffset/maxScroll*space, 0, space)

	return ThumbGeometry{Size: size, Offset: offset, TrackSpace: space, TrackLength: trackLength}
}

// ScrollForThumb is the inverse of ComputeThumb's offset mapping: the scroll
// offset that puts the thumb at thumbOffset, clamped to [0, maxScroll].
func ScrollForThumb(thumbOffset, trackSpace, maxScroll float32) float32 {
	if trackSpace <= 0 || maxScroll <= 0 {
		return 0
	}
	return clampf(thumbOffset/trackSpace*maxScroll, 0, maxScroll)
}

// AxisScrollbar controls one synthetic scrollbar. It turns scroll geometry
// into thumb geometry and turns track clicks and thumb drags into scroll
// requests. The vertical and horizontal instances are independent except
// for the shared corner (see Update).
type AxisScrollbar struct {
	axis     Axis
	style    AxisStyle
	scrollTo func(offset float32, behavior ScrollBehavior)

	geom    ScrollGeometry
	thumb   ThumbGeometry
	visible bool
	hovered bool
	drag    DragState
}

// NewAxisScrollbar creates a controller. scrollTo receives every scroll
// request the controller issues.
func NewAxisScrollbar(axis Axis, style AxisStyle, scrollTo func(offset float32, behavior ScrollBehavior)) *AxisScrollbar {
	return &AxisScrollbar{axis: axis, style: style, scrollTo: scrollTo}
}

// Update recomputes the thumb from a fresh geometry sample. When the other
// axis is visible its thickness is taken off this track so the two bars do
// not overlap in the corner.
func (b *AxisScrollbar) Update(g ScrollGeometry, otherVisible bool, otherThickness float32) {
	b.geom = g
	b.visible = g.ScrollExtent(b.axis) > g.ClientExtent(b.axis)

	track := g.ClientExtent(b.axis)
	if otherVisible {
		track -= otherThickness
	}
	b.thumb = ComputeThumb(g.Offset(b.axis), g.ScrollExtent(b.axis), g.ClientExtent(b.axis), track, b.style.ThumbMin)

	if !b.visible && b.drag.Active() {
		// Content shrank to fit mid-drag; nothing left to drag.
		b.drag.Reset()
	}
}

// SetStyle replaces the visual configuration. The thumb is recomputed on
// the next Update.
func (b *AxisScrollbar) SetStyle(style AxisStyle) {
	b.style = style
}

// Axis returns the controlled axis.
func (b *AxisScrollbar) Axis() Axis { return b.axis }

// Style returns the visual configuration.
func (b *AxisScrollbar) Style() AxisStyle { return b.style }

// Visible reports whether the content overflows on this axis. A hidden
// scrollbar renders nothing and ignores gestures.
func (b *AxisScrollbar) Visible() bool { return b.visible }

// Thumb returns the current thumb geometry.
func (b *AxisScrollbar) Thumb() ThumbGeometry { return b.thumb }

// Dragging reports whether a thumb drag is in progress.
func (b *AxisScrollbar) Dragging() bool { return b.drag.Active() }

// Hovered reports whether the pointer is over the thumb.
func (b *AxisScrollbar) Hovered() bool { return b.hovered }

// SetHovered records pointer hover over the thumb.
func (b *AxisScrollbar) SetHovered(h bool) { b.hovered = h }

// ThumbColor returns the thumb color for the current interaction state.
func (b *AxisScrollbar) ThumbColor() uint32 {
	switch {
	case b.drag.Active():
		return b.style.Colors.ThumbActive
	case b.hovered:
		return b.style.Colors.ThumbHovered
	default:
		return b.style.Colors.Thumb
	}
}

// HitThumb reports whether pos (relative to the track start) is on the
// thumb.
func (b *AxisScrollbar) HitThumb(pos float32) bool {
	return b.visible && pos >= b.thumb.Offset && pos < b.thumb.Offset+b.thumb.Size
}

// TrackClick scrolls so the thumb centers on pos (relative to the track
// start). The scroll is smooth. Returns false when the bar is hidden.
func (b *AxisScrollbar) TrackClick(pos float32) bool {
	if !b.visible {
		return false
	}
	maxScroll := b.geom.MaxOffset(b.axis)
	target := ScrollForThumb(pos-b.thumb.Size/2, b.thumb.TrackSpace, maxScroll)
	tableLogger.Debug("scrollbar track click", "axis", b.axis, "pos", pos, "target", target)
	b.scrollTo(target, ScrollSmooth)
	return true
}

// BeginDrag starts dragging the thumb with pointerID at pos along the axis.
func (b *AxisScrollbar) BeginDrag(pointerID int, pos float32) bool {
	if !b.visible {
		return false
	}
	if !b.drag.Begin(pointerID, pos, b.geom.Offset(b.axis)) {
		return false
	}
	tableLogger.Debug("scrollbar drag begin", "axis", b.axis, "pointer", pointerID, "offset", b.drag.StartOffset)
	return true
}

// DragMove converts pointer travel since BeginDrag into an instant scroll:
//
//	deltaScroll = deltaPixels / trackSpace * (scroll - client)
//
// The extents are the current ones, so a drag keeps tracking even if the
// content grows or shrinks under it.
func (b *AxisScrollbar) DragMove(pointerID int, pos float32) bool {
	delta, ok := b.drag.Delta(pointerID, pos)
	if !ok {
		return false
	}
	space := b.thumb.TrackSpace
	if space <= 0 {
		return true
	}
	maxScroll := b.geom.MaxOffset(b.axis)
	target := clampf(b.drag.StartOffset+delta/space*maxScroll, 0, maxScroll)
	b.scrollTo(target, ScrollAuto)
	return true
}

// EndDrag finishes the drag owned by pointerID.
func (b *AxisScrollbar) EndDrag(pointerID int) bool {
	if !b.drag.End(pointerID) {
		return false
	}
	tableLogger.Debug("scrollbar drag end", "axis", b.axis, "pointer", pointerID)
	return true
}

// CancelDrag abandons any drag without issuing a scroll.
func (b *AxisScrollbar) CancelDrag() {
	b.drag.Reset()
}
