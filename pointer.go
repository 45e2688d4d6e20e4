package vtable

// mousePointer is the pointer ID of the mouse. Touch hosts use other IDs
// through the AxisScrollbar API directly.
const mousePointer = 0

// HandleInput applies one frame of input to the table drawn at origin.
//
// An in-flight thumb drag follows the pointer and ends on release wherever
// the pointer is, so dragging survives leaving the table. Otherwise a press
// on a thumb starts a drag, a press on a track scrolls smoothly, and a press
// on a band or row dispatches the click callbacks. Wheel and paging keys
// apply while the pointer is over the table.
func (e *Engine) HandleInput(in *InputState, origin Vec2) {
	if in == nil {
		return
	}
	p := in.MousePos().Sub(origin)
	d := &e.desc

	if e.handleDrag(in, p) {
		return
	}

	inside := p.X >= 0 && p.X < d.Width && p.Y >= 0 && p.Y < d.EffectiveHeight
	if inside && in.MouseMoved() {
		e.fader.Activity()
	}

	hit := d.HitTest(p)
	e.updateHover(hit)

	if in.MouseClicked(MouseButtonLeft) {
		e.press(hit, p)
	}
	if !inside {
		return
	}

	wheelX, wheelY := in.MouseWheelX, in.MouseWheelY
	if in.ModShift && wheelX == 0 {
		wheelX, wheelY = wheelY, 0
	}
	if wheelX != 0 || wheelY != 0 {
		e.HandleWheel(wheelX, wheelY)
	}
	e.handleKeys(in)
}

// handleDrag advances an active thumb drag. It reports whether a drag
// consumed the input.
func (e *Engine) handleDrag(in *InputState, p Vec2) bool {
	for _, b := range [...]*AxisScrollbar{e.vbar, e.hbar} {
		if !b.Dragging() {
			continue
		}
		if in.MouseDown(MouseButtonLeft) {
			b.DragMove(mousePointer, p.On(b.Axis()))
		}
		if !in.MouseDown(MouseButtonLeft) || in.MouseReleased(MouseButtonLeft) {
			b.EndDrag(mousePointer)
		}
		e.fader.Activity()
		e.invalidate()
		return true
	}
	return false
}

func (e *Engine) press(hit Hit, p Vec2) {
	d := &e.desc
	switch hit.Kind {
	case HitVerticalThumb:
		e.vbar.BeginDrag(mousePointer, p.Y)
		e.invalidate()
	case HitHorizontalThumb:
		e.hbar.BeginDrag(mousePointer, p.X)
		e.invalidate()
	case HitVerticalTrack:
		e.vbar.TrackClick(p.Y - d.Vertical.Track.Y)
	case HitHorizontalTrack:
		e.hbar.TrackClick(p.X - d.Horizontal.Track.X)
	case HitHeaderCell:
		d.HeaderCells[hit.Cell].Click()
	case HitFooterCell:
		d.FooterCells[hit.Cell].Click()
	case HitCell:
		row := &d.Rows[hit.Row]
		row.Cells[hit.Cell].Click()
		row.Click()
	case HitRow:
		d.Rows[hit.Row].Click()
	}
}

func (e *Engine) updateHover(hit Hit) {
	hoverRow := -1
	if hit.Kind == HitCell || hit.Kind == HitRow {
		hoverRow = e.desc.Rows[hit.Row].Index
	}
	vthumb := hit.Kind == HitVerticalThumb
	hthumb := hit.Kind == HitHorizontalThumb
	if hoverRow == e.hoverRow && vthumb == e.vbar.Hovered() && hthumb == e.hbar.Hovered() {
		return
	}
	e.hoverRow = hoverRow
	e.vbar.SetHovered(vthumb)
	e.hbar.SetHovered(hthumb)
	e.invalidate()
}

func (e *Engine) handleKeys(in *InputState) {
	body := e.heights.BodyHeight
	maxTop := MaxScroll(ContentHeight(len(e.rows), e.rowHeight), body)
	switch {
	case in.KeyPressed(KeyPageDown):
		e.scrollTo(AxisVertical, e.scrollTop+body*PageFraction, ScrollSmooth)
	case in.KeyPressed(KeyPageUp):
		e.scrollTo(AxisVertical, e.scrollTop-body*PageFraction, ScrollSmooth)
	case in.KeyPressed(KeyHome):
		e.scrollTo(AxisVertical, 0, ScrollSmooth)
	case in.KeyPressed(KeyEnd):
		e.scrollTo(AxisVertical, maxTop, ScrollSmooth)
	case in.KeyPressed(KeyDown):
		e.scrollTo(AxisVertical, e.scrollTop+e.rowHeight, ScrollAuto)
	case in.KeyPressed(KeyUp):
		e.scrollTo(AxisVertical, e.scrollTop-e.rowHeight, ScrollAuto)
	case in.KeyPressed(KeyRight):
		e.scrollTo(AxisHorizontal, e.scrollLeft+WheelStep, ScrollAuto)
	case in.KeyPressed(KeyLeft):
		e.scrollTo(AxisHorizontal, e.scrollLeft-WheelStep, ScrollAuto)
	}
}
