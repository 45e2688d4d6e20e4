package vtable

// DragPhase is the state of a thumb drag gesture.
type DragPhase int

const (
	DragIdle DragPhase = iota
	DragDragging
)

func (p DragPhase) String() string {
	if p == DragDragging {
		return "dragging"
	}
	return "idle"
}

// DragState is the two-state machine behind a thumb drag:
//
//	idle -(begin)-> dragging{pointer, startPointer, startOffset} -(end)-> idle
//
// Only the pointer that started the drag can move or end it, so a second
// pointer going down or up mid-gesture cannot corrupt the state.
type DragState struct {
	Phase        DragPhase
	PointerID    int     // Pointer that owns the gesture
	StartPointer float32 // Pointer position along the axis at drag start
	StartOffset  float32 // Scroll offset at drag start
}

// Begin starts a drag. It returns false if a drag is already in progress.
func (d *DragState) Begin(pointerID int, pointer, scrollOffset float32) bool {
	if d.Phase == DragDragging {
		return false
	}
	*d = DragState{
		Phase:        DragDragging,
		PointerID:    pointerID,
		StartPointer: pointer,
		StartOffset:  scrollOffset,
	}
	return true
}

// Delta returns the pointer travel since the drag started. ok is false when
// idle or when the event belongs to another pointer.
func (d *DragState) Delta(pointerID int, pointer float32) (delta float32, ok bool) {
	if d.Phase != DragDragging || pointerID != d.PointerID {
		return 0, false
	}
	return pointer - d.StartPointer, true
}

// End finishes the drag. It returns false when idle or when the event
// belongs to another pointer.
func (d *DragState) End(pointerID int) bool {
	if d.Phase != DragDragging || pointerID != d.PointerID {
		return false
	}
	d.Reset()
	return true
}

// Reset forces the machine back to idle (teardown).
func (d *DragState) Reset() {
	*d = DragState{}
}

// Active reports whether a drag is in progress.
func (d *DragState) Active() bool {
	return d.Phase == DragDragging
}
