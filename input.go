package vtable

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key the table reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyCount
)

// InputState holds pointer and keyboard state for the current frame. It is
// global to the window, which is what lets a thumb drag keep tracking after
// the pointer leaves the scrollbar.
type InputState struct {
	MouseX, MouseY float32

	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp      [MouseButtonCount]bool // True on the frame button was released
	mouseMoved   bool

	MouseWheelX float32
	MouseWheelY float32

	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool

	ModShift bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
		s.mouseUp[i] = false
	}
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	s.mouseMoved = false
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	if x != s.MouseX || y != s.MouseY {
		s.mouseMoved = true
	}
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets a mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down
	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetKey sets a key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	if down && !s.keyDown[key] {
		s.keyPressed[key] = true
	}
	s.keyDown[key] = down
}

// PressKey records a key press that has no matching release event (as
// terminals report keys).
func (s *InputState) PressKey(key Key) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	s.keyPressed[key] = true
}

// SetMouseWheel sets the mouse wheel delta.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX += x
	s.MouseWheelY += y
}

// MousePos returns the mouse position.
func (s *InputState) MousePos() Vec2 {
	return Vec2{X: s.MouseX, Y: s.MouseY}
}

// MouseDown returns true if the button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	return button >= 0 && button < MouseButtonCount && s.mouseDown[button]
}

// MouseClicked returns true if the button was pressed this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	return button >= 0 && button < MouseButtonCount && s.mouseClicked[button]
}

// MouseReleased returns true if the button was released this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	return button >= 0 && button < MouseButtonCount && s.mouseUp[button]
}

// MouseMoved returns true if the pointer moved this frame.
func (s *InputState) MouseMoved() bool {
	return s.mouseMoved
}

// KeyDown returns true if the key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	return key > KeyNone && key < KeyCount && s.keyDown[key]
}

// KeyPressed returns true if the key was pressed this frame.
func (s *InputState) KeyPressed(key Key) bool {
	return key > KeyNone && key < KeyCount && s.keyPressed[key]
}
