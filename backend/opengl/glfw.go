package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/vtable"
)

// GLFWInputAdapter adapts GLFW input to vtable.InputState. Mouse state is
// polled per window, not per widget, which lets a thumb drag keep tracking
// after the pointer leaves the table.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *vtable.InputState

	arrow  *glfw.Cursor
	grab   *glfw.Cursor
	cursor vtable.Cursor
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  vtable.NewInputState(),
		arrow:  glfw.CreateStandardCursor(glfw.ArrowCursor),
		grab:   glfw.CreateStandardCursor(glfw.HandCursor),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Begin resets per-frame state. Call it before glfw.PollEvents so the
// callbacks fill the new frame.
func (a *GLFWInputAdapter) Begin() {
	a.input.Reset()
}

// Update finishes collecting input for the frame.
// Call it after glfw.PollEvents.
func (a *GLFWInputAdapter) Update() *vtable.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press
	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *vtable.InputState {
	return a.input
}

// SetCursor shows the cursor a render description asks for.
func (a *GLFWInputAdapter) SetCursor(c vtable.Cursor) {
	if c == a.cursor {
		return
	}
	a.cursor = c
	if c == vtable.CursorGrabbing {
		a.window.SetCursor(a.grab)
	} else {
		a.window.SetCursor(a.arrow)
	}
}

// Destroy releases the cursors.
func (a *GLFWInputAdapter) Destroy() {
	a.window.SetCursor(nil)
	a.arrow.Destroy()
	a.grab.Destroy()
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToTableKey(key)
	if k == vtable.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Repeat:
		a.input.PressKey(k)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToTable(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

func glfwKeyToTableKey(key glfw.Key) vtable.Key {
	switch key {
	case glfw.KeyLeft:
		return vtable.KeyLeft
	case glfw.KeyRight:
		return vtable.KeyRight
	case glfw.KeyUp:
		return vtable.KeyUp
	case glfw.KeyDown:
		return vtable.KeyDown
	case glfw.KeyPageUp:
		return vtable.KeyPageUp
	case glfw.KeyPageDown:
		return vtable.KeyPageDown
	case glfw.KeyHome:
		return vtable.KeyHome
	case glfw.KeyEnd:
		return vtable.KeyEnd
	default:
		return vtable.KeyNone
	}
}

func glfwMouseButtonToTable(button glfw.MouseButton) vtable.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return vtable.MouseButtonLeft
	case glfw.MouseButtonRight:
		return vtable.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return vtable.MouseButtonMiddle
	default:
		return -1
	}
}
