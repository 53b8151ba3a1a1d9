package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/snaplist"
)

// InputAdapter collects GLFW callbacks into a snaplist.InputState.
type InputAdapter struct {
	window *glfw.Window
	input  *snaplist.InputState
}

// NewInputAdapter installs pointer, wheel and key callbacks on window.
func NewInputAdapter(window *glfw.Window) *InputAdapter {
	a := &InputAdapter{
		window: window,
		input:  snaplist.NewInputState(),
	}

	window.SetKeyCallback(a.keyCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)

	return a
}

// Input returns the state gathered since the last EndFrame.
// Call it after glfw.PollEvents.
func (a *InputAdapter) Input() *snaplist.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))
	return a.input
}

// EndFrame clears the per-frame edges once the frame has consumed them.
func (a *InputAdapter) EndFrame() {
	a.input.Reset()
}

func (a *InputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := mapKey(key)
	if k == snaplist.KeyNone {
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

func (a *InputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := mapMouseButton(button)
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

func (a *InputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *InputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

func mapKey(key glfw.Key) snaplist.Key {
	switch key {
	case glfw.KeyUp:
		return snaplist.KeyUp
	case glfw.KeyDown:
		return snaplist.KeyDown
	case glfw.KeyLeft:
		return snaplist.KeyLeft
	case glfw.KeyRight:
		return snaplist.KeyRight
	case glfw.KeyPageUp:
		return snaplist.KeyPageUp
	case glfw.KeyPageDown:
		return snaplist.KeyPageDown
	case glfw.KeyHome:
		return snaplist.KeyHome
	case glfw.KeyEnd:
		return snaplist.KeyEnd
	case glfw.KeySpace:
		return snaplist.KeySpace
	case glfw.KeyEscape:
		return snaplist.KeyEscape
	default:
		return snaplist.KeyNone
	}
}

func mapMouseButton(button glfw.MouseButton) snaplist.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return snaplist.MouseButtonLeft
	case glfw.MouseButtonRight:
		return snaplist.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return snaplist.MouseButtonMiddle
	default:
		return -1
	}
}
