package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/mui"
)

// scrollStep converts wheel notches to pixels.
const scrollStep = 30

// InputAdapter feeds GLFW window events into a mui.InputState.
type InputAdapter struct {
	window *glfw.Window
	input  *mui.InputState
}

// NewInputAdapter installs callbacks on window that write into input.
func NewInputAdapter(window *glfw.Window, input *mui.InputState) *InputAdapter {
	a := &InputAdapter{window: window, input: input}
	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	return a
}

// Input returns the input state the adapter writes to.
func (a *InputAdapter) Input() *mui.InputState {
	return a.input
}

func (a *InputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	// Paste reaches widgets as typed text.
	if key == glfw.KeyV && mods&glfw.ModControl != 0 && action != glfw.Release {
		a.input.AddText(w.GetClipboardString())
		return
	}
	k, ok := glfwKey(key)
	if !ok {
		return
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *InputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *InputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := glfwMouseButton(button)
	if !ok {
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
	a.input.AddScroll(int(-xoff*scrollStep), int(-yoff*scrollStep))
}

func (a *InputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(int(xpos), int(ypos))
}

func glfwKey(key glfw.Key) (mui.Key, bool) {
	switch key {
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		return mui.KeyShift, true
	case glfw.KeyLeftControl, glfw.KeyRightControl:
		return mui.KeyCtrl, true
	case glfw.KeyLeftAlt, glfw.KeyRightAlt:
		return mui.KeyAlt, true
	case glfw.KeyBackspace:
		return mui.KeyBackspace, true
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return mui.KeyReturn, true
	}
	return 0, false
}

func glfwMouseButton(button glfw.MouseButton) (mui.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return mui.MouseLeft, true
	case glfw.MouseButtonRight:
		return mui.MouseRight, true
	case glfw.MouseButtonMiddle:
		return mui.MouseMiddle, true
	}
	return 0, false
}
