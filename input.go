package mui

import "unicode/utf8"

// MouseButton is a set of mouse buttons.
type MouseButton uint8

const (
	MouseLeft MouseButton = 1 << iota
	MouseRight
	MouseMiddle
)

// Key is a set of the keys the core reacts to. Everything else reaches
// widgets as text through AddText.
type Key uint8

const (
	KeyShift Key = 1 << iota
	KeyCtrl
	KeyAlt
	KeyBackspace
	KeyReturn
)

// InputState accumulates platform events between frames. Feed it from the
// platform layer before Context.Begin; per-frame parts (presses, scroll,
// text) are cleared by Context.End.
type InputState struct {
	mousePos     Vec2
	lastMousePos Vec2
	mouseDelta   Vec2
	scrollDelta  Vec2

	mouseDown    MouseButton
	mousePressed MouseButton

	keyDown    Key
	keyPressed Key

	text []byte
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{text: make([]byte, 0, 32)}
}

// SetMousePos records the pointer position.
func (s *InputState) SetMousePos(x, y int) {
	s.mousePos = Vec2{X: x, Y: y}
}

// SetMouseButton records a button going down or up. A button going down
// counts as pressed for the next frame even if it is released before then.
func (s *InputState) SetMouseButton(btn MouseButton, down bool) {
	if down {
		s.mouseDown |= btn
		s.mousePressed |= btn
	} else {
		s.mouseDown &^= btn
	}
}

// AddScroll accumulates wheel movement until the end of the frame.
func (s *InputState) AddScroll(dx, dy int) {
	s.scrollDelta.X += dx
	s.scrollDelta.Y += dy
}

// SetKey records a key going down or up.
func (s *InputState) SetKey(k Key, down bool) {
	if down {
		s.keyDown |= k
		s.keyPressed |= k
	} else {
		s.keyDown &^= k
	}
}

// AddText appends typed UTF-8 text.
func (s *InputState) AddText(text string) {
	s.text = append(s.text, text...)
}

// AddInputChar appends one typed character.
func (s *InputState) AddInputChar(r rune) {
	s.text = utf8.AppendRune(s.text, r)
}

// MousePos returns the pointer position.
func (s *InputState) MousePos() Vec2 { return s.mousePos }

// MouseDelta returns how far the pointer moved since the previous frame.
func (s *InputState) MouseDelta() Vec2 { return s.mouseDelta }

// ScrollDelta returns the wheel movement accumulated this frame.
func (s *InputState) ScrollDelta() Vec2 { return s.scrollDelta }

// MouseDown reports whether any of btn is held.
func (s *InputState) MouseDown(btn MouseButton) bool { return s.mouseDown&btn != 0 }

// MousePressed reports whether any of btn went down this frame.
func (s *InputState) MousePressed(btn MouseButton) bool { return s.mousePressed&btn != 0 }

// KeyDown reports whether any of k is held.
func (s *InputState) KeyDown(k Key) bool { return s.keyDown&k != 0 }

// KeyPressed reports whether any of k went down this frame.
func (s *InputState) KeyPressed(k Key) bool { return s.keyPressed&k != 0 }

// Text returns the text typed this frame.
func (s *InputState) Text() string { return string(s.text) }

func (s *InputState) beginFrame() {
	s.mouseDelta = s.mousePos.Sub(s.lastMousePos)
}

func (s *InputState) endFrame() {
	s.keyPressed = 0
	s.mousePressed = 0
	s.scrollDelta = Vec2{}
	s.text = s.text[:0]
	s.lastMousePos = s.mousePos
}
