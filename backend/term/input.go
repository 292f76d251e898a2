package term

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-theft-auto/mui"
)

// scrollStep is how many cells one wheel notch scrolls.
const scrollStep = 3

// Feed applies a Bubble Tea input message to in and reports whether msg
// was one. Terminals report no key releases, so Backspace and Return stay
// down until ReleaseKeys is called after the frame that saw them.
func Feed(in *mui.InputState, msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		feedMouse(in, msg)
		return true
	case tea.KeyMsg:
		return feedKey(in, msg)
	}
	return false
}

func feedMouse(in *mui.InputState, msg tea.MouseMsg) {
	in.SetMousePos(msg.X, msg.Y)
	in.SetKey(mui.KeyShift, msg.Shift)
	in.SetKey(mui.KeyCtrl, msg.Ctrl)
	in.SetKey(mui.KeyAlt, msg.Alt)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			in.AddScroll(0, -scrollStep)
		case tea.MouseButtonWheelDown:
			in.AddScroll(0, scrollStep)
		case tea.MouseButtonWheelLeft:
			in.AddScroll(-scrollStep, 0)
		case tea.MouseButtonWheelRight:
			in.AddScroll(scrollStep, 0)
		default:
			if b, ok := teaMouseButton(msg.Button); ok {
				in.SetMouseButton(b, true)
			}
		}
	case tea.MouseActionRelease:
		// Some terminals do not say which button was released.
		b, ok := teaMouseButton(msg.Button)
		if !ok {
			b = mui.MouseLeft | mui.MouseRight | mui.MouseMiddle
		}
		in.SetMouseButton(b, false)
	}
}

func teaMouseButton(b tea.MouseButton) (mui.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return mui.MouseLeft, true
	case tea.MouseButtonRight:
		return mui.MouseRight, true
	case tea.MouseButtonMiddle:
		return mui.MouseMiddle, true
	}
	return 0, false
}

func feedKey(in *mui.InputState, msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes:
		in.AddText(string(msg.Runes))
	case tea.KeySpace:
		in.AddText(" ")
	case tea.KeyBackspace:
		in.SetKey(mui.KeyBackspace, true)
	case tea.KeyEnter:
		in.SetKey(mui.KeyReturn, true)
	default:
		return false
	}
	return true
}

// ReleaseKeys lifts the keys Feed pressed on behalf of the terminal.
func ReleaseKeys(in *mui.InputState) {
	in.SetKey(mui.KeyBackspace, false)
	in.SetKey(mui.KeyReturn, false)
}
