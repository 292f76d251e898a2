package term

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-theft-auto/mui"
	"github.com/go-theft-auto/mui/metrics"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

var white = mui.Color{R: 255, G: 255, B: 255, A: 255}

// plainRenderer renders without escape sequences.
func plainRenderer(width, height int) *Renderer {
	return NewRenderer(width, height, WithLipgloss(lipgloss.NewRenderer(io.Discard)))
}

func renderFrame(t *testing.T, r *Renderer, build func(ctx *mui.Context)) {
	t.Helper()
	ui := mui.New(r, metrics.NewCells(false), mui.WithStyle(Style()), mui.WithLogger(discard))
	if err := ui.Frame(build); err != nil {
		t.Fatal(err)
	}
}

func TestRendererDrawsWindow(t *testing.T) {
	r := plainRenderer(30, 8)
	renderFrame(t, r, func(ctx *mui.Context) {
		ctx.Window("T", mui.Rect{W: 20, H: 6})(func() {
			ctx.Label("hi")
		})
	})

	c := r.Canvas()
	lines := c.Lines()
	if want := "T" + strings.Repeat(" ", 18) + "×"; !strings.HasPrefix(lines[0], want) {
		t.Errorf("title row = %q, want prefix %q", lines[0], want)
	}
	if !strings.HasPrefix(lines[1], "hi ") {
		t.Errorf("body row = %q", lines[1])
	}

	style := Style()
	if got := c.At(0, 0).BG; got != style.Colors[mui.ColorTitleBG] {
		t.Errorf("title background = %v", got)
	}
	if got := c.At(5, 3).BG; got != style.Colors[mui.ColorWindowBG] {
		t.Errorf("window background = %v", got)
	}
	if got := c.At(0, 1).FG; got != style.Colors[mui.ColorText] {
		t.Errorf("label color = %v", got)
	}
	if got := c.At(25, 7).BG; got != (mui.Color{R: 20, G: 20, B: 20, A: 255}) {
		t.Errorf("screen background = %v", got)
	}
}

func TestRendererClipsText(t *testing.T) {
	r := plainRenderer(12, 4)
	renderFrame(t, r, func(ctx *mui.Context) {
		ctx.Window("C", mui.Rect{W: 12, H: 4}, mui.NoClose())(func() {
			ctx.LayoutRow(0, 4)
			ctx.Label("abcdefghijkl")
		})
	})
	if got := r.Canvas().Lines()[1]; !strings.HasPrefix(got, "abcd ") {
		t.Fatalf("clipped label row = %q", got)
	}
}

func TestRendererWideRunes(t *testing.T) {
	r := plainRenderer(20, 4)
	renderFrame(t, r, func(ctx *mui.Context) {
		ctx.Window("W", mui.Rect{W: 20, H: 4})(func() {
			ctx.Label("世界ab")
		})
	})
	c := r.Canvas()
	if got := c.Lines()[1]; !strings.HasPrefix(got, "世界ab") {
		t.Fatalf("row = %q", got)
	}
	if c.At(1, 1).Rune != 0 || c.At(3, 1).Rune != 0 {
		t.Error("wide runes should leave placeholder cells")
	}
}

func TestCanvasOverwriteSplitsWideRune(t *testing.T) {
	bg := mui.Color{A: 255}
	c := NewCanvas(6, 1, bg, metrics.NewCells(false))

	c.put(0, 0, '世', 2, white)
	c.put(1, 0, 'x', 1, white)
	if got := c.Lines()[0]; got != " x    " {
		t.Errorf("after overwriting the right half: %q", got)
	}

	c.put(2, 0, '界', 2, white)
	c.fill(mui.Rect{X: 3, Y: 0, W: 1, H: 1}, mui.Color{R: 255, A: 255})
	if got := c.Lines()[0]; got != " x    " {
		t.Errorf("after filling the right half: %q", got)
	}
	if c.At(3, 0).BG.R != 255 {
		t.Error("fill did not color the cell")
	}
}

func TestCanvasBlendsTranslucentFill(t *testing.T) {
	c := NewCanvas(2, 1, mui.Color{A: 255}, metrics.NewCells(false))
	c.fill(mui.Rect{W: 1, H: 1}, mui.Color{R: 255, A: 0})
	if c.At(0, 0).BG != (mui.Color{A: 255}) {
		t.Error("transparent fill changed the cell")
	}
	c.fill(mui.Rect{W: 1, H: 1}, mui.Color{R: 255, G: 255, B: 255, A: 51})
	if got := c.At(0, 0).BG; got != (mui.Color{R: 51, G: 51, B: 51, A: 255}) {
		t.Errorf("blended = %v", got)
	}
}

func TestViewMatchesCanvas(t *testing.T) {
	r := plainRenderer(16, 5)
	renderFrame(t, r, func(ctx *mui.Context) {
		ctx.Window("V", mui.Rect{X: 2, Y: 1, W: 12, H: 3})(func() {
			ctx.Label("view")
		})
	})
	view := r.View()
	if want := strings.Join(r.Canvas().Lines(), "\n"); view != want {
		t.Fatalf("view = %q, want %q", view, want)
	}
	for i, line := range strings.Split(view, "\n") {
		if w := lipgloss.Width(line); w != 16 {
			t.Errorf("line %d is %d cells wide", i, w)
		}
	}
}

func TestRendererResize(t *testing.T) {
	r := plainRenderer(4, 2)
	r.Resize(10, 3)
	if w, h := r.Canvas().Size(); w != 10 || h != 3 {
		t.Fatalf("size = %dx%d", w, h)
	}
	if got := len(r.Canvas().Lines()); got != 3 {
		t.Fatalf("%d lines", got)
	}
}

func TestFeedMouse(t *testing.T) {
	in := mui.NewInputState()

	Feed(in, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if in.MousePos() != (mui.Vec2{X: 3, Y: 4}) || !in.MouseDown(mui.MouseLeft) || !in.MousePressed(mui.MouseLeft) {
		t.Fatal("left press not recorded")
	}

	Feed(in, tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if in.MousePos() != (mui.Vec2{X: 5, Y: 4}) || !in.MouseDown(mui.MouseLeft) {
		t.Fatal("drag lost the button")
	}

	Feed(in, tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
	if in.MouseDown(mui.MouseLeft) {
		t.Fatal("anonymous release left the button down")
	}

	Feed(in, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	Feed(in, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if in.ScrollDelta() != (mui.Vec2{Y: 2 * scrollStep}) {
		t.Fatalf("scroll = %v", in.ScrollDelta())
	}

	Feed(in, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight, Shift: true})
	if !in.MouseDown(mui.MouseRight) || !in.KeyDown(mui.KeyShift) {
		t.Fatal("shift+right press not recorded")
	}
}

func TestFeedKeys(t *testing.T) {
	in := mui.NewInputState()

	if !Feed(in, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hé")}) {
		t.Fatal("runes not handled")
	}
	Feed(in, tea.KeyMsg{Type: tea.KeySpace})
	if in.Text() != "hé " {
		t.Fatalf("text = %q", in.Text())
	}

	Feed(in, tea.KeyMsg{Type: tea.KeyBackspace})
	Feed(in, tea.KeyMsg{Type: tea.KeyEnter})
	if !in.KeyPressed(mui.KeyBackspace) || !in.KeyDown(mui.KeyReturn) {
		t.Fatal("editing keys not pressed")
	}
	ReleaseKeys(in)
	if in.KeyDown(mui.KeyBackspace) || in.KeyDown(mui.KeyReturn) {
		t.Fatal("keys still down after ReleaseKeys")
	}

	if Feed(in, tea.KeyMsg{Type: tea.KeyEsc}) {
		t.Error("escape should not be handled")
	}
	if Feed(in, tea.WindowSizeMsg{Width: 1, Height: 1}) {
		t.Error("window size is not input")
	}
}

func TestModelClickAndQuit(t *testing.T) {
	clicks := 0
	m := NewModel(plainRenderer(30, 10), func(ctx *mui.Context) {
		ctx.Window("B", mui.Rect{W: 30, H: 8})(func() {
			ctx.LayoutRow(0, -1)
			if ctx.Button("Go").Submitted() {
				clicks++
			}
		})
	}, mui.WithStyle(Style()), mui.WithLogger(discard))
	m.SetLogger(discard)

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	if w, h := m.renderer.Canvas().Size(); w != 40 || h != 12 {
		t.Fatalf("canvas = %dx%d after resize", w, h)
	}

	for _, msg := range []tea.Msg{
		tea.MouseMsg{X: 5, Y: 1, Action: tea.MouseActionMotion},
		tea.MouseMsg{X: 5, Y: 1, Action: tea.MouseActionMotion},
		tea.MouseMsg{X: 5, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		tea.MouseMsg{X: 5, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	} {
		if _, cmd := m.Update(msg); cmd != nil {
			t.Fatalf("unexpected command for %T", msg)
		}
		if m.Err() != nil {
			t.Fatal(m.Err())
		}
	}
	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}
	if !strings.Contains(m.View(), "Go") {
		t.Error("view does not show the button")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c did not quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c did not return tea.Quit")
	}
}

func TestModelKeepsLastGoodFrame(t *testing.T) {
	broken := false
	m := NewModel(plainRenderer(20, 5), func(ctx *mui.Context) {
		if broken {
			ctx.PushID("leak")
		}
		ctx.Window("K", mui.Rect{W: 20, H: 5})(func() {
			ctx.Label("kept")
		})
	}, mui.WithStyle(Style()), mui.WithLogger(discard))
	m.SetLogger(discard)

	m.Frame()
	before := m.View()
	broken = true
	m.Frame()
	if m.Err() == nil {
		t.Fatal("leaked id scope not reported")
	}
	if m.View() != before {
		t.Error("discarded frame replaced the view")
	}
}
