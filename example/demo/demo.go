// Package demo is the widget showcase shared by the OpenGL and terminal
// examples: a window exercising every widget, a log window with an input
// line, and a live style editor.
package demo

import (
	"fmt"
	"strings"

	"github.com/go-theft-auto/mui"
)

// Window titles, also used as persist.Snapshot names.
const (
	TestWindow  = "Demo Window"
	LogWindow   = "Log Window"
	StyleWindow = "Style Editor"
)

const maxLogLines = 64

// Rects places the demo windows the first time they are shown.
type Rects struct {
	Test, Log, Style mui.Rect
}

// PixelRects suits an 800x600 window.
func PixelRects() Rects {
	return Rects{
		Test:  mui.Rect{X: 40, Y: 40, W: 300, H: 450},
		Log:   mui.Rect{X: 350, Y: 40, W: 300, H: 200},
		Style: mui.Rect{X: 350, Y: 250, W: 300, H: 240},
	}
}

// CellRects suits an 80x24 terminal.
func CellRects() Rects {
	return Rects{
		Test:  mui.Rect{X: 1, Y: 1, W: 38, H: 22},
		Log:   mui.Rect{X: 41, Y: 1, W: 38, H: 10},
		Style: mui.Rect{X: 41, Y: 12, W: 38, H: 11},
	}
}

// Demo holds the state the widgets are bound to.
type Demo struct {
	rects Rects
	cell  bool

	checks   [3]bool
	bg       [3]float64
	number   float64
	name     string
	input    string
	lines    []string
	scrolled bool

	channels [mui.ColorMax][4]float64
}

// New creates the demo. cell selects layouts sized for a terminal.
func New(rects Rects, cell bool) *Demo {
	return &Demo{
		rects:  rects,
		cell:   cell,
		checks: [3]bool{true, false, true},
		bg:     [3]float64{90, 95, 100},
		number: 1,
		name:   "mui",
	}
}

// Windows lists the titles of the demo windows.
func (d *Demo) Windows() []string {
	return []string{TestWindow, LogWindow, StyleWindow}
}

// Background returns the clear color chosen in the demo window.
func (d *Demo) Background() mui.Color {
	return mui.Color{R: uint8(d.bg[0]), G: uint8(d.bg[1]), B: uint8(d.bg[2]), A: 255}
}

// Log appends a line to the log window.
func (d *Demo) Log(format string, args ...any) {
	d.lines = append(d.lines, fmt.Sprintf(format, args...))
	if n := len(d.lines) - maxLogLines; n > 0 {
		d.lines = d.lines[n:]
	}
	d.scrolled = false
}

// Lines returns the log contents.
func (d *Demo) Lines() []string {
	return d.lines
}

// Build draws one frame of the demo.
func (d *Demo) Build(ctx *mui.Context) {
	d.testWindow(ctx)
	d.logWindow(ctx)
	d.styleWindow(ctx)
}

// w scales a pixel width to the active units.
func (d *Demo) w(px int) int {
	if !d.cell {
		return px
	}
	switch c := px / 8; {
	case c == 0 && px < 0:
		return -1
	case c == 0:
		return 1
	default:
		return c
	}
}

func (d *Demo) testWindow(ctx *mui.Context) {
	ctx.Window(TestWindow, d.rects.Test)(func() {
		c := ctx.CurrentContainer()

		if ctx.Header("Window Info").Active() {
			ctx.LayoutRow(0, d.w(54), -1)
			r := c.Rect()
			ctx.Label("Position:")
			ctx.Label(fmt.Sprintf("%d, %d", r.X, r.Y))
			ctx.Label("Size:")
			ctx.Label(fmt.Sprintf("%d, %d", r.W, r.H))
		}

		if ctx.Header("Test Buttons", mui.Expanded()).Active() {
			ctx.LayoutRow(0, d.w(86), d.w(-110), -1)
			ctx.Label("Test buttons 1:")
			if ctx.Button("Button 1").Submitted() {
				d.Log("Pressed button 1")
			}
			if ctx.Button("Button 2").Submitted() {
				d.Log("Pressed button 2")
			}
			ctx.Label("Test buttons 2:")
			if ctx.Button("Button 3").Submitted() {
				d.Log("Pressed button 3")
			}
			if ctx.Button("Popup").Submitted() {
				ctx.OpenPopup("Test Popup")
			}
			ctx.Popup("Test Popup")(func() {
				if ctx.Button("Hello").Submitted() {
					d.Log("Hello")
				}
				if ctx.Button("World").Submitted() {
					d.Log("World")
				}
			})
		}

		if ctx.Header("Tree and Text", mui.Expanded()).Active() {
			ctx.LayoutRow(0, d.w(140), -1)
			ctx.Column()(func() {
				ctx.TreeNode("Test 1")(func() {
					ctx.TreeNode("Test 1a")(func() {
						ctx.Label("Hello")
						ctx.Label("world")
					})
					ctx.TreeNode("Test 1b")(func() {
						if ctx.Button("Button 1").Submitted() {
							d.Log("Pressed tree button 1")
						}
					})
				})
				ctx.TreeNode("Test 2")(func() {
					ctx.LayoutRow(0, d.w(54), d.w(54))
					for i, label := range []string{"Button 3", "Button 4"} {
						if ctx.Button(label).Submitted() {
							d.Log("Pressed tree button %d", i+3)
						}
					}
				})
				ctx.TreeNode("Test 3")(func() {
					ctx.Checkbox("Checkbox 1", &d.checks[0])
					ctx.Checkbox("Checkbox 2", &d.checks[1])
					ctx.Checkbox("Checkbox 3", &d.checks[2])
				})
			})
			ctx.Column()(func() {
				ctx.LayoutRow(0, -1)
				ctx.Text("Lorem ipsum dolor sit amet, consectetur adipiscing elit. " +
					"Maecenas lacinia, sem eu lacinia molestie, mi risus faucibus ipsum, " +
					"eu varius magna felis a nulla.")
			})
		}

		if ctx.Header("Background Color", mui.Expanded()).Active() {
			ctx.LayoutRow(0, d.w(46), -1)
			for i, name := range []string{"Red:", "Green:", "Blue:"} {
				ctx.Label(name)
				ctx.Slider(&d.bg[i], 0, 255, mui.WithStep(1), mui.WithPrecision(0))
			}
			ctx.LayoutRow(0, d.w(46), -1)
			ctx.Label("Step:")
			ctx.Number(&d.number, 0.5)
			ctx.Label("Name:")
			if ctx.Textbox(&d.name, mui.MaxLength(32)).Changed() && d.name == "" {
				d.Log("Name cleared")
			}
			if err := ctx.EditErr(); err != nil {
				d.Log("%v", err)
			}
		}
	})
}

func (d *Demo) logWindow(ctx *mui.Context) {
	ctx.Window(LogWindow, d.rects.Log)(func() {
		ctx.LayoutRow(-d.w(28), -1)
		ctx.Panel("Log Output")(func() {
			panel := ctx.CurrentContainer()
			ctx.LayoutRow(0, -1)
			ctx.Text(strings.Join(d.lines, "\n"))
			if !d.scrolled {
				panel.SetScroll(mui.Vec2{X: panel.Scroll().X, Y: panel.ContentSize().Y})
				d.scrolled = true
			}
		})

		submit := false
		ctx.LayoutRow(0, d.w(-70), -1)
		if ctx.Textbox(&d.input).Submitted() {
			ctx.SetFocus(ctx.LastID())
			submit = true
		}
		if ctx.Button("Submit").Submitted() {
			submit = true
		}
		if submit && d.input != "" {
			d.Log("%s", d.input)
			d.input = ""
		}
	})
}

func (d *Demo) styleWindow(ctx *mui.Context) {
	ctx.Window(StyleWindow, d.rects.Style)(func() {
		style := ctx.StyleRef()
		sw := max(ctx.CurrentContainer().Body().W*14/100, 1)
		ctx.LayoutRow(0, d.w(80), sw, sw, sw, sw, -1)
		for id := range mui.ColorMax {
			col := &style.Colors[id]
			ch := &d.channels[id]
			*ch = [4]float64{float64(col.R), float64(col.G), float64(col.B), float64(col.A)}

			ctx.Label(id.String())
			for i := range ch {
				ctx.Slider(&ch[i], 0, 255, mui.WithStep(1), mui.WithPrecision(0))
			}
			*col = mui.Color{R: uint8(ch[0]), G: uint8(ch[1]), B: uint8(ch[2]), A: uint8(ch[3])}
			ctx.DrawRect(ctx.LayoutNext(), *col)
		}
	})
}
