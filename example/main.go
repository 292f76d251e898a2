// Example runs the widget demo in an OpenGL window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Window positions are saved to -layout on exit and restored on start.
// A style file written by the style editor can be loaded with -style.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/mui"
	"github.com/go-theft-auto/mui/backend/opengl"
	"github.com/go-theft-auto/mui/backend/quad"
	"github.com/go-theft-auto/mui/example/demo"
	"github.com/go-theft-auto/mui/metrics"
	"github.com/go-theft-auto/mui/persist"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "mui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	layoutPath := flag.String("layout", "", "window layout file (TOML), loaded on start and saved on exit")
	stylePath := flag.String("style", "", "style file (TOML)")
	saveStyle := flag.String("save-style", "", "write the style to this file on exit")
	fontSize := flag.Float64("font-size", 0, "render with Go Regular at this size instead of the 7x13 bitmap font")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	mui.SetVerbose(*verbose)
	if err := run(*layoutPath, *stylePath, *saveStyle, *fontSize); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(layoutPath, stylePath, saveStyle string, fontSize float64) error {
	face := metrics.Default()
	if fontSize > 0 {
		var err error
		if face, err = metrics.GoRegular(fontSize); err != nil {
			return fmt.Errorf("load font: %w", err)
		}
	}

	style := mui.DefaultStyle()
	if stylePath != "" {
		var err error
		if style, err = mui.LoadStyle(stylePath); err != nil {
			return err
		}
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	atlas, err := quad.NewAtlas(face)
	if err != nil {
		return fmt.Errorf("font atlas: %w", err)
	}
	renderer, err := opengl.NewRenderer(windowWidth, windowHeight, atlas)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	ui := mui.New(renderer, atlas.Metrics(), mui.WithStyle(style))
	opengl.NewInputAdapter(window, ui.Input())

	d := demo.New(demo.PixelRects(), false)
	if layoutPath != "" {
		layout, err := persist.Load(layoutPath)
		if err != nil {
			return err
		}
		persist.Apply(ui.Context(), layout)
	}

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		ui.Resize(w, h)
	})

	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		bg := d.Background()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := ui.Frame(d.Build); err != nil {
			slog.Warn("frame not rendered", "err", err)
		}

		window.SwapBuffers()
	}

	if layoutPath != "" {
		if err := persist.Save(layoutPath, persist.Snapshot(ui.Context(), d.Windows()...)); err != nil {
			return err
		}
	}
	if saveStyle != "" {
		return mui.SaveStyle(saveStyle, ui.Context().Style())
	}
	return nil
}
