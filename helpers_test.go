package mui

import (
	"io"
	"log/slog"
	"testing"
)

// fixedMetrics measures every character as w pixels wide and lines as h.
type fixedMetrics struct{ w, h int }

func (m fixedMetrics) CharWidth(Font, rune) int { return m.w }
func (m fixedMetrics) LineHeight(Font) int      { return m.h }

func newTestContext(opts ...ContextOption) *Context {
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewContext(fixedMetrics{w: 8, h: 10}, append([]ContextOption{WithLogger(quiet)}, opts...)...)
}

func runFrame(t *testing.T, ctx *Context, build func()) {
	t.Helper()
	if err := ctx.Frame(build); err != nil {
		t.Fatalf("frame %d: %v", ctx.FrameCount(), err)
	}
}

// testWindow is the window most interaction tests run inside. Its layout
// body starts at (45,69) and is 290 wide.
var testWindow = Rect{X: 40, Y: 40, W: 300, H: 450}

func inWindow(ctx *Context, body func()) func() {
	return func() {
		ctx.Window("W", testWindow)(body)
	}
}
