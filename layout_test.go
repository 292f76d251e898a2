package mui

import (
	"errors"
	"testing"
)

// withLayout runs fn in a frame with a bare layout over body.
func withLayout(t *testing.T, body Rect, fn func(ctx *Context)) {
	t.Helper()
	ctx := newTestContext()
	runFrame(t, ctx, func() {
		ctx.pushLayout(body, Vec2{})
		fn(ctx)
		ctx.layoutStack.pop()
	})
}

func TestLayoutRowPlacesItemsLeftToRight(t *testing.T) {
	withLayout(t, Rect{W: 200, H: 100}, func(ctx *Context) {
		ctx.LayoutRow(10, 50, 30, -1)
		want := []Rect{
			{X: 0, Y: 0, W: 50, H: 10},
			{X: 54, Y: 0, W: 30, H: 10},
			{X: 88, Y: 0, W: 112, H: 10},
			// Row repeats below.
			{X: 0, Y: 14, W: 50, H: 10},
		}
		for i, w := range want {
			if got := ctx.LayoutNext(); got != w {
				t.Errorf("item %d = %v, want %v", i, got, w)
			}
		}
	})
}

func TestLayoutDefaultsAndFill(t *testing.T) {
	withLayout(t, Rect{X: 10, Y: 20, W: 200, H: 100}, func(ctx *Context) {
		s := ctx.Style()
		def := ctx.LayoutNext()
		want := Rect{X: 10, Y: 20, W: s.Size.X + 2*s.Padding, H: s.Size.Y + 2*s.Padding}
		if def != want {
			t.Errorf("default item = %v, want %v", def, want)
		}

		ctx.LayoutRow(-10, -1)
		fill := ctx.LayoutNext()
		y := def.H + s.Spacing
		want = Rect{X: 10, Y: 20 + y, W: 200, H: 100 - y - 9}
		if fill != want {
			t.Errorf("fill item = %v, want %v", fill, want)
		}
		if ctx.LastRect() != fill {
			t.Errorf("LastRect = %v, want %v", ctx.LastRect(), fill)
		}
	})
}

func TestLayoutWidthWithoutColumns(t *testing.T) {
	withLayout(t, Rect{W: 200, H: 100}, func(ctx *Context) {
		ctx.LayoutRow(12)
		ctx.LayoutWidth(40)
		a, b := ctx.LayoutNext(), ctx.LayoutNext()
		// Without columns only the first item starts the row; the rest
		// continue along it.
		if a != (Rect{W: 40, H: 12}) || b != (Rect{X: 44, W: 40, H: 12}) {
			t.Errorf("got %v and %v", a, b)
		}
	})
}

func TestLayoutSetNext(t *testing.T) {
	withLayout(t, Rect{X: 10, Y: 10, W: 200, H: 100}, func(ctx *Context) {
		ctx.LayoutSetNext(Rect{X: 5, Y: 5, W: 20, H: 20}, true)
		if got := ctx.LayoutNext(); got != (Rect{X: 15, Y: 15, W: 20, H: 20}) {
			t.Errorf("relative = %v", got)
		}
		ctx.LayoutSetNext(Rect{X: 5, Y: 5, W: 20, H: 20}, false)
		if got := ctx.LayoutNext(); got != (Rect{X: 5, Y: 5, W: 20, H: 20}) {
			t.Errorf("absolute = %v", got)
		}
	})
}

func TestLayoutColumnMergesIntoParent(t *testing.T) {
	withLayout(t, Rect{W: 200, H: 100}, func(ctx *Context) {
		ctx.LayoutRow(0, 100, -1)
		ctx.Column()(func() {
			ctx.LayoutRow(10, -1)
			for i := range 3 {
				want := Rect{X: 0, Y: i * 14, W: 100, H: 10}
				if got := ctx.LayoutNext(); got != want {
					t.Errorf("column item %d = %v, want %v", i, got, want)
				}
			}
		})
		if got := ctx.LayoutNext(); got != (Rect{X: 104, Y: 0, W: 96, H: 20}) {
			t.Errorf("item after column = %v", got)
		}
		// The next row starts below the tallest column.
		if got := ctx.LayoutNext(); got.Y != 42 {
			t.Errorf("next row at y=%d, want 42", got.Y)
		}
	})
}

func TestLayoutRowTooManyColumns(t *testing.T) {
	ctx := newTestContext()
	err := ctx.Frame(func() {
		ctx.Window("W", testWindow)(func() {
			ctx.LayoutRow(0, make([]int, maxWidths+1)...)
		})
	})
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	// The aborted frame leaves nothing behind.
	runFrame(t, ctx, inWindow(ctx, func() {
		ctx.LayoutRow(0, -1)
		ctx.Label("ok")
	}))
}
