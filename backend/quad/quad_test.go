package quad

import (
	"image"
	"io"
	"log/slog"
	"testing"

	"github.com/go-theft-auto/mui"
	"github.com/go-theft-auto/mui/metrics"
)

func newAtlas(t *testing.T) *Atlas {
	t.Helper()
	a, err := NewAtlas(metrics.Default())
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}
	return a
}

func inked(img *image.Alpha, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.AlphaAt(x, y).A != 0 {
				n++
			}
		}
	}
	return n
}

func TestAtlasContents(t *testing.T) {
	a := newAtlas(t)
	if a.Image.Bounds().Dx() != atlasWidth {
		t.Fatalf("atlas width = %d", a.Image.Bounds().Dx())
	}

	g := a.Glyph('A')
	if g.Src.Empty() || inked(a.Image, g.Src) == 0 {
		t.Fatalf("glyph 'A' has no pixels: %+v", g)
	}
	if g.Advance != 7 {
		t.Errorf("advance = %d, want 7", g.Advance)
	}
	if !g.Src.In(a.Image.Bounds()) {
		t.Errorf("glyph rect %v outside the atlas", g.Src)
	}

	for _, icon := range []mui.Icon{mui.IconClose, mui.IconCheck, mui.IconCollapsed, mui.IconExpanded} {
		r, ok := a.Icon(icon)
		if !ok || r.Dx() != IconSize || inked(a.Image, r) == 0 {
			t.Errorf("icon %d missing or blank: %v", icon, r)
		}
	}

	w := a.White()
	if inked(a.Image, w) != w.Dx()*w.Dy() {
		t.Error("white region is not fully opaque")
	}
}

func TestAtlasGlyphsDoNotOverlap(t *testing.T) {
	a := newAtlas(t)
	var rects []image.Rectangle
	for r := rune('!'); r <= '~'; r++ {
		rects = append(rects, a.Glyph(r).Src)
	}
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			if rects[i].Overlaps(rects[j]) {
				t.Fatalf("glyphs %q and %q overlap", rune('!'+i), rune('!'+j))
			}
		}
	}
}

func TestShelfPackTooWide(t *testing.T) {
	_, _, err := shelfPack([]atlasItem{{size: image.Pt(atlasWidth, 4)}}, atlasWidth)
	if err == nil {
		t.Fatal("expected an error for an item wider than the atlas")
	}
}

func buildFrame(t *testing.T, a *Atlas, build func(ctx *mui.Context)) *Batch {
	t.Helper()
	ctx := mui.NewContext(a.Metrics(), mui.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err := ctx.Frame(func() { build(ctx) }); err != nil {
		t.Fatal(err)
	}
	b := NewBatch(a)
	b.Build(ctx.CommandList())
	return b
}

func TestBatchQuads(t *testing.T) {
	a := newAtlas(t)
	win := mui.Rect{X: 10, Y: 20, W: 200, H: 100}
	b := buildFrame(t, a, func(ctx *mui.Context) {
		ctx.Window("Batch", win)(func() {
			ctx.Label("hi")
		})
	})

	if len(b.Vertices) == 0 || len(b.Vertices)%4 != 0 {
		t.Fatalf("%d vertices", len(b.Vertices))
	}
	if len(b.Indices) != len(b.Vertices)/4*6 {
		t.Fatalf("%d indices for %d vertices", len(b.Indices), len(b.Vertices))
	}

	// The window background comes first.
	bg := mui.DefaultStyle().Colors[mui.ColorWindowBG].Packed()
	v := b.Vertices[:4]
	if v[0].Color != bg {
		t.Errorf("first quad color = %#x, want %#x", v[0].Color, bg)
	}
	if v[0].Pos != [2]float32{10, 20} || v[2].Pos != [2]float32{210, 120} {
		t.Errorf("first quad spans %v..%v", v[0].Pos, v[2].Pos)
	}
	for _, idx := range b.Indices {
		if int(idx) >= len(b.Vertices) {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestBatchSplitsOnClip(t *testing.T) {
	a := newAtlas(t)
	b := buildFrame(t, a, func(ctx *mui.Context) {
		ctx.Window("Clip", mui.Rect{W: 200, H: 100})(func() {
			ctx.LayoutRow(0, 20)
			ctx.Label("a label wider than its cell")
		})
	})

	if len(b.Calls) < 2 {
		t.Fatalf("got %d draw calls, want a separate call for the clipped text", len(b.Calls))
	}
	next := 0
	for i, c := range b.Calls {
		if c.First != next || c.Count == 0 {
			t.Fatalf("call %d = %+v, want it to start at %d and be non-empty", i, c, next)
		}
		next += c.Count
	}
	if next != len(b.Indices) {
		t.Fatalf("calls cover %d indices of %d", next, len(b.Indices))
	}
	clipped := false
	for _, c := range b.Calls {
		if c.Clip.W == 20 {
			clipped = true
		}
	}
	if !clipped {
		t.Fatal("no draw call uses the label's clip rectangle")
	}
}

func TestBatchEmptyFrame(t *testing.T) {
	a := newAtlas(t)
	b := buildFrame(t, a, func(*mui.Context) {})
	if len(b.Calls) != 0 || len(b.Vertices) != 0 {
		t.Fatalf("empty frame produced %d calls, %d vertices", len(b.Calls), len(b.Vertices))
	}
}

func TestDrawCallScissor(t *testing.T) {
	for _, tc := range []struct {
		clip       mui.Rect
		x, y, w, h int
		ok         bool
	}{
		{mui.Rect{X: 10, Y: 20, W: 30, H: 40}, 10, 540, 30, 40, true},
		{mui.Unclipped, 0, 0, 800, 600, true},
		{mui.Rect{X: -10, Y: 590, W: 30, H: 40}, 0, 0, 20, 10, true},
		{mui.Rect{X: 900, Y: 0, W: 10, H: 10}, 0, 0, 0, 0, false},
	} {
		x, y, w, h, ok := DrawCall{Clip: tc.clip}.Scissor(800, 600)
		if ok != tc.ok || x != tc.x || y != tc.y || w != tc.w || h != tc.h {
			t.Errorf("Scissor(%v) = %d,%d %dx%d %v; want %d,%d %dx%d %v",
				tc.clip, x, y, w, h, ok, tc.x, tc.y, tc.w, tc.h, tc.ok)
		}
	}
}
