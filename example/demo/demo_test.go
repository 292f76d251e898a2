package demo

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/go-theft-auto/mui"
	"github.com/go-theft-auto/mui/backend/term"
	"github.com/go-theft-auto/mui/metrics"
	"github.com/go-theft-auto/mui/persist"
)

func TestDemoFrames(t *testing.T) {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, tc := range []struct {
		name  string
		ctx   *mui.Context
		rects Rects
		cell  bool
	}{
		{"pixels", mui.NewContext(metrics.Default(), mui.WithLogger(discard)), PixelRects(), false},
		{"cells", mui.NewContext(metrics.NewCells(false), mui.WithStyle(term.Style()), mui.WithLogger(discard)), CellRects(), true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d := New(tc.rects, tc.cell)
			for i := range 3 {
				if err := tc.ctx.Frame(func() { d.Build(tc.ctx) }); err != nil {
					t.Fatalf("frame %d: %v", i, err)
				}
			}

			l := persist.Snapshot(tc.ctx, d.Windows()...)
			if len(l.Windows) != 3 {
				t.Fatalf("snapshot has %d windows, want 3", len(l.Windows))
			}
			if got := l.Windows[TestWindow].Rect; got != (persist.Rect{X: tc.rects.Test.X, Y: tc.rects.Test.Y, W: tc.rects.Test.W, H: tc.rects.Test.H}) {
				t.Errorf("test window rect = %+v", got)
			}
		})
	}
}

func TestDemoLogIsBounded(t *testing.T) {
	d := New(CellRects(), true)
	for i := range maxLogLines + 10 {
		d.Log("line %d", i)
	}
	lines := d.Lines()
	if len(lines) != maxLogLines {
		t.Fatalf("%d lines kept", len(lines))
	}
	if want := fmt.Sprintf("line %d", maxLogLines+9); lines[len(lines)-1] != want {
		t.Errorf("last line = %q, want %q", lines[len(lines)-1], want)
	}
}

func TestDemoBackground(t *testing.T) {
	d := New(PixelRects(), false)
	if got := d.Background(); got != (mui.Color{R: 90, G: 95, B: 100, A: 255}) {
		t.Fatalf("background = %v", got)
	}
}
