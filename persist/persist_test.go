package persist

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-theft-auto/mui"
)

type monoMetrics struct{}

func (monoMetrics) CharWidth(mui.Font, rune) int { return 7 }
func (monoMetrics) LineHeight(mui.Font) int      { return 13 }

func newContext() *mui.Context {
	return mui.NewContext(monoMetrics{}, mui.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

var initial = mui.Rect{X: 40, Y: 40, W: 300, H: 200}

func showDemo(t *testing.T, ctx *mui.Context) (rect mui.Rect, shown bool) {
	t.Helper()
	err := ctx.Frame(func() {
		ctx.Window("Demo", initial)(func() {
			rect = ctx.CurrentContainer().Rect()
			shown = true
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	return rect, shown
}

func TestSnapshotApplyRoundTrip(t *testing.T) {
	ctx := newContext()
	showDemo(t, ctx)
	moved := mui.Rect{X: 120, Y: 80, W: 320, H: 240}
	ctx.Container("Demo").SetRect(moved)

	path := filepath.Join(t.TempDir(), "layout.toml")
	if err := Save(path, Snapshot(ctx, "Demo", "Never shown")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if names := l.Names(); len(names) != 1 || names[0] != "Demo" {
		t.Fatalf("saved windows = %v, want [Demo]", names)
	}

	restored := newContext()
	Apply(restored, l)
	got, shown := showDemo(t, restored)
	if !shown {
		t.Fatal("restored window is not open")
	}
	if got != moved {
		t.Fatalf("restored rect = %v, want %v", got, moved)
	}
}

func TestApplyClosedWindow(t *testing.T) {
	ctx := newContext()
	Apply(ctx, Layout{Windows: map[string]Window{
		"Demo": {Rect: Rect{X: 1, Y: 2, W: 300, H: 200}, Open: false},
	}})
	if _, shown := showDemo(t, ctx); shown {
		t.Fatal("window saved as closed was shown")
	}
}

func TestApplyBeforeFirstFrame(t *testing.T) {
	ctx := newContext()
	want := mui.Rect{X: 10, Y: 20, W: 300, H: 200}
	Apply(ctx, Layout{Windows: map[string]Window{
		"Demo": {Rect: Rect{X: want.X, Y: want.Y, W: want.W, H: want.H}, Open: true},
	}})
	got, shown := showDemo(t, ctx)
	if !shown || got != want {
		t.Fatalf("window = %v (shown %v), want %v", got, shown, want)
	}
}

func TestSnapshotLeavesClosedWindowClosed(t *testing.T) {
	ctx := newContext()
	shown := false
	build := func() {
		shown = false
		ctx.Window("Hidden", initial, mui.Closed())(func() { shown = true })
	}
	if err := ctx.Frame(build); err != nil {
		t.Fatal(err)
	}

	if l := Snapshot(ctx, "Hidden"); len(l.Windows) != 0 {
		t.Fatalf("snapshot recorded a window that was never created: %v", l.Names())
	}
	if err := ctx.Frame(build); err != nil {
		t.Fatal(err)
	}
	if shown {
		t.Fatal("taking a snapshot opened a closed window")
	}
}

func TestMarshalFormat(t *testing.T) {
	data, err := Marshal(Layout{Windows: map[string]Window{
		"Log": {Rect: Rect{X: 350, Y: 40, W: 300, H: 200}, ScrollY: 12, Open: true},
	}})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"[windows.Log", "scroll_y = 12", "open = true", "x = 350"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("encoded layout lacks %q:\n%s", want, data)
		}
	}
}

func TestUnmarshalErrors(t *testing.T) {
	if _, err := Unmarshal([]byte("windows = 3")); err == nil {
		t.Fatal("expected an error for a malformed layout")
	}
	l, err := Unmarshal(nil)
	if err != nil || l.Windows == nil {
		t.Fatalf("empty input: %v, %v", l, err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Windows) != 0 {
		t.Fatalf("missing file produced %d windows", len(l.Windows))
	}
}
