// Package persist saves and restores the position, scroll offset and open
// state of named windows as TOML, so a layout survives restarts.
//
//	layout := persist.Snapshot(ctx, "Demo", "Log")
//	if err := persist.Save("layout.toml", layout); err != nil { ... }
//
//	layout, err := persist.Load("layout.toml")
//	persist.Apply(ctx, layout)
//
// Snapshot and Apply resolve names in the root ID scope, which is where
// top-level windows live. Call them between frames.
package persist

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/go-theft-auto/mui"
)

// Rect is the on-disk form of mui.Rect.
type Rect struct {
	X int `toml:"x"`
	Y int `toml:"y"`
	W int `toml:"w"`
	H int `toml:"h"`
}

// Window is the saved state of one window.
type Window struct {
	Rect    Rect `toml:"rect"`
	ScrollX int  `toml:"scroll_x"`
	ScrollY int  `toml:"scroll_y"`
	Open    bool `toml:"open"`
}

// Layout maps window titles to their saved state.
type Layout struct {
	Windows map[string]Window `toml:"windows"`
}

// Names returns the saved window titles in sorted order.
func (l Layout) Names() []string {
	names := make([]string, 0, len(l.Windows))
	for name := range l.Windows {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot records the state of the named windows. Windows that have never
// been shown are left out. Snapshot does not create, open or raise windows.
func Snapshot(ctx *mui.Context, names ...string) Layout {
	l := Layout{Windows: make(map[string]Window, len(names))}
	for _, name := range names {
		c, ok := ctx.LookupContainer(name)
		if !ok {
			continue
		}
		r := c.Rect()
		if r.W == 0 && r.H == 0 {
			continue
		}
		s := c.Scroll()
		l.Windows[name] = Window{
			Rect:    Rect{X: r.X, Y: r.Y, W: r.W, H: r.H},
			ScrollX: s.X,
			ScrollY: s.Y,
			Open:    c.Open(),
		}
	}
	return l
}

// Apply restores every window in l. The rectangle passed to BeginWindow
// is ignored for restored windows from then on.
func Apply(ctx *mui.Context, l Layout) {
	for _, name := range l.Names() {
		w := l.Windows[name]
		c := ctx.Container(name)
		c.SetRect(mui.Rect{X: w.Rect.X, Y: w.Rect.Y, W: w.Rect.W, H: w.Rect.H})
		c.SetScroll(mui.Vec2{X: w.ScrollX, Y: w.ScrollY})
		c.SetOpen(w.Open)
	}
}

// Marshal encodes l as TOML.
func Marshal(l Layout) ([]byte, error) {
	data, err := toml.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to encode layout: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a TOML layout.
func Unmarshal(data []byte) (Layout, error) {
	var l Layout
	if err := toml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("failed to parse layout: %w", err)
	}
	if l.Windows == nil {
		l.Windows = make(map[string]Window)
	}
	return l, nil
}

// Save writes l to path.
func Save(path string, l Layout) error {
	data, err := Marshal(l)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Load reads a layout from path. A missing file yields an empty layout.
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Layout{Windows: make(map[string]Window)}, nil
		}
		return Layout{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	l, err := Unmarshal(data)
	if err != nil {
		return Layout{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}
