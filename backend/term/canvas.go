// Package term draws mui frames into a grid of terminal cells and feeds
// Bubble Tea messages back in as input. One mui unit is one cell: use
// metrics.Cells as the context's FontMetrics and Style() as its style.
package term

import (
	"strings"
	"unicode/utf8"

	"github.com/go-theft-auto/mui"
	"github.com/go-theft-auto/mui/metrics"
)

// Cell is one terminal character cell. Rune is 0 in the cell to the right
// of a double-width character.
type Cell struct {
	Rune rune
	FG   mui.Color
	BG   mui.Color
}

// Canvas is a width x height grid of cells that a command list is
// replayed into.
type Canvas struct {
	width, height int
	cells         []Cell
	clip          mui.Rect
	blank         Cell
	metrics       mui.FontMetrics
}

// NewCanvas creates a canvas filled with blank cells of bg. Rune widths
// come from m.
func NewCanvas(width, height int, bg mui.Color, m metrics.Cells) *Canvas {
	c := &Canvas{
		blank:   Cell{Rune: ' ', FG: bg, BG: bg},
		metrics: m,
	}
	c.Resize(width, height)
	return c
}

// Resize reallocates the grid. The contents are cleared.
func (c *Canvas) Resize(width, height int) {
	c.width, c.height = max(width, 0), max(height, 0)
	c.cells = make([]Cell, c.width*c.height)
	c.Clear()
}

// Size returns the grid dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Clear fills every cell with the background.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = c.blank
	}
	c.clip = mui.Unclipped
}

// At returns the cell at x, y. Out of range positions return a blank cell.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return c.blank
	}
	return c.cells[y*c.width+x]
}

// Draw replays a finished frame onto a cleared canvas.
func (c *Canvas) Draw(list *mui.CommandList) {
	c.Clear()
	for cmd := range list.All() {
		switch cmd.Kind {
		case mui.CommandClip:
			c.clip = cmd.Rect
		case mui.CommandRect:
			c.fill(cmd.Rect, cmd.Color)
		case mui.CommandText:
			c.text(cmd.Font, list.TextBytes(cmd), cmd.Pos, cmd.Color)
		case mui.CommandIcon:
			c.icon(cmd.Icon, cmd.Rect, cmd.Color)
		}
	}
}

func (c *Canvas) visible() mui.Rect {
	return c.clip.Intersect(mui.Rect{W: c.width, H: c.height})
}

func (c *Canvas) fill(r mui.Rect, col mui.Color) {
	if col.A == 0 {
		return
	}
	r = r.Intersect(c.visible())
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			cell := c.cell(x, y)
			c.split(x, y)
			cell.Rune = ' '
			cell.BG = over(cell.BG, col)
			cell.FG = cell.BG
		}
	}
}

func (c *Canvas) text(font mui.Font, s []byte, pos mui.Vec2, col mui.Color) {
	vis := c.visible()
	if pos.Y < vis.Y || pos.Y >= vis.Y+vis.H {
		return
	}
	x := pos.X
	for len(s) > 0 {
		r, size := utf8.DecodeRune(s)
		s = s[size:]
		w := c.metrics.CharWidth(font, r)
		if x >= vis.X && x+w <= vis.X+vis.W {
			c.put(x, pos.Y, r, w, col)
		}
		x += w
	}
}

func (c *Canvas) icon(icon mui.Icon, r mui.Rect, col mui.Color) {
	g, ok := iconRunes[icon]
	if !ok {
		return
	}
	p := mui.Vec2{X: r.X + (r.W-1)/2, Y: r.Y + (r.H-1)/2}
	if c.visible().Contains(p) {
		c.put(p.X, p.Y, g, 1, col)
	}
}

var iconRunes = map[mui.Icon]rune{
	mui.IconClose:     '×',
	mui.IconCheck:     '✓',
	mui.IconCollapsed: '▸',
	mui.IconExpanded:  '▾',
}

// put writes a w cells wide rune at x, y keeping the background.
func (c *Canvas) put(x, y int, r rune, w int, col mui.Color) {
	for i := range w {
		c.split(x+i, y)
	}
	lead := c.cell(x, y)
	lead.Rune = r
	lead.FG = over(lead.BG, col)
	for i := 1; i < w; i++ {
		tail := c.cell(x+i, y)
		tail.Rune = 0
		tail.FG = lead.FG
	}
}

// split blanks the other half of a double-width character that overlaps
// x, y so that no half characters are left behind.
func (c *Canvas) split(x, y int) {
	cell := c.cell(x, y)
	if cell.Rune == 0 {
		for px := x - 1; px >= 0; px-- {
			prev := c.cell(px, y)
			if prev.Rune != 0 {
				prev.Rune = ' '
				break
			}
			prev.Rune = ' '
		}
		cell.Rune = ' '
	}
	for nx := x + 1; nx < c.width; nx++ {
		next := c.cell(nx, y)
		if next.Rune != 0 {
			break
		}
		next.Rune = ' '
	}
}

func (c *Canvas) cell(x, y int) *Cell {
	return &c.cells[y*c.width+x]
}

// Lines returns the canvas text without colors, one string per row.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	var sb strings.Builder
	for y := range c.height {
		sb.Reset()
		for x := range c.width {
			if r := c.At(x, y).Rune; r != 0 {
				sb.WriteRune(r)
			}
		}
		lines[y] = sb.String()
	}
	return lines
}

// over composites src onto an opaque dst.
func over(dst, src mui.Color) mui.Color {
	if src.A == 255 {
		return src
	}
	a := int(src.A)
	mix := func(d, s uint8) uint8 {
		return uint8((int(s)*a + int(d)*(255-a)) / 255)
	}
	return mui.Color{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}
