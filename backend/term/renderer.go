package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-theft-auto/mui"
	"github.com/go-theft-auto/mui/metrics"
)

// Renderer implements mui.Renderer on a cell canvas and turns the result
// into styled text with lipgloss.
type Renderer struct {
	canvas *Canvas
	lg     *lipgloss.Renderer
	styles map[[2]mui.Color]lipgloss.Style
}

// Option configures a Renderer.
type Option func(*config)

type config struct {
	bg      mui.Color
	lg      *lipgloss.Renderer
	metrics metrics.Cells
}

// WithBackground sets the color of cells nothing was drawn on.
func WithBackground(c mui.Color) Option {
	return func(cfg *config) { cfg.bg = c }
}

// WithLipgloss renders through r instead of the default lipgloss renderer,
// for example one bound to a specific output's color profile.
func WithLipgloss(r *lipgloss.Renderer) Option {
	return func(cfg *config) { cfg.lg = r }
}

// WithMetrics sets the cell metrics. It must match the context's metrics.
func WithMetrics(m metrics.Cells) Option {
	return func(cfg *config) { cfg.metrics = m }
}

// NewRenderer creates a renderer for a width x height cell screen.
func NewRenderer(width, height int, opts ...Option) *Renderer {
	cfg := config{
		bg:      mui.Color{R: 20, G: 20, B: 20, A: 255},
		lg:      lipgloss.DefaultRenderer(),
		metrics: metrics.NewCells(false),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Renderer{
		canvas: NewCanvas(width, height, cfg.bg, cfg.metrics),
		lg:     cfg.lg,
		styles: make(map[[2]mui.Color]lipgloss.Style),
	}
}

// Render draws a finished frame onto the canvas.
func (r *Renderer) Render(cmds *mui.CommandList) error {
	r.canvas.Draw(cmds)
	return nil
}

// Resize changes the screen size in cells.
func (r *Renderer) Resize(width, height int) {
	r.canvas.Resize(width, height)
}

// Canvas exposes the cells of the last rendered frame.
func (r *Renderer) Canvas() *Canvas {
	return r.canvas
}

// View returns the last rendered frame as lines of styled text. Adjacent
// cells with the same colors share one lipgloss style run.
func (r *Renderer) View() string {
	c := r.canvas
	var out strings.Builder
	var run strings.Builder
	for y := range c.height {
		if y > 0 {
			out.WriteByte('\n')
		}
		var key [2]mui.Color
		for x := range c.width {
			cell := c.At(x, y)
			if cell.Rune == 0 {
				continue
			}
			k := [2]mui.Color{cell.FG, cell.BG}
			if run.Len() > 0 && k != key {
				out.WriteString(r.style(key).Render(run.String()))
				run.Reset()
			}
			key = k
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			out.WriteString(r.style(key).Render(run.String()))
			run.Reset()
		}
	}
	return out.String()
}

func (r *Renderer) style(k [2]mui.Color) lipgloss.Style {
	if s, ok := r.styles[k]; ok {
		return s
	}
	s := r.lg.NewStyle().
		Foreground(lipgloss.Color(k[0].Hex()[:7])).
		Background(lipgloss.Color(k[1].Hex()[:7]))
	r.styles[k] = s
	return s
}

// Style returns a style sized in cells: one line per text row, no
// padding, and single-cell scrollbars and title bars. Borders are off
// since a one cell border would cost a whole column.
func Style() mui.Style {
	s := mui.DefaultStyle()
	s.Size = mui.Vec2{X: 10, Y: 1}
	s.Padding = 0
	s.Spacing = 1
	s.Indent = 2
	s.TitleHeight = 1
	s.ScrollbarSize = 1
	s.ThumbSize = 1
	s.Colors[mui.ColorBorder].A = 0
	s.Colors[mui.ColorBase] = mui.Color{R: 45, G: 45, B: 60, A: 255}
	s.Colors[mui.ColorBaseHover] = mui.Color{R: 55, G: 55, B: 75, A: 255}
	s.Colors[mui.ColorBaseFocus] = mui.Color{R: 65, G: 65, B: 90, A: 255}
	s.Colors[mui.ColorTitleBG] = mui.Color{R: 30, G: 60, B: 110, A: 255}
	return s
}
