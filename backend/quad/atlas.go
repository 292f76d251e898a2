// Package quad turns a mui command list into textured, colored quads ready
// for a GPU: one vertex and index buffer per frame, split into draw calls
// wherever the clip rectangle changes. Glyphs, icons and a white texel for
// solid fills share a single alpha-only atlas.
package quad

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/mui"
	"github.com/go-theft-auto/mui/metrics"
)

// IconSize is the edge length of the built-in icons in pixels.
const IconSize = 16

const (
	atlasWidth     = 256
	atlasMaxHeight = 4096
	atlasPadding   = 1
	firstRune      = 32
	lastRune       = 255
)

// Glyph locates one rasterized character in the atlas.
type Glyph struct {
	Src     image.Rectangle // Pixels in the atlas; empty for blank glyphs
	Offset  image.Point     // Top-left of Src relative to the pen on the baseline
	Advance int
}

// Atlas is an alpha-only texture holding glyphs of one face, the icons and
// a white block for solid fills.
type Atlas struct {
	Image  *image.Alpha
	face   *metrics.Face
	glyphs map[rune]Glyph
	icons  map[mui.Icon]image.Rectangle
	white  image.Rectangle
}

type atlasItem struct {
	size  image.Point
	place func(img *image.Alpha, at image.Point)
}

// NewAtlas rasterizes Latin-1 from face and the built-in icons.
func NewAtlas(face *metrics.Face) (*Atlas, error) {
	a := &Atlas{
		face:   face,
		glyphs: make(map[rune]Glyph, lastRune-firstRune+1),
		icons:  make(map[mui.Icon]image.Rectangle, 4),
	}
	ff := face.Face()

	var items []atlasItem
	items = append(items, atlasItem{
		size: image.Pt(2, 2),
		place: func(img *image.Alpha, at image.Point) {
			a.white = image.Rectangle{Min: at, Max: at.Add(image.Pt(2, 2))}
			draw.Draw(img, a.white, image.Opaque, image.Point{}, draw.Src)
		},
	})
	for _, icon := range []mui.Icon{mui.IconClose, mui.IconCheck, mui.IconCollapsed, mui.IconExpanded} {
		items = append(items, atlasItem{
			size: image.Pt(IconSize, IconSize),
			place: func(img *image.Alpha, at image.Point) {
				r := image.Rectangle{Min: at, Max: at.Add(image.Pt(IconSize, IconSize))}
				a.icons[icon] = r
				drawIcon(img, r, icon)
			},
		})
	}

	for r := rune(firstRune); r <= lastRune; r++ {
		b, _, ok := ff.GlyphBounds(r)
		if !ok {
			continue
		}
		bounds := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
		g := Glyph{Offset: bounds.Min, Advance: face.CharWidth(0, r)}
		if bounds.Empty() {
			a.glyphs[r] = g
			continue
		}
		items = append(items, atlasItem{
			size: bounds.Size(),
			place: func(img *image.Alpha, at image.Point) {
				g.Src = image.Rectangle{Min: at, Max: at.Add(bounds.Size())}
				d := font.Drawer{
					Dst:  img,
					Src:  image.Opaque,
					Face: ff,
					Dot:  fixed.P(at.X-bounds.Min.X, at.Y-bounds.Min.Y),
				}
				d.DrawString(string(r))
				a.glyphs[r] = g
			},
		})
	}

	positions, height, err := shelfPack(items, atlasWidth)
	if err != nil {
		return nil, err
	}
	a.Image = image.NewAlpha(image.Rect(0, 0, atlasWidth, height))
	for i, it := range items {
		it.place(a.Image, positions[i])
	}
	return a, nil
}

// shelfPack places items left to right in rows and returns their
// positions and the power-of-two height needed.
func shelfPack(items []atlasItem, width int) ([]image.Point, int, error) {
	positions := make([]image.Point, len(items))
	x, y, rowH := atlasPadding, atlasPadding, 0
	for i, it := range items {
		if it.size.X+2*atlasPadding > width {
			return nil, 0, fmt.Errorf("glyph of %dpx does not fit a %dpx atlas", it.size.X, width)
		}
		if x+it.size.X+atlasPadding > width {
			x = atlasPadding
			y += rowH + atlasPadding
			rowH = 0
		}
		positions[i] = image.Pt(x, y)
		x += it.size.X + atlasPadding
		rowH = max(rowH, it.size.Y)
	}
	need := y + rowH + atlasPadding
	height := 64
	for height < need {
		height *= 2
	}
	if height > atlasMaxHeight {
		return nil, 0, fmt.Errorf("font atlas too large (>%d)", atlasMaxHeight)
	}
	return positions, height, nil
}

// Glyph returns the glyph for r, falling back to '?'.
func (a *Atlas) Glyph(r rune) Glyph {
	if g, ok := a.glyphs[r]; ok {
		return g
	}
	return a.glyphs['?']
}

// Icon returns the atlas rectangle of icon.
func (a *Atlas) Icon(icon mui.Icon) (image.Rectangle, bool) {
	r, ok := a.icons[icon]
	return r, ok
}

// White returns a fully opaque region used for solid fills.
func (a *Atlas) White() image.Rectangle {
	return a.white
}

// Metrics returns the face the atlas was built from. Use it as the
// context's FontMetrics so layout and rendering agree.
func (a *Atlas) Metrics() *metrics.Face {
	return a.face
}

func drawIcon(img *image.Alpha, r image.Rectangle, icon mui.Icon) {
	set := func(x, y int) {
		p := r.Min.Add(image.Pt(x, y))
		if p.In(r) {
			img.Pix[img.PixOffset(p.X, p.Y)] = 0xff
		}
	}
	switch icon {
	case mui.IconClose:
		for i := 4; i < 12; i++ {
			set(i, i)
			set(i+1, i)
			set(15-i, i)
			set(14-i, i)
		}
	case mui.IconCheck:
		for i := range 3 {
			set(4+i, 8+i)
			set(4+i, 9+i)
		}
		for i := range 6 {
			set(7+i, 10-i)
			set(7+i, 11-i)
		}
	case mui.IconCollapsed:
		for x := 5; x <= 10; x++ {
			half := 10 - x
			for y := 8 - half; y <= 8+half; y++ {
				set(x, y)
			}
		}
	case mui.IconExpanded:
		for y := 5; y <= 10; y++ {
			half := 10 - y
			for x := 8 - half; x <= 8+half; x++ {
				set(x, y)
			}
		}
	}
}
