package quad

import (
	"image"

	"github.com/go-theft-auto/mui"
)

// Vertex is one corner of a quad.
type Vertex struct {
	Pos   [2]float32
	UV    [2]float32
	Color uint32 // mui.Color.Packed
}

// DrawCall is a run of indices drawn under one clip rectangle.
type DrawCall struct {
	Clip  mui.Rect
	First int
	Count int
}

// Batch accumulates the quads of one frame. Buffers are reused across
// frames.
type Batch struct {
	Vertices []Vertex
	Indices  []uint32
	Calls    []DrawCall

	atlas *Atlas
}

// NewBatch creates a batch that draws with atlas.
func NewBatch(atlas *Atlas) *Batch {
	return &Batch{
		Vertices: make([]Vertex, 0, 4096),
		Indices:  make([]uint32, 0, 6144),
		atlas:    atlas,
	}
}

// Build replaces the batch contents with the finished frame in list.
func (b *Batch) Build(list *mui.CommandList) {
	b.Vertices = b.Vertices[:0]
	b.Indices = b.Indices[:0]
	b.Calls = append(b.Calls[:0], DrawCall{Clip: mui.Unclipped})

	for cmd := range list.All() {
		switch cmd.Kind {
		case mui.CommandClip:
			b.setClip(cmd.Rect)
		case mui.CommandRect:
			b.quad(cmd.Rect, b.atlas.White(), cmd.Color)
		case mui.CommandText:
			b.text(list.TextBytes(cmd), cmd.Pos, cmd.Color)
		case mui.CommandIcon:
			src, ok := b.atlas.Icon(cmd.Icon)
			if !ok {
				continue
			}
			dst := mui.Rect{
				X: cmd.Rect.X + (cmd.Rect.W-src.Dx())/2,
				Y: cmd.Rect.Y + (cmd.Rect.H-src.Dy())/2,
				W: src.Dx(),
				H: src.Dy(),
			}
			b.quad(dst, src, cmd.Color)
		}
	}

	if last := b.Calls[len(b.Calls)-1]; last.Count == 0 {
		b.Calls = b.Calls[:len(b.Calls)-1]
	}
}

func (b *Batch) setClip(r mui.Rect) {
	last := &b.Calls[len(b.Calls)-1]
	if last.Clip == r {
		return
	}
	if last.Count == 0 {
		last.Clip = r
		return
	}
	b.Calls = append(b.Calls, DrawCall{Clip: r, First: len(b.Indices)})
}

func (b *Batch) text(s []byte, pos mui.Vec2, c mui.Color) {
	pen := pos.X
	baseline := pos.Y + b.atlas.face.Ascent()
	for _, r := range string(s) {
		g := b.atlas.Glyph(r)
		if !g.Src.Empty() {
			b.quad(mui.Rect{
				X: pen + g.Offset.X,
				Y: baseline + g.Offset.Y,
				W: g.Src.Dx(),
				H: g.Src.Dy(),
			}, g.Src, c)
		}
		pen += g.Advance
	}
}

func (b *Batch) quad(dst mui.Rect, src image.Rectangle, c mui.Color) {
	size := b.atlas.Image.Bounds().Size()
	sw, sh := float32(size.X), float32(size.Y)
	u0, v0 := float32(src.Min.X)/sw, float32(src.Min.Y)/sh
	u1, v1 := float32(src.Max.X)/sw, float32(src.Max.Y)/sh
	x0, y0 := float32(dst.X), float32(dst.Y)
	x1, y1 := float32(dst.X+dst.W), float32(dst.Y+dst.H)
	col := c.Packed()

	base := uint32(len(b.Vertices))
	b.Vertices = append(b.Vertices,
		Vertex{Pos: [2]float32{x0, y0}, UV: [2]float32{u0, v0}, Color: col},
		Vertex{Pos: [2]float32{x1, y0}, UV: [2]float32{u1, v0}, Color: col},
		Vertex{Pos: [2]float32{x1, y1}, UV: [2]float32{u1, v1}, Color: col},
		Vertex{Pos: [2]float32{x0, y1}, UV: [2]float32{u0, v1}, Color: col},
	)
	b.Indices = append(b.Indices, base, base+1, base+2, base, base+2, base+3)
	b.Calls[len(b.Calls)-1].Count += 6
}

// Scissor converts the call's clip rectangle to window coordinates with
// the origin at the bottom left, clamped to a width x height viewport. It
// reports false when nothing of the call is visible.
func (c DrawCall) Scissor(width, height int) (x, y, w, h int, ok bool) {
	r := c.Clip.Intersect(mui.Rect{W: width, H: height})
	if r.W <= 0 || r.H <= 0 {
		return 0, 0, 0, 0, false
	}
	return r.X, height - r.Y - r.H, r.W, r.H, true
}
