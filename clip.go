package mui

// ClipResult classifies a rectangle against the active clip rectangle.
type ClipResult int

const (
	ClipNone ClipResult = iota // Fully inside, draw as is
	ClipPart                   // Straddles the edge, needs an explicit clip command
	ClipAll                    // Fully outside, skip
)

// PushClip narrows the clip rectangle to its intersection with r.
func (ctx *Context) PushClip(r Rect) {
	ctx.clipStack.push(r.Intersect(ctx.ClipRect()))
}

// PopClip restores the previous clip rectangle.
func (ctx *Context) PopClip() {
	ctx.clipStack.pop()
}

// ClipRect returns the active clip rectangle.
func (ctx *Context) ClipRect() Rect {
	if top, ok := ctx.clipStack.peek(); ok {
		return top
	}
	return Unclipped
}

// CheckClip classifies r against the active clip rectangle.
func (ctx *Context) CheckClip(r Rect) ClipResult {
	cr := ctx.ClipRect()
	if r.X > cr.X+cr.W || r.X+r.W < cr.X || r.Y > cr.Y+cr.H || r.Y+r.H < cr.Y {
		return ClipAll
	}
	if r.X >= cr.X && r.X+r.W <= cr.X+cr.W && r.Y >= cr.Y && r.Y+r.H <= cr.Y+cr.H {
		return ClipNone
	}
	return ClipPart
}
