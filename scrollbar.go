package mui

// scrollbars reserves room for the scrollbars c needs, shrinking body, and
// draws them. Sizes are decided from last frame's content size and body.
func (ctx *Context) scrollbars(c *Container, body *Rect) {
	sz := ctx.style.ScrollbarSize
	cs := c.contentSize
	cs.X += ctx.style.Padding * 2
	cs.Y += ctx.style.Padding * 2

	ctx.PushClip(*body)
	if cs.Y > c.body.H {
		body.W -= sz
	}
	if cs.X > c.body.W {
		body.H -= sz
	}
	ctx.scrollbarY(c, *body, cs)
	ctx.scrollbarX(c, *body, cs)
	ctx.PopClip()
}

func (ctx *Context) scrollbarY(c *Container, body Rect, cs Vec2) {
	maxScroll := cs.Y - body.H
	if maxScroll <= 0 || body.H <= 0 {
		c.scroll.Y = 0
		return
	}

	id := ctx.GetID("!scrollbary")
	base := body
	base.X = body.X + body.W
	base.W = ctx.style.ScrollbarSize

	ctx.updateControl(id, base, options{})
	if ctx.focus == id && ctx.input.MouseDown(MouseLeft) {
		c.scroll.Y += ctx.input.mouseDelta.Y * cs.Y / base.H
	}
	c.scroll.Y = clamp(c.scroll.Y, 0, maxScroll)

	ctx.DrawFrame(base, ColorScrollBase)
	thumb := base
	thumb.H = max(ctx.style.ThumbSize, base.H*body.H/cs.Y)
	thumb.Y += c.scroll.Y * (base.H - thumb.H) / maxScroll
	ctx.DrawFrame(thumb, ColorScrollThumb)

	if ctx.MouseOver(body) {
		ctx.scrollTarget = c
	}
}

func (ctx *Context) scrollbarX(c *Container, body Rect, cs Vec2) {
	maxScroll := cs.X - body.W
	if maxScroll <= 0 || body.W <= 0 {
		c.scroll.X = 0
		return
	}

	id := ctx.GetID("!scrollbarx")
	base := body
	base.Y = body.Y + body.H
	base.H = ctx.style.ScrollbarSize

	ctx.updateControl(id, base, options{})
	if ctx.focus == id && ctx.input.MouseDown(MouseLeft) {
		c.scroll.X += ctx.input.mouseDelta.X * cs.X / base.W
	}
	c.scroll.X = clamp(c.scroll.X, 0, maxScroll)

	ctx.DrawFrame(base, ColorScrollBase)
	thumb := base
	thumb.W = max(ctx.style.ThumbSize, base.W*body.W/cs.X)
	thumb.X += c.scroll.X * (base.W - thumb.W) / maxScroll
	ctx.DrawFrame(thumb, ColorScrollThumb)

	if ctx.MouseOver(body) {
		ctx.scrollTarget = c
	}
}
