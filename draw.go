package mui

// Icon identifies a built-in glyph the renderer knows how to draw.
type Icon int

const (
	IconClose Icon = iota + 1
	IconCheck
	IconCollapsed
	IconExpanded
)

// FrameDrawer draws the background of a widget or container.
// Install a custom one with WithFrameDrawer to restyle every frame at once.
type FrameDrawer interface {
	DrawFrame(ctx *Context, r Rect, color ColorID)
}

// FrameDrawerFunc adapts a function to FrameDrawer.
type FrameDrawerFunc func(ctx *Context, r Rect, color ColorID)

// DrawFrame calls f(ctx, r, color).
func (f FrameDrawerFunc) DrawFrame(ctx *Context, r Rect, color ColorID) {
	f(ctx, r, color)
}

// BorderedFrame is the default FrameDrawer: a filled rectangle with a one
// pixel border around it. Scrollbars and title bars get no border.
type BorderedFrame struct{}

func (BorderedFrame) DrawFrame(ctx *Context, r Rect, color ColorID) {
	ctx.DrawRect(r, ctx.style.Colors[color])
	if color == ColorScrollBase || color == ColorScrollThumb || color == ColorTitleBG {
		return
	}
	if border := ctx.style.Colors[ColorBorder]; border.A != 0 {
		ctx.DrawBox(r.Expand(1), border)
	}
}

// SetClip emits a clip command.
func (ctx *Context) SetClip(r Rect) {
	ctx.cmds.push(Command{Kind: CommandClip, Rect: r})
}

// DrawRect emits a filled rectangle, cut to the active clip rectangle.
// Nothing is emitted when the visible part is empty.
func (ctx *Context) DrawRect(r Rect, c Color) {
	r = r.Intersect(ctx.ClipRect())
	if r.W > 0 && r.H > 0 {
		ctx.cmds.push(Command{Kind: CommandRect, Rect: r, Color: c})
	}
}

// DrawBox emits a one pixel outline of r.
func (ctx *Context) DrawBox(r Rect, c Color) {
	ctx.DrawRect(Rect{X: r.X + 1, Y: r.Y, W: r.W - 2, H: 1}, c)
	ctx.DrawRect(Rect{X: r.X + 1, Y: r.Y + r.H - 1, W: r.W - 2, H: 1}, c)
	ctx.DrawRect(Rect{X: r.X, Y: r.Y, W: 1, H: r.H}, c)
	ctx.DrawRect(Rect{X: r.X + r.W - 1, Y: r.Y, W: 1, H: r.H}, c)
}

// DrawText emits a glyph run at pos. A run that straddles the clip edge is
// wrapped in a clip command and an unclipped restore.
func (ctx *Context) DrawText(font Font, s string, pos Vec2, c Color) {
	r := Rect{X: pos.X, Y: pos.Y, W: ctx.TextWidth(font, s), H: ctx.TextHeight(font)}
	clipped := ctx.CheckClip(r)
	if clipped == ClipAll {
		return
	}
	if clipped == ClipPart {
		ctx.SetClip(ctx.ClipRect())
	}
	start, end := ctx.cmds.pushText(s)
	ctx.cmds.push(Command{Kind: CommandText, Pos: pos, Color: c, Font: font, TextStart: start, TextEnd: end})
	if clipped == ClipPart {
		ctx.SetClip(Unclipped)
	}
}

// DrawIcon emits an icon centered by the renderer inside r.
func (ctx *Context) DrawIcon(icon Icon, r Rect, c Color) {
	clipped := ctx.CheckClip(r)
	if clipped == ClipAll {
		return
	}
	if clipped == ClipPart {
		ctx.SetClip(ctx.ClipRect())
	}
	ctx.cmds.push(Command{Kind: CommandIcon, Rect: r, Color: c, Icon: icon})
	if clipped == ClipPart {
		ctx.SetClip(Unclipped)
	}
}

// DrawFrame draws a widget background with the installed FrameDrawer.
func (ctx *Context) DrawFrame(r Rect, color ColorID) {
	ctx.frameDrawer.DrawFrame(ctx, r, color)
}

// DrawControlFrame draws the background of control id, shifted to the hover
// or focus variant of color when the control is hovered or focused.
func (ctx *Context) DrawControlFrame(id ID, r Rect, color ColorID, opts ...Option) {
	ctx.drawControlFrame(id, r, color, applyOptions(opts))
}

func (ctx *Context) drawControlFrame(id ID, r Rect, color ColorID, o options) {
	if o.has(FlagNoFrame) {
		return
	}
	if ctx.focus == id {
		color = color.focused()
	} else if ctx.hover == id {
		color = color.hovered()
	}
	ctx.DrawFrame(r, color)
}

// DrawControlText draws a single line of text inside r, vertically centered
// and aligned per AlignCenter/AlignRight (left by default).
func (ctx *Context) DrawControlText(s string, r Rect, color ColorID, opts ...Option) {
	ctx.drawControlText(s, r, color, applyOptions(opts))
}

func (ctx *Context) drawControlText(s string, r Rect, color ColorID, o options) {
	font := ctx.style.Font
	tw := ctx.TextWidth(font, s)
	ctx.PushClip(r)
	pos := Vec2{Y: r.Y + (r.H-ctx.TextHeight(font))/2}
	switch {
	case o.has(FlagAlignCenter):
		pos.X = r.X + (r.W-tw)/2
	case o.has(FlagAlignRight):
		pos.X = r.X + r.W - tw - ctx.style.Padding
	default:
		pos.X = r.X + ctx.style.Padding
	}
	ctx.DrawText(font, s, pos, ctx.style.Colors[color])
	ctx.PopClip()
}
