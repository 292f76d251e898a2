package mui

// Minimum size a window can be resized to.
const (
	minWindowWidth  = 96
	minWindowHeight = 64
)

// popupFlags are the options every popup is opened with.
const popupFlags = FlagPopup | FlagAutoSize | FlagNoResize | FlagNoScroll | FlagNoTitle | FlagClosed

// BeginWindow opens a window keyed by its title. r is only used the first
// time the window is seen; afterwards the window keeps the rectangle the
// user dragged or resized it to. When Active is not reported the window is
// closed and EndWindow must not be called.
func (ctx *Context) BeginWindow(title string, r Rect, opts ...Option) Result {
	return ctx.beginWindow(title, r, applyOptions(opts))
}

func (ctx *Context) beginWindow(title string, r Rect, o options) Result {
	id := ctx.GetID(title)
	c := ctx.container(id, o)
	if c == nil || !c.open {
		return 0
	}
	ctx.idStack.push(id)

	if c.rect.W == 0 {
		c.rect = r
	}
	ctx.beginRootContainer(c)
	r = c.rect
	body := r

	if !o.has(FlagNoFrame) {
		ctx.DrawFrame(r, ColorWindowBG)
	}

	if !o.has(FlagNoTitle) {
		tr := r
		tr.H = ctx.style.TitleHeight
		ctx.DrawFrame(tr, ColorTitleBG)

		// Title bar doubles as the drag handle.
		tid := ctx.GetID("!title")
		ctx.updateControl(tid, tr, o)
		ctx.drawControlText(title, tr, ColorTitleText, o)
		if tid == ctx.focus && ctx.input.MouseDown(MouseLeft) {
			c.rect.X += ctx.input.mouseDelta.X
			c.rect.Y += ctx.input.mouseDelta.Y
		}
		body.Y += tr.H
		body.H -= tr.H

		if !o.has(FlagNoClose) {
			cid := ctx.GetID("!close")
			cr := Rect{X: tr.X + tr.W - tr.H, Y: tr.Y, W: tr.H, H: tr.H}
			ctx.DrawIcon(IconClose, cr, ctx.style.Colors[ColorTitleText])
			ctx.updateControl(cid, cr, o)
			if ctx.input.MousePressed(MouseLeft) && cid == ctx.focus {
				c.open = false
			}
		}
	}

	ctx.pushContainerBody(c, body, o)

	if !o.has(FlagNoResize) {
		sz := ctx.style.TitleHeight
		rid := ctx.GetID("!resize")
		rr := Rect{X: r.X + r.W - sz, Y: r.Y + r.H - sz, W: sz, H: sz}
		ctx.updateControl(rid, rr, o)
		if rid == ctx.focus && ctx.input.MouseDown(MouseLeft) {
			c.rect.W = max(minWindowWidth, c.rect.W+ctx.input.mouseDelta.X)
			c.rect.H = max(minWindowHeight, c.rect.H+ctx.input.mouseDelta.Y)
		}
	}

	// Fit to last frame's content, keeping the margin between rect and body.
	if o.has(FlagAutoSize) {
		lb := ctx.layout().body
		c.rect.W = c.contentSize.X + (c.rect.W - lb.W)
		c.rect.H = c.contentSize.Y + (c.rect.H - lb.H)
	}

	// Popups close on any click outside of them.
	if o.has(FlagPopup) && ctx.input.mousePressed != 0 && ctx.hoverRoot != c {
		c.open = false
		ctx.logger.Debug("popup dismissed", "title", title, "frame", ctx.frame)
	}

	ctx.PushClip(c.body)
	return ResultActive
}

// EndWindow closes a window opened by BeginWindow.
func (ctx *Context) EndWindow() {
	ctx.PopClip()
	ctx.endRootContainer()
}

// Window runs body inside the window while it is open.
//
// Usage:
//
//	ctx.Window("Log", mui.Rect{X: 350, Y: 40, W: 300, H: 200})(func() {
//	    ctx.Text(logText)
//	})
func (ctx *Context) Window(title string, r Rect, opts ...Option) func(func()) {
	return func(body func()) {
		if ctx.BeginWindow(title, r, opts...).Active() {
			body()
			ctx.EndWindow()
		}
	}
}

// OpenPopup opens the popup name at the mouse position and makes it the
// hover root immediately, so the click that opened it does not close it.
func (ctx *Context) OpenPopup(name string) {
	c := ctx.Container(name)
	ctx.hoverRoot = c
	ctx.nextHoverRoot = c
	c.rect = Rect{X: ctx.input.mousePos.X, Y: ctx.input.mousePos.Y, W: 1, H: 1}
	c.open = true
	ctx.BringToFront(c)
}

// BeginPopup draws the popup name if it was opened with OpenPopup.
// Popups size themselves to their content and have no title bar.
func (ctx *Context) BeginPopup(name string) Result {
	return ctx.beginWindow(name, Rect{}, options{flags: popupFlags})
}

// EndPopup closes a popup opened by BeginPopup.
func (ctx *Context) EndPopup() {
	ctx.EndWindow()
}

// Popup runs body inside the popup while it is open.
func (ctx *Context) Popup(name string) func(func()) {
	return func(body func()) {
		if ctx.BeginPopup(name).Active() {
			body()
			ctx.EndPopup()
		}
	}
}
