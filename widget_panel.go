package mui

// BeginPanel opens a scrollable region in the next layout cell of the
// current container. Panels are not root containers: they draw in their
// parent's z slot and have no title bar. Close it with EndPanel.
func (ctx *Context) BeginPanel(name string, opts ...Option) {
	o := applyOptions(opts)
	o.flags &^= FlagClosed

	ctx.PushID(name)
	c := ctx.container(ctx.lastID, o)
	c.rect = ctx.LayoutNext()
	if !o.has(FlagNoFrame) {
		ctx.DrawFrame(c.rect, ColorPanelBG)
	}

	ctx.containerStack.push(c)
	ctx.pushContainerBody(c, c.rect, o)
	ctx.PushClip(c.body)
}

// EndPanel closes a panel opened by BeginPanel.
func (ctx *Context) EndPanel() {
	ctx.PopClip()
	ctx.popContainer()
}

// Panel runs body inside a panel.
//
// Usage:
//
//	ctx.LayoutRow(-28, -1)
//	ctx.Panel("Log Output")(func() {
//	    ctx.Text(logText)
//	})
func (ctx *Context) Panel(name string, opts ...Option) func(func()) {
	return func(body func()) {
		ctx.BeginPanel(name, opts...)
		body()
		ctx.EndPanel()
	}
}
