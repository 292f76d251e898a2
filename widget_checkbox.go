package mui

// Checkbox draws a check box bound to state, keyed by the address of
// state. A click flips the value once and reports Changed.
func (ctx *Context) Checkbox(label string, state *bool, opts ...Option) Result {
	o := applyOptions(opts)
	id := ctx.widgetID(state, o)
	r := ctx.LayoutNext()
	box := Rect{X: r.X, Y: r.Y, W: r.H, H: r.H}

	var res Result
	ctx.updateControl(id, r, o)
	if ctx.consumePress(id) {
		*state = !*state
		res |= ResultChange
	}

	ctx.drawControlFrame(id, box, ColorBase, o)
	if *state {
		ctx.DrawIcon(IconCheck, box, ctx.style.Colors[ColorText])
	}
	r = Rect{X: r.X + box.W, Y: r.Y, W: r.W - box.W, H: r.H}
	ctx.drawControlText(label, r, ColorText, o)
	return res
}
