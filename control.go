package mui

// Result is the set of per-call outcomes a widget reports.
type Result uint8

const (
	ResultActive Result = 1 << iota // Open, expanded, or being edited
	ResultSubmit                    // Clicked, or Return pressed in a text box
	ResultChange                    // Bound value changed
)

func (r Result) Active() bool    { return r&ResultActive != 0 }
func (r Result) Submitted() bool { return r&ResultSubmit != 0 }
func (r Result) Changed() bool   { return r&ResultChange != 0 }

// Focus returns the focused control, or 0.
func (ctx *Context) Focus() ID { return ctx.focus }

// Hover returns the hovered control, or 0.
func (ctx *Context) Hover() ID { return ctx.hover }

// SetFocus focuses id (0 clears focus) and counts as a focus refresh for
// this frame.
func (ctx *Context) SetFocus(id ID) {
	if ctx.focus != id {
		ctx.logger.Debug("focus changed", "from", ctx.focus, "to", id, "frame", ctx.frame)
	}
	ctx.focus = id
	ctx.updatedFocus = true
}

// inHoverRoot reports whether the current container belongs to the hover
// root. The search stops at the innermost root container.
func (ctx *Context) inHoverRoot() bool {
	for i := ctx.containerStack.len() - 1; i >= 0; i-- {
		c := ctx.containerStack.at(i)
		if c == ctx.hoverRoot {
			return true
		}
		if c.isRoot() {
			break
		}
	}
	return false
}

// MouseOver reports whether the pointer is over r, inside the clip
// rectangle, and within the hover root.
func (ctx *Context) MouseOver(r Rect) bool {
	p := ctx.input.mousePos
	return r.Contains(p) && ctx.ClipRect().Contains(p) && ctx.inHoverRoot()
}

// UpdateControl runs the hover/focus state machine for a custom control.
func (ctx *Context) UpdateControl(id ID, r Rect, opts ...Option) {
	ctx.updateControl(id, r, applyOptions(opts))
}

func (ctx *Context) updateControl(id ID, r Rect, o options) {
	mouseover := ctx.MouseOver(r)

	if ctx.focus == id {
		ctx.updatedFocus = true
	}
	if o.has(FlagNoInteract) {
		return
	}
	if mouseover && ctx.input.mouseDown == 0 {
		ctx.hover = id
	}

	if ctx.focus == id {
		if ctx.input.mousePressed != 0 && !mouseover {
			ctx.SetFocus(0)
		}
		if ctx.input.mouseDown == 0 && !o.has(FlagHoldFocus) {
			ctx.SetFocus(0)
		}
	}

	if ctx.hover == id {
		if ctx.input.mousePressed != 0 {
			ctx.SetFocus(id)
		} else if !mouseover {
			ctx.hover = 0
		}
	}
}

// consumePress reports whether this frame's left press acts on id. It
// answers true at most once per frame, so a control called twice in one
// frame toggles only once.
func (ctx *Context) consumePress(id ID) bool {
	if !ctx.input.MousePressed(MouseLeft) || ctx.focus != id || ctx.pressTaken == id {
		return false
	}
	ctx.pressTaken = id
	return true
}
