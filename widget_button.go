package mui

// Button draws a clickable button keyed by its label. Labels are centered
// unless AlignRight is given. Submitted is set on the frame the button is
// clicked.
//
// Usage:
//
//	if ctx.Button("Save").Submitted() {
//	    save()
//	}
func (ctx *Context) Button(label string, opts ...Option) Result {
	o := buttonOptions(opts)
	id := ctx.labelID(label, o)
	return ctx.button(id, label, 0, o)
}

// ButtonIcon draws a button showing icon instead of text.
func (ctx *Context) ButtonIcon(icon Icon, opts ...Option) Result {
	o := buttonOptions(opts)
	var id ID
	if key := GetOpt(o, OptID); key != "" {
		id = ctx.GetID(key)
	} else {
		id = ctx.GetIDInt(int(icon))
	}
	return ctx.button(id, "", icon, o)
}

func buttonOptions(opts []Option) options {
	o := applyOptions(opts)
	if !o.has(FlagAlignRight) {
		o.flags |= FlagAlignCenter
	}
	return o
}

func (ctx *Context) button(id ID, label string, icon Icon, o options) Result {
	var res Result
	r := ctx.LayoutNext()
	ctx.updateControl(id, r, o)
	if ctx.input.MousePressed(MouseLeft) && ctx.focus == id {
		res |= ResultSubmit
	}
	ctx.drawControlFrame(id, r, ColorButton, o)
	if label != "" {
		ctx.drawControlText(label, r, ColorText, o)
	}
	if icon != 0 {
		ctx.DrawIcon(icon, r, ctx.style.Colors[ColorText])
	}
	return res
}
