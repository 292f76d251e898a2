package mui

// Header draws a full-width collapsible header keyed by its label and
// reports Active while expanded. Expansion is remembered across frames.
//
// Usage:
//
//	if ctx.Header("Details").Active() {
//	    ctx.Label("...")
//	}
func (ctx *Context) Header(label string, opts ...Option) Result {
	return ctx.header(label, false, applyOptions(opts))
}

// BeginTreeNode draws a tree node. While it is expanded the following
// widgets are indented and their IDs are scoped under the node; close the
// scope with EndTreeNode, but only when Active was reported.
func (ctx *Context) BeginTreeNode(label string, opts ...Option) Result {
	res := ctx.header(label, true, applyOptions(opts))
	if res.Active() {
		ctx.layout().indent += ctx.style.Indent
		ctx.idStack.push(ctx.lastID)
	}
	return res
}

// EndTreeNode closes a tree node opened by BeginTreeNode.
func (ctx *Context) EndTreeNode() {
	ctx.layout().indent -= ctx.style.Indent
	ctx.PopID()
}

// TreeNode runs body inside the node while it is expanded.
//
// Usage:
//
//	ctx.TreeNode("Assets")(func() {
//	    ctx.Label("texture.png")
//	})
func (ctx *Context) TreeNode(label string, opts ...Option) func(func()) {
	return func(body func()) {
		if ctx.BeginTreeNode(label, opts...).Active() {
			body()
			ctx.EndTreeNode()
		}
	}
}

// header is shared by Header and tree nodes. A node is "active" when its
// state differs from the default: collapsed by default, expanded with
// FlagExpanded. Only active nodes occupy a tree-node pool slot.
func (ctx *Context) header(label string, treeNode bool, o options) Result {
	id := ctx.labelID(label, o)
	idx := ctx.treeNodePool.get(id)
	ctx.LayoutRow(0, -1)

	active := idx >= 0
	r := ctx.LayoutNext()
	ctx.updateControl(id, r, options{})

	if ctx.consumePress(id) {
		active = !active
	}
	expanded := active
	if o.has(FlagExpanded) {
		expanded = !active
	}

	switch {
	case idx >= 0 && active:
		ctx.treeNodePool.update(idx, ctx.frame)
	case idx >= 0:
		ctx.treeNodePool.reset(idx)
	case active:
		if _, evicted := ctx.treeNodePool.alloc(id, ctx.frame); evicted != 0 {
			ctx.logger.Debug("tree node evicted", "id", evicted, "frame", ctx.frame)
		}
	}

	if treeNode {
		if ctx.hover == id {
			ctx.DrawFrame(r, ColorButtonHover)
		}
	} else {
		ctx.drawControlFrame(id, r, ColorButton, options{})
	}
	icon := IconCollapsed
	if expanded {
		icon = IconExpanded
	}
	ctx.DrawIcon(icon, Rect{X: r.X, Y: r.Y, W: r.H, H: r.H}, ctx.style.Colors[ColorText])
	r.X += r.H - ctx.style.Padding
	r.W -= r.H - ctx.style.Padding
	ctx.drawControlText(label, r, ColorText, options{})

	if expanded {
		return ResultActive
	}
	return 0
}
