package mui

// Container is the state a window, popup or panel keeps between frames.
// Containers live in a fixed table inside the Context; pointers to them
// stay valid for the life of the Context, but the slot may be handed to
// another container once it has not been referenced for a while.
type Container struct {
	head, tail  int // Jump commands framing a root container's range
	rect        Rect
	body        Rect
	contentSize Vec2
	scroll      Vec2
	zIndex      int
	open        bool
}

// Rect returns the outer rectangle.
func (c *Container) Rect() Rect { return c.rect }

// SetRect moves or resizes the container.
func (c *Container) SetRect(r Rect) { c.rect = r }

// Body returns the inner rectangle after title bar and scrollbars.
func (c *Container) Body() Rect { return c.body }

// ContentSize returns the extent of the content laid out last frame.
func (c *Container) ContentSize() Vec2 { return c.contentSize }

// Scroll returns the scroll offset.
func (c *Container) Scroll() Vec2 { return c.scroll }

// SetScroll sets the scroll offset. It is clamped the next time the
// container draws its scrollbars.
func (c *Container) SetScroll(v Vec2) { c.scroll = v }

// ZIndex returns the stacking order; higher is drawn later.
func (c *Container) ZIndex() int { return c.zIndex }

// Open reports whether the container is shown.
func (c *Container) Open() bool { return c.open }

// SetOpen shows or hides the container.
func (c *Container) SetOpen(open bool) { c.open = open }

// container returns the container for id, creating it when needed. A
// container that does not exist yet is not created when FlagClosed is set.
func (ctx *Context) container(id ID, o options) *Container {
	if idx := ctx.containerPool.get(id); idx >= 0 {
		c := &ctx.containers[idx]
		if c.open || !o.has(FlagClosed) {
			ctx.containerPool.update(idx, ctx.frame)
		}
		return c
	}
	if o.has(FlagClosed) {
		return nil
	}
	idx, evicted := ctx.containerPool.alloc(id, ctx.frame)
	if evicted != 0 {
		ctx.logger.Debug("container evicted", "id", evicted, "slot", idx, "frame", ctx.frame)
	}
	c := &ctx.containers[idx]
	*c = Container{open: true}
	ctx.BringToFront(c)
	return c
}

// Container returns the container named name in the current ID scope,
// creating it if needed. It is the entry point for code that inspects or
// restores window state outside of widget calls.
func (ctx *Context) Container(name string) *Container {
	return ctx.container(ctx.GetID(name), options{})
}

// LookupContainer returns the container named name in the current ID scope
// if it exists. Unlike Container it never allocates a slot, opens a window
// or changes z-order.
func (ctx *Context) LookupContainer(name string) (*Container, bool) {
	idx := ctx.containerPool.get(ctx.GetID(name))
	if idx < 0 {
		return nil, false
	}
	return &ctx.containers[idx], true
}

// CurrentContainer returns the innermost open container, or nil.
func (ctx *Context) CurrentContainer() *Container {
	c, _ := ctx.containerStack.peek()
	return c
}

// BringToFront gives c the highest z-index so far.
func (ctx *Context) BringToFront(c *Container) {
	ctx.lastZIndex++
	c.zIndex = ctx.lastZIndex
}

func (ctx *Context) beginRootContainer(c *Container) {
	ctx.containerStack.push(c)
	ctx.rootList.push(c)
	c.head = ctx.cmds.pushJump(0)
	// The hover root for the next frame is the topmost root under the mouse.
	if c.rect.Contains(ctx.input.mousePos) && (ctx.nextHoverRoot == nil || c.zIndex > ctx.nextHoverRoot.zIndex) {
		ctx.nextHoverRoot = c
	}
	// Roots are drawn in their own z slot, so an enclosing clip must not
	// leak into them.
	ctx.clipStack.push(Unclipped)
}

func (ctx *Context) endRootContainer() {
	c := ctx.CurrentContainer()
	c.tail = ctx.cmds.pushJump(0)
	ctx.cmds.setJump(c.head, ctx.cmds.Len())
	ctx.PopClip()
	ctx.popContainer()
}

func (ctx *Context) popContainer() {
	c := ctx.CurrentContainer()
	l := ctx.layout()
	c.contentSize = Vec2{X: l.max.X - l.body.X, Y: l.max.Y - l.body.Y}
	ctx.containerStack.pop()
	ctx.layoutStack.pop()
	ctx.PopID()
}

// pushContainerBody lays out scrollbars and opens the body layout.
func (ctx *Context) pushContainerBody(c *Container, body Rect, o options) {
	if !o.has(FlagNoScroll) {
		ctx.scrollbars(c, &body)
	}
	ctx.pushLayout(body.Expand(-ctx.style.Padding), c.scroll)
	c.body = body
}

// isRoot reports whether c opened a command range of its own. Only root
// containers get a head jump, and index 0 is always the chain entry.
func (c *Container) isRoot() bool {
	return c.head != 0
}
