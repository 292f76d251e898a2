package mui

// Renderer turns a finished frame into pixels (or cells).
type Renderer interface {
	Render(cmds *CommandList) error
	Resize(width, height int)
}

// GUI pairs a Context with a Renderer so a frame can be built and drawn
// with one call.
type GUI struct {
	renderer Renderer
	ctx      *Context
}

// New creates a GUI instance.
func New(renderer Renderer, metrics FontMetrics, opts ...ContextOption) *GUI {
	return &GUI{
		renderer: renderer,
		ctx:      NewContext(metrics, opts...),
	}
}

// Begin starts a frame and returns the context to build it with.
func (g *GUI) Begin() *Context {
	g.ctx.Begin()
	return g.ctx
}

// End finishes the frame and renders it. A discarded frame is not
// rendered.
func (g *GUI) End() error {
	if err := g.ctx.End(); err != nil {
		return err
	}
	return g.renderer.Render(&g.ctx.cmds)
}

// Frame builds a frame with build and renders it.
func (g *GUI) Frame(build func(ctx *Context)) error {
	if err := g.ctx.Frame(func() { build(g.ctx) }); err != nil {
		return err
	}
	return g.renderer.Render(&g.ctx.cmds)
}

// Context returns the underlying context.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Input returns the input state to feed platform events into.
func (g *GUI) Input() *InputState {
	return g.ctx.Input()
}

// Resize notifies the renderer of a display size change.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}
