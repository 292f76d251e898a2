package mui

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"
	"slices"
)

// Context holds all state of the UI: what persists between frames
// (containers, tree-node state, focus) and what a frame builds (stacks,
// command buffer). One goroutine owns a Context; it is not safe for
// concurrent use.
type Context struct {
	style       Style
	metrics     FontMetrics
	frameDrawer FrameDrawer
	logger      *slog.Logger

	// Interaction state
	hover        ID
	focus        ID
	lastID       ID
	updatedFocus bool
	pressTaken   ID
	lastRect     Rect
	lastZIndex   int
	frame        int

	hoverRoot     *Container
	nextHoverRoot *Container
	scrollTarget  *Container

	// Numeric edit overlay
	numberEdit ID
	numberBuf  string
	editErr    error

	// Per-frame output and scopes
	cmds           CommandList
	rootList       stack[*Container]
	containerStack stack[*Container]
	clipStack      stack[Rect]
	idStack        stack[ID]
	layoutStack    stack[layout]

	// Persistent pools
	containerPool Pool
	containers    [ContainerPoolSize]Container
	treeNodePool  Pool

	input InputState
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithStyle sets the initial style.
func WithStyle(s Style) ContextOption {
	return func(ctx *Context) { ctx.style = s }
}

// WithLogger routes the context's log output to l.
func WithLogger(l *slog.Logger) ContextOption {
	return func(ctx *Context) { ctx.logger = l }
}

// WithFrameDrawer replaces the default BorderedFrame.
func WithFrameDrawer(d FrameDrawer) ContextOption {
	return func(ctx *Context) { ctx.frameDrawer = d }
}

// WithCommandCapacity sets how many commands one frame may emit.
func WithCommandCapacity(n int) ContextOption {
	return func(ctx *Context) { ctx.cmds = newCommandList(n) }
}

// NewContext creates a context that measures text with metrics.
func NewContext(metrics FontMetrics, opts ...ContextOption) *Context {
	ctx := &Context{
		style:          DefaultStyle(),
		metrics:        metrics,
		frameDrawer:    BorderedFrame{},
		logger:         defaultLogger,
		cmds:           newCommandList(DefaultCommandCapacity),
		rootList:       newStack[*Container]("root list", rootListSize),
		containerStack: newStack[*Container]("container stack", containerStackSize),
		clipStack:      newStack[Rect]("clip stack", clipStackSize),
		idStack:        newStack[ID]("id stack", idStackSize),
		layoutStack:    newStack[layout]("layout stack", layoutStackSize),
		input:          InputState{text: make([]byte, 0, 32)},
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// Input returns the input state the platform layer feeds.
func (ctx *Context) Input() *InputState {
	return &ctx.input
}

// FrameCount returns the number of frames begun so far.
func (ctx *Context) FrameCount() int {
	return ctx.frame
}

// EditErr returns the parse error of a numeric edit that ended this frame,
// or nil.
func (ctx *Context) EditErr() error {
	return ctx.editErr
}

// Begin starts a frame.
func (ctx *Context) Begin() {
	ctx.cmds.reset()
	ctx.rootList.clear()
	ctx.scrollTarget = nil
	ctx.hoverRoot = ctx.nextHoverRoot
	ctx.nextHoverRoot = nil
	ctx.pressTaken = 0
	ctx.editErr = nil
	ctx.input.beginFrame()
	ctx.frame++
	// Index 0 is the entry of the z-ordered chain; End points it at the
	// lowest root.
	ctx.cmds.pushJump(1)
}

// End finishes a frame: it checks that every scope was closed, applies
// scrolling and focus bookkeeping, and links root containers in z-order.
// An unbalanced frame is discarded and reported as a *PreconditionError.
func (ctx *Context) End() error {
	if err := ctx.checkBalanced(); err != nil {
		ctx.logger.Error("frame discarded", "frame", ctx.frame, "err", err)
		ctx.abort()
		return err
	}

	if ctx.scrollTarget != nil {
		ctx.scrollTarget.scroll = ctx.scrollTarget.scroll.Add(ctx.input.scrollDelta)
	}

	if !ctx.updatedFocus {
		ctx.focus = 0
	}
	ctx.updatedFocus = false

	// A click on a root that is not on top raises it.
	if ctx.input.mousePressed != 0 && ctx.nextHoverRoot != nil &&
		ctx.nextHoverRoot.zIndex < ctx.lastZIndex && ctx.nextHoverRoot.zIndex >= 0 {
		ctx.BringToFront(ctx.nextHoverRoot)
		ctx.logger.Debug("container raised", "z", ctx.nextHoverRoot.zIndex, "frame", ctx.frame)
	}

	ctx.input.endFrame()
	ctx.linkRoots()
	return nil
}

// linkRoots sorts the roots by z-index and chains their command ranges:
// entry -> lowest root -> ... -> highest root -> end of buffer.
func (ctx *Context) linkRoots() {
	roots := ctx.rootList.items
	slices.SortStableFunc(roots, func(a, b *Container) int {
		return cmp.Compare(a.zIndex, b.zIndex)
	})
	if len(roots) == 0 {
		ctx.cmds.setJump(0, 1)
		return
	}
	ctx.cmds.setJump(0, roots[0].head+1)
	for i, c := range roots {
		if i == len(roots)-1 {
			ctx.cmds.setJump(c.tail, ctx.cmds.Len())
		} else {
			ctx.cmds.setJump(c.tail, roots[i+1].head+1)
		}
	}
	if verbose() {
		order := make([]int, len(roots))
		for i, c := range roots {
			order[i] = c.zIndex
		}
		ctx.logger.Debug("frame finished", "frame", ctx.frame, "commands", ctx.cmds.Len(), "roots", order)
	}
}

func (ctx *Context) checkBalanced() error {
	for _, s := range []struct {
		name string
		n    int
	}{
		{ctx.containerStack.name, ctx.containerStack.len()},
		{ctx.clipStack.name, ctx.clipStack.len()},
		{ctx.idStack.name, ctx.idStack.len()},
		{ctx.layoutStack.name, ctx.layoutStack.len()},
	} {
		if s.n != 0 {
			return &PreconditionError{
				Op:  "end",
				Err: fmt.Errorf("%w: %s holds %d entries", ErrUnbalancedStack, s.name, s.n),
			}
		}
	}
	return nil
}

// abort drops everything the current frame built so the next Begin starts
// clean. The command buffer is left holding only an empty chain.
func (ctx *Context) abort() {
	ctx.containerStack.clear()
	ctx.clipStack.clear()
	ctx.idStack.clear()
	ctx.layoutStack.clear()
	ctx.rootList.clear()
	ctx.cmds.reset()
	ctx.cmds.pushJump(1)
	ctx.numberEdit = 0
	ctx.updatedFocus = false
	ctx.input.endFrame()
}

// Frame runs one complete frame: Begin, build, End. A precondition
// violation raised while building is recovered, logged, and returned; any
// other panic propagates.
//
// Usage:
//
//	err := ctx.Frame(func() {
//	    ctx.Window("Demo", mui.Rect{X: 40, Y: 40, W: 300, H: 450})(func() {
//	        if ctx.Button("Hello").Submitted() {
//	            fmt.Println("clicked")
//	        }
//	    })
//	})
func (ctx *Context) Frame(build func()) (err error) {
	ctx.Begin()
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(*PreconditionError)
			if !ok {
				panic(r)
			}
			ctx.logger.Error("frame aborted", "frame", ctx.frame, "op", perr.Op, "err", perr.Err)
			ctx.abort()
			err = perr
		}
	}()
	build()
	return ctx.End()
}

// Commands yields the finished frame's drawable commands in z-order.
func (ctx *Context) Commands() iter.Seq[Command] {
	return ctx.cmds.All()
}

// CommandList exposes the finished frame's buffer and text arena.
func (ctx *Context) CommandList() *CommandList {
	return &ctx.cmds
}
