package mui

// maxWidths is the column capacity of one row declaration.
const maxWidths = 16

const (
	nextNone = iota
	nextRelative
	nextAbsolute
)

// layout is the cursor of one container body or column. It lives from the
// push that opens its scope to the matching pop, never across frames.
type layout struct {
	body      Rect
	next      Rect
	nextType  int
	position  Vec2
	size      Vec2
	max       Vec2
	widths    [maxWidths]int
	items     int
	itemIndex int
	nextRow   int
	indent    int
}

// row starts a new row of items columns at the current next-row line.
func (l *layout) row(items, height int) {
	l.items = items
	l.position = Vec2{X: l.indent, Y: l.nextRow}
	l.size.Y = height
	l.itemIndex = 0
}

func (ctx *Context) pushLayout(body Rect, scroll Vec2) {
	ctx.layoutStack.push(layout{
		body: Rect{X: body.X - scroll.X, Y: body.Y - scroll.Y, W: body.W, H: body.H},
		max:  Vec2{X: -0x1000000, Y: -0x1000000},
	})
	ctx.LayoutRow(0, 0)
}

func (ctx *Context) layout() *layout {
	return ctx.layoutStack.top()
}

// LayoutRow declares the columns of the following rows. A width or height
// of 0 uses the style default, a negative value fills up to |v|-1 pixels
// before the body edge, and a positive value is used as is. When every
// column has been handed out the row repeats.
func (ctx *Context) LayoutRow(height int, widths ...int) {
	if len(widths) > maxWidths {
		violation("layout row", ErrCapacityExceeded, "%d columns, limit %d", len(widths), maxWidths)
	}
	l := ctx.layout()
	copy(l.widths[:], widths)
	l.row(len(widths), height)
}

// LayoutWidth sets the width used by rows declared without columns.
func (ctx *Context) LayoutWidth(width int) {
	ctx.layout().size.X = width
}

// LayoutHeight sets the height of the current row.
func (ctx *Context) LayoutHeight(height int) {
	ctx.layout().size.Y = height
}

// LayoutSetNext overrides the rectangle returned by the next LayoutNext.
// A relative rectangle is placed in body coordinates and advances the
// cursor; an absolute one is returned untouched.
func (ctx *Context) LayoutSetNext(r Rect, relative bool) {
	l := ctx.layout()
	l.next = r
	if relative {
		l.nextType = nextRelative
	} else {
		l.nextType = nextAbsolute
	}
}

// LayoutNext hands out the rectangle of the next widget.
func (ctx *Context) LayoutNext() Rect {
	l := ctx.layout()
	style := &ctx.style
	var res Rect

	if l.nextType != nextNone {
		typ := l.nextType
		l.nextType = nextNone
		res = l.next
		if typ == nextAbsolute {
			ctx.lastRect = res
			return res
		}
	} else {
		if l.itemIndex == l.items {
			l.row(l.items, l.size.Y)
		}

		res.X, res.Y = l.position.X, l.position.Y
		if l.items > 0 {
			res.W = l.widths[l.itemIndex]
		} else {
			res.W = l.size.X
		}
		res.H = l.size.Y
		if res.W == 0 {
			res.W = style.Size.X + style.Padding*2
		}
		if res.H == 0 {
			res.H = style.Size.Y + style.Padding*2
		}
		if res.W < 0 {
			res.W += l.body.W - res.X + 1
		}
		if res.H < 0 {
			res.H += l.body.H - res.Y + 1
		}
		l.itemIndex++
	}

	l.position.X += res.W + style.Spacing
	l.nextRow = max(l.nextRow, res.Y+res.H+style.Spacing)

	res.X += l.body.X
	res.Y += l.body.Y

	l.max.X = max(l.max.X, res.X+res.W)
	l.max.Y = max(l.max.Y, res.Y+res.H)

	ctx.lastRect = res
	return res
}

// LastRect returns the rectangle most recently handed out by LayoutNext.
func (ctx *Context) LastRect() Rect {
	return ctx.lastRect
}

// LayoutBeginColumn opens a nested layout inside the next rectangle.
func (ctx *Context) LayoutBeginColumn() {
	ctx.pushLayout(ctx.LayoutNext(), Vec2{})
}

// LayoutEndColumn closes a column and merges its extent into the parent
// so that following rows start below the tallest column.
func (ctx *Context) LayoutEndColumn() {
	b := ctx.layoutStack.pop()
	a := ctx.layout()
	a.position.X = max(a.position.X, b.position.X+b.body.X-a.body.X)
	a.nextRow = max(a.nextRow, b.nextRow+b.body.Y-a.body.Y)
	a.max.X = max(a.max.X, b.max.X)
	a.max.Y = max(a.max.Y, b.max.Y)
}

// Column runs body inside a nested column.
//
// Usage:
//
//	ctx.LayoutRow(0, 100, -1)
//	ctx.Column()(func() {
//	    ctx.Label("left")
//	})
func (ctx *Context) Column() func(func()) {
	return func(body func()) {
		ctx.LayoutBeginColumn()
		body()
		ctx.LayoutEndColumn()
	}
}
