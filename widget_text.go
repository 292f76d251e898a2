package mui

// Label draws one line of text in the next layout cell.
func (ctx *Context) Label(text string, opts ...Option) {
	ctx.drawControlText(text, ctx.LayoutNext(), ColorText, applyOptions(opts))
}

// Text draws word-wrapped text filling the width of the current layout.
// Lines break at spaces and newlines; a single word wider than the line is
// kept whole.
func (ctx *Context) Text(text string) {
	font := ctx.style.Font
	color := ctx.style.Colors[ColorText]

	ctx.LayoutBeginColumn()
	ctx.LayoutRow(ctx.TextHeight(font), -1)
	p := 0
	for {
		r := ctx.LayoutNext()
		w := 0
		start, end := p, p
		for {
			word := p
			for p < len(text) && text[p] != ' ' && text[p] != '\n' {
				p++
			}
			w += ctx.TextWidth(font, text[word:p])
			if w > r.W && end != start {
				break
			}
			if p < len(text) {
				w += ctx.TextWidth(font, text[p:p+1])
			}
			end = p
			p++
			if end >= len(text) || text[end] == '\n' {
				break
			}
		}
		ctx.DrawText(font, text[start:end], Vec2{X: r.X, Y: r.Y}, color)
		p = end + 1
		if end >= len(text) {
			break
		}
	}
	ctx.LayoutEndColumn()
}
