package mui

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// numberBufSize bounds the text a numeric edit may start from.
const numberBufSize = 127

// Textbox draws a single-line text box bound to buf, keyed by the address
// of buf. Typed text is appended, Backspace deletes the last character and
// Return submits and releases focus.
func (ctx *Context) Textbox(buf *string, opts ...Option) Result {
	o := applyOptions(opts)
	id := ctx.widgetID(buf, o)
	r := ctx.LayoutNext()
	return ctx.textboxRaw(buf, id, r, o)
}

// TextboxRaw is Textbox with a caller-chosen ID and rectangle.
func (ctx *Context) TextboxRaw(buf *string, id ID, r Rect, opts ...Option) Result {
	return ctx.textboxRaw(buf, id, r, applyOptions(opts))
}

func (ctx *Context) textboxRaw(buf *string, id ID, r Rect, o options) Result {
	limit := GetOpt(o, OptMaxLength)
	if limit > 0 && len(*buf) > limit {
		violation("textbox", ErrCapacityExceeded, "%d byte value, limit %d", len(*buf), limit)
	}

	var res Result
	ctx.updateControl(id, r, o.with(FlagHoldFocus))

	if ctx.focus == id {
		if text := ctx.input.Text(); text != "" {
			if limit > 0 {
				text = truncateUTF8(text, limit-len(*buf))
			}
			if text != "" {
				*buf += text
				res |= ResultChange
			}
		}
		if ctx.input.KeyPressed(KeyBackspace) && len(*buf) > 0 {
			_, size := utf8.DecodeLastRuneInString(*buf)
			*buf = (*buf)[:len(*buf)-size]
			res |= ResultChange
		}
		if ctx.input.KeyPressed(KeyReturn) {
			ctx.SetFocus(0)
			res |= ResultSubmit
		}
	}

	ctx.drawControlFrame(id, r, ColorBase, o)
	if ctx.focus == id {
		color := ctx.style.Colors[ColorText]
		font := ctx.style.Font
		textw := ctx.TextWidth(font, *buf)
		texth := ctx.TextHeight(font)
		// Keep the caret in view: text scrolls left once it outgrows r.
		ofx := r.W - ctx.style.Padding - textw - 1
		textx := r.X + min(ofx, ctx.style.Padding)
		texty := r.Y + (r.H-texth)/2
		ctx.PushClip(r)
		ctx.DrawText(font, *buf, Vec2{X: textx, Y: texty}, color)
		ctx.DrawRect(Rect{X: textx + textw, Y: texty, W: 1, H: texth}, color)
		ctx.PopClip()
	} else {
		ctx.drawControlText(*buf, r, ColorText, o)
	}
	return res
}

// truncateUTF8 cuts s to at most n bytes without splitting a character.
func truncateUTF8(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// numberTextbox switches a numeric control into text editing on
// shift+click and back once the edit is submitted or loses focus. It
// reports true while the edit is in progress.
func (ctx *Context) numberTextbox(value *float64, r Rect, id ID, o options) bool {
	if ctx.input.MousePressed(MouseLeft) && ctx.input.KeyDown(KeyShift) && ctx.hover == id {
		text := strconv.FormatFloat(*value, 'f', GetOpt(o, OptPrecision), 64)
		if len(text) > numberBufSize {
			violation("number edit", ErrCapacityExceeded, "%d byte value, limit %d", len(text), numberBufSize)
		}
		ctx.numberEdit = id
		ctx.numberBuf = text
	}
	if ctx.numberEdit != id {
		return false
	}

	res := ctx.textboxRaw(&ctx.numberBuf, id, r, o.with(FlagHoldFocus))
	if !res.Submitted() && ctx.focus == id {
		return true
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(ctx.numberBuf), 64)
	if err != nil {
		ctx.editErr = &ParseError{ID: id, Input: ctx.numberBuf, Err: err}
		ctx.logger.Warn("number edit discarded", "id", id, "input", ctx.numberBuf, "err", err)
	} else {
		*value = v
	}
	ctx.numberEdit = 0
	ctx.numberBuf = ""
	return false
}
