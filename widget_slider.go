package mui

import (
	"math"
	"strconv"
)

// Slider draws a horizontal slider for value in [low, high], keyed by the
// address of value. Dragging maps the pointer position onto the track;
// WithStep snaps the result. Shift+click turns the slider into a text field
// for typing an exact value.
//
// Usage:
//
//	if ctx.Slider(&volume, 0, 1, mui.WithStep(0.05)).Changed() {
//	    updateVolume(volume)
//	}
func (ctx *Context) Slider(value *float64, low, high float64, opts ...Option) Result {
	o := applyOptions(opts).with(FlagAlignCenter)
	step := GetOpt(o, OptStep)
	last := *value
	v := last
	id := ctx.widgetID(value, o)
	base := ctx.LayoutNext()

	if ctx.numberTextbox(&v, base, id, o) {
		return ResultActive
	}

	ctx.updateControl(id, base, o)
	if ctx.focus == id && (ctx.input.mouseDown|ctx.input.mousePressed)&MouseLeft != 0 && base.W > 0 && high > low {
		v = low + float64(ctx.input.mousePos.X-base.X)*(high-low)/float64(base.W)
		if step != 0 {
			v = math.Round(v/step) * step
		}
	}
	v = clamp(v, low, high)
	*value = v

	var res Result
	if last != v {
		res |= ResultChange
	}

	ctx.drawControlFrame(id, base, ColorBase, o)
	w := ctx.style.ThumbSize
	x := 0
	if high > low {
		x = int((v - low) * float64(base.W-w) / (high - low))
	}
	thumb := Rect{X: base.X + x, Y: base.Y, W: w, H: base.H}
	ctx.drawControlFrame(id, thumb, ColorButton, o)
	ctx.drawControlText(strconv.FormatFloat(v, 'f', GetOpt(o, OptPrecision), 64), base, ColorText, o)
	return res
}

// Number draws a drag field: dragging horizontally changes value by step
// per pixel. Shift+click edits the value as text.
func (ctx *Context) Number(value *float64, step float64, opts ...Option) Result {
	o := applyOptions(opts).with(FlagAlignCenter)
	last := *value
	v := last
	id := ctx.widgetID(value, o)
	base := ctx.LayoutNext()

	if ctx.numberTextbox(&v, base, id, o) {
		return ResultActive
	}

	ctx.updateControl(id, base, o)
	if ctx.focus == id && ctx.input.MouseDown(MouseLeft) {
		v += float64(ctx.input.mouseDelta.X) * step
	}
	*value = v

	var res Result
	if last != v {
		res |= ResultChange
	}

	ctx.drawControlFrame(id, base, ColorBase, o)
	ctx.drawControlText(strconv.FormatFloat(v, 'f', GetOpt(o, OptPrecision), 64), base, ColorText, o)
	return res
}
