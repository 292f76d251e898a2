package mui

import (
	"strings"
	"unicode/utf8"
)

// Font is an opaque font handle. The core never looks inside it; it only
// passes it to FontMetrics and stores it in text commands.
type Font int

// FontMetrics measures text for layout. Both methods are called per
// character and per widget, so they must be cheap and must not change
// their answers during a frame.
type FontMetrics interface {
	CharWidth(font Font, r rune) int
	LineHeight(font Font) int
}

// TextWidth returns the width of the widest line of s.
func (ctx *Context) TextWidth(font Font, s string) int {
	widest := 0
	for line := range strings.SplitSeq(s, "\n") {
		w := 0
		for len(line) > 0 {
			r, size := utf8.DecodeRuneInString(line)
			w += ctx.metrics.CharWidth(font, r)
			line = line[size:]
		}
		widest = max(widest, w)
	}
	return widest
}

// TextHeight returns the height of one line of text.
func (ctx *Context) TextHeight(font Font) int {
	return ctx.metrics.LineHeight(font)
}
