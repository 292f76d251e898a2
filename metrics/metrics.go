// Package metrics provides mui.FontMetrics implementations: pixel metrics
// backed by golang.org/x/image font faces, and terminal cell metrics
// backed by go-runewidth.
package metrics

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/go-theft-auto/mui"
)

// asciiFirst and asciiLast bound the advance cache.
const (
	asciiFirst = 32
	asciiLast  = 126
)

// Face measures text with a font.Face. Printable ASCII advances are
// cached at construction; other runes ask the face each time.
type Face struct {
	face     font.Face
	height   int
	ascent   int
	fallback int
	ascii    [asciiLast - asciiFirst + 1]int
}

// New wraps face.
func New(face font.Face) *Face {
	m := face.Metrics()
	f := &Face{
		face:   face,
		height: m.Height.Ceil(),
		ascent: m.Ascent.Ceil(),
	}
	if adv, ok := face.GlyphAdvance('?'); ok {
		f.fallback = adv.Ceil()
	}
	for r := rune(asciiFirst); r <= asciiLast; r++ {
		f.ascii[r-asciiFirst] = f.advance(r)
	}
	return f
}

// Default returns metrics for the built-in 7x13 bitmap face.
func Default() *Face {
	return New(basicfont.Face7x13)
}

// OpenType parses TrueType or OpenType data and returns metrics for it at
// size points (72 DPI, so points equal pixels).
func OpenType(data []byte, size float64) (*Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return New(face), nil
}

// GoRegular returns metrics for the Go Regular font at size pixels.
func GoRegular(size float64) (*Face, error) {
	return OpenType(goregular.TTF, size)
}

func (f *Face) advance(r rune) int {
	adv, ok := f.face.GlyphAdvance(r)
	if !ok {
		return f.fallback
	}
	return adv.Ceil()
}

// CharWidth implements mui.FontMetrics.
func (f *Face) CharWidth(_ mui.Font, r rune) int {
	if r >= asciiFirst && r <= asciiLast {
		return f.ascii[r-asciiFirst]
	}
	return f.advance(r)
}

// LineHeight implements mui.FontMetrics.
func (f *Face) LineHeight(mui.Font) int {
	return f.height
}

// Ascent returns the distance from the top of a line to its baseline.
func (f *Face) Ascent() int {
	return f.ascent
}

// Face returns the wrapped face, for rasterizing glyphs.
func (f *Face) Face() font.Face {
	return f.face
}

// Set holds one Face per mui.Font. Fonts without an entry use the first.
type Set []*Face

// Get returns the face for font.
func (s Set) Get(font mui.Font) *Face {
	if int(font) >= 0 && int(font) < len(s) {
		return s[font]
	}
	return s[0]
}

// CharWidth implements mui.FontMetrics.
func (s Set) CharWidth(font mui.Font, r rune) int {
	return s.Get(font).CharWidth(font, r)
}

// LineHeight implements mui.FontMetrics.
func (s Set) LineHeight(font mui.Font) int {
	return s.Get(font).LineHeight(font)
}
