package metrics

import (
	"github.com/mattn/go-runewidth"

	"github.com/go-theft-auto/mui"
)

// Cells measures text in terminal cells: a line is one cell high and a
// rune is as wide as the terminal displays it.
type Cells struct {
	cond *runewidth.Condition
}

// NewCells returns cell metrics. eastAsian selects the wide rendering of
// ambiguous-width characters that CJK locales use.
func NewCells(eastAsian bool) Cells {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = eastAsian
	return Cells{cond: cond}
}

// CharWidth implements mui.FontMetrics. Zero-width runes still take a
// cell.
func (c Cells) CharWidth(_ mui.Font, r rune) int {
	var w int
	if c.cond != nil {
		w = c.cond.RuneWidth(r)
	} else {
		w = runewidth.RuneWidth(r)
	}
	return max(w, 1)
}

// LineHeight implements mui.FontMetrics.
func (Cells) LineHeight(mui.Font) int {
	return 1
}
