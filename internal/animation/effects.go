package animation

import (
	"math"

	"github.com/vovakirdan/binbreak/internal/core"
)

// Sweep is a diagonal band travelling from the top-left corner of a
// width×height area to past its bottom-right corner as progress goes
// from 0 to 1. Cells are ordered along the band by x+y.
type Sweep struct {
	StripWidth float64
	start      float64
	span       float64
}

// NewSweep creates a sweep that fully enters and leaves the area.
func NewSweep(width, height int, stripWidth float64) Sweep {
	start := -stripWidth
	end := float64(width+height) + stripWidth
	return Sweep{StripWidth: stripWidth, start: start, span: end - start}
}

// Offset returns the diagonal position of the band's center.
func (s Sweep) Offset(progress float64) float64 {
	return s.start + progress*s.span
}

// Passed reports whether the band's center has moved beyond (x, y).
func (s Sweep) Passed(x, y int, progress float64) bool {
	return float64(x+y) < s.Offset(progress)
}

// Within reports whether (x, y) lies inside the band.
func (s Sweep) Within(x, y int, progress float64) bool {
	return math.Abs(float64(x+y)-s.Offset(progress)) < s.StripWidth
}

// DiagonalHighlight paints cells inside the sweep with the highlight color
// and everything else dark gray.
type DiagonalHighlight struct {
	Sweep Sweep
}

// Color implements ColorFunc.
func (d DiagonalHighlight) Color(x, y int, progress float64, _ int, highlight core.Color) core.Color {
	if d.Sweep.Within(x, y, progress) {
		return highlight
	}
	return core.ColorDarkGray
}

// BinaryReveal flips each glyph to a fixed binary digit once the sweep has
// passed it on even cycles, and flips it back on odd cycles.
type BinaryReveal struct {
	Sweep Sweep
}

// Char implements CharFunc.
func (b BinaryReveal) Char(x, y int, progress float64, cycle int, original rune) rune {
	passed := b.Sweep.Passed(x, y, progress)
	forward := cycle%2 == 0
	if passed == forward {
		return BinaryDigit(x, y)
	}
	return original
}

// BinaryDigit returns '0' or '1' for a cell, stable across frames.
func BinaryDigit(x, y int) rune {
	h := uint64(x) * 2654435761
	h ^= uint64(y) * 2246822519
	h *= 668265263
	h ^= h >> 15

	b := h * 1597334677
	b ^= b >> 16
	if b&1 == 0 {
		return '0'
	}
	return '1'
}
