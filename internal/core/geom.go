// Package core provides fundamental types shared by the game and the platform.
// It contains no terminal dependencies (especially no Bubble Tea) so the quiz
// logic and the animation engine stay pure and testable.
package core

// Rect is an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X: r.X + n,
		Y: r.Y + n,
		W: Max(r.W-2*n, 0),
		H: Max(r.H-2*n, 0),
	}
}

// Centered returns a w×h rectangle centered inside r.
// The result may extend past r when r is too small.
func (r Rect) Centered(w, h int) Rect {
	return Rect{
		X: r.X + (r.W-w)/2,
		Y: r.Y + (r.H-h)/2,
		W: w,
		H: h,
	}
}

// SplitColumns divides r horizontally into n equal columns.
// The last column absorbs any remainder.
func (r Rect) SplitColumns(n int) []Rect {
	if n <= 0 {
		return nil
	}
	cols := make([]Rect, n)
	w := r.W / n
	for i := range cols {
		cols[i] = Rect{X: r.X + i*w, Y: r.Y, W: w, H: r.H}
	}
	cols[n-1].W = r.Right() - cols[n-1].X
	return cols
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
