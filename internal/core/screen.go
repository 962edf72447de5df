package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// widthCond measures ambiguous-width glyphs (♥, ·, ») as one column
// regardless of the user's locale.
var widthCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Screen is a 2D buffer of colored character cells.
// It decouples drawing from the terminal: screens draw runes and colors,
// the platform converts the buffer to styled output.
//
// A Screen returned by Sub is a clipped window onto its parent's cells;
// coordinates passed to it are relative to the window's top-left corner.
type Screen struct {
	width  int
	height int
	ox, oy int // offset into cells (non-zero for sub-regions)
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen area in local coordinates.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the screen dimensions, preserving content where possible.
// Only meaningful on a root screen; sub-regions keep their original window.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	if s.ox != 0 || s.oy != 0 {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = Max(width, 0)
	s.height = Max(height, 0)
	s.allocate()
	s.Clear()

	copyW := Min(oldW, s.width)
	copyH := Min(oldH, s.height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Sub returns a window onto the rectangle r (in local coordinates),
// clipped to this screen. Writes through the window land in the parent.
func (s *Screen) Sub(r Rect) *Screen {
	x0 := Clamp(r.X, 0, s.width)
	y0 := Clamp(r.Y, 0, s.height)
	x1 := Clamp(r.Right(), x0, s.width)
	y1 := Clamp(r.Bottom(), y0, s.height)

	return &Screen{
		width:  x1 - x0,
		height: y1 - y0,
		ox:     s.ox + x0,
		oy:     s.oy + y0,
		cells:  s.cells,
	}
}

// Clear fills the entire screen with blank default-colored cells.
func (s *Screen) Clear() {
	s.FillCell(blankCell)
}

// Fill fills the entire screen with the given rune, keeping colors.
func (s *Screen) Fill(r rune) {
	for y := 0; y < s.height; y++ {
		row := s.cells[s.oy+y]
		for x := 0; x < s.width; x++ {
			row[s.ox+x].Rune = r
		}
	}
}

// FillCell fills the entire screen with the given cell.
func (s *Screen) FillCell(c Cell) {
	for y := 0; y < s.height; y++ {
		row := s.cells[s.oy+y]
		for x := 0; x < s.width; x++ {
			row[s.ox+x] = c
		}
	}
}

// Set places a rune at the given position, keeping the cell color.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[s.oy+y][s.ox+x].Rune = r
}

// SetCell places a rune with a color at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, r rune, c Color) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[s.oy+y][s.ox+x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.cells[s.oy+y][s.ox+x]
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// TextWidth returns the number of columns text occupies on screen.
func TextWidth(text string) int {
	return widthCond.StringWidth(text)
}

// DrawText writes a string horizontally starting at (x, y) in the given color.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	col := x
	for _, r := range text {
		s.SetCell(col, y, r, c)
		w := widthCond.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		col += w
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	x := (s.width - TextWidth(text)) / 2
	s.DrawText(x, y, text, c)
}

// DrawRect fills a rectangular area with the given rune and color.
func (s *Screen) DrawRect(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, fill, c)
		}
	}
}

// BorderStyle selects the box-drawing characters used by DrawBox.
type BorderStyle int

const (
	BorderSingle BorderStyle = iota
	BorderDouble
)

type borderRunes struct {
	tl, tr, bl, br, h, v rune
}

var borders = map[BorderStyle]borderRunes{
	BorderSingle: {'┌', '┐', '└', '┘', '─', '│'},
	BorderDouble: {'╔', '╗', '╚', '╝', '═', '║'},
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, style BorderStyle, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	b := borders[style]

	s.SetCell(r.X, r.Y, b.tl, c)
	s.SetCell(r.Right()-1, r.Y, b.tr, c)
	s.SetCell(r.X, r.Bottom()-1, b.bl, c)
	s.SetCell(r.Right()-1, r.Bottom()-1, b.br, c)

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetCell(x, r.Y, b.h, c)
		s.SetCell(x, r.Bottom()-1, b.h, c)
	}

	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetCell(r.X, y, b.v, c)
		s.SetCell(r.Right()-1, y, b.v, c)
	}
}

// DrawTitledBox draws a single-line box with a title centered in its top edge.
func (s *Screen) DrawTitledBox(r Rect, title string, border, titleColor Color) {
	s.DrawBox(r, BorderSingle, border)
	if title == "" {
		return
	}
	x := r.X + (r.W-TextWidth(title))/2
	s.DrawText(x, r.Y, title, titleColor)
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetCell(x+i, y, r, c)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (s *Screen) DrawVLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetCell(x, y+i, r, c)
	}
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	row := s.cells[s.oy+y]
	for x := 0; x < s.width; x++ {
		sb.WriteRune(row[s.ox+x].Rune)
	}
	return sb.String()
}
