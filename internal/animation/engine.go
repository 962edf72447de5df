// Package animation renders procedural ASCII-art animations.
//
// Nothing is precomputed: every Render derives each cell's color and
// glyph from the elapsed wall-clock time, so an animation costs one
// small struct regardless of its length.
package animation

import (
	"strings"
	"time"

	"github.com/vovakirdan/binbreak/internal/core"
)

// ColorFunc picks the color of the art cell at (x, y).
// progress is the fraction of the current sweep in [0, 1] and cycle
// counts completed sweep+pause periods.
type ColorFunc interface {
	Color(x, y int, progress float64, cycle int, highlight core.Color) core.Color
}

// CharFunc optionally substitutes the glyph of the art cell at (x, y).
type CharFunc interface {
	Char(x, y int, progress float64, cycle int, original rune) rune
}

// Option configures an Engine.
type Option func(*Engine)

// WithCharFunc enables glyph substitution.
func WithCharFunc(f CharFunc) Option {
	return func(e *Engine) { e.char = f }
}

// WithEndPause holds the final frame for d after every sweep.
func WithEndPause(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.endPause = d
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithHighlight sets the initial highlight color.
func WithHighlight(c core.Color) Option {
	return func(e *Engine) { e.highlight = c }
}

// Engine is a looping procedural animation over static ASCII art.
type Engine struct {
	art    [][]rune
	width  int
	height int

	frames        int
	frameDuration time.Duration
	endPause      time.Duration

	color ColorFunc
	char  CharFunc // nil: glyphs are never substituted

	now           func() time.Time
	start         time.Time
	paused        bool
	pausedElapsed time.Duration

	highlight core.Color
}

// New creates an animation over art that sweeps once every
// frames*frameDuration. It starts running immediately.
func New(art string, frames int, frameDuration time.Duration, color ColorFunc, opts ...Option) *Engine {
	e := &Engine{
		frames:        max(frames, 1),
		frameDuration: frameDuration,
		color:         color,
		now:           time.Now,
		highlight:     core.ColorBrightWhite,
	}
	for _, opt := range opts {
		opt(e)
	}

	for _, line := range strings.Split(art, "\n") {
		e.art = append(e.art, []rune(line))
	}
	e.width, e.height = Measure(art)
	e.start = e.now()
	return e
}

// Measure returns the width and height of art in cells.
func Measure(art string) (width, height int) {
	lines := strings.Split(art, "\n")
	for _, line := range lines {
		width = max(width, core.TextWidth(line))
	}
	return width, len(lines)
}

// Width returns the art width in cells.
func (e *Engine) Width() int { return e.width }

// Height returns the art height in rows.
func (e *Engine) Height() int { return e.height }

// Highlight returns the current highlight color.
func (e *Engine) Highlight() core.Color { return e.highlight }

// SetHighlight changes the color handed to the ColorFunc.
func (e *Engine) SetHighlight(c core.Color) { e.highlight = c }

func (e *Engine) sweepDuration() time.Duration {
	return time.Duration(e.frames) * e.frameDuration
}

func (e *Engine) elapsed() time.Duration {
	if e.paused {
		return e.pausedElapsed
	}
	return e.now().Sub(e.start)
}

// Progress returns the sweep fraction and the cycle index at the current
// instant. During the end pause progress stays at 1.
func (e *Engine) Progress() (progress float64, cycle int) {
	sweep := e.sweepDuration()
	period := sweep + e.endPause
	if sweep <= 0 || period <= 0 {
		return 1, 0
	}

	elapsed := max(e.elapsed(), 0)
	cycle = int(elapsed / period)
	within := elapsed % period
	progress = min(float64(within)/float64(sweep), 1)
	return progress, cycle
}

// Paused reports whether the animation is frozen.
func (e *Engine) Paused() bool { return e.paused }

// Pause freezes the animation at the current instant.
func (e *Engine) Pause() {
	if e.paused {
		return
	}
	e.pausedElapsed = e.elapsed()
	e.paused = true
}

// Resume continues from exactly where Pause froze the animation.
func (e *Engine) Resume() {
	if !e.paused {
		return
	}
	e.start = e.now().Add(-e.pausedElapsed)
	e.paused = false
}

// Toggle pauses a running animation and resumes a paused one.
func (e *Engine) Toggle() {
	if e.paused {
		e.Resume()
	} else {
		e.Pause()
	}
}

// Render draws the current frame with its top-left corner at (0, 0) of s.
// Blank cells of the art are skipped so whatever is beneath shows through.
func (e *Engine) Render(s *core.Screen) {
	progress, cycle := e.Progress()

	for y, row := range e.art {
		for x, ch := range row {
			if ch == ' ' {
				continue
			}
			glyph := ch
			if e.char != nil {
				glyph = e.char.Char(x, y, progress, cycle, ch)
			}
			s.SetCell(x, y, glyph, e.color.Color(x, y, progress, cycle, e.highlight))
		}
	}
}
