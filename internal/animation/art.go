package animation

import (
	"strings"
	"time"
)

// titleArt is the "binbreak" banner shown above the title menu.
var titleArt = []string{
	" ,,        ,,              ,,",
	"*MM        db             *MM      [a: toggle animation]     `7MM",
	" MM                        MM                                  MM",
	" MM,dMMb.`7MM  `7MMpMMMb.  MM,dMMb.`7Mb,od8 .gP\"Ya   ,6\"Yb.    MM  ,MP'",
	" MM    `Mb MM    MM    MM  MM    `Mb MM' \"',M'   Yb 8)   MM    MM ;Y",
	" MM     M8 MM    MM    MM  MM     M8 MM    8M\"\"\"\"\"\"  ,pm9MM    MM;Mm",
	" MM.   ,M9 MM    MM    MM  MM.   ,M9 MM    YM.    , 8M   MM    MM `Mb.",
	" P^YbmdP'.JMML..JMML  JMML.P^YbmdP'.JMML.   `Mbmmd' `Moo9^Yo..JMML. YA.",
}

// TitleArt returns the banner as one newline-separated string.
func TitleArt() string {
	return strings.Join(titleArt, "\n")
}

// Settings tunes the title animation.
type Settings struct {
	Frames        int           // Frames in one forward or backward sweep
	FrameDuration time.Duration // Duration of one frame
	EndPause      time.Duration // Hold after each sweep before the next cycle
	StripWidth    float64       // Half-width of the highlighted diagonal, in cells
	StartPaused   bool
}

// DefaultSettings returns the stock title animation timing.
func DefaultSettings() Settings {
	return Settings{
		Frames:        50,
		FrameDuration: 50 * time.Millisecond,
		EndPause:      2 * time.Second,
		StripWidth:    8,
	}
}

// NewTitle builds the title screen animation: a highlighted diagonal
// sweeps across the banner, flipping glyphs to binary digits on even
// cycles and back on odd ones.
func NewTitle(cfg Settings, opts ...Option) *Engine {
	if cfg.Frames <= 0 {
		cfg.Frames = DefaultSettings().Frames
	}
	if cfg.FrameDuration <= 0 {
		cfg.FrameDuration = DefaultSettings().FrameDuration
	}
	if cfg.StripWidth <= 0 {
		cfg.StripWidth = DefaultSettings().StripWidth
	}

	art := TitleArt()
	w, h := Measure(art)
	sweep := NewSweep(w, h, cfg.StripWidth)

	opts = append([]Option{
		WithCharFunc(BinaryReveal{Sweep: sweep}),
		WithEndPause(cfg.EndPause),
	}, opts...)

	e := New(art, cfg.Frames, cfg.FrameDuration, DiagonalHighlight{Sweep: sweep}, opts...)
	if cfg.StartPaused {
		e.Pause()
	}
	return e
}
