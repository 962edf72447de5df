package core

import "time"

// RuntimeConfig contains configuration passed to screens at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	FPS     int   // Target frames per second while something is animating
	Seed    int64 // RNG seed for reproducible puzzles
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     30,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// FramePeriod returns the target duration of one frame.
// Non-positive FPS falls back to 30.
func (c RuntimeConfig) FramePeriod() time.Duration {
	fps := c.FPS
	if fps <= 0 {
		fps = 30
	}
	return time.Second / time.Duration(fps)
}
