// Package config provides YAML (or TOML) configuration loading for binbreak:
// scoring rules, frame rate, title animation timing and storage locations.
package config

import (
	"time"

	"github.com/vovakirdan/binbreak/internal/animation"
	"github.com/vovakirdan/binbreak/internal/quiz"
)

// Config is the complete binbreak configuration.
type Config struct {
	Game       GameConfig      `yaml:"game" toml:"game"`
	Display    DisplayConfig   `yaml:"display" toml:"display"`
	Animation  AnimationConfig `yaml:"animation" toml:"animation"`
	HighScores HighScoreConfig `yaml:"highscores" toml:"highscores"`
	Database   DatabaseConfig  `yaml:"database" toml:"database"`
}

// GameConfig holds scoring and timing rules.
type GameConfig struct {
	MaxLives      uint32  `yaml:"max_lives" toml:"max_lives"`
	MinTime       float64 `yaml:"min_time" toml:"min_time"`             // Seconds
	StreakPenalty float64 `yaml:"streak_penalty" toml:"streak_penalty"` // Seconds per streak point
	BasePoints    uint32  `yaml:"base_points" toml:"base_points"`
	StreakBonus   uint32  `yaml:"streak_bonus" toml:"streak_bonus"`
	LifeEvery     uint32  `yaml:"life_every" toml:"life_every"`
}

// DisplayConfig controls the frame driver.
type DisplayConfig struct {
	FPS int `yaml:"fps" toml:"fps"`
}

// AnimationConfig controls the title screen animation.
type AnimationConfig struct {
	Frames      int     `yaml:"frames" toml:"frames"`
	FrameMS     int     `yaml:"frame_ms" toml:"frame_ms"`
	EndPauseMS  int     `yaml:"end_pause_ms" toml:"end_pause_ms"`
	StripWidth  float64 `yaml:"strip_width" toml:"strip_width"`
	StartPaused bool    `yaml:"start_paused" toml:"start_paused"`
}

// Backend names for HighScoreConfig.Backend.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// HighScoreConfig selects where high scores are kept.
type HighScoreConfig struct {
	Backend string `yaml:"backend" toml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path" toml:"path"`       // File backend location
}

// DatabaseConfig locates the SQLite database (scores backend and history).
type DatabaseConfig struct {
	Path string `yaml:"path" toml:"path"`
}

// Rules converts the game section into session rules.
func (g GameConfig) Rules() quiz.Rules {
	return quiz.Rules{
		StartLives:    3,
		MaxLives:      g.MaxLives,
		MinTime:       g.MinTime,
		StreakPenalty: g.StreakPenalty,
		BasePoints:    g.BasePoints,
		StreakBonus:   g.StreakBonus,
		LifeEvery:     g.LifeEvery,
	}
}

// Settings converts the animation section into engine settings.
func (a AnimationConfig) Settings() animation.Settings {
	return animation.Settings{
		Frames:        a.Frames,
		FrameDuration: time.Duration(a.FrameMS) * time.Millisecond,
		EndPause:      time.Duration(a.EndPauseMS) * time.Millisecond,
		StripWidth:    a.StripWidth,
		StartPaused:   a.StartPaused,
	}
}
