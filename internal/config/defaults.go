package config

import (
	_ "embed"
)

//go:embed defaults/binbreak.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			MaxLives:      3,
			MinTime:       5.0,
			StreakPenalty: 0.5,
			BasePoints:    10,
			StreakBonus:   2,
			LifeEvery:     5,
		},
		Display: DisplayConfig{
			FPS: 30,
		},
		Animation: AnimationConfig{
			Frames:     50,
			FrameMS:    50,
			EndPauseMS: 2000,
			StripWidth: 8,
		},
		HighScores: HighScoreConfig{
			Backend: BackendFile,
			Path:    "~/.binbreak/highscores.txt",
		},
		Database: DatabaseConfig{
			Path: "~/.binbreak/binbreak.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
