package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
// Search order: customPath -> ~/.binbreak/config.yaml -> ./configs/binbreak.yaml -> embedded default.
// Keys missing from a file keep their default values. Only an explicitly
// requested file is allowed to fail; broken discovered files are skipped.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(ExpandPath(customPath))
		if err != nil {
			return Default(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg.normalize(), nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(path, data); err == nil {
			return cfg.normalize(), nil
		}
	}

	cfg, err := decode("binbreak.yaml", defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.normalize(), nil
}

// searchPaths lists the discovered config locations in priority order.
func searchPaths() []string {
	var paths []string
	if dir := UserDir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "config.yaml"), filepath.Join(dir, "config.toml"))
	}
	return append(paths, filepath.Join("configs", "binbreak.yaml"))
}

// decode parses data on top of the defaults, as TOML when path ends in
// .toml and as YAML otherwise.
func decode(path string, data []byte) (Config, error) {
	cfg := Default()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// normalize replaces nonsensical values with defaults.
func (c Config) normalize() Config {
	def := Default()
	if c.Game.MaxLives == 0 {
		c.Game.MaxLives = def.Game.MaxLives
	}
	if c.Game.MinTime <= 0 {
		c.Game.MinTime = def.Game.MinTime
	}
	if c.Game.StreakPenalty < 0 {
		c.Game.StreakPenalty = 0
	}
	if c.Display.FPS <= 0 {
		c.Display.FPS = def.Display.FPS
	}
	if c.Animation.Frames <= 0 {
		c.Animation.Frames = def.Animation.Frames
	}
	if c.Animation.FrameMS <= 0 {
		c.Animation.FrameMS = def.Animation.FrameMS
	}
	if c.Animation.EndPauseMS < 0 {
		c.Animation.EndPauseMS = 0
	}
	if c.Animation.StripWidth <= 0 {
		c.Animation.StripWidth = def.Animation.StripWidth
	}
	c.HighScores.Backend = strings.ToLower(strings.TrimSpace(c.HighScores.Backend))
	if c.HighScores.Backend != BackendSQLite {
		c.HighScores.Backend = BackendFile
	}
	if c.HighScores.Path == "" {
		c.HighScores.Path = def.HighScores.Path
	}
	if c.Database.Path == "" {
		c.Database.Path = def.Database.Path
	}
	return c
}

// UserDir returns ~/.binbreak, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".binbreak")
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// Marshal renders cfg as YAML, used by `binbreak config`.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return buf.Bytes(), nil
}
