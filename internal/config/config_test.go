package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode("binbreak.yaml", DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v\nwant %+v", cfg, Default())
	}
}

func TestLoadWithoutFilesUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".binbreak")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("display:\n  fps: 60\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Display.FPS != 60 {
		t.Errorf("FPS = %d, want 60 from user config", cfg.Display.FPS)
	}
}

func TestLoadPartialYAMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, "custom.yaml", `
game:
  max_lives: 5
  streak_penalty: 1.0
highscores:
  backend: SQLite
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}

	if cfg.Game.MaxLives != 5 {
		t.Errorf("MaxLives = %d, want 5", cfg.Game.MaxLives)
	}
	if cfg.Game.StreakPenalty != 1.0 {
		t.Errorf("StreakPenalty = %v, want 1.0", cfg.Game.StreakPenalty)
	}
	if cfg.Game.BasePoints != 10 {
		t.Errorf("BasePoints = %d, want default 10", cfg.Game.BasePoints)
	}
	if cfg.HighScores.Backend != BackendSQLite {
		t.Errorf("Backend = %q, want sqlite", cfg.HighScores.Backend)
	}
	if cfg.Animation.Frames != 50 {
		t.Errorf("Frames = %d, want default 50", cfg.Animation.Frames)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "custom.toml", `
[display]
fps = 20

[animation]
start_paused = true
end_pause_ms = 500
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}
	if cfg.Display.FPS != 20 {
		t.Errorf("FPS = %d, want 20", cfg.Display.FPS)
	}
	if !cfg.Animation.StartPaused {
		t.Error("StartPaused = false, want true")
	}
	if cfg.Animation.EndPauseMS != 500 {
		t.Errorf("EndPauseMS = %d, want 500", cfg.Animation.EndPauseMS)
	}
	if cfg.Game.MaxLives != 3 {
		t.Errorf("MaxLives = %d, want default 3", cfg.Game.MaxLives)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml")},
		{"invalid yaml", writeFile(t, "bad.yaml", "game: [unclosed")},
		{"invalid toml", writeFile(t, "bad.toml", "[display\nfps = ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.HasPrefix(err.Error(), "config:") {
				t.Errorf("error %q should carry the package prefix", err)
			}
			if cfg != Default() {
				t.Error("a failed load should still return defaults")
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	cfg := Config{}
	cfg.Game.StreakPenalty = -1
	cfg.Animation.EndPauseMS = -5
	cfg.HighScores.Backend = "postgres"

	got := cfg.normalize()
	def := Default()

	if got.Game.MaxLives != def.Game.MaxLives {
		t.Errorf("MaxLives = %d, want %d", got.Game.MaxLives, def.Game.MaxLives)
	}
	if got.Game.StreakPenalty != 0 {
		t.Errorf("StreakPenalty = %v, want 0", got.Game.StreakPenalty)
	}
	if got.Display.FPS != 30 {
		t.Errorf("FPS = %d, want 30", got.Display.FPS)
	}
	if got.Animation.EndPauseMS != 0 {
		t.Errorf("EndPauseMS = %d, want 0", got.Animation.EndPauseMS)
	}
	if got.HighScores.Backend != BackendFile {
		t.Errorf("Backend = %q, want file", got.HighScores.Backend)
	}
	if got.Database.Path != def.Database.Path {
		t.Errorf("Database.Path = %q, want %q", got.Database.Path, def.Database.Path)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~/.binbreak/x.db", filepath.Join(home, ".binbreak/x.db")},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConversions(t *testing.T) {
	cfg := Default()

	rules := cfg.Game.Rules()
	if rules.MaxLives != 3 || rules.MinTime != 5 || rules.BasePoints != 10 || rules.LifeEvery != 5 {
		t.Errorf("Rules() = %+v", rules)
	}

	s := cfg.Animation.Settings()
	if s.Frames != 50 || s.FrameDuration != 50*time.Millisecond || s.EndPause != 2*time.Second {
		t.Errorf("Settings() = %+v", s)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		in       string
		want     DifficultyPreset
		maxLives uint32
	}{
		{"", DifficultyNormal, 3},
		{"Easy", DifficultyEasy, 5},
		{"normal", DifficultyNormal, 3},
		{"hard", DifficultyHard, 2},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParsePreset(tt.in)
			if err != nil {
				t.Fatalf("ParsePreset(%q) error: %v", tt.in, err)
			}
			if p != tt.want {
				t.Errorf("ParsePreset(%q) = %q, want %q", tt.in, p, tt.want)
			}

			cfg := Default()
			ApplyPreset(&cfg, p)
			if cfg.Game.MaxLives != tt.maxLives {
				t.Errorf("MaxLives = %d, want %d", cfg.Game.MaxLives, tt.maxLives)
			}
		})
	}

	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	cfg, err := decode("out.yaml", data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg != Default() {
		t.Errorf("round trip = %+v, want defaults", cfg)
	}
}
