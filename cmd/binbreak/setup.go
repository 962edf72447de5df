package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/binbreak/internal/config"
	"github.com/vovakirdan/binbreak/internal/core"
	"github.com/vovakirdan/binbreak/internal/highscore"
	"github.com/vovakirdan/binbreak/internal/platform/tui"
	"github.com/vovakirdan/binbreak/internal/storage"
)

// loadConfig reads the config file and applies the global flags on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	if flagDBPath != "" {
		cfg.Database.Path = flagDBPath
	}
	if flagScoresPath != "" {
		cfg.HighScores.Path = flagScoresPath
	}
	switch flagBackend {
	case "":
	case config.BackendFile, config.BackendSQLite:
		cfg.HighScores.Backend = flagBackend
	default:
		return cfg, fmt.Errorf("unknown backend %q (want file or sqlite)", flagBackend)
	}
	return cfg, nil
}

// newLogger writes to path, or discards everything when it cannot be opened.
// Interactive screens own the terminal, so logs never go to stderr.
func newLogger(path string) (*log.Logger, io.Closer) {
	if path == "" {
		if dir := config.UserDir(); dir != "" {
			path = filepath.Join(dir, "binbreak.log")
		}
	}

	var (
		w      io.Writer = io.Discard
		closer io.Closer = io.NopCloser(nil)
	)
	if path != "" {
		path = config.ExpandPath(path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				w, closer = f, f
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "binbreak",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer
}

// stores holds the opened persistence backends.
type stores struct {
	scores highscore.Store
	db     *storage.Store // nil when the database could not be opened
}

func (s stores) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// openStores opens the game history database and the high-score backend.
// A broken database only disables history, unless it is also the
// high-score backend.
func openStores(cfg config.Config, logger *log.Logger) (stores, error) {
	var st stores

	db, err := storage.Open(cfg.Database.Path)
	if err != nil {
		logger.Warn("could not open game database", "path", cfg.Database.Path, "error", err)
	} else {
		st.db = db
	}

	switch cfg.HighScores.Backend {
	case config.BackendSQLite:
		if st.db == nil {
			return st, fmt.Errorf("sqlite high scores need the database: %w", err)
		}
		st.scores = st.db
	default:
		st.scores = highscore.NewFileStore(config.ExpandPath(cfg.HighScores.Path))
	}
	return st, nil
}

// appOptions builds the options shared by local and SSH play.
func appOptions(cfg config.Config, st stores, logger *log.Logger) tui.Options {
	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW: 80,
			ScreenH: 24,
			FPS:     cfg.Display.FPS,
			Seed:    flagSeed,
		},
		Rules:     cfg.Game.Rules(),
		Animation: cfg.Animation.Settings(),
		Scores:    st.scores,
		Logger:    logger,
	}
	if st.db != nil {
		opts.History = st.db
	}
	if dir := config.UserDir(); dir != "" {
		opts.ScreenshotDir = filepath.Join(dir, "screenshots")
	}
	return opts
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// runInteractive starts the local program with the given options tweak.
func runInteractive(setup func(*tui.Options)) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer := newLogger(flagLogFile)
	defer closer.Close()

	st, err := openStores(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn("closing database", "error", cerr)
		}
	}()

	opts := appOptions(cfg, st, logger)
	opts.Runtime.ScreenW, opts.Runtime.ScreenH = terminalSize()
	if setup != nil {
		setup(&opts)
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
