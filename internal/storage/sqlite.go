// Package storage provides SQLite-based persistence for high scores and
// finished-game history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/binbreak/internal/bitmode"
	"github.com/vovakirdan/binbreak/internal/highscore"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished game.
type GameRecord struct {
	ID        int64
	ModeKey   bitmode.Key
	ModeID    string
	Score     uint32
	Rounds    uint32
	MaxStreak uint32
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			mode_key INTEGER PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode_key INTEGER NOT NULL,
			mode_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			rounds INTEGER NOT NULL DEFAULT 0,
			max_streak INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_mode ON games(mode_key);
		CREATE INDEX IF NOT EXISTS idx_games_top ON games(mode_key, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load implements highscore.Store.
func (s *Store) Load() (highscore.Scores, error) {
	rows, err := s.db.Query("SELECT mode_key, score FROM high_scores")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	scores := highscore.Scores{}
	for rows.Next() {
		var key, score int64
		if err := rows.Scan(&key, &score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if key < 0 || score < 0 {
			continue
		}
		scores[bitmode.Key(key)] = uint32(score)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return scores, nil
}

// Save implements highscore.Store. Every key in scores is upserted in one
// transaction and only ever raised; keys absent from scores are left alone.
func (s *Store) Save(scores highscore.Scores) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	for key, score := range scores {
		_, err := tx.Exec(
			`INSERT INTO high_scores (mode_key, score, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			 ON CONFLICT(mode_key) DO UPDATE SET score = MAX(score, excluded.score),
			     updated_at = CASE WHEN excluded.score > score THEN excluded.updated_at ELSE updated_at END`,
			int64(key), int64(score),
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save high score for %d: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit high scores: %w", err)
	}
	return nil
}

var _ highscore.Store = (*Store)(nil)

// SaveGame records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveGame(mode bitmode.Mode, score, rounds, maxStreak uint32) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO games (mode_key, mode_id, score, rounds, max_streak) VALUES (?, ?, ?, ?, ?)",
		int64(mode.HighScoreKey), mode.ID, int64(score), int64(rounds), int64(maxStreak),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopGames retrieves the best N games for the given mode.
// Results are ordered by score descending, then oldest first.
func (s *Store) TopGames(key bitmode.Key, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode_key, mode_id, score, rounds, max_streak, created_at
		 FROM games
		 WHERE mode_key = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		int64(key), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var r GameRecord
		var key int64
		var createdAt any
		if err := rows.Scan(&r.ID, &key, &r.ModeID, &r.Score, &r.Rounds, &r.MaxStreak, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.ModeKey = bitmode.Key(key)
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// HighScore returns the best recorded game score for the given mode.
// Returns 0 if no games exist.
func (s *Store) HighScore(key bitmode.Key) (uint32, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM games WHERE mode_key = ?",
		int64(key),
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return uint32(score.Int64), nil
}

// ClearGames deletes the history of the given mode. The high score is kept.
func (s *Store) ClearGames(key bitmode.Key) error {
	_, err := s.db.Exec("DELETE FROM games WHERE mode_key = ?", int64(key))
	if err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}

// ModeStats contains aggregated statistics for a mode.
type ModeStats struct {
	ModeKey    bitmode.Key
	GamesCount int
	HighScore  uint32
	AvgScore   float64
	BestStreak uint32
	LastPlayed time.Time
}

// GetModeStats retrieves aggregated statistics for a specific mode.
func (s *Store) GetModeStats(key bitmode.Key) (*ModeStats, error) {
	stats := &ModeStats{ModeKey: key}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(MAX(max_streak), 0)
		 FROM games WHERE mode_key = ?`,
		int64(key),
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.BestStreak)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM games WHERE mode_key = ? ORDER BY id DESC LIMIT 1`,
		int64(key),
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
