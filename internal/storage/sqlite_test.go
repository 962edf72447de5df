package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/binbreak/internal/bitmode"
	"github.com/vovakirdan/binbreak/internal/highscore"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestHighScoresRoundTrip(t *testing.T) {
	store := openTestStore(t)

	scores, err := store.Load()
	if err != nil {
		t.Fatalf("Load() on empty db failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("empty db should have no scores, got %v", scores)
	}

	want := highscore.Scores{4: 120, 42: 30, 16: 999}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	// Overwrite one key, leave the others.
	if err := store.Save(highscore.Scores{4: 150}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	want[4] = 150

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("Load() = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("score[%d] = %d, want %d", k, got[k], v)
		}
	}
}

func TestHighScoresThroughTable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	table := highscore.Open(store, nil)
	table.Update(bitmode.Eight.HighScoreKey, 64)
	if err := table.Persist(); err != nil {
		t.Fatalf("Persist() failed: %v", err)
	}
	store.Close()

	// Reopen to check the score survived.
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if got := highscore.Open(store, nil).Get(bitmode.Eight.HighScoreKey); got != 64 {
		t.Errorf("reloaded score = %d, want 64", got)
	}
}

func TestHighScoresNeverLowered(t *testing.T) {
	store := openTestStore(t)

	a := highscore.Open(store, nil)
	b := highscore.Open(store, nil)

	b.Update(bitmode.Four.HighScoreKey, 500)
	if err := b.Persist(); err != nil {
		t.Fatalf("Persist() failed: %v", err)
	}
	// a still holds the stale zero for the four-bit key.
	a.Update(bitmode.Eight.HighScoreKey, 10)
	if err := a.Persist(); err != nil {
		t.Fatalf("Persist() failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got[bitmode.Four.HighScoreKey] != 500 || got[bitmode.Eight.HighScoreKey] != 10 {
		t.Errorf("Load() = %v, want four-bit 500 and eight-bit 10", got)
	}
}

func TestStoreSaveAndRetrieveGames(t *testing.T) {
	store := openTestStore(t)

	for _, g := range []struct {
		mode   bitmode.Mode
		score  uint32
		rounds uint32
	}{
		{bitmode.Four, 100, 10},
		{bitmode.Four, 50, 6},
		{bitmode.Four, 200, 15},
		{bitmode.Sixteen, 500, 30},
	} {
		if _, err := store.SaveGame(g.mode, g.score, g.rounds, 3); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	games, err := store.TopGames(bitmode.Four.HighScoreKey, 10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}

	if len(games) != 3 {
		t.Fatalf("Expected 3 games, got %d", len(games))
	}

	// Should be sorted descending
	wantScores := []uint32{200, 100, 50}
	for i, want := range wantScores {
		if games[i].Score != want {
			t.Errorf("games[%d].Score = %d, want %d", i, games[i].Score, want)
		}
	}
	if games[0].ModeID != bitmode.Four.ID || games[0].ModeKey != bitmode.Four.HighScoreKey {
		t.Errorf("games[0] mode = %s/%d", games[0].ModeID, games[0].ModeKey)
	}
	if games[0].Rounds != 15 || games[0].MaxStreak != 3 {
		t.Errorf("games[0] rounds/streak = %d/%d, want 15/3", games[0].Rounds, games[0].MaxStreak)
	}
	if games[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	word, err := store.TopGames(bitmode.Sixteen.HighScoreKey, 10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(word) != 1 || word[0].Score != 500 {
		t.Errorf("word games = %+v, want one game of 500", word)
	}
}

func TestTopGamesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := uint32(0); i < 20; i++ {
		if _, err := store.SaveGame(bitmode.Eight, i*10, i, 0); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	games, err := store.TopGames(bitmode.Eight.HighScoreKey, 5)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(games) != 5 {
		t.Errorf("Expected 5 games with limit, got %d", len(games))
	}
	if games[0].Score != 190 {
		t.Errorf("best game = %d, want 190", games[0].Score)
	}

	// Non-positive limit falls back to 10.
	games, err = store.TopGames(bitmode.Eight.HighScoreKey, 0)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}
	if len(games) != 10 {
		t.Errorf("default limit returned %d games, want 10", len(games))
	}
}

func TestHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)
	key := bitmode.Twelve.HighScoreKey

	hs, err := store.HighScore(key)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("Expected 0 for no games, got %d", hs)
	}

	stats, err := store.GetModeStats(key)
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveGame(bitmode.Twelve, 100, 5, 2)
	store.SaveGame(bitmode.Twelve, 300, 9, 7)

	hs, _ = store.HighScore(key)
	if hs != 300 {
		t.Errorf("HighScore() = %d, want 300", hs)
	}

	stats, err = store.GetModeStats(key)
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.BestStreak != 7 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestClearGamesKeepsHighScore(t *testing.T) {
	store := openTestStore(t)

	store.SaveGame(bitmode.Four, 100, 1, 1)
	store.Save(highscore.Scores{4: 100})

	if err := store.ClearGames(bitmode.Four.HighScoreKey); err != nil {
		t.Fatalf("ClearGames() failed: %v", err)
	}

	games, _ := store.TopGames(bitmode.Four.HighScoreKey, 10)
	if len(games) != 0 {
		t.Errorf("Expected no games after clear, got %d", len(games))
	}
	scores, _ := store.Load()
	if scores[4] != 100 {
		t.Errorf("high score should survive ClearGames, got %d", scores[4])
	}
}

func TestExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.binbreak/test.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".binbreak", "test.db")); err != nil {
		t.Errorf("database should be created under home: %v", err)
	}
}
