// Package highscore keeps the best score per BitMode.
// Persistence is abstracted behind Store so the session never sees files
// or databases; the Table is what the game reads and updates.
package highscore

import (
	"io"
	"maps"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/binbreak/internal/bitmode"
)

// Scores maps a mode's high-score key to its best score.
// Missing keys mean 0.
type Scores map[bitmode.Key]uint32

// Clone returns an independent copy.
func (s Scores) Clone() Scores {
	out := make(Scores, len(s))
	maps.Copy(out, s)
	return out
}

// Merge raises every score in s to at least the one in other.
func (s Scores) Merge(other Scores) {
	for k, v := range other {
		s[k] = max(s[k], v)
	}
}

// Store loads and saves the complete score mapping.
// Save never lowers a stored score: several tables may share one store.
type Store interface {
	Load() (Scores, error)
	Save(Scores) error
}

// Table is the in-memory view of the high scores for one game session.
// Load failures fall back to an empty table and save failures are logged
// and ignored: the worst case is a score that is not remembered.
type Table struct {
	store  Store
	scores Scores
	logger *log.Logger
}

// Open loads the scores from store. A nil store gives a memory-only table.
func Open(store Store, logger *log.Logger) *Table {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	t := &Table{store: store, scores: Scores{}, logger: logger}
	if store == nil {
		return t
	}

	scores, err := store.Load()
	if err != nil {
		logger.Warn("could not load high scores, starting empty", "error", err)
		return t
	}
	if scores != nil {
		t.scores = scores
	}
	return t
}

// Get returns the best score for key, or 0.
func (t *Table) Get(key bitmode.Key) uint32 {
	return t.scores[key]
}

// Update sets the best score for key. It does not persist.
func (t *Table) Update(key bitmode.Key, score uint32) {
	t.scores[key] = score
}

// Persist saves the table. Errors are logged and returned for callers
// that care; the game ignores them.
func (t *Table) Persist() error {
	if t.store == nil {
		return nil
	}
	if err := t.store.Save(t.scores.Clone()); err != nil {
		t.logger.Warn("could not save high scores", "error", err)
		return err
	}
	return nil
}

// Snapshot returns a copy of every stored score.
func (t *Table) Snapshot() Scores {
	return t.scores.Clone()
}

// MemoryStore keeps scores in process memory.
// It is used when persistence is disabled and by tests.
type MemoryStore struct {
	mu      sync.Mutex
	scores  Scores
	LoadErr error
	SaveErr error
	Saves   int
}

// NewMemoryStore returns a store seeded with initial (may be nil).
func NewMemoryStore(initial Scores) *MemoryStore {
	if initial == nil {
		initial = Scores{}
	}
	return &MemoryStore{scores: initial.Clone()}
}

// Load returns a copy of the stored scores.
func (m *MemoryStore) Load() (Scores, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.scores.Clone(), nil
}

// Save merges s into the stored scores, keeping the higher value per key.
func (m *MemoryStore) Save(s Scores) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.scores.Merge(s)
	return nil
}
