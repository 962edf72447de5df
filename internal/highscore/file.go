package highscore

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/ini.v1"

	"github.com/vovakirdan/binbreak/internal/bitmode"
)

// FileStore persists scores as flat key=value lines, one per mode key:
//
//	4=120
//	42=0
//	...
//
// A missing file loads as empty. Malformed lines are skipped.
type FileStore struct {
	path string
	mu   sync.Mutex // serializes SSH sessions sharing one file
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the score file.
func (f *FileStore) Load() (Scores, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Scores{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot read %s: %w", f.path, err)
	}
	return Parse(data), nil
}

// Save writes every catalog key, replacing the file atomically.
// Scores already on disk are merged in and the higher value wins, so
// sessions sharing the file never erase each other's records.
func (f *FileStore) Save(scores Scores) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	merged := scores.Clone()
	if current, err := os.ReadFile(f.path); err == nil {
		merged.Merge(Parse(current))
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("highscore: cannot read %s: %w", f.path, err)
	}

	data, err := Format(merged)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscores-*")
	if err != nil {
		return fmt.Errorf("highscore: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("highscore: cannot write scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("highscore: cannot write scores: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("highscore: cannot replace %s: %w", f.path, err)
	}
	return nil
}

// Parse decodes key=value lines, splitting each on its first '='.
// Lines whose key is not an unsigned integer, or whose value is not an
// unsigned 32-bit integer, are skipped; the rest of the file still loads.
func Parse(data []byte) Scores {
	scores := Scores{}
	for _, line := range strings.Split(string(data), "\n") {
		name, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key, err := strconv.ParseUint(strings.TrimSpace(name), 10, 32)
		if err != nil {
			continue
		}
		val, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
		if err != nil {
			continue
		}
		scores[bitmode.Key(key)] = uint32(val)
	}
	return scores
}

func init() {
	// key=value without padding around '='
	ini.PrettyFormat = false
}

// Format encodes one line per catalog key, in catalog order.
func Format(scores Scores) ([]byte, error) {
	file := ini.Empty()
	sec := file.Section("")
	for _, k := range bitmode.Keys() {
		name := strconv.FormatUint(uint64(k), 10)
		if _, err := sec.NewKey(name, strconv.FormatUint(uint64(scores[k]), 10)); err != nil {
			return nil, fmt.Errorf("highscore: cannot encode key %s: %w", name, err)
		}
	}

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("highscore: cannot encode scores: %w", err)
	}
	return buf.Bytes(), nil
}
