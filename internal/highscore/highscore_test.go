package highscore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/binbreak/internal/bitmode"
)

func TestTableFallsBackOnLoadError(t *testing.T) {
	store := NewMemoryStore(Scores{4: 50})
	store.LoadErr = errors.New("disk on fire")

	table := Open(store, nil)
	if got := table.Get(4); got != 0 {
		t.Errorf("expected empty table after load failure, got %d", got)
	}
}

func TestTablePersist(t *testing.T) {
	store := NewMemoryStore(Scores{8: 30})
	table := Open(store, nil)

	if got := table.Get(8); got != 30 {
		t.Fatalf("Get(8) = %d, want 30", got)
	}

	table.Update(8, 42)
	if err := table.Persist(); err != nil {
		t.Fatalf("Persist() failed: %v", err)
	}

	loaded, _ := store.Load()
	if loaded[8] != 42 {
		t.Errorf("persisted score = %d, want 42", loaded[8])
	}
}

func TestTablePersistErrorKeepsMemory(t *testing.T) {
	store := NewMemoryStore(nil)
	store.SaveErr = errors.New("read-only")
	table := Open(store, nil)

	table.Update(16, 99)
	if err := table.Persist(); err == nil {
		t.Error("expected save error to be reported")
	}
	if table.Get(16) != 99 {
		t.Error("in-memory score must survive a failed save")
	}
}

func TestNilStoreTable(t *testing.T) {
	table := Open(nil, nil)
	table.Update(4, 10)
	if err := table.Persist(); err != nil {
		t.Errorf("memory-only Persist() = %v", err)
	}
	if table.Get(4) != 10 {
		t.Error("memory-only table should keep updates")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "highscores.txt")
	store := NewFileStore(path)

	want := Scores{4: 120, 42: 18, 412: 7, 16: 1000}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	for k, v := range want {
		if got[k] != v {
			t.Errorf("key %d: got %d, want %d", k, got[k], v)
		}
	}
	// Every catalog key is written, zero or not.
	if len(got) != len(bitmode.Keys()) {
		t.Errorf("expected %d keys on disk, got %d", len(bitmode.Keys()), len(got))
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.txt"))

	got, err := store.Load()
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty scores, got %v", got)
	}
}

func TestFileStoreReadsLegacyFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binbreak_highscores.txt")
	legacy := "4=10\n42=0\n44=0\n48=0\n412=0\n8=64\n12=0\n16=0\n"
	if err := os.WriteFile(path, []byte(legacy), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got[4] != 10 || got[8] != 64 {
		t.Errorf("unexpected scores %v", got)
	}
}

func TestParseSkipsMalformedLines(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Scores
	}{
		{
			name: "non numeric value",
			data: "4=abc\n8=20\n",
			want: Scores{8: 20},
		},
		{
			name: "non numeric key",
			data: "byte=5\n12=3\n",
			want: Scores{12: 3},
		},
		{
			name: "line without delimiter",
			data: "garbage\n16 = 9\n",
			want: Scores{16: 9},
		},
		{
			name: "negative value",
			data: "4=-3\n42=2\n",
			want: Scores{42: 2},
		},
		{
			name: "value overflow",
			data: "4=99999999999\n44=1\n",
			want: Scores{44: 1},
		},
		{
			name: "section header between valid lines",
			data: "4=10\n[garbage]\n8=120\n16=7\n",
			want: Scores{4: 10, 8: 120, 16: 7},
		},
		{
			name: "colon delimiter",
			data: "8: 120\n12=3\n",
			want: Scores{12: 3},
		},
		{
			name: "quoted value",
			data: "8=\"120\"\n12=3\n",
			want: Scores{12: 3},
		},
		{
			name: "crlf line endings",
			data: "4=10\r\n8=20\r\n",
			want: Scores{4: 10, 8: 20},
		},
		{
			name: "empty",
			data: "",
			want: Scores{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse([]byte(tc.data))
			if len(got) != len(tc.want) {
				t.Fatalf("Parse() = %v, want %v", got, tc.want)
			}
			for k, v := range tc.want {
				if got[k] != v {
					t.Errorf("key %d: got %d, want %d", k, got[k], v)
				}
			}
		})
	}
}

func TestFormatWritesPlainKeyValue(t *testing.T) {
	data, err := Format(Scores{4: 120, 16: 7})
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "4=120\n") {
		t.Errorf("Format() should start with %q, got %q", "4=120\n", out)
	}
	if !strings.Contains(out, "\n16=7\n") {
		t.Errorf("Format() missing %q in %q", "16=7", out)
	}
	if strings.Contains(out, " = ") {
		t.Errorf("Format() should not pad the delimiter: %q", out)
	}

	got := Parse(data)
	if got[4] != 120 || got[16] != 7 || len(got) != len(bitmode.Keys()) {
		t.Errorf("Parse(Format()) = %v", got)
	}
}

func TestTablesSharingStoreKeepBothRecords(t *testing.T) {
	tests := []struct {
		name  string
		store func(t *testing.T) Store
	}{
		{
			name:  "memory",
			store: func(t *testing.T) Store { return NewMemoryStore(nil) },
		},
		{
			name: "file",
			store: func(t *testing.T) Store {
				return NewFileStore(filepath.Join(t.TempDir(), "highscores.txt"))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := tc.store(t)
			a := Open(store, nil)
			b := Open(store, nil)

			b.Update(4, 500)
			if err := b.Persist(); err != nil {
				t.Fatalf("Persist() failed: %v", err)
			}
			// a loaded before b saved and still holds 4=0.
			a.Update(8, 10)
			if err := a.Persist(); err != nil {
				t.Fatalf("Persist() failed: %v", err)
			}

			got, err := store.Load()
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if got[4] != 500 || got[8] != 10 {
				t.Errorf("stored scores = %v, want 4:500 and 8:10", got)
			}
		})
	}
}
