package history

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/moyu-x/file-organizer/internal"
)

func TestStore_RoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	store := NewStore(afero.NewOsFs())

	txn := &internal.TransactionLog{
		ID:        uuid.NewString(),
		Timestamp: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC),
		Moves: []internal.MoveEntry{
			{From: "/data/a.txt", To: "/data/Documents/a.txt"},
			{From: "/data/b.jpg", To: "/data/Images/b.jpg"},
			{From: "/data/b2.jpg", To: "/data/Images/b_1.jpg"},
		},
	}

	if err := store.Save(tempDir, txn); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load(tempDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.ID != txn.ID {
		t.Errorf("ID = %q, want %q", loaded.ID, txn.ID)
	}
	if !loaded.Timestamp.Equal(txn.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", loaded.Timestamp, txn.Timestamp)
	}
	if len(loaded.Moves) != len(txn.Moves) {
		t.Fatalf("expected %d moves, got %d", len(txn.Moves), len(loaded.Moves))
	}
	for i := range txn.Moves {
		if loaded.Moves[i] != txn.Moves[i] {
			t.Errorf("move %d = %+v, want %+v", i, loaded.Moves[i], txn.Moves[i])
		}
	}
}

func TestStore_LogIsHidden(t *testing.T) {
	tempDir := t.TempDir()
	store := NewStore(afero.NewOsFs())

	name := filepath.Base(store.Path(tempDir))
	if name[0] != '.' {
		t.Errorf("log file %q must be hidden", name)
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	tempDir := t.TempDir()
	store := NewStore(afero.NewOsFs())

	first := &internal.TransactionLog{
		ID:    "first",
		Moves: []internal.MoveEntry{{From: "/a", To: "/b"}, {From: "/c", To: "/d"}},
	}
	second := &internal.TransactionLog{
		ID:    "second",
		Moves: []internal.MoveEntry{{From: "/x", To: "/y"}},
	}

	if err := store.Save(tempDir, first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(tempDir, second); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load(tempDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.ID != "second" || len(loaded.Moves) != 1 {
		t.Errorf("expected the second log to replace the first, got %+v", loaded)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	store := NewStore(afero.NewOsFs())

	_, err := store.Load(t.TempDir())
	if !errors.Is(err, internal.ErrNoHistory) {
		t.Errorf("expected ErrNoHistory, got %v", err)
	}
}

func TestStore_Clear(t *testing.T) {
	tempDir := t.TempDir()
	store := NewStore(afero.NewOsFs())

	txn := &internal.TransactionLog{ID: "x", Moves: []internal.MoveEntry{{From: "/a", To: "/b"}}}
	if err := store.Save(tempDir, txn); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if !store.Exists(tempDir) {
		t.Fatal("expected history to exist after save")
	}

	if err := store.Clear(tempDir); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if store.Exists(tempDir) {
		t.Error("expected history to be gone after clear")
	}
	if _, err := os.Stat(store.Path(tempDir)); !os.IsNotExist(err) {
		t.Error("log file should be removed from disk")
	}

	// Clearing twice is not an error.
	if err := store.Clear(tempDir); err != nil {
		t.Errorf("Clear() on missing log error = %v", err)
	}
}
