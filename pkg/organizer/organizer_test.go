package organizer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/moyu-x/file-organizer/internal"
	"github.com/moyu-x/file-organizer/pkg/classifier"
	"github.com/moyu-x/file-organizer/pkg/history"
)

func newTestOrganizer() *Organizer {
	return New(afero.NewOsFs(), classifier.NewDefault())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
}

func TestOrganizer_Run_DryRun(t *testing.T) {
	tempDir := t.TempDir()
	writeFile(t, filepath.Join(tempDir, "photo.jpg"), "img")
	writeFile(t, filepath.Join(tempDir, "notes.txt"), "doc")

	report, err := newTestOrganizer().Run(tempDir, internal.ModeCategory, true)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !report.DryRun {
		t.Error("report should be marked as dry run")
	}
	if report.TotalFiles != 2 {
		t.Errorf("TotalFiles = %d, want 2", report.TotalFiles)
	}
	if report.Moved != 0 {
		t.Errorf("dry run moved %d files", report.Moved)
	}

	// Nothing on disk may change and no log may appear.
	if _, err := os.Stat(filepath.Join(tempDir, "photo.jpg")); err != nil {
		t.Error("dry run must not move files")
	}
	if _, err := os.Stat(filepath.Join(tempDir, "Images")); !os.IsNotExist(err) {
		t.Error("dry run must not create bucket directories")
	}
	if history.NewStore(afero.NewOsFs()).Exists(tempDir) {
		t.Error("dry run must not persist a transaction log")
	}
}

func TestOrganizer_Run_ByCategory(t *testing.T) {
	tempDir := t.TempDir()
	writeFile(t, filepath.Join(tempDir, "photo.jpg"), "img")
	writeFile(t, filepath.Join(tempDir, "clip.mp4"), "vid")
	writeFile(t, filepath.Join(tempDir, "notes.txt"), "doc")
	writeFile(t, filepath.Join(tempDir, "mystery.xyz"), "???")

	report, err := newTestOrganizer().Run(tempDir, internal.ModeCategory, false)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if report.Moved != 4 {
		t.Errorf("Moved = %d, want 4", report.Moved)
	}

	expected := map[string]string{
		"Images/photo.jpg":    "img",
		"Videos/clip.mp4":     "vid",
		"Documents/notes.txt": "doc",
		"Other/mystery.xyz":   "???",
	}
	for rel, content := range expected {
		data, err := os.ReadFile(filepath.Join(tempDir, rel))
		if err != nil {
			t.Errorf("expected %s to exist: %v", rel, err)
			continue
		}
		if string(data) != content {
			t.Errorf("%s content = %q, want %q", rel, data, content)
		}
	}

	store := history.NewStore(afero.NewOsFs())
	if !store.Exists(tempDir) {
		t.Fatal("expected a persisted transaction log")
	}
	txn, err := store.Load(tempDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(txn.Moves) != 4 {
		t.Errorf("log has %d moves, want 4", len(txn.Moves))
	}
	if txn.ID == "" {
		t.Error("log should carry a run id")
	}
}

func TestOrganizer_Run_CollisionSuffix(t *testing.T) {
	tempDir := t.TempDir()
	// The bucket already contains a file with the same name.
	writeFile(t, filepath.Join(tempDir, "Images", "photo.jpg"), "old")
	writeFile(t, filepath.Join(tempDir, "photo.jpg"), "new")

	report, err := newTestOrganizer().Run(tempDir, internal.ModeCategory, false)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Moved != 1 {
		t.Fatalf("Moved = %d, want 1", report.Moved)
	}

	old, err := os.ReadFile(filepath.Join(tempDir, "Images", "photo.jpg"))
	if err != nil || string(old) != "old" {
		t.Error("pre-existing file must never be overwritten")
	}
	moved, err := os.ReadFile(filepath.Join(tempDir, "Images", "photo_1.jpg"))
	if err != nil || string(moved) != "new" {
		t.Errorf("expected photo_1.jpg with the new content, got %q, err %v", moved, err)
	}
}

func TestOrganizer_Run_ByDate(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "old-report.txt")
	writeFile(t, path, "doc")

	modified := time.Date(2023, time.March, 15, 10, 0, 0, 0, time.Local)
	if err := os.Chtimes(path, modified, modified); err != nil {
		t.Fatalf("failed to set mtime: %v", err)
	}

	report, err := newTestOrganizer().Run(tempDir, internal.ModeDate, false)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Moved != 1 {
		t.Fatalf("Moved = %d, want 1", report.Moved)
	}

	if _, err := os.Stat(filepath.Join(tempDir, "2023", "March", "old-report.txt")); err != nil {
		t.Errorf("expected file under 2023/March: %v", err)
	}
}

func TestOrganizer_Run_ByDate_SameMonth(t *testing.T) {
	tempDir := t.TempDir()
	first := filepath.Join(tempDir, "a.txt")
	second := filepath.Join(tempDir, "b.txt")
	writeFile(t, first, "1")
	writeFile(t, second, "2")

	for path, day := range map[string]int{first: 1, second: 28} {
		modified := time.Date(2023, time.March, day, 8, 0, 0, 0, time.Local)
		if err := os.Chtimes(path, modified, modified); err != nil {
			t.Fatalf("failed to set mtime: %v", err)
		}
	}

	report, err := newTestOrganizer().Run(tempDir, internal.ModeDate, false)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(report.Buckets) != 1 || report.Buckets[0].Name != "2023/March" {
		t.Errorf("expected a single 2023/March bucket, got %+v", report.Buckets)
	}
}

func TestOrganizer_Run_ByContent(t *testing.T) {
	tempDir := t.TempDir()
	// Misleading extension; the content is a JPEG.
	writeFile(t, filepath.Join(tempDir, "actually-a-photo.dat"), "\xff\xd8\xff\xe0\x00\x10JFIF")
	writeFile(t, filepath.Join(tempDir, "plain.dat"), "nothing recognizable")

	report, err := newTestOrganizer().Run(tempDir, internal.ModeContent, false)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Moved != 2 {
		t.Fatalf("Moved = %d, want 2", report.Moved)
	}

	if _, err := os.Stat(filepath.Join(tempDir, "Images", "actually-a-photo.dat")); err != nil {
		t.Errorf("sniffed JPEG should land in Images: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tempDir, "Other", "plain.dat")); err != nil {
		t.Errorf("unrecognized content should land in Other: %v", err)
	}
}

func TestOrganizer_Run_LogOnlyRecordsSuccesses(t *testing.T) {
	tempDir := t.TempDir()
	writeFile(t, filepath.Join(tempDir, "empty-run", "keep"), "x")

	root := filepath.Join(tempDir, "empty-run")
	if err := os.Remove(filepath.Join(root, "keep")); err != nil {
		t.Fatal(err)
	}

	report, err := newTestOrganizer().Run(root, internal.ModeCategory, false)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Moved != 0 {
		t.Errorf("Moved = %d, want 0", report.Moved)
	}

	// A run with zero successful moves persists nothing.
	if history.NewStore(afero.NewOsFs()).Exists(root) {
		t.Error("empty run must not persist a transaction log")
	}
}

func TestOrganizer_Run_SkipsHistoryFile(t *testing.T) {
	tempDir := t.TempDir()
	writeFile(t, filepath.Join(tempDir, "photo.jpg"), "img")

	org := newTestOrganizer()
	if _, err := org.Run(tempDir, internal.ModeCategory, false); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// A second run must not try to organize the log file itself.
	report, err := org.Run(tempDir, internal.ModeCategory, false)
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if report.TotalFiles != 0 {
		t.Errorf("second run saw %d files, want 0", report.TotalFiles)
	}
	if !history.NewStore(afero.NewOsFs()).Exists(tempDir) {
		t.Error("first run's log should still be present")
	}
}
