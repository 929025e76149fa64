package hasher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestSum(t *testing.T) {
	tempDir := t.TempDir()
	fs := afero.NewOsFs()

	testFile := filepath.Join(tempDir, "test.txt")
	if err := os.WriteFile(testFile, []byte("test content for hashing"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	hash, err := Sum(fs, testFile)
	if err != nil {
		t.Fatalf("Sum() error = %v", err)
	}
	if hash == 0 {
		t.Error("expected non-zero hash")
	}

	hash2, err := Sum(fs, testFile)
	if err != nil {
		t.Fatalf("Sum() second call error = %v", err)
	}
	if hash != hash2 {
		t.Error("hash should be consistent for the same file")
	}
}

func TestSum_DifferentContent(t *testing.T) {
	tempDir := t.TempDir()
	fs := afero.NewOsFs()

	file1 := filepath.Join(tempDir, "file1.txt")
	file2 := filepath.Join(tempDir, "file2.txt")

	if err := os.WriteFile(file1, []byte("content1"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	if err := os.WriteFile(file2, []byte("content2"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	hash1, err := Sum(fs, file1)
	if err != nil {
		t.Fatalf("Sum() error = %v", err)
	}
	hash2, err := Sum(fs, file2)
	if err != nil {
		t.Fatalf("Sum() error = %v", err)
	}

	if hash1 == hash2 {
		t.Error("different content should produce different hashes")
	}
}

func TestSum_IdenticalContentDifferentFiles(t *testing.T) {
	tempDir := t.TempDir()
	fs := afero.NewOsFs()

	file1 := filepath.Join(tempDir, "copy1.txt")
	file2 := filepath.Join(tempDir, "copy2.txt")

	for _, f := range []string{file1, file2} {
		if err := os.WriteFile(f, []byte("identical bytes"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}
	}

	hash1, _ := Sum(fs, file1)
	hash2, _ := Sum(fs, file2)

	if hash1 != hash2 {
		t.Error("identical content should produce identical hashes")
	}
}

func TestSum_NonExistentFile(t *testing.T) {
	if _, err := Sum(afero.NewOsFs(), "/non/existent/file.txt"); err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestSum_LargeFile(t *testing.T) {
	tempDir := t.TempDir()
	fs := afero.NewOsFs()

	largeFile := filepath.Join(tempDir, "large.bin")
	const fileSize = 4 * 1024 * 1024 // several chunks

	file, err := os.Create(largeFile)
	if err != nil {
		t.Fatalf("failed to create large file: %v", err)
	}
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i % 251)
	}
	for i := 0; i < fileSize/4096; i++ {
		if _, err := file.Write(data); err != nil {
			file.Close()
			t.Fatalf("failed to write large file: %v", err)
		}
	}
	file.Close()

	hash, err := Sum(fs, largeFile)
	if err != nil {
		t.Fatalf("Sum() error = %v", err)
	}
	if hash == 0 {
		t.Error("expected non-zero hash for large file")
	}
}

func TestPool(t *testing.T) {
	tempDir := t.TempDir()
	fs := afero.NewOsFs()

	const fileCount = 20
	for i := 0; i < fileCount; i++ {
		path := filepath.Join(tempDir, string(rune('a'+i))+".txt")
		if err := os.WriteFile(path, []byte{byte(i)}, 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}
	}

	pool := NewPool(fs, 4)
	if err := pool.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	go func() {
		for i := 0; i < fileCount; i++ {
			pool.Submit(Task{Path: filepath.Join(tempDir, string(rune('a'+i))+".txt"), Size: 1})
		}
		pool.Close()
	}()

	results := 0
	for result := range pool.Results() {
		if result.Err != nil {
			t.Errorf("unexpected error for %s: %v", result.Path, result.Err)
		}
		results++
	}

	if results != fileCount {
		t.Errorf("expected %d results, got %d", fileCount, results)
	}
}

func TestPool_ReportsErrors(t *testing.T) {
	pool := NewPool(afero.NewOsFs(), 2)
	if err := pool.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	go func() {
		pool.Submit(Task{Path: "/non/existent/file.txt"})
		pool.Close()
	}()

	var sawError bool
	for result := range pool.Results() {
		if result.Err != nil {
			sawError = true
		}
	}
	if !sawError {
		t.Error("expected an error result for the missing file")
	}
}
