// Package scanner enumerates the files of a directory as immutable
// records, skipping hidden entries and reporting per-entry failures
// without aborting the scan.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/moyu-x/file-organizer/internal"
	"github.com/moyu-x/file-organizer/pkg/logger"
)

type Scanner struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Scanner {
	return &Scanner{fs: fs}
}

func NewDefault() *Scanner {
	return New(afero.NewOsFs())
}

// Result is one finished scan. Files are ordered lexicographically by
// path so a given filesystem state always scans the same way. Skipped
// holds entries that could not be inspected; they never abort the scan.
type Result struct {
	Files   []internal.FileRecord
	Skipped []internal.Failure
}

// TotalSize sums the sizes of all scanned files.
func (r *Result) TotalSize() int64 {
	var total int64
	for _, f := range r.Files {
		total += f.Size
	}
	return total
}

// Scan enumerates the files under root. Non-recursive mode lists direct
// children only; recursive mode descends the whole subtree. Directories
// and names starting with a dot are excluded, which keeps internal
// state such as the transaction log out of organization runs.
func (s *Scanner) Scan(root string, recursive bool) (*Result, error) {
	info, err := s.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, internal.ErrNotADirectory)
	}

	result := &Result{}
	if recursive {
		err = s.walk(root, result)
	} else {
		err = s.list(root, result)
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})

	logger.Get().Debug().
		Str("root", root).
		Bool("recursive", recursive).
		Int("files", len(result.Files)).
		Int("skipped", len(result.Skipped)).
		Msg("scan finished")

	return result, nil
}

func (s *Scanner) list(root string, result *Result) error {
	entries, err := afero.ReadDir(s.fs, root)
	if err != nil {
		return fmt.Errorf("read %s: %w", root, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || isHidden(entry.Name()) {
			continue
		}
		result.Files = append(result.Files, internal.FileRecord{
			Path:    filepath.Join(root, entry.Name()),
			Size:    entry.Size(),
			ModTime: entry.ModTime(),
		})
	}
	return nil
}

func (s *Scanner) walk(root string, result *Result) error {
	return afero.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Get().Warn().Err(err).Str("path", path).Msg("skipping unreadable entry")
			result.Skipped = append(result.Skipped, internal.Failure{Path: path, Reason: err.Error()})
			return nil
		}
		if info.IsDir() || isHidden(info.Name()) {
			return nil
		}
		result.Files = append(result.Files, internal.FileRecord{
			Path:    path,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		return nil
	})
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, internal.HiddenPrefix)
}
