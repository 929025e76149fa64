// Package history persists the transaction log of an organization run
// as a hidden JSON file inside the organized root. Writing a log and
// reading it back reproduces the same ordered sequence of moves.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/moyu-x/file-organizer/internal"
	"github.com/moyu-x/file-organizer/pkg/logger"
)

type Store struct {
	fs afero.Fs
}

func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// Path returns the log location for a root.
func (s *Store) Path(root string) string {
	return filepath.Join(root, internal.HistoryFileName)
}

// Exists reports whether root has a persisted log.
func (s *Store) Exists(root string) bool {
	_, err := s.fs.Stat(s.Path(root))
	return err == nil
}

// Save writes the log for root, replacing any previous one. Each run
// owns the log it persists.
func (s *Store) Save(root string, txn *internal.TransactionLog) error {
	data, err := json.MarshalIndent(txn, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	path := s.Path(root)
	if err := afero.WriteFile(s.fs, path, data, 0644); err != nil {
		return fmt.Errorf("write history %s: %w", path, err)
	}

	logger.Get().Debug().Str("path", path).Int("moves", len(txn.Moves)).Msg("history saved")
	return nil
}

// Load reads the persisted log for root. A missing log yields
// internal.ErrNoHistory.
func (s *Store) Load(root string) (*internal.TransactionLog, error) {
	path := s.Path(root)
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", root, internal.ErrNoHistory)
		}
		return nil, fmt.Errorf("read history %s: %w", path, err)
	}

	var txn internal.TransactionLog
	if err := json.Unmarshal(data, &txn); err != nil {
		return nil, fmt.Errorf("decode history %s: %w", path, err)
	}
	return &txn, nil
}

// Clear removes the persisted log for root. A log that is already gone
// is not an error.
func (s *Store) Clear(root string) error {
	path := s.Path(root)
	if err := s.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove history %s: %w", path, err)
	}
	logger.Get().Debug().Str("path", path).Msg("history cleared")
	return nil
}
