package organizer

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/moyu-x/file-organizer/internal"
	"github.com/moyu-x/file-organizer/pkg/logger"
)

// Undo replays the persisted transaction log of root in reverse,
// moving every file back to its original location. A destination that
// no longer exists is reported as unrestorable and skipped. Afterwards
// directories directly under root that ended up empty are removed (one
// level only; anything with contents is left alone) and the log is
// deleted, so a second Undo fails with ErrNoHistory.
func (o *Organizer) Undo(root string) (*internal.UndoResult, error) {
	info, err := o.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, internal.ErrNotADirectory)
	}

	txn, err := o.store.Load(root)
	if err != nil {
		return nil, err
	}

	if len(txn.Moves) == 0 {
		if err := o.store.Clear(root); err != nil {
			logger.Get().Warn().Err(err).Str("root", root).Msg("could not clear empty history")
		}
		return nil, fmt.Errorf("%s: %w", root, internal.ErrEmptyHistory)
	}

	logger.Get().Info().Str("root", root).Int("moves", len(txn.Moves)).Msg("undoing organization")

	result := &internal.UndoResult{}

	for i := len(txn.Moves) - 1; i >= 0; i-- {
		move := txn.Moves[i]

		if _, err := o.fs.Stat(move.To); err != nil {
			result.Unrestorable = append(result.Unrestorable, internal.Failure{
				Path:   move.To,
				Reason: "destination no longer exists",
			})
			logger.Get().Warn().Str("path", move.To).Msg("cannot restore, file is gone")
			continue
		}

		if err := o.fs.MkdirAll(filepath.Dir(move.From), 0755); err != nil {
			result.Unrestorable = append(result.Unrestorable, internal.Failure{
				Path:   move.To,
				Reason: err.Error(),
			})
			continue
		}

		if err := o.fs.Rename(move.To, move.From); err != nil {
			result.Unrestorable = append(result.Unrestorable, internal.Failure{
				Path:   move.To,
				Reason: err.Error(),
			})
			logger.Get().Error().Err(err).Str("path", move.To).Msg("restore failed")
			continue
		}

		result.Restored++
		logger.Get().Debug().Str("from", move.To).Str("to", move.From).Msg("file restored")
	}

	result.RemovedDirs = o.removeEmptyDirs(root)

	// The log is cleared even when some entries could not be restored;
	// undo is best effort, not transactional.
	if err := o.store.Clear(root); err != nil {
		return result, err
	}

	logger.Get().Info().
		Str("root", root).
		Int("restored", result.Restored).
		Int("unrestorable", len(result.Unrestorable)).
		Msg("undo finished")

	return result, nil
}

// removeEmptyDirs deletes empty directories that are direct children
// of root. Deliberately shallow: nested survivors stay, and a
// directory with any contents is never touched.
func (o *Organizer) removeEmptyDirs(root string) []string {
	entries, err := afero.ReadDir(o.fs, root)
	if err != nil {
		logger.Get().Warn().Err(err).Str("root", root).Msg("cannot list root for cleanup")
		return nil
	}

	var removed []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		children, err := afero.ReadDir(o.fs, dir)
		if err != nil || len(children) > 0 {
			continue
		}
		if err := o.fs.Remove(dir); err != nil {
			logger.Get().Warn().Err(err).Str("dir", dir).Msg("could not remove empty directory")
			continue
		}
		removed = append(removed, dir)
		logger.Get().Debug().Str("dir", dir).Msg("removed empty directory")
	}
	return removed
}
