// Package organizer moves the files of a directory into
// classification-derived subfolders and records every move in a
// replayable transaction log so the run can be undone.
package organizer

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/moyu-x/file-organizer/internal"
	"github.com/moyu-x/file-organizer/pkg/classifier"
	"github.com/moyu-x/file-organizer/pkg/history"
	"github.com/moyu-x/file-organizer/pkg/logger"
	"github.com/moyu-x/file-organizer/pkg/scanner"
)

const maxSamples = 3

type Organizer struct {
	fs         afero.Fs
	scanner    *scanner.Scanner
	classifier *classifier.Classifier
	store      *history.Store
}

func New(fs afero.Fs, cls *classifier.Classifier) *Organizer {
	return &Organizer{
		fs:         fs,
		scanner:    scanner.New(fs),
		classifier: cls,
		store:      history.NewStore(fs),
	}
}

func NewDefault() *Organizer {
	return New(afero.NewOsFs(), classifier.NewDefault())
}

// Run organizes the direct children of root into buckets derived from
// mode. With dryRun the grouping report is returned without touching
// the filesystem or the log. Otherwise every file is moved to a
// collision-free destination; per-file failures are recorded and
// skipped, never fatal. If at least one move succeeded the transaction
// log is persisted, replacing any previous log for root. Partial
// failures are not rolled back.
func (o *Organizer) Run(root string, mode internal.Mode, dryRun bool) (*internal.Report, error) {
	scan, err := o.scanner.Scan(root, false)
	if err != nil {
		return nil, err
	}

	report := &internal.Report{
		Root:       root,
		Mode:       mode,
		DryRun:     dryRun,
		TotalFiles: len(scan.Files),
		TotalSize:  scan.TotalSize(),
		Failures:   scan.Skipped,
	}

	buckets := o.group(scan.Files, mode, report)
	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		files := buckets[name]
		summary := internal.BucketSummary{Name: name, Files: len(files)}
		for _, f := range files {
			summary.Size += f.Size
			if len(summary.Samples) < maxSamples {
				summary.Samples = append(summary.Samples, filepath.Base(f.Path))
			}
		}
		report.Buckets = append(report.Buckets, summary)
	}

	if dryRun {
		logger.Get().Info().
			Str("root", root).
			Str("mode", string(mode)).
			Int("files", report.TotalFiles).
			Int("buckets", len(report.Buckets)).
			Msg("dry run, nothing moved")
		return report, nil
	}

	txn := &internal.TransactionLog{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
	}

	for _, name := range names {
		destDir := filepath.Join(root, filepath.FromSlash(name))
		for _, file := range buckets[name] {
			dest, err := ResolveDestination(o.fs, destDir, filepath.Base(file.Path))
			if err != nil {
				o.recordFailure(report, file.Path, err)
				continue
			}
			if err := o.fs.Rename(file.Path, dest); err != nil {
				o.recordFailure(report, file.Path, err)
				continue
			}

			txn.Moves = append(txn.Moves, internal.MoveEntry{From: file.Path, To: dest})
			report.Moved++
			logger.Get().Debug().
				Str("from", file.Path).
				Str("to", dest).
				Str("bucket", name).
				Msg("file moved")
		}
	}

	if len(txn.Moves) > 0 {
		if err := o.store.Save(root, txn); err != nil {
			return report, fmt.Errorf("persist history: %w", err)
		}
	}

	logger.Get().Info().
		Str("root", root).
		Str("mode", string(mode)).
		Int("moved", report.Moved).
		Int("failed", len(report.Failures)).
		Msg("organization finished")

	return report, nil
}

// group assigns each record to its destination bucket. Content-mode
// sniffing can fail per file; such files are reported and excluded.
func (o *Organizer) group(files []internal.FileRecord, mode internal.Mode, report *internal.Report) map[string][]internal.FileRecord {
	buckets := make(map[string][]internal.FileRecord)
	for _, file := range files {
		var bucket string
		switch mode {
		case internal.ModeDate:
			bucket = classifier.DateBucket(file.ModTime)
		case internal.ModeContent:
			var err error
			bucket, err = classifier.ContentCategory(o.fs, file.Path)
			if err != nil {
				o.recordFailure(report, file.Path, err)
				continue
			}
		default:
			bucket = o.classifier.Classify(file.Path)
		}
		buckets[bucket] = append(buckets[bucket], file)
	}
	return buckets
}

func (o *Organizer) recordFailure(report *internal.Report, path string, err error) {
	logger.Get().Error().Err(err).Str("path", path).Msg("skipping file")
	report.Failures = append(report.Failures, internal.Failure{Path: path, Reason: err.Error()})
}
