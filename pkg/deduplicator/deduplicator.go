// Package deduplicator finds files with identical content by grouping
// them on a streamed xxHash digest. A digest match is treated as
// authoritative; there is no byte-for-byte confirmation pass.
package deduplicator

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/moyu-x/file-organizer/internal"
	"github.com/moyu-x/file-organizer/pkg/database"
	"github.com/moyu-x/file-organizer/pkg/hasher"
	"github.com/moyu-x/file-organizer/pkg/logger"
	"github.com/moyu-x/file-organizer/pkg/scanner"
)

type Deduplicator struct {
	fs      afero.Fs
	scanner *scanner.Scanner
	workers int
	cache   *database.Cache
}

func New(fs afero.Fs, workers int) *Deduplicator {
	if workers < 1 {
		workers = internal.DefaultWorkers
	}
	return &Deduplicator{
		fs:      fs,
		scanner: scanner.New(fs),
		workers: workers,
	}
}

// WithCache attaches a persistent hash cache. Files whose size and
// mtime are unchanged since the last scan are not re-hashed.
func (d *Deduplicator) WithCache(cache *database.Cache) *Deduplicator {
	d.cache = cache
	return d
}

// FindDuplicates recursively scans root, digests every readable file
// and returns the groups that share a digest. Groups keep the order in
// which their digest was first encountered during the scan. A file
// that cannot be read is reported and excluded from every group. No
// duplicates means an empty group list, not an error.
func (d *Deduplicator) FindDuplicates(root string) (*internal.DedupReport, error) {
	scan, err := d.scanner.Scan(root, true)
	if err != nil {
		return nil, err
	}

	report := &internal.DedupReport{
		Root:     root,
		Scanned:  len(scan.Files),
		Failures: scan.Skipped,
	}

	digests := make(map[string]uint64, len(scan.Files))
	var pending []internal.FileRecord

	for _, file := range scan.Files {
		if d.cache != nil {
			digest, hit, err := d.cache.Lookup(file.Path, file.Size, file.ModTime.Unix())
			if err != nil {
				logger.Get().Warn().Err(err).Str("path", file.Path).Msg("hash cache lookup failed")
			} else if hit {
				digests[file.Path] = digest
				continue
			}
		}
		pending = append(pending, file)
	}

	logger.Get().Info().
		Str("root", root).
		Int("files", len(scan.Files)).
		Int("cached", len(scan.Files)-len(pending)).
		Msg("hashing files")

	if err := d.hashFiles(pending, digests, report); err != nil {
		return nil, err
	}

	d.groupByDigest(scan.Files, digests, report)

	logger.Get().Info().
		Str("root", root).
		Int("groups", len(report.Groups)).
		Int64("reclaimable", report.Reclaimable).
		Msg("duplicate scan finished")

	return report, nil
}

func (d *Deduplicator) hashFiles(files []internal.FileRecord, digests map[string]uint64, report *internal.DedupReport) error {
	if len(files) == 0 {
		return nil
	}

	pool := hasher.NewPool(d.fs, d.workers)
	if err := pool.Start(); err != nil {
		return fmt.Errorf("start hash pool: %w", err)
	}

	go func() {
		for _, file := range files {
			pool.Submit(hasher.Task{Path: file.Path, Size: file.Size})
		}
		pool.Close()
	}()

	mtimes := make(map[string]int64, len(files))
	for _, file := range files {
		mtimes[file.Path] = file.ModTime.Unix()
	}

	for result := range pool.Results() {
		if result.Err != nil {
			report.Failures = append(report.Failures, internal.Failure{
				Path:   result.Path,
				Reason: result.Err.Error(),
			})
			continue
		}

		digests[result.Path] = result.Digest

		if d.cache != nil {
			if err := d.cache.Store(result.Path, result.Size, mtimes[result.Path], result.Digest); err != nil {
				logger.Get().Warn().Err(err).Str("path", result.Path).Msg("hash cache store failed")
			}
		}
	}
	return nil
}

// groupByDigest walks the records in scan order so group order stays
// deterministic regardless of hash pool scheduling.
func (d *Deduplicator) groupByDigest(files []internal.FileRecord, digests map[string]uint64, report *internal.DedupReport) {
	groups := make(map[uint64]*internal.DuplicateGroup)
	var order []uint64

	for _, file := range files {
		digest, ok := digests[file.Path]
		if !ok {
			continue // unreadable, already reported
		}
		group := groups[digest]
		if group == nil {
			group = &internal.DuplicateGroup{
				Digest: fmt.Sprintf("%016x", digest),
				Size:   file.Size,
			}
			groups[digest] = group
			order = append(order, digest)
		}
		group.Paths = append(group.Paths, file.Path)
	}

	for _, digest := range order {
		group := groups[digest]
		if len(group.Paths) < 2 {
			continue
		}
		report.Groups = append(report.Groups, *group)
		report.Reclaimable += group.Size * int64(len(group.Paths)-1)
	}
}
