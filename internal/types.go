package internal

import (
	"fmt"
	"time"
)

// Mode selects how the organizer derives a file's destination bucket.
type Mode string

const (
	ModeCategory Mode = "category" // extension-based category table
	ModeDate     Mode = "date"     // modification time, "<year>/<month>"
	ModeContent  Mode = "content"  // sniffed content type
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeCategory, ModeDate, ModeContent:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown organization mode %q (want category, date or content)", s)
}

// FileRecord is a snapshot of a file taken at scan time. It is not
// refreshed if the filesystem changes afterwards.
type FileRecord struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// Failure attributes a non-fatal per-item error to a concrete path.
type Failure struct {
	Path   string
	Reason string
}

// MoveEntry records one completed move. From is the original location,
// To the collision-resolved destination.
type MoveEntry struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// TransactionLog is the ordered record of every move performed by a
// single organization run. It is persisted as a hidden file in the
// organized root and replayed in reverse by undo.
type TransactionLog struct {
	ID        string      `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	Moves     []MoveEntry `json:"moves"`
}

// BucketSummary describes one destination bucket of an organization run.
type BucketSummary struct {
	Name    string
	Files   int
	Size    int64
	Samples []string // up to three example file names
}

// Report is the outcome of an organization run. A run that moved some
// files and failed on others is still a Report, with the failures
// attached; it is never collapsed into a bare error.
type Report struct {
	Root       string
	Mode       Mode
	DryRun     bool
	TotalFiles int
	TotalSize  int64
	Buckets    []BucketSummary
	Failures   []Failure
	Moved      int
}

// UndoResult is the outcome of replaying a transaction log in reverse.
type UndoResult struct {
	Restored     int
	Unrestorable []Failure
	RemovedDirs  []string
}

// DuplicateGroup is a set of two or more paths sharing a content digest.
type DuplicateGroup struct {
	Digest string
	Size   int64
	Paths  []string
}

// DedupReport is the outcome of a duplicate scan. Groups are ordered by
// the first occurrence of their digest in scan order.
type DedupReport struct {
	Root        string
	Scanned     int
	Groups      []DuplicateGroup
	Failures    []Failure
	Reclaimable int64 // bytes freed if each group kept a single copy
}
