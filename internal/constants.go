package internal

const (
	// HistoryFileName is the per-root transaction log, hidden so the
	// scanner never picks it up as an organizable file.
	HistoryFileName = ".organization_history.json"

	// HiddenPrefix marks files the scanner must skip.
	HiddenPrefix = "."

	// DefaultCachePath is the hash cache used by the duplicate detector.
	DefaultCachePath = "~/.file-organizer/hashes.db"

	// DefaultWorkers is the hash pool size.
	DefaultWorkers = 4

	// DefaultBufferSize is the channel capacity of the hash pool.
	DefaultBufferSize = 1000
)
