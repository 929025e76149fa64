// Package database keeps a persistent cache of file content digests so
// repeated duplicate scans skip files whose size and mtime are
// unchanged.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/moyu-x/file-organizer/pkg/logger"
)

type entry struct {
	size   int64
	mtime  int64
	digest uint64
}

type Cache struct {
	db  *sql.DB
	mem map[string]entry
	mu  sync.RWMutex
}

// Open creates or opens the cache at path. A leading "~/" expands to
// the user's home directory.
func Open(path string) (*Cache, error) {
	expanded, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(expanded), 0755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	dsn := expanded + "?_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open hash cache: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS file_hashes (
		path  TEXT PRIMARY KEY,
		size  INTEGER NOT NULL,
		mtime INTEGER NOT NULL,
		hash  TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create cache schema: %w", err)
	}

	logger.Get().Debug().Str("path", expanded).Msg("hash cache opened")
	return &Cache{db: db, mem: make(map[string]entry)}, nil
}

func expandPath(path string) (string, error) {
	if len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == '\\') {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

// Lookup returns the cached digest for path, hitting only when both
// size and mtime still match the recorded values.
func (c *Cache) Lookup(path string, size, mtime int64) (uint64, bool, error) {
	c.mu.RLock()
	e, ok := c.mem[path]
	c.mu.RUnlock()

	if !ok {
		row := c.db.QueryRow(`SELECT size, mtime, hash FROM file_hashes WHERE path = ?`, path)
		var hash string
		if err := row.Scan(&e.size, &e.mtime, &hash); err != nil {
			if err == sql.ErrNoRows {
				return 0, false, nil
			}
			return 0, false, fmt.Errorf("query hash cache: %w", err)
		}
		digest, err := strconv.ParseUint(hash, 16, 64)
		if err != nil {
			return 0, false, fmt.Errorf("corrupt cache entry for %s: %w", path, err)
		}
		e.digest = digest

		c.mu.Lock()
		c.mem[path] = e
		c.mu.Unlock()
	}

	if e.size != size || e.mtime != mtime {
		return 0, false, nil
	}
	return e.digest, true, nil
}

// Store records a digest for path, replacing any stale entry.
func (c *Cache) Store(path string, size, mtime int64, digest uint64) error {
	hash := fmt.Sprintf("%016x", digest)
	if _, err := c.db.Exec(
		`INSERT OR REPLACE INTO file_hashes (path, size, mtime, hash) VALUES (?, ?, ?, ?)`,
		path, size, mtime, hash,
	); err != nil {
		return fmt.Errorf("store hash: %w", err)
	}

	c.mu.Lock()
	c.mem[path] = entry{size: size, mtime: mtime, digest: digest}
	c.mu.Unlock()
	return nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}
