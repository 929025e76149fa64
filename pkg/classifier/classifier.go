// Package classifier maps files to destination buckets: an
// extension-based category, a modification-date bucket, or a
// content-sniffed category.
package classifier

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// DefaultCategory is returned for any extension absent from the table,
// including files without an extension.
const DefaultCategory = "Other"

// Table maps a category label to the lowercase dot-extensions that
// belong to it. Tables are injected so tests can substitute minimal
// ones without touching the real rules.
type Table map[string][]string

// DefaultTable returns the built-in category rules.
func DefaultTable() Table {
	return Table{
		"Images":      {".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp", ".ico", ".tiff"},
		"Documents":   {".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt", ".xls", ".xlsx", ".ppt", ".pptx", ".csv"},
		"Videos":      {".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm", ".m4v"},
		"Audio":       {".mp3", ".wav", ".flac", ".aac", ".ogg", ".wma", ".m4a"},
		"Archives":    {".zip", ".rar", ".7z", ".tar", ".gz", ".bz2"},
		"Code":        {".py", ".js", ".java", ".cpp", ".c", ".h", ".cs", ".php", ".html", ".css", ".rb", ".go", ".rs"},
		"Executables": {".exe", ".msi", ".bat", ".sh", ".app", ".dmg"},
		"Data":        {".json", ".xml", ".yaml", ".yml", ".sql", ".db", ".sqlite"},
		"Books":       {".epub", ".mobi", ".azw", ".azw3"},
		"Fonts":       {".ttf", ".otf", ".woff", ".woff2"},
	}
}

type Classifier struct {
	byExt map[string]string
}

func New(table Table) *Classifier {
	byExt := make(map[string]string)
	for label, exts := range table {
		for _, ext := range exts {
			byExt[strings.ToLower(ext)] = label
		}
	}
	return &Classifier{byExt: byExt}
}

func NewDefault() *Classifier {
	return New(DefaultTable())
}

// Classify returns the category label for a path. It is a pure function
// of the path's extension, case-insensitive, and total: every input
// produces a label.
func (c *Classifier) Classify(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if label, ok := c.byExt[ext]; ok {
		return label
	}
	return DefaultCategory
}

// DateBucket derives the "<year>/<month-name>" bucket from a
// modification time, e.g. "2023/March".
func DateBucket(t time.Time) string {
	return fmt.Sprintf("%d/%s", t.Year(), t.Month().String())
}
