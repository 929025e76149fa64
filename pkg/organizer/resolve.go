package organizer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ResolveDestination returns a path inside targetDir that does not
// exist yet, creating targetDir (and intermediates) first. When
// targetDir/name is taken, a numeric suffix is appended to the stem
// (name_1.ext, name_2.ext, ...) until a free path is found. The
// extension is never altered.
//
// The existence check and the later move are not atomic; a concurrent
// writer can claim the returned path in between. Single-operation usage
// makes that acceptable.
func ResolveDestination(fs afero.Fs, targetDir, name string) (string, error) {
	if err := fs.MkdirAll(targetDir, 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", targetDir, err)
	}

	dest := filepath.Join(targetDir, name)
	switch _, err := fs.Stat(dest); {
	case os.IsNotExist(err):
		return dest, nil
	case err != nil:
		return "", fmt.Errorf("stat %s: %w", dest, err)
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 1; ; i++ {
		candidate := filepath.Join(targetDir, fmt.Sprintf("%s_%d%s", stem, i, ext))
		switch _, err := fs.Stat(candidate); {
		case os.IsNotExist(err):
			return candidate, nil
		case err != nil:
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
	}
}
