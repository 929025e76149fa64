// Package hasher computes fast content digests for duplicate
// detection. xxHash is deliberately non-cryptographic: collisions are
// accepted as negligible for grouping identical files.
package hasher

import (
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"

	"github.com/moyu-x/file-organizer/pkg/logger"
)

// ChunkSize is the read granularity when streaming a file through the
// incremental digest.
const ChunkSize = 32 * 1024

// Sum streams the whole file through xxHash in fixed-size chunks and
// returns the 64-bit digest.
func Sum(fs afero.Fs, path string) (uint64, error) {
	file, err := fs.Open(path)
	if err != nil {
		logger.Get().Error().Err(err).Str("path", path).Msg("cannot open file for hashing")
		return 0, err
	}
	defer file.Close()

	digest := xxhash.New()
	buf := make([]byte, ChunkSize)
	for {
		n, err := file.Read(buf)
		if n > 0 {
			// xxhash.Digest.Write never fails.
			_, _ = digest.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Get().Error().Err(err).Str("path", path).Msg("hashing failed")
			return 0, err
		}
	}

	result := digest.Sum64()
	logger.Get().Trace().Str("path", path).Uint64("hash", result).Msg("file hashed")
	return result, nil
}
