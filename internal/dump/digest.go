package dump

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"

	"statmerge/internal/stat"
)

// Digest fingerprints the file at path with xxhash64 and reports its byte
// length. The fingerprint is a tool-level convenience for comparing dumps;
// the dump format itself stays headerless and carries no checksum.
func Digest(path string) (sum uint64, size int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: open %s: %v", stat.ErrBadFile, path, err)
	}
	defer func() { _ = f.Close() }()

	h := xxhash.New()

	size, err = io.Copy(h, f)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: read %s: %v", stat.ErrIO, path, err)
	}

	return h.Sum64(), size, nil
}
