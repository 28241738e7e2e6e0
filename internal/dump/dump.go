// Package dump stores and restores record arrays as headerless binary files
// through memory mappings.
//
// A dump file is the raw concatenation of zero or more wire-form records
// (see stat.RecordSize); trailing bytes smaller than one record are ignored
// on load. Large files are mapped chunk by chunk rather than whole, bounding
// peak address-space commitment for very large dumps.
//
// Writeback on the store path is asynchronous (MS_ASYNC): the codec does not
// wait for durable persistence. Callers that need durability must issue a
// separate sync on the file.
package dump

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"statmerge/internal/stat"
)

// loadBatchBytes is the mapping granularity on the load path. One chunk
// covers as many whole records as fit in 1 MiB. A var, not a const, so
// tests can shrink it to exercise the chunk loop without megabyte fixtures.
var loadBatchBytes = 1 << 20

// Store writes records to the pre-existing file at path, truncating it to
// exactly len(records)*stat.RecordSize bytes first. Creation of the file is
// the caller's responsibility.
//
// On failure the file may be left truncated; a half-written well-formed
// dump is never produced. Classification: ErrInvalidArgument for an empty
// path or record set, ErrBadFile when the file cannot be opened, ErrIO for
// truncate/mmap/msync failures.
func Store(path string, records []stat.Record) error {
	if path == "" || len(records) == 0 {
		return fmt.Errorf("%w: store needs a path and at least one record", stat.ErrInvalidArgument)
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", stat.ErrBadFile, path, err)
	}
	defer func() { _ = f.Close() }()

	size := int64(len(records)) * stat.RecordSize

	err = f.Truncate(size)
	if err != nil {
		return fmt.Errorf("%w: truncate %s to %d bytes: %v", stat.ErrIO, path, size, err)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return fmt.Errorf("%w: mmap %s: %v", stat.ErrIO, path, err)
	}

	for i, r := range records {
		stat.EncodeRecord(data[i*stat.RecordSize:], r)
	}

	err = unix.Msync(data, unix.MS_ASYNC)
	if err != nil {
		_ = unix.Munmap(data)

		return fmt.Errorf("%w: msync %s: %v", stat.ErrIO, path, err)
	}

	err = unix.Munmap(data)
	if err != nil {
		return fmt.Errorf("%w: munmap %s: %v", stat.ErrIO, path, err)
	}

	return nil
}

// Load reads every whole record from the file at path. The returned slice
// is exclusively the caller's; the codec retains nothing.
//
// Classification: ErrInvalidArgument for an empty path, ErrBadFile when the
// file cannot be opened, ErrEmptyFile when it holds less than one record,
// ErrIO for stat/mmap failures.
func Load(path string) ([]stat.Record, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: load needs a path", stat.ErrInvalidArgument)
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", stat.ErrBadFile, path, err)
	}
	defer func() { _ = f.Close() }()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %v", stat.ErrIO, path, err)
	}

	// Discard any trailing partial record.
	usable := fi.Size() - fi.Size()%stat.RecordSize
	if usable == 0 {
		return nil, fmt.Errorf("%w: %s", stat.ErrEmptyFile, path)
	}

	chunkBytes := int64(loadBatchBytes - loadBatchBytes%stat.RecordSize)
	records := make([]stat.Record, 0, usable/stat.RecordSize)

	for off := int64(0); off < usable; off += chunkBytes {
		n := chunkBytes
		if rest := usable - off; rest < n {
			n = rest
		}

		view, err := mapRegion(int(f.Fd()), off, int(n))
		if err != nil {
			return nil, fmt.Errorf("%w: mmap %s at %d: %v", stat.ErrIO, path, off, err)
		}

		for b := 0; b < int(n); b += stat.RecordSize {
			records = append(records, stat.DecodeRecord(view.bytes[b:]))
		}

		err = view.unmap()
		if err != nil {
			return nil, fmt.Errorf("%w: munmap %s: %v", stat.ErrIO, path, err)
		}
	}

	return records, nil
}
