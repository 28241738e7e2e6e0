package dump

import (
	"os"

	"golang.org/x/sys/unix"
)

// region is one mapped file range. raw covers the whole page-aligned
// mapping; bytes is the caller-visible window within it.
type region struct {
	raw   []byte
	bytes []byte
}

// mapRegion maps length bytes of fd starting at off. mmap offsets must be
// page-aligned, so the mapping is extended downward to the containing page
// boundary and the returned window skips the slack.
func mapRegion(fd int, off int64, length int) (region, error) {
	pageSize := int64(os.Getpagesize())

	aligned := off - off%pageSize
	shift := int(off - aligned)

	raw, err := unix.Mmap(fd, aligned, length+shift, unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return region{}, err
	}

	return region{raw: raw, bytes: raw[shift : shift+length]}, nil
}

func (r region) unmap() error {
	return unix.Munmap(r.raw)
}
