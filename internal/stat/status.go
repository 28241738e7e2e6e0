package stat

import "errors"

// Error classification codes.
//
// Operations wrap these with path and call context; callers MUST classify
// with errors.Is, never by string.
var (
	// ErrBadFile indicates a dump file that cannot be opened.
	ErrBadFile = errors.New("stat: bad file")
	// ErrEmptyFile indicates a dump holding less than one whole record.
	ErrEmptyFile = errors.New("stat: empty file")
	// ErrInvalidArgument indicates a nil, empty, or out-of-range input.
	ErrInvalidArgument = errors.New("stat: invalid argument")
	// ErrResourceExhausted indicates an operation aborted mid-flight with
	// its invariants restored; doubles as the taxonomy's generic failure.
	ErrResourceExhausted = errors.New("stat: resource exhausted")
	// ErrIO indicates a stat, truncate, mmap, or msync failure.
	ErrIO = errors.New("stat: io failure")
)

// Status is the wire-stable taxonomy reported on the CLI's diagnostic
// surface. Values and spellings are fixed; new conditions must map onto an
// existing tag rather than extend the enum.
type Status int

const (
	StatusSuccess Status = iota
	StatusBadFile
	StatusEmptyFile
	StatusInvalidArgument
	StatusResourceExhausted
	StatusIOError
)

var statusNames = [...]string{
	StatusSuccess:           "SUCCESS",
	StatusBadFile:           "BAD_FILE",
	StatusEmptyFile:         "EMPTY_FILE",
	StatusInvalidArgument:   "INVALID_ARGUMENT",
	StatusResourceExhausted: "RESOURCE_EXHAUSTED",
	StatusIOError:           "IO_ERROR",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "RESOURCE_EXHAUSTED"
	}

	return statusNames[s]
}

// StatusOf maps an error chain onto the taxonomy. A nil error is SUCCESS;
// an unrecognized error is RESOURCE_EXHAUSTED, the taxonomy's generic
// failure tag.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrInvalidArgument):
		return StatusInvalidArgument
	case errors.Is(err, ErrBadFile):
		return StatusBadFile
	case errors.Is(err, ErrEmptyFile):
		return StatusEmptyFile
	case errors.Is(err, ErrIO):
		return StatusIOError
	default:
		return StatusResourceExhausted
	}
}
