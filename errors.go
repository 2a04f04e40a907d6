package bumparena

import "errors"

var (
	// ErrInvalidCapacity is returned by New when the requested byte
	// capacity is zero or negative. No arena is produced.
	ErrInvalidCapacity = errors.New("bumparena: capacity must be greater than zero")

	// ErrOutOfMemory is returned when a request does not fit in the
	// remaining free space, including the case where alignment padding
	// pushes the requirement past the bottom of the block. The cursor
	// is left unchanged and the caller keeps its input.
	ErrOutOfMemory = errors.New("bumparena: out of memory")

	// ErrInvalidRequest is returned for malformed inputs: a
	// non-power-of-two alignment, a negative size or count, or a
	// count*size computation that overflows. Reported before any
	// shared state is touched.
	ErrInvalidRequest = errors.New("bumparena: invalid request")
)
