// Package bumparena implements a fixed-capacity, lock-free bump
// allocator (memory arena). One contiguous block is reserved up front;
// allocations carve disjoint byte ranges out of it by bumping a single
// atomic cursor downward, and Reset() reclaims the whole block in one
// operation.
package bumparena

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Arena is a fixed-capacity downward bump allocator. All allocation
// methods are safe for concurrent use by multiple goroutines; the only
// shared mutable state is the cursor, updated through a compare-and-swap
// retry loop, so allocations never block.
//
// The free region is [0, cursor) and allocated bytes live in
// [cursor, Cap()). The cursor only moves toward zero between resets.
type Arena struct {
	cursor atomic.Uintptr

	// Keeps CAS traffic on the cursor off the cache line holding the
	// read-only buffer header.
	_ cpu.CacheLinePad

	buf []byte
}

// New creates an Arena backed by a single block of exactly byteCapacity
// bytes. Returns ErrInvalidCapacity if byteCapacity <= 0 or exceeds
// what the runtime can provide; no partial arena is produced either
// way.
func New(byteCapacity int) (a *Arena, err error) {
	if byteCapacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, byteCapacity)
	}
	// make rejects lengths beyond the runtime's allocation limit by
	// panicking; report that as a construction error.
	defer func() {
		if r := recover(); r != nil {
			a = nil
			err = fmt.Errorf("%w: cannot reserve %d bytes: %v", ErrInvalidCapacity, byteCapacity, r)
		}
	}()
	a = &Arena{buf: make([]byte, byteCapacity)}
	a.cursor.Store(uintptr(byteCapacity))
	return a, nil
}

// MustNew is like New but panics on failure.
func MustNew(byteCapacity int) *Arena {
	a, err := New(byteCapacity)
	if err != nil {
		panic(err)
	}
	return a
}

// reserve commits size bytes at the given alignment and returns the
// offset of the reserved range. The range's absolute start address,
// not its offset, is what satisfies the alignment: the block's base
// carries no alignment guarantee beyond the runtime's, so the base is
// part of the calculation. Alignment is validated before any shared
// state is read. The commit is a compare-and-swap retry loop: a CAS
// failure means another goroutine moved the cursor, so the candidate
// is recomputed from the fresh value; an out-of-memory result is
// final for this request and is returned without retrying.
func (a *Arena) reserve(size, align uintptr) (uintptr, error) {
	if !powerOfTwo(align) {
		return 0, fmt.Errorf("%w: alignment %d is not a power of two", ErrInvalidRequest, align)
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(a.buf)))
	for {
		cur := a.cursor.Load()
		next, ok := nextCursor(base, cur, size, align)
		if !ok {
			return 0, fmt.Errorf("%w: need %d bytes, %d free", ErrOutOfMemory, size, cur)
		}
		if a.cursor.CompareAndSwap(cur, next) {
			return next, nil
		}
	}
}

// at returns a pointer to the byte at offset off inside the block.
func (a *Arena) at(off uintptr) unsafe.Pointer {
	return unsafe.Pointer(&a.buf[off])
}

// TryAllocBytes reserves n bytes at byte alignment and returns a
// mutable slice over them. Returns nil for n == 0 and
// ErrInvalidRequest for negative n.
func (a *Arena) TryAllocBytes(n int) ([]byte, error) {
	return a.TryAllocBytesAligned(n, 1)
}

// TryAllocBytesAligned reserves n bytes whose start address is a
// multiple of align. align must be a power of two.
func (a *Arena) TryAllocBytesAligned(n, align int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrInvalidRequest, n)
	}
	if align <= 0 || !powerOfTwo(uintptr(align)) {
		return nil, fmt.Errorf("%w: alignment %d is not a power of two", ErrInvalidRequest, align)
	}
	if n == 0 {
		return nil, nil
	}
	off, err := a.reserve(uintptr(n), uintptr(align))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(a.at(off)), n), nil
}

// AllocBytes is like TryAllocBytes but panics on failure.
func (a *Arena) AllocBytes(n int) []byte {
	b, err := a.TryAllocBytes(n)
	if err != nil {
		panic(err)
	}
	return b
}

// Reset restores the cursor to the full capacity, making every byte
// available again. The caller must guarantee that no pointer, slice or
// string obtained from this arena is still in use; a handle used after
// a Reset observes whatever later allocations wrote there. Memory is
// not zeroed.
func (a *Arena) Reset() {
	a.cursor.Store(uintptr(len(a.buf)))
}
