// Package bumparena implements a fixed-capacity, lock-free, thread-safe
// bump allocator (memory arena) for Go.
//
// # Overview
//
// A bump allocator pre-reserves one large block of memory and serves
// allocations by advancing a single cursor through it, with no
// per-allocation bookkeeping. This arena bumps downward: the cursor
// starts at the capacity and decreases, so aligning a candidate
// address is a subtract-then-mask with no overflow hazard. This is
// particularly useful for:
//
//   - Long-lived data: one allocation from the runtime, split into
//     everything a component needs for its lifetime
//   - Short-lived processing: parsing, encoding or request handling,
//     with all memory reclaimed by one Reset()
//   - Reducing garbage collector pressure under high allocation rates
//
// # Basic Usage
//
//	a, err := bumparena.New(1 << 20)
//	if err != nil {
//		// ...
//	}
//
//	// Allocate typed values
//	n := bumparena.Alloc(a, uint32(42))
//	s := bumparena.AllocSlice(a, 0, 100)
//	str := bumparena.AllocString(a, "hello")
//
//	// Reset for reuse (O(1) operation)
//	a.Reset()
//
// Every allocator has a Try form (TryAlloc, TryAllocSlice,
// TryAllocString, TryAllocBytes) that returns an error instead of
// panicking.
//
// # Thread Safety
//
// All allocation entry points may be called concurrently on the same
// Arena. There is no mutex: goroutines reserve disjoint byte ranges
// through a compare-and-swap retry loop on the cursor, so an
// allocation never blocks. It either commits or fails with
// ErrOutOfMemory. Reset requires externally established exclusive
// access: no other goroutine may hold a handle or be mid-allocation.
//
// # Memory Layout
//
// The block is a single fixed-size allocation; the arena never grows.
// Free space is [0, cursor) and allocated bytes occupy [cursor, Cap()).
// Successful reservations are pairwise disjoint, each region's start
// address satisfies the requested alignment, and at most alignment-1
// padding bytes are forfeited per allocation.
//
// # Important Notes
//
//   - Handles (pointers, slices, strings) are valid only until the
//     next Reset; using one after Reset reads whatever was written
//     there since.
//   - No individual deallocation, and no per-item cleanup on Reset:
//     values that own external resources (file handles, separately
//     allocated buffers) must be closed or released by the caller.
//   - Reset does not zero memory; fresh allocations after a Reset may
//     observe stale bytes until they overwrite them.
package bumparena
