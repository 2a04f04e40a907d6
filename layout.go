package bumparena

// powerOfTwo reports whether align is a valid alignment value.
func powerOfTwo(align uintptr) bool {
	return align != 0 && align&(align-1) == 0
}

// nextCursor computes the cursor position after reserving size bytes
// at the given alignment below cursor, where base is the address of
// the block's first byte. Subtract first, then round the resulting
// absolute address down to the alignment boundary; alignment is a
// property of addresses, not block offsets, so the base must be
// folded in before masking. With unsigned arithmetic the rounding
// itself cannot underflow, so the failures are size exceeding the
// free space and the aligned address landing below the block's base.
// Pure arithmetic, never touches shared state.
//
// The reserved range starts at address base+next; the bytes between
// next+size and cursor are forfeited alignment padding.
func nextCursor(base, cursor, size, align uintptr) (uintptr, bool) {
	if size > cursor {
		return 0, false
	}
	start := (base + cursor - size) &^ (align - 1)
	if start < base {
		return 0, false
	}
	return start - base, true
}
