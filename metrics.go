package bumparena

// Remaining returns the number of free bytes left in the arena.
func (a *Arena) Remaining() int {
	return int(a.cursor.Load())
}

// Cap returns the arena's fixed byte capacity.
func (a *Arena) Cap() int {
	return len(a.buf)
}

// SizeInUse returns the number of bytes consumed since the last Reset,
// including internal fragmentation from alignment padding.
func (a *Arena) SizeInUse() int {
	return len(a.buf) - int(a.cursor.Load())
}
