package bumparena

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantErr  error
	}{
		{"valid capacity", 1024, nil},
		{"single byte", 1, nil},
		{"zero capacity", 0, ErrInvalidCapacity},
		{"negative capacity", -1, ErrInvalidCapacity},
		{"capacity beyond address space", math.MaxInt, ErrInvalidCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.capacity)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, a)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.capacity, a.Cap())
			assert.Equal(t, tt.capacity, a.Remaining())
			assert.Equal(t, 0, a.SizeInUse())
		})
	}
}

func TestMustNew(t *testing.T) {
	assert.Equal(t, 64, MustNew(64).Cap())
	assert.Panics(t, func() { MustNew(0) })
}

func TestTryAllocBytes(t *testing.T) {
	a := MustNew(1024)

	b1, err := a.TryAllocBytes(100)
	require.NoError(t, err)
	assert.Len(t, b1, 100)
	assert.Equal(t, 924, a.Remaining())
	assert.Equal(t, 100, a.SizeInUse())

	// Downward bumping: the second region sits directly below the first.
	b2, err := a.TryAllocBytes(24)
	require.NoError(t, err)
	assert.Len(t, b2, 24)
	assert.Equal(t, 900, a.Remaining())
	assert.Equal(t, uintptr(unsafe.Pointer(&b1[0])), uintptr(unsafe.Pointer(&b2[0]))+24)

	// Zero-length request consumes nothing.
	b3, err := a.TryAllocBytes(0)
	require.NoError(t, err)
	assert.Nil(t, b3)
	assert.Equal(t, 900, a.Remaining())

	_, err = a.TryAllocBytes(-1)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestTryAllocBytesAligned(t *testing.T) {
	a := MustNew(64)

	b, err := a.TryAllocBytesAligned(3, 8)
	require.NoError(t, err)
	assert.Len(t, b, 3)
	assert.Zero(t, uintptr(unsafe.Pointer(&b[0]))%8)
	// 64 - 3 = 61, rounded down to 56: five padding bytes forfeited.
	assert.Equal(t, 56, a.Remaining())

	for _, align := range []int{0, -1, 3, 6, 12} {
		_, err := a.TryAllocBytesAligned(8, align)
		assert.ErrorIs(t, err, ErrInvalidRequest, "alignment %d", align)
	}
}

// TestTryAllocBytesAlignedAddressAlignment requests alignments far
// beyond what the backing buffer's base is guaranteed to have, across
// many odd-sized arenas so the buffers land at varied base addresses.
// The invariant is on the returned ADDRESS, not the offset within the
// block.
func TestTryAllocBytesAlignedAddressAlignment(t *testing.T) {
	for i := 0; i < 200; i++ {
		a := MustNew(100)

		b, err := a.TryAllocBytesAligned(4, 64)
		require.NoError(t, err, "arena %d", i)
		addr := uintptr(unsafe.Pointer(&b[0]))
		assert.Zero(t, addr%64, "arena %d: address %#x not 64-byte aligned", i, addr)
		assert.Less(t, a.SizeInUse()-4, 64, "arena %d: padding must stay below the alignment", i)

		// An alignment wider than the block may leave no valid slot;
		// the only acceptable outcomes are an aligned region or a clean
		// out-of-memory, never a misaligned region.
		w, err := a.TryAllocBytesAligned(1, 4096)
		if err == nil {
			assert.Zero(t, uintptr(unsafe.Pointer(&w[0]))%4096, "arena %d", i)
		} else {
			assert.ErrorIs(t, err, ErrOutOfMemory, "arena %d", i)
		}
	}
}

func TestExhaustionLeavesCursorUnchanged(t *testing.T) {
	a := MustNew(16)

	_, err := a.TryAllocBytes(17)
	require.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, 16, a.Remaining())

	// A smaller request still succeeds after a failed one.
	b, err := a.TryAllocBytes(16)
	require.NoError(t, err)
	assert.Len(t, b, 16)
	assert.Equal(t, 0, a.Remaining())

	_, err = a.TryAllocBytes(1)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, 0, a.Remaining())
}

func TestCursorMonotonicity(t *testing.T) {
	a := MustNew(1 << 12)

	prev := a.Remaining()
	for _, n := range []int{1, 7, 64, 3, 128, 0, 9} {
		_, err := a.TryAllocBytes(n)
		require.NoError(t, err)
		cur := a.Remaining()
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}

	a.Reset()
	assert.Equal(t, a.Cap(), a.Remaining())
	assert.Equal(t, 0, a.SizeInUse())
}

func TestResetReclaimsEverything(t *testing.T) {
	a := MustNew(128)

	_, err := a.TryAllocBytes(128)
	require.NoError(t, err)
	_, err = a.TryAllocBytes(1)
	require.ErrorIs(t, err, ErrOutOfMemory)

	a.Reset()

	// The same shape fits again after the reset.
	b, err := a.TryAllocBytes(128)
	require.NoError(t, err)
	assert.Len(t, b, 128)
}

func TestAllocBytesPanicsWhenFull(t *testing.T) {
	a := MustNew(8)
	assert.Len(t, a.AllocBytes(8), 8)
	assert.Panics(t, func() { a.AllocBytes(1) })
}
