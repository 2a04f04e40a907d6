package bumparena

import (
	"fmt"
	"unsafe"
)

// TryAlloc reserves space for one value of type T, copies val into it
// and returns a pointer to the arena-resident copy. The pointer is
// valid until the next Reset. On failure val is simply not consumed;
// the caller still holds it.
//
// Zero-size types need no arena space and always succeed.
func TryAlloc[T any](a *Arena, val T) (*T, error) {
	size := unsafe.Sizeof(val)
	if size == 0 {
		return new(T), nil
	}
	off, err := a.reserve(size, unsafe.Alignof(val))
	if err != nil {
		return nil, err
	}
	p := (*T)(a.at(off))
	*p = val
	return p, nil
}

// Alloc is like TryAlloc but panics on failure.
func Alloc[T any](a *Arena, val T) *T {
	p, err := TryAlloc(a, val)
	if err != nil {
		panic(err)
	}
	return p
}

// TryAllocSlice reserves a contiguous region for n values of type T,
// sets every element to initial and returns a mutable slice over the
// region. A count of 0 yields a valid empty slice without consuming
// arena space.
func TryAllocSlice[T any](a *Arena, initial T, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrInvalidRequest, n)
	}
	if n == 0 {
		return []T{}, nil
	}
	elem := unsafe.Sizeof(initial)
	if elem == 0 {
		return make([]T, n), nil
	}
	if uintptr(n) > ^uintptr(0)/elem {
		return nil, fmt.Errorf("%w: count %d of %d-byte elements overflows", ErrInvalidRequest, n, elem)
	}
	off, err := a.reserve(uintptr(n)*elem, unsafe.Alignof(initial))
	if err != nil {
		return nil, err
	}
	s := unsafe.Slice((*T)(a.at(off)), n)
	for i := range s {
		s[i] = initial
	}
	return s, nil
}

// AllocSlice is like TryAllocSlice but panics on failure.
func AllocSlice[T any](a *Arena, initial T, n int) []T {
	s, err := TryAllocSlice(a, initial, n)
	if err != nil {
		panic(err)
	}
	return s
}

// TryAllocString copies s into the arena and returns an immutable
// string aliasing the arena-resident bytes. Because the result is
// read-only, any number of goroutines may share it without further
// synchronization. An empty input returns "" without consuming space.
func TryAllocString(a *Arena, s string) (string, error) {
	if len(s) == 0 {
		return "", nil
	}
	off, err := a.reserve(uintptr(len(s)), 1)
	if err != nil {
		return "", err
	}
	b := unsafe.Slice((*byte)(a.at(off)), len(s))
	copy(b, s)
	return unsafe.String(&b[0], len(b)), nil
}

// AllocString is like TryAllocString but panics on failure.
func AllocString(a *Arena, s string) string {
	out, err := TryAllocString(a, s)
	if err != nil {
		panic(err)
	}
	return out
}
