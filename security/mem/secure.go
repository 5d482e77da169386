// Package mem provides utilities for securely erasing key material from
// memory once it has been consumed.
//
// Horcrux keys and Shamir shares must not outlive a single split or
// bind call: they exist only long enough to encrypt/decrypt or
// split/combine, and must never be persisted outside the shards
// themselves. Callers should clear every sensitive buffer as soon as
// they're done with it.
package mem

import (
	"runtime"
	"unsafe"
)

// ClearRawBytes overwrites the memory behind a fixed-size value (e.g. a
// [32]byte key) with zeros. Safe to call with a nil pointer.
func ClearRawBytes[T any](s *T) {
	if s == nil {
		return
	}

	p := unsafe.Pointer(s)
	size := unsafe.Sizeof(*s)
	b := (*[1 << 30]byte)(p)[:size:size]

	for i := range b {
		b[i] = 0
	}

	runtime.KeepAlive(s)
}

// ClearBytes overwrites every byte of b with zero. This is the primary
// entry point for Horcrux, since AES keys and Shamir share y-values are
// plain []byte, not fixed-size arrays.
func ClearBytes(b []byte) {
	if len(b) == 0 {
		return
	}
	for i := range b {
		b[i] = 0
	}
	// Defeat dead-store elimination so the zeroing isn't optimized away
	// before the GC has a chance to collect the backing array.
	runtime.KeepAlive(b)
}

// Zeroed reports whether every byte of b is zero.
func Zeroed(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
