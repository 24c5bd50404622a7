// Package pool recycles the scratch buffers used while decoding and
// re-encoding text.
//
// Buffers are handed out as pointers to slices so that sync.Pool does not
// allocate when they are returned. Oversized buffers are dropped on Put to
// keep a single large string from pinning memory in the pool.
package pool

import "sync"

// maxPooledCap is the largest capacity kept for reuse.
const maxPooledCap = 64 * 1024

// runePool holds *[]rune scratch slices for decoded code points.
var runePool = sync.Pool{
	New: func() interface{} {
		s := make([]rune, 0, 256)
		return &s
	},
}

// GetRunes retrieves an empty rune slice with at least the given capacity.
func GetRunes(capacity int) *[]rune {
	s := runePool.Get().(*[]rune)
	if cap(*s) < capacity {
		*s = make([]rune, 0, capacity)
	}
	*s = (*s)[:0]
	return s
}

// PutRunes returns a rune slice to the pool.
// The slice should not be used after calling this function.
func PutRunes(s *[]rune) {
	if s == nil || cap(*s) > maxPooledCap {
		return
	}
	*s = (*s)[:0]
	runePool.Put(s)
}

// bytePool holds *[]byte scratch slices for encoded output.
var bytePool = sync.Pool{
	New: func() interface{} {
		s := make([]byte, 0, 256)
		return &s
	},
}

// GetBytes retrieves an empty byte slice with at least the given capacity.
func GetBytes(capacity int) *[]byte {
	s := bytePool.Get().(*[]byte)
	if cap(*s) < capacity {
		*s = make([]byte, 0, capacity)
	}
	*s = (*s)[:0]
	return s
}

// PutBytes returns a byte slice to the pool.
// The slice should not be used after calling this function.
func PutBytes(s *[]byte) {
	if s == nil || cap(*s) > maxPooledCap {
		return
	}
	*s = (*s)[:0]
	bytePool.Put(s)
}
