package utfrange

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"iter"
	"strconv"

	"github.com/dshills/utfrange/codec"
	"github.com/dshills/utfrange/internal/bytesconv"
)

// Range is a view of well-formed UTF-8 bytes that tracks its length in code
// points.
//
// A Range never owns its bytes. Its begin and end iterators share one span,
// begin is never after end, and Len always equals the number of code points
// between them. The bytes are validated when the Range is created or reset,
// which is why the movement and comparison methods cannot fail.
//
// The zero Range is empty.
type Range struct {
	begin Iterator
	end   Iterator
	size  int
}

// NewRange returns a Range over all of b.
// It fails if b is not well-formed UTF-8.
func NewRange(b []byte) (Range, error) {
	return RangeBetween(NewIterator(b), Iterator{data: b, pos: len(b)})
}

// RangeOf returns a Range over the bytes of s without copying them.
func RangeOf(s string) (Range, error) {
	return NewRange(bytesconv.StringToBytes(s))
}

// RangeFromCString returns a Range over b up to, not including, its first
// NUL byte. Without a NUL it covers all of b.
func RangeFromCString(b []byte) (Range, error) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return NewRange(b)
}

// RangeBetween returns the Range from first to last.
//
// Both iterators must move over the same span and first must not be after
// last; otherwise the error is ErrMismatchedRange or ErrInvalidRange.
func RangeBetween(first, last Iterator) (Range, error) {
	var r Range
	if err := r.reset(first, last); err != nil {
		return Range{}, err
	}
	return r, nil
}

// reset is the single place where begin, end and size are recomputed
// together. r is left untouched on error.
func (r *Range) reset(first, last Iterator) error {
	if !first.SameRange(last) {
		return ErrMismatchedRange
	}
	if first.pos > last.pos {
		return ErrInvalidRange
	}
	n, err := codec.Distance(first.data[first.pos:last.pos])
	if err != nil {
		return codec.WithOffset(err, first.pos)
	}
	r.begin, r.end, r.size = first, last, n
	return nil
}

// Set moves both ends of the range.
func (r *Range) Set(begin, end Iterator) error {
	return r.reset(begin, end)
}

// SetBegin moves the start of the range and keeps its end.
func (r *Range) SetBegin(begin Iterator) error {
	return r.reset(begin, r.end)
}

// SetEnd moves the end of the range and keeps its start.
func (r *Range) SetEnd(end Iterator) error {
	return r.reset(r.begin, end)
}

// Begin returns an iterator at the first code point.
func (r Range) Begin() Iterator { return r.begin }

// End returns an iterator just past the last code point.
func (r Range) End() Iterator { return r.end }

// Len returns the number of code points in the range.
func (r Range) Len() int { return r.size }

// IsEmpty reports whether the range holds no code points.
func (r Range) IsEmpty() bool { return r.size == 0 }

// AtEnd reports whether the range has been consumed.
func (r Range) AtEnd() bool { return r.size == 0 }

// Next drops the first code point. It reports false, and does nothing, when
// the range is already empty.
func (r *Range) Next() bool {
	if r.size == 0 {
		return false
	}
	r.Advance(1)
	return true
}

// Advance drops the first n code points.
// It panics if n is negative or greater than Len.
func (r *Range) Advance(n int) {
	if n < 0 || n > r.size {
		panic(fmt.Sprintf("utfrange: Advance(%d) out of range [0, %d]", n, r.size))
	}
	r.begin.pos += r.offset(n)
	r.size -= n
}

// SafeAdvance drops up to n code points, stopping at the end of the range.
func (r *Range) SafeAdvance(n int) {
	r.Advance(min(max(n, 0), r.size))
}

// Clear consumes the whole range, leaving it empty at its end position.
func (r *Range) Clear() {
	r.begin = r.end
	r.size = 0
}

// offset returns the byte distance covered by the first n code points.
func (r Range) offset(n int) int {
	if n == 0 {
		return 0
	}
	off, err := codec.Advance(r.Bytes(), n)
	if err != nil {
		panic("utfrange: range holds malformed UTF-8: " + err.Error())
	}
	return off
}

// Substr returns the sub-range of length code points starting at code point
// pos. The result shares the span of r.
// It panics unless 0 <= pos, 0 <= length and pos+length <= Len.
func (r Range) Substr(pos, length int) Range {
	if pos < 0 || length < 0 || pos > r.size-length {
		panic(fmt.Sprintf("utfrange: Substr(%d, %d) out of range for length %d", pos, length, r.size))
	}
	start := r.begin.pos + r.offset(pos)
	sub := r
	sub.begin.pos = start
	sub.size = length
	sub.end.pos = start + sub.offset(length)
	return sub
}

// Compare orders r and other lexicographically by code point value and
// returns -1, 0 or +1. A proper prefix orders before the longer range.
func (r Range) Compare(other Range) int {
	a, b := r.Bytes(), other.Bytes()
	for len(a) > 0 && len(b) > 0 {
		ra, na := decodeValid(a)
		rb, nb := decodeValid(b)
		if ra != rb {
			if ra < rb {
				return -1
			}
			return 1
		}
		a, b = a[na:], b[nb:]
	}
	switch {
	case len(a) > 0:
		return 1
	case len(b) > 0:
		return -1
	}
	return 0
}

// Equal reports whether both ranges hold the same code points.
func (r Range) Equal(other Range) bool {
	return r.size == other.size && bytes.Equal(r.Bytes(), other.Bytes())
}

// Less reports whether r orders before other.
func (r Range) Less(other Range) bool { return r.Compare(other) < 0 }

// LessOrEqual reports whether r does not order after other.
func (r Range) LessOrEqual(other Range) bool { return r.Compare(other) <= 0 }

// Greater reports whether r orders after other.
func (r Range) Greater(other Range) bool { return r.Compare(other) > 0 }

// GreaterOrEqual reports whether r does not order before other.
func (r Range) GreaterOrEqual(other Range) bool { return r.Compare(other) >= 0 }

// EqualString reports whether the range holds exactly the bytes of s.
func (r Range) EqualString(s string) bool {
	return bytesconv.BytesToString(r.Bytes()) == s
}

// Codepoints returns the code points of the range.
func (r Range) Codepoints() []rune {
	out := make([]rune, 0, r.size)
	for b := r.Bytes(); len(b) > 0; {
		c, n := decodeValid(b)
		out = append(out, c)
		b = b[n:]
	}
	return out
}

// All iterates over the code points of the range with their byte offsets
// relative to the start of the range.
func (r Range) All() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		b := r.Bytes()
		for i := 0; i < len(b); {
			c, n := decodeValid(b[i:])
			if !yield(i, c) {
				return
			}
			i += n
		}
	}
}

// Bytes returns the bytes of the range without copying. The result aliases
// the underlying span and must not be modified.
func (r Range) Bytes() []byte {
	return r.begin.data[r.begin.pos:r.end.pos:r.end.pos]
}

// RawBegin returns the byte offset of the range start within its span.
func (r Range) RawBegin() int { return r.begin.pos }

// RawEnd returns the byte offset of the range end within its span.
func (r Range) RawEnd() int { return r.end.pos }

// RawLen returns the length of the range in bytes.
func (r Range) RawLen() int { return r.end.pos - r.begin.pos }

// String returns a copy of the range as a Go string.
func (r Range) String() string {
	return string(r.Bytes())
}

// Hash returns the FNV-1a hash of the range bytes, using the 64-bit variant
// on 64-bit platforms and the 32-bit variant otherwise. Equal ranges hash
// equally.
func (r Range) Hash() uint {
	return hashBytes(r.Bytes())
}

// Format implements fmt.Formatter.
func (r Range) Format(f fmt.State, verb rune) {
	formatRange(f, verb, r, "utfrange.Range")
}

func hashBytes(b []byte) uint {
	if strconv.IntSize == 64 {
		h := fnv.New64a()
		h.Write(b)
		return uint(h.Sum64())
	}
	h := fnv.New32a()
	h.Write(b)
	return uint(h.Sum32())
}

// decodeValid decodes the first code point of b, which must be non-empty
// well-formed UTF-8.
func decodeValid(b []byte) (rune, int) {
	if b[0] < 0x80 {
		return rune(b[0]), 1
	}
	c, n, err := codec.DecodeNext(b)
	if err != nil {
		panic("utfrange: range holds malformed UTF-8: " + err.Error())
	}
	return c, n
}
