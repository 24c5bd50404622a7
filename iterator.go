package utfrange

import "github.com/dshills/utfrange/codec"

// Iterator is a decoding position inside a byte span.
//
// The span is the whole range the iterator may move through, and the
// position is a byte offset on a code point boundary. Iterators are values;
// copying one gives an independent position over the same span.
// Two iterators share a span when they share its backing storage and
// length; equal content in separate buffers is a different span.
type Iterator struct {
	data []byte
	pos  int
}

// NewIterator returns an iterator at the start of b.
func NewIterator(b []byte) Iterator {
	return Iterator{data: b}
}

// IteratorAt returns an iterator over b positioned at byte offset pos.
//
// pos must lie in [0, len(b)]; otherwise the error is codec.ErrNotEnoughRoom.
// A pos that points at a continuation byte is not a code point boundary and
// yields a *codec.UTF8Error.
func IteratorAt(b []byte, pos int) (Iterator, error) {
	if pos < 0 || pos > len(b) {
		return Iterator{}, codec.ErrNotEnoughRoom
	}
	if pos < len(b) && b[pos]&0xC0 == 0x80 {
		return Iterator{}, &codec.UTF8Error{Byte: b[pos], Offset: pos, Reason: codec.ReasonInvalidLead}
	}
	return Iterator{data: b, pos: pos}, nil
}

// Base returns the byte offset of the iterator within its span.
func (it Iterator) Base() int { return it.pos }

// Span returns the full byte span the iterator moves over.
func (it Iterator) Span() []byte { return it.data }

// Rest returns the bytes from the current position to the end of the span.
func (it Iterator) Rest() []byte { return it.data[it.pos:] }

// AtStart reports whether the iterator is at the start of its span.
func (it Iterator) AtStart() bool { return it.pos == 0 }

// AtEnd reports whether the iterator is at the end of its span.
func (it Iterator) AtEnd() bool { return it.pos == len(it.data) }

// ToStart returns an iterator at the start of the same span.
func (it Iterator) ToStart() Iterator { return Iterator{data: it.data} }

// ToEnd returns an iterator at the end of the same span.
func (it Iterator) ToEnd() Iterator { return Iterator{data: it.data, pos: len(it.data)} }

// Value decodes the code point at the current position without moving.
// At the end of the span the error is codec.ErrNotEnoughRoom.
func (it Iterator) Value() (rune, error) {
	r, _, err := codec.DecodeNext(it.data[it.pos:])
	if err != nil {
		return 0, codec.WithOffset(err, it.pos)
	}
	return r, nil
}

// Next moves forward by one code point.
// On error the position is unchanged.
func (it *Iterator) Next() error {
	_, n, err := codec.DecodeNext(it.data[it.pos:])
	if err != nil {
		return codec.WithOffset(err, it.pos)
	}
	it.pos += n
	return nil
}

// Prev moves back by one code point.
// On error the position is unchanged.
func (it *Iterator) Prev() error {
	_, n, err := codec.DecodePrior(it.data[:it.pos])
	if err != nil {
		return err
	}
	it.pos -= n
	return nil
}

// SameRange reports whether it and other move over the same span.
// Two empty spans are the same.
func (it Iterator) SameRange(other Iterator) bool {
	return sameSpan(it.data, other.data)
}

// Equal reports whether both iterators are at the same position.
// Iterators over different spans cannot be compared and yield
// ErrMismatchedRange. Empty spans are never distinguished, so two iterators
// over any empty spans are equal.
func (it Iterator) Equal(other Iterator) (bool, error) {
	if !it.SameRange(other) {
		return false, ErrMismatchedRange
	}
	return it.pos == other.pos, nil
}

// Compare orders two iterators over the same span by position, returning
// -1, 0 or +1. Like Equal, it treats all empty spans as the same span.
func (it Iterator) Compare(other Iterator) (int, error) {
	if !it.SameRange(other) {
		return 0, ErrMismatchedRange
	}
	switch {
	case it.pos < other.pos:
		return -1, nil
	case it.pos > other.pos:
		return 1, nil
	}
	return 0, nil
}

func sameSpan(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
