package utfrange

import (
	"bytes"
	"fmt"
	"iter"
	"slices"

	"github.com/dshills/utfrange/codec"
	"github.com/dshills/utfrange/internal/bytesconv"
	"github.com/dshills/utfrange/internal/pool"
)

// String is an owned, immutable-in-place UTF-8 string with a code point view.
//
// The bytes are a private copy that is never written after construction.
// Operations that change the content, such as Sort and Assign, build a new
// buffer and then point the view at it.
//
// The zero String is empty and ready to use.
type String struct {
	buf  []byte
	view Range
}

// NewString returns a String holding a copy of b.
//
// By default b must be well-formed UTF-8. With WithReplaceInvalid, or any
// option that implies it, malformed sequences are replaced instead.
func NewString(b []byte, opts ...Option) (*String, error) {
	cfg := newConfig(opts)

	var buf []byte
	if cfg.lossy {
		var err error
		buf, err = codec.ReplaceInvalid(make([]byte, 0, len(b)), b, cfg.replaceOpts...)
		if err != nil {
			return nil, err
		}
	} else {
		buf = bytes.Clone(b)
	}

	view, err := NewRange(buf)
	if err != nil {
		return nil, err
	}
	return &String{buf: buf, view: view}, nil
}

// FromString returns a String holding a copy of s.
func FromString(s string, opts ...Option) (*String, error) {
	return NewString(bytesconv.StringToBytes(s), opts...)
}

// FromCString returns a String holding the bytes of b before its first NUL.
func FromCString(b []byte, opts ...Option) (*String, error) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return NewString(b, opts...)
}

// FromRange returns a String holding a copy of the bytes viewed by r.
// Bytes of the span outside r are not copied.
func FromRange(r Range) *String {
	buf := bytes.Clone(r.Bytes())
	return &String{buf: buf, view: wholeRange(buf, r.size)}
}

// FromCodepoints returns a String encoding cps.
// It fails with a *codec.CodePointError naming the index of the first value
// that is not a Unicode scalar value.
func FromCodepoints(cps []rune) (*String, error) {
	buf, err := codec.UTF32ToUTF8(make([]byte, 0, len(cps)), cps)
	if err != nil {
		return nil, err
	}
	return &String{buf: buf, view: wholeRange(buf, len(cps))}, nil
}

// wholeRange builds the Range over all of buf when its code point count is
// already known.
func wholeRange(buf []byte, size int) Range {
	return Range{
		begin: Iterator{data: buf},
		end:   Iterator{data: buf, pos: len(buf)},
		size:  size,
	}
}

// Clone returns a deep copy of s.
func (s *String) Clone() *String {
	return FromRange(s.view)
}

// Assign replaces the content of s with a copy of b.
// On error s is unchanged.
func (s *String) Assign(b []byte, opts ...Option) error {
	n, err := NewString(b, opts...)
	if err != nil {
		return err
	}
	*s = *n
	return nil
}

// AssignString replaces the content of s with a copy of str.
func (s *String) AssignString(str string, opts ...Option) error {
	return s.Assign(bytesconv.StringToBytes(str), opts...)
}

// View returns a Range over the content of s.
// The Range stays valid after s changes; it keeps viewing the old bytes.
func (s *String) View() Range { return s.view }

// Begin returns an iterator at the first code point.
func (s *String) Begin() Iterator { return s.view.Begin() }

// End returns an iterator just past the last code point.
func (s *String) End() Iterator { return s.view.End() }

// Len returns the number of code points.
func (s *String) Len() int { return s.view.Len() }

// RawLen returns the length in bytes.
func (s *String) RawLen() int { return s.view.RawLen() }

// IsEmpty reports whether s holds no code points.
func (s *String) IsEmpty() bool { return s.view.IsEmpty() }

// Bytes returns the encoded bytes without copying. They must not be modified.
func (s *String) Bytes() []byte { return s.buf[:len(s.buf):len(s.buf)] }

// String returns the content as a Go string.
func (s *String) String() string { return s.view.String() }

// Codepoints returns the decoded code points.
func (s *String) Codepoints() []rune { return s.view.Codepoints() }

// All iterates over the code points with their byte offsets.
func (s *String) All() iter.Seq2[int, rune] { return s.view.All() }

// Substr returns a new String holding length code points starting at code
// point pos. It panics under the same conditions as Range.Substr.
func (s *String) Substr(pos, length int) *String {
	return FromRange(s.view.Substr(pos, length))
}

// Sort reorders the code points of s into ascending numeric order.
// The number of code points does not change.
func (s *String) Sort() {
	if s.view.size < 2 {
		return
	}

	p := pool.GetRunes(s.view.size)
	cps, err := codec.UTF8ToUTF32(*p, s.view.Bytes())
	if err != nil {
		panic("utfrange: string holds malformed UTF-8: " + err.Error())
	}
	slices.Sort(cps)

	buf, err := codec.UTF32ToUTF8(make([]byte, 0, s.view.RawLen()), cps)
	*p = cps
	pool.PutRunes(p)
	if err != nil {
		panic("utfrange: sorted code points do not encode: " + err.Error())
	}

	s.buf = buf
	s.view = wholeRange(buf, len(cps))
}

// Compare orders s and other by code point value, returning -1, 0 or +1.
func (s *String) Compare(other *String) int { return s.view.Compare(other.view) }

// Equal reports whether s and other hold the same code points.
func (s *String) Equal(other *String) bool { return s.view.Equal(other.view) }

// Less reports whether s orders before other.
func (s *String) Less(other *String) bool { return s.view.Less(other.view) }

// LessOrEqual reports whether s does not order after other.
func (s *String) LessOrEqual(other *String) bool { return s.view.LessOrEqual(other.view) }

// Greater reports whether s orders after other.
func (s *String) Greater(other *String) bool { return s.view.Greater(other.view) }

// GreaterOrEqual reports whether s does not order before other.
func (s *String) GreaterOrEqual(other *String) bool { return s.view.GreaterOrEqual(other.view) }

// Hash returns the same value as Hash on the view of s.
func (s *String) Hash() uint { return s.view.Hash() }

// Format implements fmt.Formatter with the verbs described on Range.
func (s *String) Format(f fmt.State, verb rune) {
	formatRange(f, verb, s.view, "*utfrange.String")
}

// MarshalText implements encoding.TextMarshaler.
func (s *String) MarshalText() ([]byte, error) {
	return bytes.Clone(s.buf), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Malformed UTF-8 is
// rejected.
func (s *String) UnmarshalText(text []byte) error {
	return s.Assign(text)
}
