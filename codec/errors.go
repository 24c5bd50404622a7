package codec

import (
	"errors"
	"fmt"
)

// Errors returned by codec operations.
var (
	// ErrInvalidCodePoint indicates a value above U+10FFFF or inside the surrogate range.
	ErrInvalidCodePoint = errors.New("invalid code point")

	// ErrInvalidUTF8 indicates a malformed lead or continuation byte.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")

	// ErrInvalidUTF16 indicates a lone or mismatched surrogate unit.
	ErrInvalidUTF16 = errors.New("invalid UTF-16")

	// ErrNotEnoughRoom indicates a sequence or a backward scan ran past the buffer boundary.
	ErrNotEnoughRoom = errors.New("not enough room")
)

// Reason classifies why a UTF-8 sequence was rejected.
type Reason uint8

const (
	// ReasonInvalidLead means the first byte cannot start a sequence.
	ReasonInvalidLead Reason = iota + 1

	// ReasonIncompleteSequence means a continuation byte was expected but not found.
	ReasonIncompleteSequence

	// ReasonOverlongSequence means more bytes were used than the value requires.
	ReasonOverlongSequence

	// ReasonNoLeadByte means a backward scan found only continuation bytes.
	ReasonNoLeadByte

	// ReasonStrayContinuation means continuation bytes follow a complete sequence.
	ReasonStrayContinuation
)

// String returns a human-readable name for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonInvalidLead:
		return "invalid lead byte"
	case ReasonIncompleteSequence:
		return "incomplete sequence"
	case ReasonOverlongSequence:
		return "overlong sequence"
	case ReasonNoLeadByte:
		return "no lead byte"
	case ReasonStrayContinuation:
		return "stray continuation byte"
	default:
		return "unknown"
	}
}

// UTF8Error reports a malformed UTF-8 sequence.
type UTF8Error struct {
	Byte   byte // offending byte, the sequence lead when one exists
	Offset int  // byte offset of the sequence in the input
	Reason Reason
}

func (e *UTF8Error) Error() string {
	return fmt.Sprintf("invalid UTF-8: %s (byte %#02x at offset %d)", e.Reason, e.Byte, e.Offset)
}

// Unwrap returns ErrInvalidUTF8.
func (e *UTF8Error) Unwrap() error { return ErrInvalidUTF8 }

// CodePointError reports a value that is not a Unicode scalar value.
type CodePointError struct {
	Value  uint32
	Offset int // byte or element offset in the input, -1 when not applicable
}

func (e *CodePointError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("invalid code point U+%04X", e.Value)
	}
	return fmt.Sprintf("invalid code point U+%04X at offset %d", e.Value, e.Offset)
}

// Unwrap returns ErrInvalidCodePoint.
func (e *CodePointError) Unwrap() error { return ErrInvalidCodePoint }

// UTF16Error reports a surrogate that is not part of a valid pair.
type UTF16Error struct {
	Unit  uint16 // the unpaired surrogate
	Index int    // index of the unit in the input
}

func (e *UTF16Error) Error() string {
	return fmt.Sprintf("invalid UTF-16: unpaired surrogate %#04x at index %d", e.Unit, e.Index)
}

// Unwrap returns ErrInvalidUTF16.
func (e *UTF16Error) Unwrap() error { return ErrInvalidUTF16 }

// WithOffset shifts the offset carried by a codec error by base.
// It lets callers that decode a sub-slice report offsets in their own coordinates.
// Errors without an offset are returned unchanged.
func WithOffset(err error, base int) error {
	if base == 0 || err == nil {
		return err
	}
	var u8 *UTF8Error
	if errors.As(err, &u8) {
		shifted := *u8
		shifted.Offset += base
		return &shifted
	}
	var cp *CodePointError
	if errors.As(err, &cp) && cp.Offset >= 0 {
		shifted := *cp
		shifted.Offset += base
		return &shifted
	}
	return err
}
