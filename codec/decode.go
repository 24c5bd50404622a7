package codec

// Code point limits.
const (
	// MaxRune is the largest Unicode code point.
	MaxRune = '\U0010FFFF'

	// RuneError is the default replacement marker.
	RuneError = '\uFFFD'

	// UTFMax is the maximum number of bytes of a UTF-8 sequence.
	UTFMax = 4

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// status is the outcome of validating one sequence.
// The strict and lossy decoders share it and differ only in how they react.
type status uint8

const (
	statusOK status = iota
	statusNotEnoughRoom
	statusInvalidLead
	statusIncompleteSequence
	statusOverlongSequence
	statusInvalidCodePoint
)

// isTrail returns true if b is a continuation byte (10xxxxxx).
func isTrail(b byte) bool {
	return b&0xC0 == 0x80
}

// sequenceLength returns the sequence length announced by a lead byte,
// or 0 if b cannot start a sequence.
func sequenceLength(lead byte) int {
	switch {
	case lead < 0x80:
		return 1
	case lead>>5 == 0x06:
		return 2
	case lead>>4 == 0x0E:
		return 3
	case lead>>3 == 0x1E:
		return 4
	default:
		return 0
	}
}

// ValidRune reports whether r is a Unicode scalar value.
func ValidRune(r rune) bool {
	return r >= 0 && r <= MaxRune && (r < surrogateMin || r > surrogateMax)
}

// RuneLen returns the number of bytes needed to encode r, or -1 if r is not
// a valid code point.
func RuneLen(r rune) int {
	switch {
	case !ValidRune(r):
		return -1
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}

// validateNext validates the sequence at the start of b.
// It returns the decoded value and the sequence length on success. On failure
// the value is meaningful only for statusInvalidCodePoint.
func validateNext(b []byte) (uint32, int, status) {
	if len(b) == 0 {
		return 0, 0, statusNotEnoughRoom
	}

	lead := b[0]
	length := sequenceLength(lead)
	if length == 0 {
		return 0, 0, statusInvalidLead
	}
	if length == 1 {
		return uint32(lead), 1, statusOK
	}

	// Strip the length marker from the lead, then fold in six bits per continuation.
	cp := uint32(lead) & (0x7F >> length)
	for i := 1; i < length; i++ {
		if i >= len(b) {
			return 0, 0, statusNotEnoughRoom
		}
		if !isTrail(b[i]) {
			return 0, 0, statusIncompleteSequence
		}
		cp = cp<<6 | uint32(b[i]&0x3F)
	}

	if !ValidRune(rune(cp)) {
		return cp, 0, statusInvalidCodePoint
	}
	if RuneLen(rune(cp)) != length {
		return cp, 0, statusOverlongSequence
	}
	return cp, length, statusOK
}

// statusError converts a failed status into the matching error.
func statusError(st status, b []byte, cp uint32, offset int) error {
	switch st {
	case statusNotEnoughRoom:
		return ErrNotEnoughRoom
	case statusInvalidLead:
		return &UTF8Error{Byte: b[0], Offset: offset, Reason: ReasonInvalidLead}
	case statusIncompleteSequence:
		return &UTF8Error{Byte: b[0], Offset: offset, Reason: ReasonIncompleteSequence}
	case statusOverlongSequence:
		return &UTF8Error{Byte: b[0], Offset: offset, Reason: ReasonOverlongSequence}
	case statusInvalidCodePoint:
		return &CodePointError{Value: cp, Offset: offset}
	default:
		return nil
	}
}

// DecodeNext decodes the code point at the start of b and returns it with its
// width in bytes.
//
// It fails with ErrNotEnoughRoom when b is empty or a multi-byte sequence is
// cut off by the end of b, with a *UTF8Error for malformed lead, continuation
// or overlong sequences, and with a *CodePointError for surrogates and values
// above MaxRune.
func DecodeNext(b []byte) (rune, int, error) {
	cp, n, st := validateNext(b)
	if st != statusOK {
		return 0, 0, statusError(st, b, cp, 0)
	}
	return rune(cp), n, nil
}

// DecodePrior decodes the code point that ends at len(b) and returns it with
// its width in bytes.
//
// It walks back over continuation bytes to the lead byte and decodes forward
// from there. The sequence must end exactly at len(b).
func DecodePrior(b []byte) (rune, int, error) {
	if len(b) == 0 {
		return 0, 0, ErrNotEnoughRoom
	}

	start := len(b) - 1
	for isTrail(b[start]) {
		if start == 0 || len(b)-start >= UTFMax {
			return 0, 0, &UTF8Error{Byte: b[start], Offset: start, Reason: ReasonNoLeadByte}
		}
		start--
	}

	r, n, err := DecodeNext(b[start:])
	if err != nil {
		return 0, 0, WithOffset(err, start)
	}
	if start+n != len(b) {
		return 0, 0, &UTF8Error{Byte: b[start+n], Offset: start + n, Reason: ReasonStrayContinuation}
	}
	return r, n, nil
}

// Valid reports whether b is entirely well-formed UTF-8.
func Valid(b []byte) bool {
	return FindInvalid(b) < 0
}

// FindInvalid returns the offset of the first malformed or truncated
// sequence in b, or -1 if b is valid.
func FindInvalid(b []byte) int {
	for i := 0; i < len(b); {
		if b[i] < 0x80 {
			i++
			continue
		}
		_, n, st := validateNext(b[i:])
		if st != statusOK {
			return i
		}
		i += n
	}
	return -1
}

// Validate returns nil if b is well-formed UTF-8, or the error describing the
// first bad sequence with its absolute offset.
func Validate(b []byte) error {
	i := FindInvalid(b)
	if i < 0 {
		return nil
	}
	cp, _, st := validateNext(b[i:])
	return statusError(st, b[i:], cp, i)
}

// Distance returns the number of code points in b.
// It decodes every sequence, so it is linear in len(b).
func Distance(b []byte) (int, error) {
	count := 0
	for i := 0; i < len(b); count++ {
		if b[i] < 0x80 {
			i++
			continue
		}
		_, n, err := DecodeNext(b[i:])
		if err != nil {
			return 0, WithOffset(err, i)
		}
		i += n
	}
	return count, nil
}

// Advance returns the byte offset reached after decoding n code points from
// the start of b. Running out of input before n code points is
// ErrNotEnoughRoom.
func Advance(b []byte, n int) (int, error) {
	pos := 0
	for ; n > 0; n-- {
		_, size, err := DecodeNext(b[pos:])
		if err != nil {
			return 0, WithOffset(err, pos)
		}
		pos += size
	}
	return pos, nil
}
