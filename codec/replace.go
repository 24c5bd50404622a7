package codec

import "fmt"

// TruncationPolicy decides what ReplaceInvalid does with a sequence that is
// cut off by the end of the input.
type TruncationPolicy uint8

const (
	// TruncationPermissive silently drops the incomplete trailing bytes.
	TruncationPermissive TruncationPolicy = iota

	// TruncationStrict fails with ErrNotEnoughRoom.
	TruncationStrict

	// TruncationReplace emits one replacement marker for the trailing bytes.
	TruncationReplace
)

// String returns the policy name.
func (p TruncationPolicy) String() string {
	switch p {
	case TruncationPermissive:
		return "permissive"
	case TruncationStrict:
		return "strict"
	case TruncationReplace:
		return "replace"
	default:
		return fmt.Sprintf("TruncationPolicy(%d)", uint8(p))
	}
}

// replaceConfig holds ReplaceInvalid settings.
type replaceConfig struct {
	replacement rune
	truncation  TruncationPolicy
}

// ReplaceOption configures ReplaceInvalid.
type ReplaceOption func(*replaceConfig)

// WithReplacement sets the marker emitted for each malformed sequence.
// Values that cannot be encoded are ignored and U+FFFD is kept.
func WithReplacement(r rune) ReplaceOption {
	return func(c *replaceConfig) {
		if ValidRune(r) {
			c.replacement = r
		}
	}
}

// WithTruncation sets the policy for a sequence cut off at the end of input.
func WithTruncation(p TruncationPolicy) ReplaceOption {
	return func(c *replaceConfig) {
		c.truncation = p
	}
}

// ReplaceInvalid appends src to dst with every malformed sequence replaced
// by a single replacement marker.
//
// Well-formed runs are copied verbatim. A malformed sequence consumes its
// first byte plus every continuation byte that follows, and emits exactly one
// marker, so a run of stray continuation bytes also becomes one marker.
// Running the output through ReplaceInvalid again leaves it unchanged.
//
// The only possible error is ErrNotEnoughRoom under TruncationStrict, in
// which case dst holds everything converted before the truncated tail.
func ReplaceInvalid(dst, src []byte, opts ...ReplaceOption) ([]byte, error) {
	cfg := replaceConfig{replacement: RuneError}
	for _, opt := range opts {
		opt(&cfg)
	}
	marker, _ := AppendRune(nil, cfg.replacement)

	for i := 0; i < len(src); {
		_, n, st := validateNext(src[i:])
		switch st {
		case statusOK:
			dst = append(dst, src[i:i+n]...)
			i += n
		case statusNotEnoughRoom:
			switch cfg.truncation {
			case TruncationStrict:
				return dst, ErrNotEnoughRoom
			case TruncationReplace:
				dst = append(dst, marker...)
			}
			return dst, nil
		default:
			dst = append(dst, marker...)
			i++
			for i < len(src) && isTrail(src[i]) {
				i++
			}
		}
	}
	return dst, nil
}
