// Package codec provides validating UTF-8 primitives over raw byte slices.
//
// The package never owns the bytes it is given. Every function is a pure
// computation over its input and reports malformed data through returned
// errors rather than substituting U+FFFD, with the single exception of
// ReplaceInvalid, which exists to turn malformed input into clean output.
//
// Key features:
//   - Forward and backward decoding with overlong, surrogate and range checks
//   - Encoding of a code point to 1-4 bytes
//   - Bulk transcoding between UTF-8, UTF-16 and UTF-32
//   - Serialized UTF-16 with byte order marks
//   - Code point counting and advancing over byte spans
//
// Errors:
//
// Failures unwrap to one of the sentinel errors, so callers test the kind with
// errors.Is and recover the payload with errors.As:
//
//	_, _, err := codec.DecodeNext(b)
//	var u8 *codec.UTF8Error
//	if errors.As(err, &u8) {
//	    fmt.Println(u8.Reason, u8.Offset)
//	}
//
// Truncation:
//
// A multi-byte sequence cut off by the end of the slice is ErrNotEnoughRoom
// for the strict decoders. ReplaceInvalid drops such a tail by default; pass
// WithTruncation(TruncationStrict) to get the error instead.
package codec
