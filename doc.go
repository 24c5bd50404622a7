// Package utfrange provides code point views and owning strings over UTF-8 bytes.
//
// A Range is a non-owning view of a well-formed UTF-8 byte span that keeps
// its length in code points alongside the bytes. The span is validated once
// when the Range is created, so advancing, slicing, comparing and hashing a
// Range cannot fail afterwards. A String owns a private copy of its bytes and
// exposes the same operations through a Range over that copy.
//
// Key features:
//   - Code point length tracked on every mutation
//   - Bidirectional decoding iterators with range identity checks
//   - Lexicographic comparison by code point value
//   - Substrings addressed in code points, not bytes
//   - Optional lossy construction that replaces malformed sequences
//
// Basic usage:
//
//	r, err := utfrange.RangeOf("Привет")
//	if err != nil {
//	    return err
//	}
//	r.Len()          // 6
//	r.Substr(1, 3)   // "рив"
//
//	s, _ := utfrange.FromString("zyx")
//	s.Sort()         // "xyz"
//
// Operations called outside their contract, such as advancing a Range past
// its end, panic. Everything that can fail on user data returns an error
// from this package or from package codec.
package utfrange
