package codec

import (
	"bytes"
	"testing"
	"unicode/utf8"
)

// FuzzDecodeAgreesWithStdlib checks validation and counting against unicode/utf8.
func FuzzDecodeAgreesWithStdlib(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("hello"))
	f.Add([]byte("日本語"))
	f.Add([]byte("emoji 🎉 test"))
	f.Add([]byte("\xc0\x80"))
	f.Add([]byte("\xed\xa0\x80"))
	f.Add([]byte("\xf4\x90\x80\x80"))
	f.Add([]byte("ab\xe2\x82"))

	f.Fuzz(func(t *testing.T, b []byte) {
		if Valid(b) != utf8.Valid(b) {
			t.Fatalf("Valid(%q) = %v, utf8.Valid = %v", b, Valid(b), utf8.Valid(b))
		}
		if !utf8.Valid(b) {
			return
		}

		n, err := Distance(b)
		if err != nil {
			t.Fatalf("Distance: %v", err)
		}
		if n != utf8.RuneCount(b) {
			t.Fatalf("Distance = %d, want %d", n, utf8.RuneCount(b))
		}

		runes, err := UTF8ToUTF32(nil, b)
		if err != nil {
			t.Fatalf("UTF8ToUTF32: %v", err)
		}
		enc, err := UTF32ToUTF8(nil, runes)
		if err != nil || !bytes.Equal(enc, b) {
			t.Fatalf("round trip mismatch: %q -> %q (%v)", b, enc, err)
		}
	})
}

// FuzzDecodePriorInvertsNext checks that walking backwards visits the same
// sequences as walking forwards.
func FuzzDecodePriorInvertsNext(f *testing.F) {
	f.Add("a日😀z")
	f.Add("Приве́т नमस्ते שָׁלוֹם")

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			return
		}
		b := []byte(s)
		var widths []int
		for i := 0; i < len(b); {
			_, n, err := DecodeNext(b[i:])
			if err != nil {
				t.Fatalf("DecodeNext at %d: %v", i, err)
			}
			widths = append(widths, n)
			i += n
		}
		end := len(b)
		for i := len(widths) - 1; i >= 0; i-- {
			_, n, err := DecodePrior(b[:end])
			if err != nil {
				t.Fatalf("DecodePrior at %d: %v", end, err)
			}
			if n != widths[i] {
				t.Fatalf("DecodePrior width %d, want %d", n, widths[i])
			}
			end -= n
		}
	})
}

// FuzzReplaceInvalid checks the lossy pass always yields valid, stable output.
func FuzzReplaceInvalid(f *testing.F) {
	f.Add([]byte("clean"))
	f.Add([]byte("\xff\x80\x80"))
	f.Add([]byte("mix\xc0\x80ed\xed\xa0\x80"))
	f.Add([]byte("tail\xf0\x9f"))

	f.Fuzz(func(t *testing.T, b []byte) {
		once, err := ReplaceInvalid(nil, b)
		if err != nil {
			t.Fatalf("permissive ReplaceInvalid failed: %v", err)
		}
		if !Valid(once) {
			t.Fatalf("output %q is not valid", once)
		}
		twice, _ := ReplaceInvalid(nil, once)
		if !bytes.Equal(once, twice) {
			t.Fatalf("second pass changed %q to %q", once, twice)
		}
		if Valid(b) && !bytes.Equal(once, b) {
			t.Fatalf("valid input %q was modified to %q", b, once)
		}
	})
}

// FuzzUTF16RoundTrip checks UTF-8 -> UTF-16 -> UTF-8 is lossless.
func FuzzUTF16RoundTrip(f *testing.F) {
	f.Add("hello")
	f.Add("😀\U0010FFFF")

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			return
		}
		units, err := UTF8ToUTF16(nil, []byte(s))
		if err != nil {
			t.Fatalf("UTF8ToUTF16: %v", err)
		}
		back, err := UTF16ToUTF8(nil, units)
		if err != nil || string(back) != s {
			t.Fatalf("round trip %q -> %q (%v)", s, back, err)
		}
	})
}
