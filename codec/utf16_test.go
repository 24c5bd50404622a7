package codec

import (
	"bytes"
	"errors"
	"testing"
	"unicode/utf16"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/text/encoding/unicode"
)

func TestUTF16ToUTF8(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		want  string
	}{
		{"empty", nil, ""},
		{"ascii", []uint16{'h', 'i'}, "hi"},
		{"bmp", []uint16{0x65E5, 0x672C}, "日本"},
		{"surrogate pair", []uint16{0xD83D, 0xDE00}, "😀"},
		{"max rune", []uint16{0xDBFF, 0xDFFF}, "\U0010FFFF"},
		{"pair between ascii", []uint16{'a', 0xD801, 0xDC37, 'b'}, "a\U00010437b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UTF16ToUTF8(nil, tt.units)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUTF16ToUTF8Surrogates(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		unit  uint16
		index int
	}{
		{"lone lead at end", []uint16{'a', 0xD800}, 0xD800, 1},
		{"lead followed by ascii", []uint16{0xD800, 'a'}, 0xD800, 0},
		{"lead followed by lead", []uint16{0xD800, 0xD801, 0xDC00}, 0xD800, 0},
		{"lead after pair", []uint16{0xD83D, 0xDE00, 0xD83D, 'x'}, 0xD83D, 2},
		{"lone trail", []uint16{'x', 0xDC00}, 0xDC00, 1},
		{"reversed pair", []uint16{0xDE00, 0xD83D}, 0xDE00, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UTF16ToUTF8(nil, tt.units)
			if !errors.Is(err, ErrInvalidUTF16) {
				t.Fatalf("got %v, want ErrInvalidUTF16", err)
			}
			var e *UTF16Error
			if !errors.As(err, &e) {
				t.Fatalf("got %T, want *UTF16Error", err)
			}
			if e.Unit != tt.unit || e.Index != tt.index {
				t.Errorf("got unit %#x at %d, want %#x at %d", e.Unit, e.Index, tt.unit, tt.index)
			}
		})
	}
}

func TestUTF8ToUTF16MatchesStdlib(t *testing.T) {
	inputs := []string{"", "hello", "Приве́т नमस्ते שָׁלוֹם", "emoji 🎉 test 😀", "\U0010FFFF\u0000"}
	for _, s := range inputs {
		got, err := UTF8ToUTF16(nil, []byte(s))
		if err != nil {
			t.Fatalf("UTF8ToUTF16(%q): %v", s, err)
		}
		want := utf16.Encode([]rune(s))
		if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("UTF8ToUTF16(%q) mismatch (-want +got):\n%s", s, diff)
		}

		n, err := UTF16Len([]byte(s))
		if err != nil || n != len(want) {
			t.Errorf("UTF16Len(%q) = %d, %v, want %d", s, n, err, len(want))
		}

		back, err := UTF16ToUTF8(nil, got)
		if err != nil || string(back) != s {
			t.Errorf("round trip of %q gave %q, %v", s, back, err)
		}
	}

	if _, err := UTF8ToUTF16(nil, []byte("\xed\xa0\x80")); !errors.Is(err, ErrInvalidCodePoint) {
		t.Errorf("UTF8ToUTF16(surrogate bytes) = %v, want ErrInvalidCodePoint", err)
	}
}

func TestUTF16ErrorNamesSurrogate(t *testing.T) {
	_, err := UTF16ToUTF8(nil, []uint16{'a', 0xD83D, 'A'})
	want := "invalid UTF-16: unpaired surrogate 0xd83d at index 1"
	if err == nil || err.Error() != want {
		t.Errorf("got %v, want %q", err, want)
	}
}

func TestDetectBOM(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    Encoding
		n       int
	}{
		{"empty", nil, EncodingUTF8, 0},
		{"plain", []byte("abc"), EncodingUTF8, 0},
		{"utf-8 bom", []byte{0xEF, 0xBB, 0xBF, 'a'}, EncodingUTF8BOM, 3},
		{"utf-16le bom", []byte{0xFF, 0xFE, 'a', 0}, EncodingUTF16LE, 2},
		{"utf-16be bom", []byte{0xFE, 0xFF, 0, 'a'}, EncodingUTF16BE, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n := DetectBOM(tt.content)
			if got != tt.want || n != tt.n {
				t.Errorf("DetectBOM() = %v, %d, want %v, %d", got, n, tt.want, tt.n)
			}
		})
	}
}

func TestEncodeUTF16BytesMatchesXText(t *testing.T) {
	s := []byte("Приве́т 😀")
	tests := []struct {
		name       string
		order      ByteOrder
		bom        bool
		endianness unicode.Endianness
		policy     unicode.BOMPolicy
	}{
		{"big endian", BigEndian, false, unicode.BigEndian, unicode.IgnoreBOM},
		{"little endian", LittleEndian, false, unicode.LittleEndian, unicode.IgnoreBOM},
		{"little endian bom", LittleEndian, true, unicode.LittleEndian, unicode.UseBOM},
		{"auto is big endian", ByteOrderAuto, true, unicode.BigEndian, unicode.UseBOM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeUTF16Bytes(s, tt.order, tt.bom)
			if err != nil {
				t.Fatalf("EncodeUTF16Bytes: %v", err)
			}

			want, err := unicode.UTF16(tt.endianness, tt.policy).NewEncoder().Bytes(s)
			if err != nil {
				t.Fatalf("x/text encoder: %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("got % x, want % x", got, want)
			}

			back, err := DecodeUTF16Bytes(got, tt.order)
			if err != nil {
				t.Fatalf("DecodeUTF16Bytes: %v", err)
			}
			if !bytes.Equal(back, s) {
				t.Errorf("round trip = %q, want %q", back, s)
			}
		})
	}
}

func TestEncodeUTF16BytesRejectsInvalid(t *testing.T) {
	if _, err := EncodeUTF16Bytes([]byte("a\xffb"), BigEndian, false); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("got %v, want ErrInvalidUTF8", err)
	}
}

func TestDecodeUTF16Bytes(t *testing.T) {
	// BOM overrides the requested order.
	le := []byte{0xFF, 0xFE, 'h', 0, 'i', 0}
	got, err := DecodeUTF16Bytes(le, BigEndian)
	if err != nil || string(got) != "hi" {
		t.Errorf("BOM override: got %q, %v", got, err)
	}

	// Valid input agrees with the lossy x/text decoder.
	be := []byte{0x00, 'a', 0xD8, 0x3D, 0xDE, 0x00}
	want, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(be)
	if err != nil {
		t.Fatal(err)
	}
	got, err = DecodeUTF16Bytes(be, ByteOrderAuto)
	if err != nil || !bytes.Equal(got, want) {
		t.Errorf("got %q, %v, want %q", got, err, want)
	}

	if _, err := DecodeUTF16Bytes([]byte{0x00, 'a', 0x00}, BigEndian); !errors.Is(err, ErrNotEnoughRoom) {
		t.Errorf("odd length = %v, want ErrNotEnoughRoom", err)
	}

	// Where x/text substitutes U+FFFD, the strict decoder fails.
	lone := []byte{0xD8, 0x00, 0x00, 'a'}
	if _, err := DecodeUTF16Bytes(lone, BigEndian); !errors.Is(err, ErrInvalidUTF16) {
		t.Errorf("lone surrogate = %v, want ErrInvalidUTF16", err)
	}
}
