package codec

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding identifies a Unicode encoding form announced by a byte order mark.
type Encoding string

const (
	// EncodingUTF8 is UTF-8 without a BOM.
	EncodingUTF8 Encoding = "utf-8"

	// EncodingUTF8BOM is UTF-8 with a BOM.
	EncodingUTF8BOM Encoding = "utf-8-bom"

	// EncodingUTF16LE is UTF-16 little endian.
	EncodingUTF16LE Encoding = "utf-16le"

	// EncodingUTF16BE is UTF-16 big endian.
	EncodingUTF16BE Encoding = "utf-16be"
)

// BOM (Byte Order Mark) constants
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DetectBOM reports the encoding announced by a leading BOM and the BOM's
// length. Content without a BOM is reported as EncodingUTF8 with length 0.
func DetectBOM(content []byte) (Encoding, int) {
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		return EncodingUTF8BOM, len(bomUTF8)
	case bytes.HasPrefix(content, bomUTF16LE):
		return EncodingUTF16LE, len(bomUTF16LE)
	case bytes.HasPrefix(content, bomUTF16BE):
		return EncodingUTF16BE, len(bomUTF16BE)
	default:
		return EncodingUTF8, 0
	}
}

// ByteOrder selects the serialization of UTF-16 code units.
type ByteOrder uint8

const (
	// ByteOrderAuto honors a BOM and otherwise uses big endian.
	ByteOrderAuto ByteOrder = iota

	// BigEndian serializes the high byte first.
	BigEndian

	// LittleEndian serializes the low byte first.
	LittleEndian
)

// EncodeUTF16Bytes validates src as UTF-8 and serializes it as UTF-16 in the
// given byte order, optionally prefixed by a BOM. ByteOrderAuto encodes big
// endian.
func EncodeUTF16Bytes(src []byte, order ByteOrder, bom bool) ([]byte, error) {
	if err := Validate(src); err != nil {
		return nil, err
	}

	endianness := unicode.BigEndian
	if order == LittleEndian {
		endianness = unicode.LittleEndian
	}
	policy := unicode.IgnoreBOM
	if bom {
		policy = unicode.UseBOM
	}

	out, _, err := transform.Bytes(unicode.UTF16(endianness, policy).NewEncoder(), src)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeUTF16Bytes decodes serialized UTF-16 into UTF-8. A leading BOM
// overrides order and is stripped. Decoding is strict: an odd byte count is
// ErrNotEnoughRoom and unpaired surrogates fail with *UTF16Error.
func DecodeUTF16Bytes(src []byte, order ByteOrder) ([]byte, error) {
	switch enc, n := DetectBOM(src); enc {
	case EncodingUTF16LE:
		order, src = LittleEndian, src[n:]
	case EncodingUTF16BE:
		order, src = BigEndian, src[n:]
	}
	if len(src)%2 != 0 {
		return nil, ErrNotEnoughRoom
	}

	var bo binary.ByteOrder = binary.BigEndian
	if order == LittleEndian {
		bo = binary.LittleEndian
	}
	units := make([]uint16, len(src)/2)
	for i := range units {
		units[i] = bo.Uint16(src[2*i:])
	}
	return UTF16ToUTF8(make([]byte, 0, len(src)), units)
}
