package codec

// AppendRune appends the UTF-8 encoding of r to dst and returns the extended
// slice. It fails with a *CodePointError if r is a surrogate or above MaxRune,
// leaving dst unchanged.
func AppendRune(dst []byte, r rune) ([]byte, error) {
	switch RuneLen(r) {
	case 1:
		return append(dst, byte(r)), nil
	case 2:
		return append(dst,
			byte(r>>6)|0xC0,
			byte(r)&0x3F|0x80), nil
	case 3:
		return append(dst,
			byte(r>>12)|0xE0,
			byte(r>>6)&0x3F|0x80,
			byte(r)&0x3F|0x80), nil
	case 4:
		return append(dst,
			byte(r>>18)|0xF0,
			byte(r>>12)&0x3F|0x80,
			byte(r>>6)&0x3F|0x80,
			byte(r)&0x3F|0x80), nil
	default:
		return dst, &CodePointError{Value: uint32(r), Offset: -1}
	}
}

// EncodeRune writes the UTF-8 encoding of r into p and returns the number of
// bytes written. p must be large enough; a short p is ErrNotEnoughRoom.
func EncodeRune(p []byte, r rune) (int, error) {
	n := RuneLen(r)
	if n < 0 {
		return 0, &CodePointError{Value: uint32(r), Offset: -1}
	}
	if len(p) < n {
		return 0, ErrNotEnoughRoom
	}
	var scratch [UTFMax]byte
	enc, _ := AppendRune(scratch[:0], r)
	return copy(p, enc), nil
}

// UTF32ToUTF8 appends the UTF-8 encoding of src to dst.
// An invalid code point stops the conversion; the error carries its index.
func UTF32ToUTF8(dst []byte, src []rune) ([]byte, error) {
	for i, r := range src {
		var err error
		dst, err = AppendRune(dst, r)
		if err != nil {
			return dst, &CodePointError{Value: uint32(r), Offset: i}
		}
	}
	return dst, nil
}

// UTF8ToUTF32 appends the code points of src to dst.
func UTF8ToUTF32(dst []rune, src []byte) ([]rune, error) {
	for i := 0; i < len(src); {
		if src[i] < 0x80 {
			dst = append(dst, rune(src[i]))
			i++
			continue
		}
		r, n, err := DecodeNext(src[i:])
		if err != nil {
			return dst, WithOffset(err, i)
		}
		dst = append(dst, r)
		i += n
	}
	return dst, nil
}
