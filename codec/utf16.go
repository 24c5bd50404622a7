package codec

// Surrogate ranges: 0xD800-0xDC00 carries the high 10 bits of a pair,
// 0xDC00-0xE000 the low 10 bits; the value is those 20 bits plus 0x10000.
const (
	leadSurrogateMin  = 0xD800
	trailSurrogateMin = 0xDC00
	trailSurrogateMax = 0xDFFF
	surrogateOffset   = 0x10000
)

func isLeadSurrogate(u uint16) bool {
	return u >= leadSurrogateMin && u < trailSurrogateMin
}

func isTrailSurrogate(u uint16) bool {
	return u >= trailSurrogateMin && u <= trailSurrogateMax
}

// UTF16ToUTF8 appends the UTF-8 encoding of the UTF-16 sequence src to dst.
// Surrogate pairs are combined; a lead surrogate that is not followed by a
// trail surrogate, or a trail surrogate on its own, fails with *UTF16Error
// naming that surrogate.
func UTF16ToUTF8(dst []byte, src []uint16) ([]byte, error) {
	for i := 0; i < len(src); i++ {
		u := src[i]
		switch {
		case isLeadSurrogate(u):
			if i+1 >= len(src) {
				return dst, &UTF16Error{Unit: u, Index: i}
			}
			trail := src[i+1]
			if !isTrailSurrogate(trail) {
				return dst, &UTF16Error{Unit: u, Index: i}
			}
			r := rune(u-leadSurrogateMin)<<10 + rune(trail-trailSurrogateMin) + surrogateOffset
			dst, _ = AppendRune(dst, r)
			i++
		case isTrailSurrogate(u):
			return dst, &UTF16Error{Unit: u, Index: i}
		default:
			dst, _ = AppendRune(dst, rune(u))
		}
	}
	return dst, nil
}

// UTF8ToUTF16 appends the UTF-16 encoding of src to dst, splitting code
// points above U+FFFF into surrogate pairs.
func UTF8ToUTF16(dst []uint16, src []byte) ([]uint16, error) {
	for i := 0; i < len(src); {
		r, n, err := DecodeNext(src[i:])
		if err != nil {
			return dst, WithOffset(err, i)
		}
		if r >= surrogateOffset {
			r -= surrogateOffset
			dst = append(dst,
				uint16(r>>10)+leadSurrogateMin,
				uint16(r&0x3FF)+trailSurrogateMin)
		} else {
			dst = append(dst, uint16(r))
		}
		i += n
	}
	return dst, nil
}

// UTF16Len returns the number of UTF-16 code units needed to encode src.
func UTF16Len(src []byte) (int, error) {
	units := 0
	for i := 0; i < len(src); {
		r, n, err := DecodeNext(src[i:])
		if err != nil {
			return 0, WithOffset(err, i)
		}
		if r >= surrogateOffset {
			units += 2
		} else {
			units++
		}
		i += n
	}
	return units, nil
}
