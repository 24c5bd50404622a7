package utfrange

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dshills/utfrange/internal/bytesconv"
	"github.com/dshills/utfrange/internal/pool"
	"github.com/rivo/uniseg"
)

// formatRange writes r for the verbs understood by Range and String:
//
//	%s %v  the text
//	%q     a double-quoted Go string; %+q escapes non-ASCII, %#q prefers backquotes
//	%x %X  the bytes in hex, with the usual fmt flags
//	%U     space separated U+XXXX code points
//
// A precision limits %s, %v, %q and %U to that many code points. A width pads
// the output to that many terminal cells, on the left unless the '-' flag is
// set.
func formatRange(f fmt.State, verb rune, r Range, typeName string) {
	switch verb {
	case 'x', 'X':
		fmt.Fprintf(f, fmt.FormatString(f, verb), r.Bytes())
		return
	case 's', 'v', 'q', 'U':
	default:
		fmt.Fprintf(f, "%%!%c(%s=%s)", verb, typeName, r.String())
		return
	}

	if prec, ok := f.Precision(); ok && prec < r.Len() {
		r = r.Substr(0, prec)
	}

	p := pool.GetBytes(r.RawLen() + 2)
	buf := *p
	switch verb {
	case 'q':
		text := bytesconv.BytesToString(r.Bytes())
		switch {
		case f.Flag('#') && strconv.CanBackquote(text):
			buf = append(buf, '`')
			buf = append(buf, text...)
			buf = append(buf, '`')
		case f.Flag('+'):
			buf = strconv.AppendQuoteToASCII(buf, text)
		default:
			buf = strconv.AppendQuote(buf, text)
		}
	case 'U':
		for i, c := range r.All() {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = fmt.Appendf(buf, "%U", c)
		}
	default:
		buf = append(buf, r.Bytes()...)
	}

	writePadded(f, buf)
	*p = buf
	pool.PutBytes(p)
}

func writePadded(f fmt.State, buf []byte) {
	width, ok := f.Width()
	pad := 0
	if ok {
		pad = width - uniseg.StringWidth(bytesconv.BytesToString(buf))
	}
	if pad <= 0 {
		f.Write(buf)
		return
	}
	fill := strings.Repeat(" ", pad)
	if f.Flag('-') {
		f.Write(buf)
		io.WriteString(f, fill)
		return
	}
	io.WriteString(f, fill)
	f.Write(buf)
}
