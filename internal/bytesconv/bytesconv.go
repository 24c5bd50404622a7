// Package bytesconv converts between strings and byte slices without copying.
//
// The returned values share memory with their source. Bytes obtained from a
// string must never be written, and a string obtained from bytes is only
// stable while those bytes are left unmodified.
package bytesconv

import "unsafe"

// StringToBytes returns the bytes of s without copying.
// The result is read-only.
func StringToBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// BytesToString returns b as a string without copying.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
