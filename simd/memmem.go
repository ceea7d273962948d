package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack, or
// -1. It scans for the needle's rarest byte with Memchr and verifies each
// candidate. An empty needle matches at 0.
func Memmem(haystack, needle []byte) int {
	n := len(needle)
	switch {
	case n == 0:
		return 0
	case n > len(haystack):
		return -1
	case n == 1:
		return Memchr(haystack, needle[0])
	}

	rare, idx := RarestByte(needle)
	for from := idx; from < len(haystack); {
		pos := Memchr(haystack[from:], rare)
		if pos < 0 {
			return -1
		}
		start := from + pos - idx
		if start+n > len(haystack) {
			return -1
		}
		if bytes.Equal(haystack[start:start+n], needle) {
			return start
		}
		from += pos + 1
	}
	return -1
}
