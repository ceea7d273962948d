// Package simd provides word-at-a-time byte search for the prefilters.
//
// The searches use SWAR (SIMD Within A Register): eight haystack bytes are
// loaded into a uint64 and compared against a needle broadcast to every byte
// lane, so a candidate is found with a handful of integer operations per
// eight bytes.
package simd

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// zeroLanes returns a word whose lowest set bit marks the first zero byte
// of v. Bits above the first zero byte may be spurious, so only the trailing
// zero count is meaningful.
func zeroLanes(v uint64) uint64 {
	return (v - lo8) & ^v & hi8
}

// Memchr returns the index of the first needle in haystack, or -1.
func Memchr(haystack []byte, needle byte) int {
	m := uint64(needle) * lo8
	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		w := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroLanes(w ^ m); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < len(haystack); i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// Memchr2 returns the index of the first n1 or n2 in haystack, or -1.
func Memchr2(haystack []byte, n1, n2 byte) int {
	m1, m2 := uint64(n1)*lo8, uint64(n2)*lo8
	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		w := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroLanes(w^m1) | zeroLanes(w^m2); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < len(haystack); i++ {
		if c := haystack[i]; c == n1 || c == n2 {
			return i
		}
	}
	return -1
}

// Memchr3 returns the index of the first n1, n2 or n3 in haystack, or -1.
func Memchr3(haystack []byte, n1, n2, n3 byte) int {
	m1, m2, m3 := uint64(n1)*lo8, uint64(n2)*lo8, uint64(n3)*lo8
	i := 0
	for ; i+8 <= len(haystack); i += 8 {
		w := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroLanes(w^m1) | zeroLanes(w^m2) | zeroLanes(w^m3); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < len(haystack); i++ {
		if c := haystack[i]; c == n1 || c == n2 || c == n3 {
			return i
		}
	}
	return -1
}
