// Package swar provides word-at-a-time byte scanning for the matching engine.
//
// The scanners process 8 bytes per iteration using uint64 arithmetic
// (SIMD Within A Register) and fall back to a byte loop for short inputs.
// None of them allocate.
package swar

import (
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// Algorithm:
//  1. Broadcast needle to every byte of a uint64
//  2. XOR each 8-byte chunk with the mask (matching bytes become 0x00)
//  3. Detect a zero byte with (v - lo8) & ^v & hi8
//  4. Convert the lowest set bit to a byte position
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * lo8

	idx := 0
	for idx+8 <= n {
		xor := binary.LittleEndian.Uint64(haystack[idx:]) ^ mask
		if z := (xor - lo8) & ^xor & hi8; z != 0 {
			return idx + bits.TrailingZeros64(z)/8
		}
		idx += 8
	}

	for ; idx < n; idx++ {
		if haystack[idx] == needle {
			return idx
		}
	}
	return -1
}

// Memchr2 returns the index of the first instance of either needle1 or
// needle2 in haystack, or -1 if neither is present.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if b := haystack[i]; b == needle1 || b == needle2 {
				return i
			}
		}
		return -1
	}

	mask1 := uint64(needle1) * lo8
	mask2 := uint64(needle2) * lo8

	idx := 0
	for idx+8 <= n {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		xor1 := chunk ^ mask1
		xor2 := chunk ^ mask2
		z := ((xor1 - lo8) & ^xor1 & hi8) | ((xor2 - lo8) & ^xor2 & hi8)
		if z != 0 {
			return idx + bits.TrailingZeros64(z)/8
		}
		idx += 8
	}

	for ; idx < n; idx++ {
		if b := haystack[idx]; b == needle1 || b == needle2 {
			return idx
		}
	}
	return -1
}
