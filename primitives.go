// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lz4hc

import (
	"math/bits"
	"unsafe"
)

// Low-level primitives. Spec section 2 treats these as an external,
// "assumed correct" collaborator module; this package has no sibling to
// import them from, so they live here, grounded on the unaligned-load and
// word-at-a-time compare idiom compress_1x_999.go uses for match3Key and
// countEqualBytes.

// readLE32 reads a little-endian uint32 starting at b[0].
// #nosec G103 -- unaligned load mirrors the teacher's match3Key/countEqualBytes.
func readLE32(b []byte) uint32 {
	return *(*uint32)(unsafe.Pointer(&b[0]))
}

// readArch reads a register-sized (64-bit) little-endian word starting at b[0].
// #nosec G103 -- unaligned load mirrors the teacher's countEqualBytes.
func readArch(b []byte) uint64 {
	return *(*uint64)(unsafe.Pointer(&b[0]))
}

// writeLE16 writes v as two little-endian bytes at dst[0:2].
func writeLE16(dst []byte, v uint16) {
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
}

// countCommonBytes returns how many leading bytes of a and b are equal,
// comparing a machine word at a time and falling back to a byte loop for
// the tail. Mirrors countEqualBytes in compress_1x_999.go.
func countCommonBytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	matched := 0
	for matched+8 <= n {
		aw := readArch(a[matched:])
		bw := readArch(b[matched:])
		if aw == bw {
			matched += 8
			continue
		}
		diff := aw ^ bw
		matched += bits.TrailingZeros64(diff) >> 3
		return matched
	}

	for matched < n && a[matched] == b[matched] {
		matched++
	}
	return matched
}
