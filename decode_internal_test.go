// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lz4hc

import "errors"

// This file is test-only. Spec section 1 explicitly scopes decompression
// out of this module ("it therefore does not define the decompression
// side"), and spec section 8's testable properties are all phrased in
// terms of "the standard LZ4 decoder applied to encode(s, L)". Without a
// decoder, none of those round-trip properties are actually checked by
// `go test`, so a minimal, unexported LZ4 block decoder lives here purely
// to exercise them. It is never built into non-test code and never
// exported.
//
// Grounded on decompressCore's state-machine decode loop and
// copyBackRef's overlapping-copy routine in decompress.go/copy.go,
// retargeted from LZO1X opcodes to the LZ4 token layout spec section 6
// defines: token byte, optional 0xFF literal-length extension, literals,
// 2-byte little-endian offset, optional 0xFF match-length extension.

var errTestDecodeTruncated = errors.New("lz4hc: test decoder: truncated sequence")
var errTestDecodeBadOffset = errors.New("lz4hc: test decoder: offset out of range")

// testDecodeBlock decodes one LZ4 block emitted by this package's
// encoder, mirroring decompressCore's byte-at-a-time state machine but
// against the token layout of spec section 6 instead of LZO1X opcodes.
func testDecodeBlock(src []byte) ([]byte, error) {
	return testDecodeBlockWithPrefix(nil, src)
}

// testDecodeBlockWithPrefix decodes src as a block that follows prefix in
// the same stream, so its back-references may reach into prefix (the
// history a Continue call or a loaded dictionary gave the encoder). Only
// the bytes decoded from src are returned.
func testDecodeBlockWithPrefix(prefix, src []byte) ([]byte, error) {
	dst := make([]byte, 0, len(prefix)+len(src)*3+16)
	dst = append(dst, prefix...)
	ip := 0

	readExtended := func(base int) (int, error) {
		n := base
		for {
			if ip >= len(src) {
				return 0, errTestDecodeTruncated
			}
			b := src[ip]
			ip++
			n += int(b)
			if b != 255 {
				return n, nil
			}
		}
	}

	for ip < len(src) {
		token := src[ip]
		ip++

		litLen := int(token >> 4)
		if litLen == runMask {
			n, err := readExtended(0)
			if err != nil {
				return nil, err
			}
			litLen += n
		}

		if ip+litLen > len(src) {
			return nil, errTestDecodeTruncated
		}
		dst = append(dst, src[ip:ip+litLen]...)
		ip += litLen

		if ip >= len(src) {
			// Final sequence: literal run only, no offset/match trailer.
			break
		}

		if ip+2 > len(src) {
			return nil, errTestDecodeTruncated
		}
		offset := int(src[ip]) | int(src[ip+1])<<8
		ip += 2
		if offset == 0 || offset > len(dst) {
			return nil, errTestDecodeBadOffset
		}

		matchLen := int(token&mlMask) + minMatch
		if int(token&mlMask) == mlMask {
			n, err := readExtended(0)
			if err != nil {
				return nil, err
			}
			matchLen += n
		}

		matchPos := len(dst) - offset
		if err := testCopyBackRef(&dst, matchPos, matchLen); err != nil {
			return nil, err
		}
	}

	return dst[len(prefix):], nil
}

// testCopyBackRef grows dst by length bytes copied from dst[matchPos:],
// allowing dist < length (the copied region becomes valid source for its
// own tail), the same overlapping-copy idiom copyBackRef uses in copy.go.
func testCopyBackRef(dst *[]byte, matchPos, length int) error {
	if matchPos < 0 {
		return errTestDecodeBadOffset
	}

	out := *dst
	start := len(out)
	out = append(out, make([]byte, length)...)

	dist := start - matchPos
	if dist >= length {
		copy(out[start:start+length], out[matchPos:matchPos+length])
		*dst = out
		return nil
	}

	copy(out[start:start+dist], out[matchPos:start])
	copied := dist
	for copied < length {
		n := copy(out[start+copied:start+length], out[start:start+copied])
		copied += n
	}
	*dst = out
	return nil
}
