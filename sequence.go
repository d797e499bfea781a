// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lz4hc

// limitMode selects how compressBlock enforces the destination capacity,
// per spec section 4.4.
type limitMode int

const (
	// noLimit assumes dst is large enough for CompressBound(len(src)) and
	// skips every capacity check.
	noLimit limitMode = iota
	// limitedOutput checks capacity before every emitted sequence and
	// fails the whole call (returns 0) the first time it would overrun.
	limitedOutput
	// limitedDestSize additionally allows a successful partial encode: if
	// the next sequence would overrun, the loop stops and finishes with a
	// literal run sized to whatever room remains.
	limitedDestSize
)

// sequenceOverhead returns the number of 0xFF extension bytes a literal
// run of litLen bytes needs beyond the 4 bits packed into the token.
func sequenceOverhead(litLen int) int {
	if litLen < runMask {
		return 0
	}
	return (litLen-runMask)/255 + 1
}

// matchOverhead returns the number of 0xFF extension bytes a match of
// matchLen bytes needs beyond the 4 bits packed into the token.
func matchOverhead(matchLen int) int {
	m := matchLen - minMatch
	if m < mlMask {
		return 0
	}
	return (m-mlMask)/255 + 1
}

// sequenceSize returns the exact number of output bytes one literal+match
// sequence needs: token, literal-length extension, the literals
// themselves, the 2-byte offset, and the match-length extension.
func sequenceSize(litLen, matchLen int) int {
	return 1 + sequenceOverhead(litLen) + litLen + 2 + matchOverhead(matchLen)
}

// lastLiteralsSize returns the exact number of output bytes a final,
// match-less literal run needs: token, extension, and the literals.
func lastLiteralsSize(litLen int) int {
	return 1 + sequenceOverhead(litLen) + litLen
}

// writeLength appends length (already reduced by the 4-bit nibble it
// extends) as a run of 0xFF bytes followed by a residual byte, the LZ4
// "extension byte" encoding of spec section 4.4.
func writeLength(dst []byte, pos int, length int) int {
	for length >= 255 {
		dst[pos] = 255
		pos++
		length -= 255
	}
	dst[pos] = byte(length)
	pos++
	return pos
}

// emitSequence writes one literal+match sequence at dst[pos:] and returns
// the position just past it. Caller must have already verified dst has
// room for sequenceSize(len(literals), matchLen) bytes at pos.
func emitSequence(dst []byte, pos int, literals []byte, matchLen, offset int) int {
	litLen := len(literals)
	mLen := matchLen - minMatch

	litTok := litLen
	if litTok > runMask {
		litTok = runMask
	}
	mTok := mLen
	if mTok > mlMask {
		mTok = mlMask
	}

	dst[pos] = byte(litTok<<4) | byte(mTok)
	pos++

	if litLen >= runMask {
		pos = writeLength(dst, pos, litLen-runMask)
	}
	pos += copy(dst[pos:], literals)

	writeLE16(dst[pos:], uint16(offset))
	pos += 2

	if mLen >= mlMask {
		pos = writeLength(dst, pos, mLen-mlMask)
	}
	return pos
}

// emitLastLiterals writes the trailing match-less literal run that closes
// every block, per spec section 4.4's "final sequence has no match part".
func emitLastLiterals(dst []byte, pos int, literals []byte) int {
	litLen := len(literals)
	litTok := litLen
	if litTok > runMask {
		litTok = runMask
	}

	dst[pos] = byte(litTok << 4)
	pos++

	if litLen >= runMask {
		pos = writeLength(dst, pos, litLen-runMask)
	}
	pos += copy(dst[pos:], literals)
	return pos
}
