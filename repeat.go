// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lz4hc

// repeatStatus tracks whether the 4-byte query pattern currently being
// chain-walked has been recognized as a short periodic run (spec section
// 4.3). It is evaluated once per insertAndGetWiderMatch call and then
// reused for every chain link visited with delta == 1.
type repeatStatus int

const (
	repeatUntested repeatStatus = iota
	repeatConfirmed
	repeatNot
)

// repeatState is the per-search scratch the pattern-analysis acceleration
// needs across chain-walk steps.
type repeatState struct {
	status           repeatStatus
	period           int64
	srcPatternLength int64
}

// skipRepeatedPattern implements spec section 4.3: when consecutive chain
// links differ by exactly one position, the walk is very likely inside a
// run of a short periodic pattern (RLE-like data), and stepping through it
// one link at a time wastes the search budget on near-identical candidates.
// This recognizes period-1 and period-2 patterns in the query's own 4-byte
// value and, once confirmed, jumps matchIndex across the run instead of
// decrementing it one position per attempt.
//
// Grounded on the chain-walk early-termination idea in hcCompressorDict's
// advance loop (compress_1x_999.go): that code stops early once a link
// stops improving on the cached best length; this generalizes "stop" into
// "skip ahead", since LZ4's periodic-run case can make a single probe
// informative about many consecutive positions at once. No direct analog
// exists in the LZO teacher, which has no comparable short-period run
// detector; the jump arithmetic is built from the prose in spec section
// 4.3, tested for guaranteed progress (matchIndex strictly decreases each
// iteration) to rule out the two degenerate zero-progress cases the prose
// doesn't explicitly fence.
func (c *Compressor) skipRepeatedPattern(rp *repeatState, ip, iHigh, effectiveLow int64, pattern uint32, matchIndex int64, attempts *int) int64 {
	if rp.status == repeatUntested {
		b0 := byte(pattern)
		b1 := byte(pattern >> 8)
		b2 := byte(pattern >> 16)
		b3 := byte(pattern >> 24)

		switch {
		case b0 == b1 && b1 == b2 && b2 == b3:
			rp.status = repeatConfirmed
			rp.period = 1
		case b0 == b2 && b1 == b3:
			rp.status = repeatConfirmed
			rp.period = 2
		default:
			rp.status = repeatNot
		}

		if rp.status == repeatConfirmed {
			rp.srcPatternLength = int64(minMatch) + c.periodicRunLength(ip+int64(minMatch), iHigh, rp.period)
		}
	}

	if rp.status != repeatConfirmed {
		return matchIndex
	}

	for matchIndex >= c.dictLimit && matchIndex >= effectiveLow && *attempts > 0 && c.read32(matchIndex) == pattern {
		var next int64
		forward := int64(minMatch) + c.periodicRunLength(matchIndex+int64(minMatch), iHigh, rp.period)
		if forward <= rp.srcPatternLength {
			next = matchIndex + forward - rp.srcPatternLength
		} else {
			back := c.periodicRunLengthBackward(matchIndex, effectiveLow, rp.period)
			next = matchIndex - back
		}

		if next >= matchIndex {
			break
		}
		matchIndex = next
		*attempts--
	}

	return matchIndex
}

// periodicRunLength counts forward from start how many bytes continue a
// period-byte periodic run, stopping at iHigh.
func (c *Compressor) periodicRunLength(start, iHigh, period int64) int64 {
	n := int64(0)
	for start+n < iHigh && start+n-period >= c.lowLimit && c.byteAt(start+n) == c.byteAt(start+n-period) {
		n++
	}
	return n
}

// periodicRunLengthBackward counts backward from pos how many bytes
// continue a period-byte periodic run, stopping at lowFence or after
// maxDistance bytes (a repeat run can never usefully extend past the
// window the offset field can address).
func (c *Compressor) periodicRunLengthBackward(pos, lowFence, period int64) int64 {
	limit := pos - lowFence
	if limit > int64(maxDistance) {
		limit = int64(maxDistance)
	}

	n := int64(0)
	for n < limit && pos-n-1-period >= c.lowLimit && c.byteAt(pos-n-1) == c.byteAt(pos-n-1-period) {
		n++
	}
	return n
}
