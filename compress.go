// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lz4hc

// reserveMargin is how much spare capacity compressBlock keeps in hand
// under limitedDestSize, so that a sequence which just barely fits still
// leaves room to close the block with a (possibly empty) final literal
// run, per spec section 4.4's "reserving headroom for a tail literal run".
const reserveMargin = 5

// encoder tracks the output cursor and the active capacity-gating mode
// while compressBlock emits sequences.
type encoder struct {
	dst   []byte
	pos   int
	limit limitMode
}

func (e *encoder) tryEmitSequence(literals []byte, matchLen, offset int) bool {
	need := sequenceSize(len(literals), matchLen)
	margin := 0
	if e.limit == limitedDestSize {
		margin = reserveMargin
	}
	if e.limit != noLimit && e.pos+need+margin > len(e.dst) {
		return false
	}
	e.pos = emitSequence(e.dst, e.pos, literals, matchLen, offset)
	return true
}

func (e *encoder) tryEmitLastLiterals(literals []byte) bool {
	need := lastLiteralsSize(len(literals))
	if e.limit != noLimit && e.pos+need > len(e.dst) {
		return false
	}
	e.pos = emitLastLiterals(e.dst, e.pos, literals)
	return true
}

// fillRemainderAsLiterals closes the block with as much of literals as
// still fits in the remaining destination capacity, trimming from the end
// until the encoded size fits. Used only under limitedDestSize, where a
// partial encode that reports how much source it actually consumed is a
// valid outcome rather than a failure.
func (e *encoder) fillRemainderAsLiterals(literals []byte) int {
	remaining := len(e.dst) - e.pos
	if remaining <= 0 {
		return 0
	}

	n := len(literals)
	for n > 0 && lastLiteralsSize(n) > remaining {
		n--
	}
	e.pos = emitLastLiterals(e.dst, e.pos, literals[:n])
	return n
}

// compressBlock is the lazy three-position match search of spec section
// 4.5: at each anchor it searches a match (M1), then looks for a wider
// match starting slightly ahead of it (M2) and a third wider still (M3),
// committing the earliest match only once a later one stops improving on
// it. Returns the encoded length, or 0 if limit forbids the output
// overrunning dst.
//
// Grounded on hcCompressorDict.compress's outer loop shape in
// compress_1x_999.go (anchor/literal-run tracking, search-then-emit
// cadence) for the anchor/literal-run cadence. The three-position
// lookahead itself has no LZO analog (LZO's greedy parse never looks past
// the immediate match) and follows LZ4HC_compress_hashChain in
// _examples/original_source/src/sanitized/lz4hc.c directly: because M2's
// search window starts at ip+ml1-2 with a left fence of ip, M1 and M2
// always overlap by construction, so every commit site below re-derives
// the overlap correction lz4hc.c applies immediately before its own
// encodeSequence calls (lines 501, 554-573), not just the single
// start2-shifting trim at the top of Search3 (lines 478-489) — both steps
// are needed, not either alone.
func (c *Compressor) compressBlock(dst []byte, limit limitMode) (encodedLen int, consumed int64, err error) {
	srcStart := c.dictLimit
	end := c.end
	if end < srcStart {
		return 0, 0, nil
	}

	e := &encoder{dst: dst, limit: limit}

	// loopLimit is the last position at which a match may start (MFLIMIT:
	// every match starts at least mfLimit bytes before the block end); the
	// outer scan stops there, and Search2/Search3 only look ahead while the
	// current match ends at or before it. extLimit is the separate ceiling
	// every forward match extension is capped at, reserving lastLiterals
	// bytes so the final literal run required by spec section 6 is never
	// empty.
	loopLimit := end - int64(mfLimit)
	extLimit := end - int64(lastLiterals)
	searchDepth := c.params.nbSearches
	patternAnalysis := c.params.patternAnalysis
	niceLen := int64(c.params.targetLength)

	ip := srcStart
	anchor := srcStart

	commit := func(m match) bool {
		literals := c.prefix[anchor-c.dictLimit : m.start-c.dictLimit]
		if !e.tryEmitSequence(literals, int(m.ml), int(m.offset())) {
			return false
		}
		ip = m.start + m.ml
		anchor = ip
		return true
	}

	var m1, m2, m3 match

mainLoop:
	for ip <= loopLimit {
		m1 = c.searchMatch(ip, extLimit, searchDepth, patternAnalysis)
		if m1.ml < int64(minMatch) {
			ip++
			continue
		}
		if m1.ml >= niceLen {
			if !commit(m1) {
				goto outOfRoom
			}
			continue
		}

	search2:
		m2 = match{ml: m1.ml}
		if ip+m1.ml <= loopLimit {
			m2 = c.wideSearch(m1.start+m1.ml-2, ip, extLimit, int(m1.ml), searchDepth, patternAnalysis)
		}
		if m2.ml <= m1.ml {
			if !commit(m1) {
				goto outOfRoom
			}
			continue mainLoop
		}
		if m2.start-ip < 3 {
			m1 = m2
			ip = m1.start
			goto search2
		}

	search3:
		// Shift M2 forward (never shorten M1) so that, within the
		// OPTIMAL_ML window, M2 starts where M1's own trimmed length would
		// put it. lz4hc.c:478-489 leaves ml (M1's length) untouched here;
		// the actual overlap between M1 and M2 is resolved separately at
		// each commit site below.
		if m2.start-ip < int64(optimalML) {
			newML := m1.ml
			if newML > int64(optimalML) {
				newML = int64(optimalML)
			}
			if ip+newML > m2.start+m2.ml-int64(minMatch) {
				newML = (m2.start - ip) + m2.ml - int64(minMatch)
			}
			correction := newML - (m2.start - ip)
			if correction > 0 {
				m2.start += correction
				m2.pos += correction
				m2.ml -= correction
			}
		}

		m3 = match{ml: m2.ml}
		if m2.start+m2.ml <= loopLimit {
			m3 = c.wideSearch(m2.start+m2.ml-3, m2.start, extLimit, int(m2.ml), searchDepth, patternAnalysis)
		}
		if m3.ml <= m2.ml {
			// lz4hc.c:501 ("if (start2 < ip+ml) ml = (int)(start2 - ip);"):
			// M1 and M2 are about to both be committed, so M1 must be
			// truncated to end exactly where M2 begins whenever they still
			// overlap, or the literal slice between them would be reversed.
			if m2.start < ip+m1.ml {
				m1.ml = m2.start - ip
			}
			if !commit(m1) {
				goto outOfRoom
			}
			if !commit(m2) {
				goto outOfRoom
			}
			continue mainLoop
		}

		if m3.start < ip+m1.ml+3 {
			if m3.start >= ip+m1.ml {
				if !commit(m1) {
					goto outOfRoom
				}
				m1 = m3
				ip = m1.start
				goto search2
			}
			m2 = m3
			goto search3
		}

		// Three ascending matches: commit M1 alone. lz4hc.c:554-573 applies
		// a second, independent overlap correction here — distinct from the
		// Search3-entry trim above — because M2 may still overlap M1 at
		// this point (the entry trim only moved M2, it never shortened M1).
		if m2.start < ip+m1.ml {
			if m2.start-ip < int64(mlMask) {
				if m1.ml > int64(optimalML) {
					m1.ml = int64(optimalML)
				}
				if ip+m1.ml > m2.start+m2.ml-int64(minMatch) {
					m1.ml = (m2.start - ip) + m2.ml - int64(minMatch)
				}
				correction := m1.ml - (m2.start - ip)
				if correction > 0 {
					m2.start += correction
					m2.pos += correction
					m2.ml -= correction
				}
			} else {
				m1.ml = m2.start - ip
			}
		}

		if !commit(m1) {
			goto outOfRoom
		}
		m1 = m2
		m2 = m3
		ip = m1.start
		goto search3
	}

	if !e.tryEmitLastLiterals(c.prefix[anchor-c.dictLimit : end-c.dictLimit]) {
		goto outOfRoom
	}
	return e.pos, end - srcStart, nil

outOfRoom:
	if limit != limitedDestSize {
		return 0, 0, nil
	}
	n := e.fillRemainderAsLiterals(c.prefix[anchor-c.dictLimit : end-c.dictLimit])
	return e.pos, (anchor - srcStart) + int64(n), nil
}
