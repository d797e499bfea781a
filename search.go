// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lz4hc

// match is one candidate back-reference: it starts at start (possibly
// earlier than the position it was found from, via back-extension),
// references history at pos, and is ml bytes long.
type match struct {
	start int64
	pos   int64
	ml    int64
}

func (m match) offset() int64 { return m.start - m.pos }

// searchMatch is the narrow search variant of spec section 4.2: it looks
// up the chain at ip itself and never back-extends (ip_low == ip
// disables it, since the back-extension fence "ip - back > i_low"
// is never satisfiable at back == 0 when i_low == ip).
func (c *Compressor) searchMatch(ip, iHigh int64, searchDepth int, patternAnalysis bool) match {
	longest, pos, start := c.insertAndGetWiderMatch(ip, ip, iHigh, minMatch-1, searchDepth, patternAnalysis)
	return match{start: start, pos: pos, ml: int64(longest)}
}

// wideSearch is the back-extending variant used by Search2/Search3: it
// looks up the chain at ip but allows the match to start as early as
// iLow, shifting start (and pos) backward when doing so still matches.
func (c *Compressor) wideSearch(ip, iLow, iHigh int64, minLongest int, searchDepth int, patternAnalysis bool) match {
	longest, pos, start := c.insertAndGetWiderMatch(ip, iLow, iHigh, minLongest, searchDepth, patternAnalysis)
	return match{start: start, pos: pos, ml: int64(longest)}
}

// insertAndGetWiderMatch is spec section 4.2's insert_and_get_wider_match:
// it brings the chain index up to ip, walks ip's hash chain for up to
// maxAttempts candidates, and returns the longest visible back-reference
// whose total length (after back-extension toward iLow) beats longest.
//
// Grounded on hcCompressorDict.advance in compress_1x_999.go (chain walk,
// newest-to-oldest, early-stop on niceLength/cached bestLen) and
// searchBestMatch in sliding_window.go (matched-length tracking against a
// scanPos/scanLimit window). Back-extension and the dict/prefix boundary
// crossing have no LZO counterpart — LZO's format has no back-extension —
// and are built fresh from the prose, fenced per spec section 9's design
// note to keep the fence tests strict.
func (c *Compressor) insertAndGetWiderMatch(ip, iLow, iHigh int64, longest int, maxAttempts int, patternAnalysis bool) (int, int64, int64) {
	effectiveLow := max64(c.lowLimit, ip-int64(maxDistance))

	c.insert(ip)
	head, pattern := c.chainHeadAndPattern(ip)

	matchIndex := int64(head)
	startPos := ip
	matchPos := int64(0)

	var rp repeatState

	attempts := maxAttempts
	for matchIndex >= effectiveLow && matchIndex < ip && attempts > 0 {
		attempts--

		if total, start, pos, ok := c.evaluateCandidate(ip, matchIndex, iLow, iHigh, pattern); ok && int(total) > longest {
			longest = int(total)
			startPos = start
			matchPos = pos
		}

		prevIndex, ok := c.chain.next(uint32(matchIndex))
		if !ok {
			break
		}
		delta := matchIndex - int64(prevIndex)
		matchIndex = int64(prevIndex)

		if patternAnalysis && delta == 1 {
			matchIndex = c.skipRepeatedPattern(&rp, ip, iHigh, effectiveLow, pattern, matchIndex, &attempts)
		}
	}

	return longest, matchPos, startPos
}

// evaluateCandidate validates and measures one chain candidate: its first
// four bytes must equal the query's saved pattern, and its forward extent
// must reach at least minMatch before back-extension is attempted.
func (c *Compressor) evaluateCandidate(ip, matchIndex, iLow, iHigh int64, pattern uint32) (total, start, pos int64, ok bool) {
	if matchIndex >= c.dictLimit {
		if c.read32(matchIndex) != pattern {
			return 0, 0, 0, false
		}
	} else if c.byteAt(matchIndex) != byte(pattern) ||
		c.byteAt(matchIndex+1) != byte(pattern>>8) ||
		c.byteAt(matchIndex+2) != byte(pattern>>16) ||
		c.byteAt(matchIndex+3) != byte(pattern>>24) {
		return 0, 0, 0, false
	}

	fwd := c.extendForward(ip, matchIndex, iHigh)
	if fwd < int64(minMatch) {
		return 0, 0, 0, false
	}

	back := c.extendBackward(ip, matchIndex, iLow)
	return back + fwd, ip - back, matchIndex - back, true
}

// extendForward returns how many bytes starting at ip equal bytes
// starting at matchIndex, capped at iHigh-ip. When matchIndex sits in the
// external dictionary the comparison crosses into the prefix once the
// dictionary segment is exhausted, per spec section 4.2's cross-boundary
// match case.
func (c *Compressor) extendForward(ip, matchIndex, iHigh int64) int64 {
	limit := iHigh - ip
	if limit <= 0 {
		return 0
	}

	if matchIndex >= c.dictLimit {
		n := int64(countCommonBytes(c.prefix[ip-c.dictLimit:], c.prefix[matchIndex-c.dictLimit:]))
		if n > limit {
			n = limit
		}
		return n
	}

	var n int64
	for n < limit && matchIndex+n < c.dictLimit && c.byteAt(matchIndex+n) == c.byteAt(ip+n) {
		n++
	}
	if n < limit && matchIndex+n == c.dictLimit {
		extra := int64(countCommonBytes(c.prefix[ip+n-c.dictLimit:], c.prefix))
		if extra > limit-n {
			extra = limit - n
		}
		n += extra
	}
	return n
}

// extendBackward returns how many bytes immediately before ip equal bytes
// immediately before matchIndex, without crossing iLow on the query side
// or the matchIndex's own segment start on the history side.
func (c *Compressor) extendBackward(ip, matchIndex, iLow int64) int64 {
	fence := c.lowLimit
	if matchIndex >= c.dictLimit {
		fence = c.dictLimit
	}

	back := int64(0)
	for ip-back > iLow && matchIndex-back > fence && c.byteAt(ip-back-1) == c.byteAt(matchIndex-back-1) {
		back++
	}
	return back
}
