// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lz4hc

import "unsafe"

// Compressor is the long-lived HC compression context from spec section 3.
// It owns the hash-chain index and the sliding window of history (an
// external-dictionary segment plus the current prefix) that lets
// successive Continue calls compress against everything seen so far.
//
// Positions are absolute int64 indices rather than raw pointers: spec
// section 9's design notes call this out directly ("a reimplementation
// should prefer explicit (segment, offset) pairs or signed 64-bit position
// indices with two contiguous buffers"), and it collapses the 2 GiB
// overflow handling to a plain saturation check instead of pointer-base
// arithmetic. dict holds the external-dictionary bytes addressed by
// [lowLimit, dictLimit); prefix holds the current-block bytes addressed
// by [dictLimit, end).
//
// Grounded on sliding_window_pool.go's pool shape and hcCompressorDict's
// init/window bookkeeping in compress_1x_999.go, generalized from a
// single-shot compressor into a dictionary-carrying streaming context.
type Compressor struct {
	chain chainIndex

	dict   []byte // external-dictionary bytes, len == dictLimit-lowLimit
	prefix []byte // current prefix bytes, len == end-dictLimit

	lowLimit     int64
	dictLimit    int64
	end          int64
	nextToUpdate int64

	level  int
	params levelParams
}

// NewCompressor returns a fresh streaming HC compressor at the given
// level (clamped per spec section 6).
func NewCompressor(level int) *Compressor {
	c := &Compressor{}
	c.Reset(level)
	return c
}

// Reset reinitializes the compressor to an empty history at the given
// level, matching spec section 3's "fresh init(start)" lifecycle: all
// limits collapse to zero and the chain index is cleared.
func (c *Compressor) Reset(level int) {
	c.level = clampLevel(level)
	c.params = paramsForLevel(c.level)
	c.lowLimit = 0
	c.dictLimit = 0
	c.end = 0
	c.nextToUpdate = 0
	c.dict = nil
	c.prefix = nil
	c.chain.reset()
}

// LoadDict preloads dict as history for the next Continue call, clamped
// to the last MaxDictSize bytes. It populates the chain index up to the
// dictionary's final insertable trigram, per spec section 4.7.
func (c *Compressor) LoadDict(dict []byte) int {
	if len(dict) > MaxDictSize {
		dict = dict[len(dict)-MaxDictSize:]
	}

	c.Reset(c.level)
	c.prefix = dict
	c.end = int64(len(dict))

	if c.end > int64(minMatch-1) {
		c.insert(c.end - int64(minMatch-1))
	}
	return len(dict)
}

// SaveDict copies the last min(len(buf), MaxDictSize, prefix size) bytes
// of the current prefix into buf, then re-bases the context so buf itself
// becomes the dictionary backing for subsequent calls (spec section 4.7).
func (c *Compressor) SaveDict(buf []byte) int {
	prefixLen := c.end - c.dictLimit
	n := int64(len(buf))
	if n > int64(MaxDictSize) {
		n = int64(MaxDictSize)
	}
	if n > prefixLen {
		n = prefixLen
	}
	if n <= 0 {
		return 0
	}

	tailStart := c.end - n
	copy(buf[:n], c.prefix[tailStart-c.dictLimit:])

	c.prefix = buf[:n]
	c.dictLimit = 0
	c.lowLimit = 0
	c.end = n
	c.dict = nil
	c.nextToUpdate = 0

	c.chain.reset()
	if c.end > int64(minMatch-1) {
		c.insert(c.end - int64(minMatch-1))
	}
	return int(n)
}

// setExternalDict folds the current prefix into the external-dictionary
// slot and prepares the context to receive a new prefix, per spec section
// 4.7's "continue" entry point. It is always safe to call, including on
// the very first Continue of a fresh context (where it is a no-op, since
// every limit starts at zero).
func (c *Compressor) setExternalDict() {
	c.lowLimit = c.dictLimit
	c.dictLimit = c.end
	c.dict = c.prefix
}

// overlapsDict reports whether newSrc shares backing storage with the
// tail of the current dictionary segment, the only case (pointer aliasing
// between successive caller buffers) spec section 4.7 calls out as
// requiring low_limit to be raised to skip the overlap.
func overlapsDict(dict, newSrc []byte) bool {
	if len(dict) == 0 || len(newSrc) == 0 {
		return false
	}
	dictStart := uintptr(unsafe.Pointer(&dict[0]))
	dictEnd := dictStart + uintptr(len(dict))
	srcStart := uintptr(unsafe.Pointer(&newSrc[0]))
	return srcStart >= dictStart && srcStart < dictEnd
}

// prepareNextBlock implements spec section 4.7's "continue" entry point
// shared by Continue and CompressDestSize: rebase the existing history if
// cumulative growth has crossed the 2 GiB threshold, fold the current
// prefix into the external-dictionary slot, raise lowLimit past any
// overlap between the new source and the just-folded dictionary, and
// adopt src as the new prefix.
func (c *Compressor) prepareNextBlock(src []byte) {
	c.maybeRebase()
	c.setExternalDict()

	if overlapsDict(c.dict, src) {
		overlap := uintptr(unsafe.Pointer(&src[0])) - uintptr(unsafe.Pointer(&c.dict[0]))
		c.lowLimit += int64(overlap)
		if c.dictLimit-c.lowLimit < int64(minMatch) {
			c.lowLimit = c.dictLimit
			c.dict = nil
		}
	}

	c.prefix = src
	c.end = c.dictLimit + int64(len(src))
	c.nextToUpdate = max64(c.nextToUpdate, c.dictLimit)
}

// Continue compresses src against the context's accumulated history and
// writes the encoded sequence into dst, returning the encoded length.
// Returns 0 if the encoded output does not fit in dst (spec section 6's
// limited_output failure mode).
func (c *Compressor) Continue(src []byte, dst []byte) (int, error) {
	if int64(len(src)) > lz4MaxInputSize {
		return 0, ErrInputTooLarge
	}

	c.prepareNextBlock(src)

	n, _, err := c.compressBlock(dst, limitedOutput)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// maybeRebase implements the 2 GiB overflow handling of spec section 4.7:
// once cumulative position growth crosses rebaseThreshold, the trailing
// 64 KiB of history is snapshotted into a context-owned buffer and every
// index collapses back near zero.
func (c *Compressor) maybeRebase() {
	if c.end < rebaseThreshold {
		return
	}

	keep := int64(MaxDictSize)
	if keep > c.end {
		keep = c.end
	}

	snapshot := make([]byte, keep)
	tailStart := c.end - keep
	for i := int64(0); i < keep; i++ {
		snapshot[i] = c.byteAt(tailStart + i)
	}

	c.prefix = snapshot
	c.dict = nil
	c.dictLimit = 0
	c.lowLimit = 0
	c.end = keep
	c.chain.reset()

	c.nextToUpdate = 0
	if c.end > int64(minMatch-1) {
		c.insert(c.end - int64(minMatch-1))
	} else {
		c.nextToUpdate = c.end
	}
}

// byteAt resolves the byte at absolute position idx, whichever segment it
// falls in.
func (c *Compressor) byteAt(idx int64) byte {
	if idx >= c.dictLimit {
		return c.prefix[idx-c.dictLimit]
	}
	return c.dict[idx-c.lowLimit]
}

// read32 reads the 4-byte little-endian value at absolute position idx.
// idx is always within the current prefix: insert/search only ever query
// positions already exposed as part of the block being compressed.
func (c *Compressor) read32(idx int64) uint32 {
	return readLE32(c.prefix[idx-c.dictLimit:])
}

// insert brings nextToUpdate up to target (exclusive), inserting every
// skipped position's 4-byte prefix into the hash-chain index. Spec
// section 4.1: "must be called before any search at ip. Idempotent with
// respect to next_to_update advancement."
func (c *Compressor) insert(target int64) {
	for idx := c.nextToUpdate; idx < target; idx++ {
		c.chain.insertOne(uint32(idx), c.read32(idx))
	}
	if target > c.nextToUpdate {
		c.nextToUpdate = target
	}
}

// chainHeadAndPattern returns the current chain head for idx's 4-byte
// hash (without inserting idx itself) and that 4-byte value, used as the
// starting candidate and the repeat-pattern seed in search.go.
func (c *Compressor) chainHeadAndPattern(idx int64) (head uint32, pattern uint32) {
	pattern = c.read32(idx)
	return c.chain.hashTable[hashPosition(pattern)], pattern
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
