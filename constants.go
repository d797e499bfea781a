// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lz4hc

// LZ4 block-format constants: token layout, length encoding, and the
// hash-chain window geometry the HC matcher searches within.
const (
	minMatch = 4 // a match's content must be at least this long to be encodable

	mlBits = 4
	mlMask = (1 << mlBits) - 1 // 15: in-token match-length nibble
	runBits = 4
	runMask = (1 << runBits) - 1 // 15: in-token literal-length nibble

	lastLiterals = 5  // the final literal run must be at least this long
	mfLimit      = 12 // every match must start at least this far before the block end

	// optimalML is the lazy-match trim threshold from spec section 4.5: once
	// a second candidate starts within this many bytes of the first, the
	// first match is shortened rather than left to overlap awkwardly.
	optimalML = 18

	maxDistance = 0xFFFF // largest representable back-reference offset

	hashLog        = 15
	hashTableSize  = 1 << hashLog
	chainTableSize = 1 << 16 // chainTable is indexed by pos & 0xFFFF

	// lz4MaxInputSize mirrors the reference LZ4 encoder's input ceiling.
	lz4MaxInputSize = 0x7E000000

	// rebaseThreshold is the cumulative position growth (in absolute index
	// units) at which the streaming front-end snapshots the trailing window
	// and resets indices, per spec section 4.7.
	rebaseThreshold = int64(2) << 30
)

// MaxDictSize is the largest dictionary SaveDict will ever write and
// LoadDict will ever retain (the HC window is 64 KiB).
const MaxDictSize = 1 << 16
