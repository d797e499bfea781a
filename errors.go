// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lz4hc

import "errors"

// Sentinel errors. The encoder's failure taxonomy is intentionally minimal:
// it either returns a decodable byte stream or one of these.
var (
	// ErrInputTooLarge is returned when src exceeds lz4MaxInputSize.
	ErrInputTooLarge = errors.New("lz4hc: input exceeds maximum input size")
	// ErrDestTooSmall is returned by CompressDestSize when dstCapacity < 1.
	ErrDestTooSmall = errors.New("lz4hc: destination capacity too small")
	// ErrOutputOverrun is returned by CompressLimited when the
	// caller-sized destination is too small. Under
	// CompressDestSize this is recovered internally by rolling back to a
	// literal-only tail instead of surfacing to the caller.
	ErrOutputOverrun = errors.New("lz4hc: output buffer too small")
	// ErrInternal indicates a compressor invariant was violated (match
	// length below minMatch, offset outside [1, maxDistance], or similar).
	// Its appearance indicates an implementation bug, not a runtime
	// condition a caller can recover from by retrying.
	ErrInternal = errors.New("lz4hc: internal compressor invariant violated")
)
