// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lz4hc

import "sync"

// CompressOptions configures a one-shot Compress call.
type CompressOptions struct {
	// Level is the compression level, 1-12 (see spec section 6 for
	// clamping: below 1 becomes DefaultCompressionLevel, above 12
	// saturates to MaxCompressionLevel).
	Level int
}

// DefaultCompressOptions returns options for the default compression level.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Level: DefaultCompressionLevel}
}

// compressorPool recycles Compressor contexts across stateless Compress
// calls, the same acquire/release shape hcDictPool uses in
// compress_1x_999.go: a zero-value New func, and the caller re-initializes
// on acquire so pooled state never leaks between callers.
var compressorPool = sync.Pool{
	New: func() any {
		return &Compressor{}
	},
}

func acquireCompressor(level int) *Compressor {
	c := compressorPool.Get().(*Compressor)
	c.Reset(level)
	return c
}

func releaseCompressor(c *Compressor) {
	if c == nil {
		return
	}
	c.prefix = nil
	c.dict = nil
	compressorPool.Put(c)
}

// CompressBound returns the worst-case output size for an srcSize-byte
// input: srcSize + srcSize/255 + 16, per spec section 6. A caller-sized
// destination of at least this length is guaranteed never to overrun
// under the no_limit gating mode.
func CompressBound(srcSize int) int {
	if srcSize <= 0 {
		return 16
	}
	return srcSize + srcSize/255 + 16
}

// CompressBlock is the stateless compress(src, dst, level) entry point of
// spec section 6. dst must have length at least CompressBound(len(src));
// the caller's guarantee of that bound is what lets this skip every
// per-sequence capacity check (the no_limit gating mode of spec section
// 4.4). Returns the encoded length, or (0, ErrInputTooLarge) if src
// exceeds lz4MaxInputSize.
func CompressBlock(src, dst []byte, level int) (int, error) {
	if int64(len(src)) > lz4MaxInputSize {
		return 0, ErrInputTooLarge
	}

	c := acquireCompressor(level)
	defer releaseCompressor(c)

	c.prefix = src
	c.end = int64(len(src))
	c.dictLimit = 0
	c.lowLimit = 0
	c.nextToUpdate = 0

	n, _, err := c.compressBlock(dst, noLimit)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Compress returns the LZ4-HC encoding of src. opts may be nil (uses
// DefaultCompressOptions). Grounded on lzo.Compress's opts-may-be-nil
// shape in compress.go.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	dst := make([]byte, CompressBound(len(src)))
	n, err := CompressBlock(src, dst, opts.Level)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// CompressLevel is a convenience wrapper over Compress for call sites that
// would rather not build a CompressOptions value.
func CompressLevel(src []byte, level int) ([]byte, error) {
	return Compress(src, &CompressOptions{Level: level})
}

// CompressLimited encodes src into dst under the limited_output gating
// mode of spec section 4.4: if the encoding would overrun dst, the whole
// call fails and returns (0, ErrOutputOverrun) instead of writing a
// partial, undecodable prefix.
func CompressLimited(src, dst []byte, level int) (int, error) {
	if int64(len(src)) > lz4MaxInputSize {
		return 0, ErrInputTooLarge
	}

	c := acquireCompressor(level)
	defer releaseCompressor(c)

	c.prefix = src
	c.end = int64(len(src))
	c.dictLimit = 0
	c.lowLimit = 0
	c.nextToUpdate = 0

	n, _, err := c.compressBlock(dst, limitedOutput)
	if err != nil {
		return 0, err
	}
	if n == 0 && len(src) > 0 {
		return 0, ErrOutputOverrun
	}
	return n, nil
}

// CompressDestSize is spec section 6's compress_dest_size(ctx, src,
// dst_cap, level): it encodes as much of src as fits in dst, allowing
// partial consumption, and reports how much source it actually consumed
// alongside the encoded length. Only fails outright (returning an error)
// when dst has no usable capacity at all or src exceeds lz4MaxInputSize;
// any other destination size
// yields a valid, decodable partial encode per spec section 4.4's
// limited_dest_size rollback-to-literal-tail behavior.
//
// Like Continue, it folds the context's prior prefix into the external
// dictionary before compressing src, so a ctx already warmed up by
// earlier Continue/CompressDestSize calls can reference that history too.
func (c *Compressor) CompressDestSize(src, dst []byte) (consumed int, encodedLen int, err error) {
	if len(dst) < 1 {
		return 0, 0, ErrDestTooSmall
	}
	if int64(len(src)) > lz4MaxInputSize {
		return 0, 0, ErrInputTooLarge
	}

	c.prepareNextBlock(src)

	n, used, err := c.compressBlock(dst, limitedDestSize)
	if err != nil {
		return 0, 0, err
	}
	return int(used), n, nil
}

// CompressDestSize is the stateless package-level form: it allocates a
// fresh context at level, encodes as much of src as fits in dst, and
// discards the context. Use (*Compressor).CompressDestSize directly when
// truncated input should still seed history for a later call.
func CompressDestSize(src, dst []byte, level int) (consumed int, encodedLen int, err error) {
	c := acquireCompressor(level)
	defer releaseCompressor(c)
	return c.CompressDestSize(src, dst)
}

// CompressHC is a deprecated alias for CompressLevel at
// DefaultCompressionLevel, matching the "level-taking and level-9-default
// form" shape spec section 1 calls out ("several deprecated aliases") and
// Compress1X999Level/Compress1X999 mirror in the teacher.
//
// Deprecated: use Compress or CompressLevel.
func CompressHC(src []byte) ([]byte, error) {
	return CompressLevel(src, DefaultCompressionLevel)
}

// CompressHCDict is a deprecated alias that preloads dict before encoding
// src at the default level.
//
// Deprecated: use a Compressor with LoadDict then Continue.
func CompressHCDict(src, dict []byte) ([]byte, error) {
	c := NewCompressor(DefaultCompressionLevel)
	c.LoadDict(dict)
	dst := make([]byte, CompressBound(len(src)))
	n, err := c.Continue(src, dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// CompressHCContinue is a deprecated alias for (*Compressor).Continue,
// named to mirror the C API's LZ4_compress_HC_continue.
//
// Deprecated: use (*Compressor).Continue.
func CompressHCContinue(c *Compressor, src, dst []byte) (int, error) {
	return c.Continue(src, dst)
}
