// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

/*
Package lz4hc implements the LZ4 high-compression (HC) block encoder.

Given a source buffer, Compress produces a byte stream that any standard
LZ4 decoder expands back to the original bytes. The package only
implements the encoder: decompression, the LZ4 frame format, and the
optimal parser used by levels 10-12 are out of scope.

The encoder trades CPU time for a tighter ratio than the "fast" LZ4
encoder by indexing every source position in a hash chain and searching
that chain, at every position, for the longest visible back-reference.

# One-shot

Options may be nil (uses level 9):

	out, err := lz4hc.Compress(data, nil)
	out, err := lz4hc.CompressLevel(data, 6)

# Streaming

A Compressor keeps a sliding window of history across calls so repeated
input (e.g. successive network frames) compresses against everything seen
so far, not just the current call:

	c := lz4hc.NewCompressor(9)
	c.LoadDict(preset)
	dst1 := make([]byte, lz4hc.CompressBound(len(block1)))
	n1, _ := c.Continue(block1, dst1)
	out1 := dst1[:n1]
	dst2 := make([]byte, lz4hc.CompressBound(len(block2)))
	n2, _ := c.Continue(block2, dst2)
	out2 := dst2[:n2]
	saved := make([]byte, lz4hc.MaxDictSize)
	n := c.SaveDict(saved)
*/
package lz4hc
