// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lz4hc

import (
	"bytes"
	"fmt"
	"testing"
)

// benchmarkInputSets mirrors the teacher's benchmarkInputSets shape in
// benchmark_test.go: a handful of named payloads representative of the
// corpus types the encoder cares about (small text, a medium periodic
// pattern, a byte-cycle run that stresses the hash chain differently
// from a mono-byte run).
func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("lz4hc benchmark text payload "), 140),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
		"mono-256k":       bytes.Repeat([]byte{'a'}, 262144),
	}
}

func BenchmarkCompress(b *testing.B) {
	levels := []int{1, 5, 9}
	for inputName, inputData := range benchmarkInputSets() {
		for _, level := range levels {
			name := fmt.Sprintf("%s/level-%d", inputName, level)
			b.Run(name, func(b *testing.B) {
				dst := make([]byte, CompressBound(len(inputData)))
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := CompressBlock(inputData, dst, level); err != nil {
						b.Fatalf("CompressBlock failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkCompressStreaming(b *testing.B) {
	inputData := benchmarkInputSets()["small-text-4k"]
	dst := make([]byte, CompressBound(len(inputData)))

	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	c := NewCompressor(DefaultCompressionLevel)
	for i := 0; i < b.N; i++ {
		c.Reset(DefaultCompressionLevel)
		if _, err := c.Continue(inputData, dst); err != nil {
			b.Fatalf("Continue failed: %v", err)
		}
	}
}
