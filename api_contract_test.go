// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lz4hc

import (
	"bytes"
	"testing"
)

// TestAPIContract_CompressHCDefaultsLevel9 covers the deprecated
// CompressHC alias: it must behave exactly like CompressLevel at
// DefaultCompressionLevel.
func TestAPIContract_CompressHCDefaultsLevel9(t *testing.T) {
	src := bytes.Repeat([]byte("api-contract"), 64)

	viaAlias, err := CompressHC(src)
	if err != nil {
		t.Fatalf("CompressHC failed: %v", err)
	}
	viaLevel, err := CompressLevel(src, DefaultCompressionLevel)
	if err != nil {
		t.Fatalf("CompressLevel failed: %v", err)
	}

	if !bytes.Equal(viaAlias, viaLevel) {
		t.Fatalf("CompressHC diverged from CompressLevel(src, %d)", DefaultCompressionLevel)
	}
}

// TestAPIContract_CompressHCDictReferencesDict covers the deprecated
// CompressHCDict alias: the encoded output must reference the preloaded
// dictionary, and must round-trip through the test decoder.
func TestAPIContract_CompressHCDictReferencesDict(t *testing.T) {
	dict := bytes.Repeat([]byte("shared-dictionary-segment "), 200)
	src := []byte("shared-dictionary-segment appears right at the front")

	out, err := CompressHCDict(src, dict)
	if err != nil {
		t.Fatalf("CompressHCDict failed: %v", err)
	}

	literalOnly := 1 + len(src)
	if len(out) >= literalOnly {
		t.Fatalf("CompressHCDict output (%d bytes) did not improve on literal-only form (%d bytes)", len(out), literalOnly)
	}

	got, err := testDecodeBlockWithPrefix(dict, out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got, src) {
		t.Fatalf("round trip mismatch")
	}
}

// TestAPIContract_CompressHCContinueDelegates covers the deprecated
// CompressHCContinue alias: it must be a pure pass-through to
// (*Compressor).Continue.
func TestAPIContract_CompressHCContinueDelegates(t *testing.T) {
	src := bytes.Repeat([]byte("continue-alias "), 50)

	c1 := NewCompressor(DefaultCompressionLevel)
	dst1 := make([]byte, CompressBound(len(src)))
	n1, err := CompressHCContinue(c1, src, dst1)
	if err != nil {
		t.Fatalf("CompressHCContinue failed: %v", err)
	}

	c2 := NewCompressor(DefaultCompressionLevel)
	dst2 := make([]byte, CompressBound(len(src)))
	n2, err := c2.Continue(src, dst2)
	if err != nil {
		t.Fatalf("Continue failed: %v", err)
	}

	if !bytes.Equal(dst1[:n1], dst2[:n2]) {
		t.Fatalf("CompressHCContinue diverged from Continue")
	}
}

// TestAPIContract_CompressOptionsNilUsesDefault covers the
// opts-may-be-nil shape Compress carries over from the teacher's
// lzo.Compress.
func TestAPIContract_CompressOptionsNilUsesDefault(t *testing.T) {
	src := []byte("nil options should use the default level")

	viaNil, err := Compress(src, nil)
	if err != nil {
		t.Fatalf("Compress(src, nil) failed: %v", err)
	}
	viaDefault, err := Compress(src, DefaultCompressOptions())
	if err != nil {
		t.Fatalf("Compress(src, DefaultCompressOptions()) failed: %v", err)
	}

	if !bytes.Equal(viaNil, viaDefault) {
		t.Fatal("Compress(src, nil) diverged from the explicit default options")
	}
}
