// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lz4hc

// chainIndex is the two-level hash-chain index from spec section 4.1:
// hashTable maps a 4-byte prefix hash to the most recently inserted
// position with that hash, and chainTable stores, per ring slot, the
// backward delta to the previous position sharing the same hash. Walking
// chainTable by repeated subtraction from a hashTable head reproduces the
// chain of candidates for that hash, newest first.
//
// Grounded on hcMatch3Table in compress_1x_999.go (head/chain/slotKey/
// bestLen), which is already a near-exact analog of an LZ4 HC chain table;
// the slotKey/chainSz eviction bookkeeping there is specific to LZO's
// ring-buffer window and has no counterpart here, since this index is
// addressed by absolute position, not a wrapping ring slot.
type chainIndex struct {
	hashTable  [hashTableSize]uint32
	chainTable [chainTableSize]uint16
}

// hashPosition is the spec section 4.1 hash: h(x) = (x*2654435761) >> 17
// for a 15-bit result over hashTableSize buckets.
func hashPosition(seq uint32) uint32 {
	return (seq * 2654435761) >> (32 - hashLog)
}

// reset restores a freshly-init'd index: hash table zeroed, chain table
// all-ones (delta 65535, which always steps below the search window, so
// every slot looks terminated until actually inserted). A zero head is
// indistinguishable from position 0, which is a real position since
// indices start at 0; insertAndGetWiderMatch only visits candidates
// strictly before the query position, and evaluateCandidate rejects any
// whose first four bytes differ from the query's.
func (c *chainIndex) reset() {
	clear(c.hashTable[:])
	for i := range c.chainTable {
		c.chainTable[i] = 0xFFFF
	}
}

// insertOne inserts position idx (whose 4-byte prefix is seq) into the
// index and returns the previous chain head for that hash (the position a
// search should begin walking from).
func (c *chainIndex) insertOne(idx uint32, seq uint32) uint32 {
	h := hashPosition(seq)
	head := c.hashTable[h]

	delta := idx - head
	if delta > 0xFFFF {
		delta = 0xFFFF
	}
	c.chainTable[idx&0xFFFF] = uint16(delta)
	c.hashTable[h] = idx
	return head
}

// next walks one step back along the chain from idx, returning the
// previous position and whether the chain continues. A stored delta of 0
// means the chain terminates (spec section 4.1: "the delta value 0
// terminates a chain").
func (c *chainIndex) next(idx uint32) (prev uint32, ok bool) {
	delta := c.chainTable[idx&0xFFFF]
	if delta == 0 {
		return 0, false
	}
	if uint32(delta) > idx {
		return 0, false
	}
	return idx - uint32(delta), true
}
