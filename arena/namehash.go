// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arena

// DefaultBuckets is the fixed width of the bucket array.
// DefaultCellBlockSize is a nominal cell-block size; NameHash does not use
// it and allocates no cell blocks, keeping all cells in one growable slice.
const (
	DefaultBuckets       = 512
	DefaultCellBlockSize = 128
)

type nameCell struct {
	h    Handle
	next int32
}

// NameHash is the optional interning table over object-member names.
// Insert and Lookup key on DJB2; the resulting bucket layout is part of
// the table's observable behavior, so the hash function is not swappable
// for a general-purpose one.
type NameHash struct {
	buckets []int32
	cells   []nameCell
	sstore  *StringStore
	hits    int64
	misses  int64
}

// NewNameHash installs a name hash backed by sstore. Cells are drawn
// from an append-only slice, which already gives the "current free
// cursor, link to more on exhaustion" discipline for free.
func NewNameHash(sstore *StringStore) *NameHash {
	nh := &NameHash{sstore: sstore}
	nh.Reset()
	return nh
}

// Reset drops all interned entries (used when flushing on recycle with
// `use_hash=true`; a `use_hash=false` recycle drops the table altogether).
func (nh *NameHash) Reset() {
	if nh.buckets == nil {
		nh.buckets = make([]int32, DefaultBuckets)
	}
	for i := range nh.buckets {
		nh.buckets[i] = NilIndex
	}
	nh.cells = nh.cells[:0]
	nh.hits = 0
	nh.misses = 0
}

// djb2 implements h = 5381; h = h*33 + c.
func djb2(s []byte) uint32 {
	var h uint32 = 5381
	for _, c := range s {
		h = h*33 + uint32(c)
	}
	return h
}

func (nh *NameHash) bucketFor(s []byte) uint32 {
	return djb2(s) % uint32(len(nh.buckets))
}

// Insert interns s, returning the sentinel for an empty name, an existing
// cell's handle on a hit, or a freshly stored-and-linked handle on a miss.
func (nh *NameHash) Insert(s []byte) Handle {
	if len(s) == 0 {
		return EmptySentinel()
	}

	bucket := nh.bucketFor(s)
	for idx := nh.buckets[bucket]; idx != NilIndex; idx = nh.cells[idx].next {
		if nh.sstore.EqualBytes(nh.cells[idx].h, s) {
			nh.hits++
			return nh.cells[idx].h
		}
	}

	nh.misses++
	handle := nh.sstore.Add(s)
	idx := int32(len(nh.cells))
	nh.cells = append(nh.cells, nameCell{h: handle, next: nh.buckets[bucket]})
	nh.buckets[bucket] = idx
	return handle
}

// Lookup is Insert without the side effect of interning a miss.
func (nh *NameHash) Lookup(s []byte) (Handle, bool) {
	if len(s) == 0 {
		return EmptySentinel(), true
	}
	bucket := nh.bucketFor(s)
	for idx := nh.buckets[bucket]; idx != NilIndex; idx = nh.cells[idx].next {
		if nh.sstore.EqualBytes(nh.cells[idx].h, s) {
			return nh.cells[idx].h, true
		}
	}
	return Handle{}, false
}

// HitsMisses reports the running Insert hit and miss counts; Lookup does
// not update them.
func (nh *NameHash) HitsMisses() (hits, misses int64) { return nh.hits, nh.misses }

// Stats reports (bucketsFilled, cellsAllocated, cellsUsed). Since cells
// are never individually freed, allocated and used coincide here; the
// distinction is kept for symmetry with the node arena's slab stats.
func (nh *NameHash) Stats() (bucketsFilled, cellsAllocated, cellsUsed int) {
	for _, b := range nh.buckets {
		if b != NilIndex {
			bucketsFilled++
		}
	}
	cellsAllocated = len(nh.cells)
	cellsUsed = len(nh.cells)
	return
}
