// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arena

// MinSlabSize keeps at least eight usable nodes per slab besides the
// basenode.
const (
	MinSlabSize     = 9
	DefaultSlabSize = 33
)

// NodeArena is the ring of fixed-size node slabs. Nodes are never
// individually freed; a whole tree's worth of nodes is reclaimed at once
// by Reset, which marks every slab reusable without touching the backing
// storage.
//
// Node links (next/anc/child) are indices into nodes, not pointers: the
// arena keeps everything in one growable slice, and an index stays valid
// when appending a slab moves the slice.
type NodeArena struct {
	nodes    []Node
	slabSize int32
	head     int32 // base index of the ring's head slab
	cur      int32 // base index of the slab allocation is currently filling
}

// NewNodeArena creates an arena with one slab already allocated, its
// basenode at index 0 and cursor pointing at that same slab.
func NewNodeArena(slabSize int32) *NodeArena {
	if slabSize < MinSlabSize {
		slabSize = MinSlabSize
	}
	a := &NodeArena{slabSize: slabSize}
	base := a.appendSlab()
	a.head = base
	a.cur = base
	a.nodes[base].next = base // ring of one
	return a
}

// appendSlab grows the backing slice by slabSize nodes, initializes the
// new slab's basenode (in-use count 1, for itself) and returns its base
// index.
func (a *NodeArena) appendSlab() int32 {
	base := int32(len(a.nodes))
	a.nodes = append(a.nodes, make([]Node, a.slabSize)...)
	for i := int32(0); i < a.slabSize; i++ {
		a.nodes[base+i].reset()
	}
	bn := &a.nodes[base]
	bn.ntype = TypeBaseNode
	bn.vRaw = 1
	bn.next = NilIndex
	return base
}

// Node returns a pointer into the arena's backing slice for idx. Callers
// must not retain this pointer across an Alloc call, which may reallocate
// the backing slice.
func (a *NodeArena) Node(idx int32) *Node { return &a.nodes[idx] }

// Alloc draws a fresh, zeroed node from the current slab, advancing the
// ring as each slab fills.
func (a *NodeArena) Alloc() int32 {
	base := a.cur
	bn := &a.nodes[base]
	inUse := int32(bn.vRaw)

	if inUse < a.slabSize {
		idx := base + inUse
		bn.vRaw = uint64(inUse + 1)
		a.nodes[idx].reset()
		return idx
	}

	next := bn.next
	if next == a.head {
		// Ring is full: splice a fresh slab in between the current slab
		// and the head, so unused slabs always sit after the cursor.
		newBase := a.appendSlab()
		a.nodes[base].next = newBase
		a.nodes[newBase].next = a.head
		a.cur = newBase
		nb := &a.nodes[newBase]
		nb.vRaw = 2
		idx := newBase + 1
		a.nodes[idx].reset()
		return idx
	}

	// Reuse the next slab in the ring; its basenode must read exactly 1
	// (nothing else has claimed it since the last reset).
	a.cur = next
	nb := &a.nodes[next]
	nb.vRaw = 2
	idx := next + 1
	a.nodes[idx].reset()
	return idx
}

// Reset marks every slab in the ring reusable (in-use count back to 1,
// counting the basenode itself) and rewinds the allocation cursor to the
// head. No backing memory is released.
func (a *NodeArena) Reset() {
	base := a.head
	for {
		a.nodes[base].vRaw = 1
		next := a.nodes[base].next
		if next == a.head {
			break
		}
		base = next
	}
	a.cur = a.head
}

// Stats reports (slabCount, nodeCapacity, nodesInUse).
func (a *NodeArena) Stats() (slabs, capacity, used int) {
	base := a.head
	for {
		slabs++
		capacity += int(a.slabSize)
		used += int(a.nodes[base].vRaw)
		next := a.nodes[base].next
		if next == a.head {
			break
		}
		base = next
	}
	return
}
