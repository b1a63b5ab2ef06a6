// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arena

// RootRef names the tree root. The root is kept as a field embedded
// directly in Context rather than as an arena-allocated Node (a pointer
// into Context.root is stable for the context's lifetime, unlike
// arena-index-backed nodes whose backing slice may grow); RootRef is
// the sentinel ref every ancestor/next/child link uses to mean "the root",
// distinguishable from NilIndex ("no link") and from any real arena index
// (which is always >= 0).
const RootRef int32 = -2

// Context owns one node arena, one string store, an optional name hash,
// and the tokenizer's continuation state, all exclusive to this context.
// Nothing here is safe for concurrent use by more than one goroutine at
// a time.
type Context struct {
	cfg     Config
	nodes   *NodeArena
	sstore  *StringStore
	hash    *NameHash
	useHash bool

	tok        Tokenizer
	tokKind    lexKind
	incomplete bool

	root   Node
	cursor int32

	closed  bool
	lastSeq SequenceError
}

// NewContext creates a fresh context. useHash installs the name hash from
// the start; it can be changed on a later recycle (see Recycle).
func NewContext(cfg Config, useHash bool) *Context {
	cfg = cfg.normalized()
	ctx := &Context{
		cfg:     cfg,
		nodes:   NewNodeArena(cfg.SlabSize),
		sstore:  NewStringStore(cfg.BlockSize),
		useHash: useHash,
		cursor:  RootRef,
	}
	ctx.root.reset()
	if useHash {
		ctx.hash = NewNameHash(ctx.sstore)
	}
	return ctx
}

// Recycle resets every arena to empty without releasing backing memory:
// node slabs' in-use counts go back to 1, the string store rewinds, and
// the hash is reset or dropped per useHash. The root node reverts to
// TypeEmpty.
func (ctx *Context) Recycle(useHash bool) {
	ctx.nodes.Reset()
	ctx.sstore.Clear()
	if useHash {
		if ctx.hash == nil {
			ctx.hash = NewNameHash(ctx.sstore)
		} else {
			ctx.hash.Reset()
		}
	} else {
		ctx.hash = nil
	}
	ctx.useHash = useHash
	ctx.root.reset()
	ctx.cursor = RootRef
	ctx.closed = false
	ctx.lastSeq = SeqNoError
	ctx.tok = Tokenizer{buf: ctx.tok.buf[:0]}
	ctx.incomplete = false
}

// Free releases every arena owned by this context so their memory is
// eligible for collection immediately, rather than when the context itself
// goes out of reach. Unlike Recycle nothing is retained; the context must
// not be used again afterwards.
func (ctx *Context) Free() {
	ctx.nodes = nil
	ctx.sstore = nil
	ctx.hash = nil
	ctx.tok = Tokenizer{}
	ctx.incomplete = false
	ctx.root.reset()
	ctx.cursor = RootRef
	ctx.closed = true
}

// nodeAt resolves ref to a live *Node. Callers must never hold the returned
// pointer across a call to ctx.nodes.Alloc: appending a new slab can move
// the arena's backing slice, invalidating every previously taken pointer
// into it (the root is the one exception, being a plain struct field).
func (ctx *Context) nodeAt(ref int32) *Node {
	if ref == RootRef {
		return &ctx.root
	}
	return ctx.nodes.Node(ref)
}

// Root returns the tree root's ref, for traversal/query entry points.
func (ctx *Context) Root() int32 { return RootRef }

// Closed reports whether the root container has matched its closing
// brace/bracket (or the context was force-closed by a nil Parse call).
func (ctx *Context) Closed() bool { return ctx.closed }

// UseHash reports whether this context currently interns member names.
func (ctx *Context) UseHash() bool { return ctx.useHash }

// LastError returns the descriptor of the most recent grammar error, or
// SeqNoError if the tree closed cleanly (or no parse has run yet). It
// survives until the next Recycle.
func (ctx *Context) LastError() SequenceError { return ctx.lastSeq }

// Parse feeds data into the incremental grammar driver. A nil data forces
// an open context into a terminal error state and returns cleanly;
// a closed context recycles before accepting the new bytes. needMore
// reports suspension (call Parse again with more bytes); trailing, valid
// only when the tree closed on this call, counts the non-whitespace bytes
// left over in data after the matching top-level close.
func (ctx *Context) Parse(data []byte, useHash bool) (needMore bool, trailing int, err *Error) {
	if data == nil {
		if !ctx.closed {
			ctx.closed = true
			ctx.lastSeq = SeqDiscontinued
		}
		return false, 0, nil
	}
	if ctx.closed {
		ctx.Recycle(useHash)
	}
	return ctx.feed(data)
}

// Stats reports the combined memory footprint of the three arenas, as
// (nodeSlabs, nodeCapacity, nodesUsed, sstoreBlocks, sstoreCapacity,
// sstoreUsed, hashBuckets, hashCells).
func (ctx *Context) Stats() (nodeSlabs, nodeCap, nodeUsed, sblocks, scap, sused, hbuckets, hcells int) {
	nodeSlabs, nodeCap, nodeUsed = ctx.nodes.Stats()
	sblocks, scap, sused = ctx.sstore.Stats()
	if ctx.hash != nil {
		hbuckets, hcells, _ = ctx.hash.Stats()
	}
	return
}

// SStore exposes the string store for consumers (display, traversal) that
// need to resolve Handles to bytes.
func (ctx *Context) SStore() *StringStore { return ctx.sstore }

// Hash exposes the name hash, or nil if this context doesn't intern names.
func (ctx *Context) Hash() *NameHash { return ctx.hash }

// Nodes exposes the node arena for read-only traversal helpers in other
// files of this package.
func (ctx *Context) Nodes() *NodeArena { return ctx.nodes }
