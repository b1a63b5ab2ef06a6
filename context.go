// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ltjson is the public-facing API of an incremental, arena-backed
// JSON document engine. It wraps the lower-level github.com/ltjson/jsontree/arena
// package (the node arena, string store, name hash, tokenizer and grammar
// driver) with the ambient concerns a standalone Go library needs:
// structured logging, process-wide configuration, correlation IDs, and a
// handful of convenience operations (YAML ingestion, concurrent parsing,
// RFC 6901 pointer rendering, Prometheus metrics).
package ltjson

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ltjson/jsontree/arena"
)

// Context is one engine context: an arena.Context plus a correlation ID
// and a logger. Not safe for concurrent use by more than one goroutine;
// see ParseAllConcurrently for running several independent Contexts in
// parallel.
type Context struct {
	inner  *arena.Context
	id     uuid.UUID
	log    *logrus.Entry
	pcache *pathCache
}

// New creates a Context, applying any Options (process defaults are
// snapshotted from viper-backed configuration exactly once per process).
func New(opts ...Option) *Context {
	o := newOptions()
	for _, opt := range opts {
		opt(o)
	}

	id := uuid.New()
	ctx := &Context{
		inner:  arena.NewContext(o.cfg, o.useHash),
		id:     id,
		pcache: newPathCache(defaultPathCacheSize),
	}
	ctx.log = logEntry(o, id.String())
	ctx.log.Debug("context created")
	return ctx
}

// ID returns the context's correlation ID.
func (c *Context) ID() uuid.UUID { return c.id }

// Recycle resets the context to empty without releasing backing memory,
// and drops the path-resolution cache since any cached tokenization may
// now be matched against a different tree.
func (c *Context) Recycle(useHash bool) {
	c.inner.Recycle(useHash)
	c.pcache.clear()
	c.log.WithField("use_hash", useHash).Debug("context recycled")
}

// Parse feeds data into the incremental grammar driver. See
// arena.Context.Parse for the exact contract; Parse additionally logs
// invalid-sequence errors at Warn and forwards out-of-memory at Error.
// A nil data forces an open context into SeqDiscontinued.
func (c *Context) Parse(data []byte, useHash bool) (needMore bool, trailing int, err error) {
	if data != nil && c.inner.Closed() {
		// The inner context is about to recycle itself; any cached path
		// tokenization may carry handles resolved against the old tree.
		c.pcache.clear()
	}
	needMore, trailing, aerr := c.inner.Parse(data, useHash)
	if aerr != nil {
		if aerr.Kind == arena.ErrOutOfMemory {
			c.log.WithError(aerr).Error("out of memory during parse")
		} else if aerr.Kind == arena.ErrInvalidSequence {
			c.log.WithField("lasterr", aerr.Seq.String()).Warn("invalid-sequence error")
		}
		return needMore, trailing, aerr
	}
	return needMore, trailing, nil
}

// Free releases the context's arenas to the garbage collector and drops
// the path cache. The context must not be used again afterwards; this is
// the explicit-release end of the lifecycle, as opposed to Recycle which
// keeps all backing memory for the next parse.
func (c *Context) Free() {
	c.inner.Free()
	c.pcache.clear()
	c.log.Debug("context freed")
}

// Closed reports whether the root container has matched its closing
// brace/bracket.
func (c *Context) Closed() bool { return c.inner.Closed() }

// LastError returns the descriptor of the most recent grammar error.
func (c *Context) LastError() arena.SequenceError { return c.inner.LastError() }

// Root returns the ref of the document root, for Find/Search/PathRefer
// and the other traversal operations exposed on arena.Context's query
// surface (accessible via Inner for callers that need the lower-level
// API directly).
func (c *Context) Root() int32 { return c.inner.Root() }

// Inner exposes the underlying arena.Context for callers that need direct
// access to the full lower-level query/mutation surface (Find, Search,
// GetMember, PathRefer, Sort, Promote, AddAfter, AddUnder, and the scalar
// accessors).
func (c *Context) Inner() *arena.Context { return c.inner }
