// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ltjson

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ltjson/jsontree/arena"
)

// defaultPathCacheSize is the per-Context LRU capacity.
const defaultPathCacheSize = 64

// pathCache caches ParsePathExpr's tokenized segment-record slice for a
// raw path string: a small bounded LRU so re-running PathRefer with the
// same path literal against a changed tree skips re-tokenizing the path
// grammar itself. The cache holds no node refs, so it survives tree
// mutations safely; it is still invalidated wholesale on recycle since
// the segments' pre-resolved handles (when a name hash is active) are
// only valid for the hash generation they were resolved against.
type pathCache struct {
	cache *lru.Cache[string, []arena.PathSegment]
}

func newPathCache(size int) *pathCache {
	c, _ := lru.New[string, []arena.PathSegment](size)
	return &pathCache{cache: c}
}

// lookup returns a cached tokenization of path, tokenizing and caching it
// on a miss.
func (pc *pathCache) lookup(path string) ([]arena.PathSegment, *arena.Error) {
	if segs, ok := pc.cache.Get(path); ok {
		return segs, nil
	}
	segs, err := arena.ParsePathExpr(path)
	if err != nil {
		return nil, err
	}
	pc.cache.Add(path, segs)
	return segs, nil
}

func (pc *pathCache) clear() {
	pc.cache.Purge()
}

// PathRefer tokenizes path (using the per-Context cache) and matches it
// against the tree.
func (c *Context) PathRefer(path string, out []int32) (total int, err error) {
	segs, perr := c.pcache.lookup(path)
	if perr != nil {
		return 0, perr
	}
	return c.inner.PathRefer(segs, out), nil
}
