// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arena

import (
	"bytes"
	"strconv"
)

// MaxPathSegments bounds the tokenized segment stack.
const MaxPathSegments = 64

// PathSegment is one `/`-separated step of the path grammar:
// `name`, `name[idx]`, `name[*]`, `name[]`, or `[idx]` (array-only, no
// name). indexAny covers both `[*]` and the empty-brackets `[]` form.
type PathSegment struct {
	Name     []byte
	HasName  bool
	HasIndex bool
	IndexAny bool
	Index    int

	handle   Handle
	hashable bool // true once handle has been resolved against a name hash
}

// ParsePathExpr tokenizes an externally visible path string into a bounded
// stack of segment records. The leading `/` is mandatory; `/` alone yields
// the empty segment list (refers to the root itself).
func ParsePathExpr(path string) ([]PathSegment, *Error) {
	if len(path) == 0 || path[0] != '/' {
		return nil, newErr(ErrBadPath)
	}
	if len(path) == 1 {
		return nil, nil
	}

	raw := splitSegments(path[1:])
	if len(raw) > MaxPathSegments {
		return nil, newErr(ErrPathTooLong)
	}

	segs := make([]PathSegment, len(raw))
	for i, s := range raw {
		seg, ok := parseOneSegment(s)
		if !ok {
			return nil, newErr(ErrBadPath)
		}
		segs[i] = seg
	}
	return segs, nil
}

func splitSegments(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

func parseOneSegment(s string) (PathSegment, bool) {
	open := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '[' {
			open = i
			break
		}
	}
	if open == -1 {
		if len(s) == 0 {
			return PathSegment{}, false
		}
		return PathSegment{Name: []byte(s), HasName: true}, true
	}
	if s[len(s)-1] != ']' {
		return PathSegment{}, false
	}
	name := s[:open]
	inner := s[open+1 : len(s)-1]

	seg := PathSegment{HasIndex: true}
	if len(name) > 0 {
		seg.Name = []byte(name)
		seg.HasName = true
	}
	switch inner {
	case "", "*":
		seg.IndexAny = true
	default:
		idx, err := strconv.Atoi(inner)
		if err != nil || idx < 0 {
			return PathSegment{}, false
		}
		seg.Index = idx
	}
	return seg, true
}

// resolveHandles pre-resolves every named segment to its interned handle
// when a name hash is installed. ok is false the instant any name cannot
// possibly exist in this tree, letting the caller short-circuit to zero
// matches.
func (ctx *Context) resolveHandles(segs []PathSegment) (ok bool) {
	if ctx.hash == nil {
		return true
	}
	for i := range segs {
		if !segs[i].HasName {
			continue
		}
		h, found := ctx.hash.Lookup(segs[i].Name)
		if !found {
			return false
		}
		segs[i].handle = h
		segs[i].hashable = true
	}
	return true
}

func (ctx *Context) segmentNameEquals(n *Node, seg *PathSegment) bool {
	if seg.hashable {
		return n.name.Equal(seg.handle)
	}
	return ctx.sstore.EqualBytes(n.name, seg.Name)
}

// PathRefer matches a tokenized path expression against the tree, writing
// up to len(out) matches into out (in traversal order) and returning the
// total match count, which may exceed len(out): counting continues past
// capacity so the caller learns how many matches exist even when out is
// too small to hold them all.
func (ctx *Context) PathRefer(segs []PathSegment, out []int32) (total int) {
	if !ctx.resolveHandles(segs) {
		return 0
	}
	n := 0
	ctx.matchPath(RootRef, segs, 0, out, &n)
	return n
}

func (ctx *Context) matchPath(node int32, segs []PathSegment, si int, out []int32, total *int) {
	if si == len(segs) {
		if *total < len(out) {
			out[*total] = node
		}
		*total++
		return
	}

	seg := &segs[si]
	switch ctx.Type(node) {
	case TypeObject:
		if !seg.HasName {
			return
		}
		for c := ctx.Child(node); c != NilIndex; c = ctx.SiblingNext(c) {
			cn := ctx.nodeAt(c)
			if !ctx.segmentNameEquals(cn, seg) {
				continue
			}
			if seg.HasIndex {
				if cn.ntype != TypeArray {
					return
				}
				ctx.selectArray(c, seg, segs, si+1, out, total)
			} else {
				ctx.matchPath(c, segs, si+1, out, total)
			}
			return // object member names are unique; one match is enough
		}

	case TypeArray:
		if seg.HasName {
			return
		}
		ctx.selectArray(node, seg, segs, si+1, out, total)

	default:
		// leaves can only terminate a path, handled by the si==len(segs)
		// check above; reaching here means segments remain unmatched.
	}
}

func (ctx *Context) selectArray(arrayRef int32, seg *PathSegment, segs []PathSegment, nextSi int, out []int32, total *int) {
	pos := 0
	for c := ctx.Child(arrayRef); c != NilIndex; c = ctx.SiblingNext(c) {
		if seg.IndexAny || pos == seg.Index {
			ctx.matchPath(c, segs, nextSi, out, total)
		}
		pos++
	}
}

// PathSegmentsOf walks from node up to root and returns its path as a
// plain list of segment strings, root-to-leaf order: object-member names
// verbatim (never escaped or delimited: a name containing '/' is returned
// as one whole segment) and array positions as plain decimal. Callers that
// need a single delimited string of their own (RFC 6901, debug logging)
// must do their own escaping per segment; joining these with a bare '/'
// without escaping would make a name containing '/' indistinguishable
// from a segment boundary.
func (ctx *Context) PathSegmentsOf(node int32) []string {
	var segs []string
	for ref := node; ref != RootRef; {
		n := ctx.nodeAt(ref)
		anc := n.anc
		if n.HasName() {
			segs = append(segs, string(ctx.sstore.Bytes(n.name)))
		} else if ctx.Type(anc) == TypeArray {
			pos := 0
			for c := ctx.Child(anc); c != NilIndex && c != ref; c = ctx.SiblingNext(c) {
				pos++
			}
			segs = append(segs, strconv.Itoa(pos))
		}
		ref = anc
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return segs
}

// RenderPointer reconstructs a slash-delimited path for a node reachable
// from root, e.g. `/a/0/b`, for debug logging and test failure messages
// only: a name containing '/' is not escaped, so this is not a safe
// encoding to split back into segments (see PathSegmentsOf for that).
func (ctx *Context) RenderPointer(node int32) string {
	segs := ctx.PathSegmentsOf(node)
	if len(segs) == 0 {
		return "/"
	}
	var buf bytes.Buffer
	for _, s := range segs {
		buf.WriteByte('/')
		buf.WriteString(s)
	}
	return buf.String()
}
