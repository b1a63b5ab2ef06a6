// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arena

// Next implements the depth-first step: descend into a container's
// first child, else take the next sibling, else walk up via ancestor links
// until a next sibling is found. It stops (returning NilIndex) at root, or
// at the optional stopAt ref when one is supplied (pass NilIndex to mean
// "no bound", i.e. walk all the way to the tree's own root).
func (ctx *Context) Next(ref int32, stopAt int32) int32 {
	n := ctx.nodeAt(ref)

	if n.ntype.IsContainer() && n.child != NilIndex {
		return n.child
	}
	for {
		if ref == stopAt || ref == RootRef {
			return NilIndex
		}
		if n.next != NilIndex {
			return n.next
		}
		ref = n.anc
		n = ctx.nodeAt(ref)
	}
}

// SearchName is a member-name key resolved once by MakeSearchString for
// repeated name scans: on an interning context it carries the interned
// handle and matches by handle identity, otherwise it matches by byte
// comparison.
type SearchName struct {
	raw    []byte
	handle Handle
	hashed bool
}

// MakeSearchString resolves name into a SearchName without interning it.
// With a name hash installed, a name that was never interned reports
// ErrNotFound: no node in this tree can carry it, so searches with the
// returned key are guaranteed misses (the key is still valid). Without a
// hash the name is adopted as-is.
func (ctx *Context) MakeSearchString(name []byte) (SearchName, *Error) {
	sn := SearchName{raw: name}
	if ctx.hash == nil {
		return sn, nil
	}
	h, ok := ctx.hash.Lookup(name)
	if !ok {
		return sn, newErr(ErrNotFound)
	}
	sn.handle = h
	sn.hashed = true
	return sn, nil
}

func (sn SearchName) matches(ctx *Context, n *Node) bool {
	if sn.hashed {
		return n.name.Equal(sn.handle)
	}
	return n.HasName() && ctx.sstore.EqualBytes(n.name, sn.raw)
}

// Find walks the tree depth-first looking for the first node whose name
// equals name, starting just past `from` (RootRef or NilIndex to search
// the whole tree; a previous match to resume past it, continuing through
// the remainder of the tree). The name is resolved once via
// MakeSearchString, so an interned miss short-circuits the walk.
func (ctx *Context) Find(name []byte, from int32) int32 {
	if from == NilIndex {
		from = RootRef
	}
	sn, err := ctx.MakeSearchString(name)
	if err != nil {
		return NilIndex
	}
	for ref := ctx.Next(from, NilIndex); ref != NilIndex; ref = ctx.Next(ref, NilIndex) {
		if sn.matches(ctx, ctx.nodeAt(ref)) {
			return ref
		}
	}
	return NilIndex
}

// SearchFlags controls Search's traversal bound.
type SearchFlags uint8

const (
	// SearchSubtreeOnly stops the walk at the subtree's own closing
	// boundary rather than continuing into the rest of the tree.
	SearchSubtreeOnly SearchFlags = 1 << iota
)

// Search is Find rooted at an arbitrary subtree (any container node).
// wrongType is set if subtree is not a container.
func (ctx *Context) Search(subtree int32, name []byte, from int32, flags SearchFlags) (ref int32, wrongType bool) {
	if !ctx.nodeAt(subtree).ntype.IsContainer() {
		return NilIndex, true
	}
	sn, err := ctx.MakeSearchString(name)
	if err != nil {
		return NilIndex, false
	}
	return ctx.SearchWith(subtree, sn, from, flags)
}

// SearchWith is Search with a pre-resolved SearchName, for callers
// issuing many searches with the same member name.
func (ctx *Context) SearchWith(subtree int32, sn SearchName, from int32, flags SearchFlags) (ref int32, wrongType bool) {
	if !ctx.nodeAt(subtree).ntype.IsContainer() {
		return NilIndex, true
	}
	start := from
	if start == NilIndex {
		start = subtree
	}

	bound := NilIndex
	if flags&SearchSubtreeOnly != 0 {
		bound = subtree
	}

	for r := ctx.Next(start, bound); r != NilIndex; r = ctx.Next(r, bound) {
		if sn.matches(ctx, ctx.nodeAt(r)) {
			return r, false
		}
	}
	return NilIndex, false
}

// GetMember is a direct child lookup in an object, distinct from Search:
// it never descends past the object's immediate children.
func (ctx *Context) GetMember(object int32, name []byte) (ref int32, wrongType bool) {
	obj := ctx.nodeAt(object)
	if obj.ntype != TypeObject {
		return NilIndex, true
	}
	sn, err := ctx.MakeSearchString(name)
	if err != nil {
		return NilIndex, false
	}
	for c := obj.child; c != NilIndex; c = ctx.nodeAt(c).next {
		if sn.matches(ctx, ctx.nodeAt(c)) {
			return c, false
		}
	}
	return NilIndex, false
}

// GetHashString resolves name to its interned handle without inserting
// it. A context that interns nothing reports ErrNoHash; with a hash
// installed, a name that was never interned yields the unset handle with
// a nil error, which is a legitimate miss rather than a failure.
func (ctx *Context) GetHashString(name []byte) (Handle, *Error) {
	if ctx.hash == nil {
		return UnsetHandle(), newErr(ErrNoHash)
	}
	h, ok := ctx.hash.Lookup(name)
	if !ok {
		return UnsetHandle(), nil
	}
	return h, nil
}

// NodeName returns the bytes of ref's object-member name, or nil if ref is
// an array element (no name) or the root.
func (ctx *Context) NodeName(ref int32) []byte {
	n := ctx.nodeAt(ref)
	if !n.HasName() {
		return nil
	}
	return ctx.sstore.Bytes(n.name)
}

// Child returns ref's first child (containers only) or NilIndex.
func (ctx *Context) Child(ref int32) int32 { return ctx.nodeAt(ref).child }

// SiblingNext returns ref's next sibling, or NilIndex if it is the last
// child of its container.
func (ctx *Context) SiblingNext(ref int32) int32 { return ctx.nodeAt(ref).next }

// Ancestor returns ref's ancestor (always a container, or RootRef's own
// NilIndex for the root itself).
func (ctx *Context) Ancestor(ref int32) int32 { return ctx.nodeAt(ref).anc }

// Type returns ref's discriminated type tag.
func (ctx *Context) Type(ref int32) ValueType { return ctx.nodeAt(ref).ntype }

// NodeHasName reports whether ref carries an object-member name.
func (ctx *Context) NodeHasName(ref int32) bool { return ctx.nodeAt(ref).HasName() }

// AsInt, AsFloat, AsBool, AsString expose a scalar node's value.
func (ctx *Context) AsInt(ref int32) int64     { return ctx.nodeAt(ref).AsInt() }
func (ctx *Context) AsFloat(ref int32) float64 { return ctx.nodeAt(ref).AsFloat() }
func (ctx *Context) AsBool(ref int32) bool     { return ctx.nodeAt(ref).AsBool() }
func (ctx *Context) AsString(ref int32) string {
	return ctx.sstore.Resolve(ctx.nodeAt(ref).vStr)
}
