// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arena

// Promote splices the named member to the front of every object's child
// list within subtree, hoisting a frequently queried key so GetMember's
// linear scan finds it first. It walks the whole subtree, including
// subtree itself when it is an object, bounded so the walk never escapes
// past subtree's own closing boundary. Returns the number of objects
// actually modified; an object already having name first does not count,
// and zero modifications (the name absent everywhere, or already first
// everywhere) is reported as ErrNotFound.
func (ctx *Context) Promote(subtree int32, name []byte) (int, *Error) {
	root := ctx.nodeAt(subtree)
	if !root.ntype.IsContainer() {
		return 0, newErr(ErrWrongType)
	}

	// With a name hash installed the comparison degrades to handle
	// identity: one lookup up front, and a miss means no object anywhere
	// in the tree can hold this member.
	var interned Handle
	hashed := false
	if ctx.hash != nil {
		h, ok := ctx.hash.Lookup(name)
		if !ok {
			return 0, newErr(ErrNotFound)
		}
		interned = h
		hashed = true
	}

	moved := 0

	ref := subtree
	for {
		if ctx.Type(ref) == TypeObject {
			if ctx.promoteOne(ref, name, interned, hashed) {
				moved++
			}
		}
		next := ctx.Next(ref, subtree)
		if next == NilIndex {
			break
		}
		ref = next
	}

	if moved == 0 {
		return 0, newErr(ErrNotFound)
	}
	return moved, nil
}

// promoteOne moves name's member to the head of object's child list.
// Returns whether a splice actually happened: a member that is absent, or
// already first, leaves the object untouched.
func (ctx *Context) promoteOne(object int32, name []byte, interned Handle, hashed bool) bool {
	match := func(n *Node) bool {
		if hashed {
			return n.name.Equal(interned)
		}
		return ctx.sstore.EqualBytes(n.name, name)
	}

	obj := ctx.nodeAt(object)
	head := obj.child
	if head == NilIndex {
		return false
	}
	if match(ctx.nodeAt(head)) {
		return false
	}

	var prev int32 = NilIndex
	cur := head
	for cur != NilIndex {
		n := ctx.nodeAt(cur)
		if match(n) {
			ctx.nodeAt(prev).next = n.next
			n.next = head
			obj.child = cur
			return true
		}
		prev = cur
		cur = n.next
	}
	return false
}
