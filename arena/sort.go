// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arena

// CompareFunc is a three-way comparator over two sibling refs, receiving
// the tree's root (derived by walking ancestor links up from the sort
// target) and an opaque user value threaded through unchanged.
type CompareFunc func(ctx *Context, a, b int32, root int32, user any) int

// treeRootOf walks ancnode links from ref up to the tree's own root.
func (ctx *Context) treeRootOf(ref int32) int32 {
	for ref != RootRef {
		ref = ctx.nodeAt(ref).anc
	}
	return RootRef
}

// Sort performs an in-place, stable, bottom-up merge sort (Tatham's
// algorithm) over container's singly linked child list. O(n log n) time,
// O(1) extra space beyond the list itself; ties leave the earlier sibling
// first.
func (ctx *Context) Sort(container int32, cmp CompareFunc, user any) *Error {
	t := ctx.Type(container)
	if !t.IsContainer() {
		return newErr(ErrWrongType)
	}
	head := ctx.Child(container)
	if head == NilIndex {
		return nil
	}
	root := ctx.treeRootOf(container)
	newHead := ctx.mergeSortList(head, cmp, root, user)
	ctx.nodeAt(container).child = newHead
	return nil
}

// mergeSortList is a direct translation of Simon Tatham's linked-list
// merge sort to arena-index "pointers": repeated passes merge runs of
// doubling size until a full sweep performs at most one merge, at which
// point the list is sorted. Each pass always walks the entire list (every
// node is visited exactly once per pass, whether consumed from the p-run
// or the q-run), so "merges <= 1 after a full pass" is a safe termination.
func (ctx *Context) mergeSortList(head int32, cmp CompareFunc, root int32, user any) int32 {
	insize := 1
	list := head

	for {
		p := list
		list = NilIndex
		tail := NilIndex
		nmerges := 0

		for p != NilIndex {
			nmerges++
			q := p
			psize := 0
			for i := 0; i < insize; i++ {
				psize++
				q = ctx.nodeAt(q).next
				if q == NilIndex {
					break
				}
			}
			qsize := insize

			for psize > 0 || (qsize > 0 && q != NilIndex) {
				var e int32
				switch {
				case psize == 0:
					e = q
					q = ctx.nodeAt(q).next
					qsize--
				case qsize == 0 || q == NilIndex:
					e = p
					p = ctx.nodeAt(p).next
					psize--
				case cmp(ctx, p, q, root, user) <= 0:
					e = p
					p = ctx.nodeAt(p).next
					psize--
				default:
					e = q
					q = ctx.nodeAt(q).next
					qsize--
				}

				if tail != NilIndex {
					ctx.nodeAt(tail).next = e
				} else {
					list = e
				}
				tail = e
			}

			p = q
		}
		ctx.nodeAt(tail).next = NilIndex

		if nmerges <= 1 {
			return list
		}
		insize *= 2
	}
}
