// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arena

// AddAfter inserts a freshly created node as the next sibling of node,
// i.e. into the same container node belongs to. name is required (and
// hashed when a name hash is installed) iff that container is an object,
// and rejected if the container is an array. sval is used only when
// vtype is TypeString; numeric types are zero-initialized.
func (ctx *Context) AddAfter(node int32, vtype ValueType, name []byte, sval string) (int32, *Error) {
	if node == NilIndex {
		return NilIndex, newErr(ErrInvalidArg)
	}
	anc := ctx.nodeAt(node).anc
	if anc == NilIndex {
		return NilIndex, newErr(ErrWrongParent)
	}
	ref, err := ctx.newSibling(anc, vtype, name, sval)
	if err != nil {
		return NilIndex, err
	}
	n := ctx.nodeAt(node)
	ctx.nodeAt(ref).next = n.next
	n.next = ref
	return ref, nil
}

// AddUnder inserts a freshly created node as the first child of container,
// displacing whatever was previously first. Same name/value rules as
// AddAfter.
func (ctx *Context) AddUnder(container int32, vtype ValueType, name []byte, sval string) (int32, *Error) {
	c := ctx.nodeAt(container)
	if !c.ntype.IsContainer() {
		return NilIndex, newErr(ErrWrongType)
	}
	ref, err := ctx.newSibling(container, vtype, name, sval)
	if err != nil {
		return NilIndex, err
	}
	c = ctx.nodeAt(container)
	ctx.nodeAt(ref).next = c.child
	c.child = ref
	return ref, nil
}

// newSibling allocates and populates a node belonging to container,
// without linking it into any list; callers splice it in themselves.
func (ctx *Context) newSibling(container int32, vtype ValueType, name []byte, sval string) (int32, *Error) {
	cont := ctx.nodeAt(container)
	switch cont.ntype {
	case TypeObject:
		if name == nil {
			return NilIndex, newErr(ErrInvalidArg)
		}
	case TypeArray:
		if name != nil {
			return NilIndex, newErr(ErrInvalidArg)
		}
	default:
		return NilIndex, newErr(ErrWrongParent)
	}

	switch vtype {
	case TypeNull, TypeBool, TypeInteger, TypeFloat, TypeString, TypeObject, TypeArray:
	default:
		return NilIndex, newErr(ErrBadType)
	}

	idx := ctx.nodes.Alloc()
	n := ctx.nodes.Node(idx)
	n.anc = container

	if name != nil {
		if len(name) == 0 {
			n.name = EmptySentinel()
		} else if ctx.hash != nil {
			n.name = ctx.hash.Insert(name)
		} else {
			n.name = ctx.sstore.Add(name)
		}
	}

	switch vtype {
	case TypeNull:
		n.SetNull()
	case TypeBool:
		n.SetBool(false)
	case TypeInteger:
		n.SetInt(0)
	case TypeFloat:
		n.SetFloat(0)
	case TypeString:
		if sval == "" {
			n.SetStringHandle(EmptySentinel())
		} else {
			n.SetStringHandle(ctx.sstore.AddString(sval))
		}
	case TypeObject, TypeArray:
		n.ntype = vtype
		n.child = NilIndex
	}

	return idx, nil
}
