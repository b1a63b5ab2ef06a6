// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arena

import "math"

// ValueType is the discriminated type tag carried by every Node. A Node's
// value fields are only meaningful for the subset described by its type:
// a tagged union without an actual union (Go has none), trading a few
// unused bytes per node for type safety.
type ValueType uint8

const (
	TypeEmpty ValueType = iota
	TypeBaseNode
	TypeNull
	TypeBool
	TypeArray
	TypeObject
	TypeFloat
	TypeInteger
	TypeString
)

func (t ValueType) String() string {
	switch t {
	case TypeEmpty:
		return "empty"
	case TypeBaseNode:
		return "basenode"
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	case TypeFloat:
		return "float"
	case TypeInteger:
		return "integer"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// IsContainer reports whether t is Object or Array.
func (t ValueType) IsContainer() bool { return t == TypeObject || t == TypeArray }

// Transient parse flags, cleared once their purpose is served.
const (
	FlagOpenContainer uint8 = 1 << iota // object/array opened but not yet closed
	FlagExpectColon                     // node received its name, awaits ':'
)

// NilIndex marks the absence of a node/slab/cell reference.
const NilIndex int32 = -1

// Node is one entry of the node arena. next/anc/child are arena indices,
// not pointers: the arena's backing slice may grow (new slabs appended),
// which would invalidate Go pointers into it but never invalidates indices.
//
// Only the fields relevant to ntype are meaningful at any one time:
//   - TypeBaseNode:            vRaw holds the owning slab's in-use count
//   - TypeBool/Integer/Float:  vRaw holds the bit pattern of the scalar
//   - TypeString:              vStr names the string-store handle
//   - TypeObject/TypeArray:    child is the first child's index
type Node struct {
	name  Handle
	vStr  Handle
	vRaw  uint64
	child int32
	next  int32
	anc   int32
	ntype ValueType
	flags uint8
}

func (n *Node) reset() {
	n.name = UnsetHandle()
	n.vStr = UnsetHandle()
	n.vRaw = 0
	n.child = NilIndex
	n.next = NilIndex
	n.anc = NilIndex
	n.ntype = TypeEmpty
	n.flags = 0
}

// Type returns the node's discriminated type tag.
func (n *Node) Type() ValueType { return n.ntype }

// HasName reports whether the node carries an object-member name (including
// the empty-string sentinel), as opposed to being an array element.
func (n *Node) HasName() bool { return !n.name.IsUnset() }

func (n *Node) SetInt(v int64) {
	n.ntype = TypeInteger
	n.vRaw = uint64(v)
}

func (n *Node) AsInt() int64 { return int64(n.vRaw) }

func (n *Node) SetFloat(v float64) {
	n.ntype = TypeFloat
	n.vRaw = math.Float64bits(v)
}

func (n *Node) AsFloat() float64 { return math.Float64frombits(n.vRaw) }

func (n *Node) SetBool(v bool) {
	n.ntype = TypeBool
	if v {
		n.vRaw = 1
	} else {
		n.vRaw = 0
	}
}

func (n *Node) AsBool() bool { return n.vRaw != 0 }

func (n *Node) SetNull() { n.ntype = TypeNull }

// SetStringHandle records an already-interned/stored string value.
func (n *Node) SetStringHandle(h Handle) {
	n.ntype = TypeString
	n.vStr = h
}

func (n *Node) StringHandle() Handle { return n.vStr }

func (n *Node) setOpen(t ValueType) {
	n.ntype = t
	n.child = NilIndex
	n.flags |= FlagOpenContainer
}

func (n *Node) isOpen() bool { return n.flags&FlagOpenContainer != 0 }
func (n *Node) clearOpen()   { n.flags &^= FlagOpenContainer }

func (n *Node) expectColon() bool { return n.flags&FlagExpectColon != 0 }
func (n *Node) setExpectColon()   { n.flags |= FlagExpectColon }
func (n *Node) clearExpectColon() { n.flags &^= FlagExpectColon }
