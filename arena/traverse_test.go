// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arena

import "testing"

func TestNextDepthFirst(t *testing.T) {
	ctx := mustParse(t, `{"a":1,"b":[2,3],"c":{"d":4}}`, true)
	root := ctx.Root()

	var order []ValueType
	for ref := ctx.Next(root, root); ref != NilIndex; ref = ctx.Next(ref, root) {
		order = append(order, ctx.Type(ref))
	}

	want := []ValueType{
		TypeInteger, // a
		TypeArray,   // b
		TypeInteger, // b[0]
		TypeInteger, // b[1]
		TypeObject,  // c
		TypeInteger, // c.d
	}
	if len(order) != len(want) {
		t.Fatalf("visited %d nodes, want %d: %v", len(order), len(want), order)
	}
	for i, w := range want {
		if order[i] != w {
			t.Errorf("node %d: type = %v, want %v", i, order[i], w)
		}
	}
}

func TestNextBoundedSubtree(t *testing.T) {
	ctx := mustParse(t, `{"a":{"b":1,"c":2},"d":3}`, true)
	root := ctx.Root()
	a, _ := ctx.GetMember(root, []byte("a"))

	var order []int32
	for ref := ctx.Next(a, a); ref != NilIndex; ref = ctx.Next(ref, a) {
		order = append(order, ref)
	}
	if len(order) != 2 {
		t.Fatalf("bounded walk visited %d nodes, want 2 (b, c only, not d)", len(order))
	}
	for _, ref := range order {
		if ctx.AsInt(ref) == 3 {
			t.Errorf("bounded walk leaked into sibling 'd'")
		}
	}
}

func TestFindWholeTree(t *testing.T) {
	ctx := mustParse(t, `{"a":{"b":{"target":7}},"other":{"target":8}}`, true)
	ref := ctx.Find([]byte("target"), NilIndex)
	if ref == NilIndex {
		t.Fatalf("Find did not locate 'target'")
	}
	if ctx.AsInt(ref) != 7 {
		t.Errorf("Find returned first match = %d, want 7 (depth-first order)", ctx.AsInt(ref))
	}
}

func TestFindNoHashMiss(t *testing.T) {
	ctx := mustParse(t, `{"a":1}`, true)
	if ref := ctx.Find([]byte("nonexistent"), NilIndex); ref != NilIndex {
		t.Errorf("Find(nonexistent) = %v, want NilIndex", ref)
	}
}

func TestSearchSubtreeOnly(t *testing.T) {
	ctx := mustParse(t, `{"a":{"x":1},"b":{"x":2}}`, true)
	root := ctx.Root()
	a, _ := ctx.GetMember(root, []byte("a"))
	b, _ := ctx.GetMember(root, []byte("b"))

	ref, wrong := ctx.Search(a, []byte("x"), NilIndex, SearchSubtreeOnly)
	if wrong || ref == NilIndex {
		t.Fatalf("Search(a, x) failed: wrong=%v ref=%v", wrong, ref)
	}
	if ctx.AsInt(ref) != 1 {
		t.Errorf("Search(a, x) = %d, want 1", ctx.AsInt(ref))
	}

	ref, wrong = ctx.Search(b, []byte("x"), NilIndex, SearchSubtreeOnly)
	if wrong || ref == NilIndex || ctx.AsInt(ref) != 2 {
		t.Fatalf("Search(b, x) = %v, wrong=%v, want 2", ref, wrong)
	}
}

func TestSearchWrongType(t *testing.T) {
	ctx := mustParse(t, `{"a":1}`, true)
	root := ctx.Root()
	a, _ := ctx.GetMember(root, []byte("a"))
	if _, wrong := ctx.Search(a, []byte("x"), NilIndex, 0); !wrong {
		t.Errorf("Search(scalar, ...) wrong = false, want true")
	}
}

func TestGetMemberDirectOnly(t *testing.T) {
	ctx := mustParse(t, `{"a":{"nested":1},"b":2}`, true)
	root := ctx.Root()

	if ref, wrong := ctx.GetMember(root, []byte("nested")); wrong || ref != NilIndex {
		t.Errorf("GetMember(root, nested) should not descend into 'a': ref=%v wrong=%v", ref, wrong)
	}
	if ref, wrong := ctx.GetMember(root, []byte("b")); wrong || ref == NilIndex || ctx.AsInt(ref) != 2 {
		t.Errorf("GetMember(root, b) = %v, wrong=%v, want 2", ref, wrong)
	}
}

func TestGetHashString(t *testing.T) {
	ctx := mustParse(t, `{"known":1}`, true)

	h, err := ctx.GetHashString([]byte("known"))
	if err != nil || h.IsUnset() {
		t.Errorf("GetHashString(known) = %+v, %v, want interned handle", h, err)
	}

	// An uninterned name is a miss, not an error.
	h, err = ctx.GetHashString([]byte("unknown"))
	if err != nil {
		t.Errorf("GetHashString(unknown) error = %v, want nil", err)
	}
	if !h.IsUnset() {
		t.Errorf("GetHashString(unknown) = %+v, want unset handle", h)
	}

	// A context without a hash is a configuration error.
	noHash := NewContext(DefaultConfig(), false)
	if _, err := noHash.GetHashString([]byte("anything")); err == nil || err.Kind != ErrNoHash {
		t.Errorf("GetHashString on no-hash context = %v, want ErrNoHash", err)
	}
}

func TestMakeSearchStringAndSearchWith(t *testing.T) {
	ctx := mustParse(t, `{"a":{"x":1},"b":{"x":2}}`, true)
	root := ctx.Root()
	b, _ := ctx.GetMember(root, []byte("b"))

	sn, err := ctx.MakeSearchString([]byte("x"))
	if err != nil {
		t.Fatalf("MakeSearchString(x) returned error: %v", err)
	}
	ref, wrong := ctx.SearchWith(b, sn, NilIndex, SearchSubtreeOnly)
	if wrong || ref == NilIndex || ctx.AsInt(ref) != 2 {
		t.Fatalf("SearchWith(b, x) = %v, wrong=%v, want 2", ref, wrong)
	}

	// An uninterned name resolves to a key that is guaranteed to miss.
	sn, err = ctx.MakeSearchString([]byte("absent"))
	if err == nil || err.Kind != ErrNotFound {
		t.Fatalf("MakeSearchString(absent) = %v, want ErrNotFound", err)
	}
	if ref, wrong := ctx.SearchWith(root, sn, NilIndex, 0); wrong || ref != NilIndex {
		t.Errorf("SearchWith(absent key) = %v, wrong=%v, want no match", ref, wrong)
	}

	// Without a hash the key simply adopts the raw bytes.
	plain := mustParse(t, `{"x":5}`, false)
	sn, err = plain.MakeSearchString([]byte("x"))
	if err != nil {
		t.Fatalf("MakeSearchString on no-hash context returned error: %v", err)
	}
	if ref, wrong := plain.SearchWith(plain.Root(), sn, NilIndex, 0); wrong || plain.AsInt(ref) != 5 {
		t.Errorf("SearchWith on no-hash context = %v, wrong=%v, want 5", ref, wrong)
	}
}

func TestNodeNameAndAccessors(t *testing.T) {
	ctx := mustParse(t, `{"name":"value","num":42,"flag":true}`, true)
	root := ctx.Root()

	n, _ := ctx.GetMember(root, []byte("name"))
	if string(ctx.NodeName(n)) != "name" {
		t.Errorf("NodeName = %q, want %q", ctx.NodeName(n), "name")
	}
	if ctx.AsString(n) != "value" {
		t.Errorf("AsString = %q, want %q", ctx.AsString(n), "value")
	}

	flag, _ := ctx.GetMember(root, []byte("flag"))
	if !ctx.AsBool(flag) {
		t.Errorf("AsBool(flag) = false, want true")
	}
	if ctx.NodeName(ctx.Child(root)) == nil {
		t.Errorf("NodeName(first child) unexpectedly nil")
	}
}
