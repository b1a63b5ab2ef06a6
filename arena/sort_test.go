// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arena

import "testing"

func byIntValue(ctx *Context, a, b int32, root int32, user any) int {
	av, bv := ctx.AsInt(a), ctx.AsInt(b)
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

func collectInts(ctx *Context, container int32) []int64 {
	var out []int64
	for c := ctx.Child(container); c != NilIndex; c = ctx.SiblingNext(c) {
		out = append(out, ctx.AsInt(c))
	}
	return out
}

func TestSortArrayAscending(t *testing.T) {
	ctx := mustParse(t, `[5,3,1,4,2]`, true)
	root := ctx.Root()

	if err := ctx.Sort(root, byIntValue, nil); err != nil {
		t.Fatalf("Sort returned error: %v", err)
	}
	got := collectInts(ctx, root)
	want := []int64{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d = %d, want %d (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestSortAlreadySorted(t *testing.T) {
	ctx := mustParse(t, `[1,2,3]`, true)
	root := ctx.Root()
	if err := ctx.Sort(root, byIntValue, nil); err != nil {
		t.Fatalf("Sort returned error: %v", err)
	}
	got := collectInts(ctx, root)
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}

func TestSortEmptyArray(t *testing.T) {
	ctx := mustParse(t, `[]`, true)
	root := ctx.Root()
	if err := ctx.Sort(root, byIntValue, nil); err != nil {
		t.Fatalf("Sort on empty array returned error: %v", err)
	}
	if ctx.Child(root) != NilIndex {
		t.Errorf("empty array gained a child after Sort")
	}
}

func TestSortSingleElement(t *testing.T) {
	ctx := mustParse(t, `[42]`, true)
	root := ctx.Root()
	if err := ctx.Sort(root, byIntValue, nil); err != nil {
		t.Fatalf("Sort returned error: %v", err)
	}
	got := collectInts(ctx, root)
	if len(got) != 1 || got[0] != 42 {
		t.Errorf("got %v, want [42]", got)
	}
}

func TestSortWrongType(t *testing.T) {
	ctx := mustParse(t, `{"a":1}`, true)
	root := ctx.Root()
	a, _ := ctx.GetMember(root, []byte("a"))
	if err := ctx.Sort(a, byIntValue, nil); err == nil || err.Kind != ErrWrongType {
		t.Fatalf("Sort(scalar) = %v, want ErrWrongType", err)
	}
}

func TestSortObjectByMemberValue(t *testing.T) {
	ctx := mustParse(t, `{"c":3,"a":1,"b":2}`, true)
	root := ctx.Root()
	if err := ctx.Sort(root, byIntValue, nil); err != nil {
		t.Fatalf("Sort returned error: %v", err)
	}
	got := collectInts(ctx, root)
	want := []int64{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d = %d, want %d (full: %v)", i, got[i], want[i], got)
		}
	}
}
