// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arena

import "testing"

func TestStringStoreAddAndResolve(t *testing.T) {
	s := NewStringStore(minBlockSize)

	h1 := s.Add([]byte("hello"))
	h2 := s.Add([]byte("world"))
	if s.Resolve(h1) != "hello" || s.Resolve(h2) != "world" {
		t.Fatalf("Resolve = %q, %q, want hello, world", s.Resolve(h1), s.Resolve(h2))
	}
	if h1.Equal(h2) {
		t.Errorf("distinct strings got equal handles")
	}
	if !s.EqualBytes(h1, []byte("hello")) {
		t.Errorf("EqualBytes(h1, hello) = false")
	}
	if s.EqualBytes(h1, []byte("hellx")) {
		t.Errorf("EqualBytes(h1, hellx) = true")
	}
}

func TestStringStoreOversizeRequestGetsOwnBlock(t *testing.T) {
	s := NewStringStore(minBlockSize)

	big := make([]byte, minBlockSize*3)
	for i := range big {
		big[i] = byte('a' + i%26)
	}
	h := s.Add(big)
	if got := s.Resolve(h); got != string(big) {
		t.Fatalf("oversize Resolve mismatch: %d bytes back, want %d", len(got), len(big))
	}

	blocks, total, used := s.Stats()
	if blocks == 0 || total < len(big) || used < len(big) {
		t.Errorf("Stats = (%d, %d, %d) after oversize add", blocks, total, used)
	}
}

func TestStringStoreFillsEarliestBlockWithCapacity(t *testing.T) {
	s := NewStringStore(minBlockSize)

	// Force a second block by filling most of the first.
	s.Add(make([]byte, minBlockSize-4))
	s.Add(make([]byte, minBlockSize/2))

	// A small add must land back in the first block's remaining space.
	h := s.Add([]byte("ab"))
	if h.block != 0 {
		t.Errorf("small add landed in block %d, want 0", h.block)
	}
}

func TestStringStoreClearRewindsAllBlocks(t *testing.T) {
	s := NewStringStore(minBlockSize)

	for i := 0; i < 8; i++ {
		s.Add(make([]byte, minBlockSize-4))
	}
	blocksBefore, totalBefore, _ := s.Stats()

	s.Clear()
	_, _, used := s.Stats()
	if used != 0 {
		t.Fatalf("used = %d after Clear, want 0", used)
	}

	// The same storage must absorb an equal refill without growing.
	for i := 0; i < 8; i++ {
		s.Add(make([]byte, minBlockSize-4))
	}
	blocksAfter, totalAfter, _ := s.Stats()
	if blocksAfter != blocksBefore || totalAfter != totalBefore {
		t.Errorf("store grew across Clear+refill: blocks %d -> %d, total %d -> %d",
			blocksBefore, blocksAfter, totalBefore, totalAfter)
	}
}

func TestHandleSentinels(t *testing.T) {
	s := NewStringStore(minBlockSize)

	unset := UnsetHandle()
	empty := EmptySentinel()
	if !unset.IsUnset() || unset.IsEmpty() {
		t.Errorf("UnsetHandle misclassified")
	}
	if !empty.IsEmpty() || empty.IsUnset() {
		t.Errorf("EmptySentinel misclassified")
	}
	if s.Resolve(unset) != "" || s.Resolve(empty) != "" {
		t.Errorf("sentinels should resolve to empty string")
	}
	if !s.EqualBytes(empty, nil) {
		t.Errorf("EqualBytes(empty sentinel, nil) = false, want true")
	}
	if s.EqualBytes(unset, nil) {
		t.Errorf("EqualBytes(unset, nil) = true, want false")
	}
}
