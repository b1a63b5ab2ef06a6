// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arena

import "unsafe"

// MemStatLabels names the memory counters, in the exact order MemStat
// fills them.
var MemStatLabels = [...]string{
	"total memory (bytes)",
	"json nodes created",
	"json nodes filled",
	"working store (bytes)",
	"string store chains",
	"string store total (bytes)",
	"string store used (bytes)",
	"hash buckets created",
	"hash buckets filled",
	"hash cells created",
	"hash cells filled",
	"hash hits",
	"hash misses",
}

// NStats is the fixed count of MemStat counters.
const NStats = len(MemStatLabels)

// MemStat fills the NStats counters, in the same order as MemStatLabels.
func (ctx *Context) MemStat() [NStats]int64 {
	var out [NStats]int64

	_, nodeCap, nodeUsed := ctx.nodes.Stats()
	sblocks, scap, sused := ctx.sstore.Stats()

	var hbuckets, hcellsAlloc, hcellsUsed int
	var hits, misses int64
	if ctx.hash != nil {
		hbuckets, hcellsAlloc, hcellsUsed = ctx.hash.Stats()
		hits, misses = ctx.hash.HitsMisses()
	}

	nodeBytes := int64(nodeCap) * int64(unsafe.Sizeof(Node{}))
	sstoreBytes := int64(scap)
	hashBytes := int64(hcellsAlloc) * int64(unsafe.Sizeof(nameCell{}))
	workBytes := int64(cap(ctx.tok.buf))

	out[0] = nodeBytes + sstoreBytes + hashBytes + workBytes
	out[1] = int64(nodeCap)
	out[2] = int64(nodeUsed)
	out[3] = workBytes
	out[4] = int64(sblocks)
	out[5] = sstoreBytes
	out[6] = int64(sused)
	if ctx.hash != nil {
		out[7] = int64(len(ctx.hash.buckets))
	}
	out[8] = int64(hbuckets)
	out[9] = int64(hcellsAlloc)
	out[10] = int64(hcellsUsed)
	out[11] = hits
	out[12] = misses

	return out
}
