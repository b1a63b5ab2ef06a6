// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ltjson

import "github.com/ltjson/jsontree/arena"

// MemStat fills out a copy of the engine's NStats memory counters, in the
// same order as arena.MemStatLabels.
func (c *Context) MemStat() [arena.NStats]int64 {
	return c.inner.MemStat()
}
