// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ltjson

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/ltjson/jsontree/arena"
)

// Statdump renders the engine's MemStat counters as a table, one row per
// labeled counter. Includes the context's correlation ID so multiple
// contexts dumping to shared log output stay distinguishable.
func (c *Context) Statdump(w io.Writer) {
	stats := c.inner.MemStat()

	rows := make([][]string, 0, arena.NStats+1)
	rows = append(rows, []string{"context id", c.id.String()})
	for i, label := range arena.MemStatLabels {
		rows = append(rows, []string{label, strconv.FormatInt(stats[i], 10)})
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"counter", "value"})
	table.Bulk(rows)
	table.Render()
}
