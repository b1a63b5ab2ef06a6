// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ltjson

import (
	"strings"

	"github.com/xeipuuv/gojsonpointer"
)

// RenderPointer reconstructs an RFC 6901 JSON-Pointer string for node
// (reachable from root): purely a debug/log-correlation convenience
// alongside this engine's own path syntax
// (arena.ParsePathExpr), which remains the only resolution
// mechanism PathRefer and the parser use. node must have been matched by
// PathRefer/Search/Find; passing an arbitrary ref from another tree
// produces meaningless output rather than an error, since no tree
// identity is threaded through a ref.
func (c *Context) RenderPointer(node int32) (string, error) {
	raw := c.inner.PathSegmentsOf(node)

	segs := make([]string, len(raw))
	for i, s := range raw {
		segs[i] = escapeToken(s)
	}
	ptr := ""
	if len(segs) > 0 {
		ptr = "/" + strings.Join(segs, "/")
	}

	// Round-trip through gojsonpointer purely to validate RFC 6901 escaping
	// of `~` and `/` within segment text; NewJsonPointer parses the very
	// string we just built, and its parsed result is discarded.
	if _, err := gojsonpointer.NewJsonPointer(ptr); err != nil {
		return "", err
	}
	return ptr, nil
}

func escapeToken(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}
