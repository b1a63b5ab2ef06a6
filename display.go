// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ltjson

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ltjson/jsontree/arena"
)

// Display writes a human-readable depth-first dump of the subtree rooted
// at node to w: a "JSON tree:" header, 4 spaces of indentation per
// level plus a leading 4-space indent, `name : ` (or `(no name) : ` for an
// empty-sentinel name) before values inside an object, and containers
// printed as `{`/`[` on entry and `}`/`]` on exit aligned to their depth
// (collapsed to `{}`/`[]` on one line when empty).
func (c *Context) Display(w io.Writer, node int32) error {
	if _, err := io.WriteString(w, "JSON tree:\n"); err != nil {
		return err
	}
	return c.displayNode(w, node, 1, false)
}

func (c *Context) displayNode(w io.Writer, ref int32, depth int, inObject bool) error {
	in := c.inner
	indent := strings.Repeat("    ", depth)

	if inObject {
		if _, err := io.WriteString(w, indent); err != nil {
			return err
		}
		if err := writeName(w, in, ref); err != nil {
			return err
		}
	} else {
		if _, err := io.WriteString(w, indent); err != nil {
			return err
		}
	}

	t := in.Type(ref)
	if !t.IsContainer() {
		return writeScalar(w, in, ref)
	}

	open, closer := "{", "}"
	if t == arena.TypeArray {
		open, closer = "[", "]"
	}

	child := in.Child(ref)
	if child == arena.NilIndex {
		_, err := fmt.Fprintf(w, "%s%s\n", open, closer)
		return err
	}

	if _, err := fmt.Fprintf(w, "%s\n", open); err != nil {
		return err
	}
	isObj := t == arena.TypeObject
	for c2 := child; c2 != arena.NilIndex; c2 = in.SiblingNext(c2) {
		if err := c.displayNode(w, c2, depth+1, isObj); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s%s\n", indent, closer)
	return err
}

func writeName(w io.Writer, in *arena.Context, ref int32) error {
	if !in.NodeHasName(ref) {
		return nil
	}
	name := in.NodeName(ref)
	if len(name) == 0 {
		_, err := io.WriteString(w, "(no name) : ")
		return err
	}
	_, err := fmt.Fprintf(w, "%s : ", string(name))
	return err
}

func writeScalar(w io.Writer, in *arena.Context, ref int32) error {
	switch in.Type(ref) {
	case arena.TypeNull:
		_, err := io.WriteString(w, "null\n")
		return err
	case arena.TypeBool:
		_, err := fmt.Fprintf(w, "%t\n", in.AsBool(ref))
		return err
	case arena.TypeInteger:
		_, err := fmt.Fprintf(w, "%d\n", in.AsInt(ref))
		return err
	case arena.TypeFloat:
		_, err := fmt.Fprintf(w, "%s\n", strconv.FormatFloat(in.AsFloat(ref), 'g', -1, 64))
		return err
	case arena.TypeString:
		_, err := fmt.Fprintf(w, "%q\n", in.AsString(ref))
		return err
	default:
		_, err := io.WriteString(w, "\n")
		return err
	}
}
