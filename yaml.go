// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ltjson

import (
	"fmt"

	"sigs.k8s.io/yaml"
)

// ParseYAML is a convenience wrapper: it converts doc from YAML to JSON
// via sigs.k8s.io/yaml.YAMLToJSON, then feeds the result through the
// ordinary incremental Parse entry point. It is not a second parser; the
// document must still fit in memory as a single byte slice, and every
// grammar and placement rule applies to the converted JSON exactly as if
// the caller had supplied it directly.
func (c *Context) ParseYAML(doc []byte, useHash bool) error {
	converted, err := yaml.YAMLToJSON(doc)
	if err != nil {
		return err
	}
	needMore, _, perr := c.Parse(converted, useHash)
	if perr != nil {
		return perr
	}
	if needMore {
		// YAMLToJSON always returns one complete JSON document, so a
		// well-formed conversion should never suspend; surface this rather
		// than silently leaving the tree half-built.
		_, _, _ = c.Parse(nil, useHash) // force a terminal error state
		return fmt.Errorf("ltjson: YAML-converted document did not close")
	}
	return nil
}
