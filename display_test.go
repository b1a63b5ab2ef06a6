// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ltjson

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDisplayEmptyContainers(t *testing.T) {
	c := New()
	if _, _, err := c.Parse([]byte(`{"a":[],"b":{}}`), true); err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	var buf strings.Builder
	if err := c.Display(&buf, c.Root()); err != nil {
		t.Fatalf("Display returned error: %v", err)
	}

	want := "JSON tree:\n" +
		"    {\n" +
		"        a : []\n" +
		"        b : {}\n" +
		"    }\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Display output mismatch (-want +got):\n%s", diff)
	}
}

func TestDisplayScalarsAndNesting(t *testing.T) {
	c := New()
	if _, _, err := c.Parse([]byte(`{"n":null,"t":true,"i":1,"s":"hi"}`), true); err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	var buf strings.Builder
	if err := c.Display(&buf, c.Root()); err != nil {
		t.Fatalf("Display returned error: %v", err)
	}

	want := "JSON tree:\n" +
		"    {\n" +
		"        n : null\n" +
		"        t : true\n" +
		"        i : 1\n" +
		"        s : \"hi\"\n" +
		"    }\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Display output mismatch (-want +got):\n%s", diff)
	}
}

func TestDisplayArrayElementsHaveNoName(t *testing.T) {
	c := New()
	if _, _, err := c.Parse([]byte(`[1,2]`), true); err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	var buf strings.Builder
	if err := c.Display(&buf, c.Root()); err != nil {
		t.Fatalf("Display returned error: %v", err)
	}
	if strings.Contains(buf.String(), " : ") {
		t.Errorf("array elements should not get a `name : ` prefix, got:\n%s", buf.String())
	}
}

func TestDisplayEmptyStringName(t *testing.T) {
	c := New()
	if _, _, err := c.Parse([]byte(`{"a":1}`), true); err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	// The new member takes the type of the existing member `a` (an integer),
	// which avoids importing arena solely for a type constant.
	if _, err := c.Inner().AddUnder(c.Root(), c.Inner().Type(c.Inner().Child(c.Root())), []byte{}, ""); err != nil {
		t.Fatalf("AddUnder returned error: %v", err)
	}
	var buf strings.Builder
	if err := c.Display(&buf, c.Root()); err != nil {
		t.Fatalf("Display returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "(no name) : ") {
		t.Errorf("expected '(no name) : ' for empty-string member name, got:\n%s", buf.String())
	}
}
