// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ltjsonbench is a small example/benchmark binary, not a
// general-purpose CLI harness: it parses a configurable number of copies
// of a fixed sample document concurrently via
// ltjson.ParseAllConcurrently and reports throughput.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	ltjson "github.com/ltjson/jsontree"
)

const sampleDoc = `{"id":1,"name":"sample","tags":["a","b","c"],"nested":{"x":1,"y":2.5,"z":null}}`

func main() {
	count := flag.Int("n", 1000, "number of documents to parse concurrently")
	flag.Parse()

	if _, err := maxprocs.Set(maxprocs.Logger(func(string, ...any) {})); err != nil {
		fmt.Fprintf(os.Stderr, "ltjsonbench: maxprocs.Set: %v\n", err)
	}

	inputs := make([][]byte, *count)
	for i := range inputs {
		inputs[i] = []byte(sampleDoc)
	}

	start := time.Now()
	contexts, err := ltjson.ParseAllConcurrently(context.Background(), inputs)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ltjsonbench: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("parsed %d documents in %s (%.0f docs/sec)\n",
		len(contexts), elapsed, float64(len(contexts))/elapsed.Seconds())
}
