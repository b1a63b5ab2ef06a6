// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ltjson

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ParseAllConcurrently parses each element of inputs to completion in its
// own goroutine against its own fresh Context: independent contexts may
// run concurrently, but a single Context is never shared between
// goroutines. It returns the first error encountered (cancelling the
// remaining goroutines, as errgroup.Group does) or every resulting
// Context in input order. A document that suspends rather than closing
// is reported as an error, since no more input can ever arrive for it.
func ParseAllConcurrently(ctx context.Context, inputs [][]byte, opts ...Option) ([]*Context, error) {
	results := make([]*Context, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			c := New(opts...)
			needMore, _, err := c.Parse(input, c.inner.UseHash())
			if err != nil {
				return err
			}
			if needMore {
				return fmt.Errorf("ltjson: document %d did not close", i)
			}
			results[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
