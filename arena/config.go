// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arena

// Config snapshots the two process-wide tunables into a single
// context at creation time. The engine package (one level up) owns
// loading process-wide defaults (from viper-backed configuration); this
// package only knows how to apply an already-resolved Config.
type Config struct {
	SlabSize  int32
	BlockSize int32
}

// DefaultConfig returns the built-in slab and block sizes.
func DefaultConfig() Config {
	return Config{SlabSize: DefaultSlabSize, BlockSize: defaultBlockSize}
}

func (c Config) normalized() Config {
	if c.SlabSize < MinSlabSize {
		c.SlabSize = DefaultSlabSize
	}
	if c.BlockSize < minBlockSize {
		c.BlockSize = defaultBlockSize
	}
	return c
}
