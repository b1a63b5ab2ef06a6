// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ltjson

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/ltjson/jsontree/arena"
)

// Environment variable names bound into viper for the two process-wide
// tunables.
const (
	envSlabSize  = "LTJSON_SLAB_SIZE"
	envBlockSize = "LTJSON_BLOCK_SIZE"
)

var (
	configOnce    sync.Once
	defaultConfig arena.Config
)

// loadDefaultConfig binds the two environment variables via viper and
// snapshots the result exactly once per process: later viper mutations
// (e.g. a test calling viper.Set) never retroactively change a context
// already created from this snapshot.
func loadDefaultConfig() arena.Config {
	configOnce.Do(func() {
		v := viper.New()
		v.AutomaticEnv()
		v.SetDefault(envSlabSize, arena.DefaultSlabSize)
		v.SetDefault(envBlockSize, 2048)

		cfg := arena.Config{
			SlabSize:  int32(v.GetInt(envSlabSize)),
			BlockSize: int32(v.GetInt(envBlockSize)),
		}
		defaultConfig = cfg
	})
	return defaultConfig
}

// Option customizes a new Context at creation time (the functional-options
// idiom; none of these mutate an already-live Context).
type Option func(*options)

type options struct {
	cfg     arena.Config
	useHash bool
	logger  *logrus.Entry
}

// WithConfig overrides the process-wide slab/block size snapshot for one
// Context, without touching viper or any other context.
func WithConfig(cfg arena.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithNameHash toggles name interning for the new Context (default: on).
func WithNameHash(use bool) Option {
	return func(o *options) { o.useHash = use }
}

// WithLogger attaches a caller-supplied *logrus.Entry to the new Context
// in place of the package default (logrus.StandardLogger()).
func WithLogger(entry *logrus.Entry) Option {
	return func(o *options) { o.logger = entry }
}

func newOptions() *options {
	return &options{cfg: loadDefaultConfig(), useHash: true}
}
