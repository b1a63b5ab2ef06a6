// Copyright 2026 The ltjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ltjson

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ltjson/jsontree/arena"
)

// memstatCollector exposes a Context's MemStat counters as prometheus.Gauge
// values under an "ltjson_" namespace. It is entirely optional: nothing
// in the core engine constructs or depends on it.
type memstatCollector struct {
	ctx   *Context
	descs [arena.NStats]*prometheus.Desc
}

// NewMemstatCollector wraps ctx's memory statistics as a prometheus.Collector
// suitable for registering with an application's existing registry.
func NewMemstatCollector(ctx *Context) prometheus.Collector {
	mc := &memstatCollector{ctx: ctx}
	for i, label := range arena.MemStatLabels {
		mc.descs[i] = prometheus.NewDesc(
			"ltjson_"+metricName(label),
			label,
			[]string{"context_id"},
			nil,
		)
	}
	return mc
}

func (mc *memstatCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range mc.descs {
		ch <- d
	}
}

func (mc *memstatCollector) Collect(ch chan<- prometheus.Metric) {
	stats := mc.ctx.MemStat()
	id := mc.ctx.ID().String()
	for i, d := range mc.descs {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, float64(stats[i]), id)
	}
}

// metricName turns a human label like "hash buckets created" into a
// Prometheus-friendly snake_case metric suffix.
func metricName(label string) string {
	out := make([]byte, 0, len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, byte(r))
		case r >= 'A' && r <= 'Z':
			out = append(out, byte(r-'A'+'a'))
		case r == ' ' || r == '-':
			out = append(out, '_')
		}
	}
	return string(out)
}
