// Copyright 2026 The kn3d Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "kn3d"

type instrumentedCache struct {
	Cache

	requests   *prometheus.CounterVec
	operations *prometheus.CounterVec
}

// NewInstrumentedCache decorates cch with prometheus metrics registered at reg.
func NewInstrumentedCache(cch Cache, reg prometheus.Registerer) (Cache, error) {
	ic := &instrumentedCache{
		Cache: cch,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "cache",
				Name:      "requests_total",
				Help:      "Number of cache lookups partitioned by result.",
			},
			[]string{"result"},
		),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "cache",
				Name:      "operations_total",
				Help:      "Number of cache mutations partitioned by operation.",
			},
			[]string{"operation"},
		),
	}

	entries := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "cache",
			Name:      "entries",
			Help:      "Number of entries currently held by the cache, expired ones included until swept.",
		},
		func() float64 { return float64(cch.Len()) },
	)

	for _, collector := range []prometheus.Collector{ic.requests, ic.operations, entries} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}

	return ic, nil
}

func (c *instrumentedCache) Get(key string) (any, bool) {
	val, ok := c.Cache.Get(key)
	if ok {
		c.requests.WithLabelValues("hit").Inc()
	} else {
		c.requests.WithLabelValues("miss").Inc()
	}

	return val, ok
}

func (c *instrumentedCache) Set(key string, value any, ttl time.Duration) {
	c.Cache.Set(key, value, ttl)
	c.operations.WithLabelValues("set").Inc()
}

func (c *instrumentedCache) Delete(key string) {
	c.Cache.Delete(key)
	c.operations.WithLabelValues("delete").Inc()
}

func (c *instrumentedCache) Clear() {
	c.Cache.Clear()
	c.operations.WithLabelValues("clear").Inc()
}

func (c *instrumentedCache) Cleanup() {
	c.Cache.Cleanup()
	c.operations.WithLabelValues("cleanup").Inc()
}
