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

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/DmitriyVTitov/size"
	"github.com/ccoveille/go-safecast"
	"github.com/cespare/xxhash/v2"
	"github.com/go-co-op/gocron/v2"
	"github.com/inhies/go-bytesize"
	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog"

	"github.com/snestors/kn3d/internal/cache"
	"github.com/snestors/kn3d/internal/kn3d"
	"github.com/snestors/kn3d/internal/logging"
	"github.com/snestors/kn3d/internal/x"
	"github.com/snestors/kn3d/internal/x/errorchain"
)

const (
	defaultCacheMemorySize = 64 * bytesize.MB
	lockStripes            = 64
)

func init() { // nolint: gochecknoinits
	cache.Register("memory", cache.FactoryFunc(func(conf map[string]any, logger zerolog.Logger) (cache.Cache, error) {
		cch, err := NewCache(conf, logger)
		if err != nil {
			return nil, err
		}

		return cch, nil
	}))
}

type entry struct {
	value     any
	expiresAt time.Time
}

func (e *entry) expired(now time.Time) bool {
	return !now.Before(e.expiresAt)
}

// Cache keeps entries in process memory. Reading an entry never extends its
// lifetime. Expired entries are removed when read, on Cleanup and by a
// periodic sweep running between Start and Stop.
type Cache struct {
	c       *ttlcache.Cache[string, *entry]
	maxCost uint64

	// serialize writes of a key with the removal of its expired entry
	locks [lockStripes]sync.Mutex

	ttl      time.Duration
	interval time.Duration
	logger   zerolog.Logger

	schedMu   sync.Mutex
	scheduler gocron.Scheduler
}

func NewCache(conf map[string]any, logger zerolog.Logger) (*Cache, error) {
	cfg, err := decodeConfig(conf)
	if err != nil {
		return nil, err
	}

	maxMemory := x.IfThenElseExec(cfg.MaxMemory == nil,
		func() uint64 { return uint64(defaultCacheMemorySize) },
		func() uint64 { return uint64(*cfg.MaxMemory) },
	)

	return &Cache{
		c: ttlcache.New[string, *entry](
			ttlcache.WithCapacity[string, *entry](cfg.MaxEntries),
			ttlcache.WithMaxCost[string, *entry](maxMemory, entryCost),
		),
		maxCost:  maxMemory,
		ttl:      cfg.ttl(),
		interval: cfg.cleanupInterval(),
		logger:   logger,
	}, nil
}

func entryCost(item ttlcache.CostItem[string, *entry]) uint64 {
	return costOf(item.Key, item.Value.value)
}

func costOf(key string, value any) uint64 {
	// key, value and the bookkeeping of ttlcache and the entry (list element, map slot, item header, expiry)
	const overheadPerEntry = 224

	valueSize := max(size.Of(value), 0)

	return safecast.MustConvert[uint64](len(key) + valueSize + overheadPerEntry)
}

// Start schedules the periodic sweep. It does nothing if the sweep is disabled
// or already running.
func (c *Cache) Start(_ context.Context) error {
	if c.interval <= 0 {
		return nil
	}

	c.schedMu.Lock()
	defer c.schedMu.Unlock()

	if c.scheduler != nil {
		return nil
	}

	scheduler, err := gocron.NewScheduler(gocron.WithLogger(logging.NewSchedulerLogger(c.logger)))
	if err != nil {
		return errorchain.NewWithMessage(kn3d.ErrInternal, "failed creating cache sweep scheduler").
			CausedBy(err)
	}

	if _, err = scheduler.NewJob(
		gocron.DurationJob(c.interval),
		gocron.NewTask(c.sweep),
		gocron.WithName("cache-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		_ = scheduler.Shutdown()

		return errorchain.NewWithMessage(kn3d.ErrInternal, "failed scheduling cache sweep").
			CausedBy(err)
	}

	scheduler.Start()
	c.scheduler = scheduler

	c.logger.Debug().Dur("_interval", c.interval).Msg("Cache sweep started")

	return nil
}

// Stop cancels the periodic sweep. Stored entries are kept.
func (c *Cache) Stop(_ context.Context) error {
	c.schedMu.Lock()
	defer c.schedMu.Unlock()

	if c.scheduler == nil {
		return nil
	}

	err := c.scheduler.Shutdown()
	c.scheduler = nil

	if err != nil {
		return errorchain.NewWithMessage(kn3d.ErrInternal, "failed stopping cache sweep").
			CausedBy(err)
	}

	c.logger.Debug().Msg("Cache sweep stopped")

	return nil
}

func (c *Cache) Get(key string) (any, bool) {
	item := c.c.Get(key)
	if item == nil {
		return nil, false
	}

	if stored := item.Value(); !stored.expired(time.Now()) {
		return stored.value, true
	}

	c.removeExpired(key)

	return nil, false
}

func (c *Cache) Set(key string, value any, ttl time.Duration) {
	stored := &entry{value: value, expiresAt: time.Now().Add(x.IfThenElse(ttl > 0, ttl, c.ttl))}

	lock := c.lockFor(key)
	lock.Lock()
	defer lock.Unlock()

	if cost := costOf(key, value); c.maxCost != 0 && cost > c.maxCost {
		// storing it would evict every other entry and then the entry itself
		c.c.Delete(key)

		c.logger.Debug().Str("_key", key).Uint64("_cost", cost).
			Msg("Entry exceeds the cache memory budget and is not stored")

		return
	}

	c.c.Set(key, stored, ttlcache.NoTTL)
}

func (c *Cache) Delete(key string) {
	c.c.Delete(key)
}

func (c *Cache) Clear() {
	c.c.DeleteAll()
}

func (c *Cache) Cleanup() {
	var expired []string

	now := time.Now()

	c.c.Range(func(item *ttlcache.Item[string, *entry]) bool {
		if item.Value().expired(now) {
			expired = append(expired, item.Key())
		}

		return true
	})

	for _, key := range expired {
		c.removeExpired(key)
	}
}

// Len returns the number of stored entries, including expired ones not yet removed.
func (c *Cache) Len() int {
	return c.c.Len()
}

// removeExpired deletes the entry stored under key if it is still expired.
// A fresh entry written concurrently is kept.
func (c *Cache) removeExpired(key string) {
	lock := c.lockFor(key)
	lock.Lock()
	defer lock.Unlock()

	if item := c.c.Get(key); item != nil && item.Value().expired(time.Now()) {
		c.c.Delete(key)
	}
}

func (c *Cache) lockFor(key string) *sync.Mutex {
	return &c.locks[xxhash.Sum64String(key)%lockStripes]
}

func (c *Cache) sweep() {
	before := c.Len()

	c.Cleanup()

	c.logger.Debug().Int("_removed", before-c.Len()).Msg("Cache sweep finished")
}
