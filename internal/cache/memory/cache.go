// Copyright 2026 The headerkey Authors
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
	"time"

	"github.com/ccoveille/go-safecast"
	"github.com/inhies/go-bytesize"
	"github.com/jellydator/ttlcache/v3"

	"github.com/dadrus/headerkey/internal/cache"
	"github.com/dadrus/headerkey/internal/config"
	"github.com/dadrus/headerkey/internal/x"
)

const (
	defaultCacheMemorySize = 64 * bytesize.MB

	// per entry overhead of the ttlcache structures, excluding key and value
	ttlCacheOverheadPerEntry = 184
)

type Cache struct {
	c *ttlcache.Cache[string, []byte]
}

func New(conf config.CacheConfig) *Cache {
	maxMemory := x.IfThenElseExec(conf.MaxMemory == nil,
		func() uint64 { return uint64(defaultCacheMemorySize) },
		func() uint64 { return uint64(*conf.MaxMemory) },
	)

	return &Cache{
		c: ttlcache.New[string, []byte](
			ttlcache.WithDisableTouchOnHit[string, []byte](),
			ttlcache.WithCapacity[string, []byte](conf.MaxEntries),
			ttlcache.WithMaxCost[string, []byte](maxMemory,
				func(item ttlcache.CostItem[string, []byte]) uint64 {
					return safecast.MustConvert[uint64](len(item.Key) + len(item.Value) + ttlCacheOverheadPerEntry)
				},
			),
		),
	}
}

// Start runs the expiration loop. It returns immediately.
func (c *Cache) Start(_ context.Context) error {
	go c.c.Start()

	return nil
}

func (c *Cache) Stop(_ context.Context) error {
	c.c.Stop()

	return nil
}

func (c *Cache) Get(_ context.Context, key string) ([]byte, error) {
	item := c.c.Get(key)
	if item == nil || item.IsExpired() {
		return nil, cache.ErrNoCacheEntry
	}

	return item.Value(), nil
}

func (c *Cache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.c.Set(key, value, ttl)

	return nil
}

func (c *Cache) Delete(_ context.Context, key string) error {
	c.c.Delete(key)

	return nil
}
