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

package redis

import (
	"context"
	"time"

	"github.com/redis/rueidis"
	"github.com/redis/rueidis/rueidisotel"

	"github.com/dadrus/headerkey/internal/cache"
	"github.com/dadrus/headerkey/internal/config"
	"github.com/dadrus/headerkey/internal/headerkey"
	"github.com/dadrus/headerkey/internal/x"
	"github.com/dadrus/headerkey/internal/x/errorchain"
	"github.com/dadrus/headerkey/internal/x/stringx"
)

const defaultClientCacheTTL = 5 * time.Minute

type Cache struct {
	c   rueidis.Client
	ttl time.Duration
}

// New connects to the configured Redis server. The connection is established
// eagerly, so an unreachable server is reported here.
func New(conf config.RedisCache) (*Cache, error) {
	opts := rueidis.ClientOption{
		ClientName:       "headerkey",
		InitAddress:      []string{conf.Address},
		SelectDB:         conf.DB,
		DisableCache:     conf.ClientCache.Disabled,
		ConnWriteTimeout: conf.Timeout,
	}

	if conf.Credentials != nil {
		opts.Username = conf.Credentials.Username
		opts.Password = conf.Credentials.Password
	}

	client, err := rueidisotel.NewClient(opts)
	if err != nil {
		return nil, errorchain.NewWithMessage(headerkey.ErrInternal,
			"failed creating redis client").CausedBy(err)
	}

	return &Cache{
		c:   client,
		ttl: x.IfThenElse(conf.ClientCache.TTL > 0, conf.ClientCache.TTL, defaultClientCacheTTL),
	}, nil
}

func (c *Cache) Start(_ context.Context) error {
	// not used for Redis.
	return nil
}

func (c *Cache) Stop(_ context.Context) error {
	c.c.Close()

	return nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.c.DoCache(ctx, c.c.B().Get().Key(key).Cache(), c.ttl).ToString()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, cache.ErrNoCacheEntry
		}

		return nil, err
	}

	return stringx.ToBytes(val), nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.c.Do(ctx, c.c.B().Set().Key(key).Value(stringx.ToString(value)).Px(ttl).Build()).Error()
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.c.Do(ctx, c.c.B().Del().Key(key).Build()).Error()
}
