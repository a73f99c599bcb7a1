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

package verifier

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/dadrus/headerkey/internal/cache"
	"github.com/dadrus/headerkey/internal/cache/memory"
	"github.com/dadrus/headerkey/internal/cache/redis"
	"github.com/dadrus/headerkey/internal/config"
	"github.com/dadrus/headerkey/internal/headerkey"
	"github.com/dadrus/headerkey/internal/strategy"
	"github.com/dadrus/headerkey/internal/x"
	"github.com/dadrus/headerkey/internal/x/errorchain"
)

const defaultCacheTTL = 5 * time.Minute

// CachedVerifier memoizes successful verifications of the wrapped verifier.
// Rejections and errors are never cached.
type CachedVerifier struct {
	next Verifier
	ttl  time.Duration
	c    cache.Cache
}

func NewCached(next Verifier, conf config.CacheConfig) (*CachedVerifier, error) {
	backend, err := newCache(conf)
	if err != nil {
		return nil, err
	}

	return &CachedVerifier{
		next: next,
		ttl:  x.IfThenElse(conf.TTL > 0, conf.TTL, defaultCacheTTL),
		c:    backend,
	}, nil
}

func newCache(conf config.CacheConfig) (cache.Cache, error) {
	switch conf.Type {
	case "", config.CacheMemory:
		return memory.New(conf), nil
	case config.CacheRedis:
		if conf.Redis == nil {
			return nil, errorchain.NewWithMessage(headerkey.ErrConfiguration, "redis cache requires an address")
		}

		return redis.New(*conf.Redis)
	default:
		return nil, errorchain.NewWithMessagef(headerkey.ErrConfiguration,
			"unsupported cache type '%s'", conf.Type)
	}
}

func (v *CachedVerifier) Start(ctx context.Context) error { return v.c.Start(ctx) }

func (v *CachedVerifier) Stop(ctx context.Context) error { return v.c.Stop(ctx) }

func (v *CachedVerifier) Verify(
	ctx context.Context, req headerkey.Request, apiKey string, done strategy.DoneFunc,
) {
	logger := zerolog.Ctx(ctx)

	key := cacheKey(apiKey)

	data, err := v.c.Get(ctx, key)
	if err == nil {
		var principal Principal

		if err = json.Unmarshal(data, &principal); err == nil {
			logger.Debug().Msg("Reusing api key verification result from cache")

			done(nil, &principal, nil)

			return
		}

		if err = v.c.Delete(ctx, key); err != nil {
			logger.Warn().Err(err).Msg("Failed to evict malformed api key verification result from cache")
		}
	} else if !errors.Is(err, cache.ErrNoCacheEntry) {
		logger.Warn().Err(err).Msg("Failed to look up api key verification result in cache")
	}

	v.next.Verify(ctx, req, apiKey, func(err error, user any, info any) {
		if principal, ok := user.(*Principal); ok && err == nil && principal != nil {
			if data, mErr := json.Marshal(principal); mErr != nil {
				logger.Warn().Err(mErr).Msg("Failed to encode api key verification result")
			} else if sErr := v.c.Set(ctx, key, data, v.ttl); sErr != nil {
				logger.Warn().Err(sErr).Msg("Failed to cache api key verification result")
			}
		}

		done(err, user, info)
	})
}

func cacheKey(apiKey string) string {
	sum := sha256.Sum256([]byte(apiKey))

	return hex.EncodeToString(sum[:])
}
