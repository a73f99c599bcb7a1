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
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/headerkey/internal/cache"
	"github.com/dadrus/headerkey/internal/config"
	"github.com/dadrus/headerkey/internal/headerkey"
)

func TestNew(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		config func(t *testing.T) config.RedisCache
		assert func(t *testing.T, err error, cch *Cache)
	}{
		"not existing address provided": {
			config: func(t *testing.T) config.RedisCache {
				t.Helper()

				return config.RedisCache{Address: "foo.local:12345"}
			},
			assert: func(t *testing.T, err error, _ *Cache) {
				t.Helper()

				require.ErrorIs(t, err, headerkey.ErrInternal)
				require.ErrorContains(t, err, "failed creating redis client")
			},
		},
		"wrong credentials": {
			config: func(t *testing.T) config.RedisCache {
				t.Helper()

				db := miniredis.RunT(t)
				db.RequireUserAuth("alice", "secret")

				return config.RedisCache{
					Address:     db.Addr(),
					Credentials: &config.RedisCredential{Username: "alice", Password: "wrong"},
					ClientCache: config.RedisClientCache{Disabled: true},
				}
			},
			assert: func(t *testing.T, err error, _ *Cache) {
				t.Helper()

				require.ErrorIs(t, err, headerkey.ErrInternal)
			},
		},
		"successful cache creation with credentials": {
			config: func(t *testing.T) config.RedisCache {
				t.Helper()

				db := miniredis.RunT(t)
				db.RequireUserAuth("alice", "secret")

				return config.RedisCache{
					Address:     db.Addr(),
					Credentials: &config.RedisCredential{Username: "alice", Password: "secret"},
					ClientCache: config.RedisClientCache{Disabled: true},
				}
			},
			assert: func(t *testing.T, err error, cch *Cache) {
				t.Helper()

				require.NoError(t, err)
				require.NotNil(t, cch)
				assert.Equal(t, defaultClientCacheTTL, cch.ttl)
			},
		},
		"successful cache creation with client cache ttl": {
			config: func(t *testing.T) config.RedisCache {
				t.Helper()

				return config.RedisCache{
					Address:     miniredis.RunT(t).Addr(),
					ClientCache: config.RedisClientCache{Disabled: true, TTL: time.Minute},
				}
			},
			assert: func(t *testing.T, err error, cch *Cache) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, time.Minute, cch.ttl)
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			cch, err := New(tc.config(t))
			if err == nil {
				defer cch.Stop(context.TODO()) // nolint: errcheck
			}

			// THEN
			tc.assert(t, err, cch)
		})
	}
}

func TestCacheUsage(t *testing.T) {
	t.Parallel()

	db := miniredis.RunT(t)
	cch, err := New(config.RedisCache{
		Address:     db.Addr(),
		ClientCache: config.RedisClientCache{Disabled: true},
	})
	require.NoError(t, err)

	require.NoError(t, cch.Start(context.TODO()))
	defer cch.Stop(context.TODO()) // nolint: errcheck

	for uc, tc := range map[string]struct {
		key            string
		configureCache func(t *testing.T, cch *Cache)
		assert         func(t *testing.T, data []byte, err error)
	}{
		"can retrieve not expired value": {
			key: "foo",
			configureCache: func(t *testing.T, cch *Cache) {
				t.Helper()

				require.NoError(t, cch.Set(context.TODO(), "foo", []byte("bar"), 10*time.Minute))
			},
			assert: func(t *testing.T, data []byte, err error) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, []byte("bar"), data)
				assert.Equal(t, 10*time.Minute, db.TTL("foo"))
			},
		},
		"cannot retrieve expired value": {
			key: "bar",
			configureCache: func(t *testing.T, cch *Cache) {
				t.Helper()

				require.NoError(t, cch.Set(context.TODO(), "bar", []byte("baz"), 1*time.Second))
				db.FastForward(2 * time.Second)
			},
			assert: func(t *testing.T, _ []byte, err error) {
				t.Helper()

				require.ErrorIs(t, err, cache.ErrNoCacheEntry)
			},
		},
		"cannot retrieve deleted value": {
			key: "baz",
			configureCache: func(t *testing.T, cch *Cache) {
				t.Helper()

				require.NoError(t, cch.Set(context.TODO(), "baz", []byte("bar"), 10*time.Minute))
				require.NoError(t, cch.Delete(context.TODO(), "baz"))
			},
			assert: func(t *testing.T, _ []byte, err error) {
				t.Helper()

				require.ErrorIs(t, err, cache.ErrNoCacheEntry)
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			tc.configureCache(t, cch)

			// WHEN
			data, err := cch.Get(context.TODO(), tc.key)

			// THEN
			tc.assert(t, data, err)
		})
	}
}
