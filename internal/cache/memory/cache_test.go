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
	"testing"
	"time"

	"github.com/inhies/go-bytesize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/headerkey/internal/cache"
	"github.com/dadrus/headerkey/internal/config"
)

func TestCacheUsage(t *testing.T) {
	t.Parallel()

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
			},
		},
		"cannot retrieve expired value": {
			key: "bar",
			configureCache: func(t *testing.T, cch *Cache) {
				t.Helper()

				require.NoError(t, cch.Set(context.TODO(), "bar", []byte("baz"), 1*time.Millisecond))
				time.Sleep(200 * time.Millisecond)
			},
			assert: func(t *testing.T, data []byte, err error) {
				t.Helper()

				require.ErrorIs(t, err, cache.ErrNoCacheEntry)
				assert.Nil(t, data)
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
		"cannot retrieve unknown value": {
			key:            "unknown",
			configureCache: func(t *testing.T, _ *Cache) { t.Helper() },
			assert: func(t *testing.T, _ []byte, err error) {
				t.Helper()

				require.ErrorIs(t, err, cache.ErrNoCacheEntry)
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			cch := New(config.CacheConfig{})

			require.NoError(t, cch.Start(context.TODO()))
			defer cch.Stop(context.TODO()) // nolint: errcheck

			tc.configureCache(t, cch)

			// WHEN
			data, err := cch.Get(context.TODO(), tc.key)

			// THEN
			tc.assert(t, data, err)
		})
	}
}

func TestCacheHonorsMaxMemory(t *testing.T) {
	t.Parallel()

	// GIVEN
	maxMemory := bytesize.ByteSize(2*(ttlCacheOverheadPerEntry+8) + 10)
	cch := New(config.CacheConfig{MaxMemory: &maxMemory})

	// WHEN
	require.NoError(t, cch.Set(context.TODO(), "k1", []byte("v1v1v1"), time.Minute))
	require.NoError(t, cch.Set(context.TODO(), "k2", []byte("v2v2v2"), time.Minute))
	require.NoError(t, cch.Set(context.TODO(), "k3", []byte("v3v3v3"), time.Minute))

	// THEN
	_, err := cch.Get(context.TODO(), "k1")
	require.ErrorIs(t, err, cache.ErrNoCacheEntry)

	data, err := cch.Get(context.TODO(), "k3")
	require.NoError(t, err)
	assert.Equal(t, []byte("v3v3v3"), data)
}
