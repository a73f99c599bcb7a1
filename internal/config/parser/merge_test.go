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

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		dest     any
		src      any
		expected any
	}{
		"nil destination": {
			src:      map[string]any{"foo": "bar"},
			expected: map[string]any{"foo": "bar"},
		},
		"primitive values are overridden": {
			dest:     "foo",
			src:      "bar",
			expected: "bar",
		},
		"maps are merged recursively": {
			dest: map[string]any{
				"serve": map[string]any{"port": 8080, "host": "127.0.0.1"},
				"log":   map[string]any{"level": "info"},
			},
			src: map[string]any{
				"serve":    map[string]any{"port": 9090},
				"strategy": map[string]any{"prefix": "Api-Key"},
			},
			expected: map[string]any{
				"serve":    map[string]any{"port": 9090, "host": "127.0.0.1"},
				"log":      map[string]any{"level": "info"},
				"strategy": map[string]any{"prefix": "Api-Key"},
			},
		},
		"slices are replaced": {
			dest:     map[string]any{"scope": []any{"read"}},
			src:      map[string]any{"scope": []any{"write", "admin"}},
			expected: map[string]any{"scope": []any{"write", "admin"}},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			res := merge(tc.dest, tc.src)

			// THEN
			assert.Equal(t, tc.expected, res)
		})
	}
}
