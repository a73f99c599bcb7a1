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

package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixMatcherStrip(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		prefix   string
		value    string
		expected string
		matches  bool
	}{
		"empty prefix matches everything": {
			value:    " foo ",
			expected: " foo ",
			matches:  true,
		},
		"exact prefix": {
			prefix:   "Api-Key",
			value:    "Api-Key foo",
			expected: " foo",
			matches:  true,
		},
		"prefix in different case": {
			prefix:   "Api-Key",
			value:    "API-KEY foo",
			expected: " foo",
			matches:  true,
		},
		"different prefix": {
			prefix: "Api-Key",
			value:  "WrongPrefix foo",
		},
		"prefix not at the start": {
			prefix: "Api-Key",
			value:  "foo Api-Key bar",
		},
		"regexp meta characters are matched literally": {
			prefix: "Key.*",
			value:  "KeyXYZ foo",
		},
		"prefix with meta characters": {
			prefix:   "Key.*",
			value:    "key.* foo",
			expected: " foo",
			matches:  true,
		},
		"invalid utf-8 in the matched region": {
			prefix:   "Key\uFFFD",
			value:    "key\xff foo",
			expected: " foo",
			matches:  true,
		},
		"invalid utf-8 after the prefix": {
			prefix:   "Key",
			value:    "KEY\xff\xfe foo",
			expected: "\xff\xfe foo",
			matches:  true,
		},
		"multibyte value": {
			prefix:   "Schlüssel",
			value:    "SCHLÜSSEL bär",
			expected: " bär",
			matches:  true,
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			res, ok := newPrefixMatcher(tc.prefix).strip(tc.value)

			// THEN
			assert.Equal(t, tc.matches, ok)
			assert.Equal(t, tc.expected, res)
		})
	}
}
