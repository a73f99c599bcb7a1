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

func TestChallenge(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		opts        Options
		code        string
		description string
		expected    string
	}{
		"realm only": {
			opts:     Options{Prefix: "Api-Key", Realm: "Users"},
			expected: `Api-Key realm="Users"`,
		},
		"empty prefix": {
			opts:     Options{Realm: "Users"},
			expected: ` realm="Users"`,
		},
		"with scope": {
			opts:     Options{Prefix: "Api-Key", Realm: "Users", Scope: []string{"read", "write"}},
			expected: `Api-Key realm="Users", scope="read write"`,
		},
		"with error code only": {
			opts:     Options{Prefix: "Api-Key", Realm: "Users"},
			code:     ErrorCodeInvalidKey,
			expected: `Api-Key realm="Users", error="invalid_key"`,
		},
		"with everything": {
			opts:        Options{Prefix: "Api-Key", Realm: "Admins", Scope: []string{"admin"}},
			code:        ErrorCodeInvalidKey,
			description: "revoked",
			expected:    `Api-Key realm="Admins", scope="admin", error="invalid_key", error_description="revoked"`,
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// WHEN
			res := challenge(&tc.opts, tc.code, tc.description)

			// THEN
			assert.Equal(t, tc.expected, res)
		})
	}
}
