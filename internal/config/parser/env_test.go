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

func TestEnvKey(t *testing.T) {
	t.Parallel()

	for key, expected := range map[string]string{
		"HEADERKEYCFG_SERVE_PORT":                           "serve.port",
		"HEADERKEYCFG_STRATEGY_PASS__REQUEST__TO__CALLBACK": "strategy.pass_request_to_callback",
		"HEADERKEYCFG_LOG_LEVEL":                            "log.level",
	} {
		t.Run(key, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, expected, envKey(key, "HEADERKEYCFG_"))
		})
	}
}

func TestToRealType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 8080, toRealType("8080"))
	assert.Equal(t, true, toRealType("true"))
	assert.Equal(t, "Api-Key", toRealType("Api-Key"))
	assert.Equal(t, []any{"read", "write"}, toRealType("[read, write]"))
}
