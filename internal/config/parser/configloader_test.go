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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/headerkey/internal/headerkey"
)

type testConfig struct {
	Name     string         `koanf:"name"`
	Timeout  time.Duration  `koanf:"timeout,string"`
	Tags     []string       `koanf:"tags"`
	Nested   nestedConfig   `koanf:"nested"`
	Strategy map[string]any `koanf:"strategy"`
}

type nestedConfig struct {
	Port    int  `koanf:"port"`
	Enabled bool `koanf:"enabled"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	return file
}

func TestConfigLoaderLoad(t *testing.T) {
	for uc, tc := range map[string]struct {
		config func(t *testing.T) []Option
		env    map[string]string
		assert func(t *testing.T, err error, conf *testConfig)
	}{
		"defaults only": {
			config: func(t *testing.T) []Option {
				t.Helper()

				return nil
			},
			assert: func(t *testing.T, err error, conf *testConfig) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "default", conf.Name)
				assert.Equal(t, 4456, conf.Nested.Port)
			},
		},
		"yaml file with env substitution": {
			config: func(t *testing.T) []Option {
				t.Helper()

				return []Option{WithConfigFile(writeConfig(t, `
name: ${TEST_CONFIG_NAME}
timeout: 10s
tags: [a, b]
nested:
  enabled: true
strategy:
  header: Authorization
  prefix: Api-Key
`))}
			},
			env: map[string]string{"TEST_CONFIG_NAME": "from-env"},
			assert: func(t *testing.T, err error, conf *testConfig) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "from-env", conf.Name)
				assert.Equal(t, 10*time.Second, conf.Timeout)
				assert.Equal(t, []string{"a", "b"}, conf.Tags)
				assert.Equal(t, 4456, conf.Nested.Port)
				assert.True(t, conf.Nested.Enabled)
				assert.Equal(t, map[string]any{"header": "Authorization", "prefix": "Api-Key"}, conf.Strategy)
			},
		},
		"env overrides yaml": {
			config: func(t *testing.T) []Option {
				t.Helper()

				return []Option{
					WithConfigFile(writeConfig(t, "nested:\n  port: 8080\n")),
					WithEnvPrefix("TESTCFG_"),
				}
			},
			env: map[string]string{
				"TESTCFG_NESTED_PORT":    "9090",
				"TESTCFG_STRATEGY_REALM": "Admins",
			},
			assert: func(t *testing.T, err error, conf *testConfig) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, 9090, conf.Nested.Port)
				assert.Equal(t, "Admins", conf.Strategy["realm"])
			},
		},
		"config file lookup": {
			config: func(t *testing.T) []Option {
				t.Helper()

				file := writeConfig(t, "name: looked-up\n")

				return []Option{WithConfigLookupDir(filepath.Dir(file))}
			},
			assert: func(t *testing.T, err error, conf *testConfig) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "looked-up", conf.Name)
			},
		},
		"not existing config file": {
			config: func(t *testing.T) []Option {
				t.Helper()

				return []Option{WithConfigFile("/does/not/exist.yaml")}
			},
			assert: func(t *testing.T, err error, _ *testConfig) {
				t.Helper()

				require.Error(t, err)
			},
		},
		"config validator rejects the file": {
			config: func(t *testing.T) []Option {
				t.Helper()

				return []Option{
					WithConfigFile(writeConfig(t, "name: foo\n")),
					WithConfigValidator(func(_ string) error { return headerkey.ErrConfiguration }),
				}
			},
			assert: func(t *testing.T, err error, _ *testConfig) {
				t.Helper()

				require.ErrorIs(t, err, headerkey.ErrConfiguration)
			},
		},
		"malformed yaml": {
			config: func(t *testing.T) []Option {
				t.Helper()

				return []Option{WithConfigFile(writeConfig(t, "name: [foo\n"))}
			},
			assert: func(t *testing.T, err error, _ *testConfig) {
				t.Helper()

				require.ErrorIs(t, err, headerkey.ErrConfiguration)
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			for key, val := range tc.env {
				t.Setenv(key, val)
			}

			conf := testConfig{Name: "default", Nested: nestedConfig{Port: 4456}}
			loader := New(append([]Option{WithEnvPrefix("TESTCFG_")}, tc.config(t)...)...)

			// WHEN
			err := loader.Load(&conf)

			// THEN
			tc.assert(t, err, &conf)
		})
	}
}
