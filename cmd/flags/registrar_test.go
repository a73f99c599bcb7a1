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

package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterGlobalFlags(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		args      []string
		expConfig string
		expPrefix string
	}{
		"defaults": {
			expPrefix: DefaultEnvironmentConfigPrefix,
		},
		"long flags": {
			args:      []string{"--" + Config, "test.yaml", "--" + EnvironmentConfigPrefix, "FOO_"},
			expConfig: "test.yaml",
			expPrefix: "FOO_",
		},
		"short config flag": {
			args:      []string{"-c", "test.yaml"},
			expConfig: "test.yaml",
			expPrefix: DefaultEnvironmentConfigPrefix,
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			cmd := &cobra.Command{}
			RegisterGlobalFlags(cmd)

			// WHEN
			err := cmd.ParseFlags(tc.args)

			// THEN
			require.NoError(t, err)

			configPath, err := cmd.Flags().GetString(Config)
			require.NoError(t, err)
			assert.Equal(t, tc.expConfig, configPath)

			prefix, err := cmd.Flags().GetString(EnvironmentConfigPrefix)
			require.NoError(t, err)
			assert.Equal(t, tc.expPrefix, prefix)
		})
	}
}
