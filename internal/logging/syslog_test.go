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

package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestToSyslogLevel(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		level    zerolog.Level
		expected SyslogLevel
	}{
		{zerolog.TraceLevel, Debugging},
		{zerolog.DebugLevel, Debugging},
		{zerolog.InfoLevel, Informational},
		{zerolog.WarnLevel, Warning},
		{zerolog.ErrorLevel, Error},
		{zerolog.FatalLevel, Critical},
		{zerolog.PanicLevel, Alert},
		{zerolog.NoLevel, Emergency},
	} {
		t.Run(tc.level.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, toSyslogLevel(tc.level))
		})
	}
}
