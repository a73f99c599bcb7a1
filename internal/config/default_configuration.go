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

package config

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultReadTimeout  = time.Second * 5
	defaultWriteTimeout = time.Second * 10
	defaultIdleTimeout  = time.Second * 120
	// below the write timeout, so the error response can still be sent
	defaultVerificationTimeout = time.Second * 8

	defaultPort = 4460
)

func defaultConfig() Configuration {
	return Configuration{
		Serve: ServeConfig{
			Port: defaultPort,
			Timeout: Timeout{
				Read:         defaultReadTimeout,
				Write:        defaultWriteTimeout,
				Idle:         defaultIdleTimeout,
				Verification: defaultVerificationTimeout,
			},
		},
		Log: LoggingConfig{
			Level:  zerolog.ErrorLevel,
			Format: LogTextFormat,
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			MetricsPath: "/metrics",
		},
		Tracing: TracingConfig{
			SpanProcessorType: SpanProcessorBatch,
		},
	}
}
