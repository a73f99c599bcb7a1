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

package otel

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"

	"github.com/dadrus/headerkey/internal/config"
	"github.com/dadrus/headerkey/internal/x/opentelemetry/exporters"
)

type lifecycleMock struct{ mock.Mock }

func (m *lifecycleMock) Append(hook fx.Hook) { m.Called(hook) }

func TestInitTraceProvider(t *testing.T) {
	for uc, tc := range map[string]struct {
		conf       config.TracingConfig
		setupMocks func(t *testing.T, lc *lifecycleMock)
		assert     func(t *testing.T, err error, propagator propagation.TextMapPropagator, logged string)
	}{
		"disabled tracing": {
			conf: config.TracingConfig{Enabled: false},
			assert: func(t *testing.T, err error, _ propagation.TextMapPropagator, logged string) {
				t.Helper()

				require.NoError(t, err)
				assert.Contains(t, logged, "tracing disabled")
			},
		},
		"unsupported exporter": {
			conf: config.TracingConfig{Enabled: true},
			setupMocks: func(t *testing.T, _ *lifecycleMock) {
				t.Helper()

				t.Setenv("OTEL_TRACES_EXPORTER", "foo")
			},
			assert: func(t *testing.T, err error, _ propagation.TextMapPropagator, _ string) {
				t.Helper()

				require.ErrorIs(t, err, exporters.ErrUnsupportedTracesExporterType)
			},
		},
		"successful initialization with simple span processor": {
			conf: config.TracingConfig{Enabled: true, SpanProcessorType: config.SpanProcessorSimple},
			setupMocks: func(t *testing.T, lc *lifecycleMock) {
				t.Helper()

				t.Setenv("OTEL_TRACES_EXPORTER", "none")

				lc.On("Append", mock.MatchedBy(func(hook fx.Hook) bool {
					return hook.OnStop(context.Background()) == nil
				})).Once()
			},
			assert: func(t *testing.T, err error, propagator propagation.TextMapPropagator, logged string) {
				t.Helper()

				require.NoError(t, err)
				assert.Contains(t, logged, "tracing initialized")
				assert.IsType(t, &sdktrace.TracerProvider{}, otel.GetTracerProvider())

				require.Len(t, propagator, 2)
				assert.Contains(t, propagator, propagation.TraceContext{})
				assert.Contains(t, propagator, propagation.Baggage{})
			},
		},
		"successful initialization with batch span processor": {
			conf: config.TracingConfig{Enabled: true, SpanProcessorType: config.SpanProcessorBatch},
			setupMocks: func(t *testing.T, lc *lifecycleMock) {
				t.Helper()

				t.Setenv("OTEL_TRACES_EXPORTER", "none")

				lc.On("Append", mock.MatchedBy(func(hook fx.Hook) bool {
					return hook.OnStop(context.Background()) == nil
				})).Once()
			},
			assert: func(t *testing.T, err error, _ propagation.TextMapPropagator, logged string) {
				t.Helper()

				require.NoError(t, err)
				assert.Contains(t, logged, "tracing initialized")
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			lc := &lifecycleMock{}
			buf := &bytes.Buffer{}
			logger := zerolog.New(buf)

			if tc.setupMocks != nil {
				tc.setupMocks(t, lc)
			}

			// WHEN
			err := initTraceProvider(&config.Configuration{Tracing: tc.conf}, resource.Default(), logger, lc)

			// THEN
			tc.assert(t, err, otel.GetTextMapPropagator(), buf.String())
			lc.AssertExpectations(t)
		})
	}
}
