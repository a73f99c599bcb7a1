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

package exporters

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	instana "github.com/instana/go-otel-exporter"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/dadrus/headerkey/internal/x/errorchain"
)

const (
	tracesExporterEnvKey     = "OTEL_TRACES_EXPORTER"
	otlpProtocolEnvKey       = "OTEL_EXPORTER_OTLP_PROTOCOL"
	otlpTracesProtocolEnvKey = "OTEL_EXPORTER_OTLP_TRACES_PROTOCOL"
)

var (
	ErrFailedCreatingInstanaExporter = errors.New("failed creating instana exporter")
	ErrUnsupportedTracesExporterType = errors.New("unsupported traces exporter type")
	ErrUnsupportedOTLPProtocol       = errors.New("unsupported OTLP protocol")
	ErrFailedCreatingTracesExporter  = errors.New("failed creating traces exporter")
)

var spanExporters = &registry[trace.SpanExporter]{ //nolint:gochecknoglobals
	names: map[string]FactoryFunc[trace.SpanExporter]{
		"otlp": func(ctx context.Context) (trace.SpanExporter, error) {
			protocol, ok := os.LookupEnv(otlpTracesProtocolEnvKey)
			if !ok {
				protocol = envOr(otlpProtocolEnvKey, "http/protobuf")
			}

			switch protocol {
			case "grpc":
				return otlptracegrpc.New(ctx)
			case "http/protobuf":
				return otlptracehttp.New(ctx)
			default:
				return nil, errorchain.NewWithMessage(ErrUnsupportedOTLPProtocol, protocol)
			}
		},
		"zipkin": func(_ context.Context) (trace.SpanExporter, error) {
			return zipkin.New("")
		},
		"instana": func(_ context.Context) (exp trace.SpanExporter, err error) { //nolint:nonamedreturns
			// the instana exporter panics if its environment is incomplete
			defer func() {
				if r := recover(); r != nil {
					err = errorchain.NewWithMessage(ErrFailedCreatingInstanaExporter, fmt.Sprintf("%s", r))
				}
			}()

			exp = instana.New()

			return exp, err
		},
	},
}

// RegisterSpanExporter makes an additional exporter available under the given
// name.
func RegisterSpanExporter(name string, factory FactoryFunc[trace.SpanExporter]) error {
	return spanExporters.store(name, factory)
}

// NewSpanExporters creates the exporters listed in OTEL_TRACES_EXPORTER. Without
// that variable an otlp exporter is created. "none" anywhere in the list results
// in a single exporter dropping all spans.
func NewSpanExporters(ctx context.Context) ([]trace.SpanExporter, error) {
	names, ok := os.LookupEnv(tracesExporterEnvKey)
	if !ok {
		return createSpanExporters(ctx)
	}

	return createSpanExporters(ctx, strings.Split(names, ",")...)
}

func createSpanExporters(ctx context.Context, names ...string) ([]trace.SpanExporter, error) {
	if len(names) == 0 {
		names = []string{"otlp"}
	}

	exps := make([]trace.SpanExporter, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "none" {
			return []trace.SpanExporter{noopExporter{}}, nil
		}

		create, ok := spanExporters.load(name)
		if !ok {
			return nil, errorchain.NewWithMessage(ErrUnsupportedTracesExporterType, name)
		}

		exporter, err := create(ctx)
		if err != nil {
			return nil, errorchain.NewWithMessage(ErrFailedCreatingTracesExporter, name).CausedBy(err)
		}

		exps = append(exps, exporter)
	}

	return exps, nil
}

func envOr(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && len(val) != 0 {
		return val
	}

	return defaultValue
}
