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

package service

import (
	"fmt"
	"log"
	"net/http"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/dadrus/headerkey/internal/config"
	"github.com/dadrus/headerkey/internal/handler/middleware/http/accesslog"
	"github.com/dadrus/headerkey/internal/handler/middleware/http/apikey"
	"github.com/dadrus/headerkey/internal/handler/middleware/http/errorhandler"
	"github.com/dadrus/headerkey/internal/handler/middleware/http/recovery"
)

type serviceArgs struct {
	Config        *config.Configuration
	Registerer    prometheus.Registerer
	Gatherer      prometheus.Gatherer
	Logger        zerolog.Logger
	Authenticator apikey.Authenticator
}

func newService(args serviceArgs) *http.Server {
	cfg := args.Config.Serve
	eh := errorhandler.New(errorhandler.WithVerboseErrors(cfg.Respond.Verbose))
	opFilter := func(req *http.Request) bool { return req.URL.Path != EndpointHealth }

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+EndpointHealth, health)
	mux.Handle("GET "+EndpointWhoAmI,
		apikey.New(args.Authenticator, eh,
			apikey.WithMetricsRegisterer(args.Registerer),
			apikey.WithVerificationTimeout(cfg.Timeout.Verification),
		)(http.HandlerFunc(whoAmI)))

	if args.Config.Metrics.Enabled {
		mux.Handle("GET "+args.Config.Metrics.MetricsPath,
			promhttp.InstrumentMetricHandler(args.Registerer,
				promhttp.HandlerFor(args.Gatherer, promhttp.HandlerOpts{
					Registry: args.Registerer,
					ErrorLog: log.New(args.Logger, "", 0),
				})))
	}

	chain := alice.New(
		accesslog.New(args.Logger),
		recovery.New(eh),
		func(next http.Handler) http.Handler {
			return otelhttp.NewHandler(
				next,
				"",
				otelhttp.WithTracerProvider(otel.GetTracerProvider()),
				otelhttp.WithServerName("headerkey"),
				otelhttp.WithSpanNameFormatter(func(_ string, req *http.Request) string {
					return fmt.Sprintf("EntryPoint %s %s", req.Method, req.URL.Path)
				}),
				otelhttp.WithFilter(opFilter),
			)
		},
	)

	if cfg.CORS != nil {
		chain = chain.Append(cors.New(cors.Options{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowedMethods:   cfg.CORS.AllowedMethods,
			AllowedHeaders:   cfg.CORS.AllowedHeaders,
			AllowCredentials: cfg.CORS.AllowCredentials,
			ExposedHeaders:   cfg.CORS.ExposedHeaders,
			MaxAge:           int(cfg.CORS.MaxAge.Seconds()),
		}).Handler)
	}

	return &http.Server{
		Handler:      chain.Then(mux),
		Addr:         cfg.Address(),
		ReadTimeout:  cfg.Timeout.Read,
		WriteTimeout: cfg.Timeout.Write,
		IdleTimeout:  cfg.Timeout.Idle,
		ErrorLog:     log.New(args.Logger, "", 0),
	}
}
