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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/dadrus/headerkey/internal/config"
	"github.com/dadrus/headerkey/internal/handler/fxlcm"
	"github.com/dadrus/headerkey/internal/handler/middleware/http/apikey"
	"github.com/dadrus/headerkey/internal/strategy"
	"github.com/dadrus/headerkey/internal/verifier"
)

var Module = fx.Options( // nolint: gochecknoglobals
	fx.Provide(newAuthenticator),
	fx.Invoke(registerHooks),
)

func newAuthenticator(conf *config.Configuration, v verifier.Verifier, logger zerolog.Logger) apikey.Authenticator {
	auth := strategy.NewFromConfig(conf.Strategy, v.Verify)
	opts := auth.Options()

	logger.Info().
		Str("_strategy", auth.Name()).
		Str("_header", opts.Header).
		Str("_realm", opts.Realm).
		Msg("Api key authentication configured")

	return auth
}

type hooksArgs struct {
	fx.In

	Lifecycle     fx.Lifecycle
	Shutdowner    fx.Shutdowner
	Config        *config.Configuration
	Registerer    prometheus.Registerer
	Gatherer      prometheus.Gatherer
	Logger        zerolog.Logger
	Authenticator apikey.Authenticator
}

func registerHooks(args hooksArgs) {
	srv := newService(serviceArgs{
		Config:        args.Config,
		Registerer:    args.Registerer,
		Gatherer:      args.Gatherer,
		Logger:        args.Logger,
		Authenticator: args.Authenticator,
	})

	lcm := &fxlcm.LifecycleManager{
		ServiceName:    "API Key",
		ServiceAddress: srv.Addr,
		Server:         srv,
		Logger:         args.Logger,
		Shutdowner:     args.Shutdowner,
	}

	args.Lifecycle.Append(fx.Hook{OnStart: lcm.Start, OnStop: lcm.Stop})
}
