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

package apikey

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dadrus/headerkey/internal/accesscontext"
	"github.com/dadrus/headerkey/internal/handler/middleware/http/errorhandler"
	"github.com/dadrus/headerkey/internal/headerkey"
	"github.com/dadrus/headerkey/internal/strategy"
	"github.com/dadrus/headerkey/internal/x/errorchain"
)

// Authenticator is satisfied by *strategy.Strategy.
type Authenticator interface {
	Name() string
	Authenticate(req headerkey.Request, out strategy.Outcome)
}

// New protects the wrapped handler with auth. Requests are only passed on if auth
// reports a success.
func New(auth Authenticator, eh errorhandler.ErrorHandler, options ...Option) func(http.Handler) http.Handler {
	conf := &opts{registerer: prometheus.DefaultRegisterer}

	for _, opt := range options {
		opt(conf)
	}

	outcomes := outcomeCounter(conf.registerer)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			ctx := req.Context()

			if conf.timeout > 0 {
				var cancel context.CancelFunc

				ctx, cancel = context.WithTimeout(ctx, conf.timeout)
				defer cancel()

				req = req.WithContext(ctx)
			}

			out := newChannelOutcome()
			auth.Authenticate(&Request{req: req}, out)

			var res result

			select {
			case res = <-out:
			case <-ctx.Done():
				res = result{
					kind: outcomeCanceled,
					err: errorchain.NewWithMessage(
						errorKind(ctx.Err()), "api key verification did not complete").CausedBy(ctx.Err()),
				}
			}

			outcomes.WithLabelValues(res.kind).Inc()
			trace.SpanFromContext(ctx).AddEvent("api key authentication",
				trace.WithAttributes(
					attribute.String("headerkey.strategy", auth.Name()),
					attribute.String("headerkey.outcome", res.kind),
				))

			if res.kind != outcomeSuccess {
				zerolog.Ctx(ctx).Debug().Err(res.err).Str("_outcome", res.kind).Msg("Authentication failed")

				eh.HandleError(rw, req, res.err)

				return
			}

			accesscontext.SetSubject(ctx, subjectOf(res.user))
			next.ServeHTTP(rw, req.WithContext(withUser(ctx, res.user, res.info)))
		})
	}
}

func errorKind(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return headerkey.ErrCommunicationTimeout
	}

	return headerkey.ErrArgument
}

func subjectOf(user any) string {
	if stringer, ok := user.(fmt.Stringer); ok {
		return stringer.String()
	}

	if str, ok := user.(string); ok {
		return str
	}

	return ""
}

func outcomeCounter(registerer prometheus.Registerer) *prometheus.CounterVec {
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "headerkey",
			Name:      "authentications_total",
			Help:      "Number of api key authentications by outcome.",
		},
		[]string{"outcome"},
	)

	if err := registerer.Register(counter); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}

		panic(err)
	}

	return counter
}
