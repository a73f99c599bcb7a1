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

package strategy

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/dadrus/headerkey/internal/headerkey"
	"github.com/dadrus/headerkey/internal/x/errorchain"
)

const Name = "headerapikey"

// Strategy authenticates requests by an api key taken from a request header. It
// holds no per-request state and can be used concurrently.
type Strategy struct {
	opts   Options
	verify VerifyFunc
	prefix prefixMatcher
}

// New creates a Strategy. Missing options fall back to their defaults. If verify is
// nil, every request reaching the verification step results in an error outcome.
func New(opts Options, verify VerifyFunc) *Strategy {
	conf := opts.normalize()

	if verify == nil {
		verify = func(_ context.Context, _ headerkey.Request, _ string, done DoneFunc) {
			done(errorchain.NewWithMessage(headerkey.ErrConfiguration, "no verification callback configured"),
				nil, nil)
		}
	}

	return &Strategy{
		opts:   conf,
		verify: verify,
		prefix: newPrefixMatcher(conf.Prefix),
	}
}

// NewFromConfig creates a Strategy from a raw configuration map, see DecodeOptions.
func NewFromConfig(raw map[string]any, verify VerifyFunc) *Strategy {
	return New(DecodeOptions(raw), verify)
}

func (s *Strategy) Name() string { return Name }

// Options returns a copy of the effective options.
func (s *Strategy) Options() Options {
	return s.opts.normalize()
}

// Authenticate extracts the api key from req and hands it over to the verification
// callback. The result is reported via out. Authenticate does not wait for the
// callback to complete.
func (s *Strategy) Authenticate(req headerkey.Request, out Outcome) {
	logger := loggerFor(req)
	logger.Debug().
		Str("_strategy", Name).
		Str("_header", s.opts.Header).
		Msg("Authenticating request")

	value := req.Header(s.opts.Header)
	if len(value) == 0 {
		logger.Debug().Str("_strategy", Name).Msg("No api key present")

		out.Fail(challenge(&s.opts, "", ""), http.StatusUnauthorized)

		return
	}

	apiKey, ok := s.prefix.strip(value)
	if !ok {
		logger.Debug().Str("_strategy", Name).Msg("Api key present, but without required prefix")

		out.Fail(challenge(&s.opts, ErrorCodeInvalidPrefix,
			fmt.Sprintf(`Invalid API key prefix, %s header should start with "%s"`, s.opts.Header, s.opts.Prefix)),
			http.StatusUnauthorized)

		return
	}

	var verifyReq headerkey.Request
	if s.opts.PassRequestToCallback {
		verifyReq = req
	}

	s.verify(contextOf(req), verifyReq, strings.TrimSpace(apiKey), s.completion(req, out))
}

func (s *Strategy) completion(req headerkey.Request, out Outcome) DoneFunc {
	var completed atomic.Bool

	return func(err error, user any, info any) {
		if !completed.CompareAndSwap(false, true) {
			logger := loggerFor(req)
			logger.Warn().
				Str("_strategy", Name).
				Msg("Verification callback completed more than once. Ignoring the repeated completion")

			return
		}

		switch {
		case err != nil:
			out.Error(err)
		case isAbsent(user):
			out.Fail(challenge(&s.opts, ErrorCodeInvalidKey, infoMessage(info)), http.StatusUnauthorized)
		default:
			out.Success(user, info)
		}
	}
}

func contextOf(req headerkey.Request) context.Context {
	if ctx := req.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

func loggerFor(req headerkey.Request) *zerolog.Logger {
	return zerolog.Ctx(contextOf(req))
}
