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

package errorhandler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dadrus/headerkey/internal/accesscontext"
	"github.com/dadrus/headerkey/internal/headerkey"
)

// ErrorHandler translates errors into http responses.
type ErrorHandler interface {
	HandleError(rw http.ResponseWriter, req *http.Request, err error)
}

func New(opts ...Option) ErrorHandler {
	options := defaultOptions()

	for _, opt := range opts {
		opt(options)
	}

	return &errorHandler{opts: options}
}

type errorHandler struct {
	*opts
}

func (h *errorHandler) HandleError(rw http.ResponseWriter, req *http.Request, err error) {
	ctx := req.Context()

	var challengeErr *headerkey.ChallengeError

	switch {
	case errors.As(err, &challengeErr):
		rw.Header().Set("WWW-Authenticate", strings.TrimSpace(challengeErr.Challenge))

		if challengeErr.Code != 0 {
			writeError(rw, req, err, challengeErr.Code, h.verboseErrors)
		} else {
			h.onAuthenticationError(rw, req, err)
		}
	case errors.Is(err, headerkey.ErrAuthentication):
		h.onAuthenticationError(rw, req, err)
	case errors.Is(err, headerkey.ErrCommunicationTimeout):
		h.onTimeoutError(rw, req, err)
	case errors.Is(err, headerkey.ErrCommunication):
		h.onCommunicationError(rw, req, err)
	case errors.Is(err, headerkey.ErrArgument):
		h.onPreconditionError(rw, req, err)
	default:
		zerolog.Ctx(ctx).Error().Err(err).Msg("Internal error occurred")

		h.onInternalError(rw, req, err)
	}

	accesscontext.SetError(ctx, err)
}
