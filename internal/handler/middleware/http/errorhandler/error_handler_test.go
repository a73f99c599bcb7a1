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
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/headerkey/internal/accesscontext"
	"github.com/dadrus/headerkey/internal/headerkey"
	"github.com/dadrus/headerkey/internal/x/errorchain"
)

func TestErrorHandlerHandleError(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		handler      ErrorHandler
		err          error
		accept       string
		expCode      int
		expBody      string
		expChallenge string
	}{
		"challenge error": {
			handler:      New(),
			err:          &headerkey.ChallengeError{Challenge: `Api-Key realm="Users"`, Code: http.StatusUnauthorized},
			expCode:      http.StatusUnauthorized,
			expChallenge: `Api-Key realm="Users"`,
		},
		"challenge error with empty prefix": {
			handler:      New(),
			err:          &headerkey.ChallengeError{Challenge: ` realm="Users"`, Code: http.StatusUnauthorized},
			expCode:      http.StatusUnauthorized,
			expChallenge: `realm="Users"`,
		},
		"challenge error without code": {
			handler:      New(WithAuthenticationErrorCode(http.StatusForbidden)),
			err:          &headerkey.ChallengeError{Challenge: `realm="Users"`},
			expCode:      http.StatusForbidden,
			expChallenge: `realm="Users"`,
		},
		"wrapped challenge error verbose expecting application/json": {
			handler: New(WithVerboseErrors(true)),
			err: errorchain.NewWithMessage(headerkey.ErrAuthentication, "rejected").
				CausedBy(&headerkey.ChallengeError{Challenge: `realm="Users"`, Code: http.StatusUnauthorized}),
			accept:       "application/json",
			expCode:      http.StatusUnauthorized,
			expBody:      `{"code":"authenticationError","message":"authentication error: rejected: authentication error: realm=\"Users\""}`,
			expChallenge: `realm="Users"`,
		},
		"authentication error default": {
			handler: New(),
			err:     errorchain.New(headerkey.ErrAuthentication),
			expCode: http.StatusUnauthorized,
		},
		"authentication error verbose without mime type": {
			handler: New(WithVerboseErrors(true)),
			err:     errorchain.New(headerkey.ErrAuthentication),
			expCode: http.StatusUnauthorized,
			expBody: "<p>authentication error</p>",
		},
		"communication error default": {
			handler: New(),
			err:     errorchain.New(headerkey.ErrCommunication),
			expCode: http.StatusBadGateway,
		},
		"communication error overridden": {
			handler: New(WithCommunicationErrorCode(http.StatusServiceUnavailable)),
			err:     errorchain.New(headerkey.ErrCommunication),
			expCode: http.StatusServiceUnavailable,
		},
		"communication error verbose expecting application/json": {
			handler: New(WithVerboseErrors(true)),
			err:     errorchain.New(headerkey.ErrCommunication),
			accept:  "application/json",
			expCode: http.StatusBadGateway,
			expBody: `{"code":"communicationError","message":"communication error"}`,
		},
		"communication timeout error default": {
			handler: New(),
			err:     errorchain.New(headerkey.ErrCommunicationTimeout),
			expCode: http.StatusGatewayTimeout,
		},
		"communication timeout error overridden": {
			handler: New(WithTimeoutErrorCode(http.StatusBadGateway)),
			err:     errorchain.New(headerkey.ErrCommunicationTimeout),
			expCode: http.StatusBadGateway,
		},
		"argument error default": {
			handler: New(),
			err:     errorchain.New(headerkey.ErrArgument),
			expCode: http.StatusBadRequest,
		},
		"argument error overridden": {
			handler: New(WithPreconditionErrorCode(http.StatusUnprocessableEntity)),
			err:     errorchain.New(headerkey.ErrArgument),
			expCode: http.StatusUnprocessableEntity,
		},
		"argument error verbose expecting text/plain": {
			handler: New(WithVerboseErrors(true)),
			err:     errorchain.NewWithMessage(headerkey.ErrArgument, "bad"),
			accept:  "text/plain",
			expCode: http.StatusBadRequest,
			expBody: "argument error: bad",
		},
		"configuration error is internal": {
			handler: New(),
			err:     errorchain.New(headerkey.ErrConfiguration),
			expCode: http.StatusInternalServerError,
		},
		"internal error overridden": {
			handler: New(WithInternalServerErrorCode(http.StatusServiceUnavailable)),
			err:     errorchain.New(headerkey.ErrInternal),
			expCode: http.StatusServiceUnavailable,
		},
		"internal error verbose with unsupported mime type": {
			handler: New(WithVerboseErrors(true)),
			err:     errorchain.New(headerkey.ErrInternal),
			accept:  "application/xml",
			expCode: http.StatusInternalServerError,
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			recorder := httptest.NewRecorder()
			ctx := accesscontext.New(context.Background())

			req := httptest.NewRequestWithContext(ctx, http.MethodGet, "/foo", nil)
			if len(tc.accept) != 0 {
				req.Header.Set("Accept", tc.accept)
			}

			// WHEN
			tc.handler.HandleError(recorder, req, tc.err)

			// THEN
			assert.Equal(t, tc.expCode, recorder.Code)
			assert.Equal(t, tc.expBody, recorder.Body.String())
			assert.Equal(t, tc.expChallenge, recorder.Header().Get("WWW-Authenticate"))
			require.Error(t, accesscontext.Error(ctx))
		})
	}
}
