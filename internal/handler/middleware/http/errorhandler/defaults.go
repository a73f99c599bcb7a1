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
	"net/http"

	"github.com/dadrus/headerkey/internal/headerkey"
)

func defaultOptions() *opts {
	defaults := &opts{}
	defaults.onAuthenticationError = errorWriter(defaults, http.StatusUnauthorized)
	defaults.onPreconditionError = errorWriter(defaults, http.StatusBadRequest)
	defaults.onCommunicationError = errorWriter(defaults, http.StatusBadGateway)
	defaults.onTimeoutError = errorWriter(defaults, http.StatusGatewayTimeout)
	defaults.onInternalError = errorWriter(defaults, http.StatusInternalServerError)

	return defaults
}

// categories maps the sentinel errors to the error codes used in verbose responses.
// nolint: gochecknoglobals
var categories = []error{
	headerkey.ErrAuthentication,
	headerkey.ErrArgument,
	headerkey.ErrCommunicationTimeout,
	headerkey.ErrCommunication,
	headerkey.ErrConfiguration,
}
