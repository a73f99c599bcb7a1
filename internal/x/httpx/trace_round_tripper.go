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

package httpx

import (
	"net/http"
	"net/http/httputil"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dadrus/headerkey/internal/x/stringx"
)

type traceRoundTripper struct {
	next http.RoundTripper
}

// NewTraceRoundTripper dumps outbound requests and inbound responses if the logger
// in the request context is at trace level.
func NewTraceRoundTripper(rt http.RoundTripper) http.RoundTripper {
	return &traceRoundTripper{next: rt}
}

func (t *traceRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	logger := zerolog.Ctx(req.Context())
	if logger.GetLevel() != zerolog.TraceLevel {
		return t.next.RoundTrip(req)
	}

	if dump, err := httputil.DumpRequestOut(req, dumpBody(req.ContentLength, req.Header)); err != nil {
		logger.Trace().Err(err).Msg("Failed dumping outbound request")
	} else {
		logger.Trace().Msg("Outbound Request: \n" + stringx.ToString(dump))
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		logger.Trace().Err(err).Msg("Failed sending request")

		return nil, err
	}

	if dump, err := httputil.DumpResponse(resp, dumpBody(resp.ContentLength, resp.Header)); err != nil {
		logger.Trace().Err(err).Msg("Failed dumping inbound response")
	} else {
		logger.Trace().Msg("Inbound Response: \n" + stringx.ToString(dump))
	}

	return resp, nil
}

func dumpBody(length int64, header http.Header) bool {
	contentType := header.Get("Content-Type")

	return length != 0 && !strings.Contains(contentType, "stream")
}
