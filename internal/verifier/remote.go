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

package verifier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"github.com/ybbus/httpretry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dadrus/headerkey/internal/config"
	"github.com/dadrus/headerkey/internal/headerkey"
	"github.com/dadrus/headerkey/internal/strategy"
	"github.com/dadrus/headerkey/internal/x"
	"github.com/dadrus/headerkey/internal/x/errorchain"
	"github.com/dadrus/headerkey/internal/x/httpx"
)

const (
	defaultRemoteHeader     = "X-Api-Key"
	defaultSubjectIDFrom    = "sub"
	defaultRemoteTimeout    = 5 * time.Second
	defaultRetryMaxDelay    = 100 * time.Millisecond
	defaultRetryGiveUpAfter = 2 * time.Second
	maxRemoteResponseSize   = 1 << 20
)

type remoteVerifier struct {
	client        *http.Client
	url           string
	header        string
	subjectIDFrom string
	timeout       time.Duration
}

// NewRemote creates a verifier asking an http endpoint about the api key. The
// endpoint is expected to answer with 200 and a json object for known keys, and
// with 401, 403 or 404 for unknown ones.
func NewRemote(conf config.RemoteVerifier) Verifier {
	client := &http.Client{
		Transport: otelhttp.NewTransport(
			httpx.NewTraceRoundTripper(http.DefaultTransport),
			otelhttp.WithSpanNameFormatter(func(_ string, req *http.Request) string {
				return fmt.Sprintf("%s %s %s @api key verifier", req.Proto, req.Method, req.URL.Path)
			})),
	}

	if conf.MaxRetries > 0 {
		client = httpretry.NewCustomClient(
			client,
			httpretry.WithMaxRetryCount(conf.MaxRetries),
			httpretry.WithBackoffPolicy(
				httpretry.ExponentialBackoff(defaultRetryMaxDelay, defaultRetryGiveUpAfter, 0)))
	}

	return &remoteVerifier{
		client:        client,
		url:           conf.URL,
		header:        x.IfThenElse(len(conf.Header) != 0, conf.Header, defaultRemoteHeader),
		subjectIDFrom: x.IfThenElse(len(conf.SubjectIDFrom) != 0, conf.SubjectIDFrom, defaultSubjectIDFrom),
		timeout:       x.IfThenElse(conf.Timeout > 0, conf.Timeout, defaultRemoteTimeout),
	}
}

func (v *remoteVerifier) Verify(ctx context.Context, _ headerkey.Request, apiKey string, done strategy.DoneFunc) {
	go func() {
		user, info, err := v.verify(ctx, apiKey)

		done(err, user, info)
	}()
}

func (v *remoteVerifier) verify(ctx context.Context, apiKey string) (*Principal, any, error) {
	logger := zerolog.Ctx(ctx)

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.url, nil)
	if err != nil {
		return nil, nil, errorchain.NewWithMessage(headerkey.ErrInternal,
			"failed to create a request to the api key verification endpoint").CausedBy(err)
	}

	req.Header.Set(v.header, apiKey)
	req.Header.Set("Accept", "application/json")

	logger.Debug().Str("_endpoint", v.url).Msg("Verifying api key")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, nil, errorchain.NewWithMessage(
			x.IfThenElse(errors.Is(ctx.Err(), context.DeadlineExceeded),
				headerkey.ErrCommunicationTimeout, headerkey.ErrCommunication),
			"request to the api key verification endpoint failed").CausedBy(err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteResponseSize))
	if err != nil {
		return nil, nil, errorchain.NewWithMessage(headerkey.ErrCommunication,
			"failed to read the response of the api key verification endpoint").CausedBy(err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return v.principalFrom(body)
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		message := gjson.GetBytes(body, "message").String()

		return nil, strategy.Info{Message: x.IfThenElse(len(message) != 0, message, unknownKeyMessage)}, nil
	default:
		return nil, nil, errorchain.NewWithMessagef(headerkey.ErrCommunication,
			"unexpected response code %d from the api key verification endpoint", resp.StatusCode)
	}
}

func (v *remoteVerifier) principalFrom(body []byte) (*Principal, any, error) {
	if !gjson.ValidBytes(body) {
		return nil, nil, errorchain.NewWithMessage(headerkey.ErrCommunication,
			"api key verification endpoint responded with malformed json")
	}

	subjectID := gjson.GetBytes(body, v.subjectIDFrom)
	if !subjectID.Exists() || len(subjectID.String()) == 0 {
		return nil, nil, errorchain.NewWithMessagef(headerkey.ErrCommunication,
			"api key verification endpoint response does not contain a subject id at '%s'", v.subjectIDFrom)
	}

	attributes, _ := gjson.ParseBytes(body).Value().(map[string]any)

	return &Principal{ID: subjectID.String(), Attributes: attributes}, nil, nil
}
