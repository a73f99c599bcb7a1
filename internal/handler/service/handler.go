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
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/dadrus/headerkey/internal/accesscontext"
	"github.com/dadrus/headerkey/internal/handler/middleware/http/apikey"
)

const (
	EndpointWhoAmI = "/whoami"
	EndpointHealth = "/.well-known/health"
)

type whoAmIResponse struct {
	Subject string `json:"subject,omitempty"`
	User    any    `json:"user"`
	Info    any    `json:"info,omitempty"`
}

func whoAmI(rw http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	writeJSON(rw, req, whoAmIResponse{
		Subject: accesscontext.Subject(ctx),
		User:    apikey.User(ctx),
		Info:    apikey.Info(ctx),
	})
}

func health(rw http.ResponseWriter, req *http.Request) {
	type status struct {
		Status string `json:"status"`
	}

	writeJSON(rw, req, status{Status: "ok"})
}

func writeJSON(rw http.ResponseWriter, req *http.Request, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		zerolog.Ctx(req.Context()).Error().Err(err).Msg("Failed to marshal response")
		rw.WriteHeader(http.StatusInternalServerError)

		return
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(http.StatusOK)
	_, _ = rw.Write(data)
}
