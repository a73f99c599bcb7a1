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
	"fmt"
	"html"
	"net/http"

	"github.com/elnormous/contenttype"
	"github.com/goccy/go-json"
	"github.com/iancoleman/strcase"
	"github.com/rs/zerolog"

	"github.com/dadrus/headerkey/internal/headerkey"
	"github.com/dadrus/headerkey/internal/x/stringx"
)

type errorWriterFunc func(rw http.ResponseWriter, req *http.Request, err error)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// nolint: gochecknoglobals
var supportedMediaTypes = []contenttype.MediaType{
	contenttype.NewMediaType("text/html"),
	contenttype.NewMediaType("application/json"),
	contenttype.NewMediaType("text/plain"),
}

func errorCode(err error) string {
	for _, category := range categories {
		if errors.Is(err, category) {
			return strcase.ToLowerCamel(category.Error())
		}
	}

	return strcase.ToLowerCamel(headerkey.ErrInternal.Error())
}

func format(req *http.Request, err error) (contenttype.MediaType, []byte, error) {
	mediaType, _, negErr := contenttype.GetAcceptableMediaType(req, supportedMediaTypes)
	if negErr != nil {
		return contenttype.MediaType{}, nil, negErr
	}

	switch mediaType.Subtype {
	case "html":
		return mediaType, stringx.ToBytes(fmt.Sprintf("<p>%s</p>", html.EscapeString(err.Error()))), nil
	case "json":
		res, jsonErr := json.Marshal(errorBody{Code: errorCode(err), Message: err.Error()})

		return mediaType, res, jsonErr
	default:
		return supportedMediaTypes[2], stringx.ToBytes(err.Error()), nil
	}
}

func errorWriter(o *opts, code int) errorWriterFunc {
	return func(rw http.ResponseWriter, req *http.Request, err error) {
		writeError(rw, req, err, code, o.verboseErrors)
	}
}

func writeError(rw http.ResponseWriter, req *http.Request, err error, code int, verbose bool) {
	var (
		mt   contenttype.MediaType
		body []byte
	)

	if verbose {
		var fmtErr error

		mt, body, fmtErr = format(req, err)
		if fmtErr != nil {
			zerolog.Ctx(req.Context()).Warn().Err(fmtErr).
				Msg("Response format negotiation failed. No body is sent")
		}
	}

	if len(body) == 0 {
		rw.WriteHeader(code)

		return
	}

	rw.Header().Set("Content-Type", mt.String())
	rw.WriteHeader(code)

	if _, err = rw.Write(body); err != nil {
		zerolog.Ctx(req.Context()).Warn().Err(err).Msg("Failed to write error response")
	}
}
