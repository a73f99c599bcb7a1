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
	"net/http"
)

// Request is what the verification callback receives when the strategy is configured
// to pass the request on.
type Request struct {
	req *http.Request
}

func (r *Request) Header(name string) string { return r.req.Header.Get(name) }

func (r *Request) Context() context.Context { return r.req.Context() }

func (r *Request) HTTPRequest() *http.Request { return r.req }
