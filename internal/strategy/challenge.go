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

import "strings"

const (
	ErrorCodeInvalidPrefix = "invalid_prefix"
	ErrorCodeInvalidKey    = "invalid_key"
)

// challenge renders the WWW-Authenticate style challenge. The parts are always
// emitted in the order realm, scope, error, error_description. Empty code and
// description are omitted.
func challenge(opts *Options, code, description string) string {
	var sb strings.Builder

	sb.WriteString(opts.Prefix)
	sb.WriteString(` realm="`)
	sb.WriteString(opts.Realm)
	sb.WriteString(`"`)

	if len(opts.Scope) != 0 {
		sb.WriteString(`, scope="`)
		sb.WriteString(strings.Join(opts.Scope, " "))
		sb.WriteString(`"`)
	}

	if len(code) != 0 {
		sb.WriteString(`, error="`)
		sb.WriteString(code)
		sb.WriteString(`"`)
	}

	if len(description) != 0 {
		sb.WriteString(`, error_description="`)
		sb.WriteString(description)
		sb.WriteString(`"`)
	}

	return sb.String()
}
