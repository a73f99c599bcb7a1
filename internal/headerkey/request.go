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

package headerkey

import "context"

// Request is the view on an incoming request the authentication strategy works with.
type Request interface {
	// Header returns the value of the header with the given name. The lookup is
	// case-insensitive. An empty string is returned if the header is not present.
	Header(name string) string
	Context() context.Context
}
