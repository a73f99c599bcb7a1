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

// Outcome is implemented by the host invoking the strategy. Exactly one of its
// methods is called per Authenticate call.
type Outcome interface {
	// Success reports an authenticated user together with the info given by the
	// verification callback.
	Success(user any, info any)
	// Fail reports a failed authentication. challenge is meant to be sent in the
	// WWW-Authenticate header.
	Fail(challenge string, statusCode int)
	// Error reports that the verification could not be done at all.
	Error(err error)
}

// OutcomeFuncs adapts plain functions to the Outcome interface. Nil functions are
// ignored.
type OutcomeFuncs struct {
	OnSuccess func(user any, info any)
	OnFail    func(challenge string, statusCode int)
	OnError   func(err error)
}

func (o OutcomeFuncs) Success(user any, info any) {
	if o.OnSuccess != nil {
		o.OnSuccess(user, info)
	}
}

func (o OutcomeFuncs) Fail(challenge string, statusCode int) {
	if o.OnFail != nil {
		o.OnFail(challenge, statusCode)
	}
}

func (o OutcomeFuncs) Error(err error) {
	if o.OnError != nil {
		o.OnError(err)
	}
}
