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
	"github.com/dadrus/headerkey/internal/headerkey"
)

const (
	outcomeSuccess  = "success"
	outcomeFailure  = "failure"
	outcomeError    = "error"
	outcomeCanceled = "canceled"
)

type result struct {
	kind string
	user any
	info any
	err  error
}

// channelOutcome delivers the strategy outcome to the goroutine serving the request.
// It is buffered, so a late completion after the request has been given up does not
// block the completing goroutine.
type channelOutcome chan result

func newChannelOutcome() channelOutcome { return make(channelOutcome, 1) }

func (o channelOutcome) Success(user any, info any) {
	o.deliver(result{kind: outcomeSuccess, user: user, info: info})
}

func (o channelOutcome) Fail(challenge string, statusCode int) {
	o.deliver(result{
		kind: outcomeFailure,
		err:  &headerkey.ChallengeError{Challenge: challenge, Code: statusCode},
	})
}

func (o channelOutcome) Error(err error) {
	o.deliver(result{kind: outcomeError, err: err})
}

func (o channelOutcome) deliver(res result) {
	select {
	case o <- res:
	default:
	}
}
