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

import (
	"context"
	"encoding/json"
	"math"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/tidwall/gjson"

	"github.com/dadrus/headerkey/internal/headerkey"
)

// DoneFunc completes a verification. err is set if the verification could not be
// done. A nil or falsy user means the api key has been rejected; info may then
// explain why.
type DoneFunc func(err error, user any, info any)

// VerifyFunc verifies an api key and reports the result via done, which may be called
// from any goroutine. ctx is the context of the request being authenticated and is
// always set. req is only set if the strategy is configured to pass the request to
// the callback.
type VerifyFunc func(ctx context.Context, req headerkey.Request, apiKey string, done DoneFunc)

// WithoutRequest adapts a callback interested neither in the request nor in its context.
func WithoutRequest(verify func(apiKey string, done DoneFunc)) VerifyFunc {
	return func(_ context.Context, _ headerkey.Request, apiKey string, done DoneFunc) {
		verify(apiKey, done)
	}
}

// Info is a convenience type for the info argument of DoneFunc.
type Info struct {
	Message string `json:"message" mapstructure:"message"`
}

func infoMessage(info any) string {
	switch val := info.(type) {
	case nil:
		return ""
	case string:
		return val
	case Info:
		return val.Message
	case *Info:
		if val == nil {
			return ""
		}

		return val.Message
	case json.RawMessage:
		return gjson.GetBytes(val, "message").String()
	case []byte:
		return gjson.GetBytes(val, "message").String()
	}

	var msg Info

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &msg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return ""
	}

	if err = dec.Decode(info); err != nil {
		return ""
	}

	return msg.Message
}

// isAbsent reports whether user stands for a rejected key: nil, a nil reference,
// false, the empty string, numeric zero or NaN.
func isAbsent(user any) bool {
	if user == nil {
		return true
	}

	val := reflect.ValueOf(user)

	// nolint: exhaustive
	switch val.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return val.IsNil()
	case reflect.Bool:
		return !val.Bool()
	case reflect.String:
		return val.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return val.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return val.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return val.Float() == 0 || math.IsNaN(val.Float())
	default:
		return false
	}
}
