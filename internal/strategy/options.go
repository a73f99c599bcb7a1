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
	"slices"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/dadrus/headerkey/internal/x"
)

const (
	defaultHeader = "x-api-key"
	defaultRealm  = "Users"
)

// Options configures a Strategy. The zero value is valid and results in the defaults
// being used.
type Options struct {
	// Header is the name of the header carrying the api key. Stored lower-cased.
	Header string
	// Prefix is the literal the header value is required to start with, e.g. "Api-Key".
	Prefix string
	// Realm is reported in the challenge sent on failed authentication.
	Realm string
	// Scope lists the scopes advertised in the challenge.
	Scope []string
	// PassRequestToCallback controls whether the verification callback receives the request.
	PassRequestToCallback bool
}

func (o Options) normalize() Options {
	return Options{
		Header:                strings.ToLower(x.IfThenElse(len(o.Header) != 0, o.Header, defaultHeader)),
		Prefix:                o.Prefix,
		Realm:                 x.IfThenElse(len(o.Realm) != 0, o.Realm, defaultRealm),
		Scope:                 x.IfThenElse(len(o.Scope) != 0, slices.Clone(o.Scope), nil),
		PassRequestToCallback: o.PassRequestToCallback,
	}
}

// DecodeOptions creates Options from a raw configuration map. Decoding never fails. Entries
// of an unexpected type are ignored, so that the corresponding defaults apply.
func DecodeOptions(raw map[string]any) Options {
	var (
		opts Options
		conf struct {
			Header                any `mapstructure:"header"`
			Prefix                any `mapstructure:"prefix"`
			Realm                 any `mapstructure:"realm"`
			Scope                 any `mapstructure:"scope"`
			PassRequestToCallback any `mapstructure:"pass_request_to_callback"`
			PassReqToCallback     any `mapstructure:"passreqtocallback"`
		}
	)

	if err := mapstructure.Decode(raw, &conf); err != nil {
		return opts
	}

	opts.Header, _ = conf.Header.(string)
	opts.Prefix, _ = conf.Prefix.(string)
	opts.Realm, _ = conf.Realm.(string)
	opts.Scope = toScope(conf.Scope)
	opts.PassRequestToCallback = toBool(conf.PassRequestToCallback) || toBool(conf.PassReqToCallback)

	return opts
}

func toScope(val any) []string {
	switch scope := val.(type) {
	case string:
		return x.IfThenElse(len(scope) != 0, []string{scope}, nil)
	case []string:
		return slices.Clone(scope)
	case []any:
		var res []string

		for _, entry := range scope {
			if str, ok := entry.(string); ok {
				res = append(res, str)
			}
		}

		return res
	default:
		return nil
	}
}

func toBool(val any) bool {
	switch flag := val.(type) {
	case bool:
		return flag
	case string:
		res, _ := strconv.ParseBool(flag)

		return res
	default:
		return false
	}
}
