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
	"github.com/dadrus/headerkey/internal/config"
	"github.com/dadrus/headerkey/internal/headerkey"
	"github.com/dadrus/headerkey/internal/x/errorchain"
)

// New creates the verifier selected by conf. If caching is configured, the returned
// verifier is a *CachedVerifier.
func New(conf config.VerifierConfig) (Verifier, error) {
	var verifier Verifier

	switch conf.Type {
	case config.VerifierStatic:
		if conf.Static == nil {
			return nil, errorchain.NewWithMessage(headerkey.ErrConfiguration, "static verifier requires keys")
		}

		verifier = NewStatic(conf.Static.Keys)
	case config.VerifierRemote:
		if conf.Remote == nil {
			return nil, errorchain.NewWithMessage(headerkey.ErrConfiguration, "remote verifier requires an url")
		}

		verifier = NewRemote(*conf.Remote)
	default:
		return nil, errorchain.NewWithMessagef(headerkey.ErrConfiguration,
			"unsupported verifier type '%s'", conf.Type)
	}

	if conf.Cache != nil {
		cached, err := NewCached(verifier, *conf.Cache)
		if err != nil {
			return nil, err
		}

		return cached, nil
	}

	return verifier, nil
}
