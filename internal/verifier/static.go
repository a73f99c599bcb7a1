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
	"context"
	"crypto/subtle"
	"maps"

	"github.com/dadrus/headerkey/internal/config"
	"github.com/dadrus/headerkey/internal/headerkey"
	"github.com/dadrus/headerkey/internal/strategy"
	"github.com/dadrus/headerkey/internal/x/stringx"
)

const unknownKeyMessage = "unknown api key"

type staticKey struct {
	key       []byte
	principal Principal
}

type staticVerifier struct {
	keys []staticKey
}

// NewStatic creates a verifier accepting the given keys only.
func NewStatic(keys []config.APIKey) Verifier {
	verifier := &staticVerifier{keys: make([]staticKey, len(keys))}

	for idx, key := range keys {
		verifier.keys[idx] = staticKey{
			key: []byte(key.Key),
			principal: Principal{
				ID:         key.Subject,
				Attributes: maps.Clone(key.Attributes),
			},
		}
	}

	return verifier
}

func (v *staticVerifier) Verify(_ context.Context, _ headerkey.Request, apiKey string, done strategy.DoneFunc) {
	candidate := stringx.ToBytes(apiKey)

	// every key is compared, the timing must not depend on the position of a match
	var found *Principal

	for idx := range v.keys {
		if subtle.ConstantTimeCompare(v.keys[idx].key, candidate) == 1 && found == nil {
			found = &Principal{ID: v.keys[idx].principal.ID, Attributes: maps.Clone(v.keys[idx].principal.Attributes)}
		}
	}

	if found == nil {
		done(nil, nil, strategy.Info{Message: unknownKeyMessage})

		return
	}

	done(nil, found, nil)
}
