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
	"go.uber.org/fx"

	"github.com/dadrus/headerkey/internal/config"
)

// Module provides the configured Verifier.
var Module = fx.Options( // nolint: gochecknoglobals
	fx.Provide(newVerifier),
)

func newVerifier(conf *config.Configuration, lc fx.Lifecycle) (Verifier, error) {
	verifier, err := New(conf.Verifier)
	if err != nil {
		return nil, err
	}

	if cached, ok := verifier.(*CachedVerifier); ok {
		lc.Append(fx.Hook{OnStart: cached.Start, OnStop: cached.Stop})
	}

	return verifier, nil
}
