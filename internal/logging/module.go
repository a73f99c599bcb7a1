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

package logging

import (
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.uber.org/fx"
)

// Module makes the logger supplied on app bootstrap the context default, so
// zerolog.Ctx falls back to it for contexts without an attached logger.
// Diagnostics of the otel SDK are routed to the same logger.
var Module = fx.Options( // nolint: gochecknoglobals
	fx.Invoke(func(logger zerolog.Logger) {
		zerolog.DefaultContextLogger = &logger

		otel.SetLogger(zerologr.New(&logger))
	}),
)
