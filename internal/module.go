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

package internal

import (
	"go.uber.org/fx"

	"github.com/dadrus/headerkey/internal/config"
	"github.com/dadrus/headerkey/internal/handler/service"
	"github.com/dadrus/headerkey/internal/logging"
	"github.com/dadrus/headerkey/internal/otel"
	"github.com/dadrus/headerkey/internal/prometheus"
	"github.com/dadrus/headerkey/internal/verifier"
)

var Module = fx.Options( //nolint:gochecknoglobals
	config.Module,
	logging.Module,
	otel.Module,
	prometheus.Module,
	verifier.Module,
	service.Module,
)
