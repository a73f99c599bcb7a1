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

package config

import (
	"os"

	"github.com/dadrus/headerkey/internal/config/parser"
	"github.com/dadrus/headerkey/internal/headerkey"
	"github.com/dadrus/headerkey/internal/x/errorchain"
)

type (
	EnvVarPrefix      string
	ConfigurationPath string
)

type Validator interface {
	ValidateStruct(s any) error
}

type Configuration struct {
	Serve   ServeConfig   `koanf:"serve"`
	Log     LoggingConfig `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
	Tracing TracingConfig `koanf:"tracing"`
	// Strategy holds the raw options of the api key strategy. These are decoded
	// permissively when the strategy is created.
	Strategy map[string]any `koanf:"strategy"`
	Verifier VerifierConfig `koanf:"verifier"`
}

func NewConfiguration(envPrefix EnvVarPrefix, configFile ConfigurationPath, validator Validator) (*Configuration, error) {
	result := defaultConfig()

	opts := []parser.Option{
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
		parser.WithDecodeHookFunc(byteSizeDecodeHookFunc),
		parser.WithConfigFile(string(configFile)),
		parser.WithEnvPrefix(string(envPrefix)),
		parser.WithDefaultConfigFilename("headerkey.yaml"),
		parser.WithConfigLookupDir("."),
		parser.WithConfigLookupDir("/etc/headerkey"),
	}

	if home, err := os.UserHomeDir(); err == nil {
		opts = append(opts, parser.WithConfigLookupDir(home+"/.config"))
	}

	if err := parser.New(opts...).Load(&result); err != nil {
		return nil, errorchain.NewWithMessage(headerkey.ErrConfiguration,
			"failed to load configuration").CausedBy(err)
	}

	if err := validator.ValidateStruct(result); err != nil {
		return nil, errorchain.NewWithMessage(headerkey.ErrConfiguration,
			"configuration is invalid").CausedBy(err)
	}

	return &result, nil
}
