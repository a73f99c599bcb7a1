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
	"time"

	"github.com/inhies/go-bytesize"
)

const (
	VerifierStatic = "static"
	VerifierRemote = "remote"

	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// VerifierConfig configures the application side verification of api keys.
type VerifierConfig struct {
	Type   string          `koanf:"type"             validate:"required,oneof=static remote"`
	Static *StaticVerifier `koanf:"static,omitempty" validate:"required_if=Type static"`
	Remote *RemoteVerifier `koanf:"remote,omitempty" validate:"required_if=Type remote"`
	Cache  *CacheConfig    `koanf:"cache,omitempty"`
}

type StaticVerifier struct {
	Keys []APIKey `koanf:"keys" mapstructure:"keys" validate:"required,gt=0,dive"`
}

type APIKey struct {
	Key        string         `koanf:"key"        mapstructure:"key"        validate:"required"`
	Subject    string         `koanf:"subject"    mapstructure:"subject"    validate:"required"`
	Attributes map[string]any `koanf:"attributes" mapstructure:"attributes"`
}

type RemoteVerifier struct {
	URL           string        `koanf:"url"             mapstructure:"url"             validate:"required,url"`
	Header        string        `koanf:"header"          mapstructure:"header"`
	SubjectIDFrom string        `koanf:"subject_id_from" mapstructure:"subject_id_from"`
	Timeout       time.Duration `koanf:"timeout,string"  mapstructure:"timeout"`
	MaxRetries    int           `koanf:"max_retries"     mapstructure:"max_retries"     validate:"gte=0"`
}

// CacheConfig configures memoization of successful verifications. MaxEntries and
// MaxMemory apply to the memory backend only.
type CacheConfig struct {
	Type       string             `koanf:"type"             mapstructure:"type"        validate:"omitempty,oneof=memory redis"` //nolint:lll
	TTL        time.Duration      `koanf:"ttl,string"       mapstructure:"ttl"`
	MaxEntries uint64             `koanf:"max_entries"      mapstructure:"max_entries"`
	MaxMemory  *bytesize.ByteSize `koanf:"max_memory"       mapstructure:"max_memory"`
	Redis      *RedisCache        `koanf:"redis,omitempty"  mapstructure:"redis"       validate:"required_if=Type redis"`
}

type RedisCache struct {
	Address     string           `koanf:"address"      mapstructure:"address"      validate:"required"`
	DB          int              `koanf:"db"           mapstructure:"db"           validate:"gte=0"`
	Credentials *RedisCredential `koanf:"credentials"  mapstructure:"credentials"`
	ClientCache RedisClientCache `koanf:"client_cache" mapstructure:"client_cache"`
	Timeout     time.Duration    `koanf:"timeout,string" mapstructure:"timeout"`
}

type RedisCredential struct {
	Username string `koanf:"username" mapstructure:"username"`
	Password string `koanf:"password" mapstructure:"password"`
}

type RedisClientCache struct {
	Disabled bool          `koanf:"disabled"   mapstructure:"disabled"`
	TTL      time.Duration `koanf:"ttl,string" mapstructure:"ttl"`
}
