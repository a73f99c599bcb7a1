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
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// prefixMatcher matches the configured prefix literally and case-insensitively at
// the start of a header value.
type prefixMatcher struct {
	pattern *regexp2.Regexp
}

func newPrefixMatcher(prefix string) prefixMatcher {
	return prefixMatcher{
		pattern: regexp2.MustCompile("^"+regexp2.Escape(prefix), regexp2.IgnoreCase),
	}
}

// strip returns the part of value following the prefix. ok is false if value does
// not start with the prefix.
func (m prefixMatcher) strip(value string) (string, bool) {
	match, err := m.pattern.FindStringMatch(value)
	if err != nil || match == nil {
		return "", false
	}

	return value[byteOffset(value, match.Index+match.Length):], true
}

// byteOffset converts a rune offset as reported by regexp2 to a byte offset in
// value. Each invalid byte counts as a single rune, as in a []rune conversion.
func byteOffset(value string, runes int) int {
	offset := 0

	for range runes {
		_, width := utf8.DecodeRuneInString(value[offset:])
		offset += width
	}

	return offset
}
