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

package apikey

import "context"

type (
	userKey struct{}
	infoKey struct{}
)

// User returns the user the verification callback has accepted, or nil.
func User(ctx context.Context) any { return ctx.Value(userKey{}) }

// Info returns the info the verification callback has passed together with the user.
func Info(ctx context.Context) any { return ctx.Value(infoKey{}) }

func withUser(ctx context.Context, user, info any) context.Context {
	return context.WithValue(context.WithValue(ctx, userKey{}, user), infoKey{}, info)
}
