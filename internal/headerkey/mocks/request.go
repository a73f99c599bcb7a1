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

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type RequestMock struct {
	mock.Mock
}

func NewRequestMock(t interface {
	mock.TestingT
	Cleanup(fn func())
},
) *RequestMock {
	m := &RequestMock{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *RequestMock) Header(name string) string {
	return m.Called(name).String(0)
}

func (m *RequestMock) Context() context.Context {
	args := m.Called()

	if i := args.Get(0); i != nil {
		// nolint: forcetypeassert
		return i.(context.Context)
	}

	return nil
}
