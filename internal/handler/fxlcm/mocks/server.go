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
	"net"

	"github.com/stretchr/testify/mock"
	"go.uber.org/fx"
)

type ServerMock struct {
	mock.Mock
}

func NewServerMock(t interface {
	mock.TestingT
	Cleanup(fn func())
},
) *ServerMock {
	m := &ServerMock{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *ServerMock) Serve(l net.Listener) error {
	return m.Called(l).Error(0)
}

func (m *ServerMock) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type ShutdownerMock struct {
	mock.Mock
}

func (m *ShutdownerMock) Shutdown(opts ...fx.ShutdownOption) error {
	args := make([]any, len(opts))
	for i, opt := range opts {
		args[i] = opt
	}

	return m.Called(args...).Error(0)
}
