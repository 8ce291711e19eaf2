// Copyright 2026 The kn3d Authors
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
	"time"

	"github.com/stretchr/testify/mock"
)

type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Start(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *CacheMock) Stop(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *CacheMock) Get(key string) (any, bool) {
	args := m.Called(key)

	return args.Get(0), args.Bool(1)
}

func (m *CacheMock) Set(key string, value any, ttl time.Duration) { m.Called(key, value, ttl) }

func (m *CacheMock) Delete(key string) { m.Called(key) }

func (m *CacheMock) Clear() { m.Called() }

func (m *CacheMock) Cleanup() { m.Called() }

func (m *CacheMock) Len() int { return m.Called().Int(0) }
