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

package cache

import (
	"context"
	"time"
)

// Cache is a process-local key/value store with a time to live per entry.
// Entries are never visible after their ttl elapsed, regardless of whether
// they were physically removed yet.
type Cache interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error

	// Get returns the value stored for key if present and not expired.
	Get(key string) (any, bool)
	// Set stores value under key, replacing any previous entry. A ttl <= 0
	// means the default ttl of the implementation.
	Set(key string, value any, ttl time.Duration)
	Delete(key string)
	Clear()
	// Cleanup removes all expired entries.
	Cleanup()
	Len() int
}

// GetAs returns the value stored for key if it is present, not expired and of type T.
func GetAs[T any](cch Cache, key string) (T, bool) {
	var zero T

	val, ok := cch.Get(key)
	if !ok {
		return zero, false
	}

	typed, ok := val.(T)
	if !ok {
		return zero, false
	}

	return typed, true
}

// GetOrLoad returns the cached value for key, or calls load and caches its result
// for ttl. Errors returned by load are passed through and never cached.
func GetOrLoad[T any](cch Cache, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	if val, ok := GetAs[T](cch, key); ok {
		return val, nil
	}

	val, err := load()
	if err != nil {
		var zero T

		return zero, err
	}

	cch.Set(key, val, ttl)

	return val, nil
}
