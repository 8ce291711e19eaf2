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

	"github.com/snestors/kn3d/internal/cache/noop"
)

type ctxKey struct{}

// WithContext returns a copy of ctx with cch associated. If the same Cache instance
// is already in the context, ctx is returned as is.
//
// To make use of the cache in the context, use this notation:
//
//	cch := cache.Ctx(r.Context())
//	val, ok := cch.Get("some key")
func WithContext(ctx context.Context, cch Cache) context.Context {
	if known, ok := ctx.Value(ctxKey{}).(Cache); ok && known == cch {
		return ctx
	}

	return context.WithValue(ctx, ctxKey{}, cch)
}

// Ctx returns the Cache associated with ctx. If no cache is associated, a cache
// which never stores anything is returned.
func Ctx(ctx context.Context) Cache {
	if c, ok := ctx.Value(ctxKey{}).(Cache); ok {
		return c
	}

	return &noop.Cache{}
}
