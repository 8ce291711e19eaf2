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

package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snestors/kn3d/internal/cache"
	"github.com/snestors/kn3d/internal/cache/memory"
	"github.com/snestors/kn3d/internal/cache/noop"
	"github.com/snestors/kn3d/internal/kn3d"
)

type countingRepository struct {
	products []Product
	err      error
	calls    atomic.Int32
}

func (r *countingRepository) Products(_ context.Context) ([]Product, error) {
	r.calls.Add(1)

	if r.err != nil {
		return nil, r.err
	}

	return StaticRepository(r.products).Products(context.TODO())
}

// blockingRepository holds every load until release is closed. The returned
// price is the version current when the load started.
type blockingRepository struct {
	version atomic.Int32
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func newBlockingRepository() *blockingRepository {
	repo := &blockingRepository{started: make(chan struct{}), release: make(chan struct{})}
	repo.version.Store(1)

	return repo
}

func (r *blockingRepository) Products(ctx context.Context) ([]Product, error) {
	r.calls.Add(1)
	version := r.version.Load()

	r.once.Do(func() { close(r.started) })
	<-r.release

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return []Product{{SKU: "PLA-1", Name: "PLA Negro", Slug: "pla-negro", Price: float64(version)}}, nil
}

func testProducts() []Product {
	return []Product{
		{SKU: "PLA-1", Name: "PLA Negro", Slug: "pla-negro", Category: "filamentos", Price: 59.9, Featured: true},
		{SKU: "PLA-2", Name: "PLA Blanco", Slug: "pla-blanco", Category: "filamentos", Price: 59.9},
		{SKU: "RES-1", Name: "Resina UV", Slug: "resina-uv", Category: "resinas", Price: 129, Featured: true},
	}
}

func newMemoryCache(t *testing.T) cache.Cache {
	t.Helper()

	cch, err := memory.NewCache(nil, log.Logger)
	require.NoError(t, err)

	return cch
}

func TestServiceList(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc      string
		filter  Filter
		expSKUs []string
	}{
		{uc: "no filter", expSKUs: []string{"PLA-1", "PLA-2", "RES-1"}},
		{uc: "by category", filter: Filter{Category: "filamentos"}, expSKUs: []string{"PLA-1", "PLA-2"}},
		{uc: "by category ignoring case", filter: Filter{Category: "Resinas"}, expSKUs: []string{"RES-1"}},
		{uc: "featured only", filter: Filter{FeaturedOnly: true}, expSKUs: []string{"PLA-1", "RES-1"}},
		{
			uc:      "featured in category",
			filter:  Filter{Category: "filamentos", FeaturedOnly: true},
			expSKUs: []string{"PLA-1"},
		},
		{uc: "unknown category", filter: Filter{Category: "boquillas"}, expSKUs: []string{}},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			// GIVEN
			svc := NewService(StaticRepository(testProducts()), newMemoryCache(t), time.Minute, log.Logger)

			// WHEN
			products, err := svc.List(context.TODO(), tc.filter)

			// THEN
			require.NoError(t, err)

			skus := make([]string, 0, len(products))
			for _, product := range products {
				skus = append(skus, product.SKU)
			}

			assert.Equal(t, tc.expSKUs, skus)
		})
	}
}

func TestServiceBySlug(t *testing.T) {
	t.Parallel()

	// GIVEN
	svc := NewService(StaticRepository(testProducts()), newMemoryCache(t), time.Minute, log.Logger)

	// WHEN
	product, err := svc.BySlug(context.TODO(), "resina-uv")

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "RES-1", product.SKU)

	// WHEN
	_, err = svc.BySlug(context.TODO(), "unknown")

	// THEN
	require.Error(t, err)
	require.ErrorIs(t, err, kn3d.ErrNotFound)
	assert.Contains(t, err.Error(), `"unknown"`)
}

func TestServiceMemoizesRepositoryReads(t *testing.T) {
	t.Parallel()

	// GIVEN
	repo := &countingRepository{products: testProducts()}
	svc := NewService(repo, newMemoryCache(t), time.Minute, log.Logger)

	// WHEN
	for range 3 {
		_, err := svc.List(context.TODO(), Filter{})
		require.NoError(t, err)

		_, err = svc.BySlug(context.TODO(), "pla-negro")
		require.NoError(t, err)
	}

	// THEN
	assert.Equal(t, int32(1), repo.calls.Load())
}

func TestServiceInvalidate(t *testing.T) {
	t.Parallel()

	// GIVEN
	repo := &countingRepository{products: testProducts()}
	svc := NewService(repo, newMemoryCache(t), time.Minute, log.Logger)

	_, err := svc.List(context.TODO(), Filter{})
	require.NoError(t, err)

	// WHEN
	svc.Invalidate()

	_, err = svc.List(context.TODO(), Filter{})

	// THEN
	require.NoError(t, err)
	assert.Equal(t, int32(2), repo.calls.Load())
}

func TestServiceReloadsAfterTTL(t *testing.T) {
	t.Parallel()

	// GIVEN
	repo := &countingRepository{products: testProducts()}
	svc := NewService(repo, newMemoryCache(t), 20*time.Millisecond, log.Logger)

	_, err := svc.List(context.TODO(), Filter{})
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	// WHEN
	_, err = svc.List(context.TODO(), Filter{})

	// THEN
	require.NoError(t, err)
	assert.Equal(t, int32(2), repo.calls.Load())
}

func TestServiceDoesNotCacheRepositoryErrors(t *testing.T) {
	t.Parallel()

	// GIVEN
	repo := &countingRepository{err: errors.New("test error")}
	svc := NewService(repo, newMemoryCache(t), time.Minute, log.Logger)

	// WHEN
	_, err1 := svc.List(context.TODO(), Filter{})
	_, err2 := svc.BySlug(context.TODO(), "pla-negro")

	// THEN
	require.Error(t, err1)
	require.Error(t, err2)
	require.NotErrorIs(t, err2, kn3d.ErrNotFound)
	assert.Equal(t, int32(2), repo.calls.Load())
}

func TestServiceResultsDoNotDependOnCache(t *testing.T) {
	t.Parallel()

	// GIVEN
	memRepo := &countingRepository{products: testProducts()}
	noopRepo := &countingRepository{products: testProducts()}

	withMemory := NewService(memRepo, newMemoryCache(t), time.Minute, log.Logger)
	withNoop := NewService(noopRepo, &noop.Cache{}, time.Minute, log.Logger)

	for _, filter := range []Filter{{}, {Category: "filamentos"}, {FeaturedOnly: true}} {
		for range 2 {
			// WHEN
			fromMemory, err := withMemory.List(context.TODO(), filter)
			require.NoError(t, err)

			fromNoop, err := withNoop.List(context.TODO(), filter)
			require.NoError(t, err)

			// THEN
			assert.Equal(t, fromMemory, fromNoop)
		}
	}

	assert.Equal(t, int32(1), memRepo.calls.Load())
	assert.Equal(t, int32(6), noopRepo.calls.Load())
}

func TestServiceListResultCannotModifyCachedProducts(t *testing.T) {
	t.Parallel()

	// GIVEN
	svc := NewService(StaticRepository(testProducts()), newMemoryCache(t), time.Minute, log.Logger)

	products, err := svc.List(context.TODO(), Filter{})
	require.NoError(t, err)

	// WHEN
	products[0].Price = 0

	// THEN
	product, err := svc.BySlug(context.TODO(), products[0].Slug)
	require.NoError(t, err)
	assert.InDelta(t, 59.9, product.Price, 0)
}

func TestServiceInvalidateDuringLoad(t *testing.T) {
	t.Parallel()

	// GIVEN
	repo := newBlockingRepository()
	svc := NewService(repo, newMemoryCache(t), time.Minute, log.Logger)

	done := make(chan error)

	go func() {
		_, err := svc.List(context.TODO(), Filter{})
		done <- err
	}()

	<-repo.started

	// WHEN
	repo.version.Store(2)
	svc.Invalidate()
	close(repo.release)

	require.NoError(t, <-done)

	// THEN
	product, err := svc.BySlug(context.TODO(), "pla-negro")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, product.Price, 0)
	assert.Equal(t, int32(2), repo.calls.Load())
}

func TestServiceSharedLoadSurvivesCancelledCaller(t *testing.T) {
	t.Parallel()

	// GIVEN
	repo := newBlockingRepository()
	svc := NewService(repo, newMemoryCache(t), time.Minute, log.Logger)

	ctx, cancel := context.WithCancel(context.TODO())
	first := make(chan error)

	go func() {
		_, err := svc.List(ctx, Filter{})
		first <- err
	}()

	<-repo.started

	// WHEN
	cancel()

	// THEN
	require.ErrorIs(t, <-first, context.Canceled)

	// WHEN
	second := make(chan error)

	go func() {
		_, err := svc.List(context.TODO(), Filter{})
		second <- err
	}()

	time.Sleep(20 * time.Millisecond)
	close(repo.release)

	// THEN
	require.NoError(t, <-second)
	assert.Equal(t, int32(1), repo.calls.Load())
}
