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
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/snestors/kn3d/internal/cache"
	"github.com/snestors/kn3d/internal/kn3d"
	"github.com/snestors/kn3d/internal/x/errorchain"
)

const productsCacheKey = "catalog:products"

// Service answers catalog queries. The product list is loaded from the
// repository at most once per ttl and concurrent loads are collapsed into one.
type Service struct {
	repo   Repository
	cch    cache.Cache
	ttl    time.Duration
	group  singleflight.Group
	logger zerolog.Logger

	// guards generation and the writes of the memoized product list
	mu         sync.Mutex
	generation uint64
}

func NewService(repo Repository, cch cache.Cache, ttl time.Duration, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		cch:    cch,
		ttl:    ttl,
		logger: logger,
	}
}

// List returns the products matching filter in catalog order.
func (s *Service) List(ctx context.Context, filter Filter) ([]Product, error) {
	products, err := s.products(ctx)
	if err != nil {
		return nil, err
	}

	matching := make([]Product, 0, len(products))

	for _, product := range products {
		if filter.matches(product) {
			matching = append(matching, product)
		}
	}

	return matching, nil
}

// BySlug returns the product with the given slug or an error wrapping kn3d.ErrNotFound.
func (s *Service) BySlug(ctx context.Context, slug string) (Product, error) {
	products, err := s.products(ctx)
	if err != nil {
		return Product{}, err
	}

	for _, product := range products {
		if product.Slug == slug {
			return product, nil
		}
	}

	return Product{}, errorchain.NewWithMessagef(kn3d.ErrNotFound, "no product with slug %q", slug)
}

// Invalidate drops the memoized product list. The next query hits the repository.
// Loads started before the call do not memoize their result.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.generation++
	s.cch.Delete(productsCacheKey)
	s.mu.Unlock()

	s.group.Forget(productsCacheKey)

	s.logger.Debug().Msg("Catalog cache invalidated")
}

func (s *Service) products(ctx context.Context) ([]Product, error) {
	if products, ok := cache.GetAs[[]Product](s.cch, productsCacheKey); ok {
		return products, nil
	}

	s.mu.Lock()
	generation := s.generation
	s.mu.Unlock()

	// the load is shared, so it must outlive the request that started it
	loadCtx := context.WithoutCancel(ctx)

	resCh := s.group.DoChan(productsCacheKey, func() (any, error) {
		s.logger.Debug().Msg("Loading catalog")

		products, err := s.repo.Products(loadCtx)
		if err != nil {
			return nil, err
		}

		s.memoize(generation, products)

		return products, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resCh:
		if res.Err != nil {
			s.logger.Error().Err(res.Err).Msg("Failed loading catalog")

			return nil, res.Err
		}

		if res.Shared {
			s.logger.Debug().Msg("Catalog load shared with a concurrent request")
		}

		// nolint: forcetypeassert
		return res.Val.([]Product), nil
	}
}

func (s *Service) memoize(generation uint64, products []Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		s.logger.Debug().Msg("Catalog changed while loading, result not memoized")

		return
	}

	s.cch.Set(productsCacheKey, products, s.ttl)
}
