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
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/snestors/kn3d/internal/commerce"
	"github.com/snestors/kn3d/internal/kn3d"
	"github.com/snestors/kn3d/internal/x/errorchain"
)

// Repository gives access to the full product list. Implementations may be slow;
// Service memoizes their results.
type Repository interface {
	Products(ctx context.Context) ([]Product, error)
}

// StaticRepository serves a fixed product list.
type StaticRepository []Product

func (r StaticRepository) Products(_ context.Context) ([]Product, error) {
	products := make([]Product, len(r))
	copy(products, r)

	return products, nil
}

// FileRepository reads products from a YAML file of the form
//
//	products:
//	  - sku: PLA-175-BLK
//	    name: Filamento PLA 1.75mm Negro
//	    price: 59.90
//
// on every call. Missing slugs are derived from the product name.
type FileRepository struct {
	path     string
	validate *validator.Validate
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path:     path,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (r *FileRepository) Products(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, errorchain.NewWithMessagef(kn3d.ErrInternal, "failed reading catalog file %s", r.path).
			CausedBy(err)
	}

	var contents struct {
		Products []Product `yaml:"products"`
	}

	if err = yaml.Unmarshal(raw, &contents); err != nil {
		return nil, errorchain.NewWithMessagef(kn3d.ErrConfiguration, "failed parsing catalog file %s", r.path).
			CausedBy(err)
	}

	slugs := make(map[string]string, len(contents.Products))

	for idx := range contents.Products {
		product := &contents.Products[idx]

		if err = r.validate.Struct(product); err != nil {
			return nil, errorchain.NewWithMessagef(kn3d.ErrConfiguration, "invalid product #%d", idx).
				CausedBy(err)
		}

		if len(product.Slug) == 0 {
			product.Slug = commerce.Slugify(product.Name)
		}

		if sku, exists := slugs[product.Slug]; exists {
			return nil, errorchain.NewWithMessagef(kn3d.ErrConfiguration,
				"products %s and %s share the slug %q", sku, product.SKU, product.Slug)
		}

		slugs[product.Slug] = product.SKU
	}

	return contents.Products, nil
}
