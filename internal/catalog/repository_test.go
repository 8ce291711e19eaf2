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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snestors/kn3d/internal/kn3d"
)

func writeCatalogFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestFileRepositoryProducts(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc       string
		contents string
		assert   func(t *testing.T, err error, products []Product)
	}{
		{
			uc: "valid catalog",
			contents: `
products:
  - sku: PLA-175-BLK
    name: Filamento PLA 1.75mm Negro
    category: filamentos
    description: PLA de alta calidad
    price: 59.90
    stock: 12
    featured: true
  - sku: RES-UV-500
    name: Resina UV
    slug: resina-uv-500ml
    category: resinas
    price: 129
`,
			assert: func(t *testing.T, err error, products []Product) {
				t.Helper()

				require.NoError(t, err)
				require.Len(t, products, 2)

				assert.Equal(t, Product{
					SKU:         "PLA-175-BLK",
					Name:        "Filamento PLA 1.75mm Negro",
					Slug:        "filamento-pla-175mm-negro",
					Category:    "filamentos",
					Description: "PLA de alta calidad",
					Price:       59.9,
					Stock:       12,
					Featured:    true,
				}, products[0])
				assert.Equal(t, "resina-uv-500ml", products[1].Slug)
				assert.False(t, products[1].Featured)
			},
		},
		{
			uc:       "empty catalog",
			contents: `products: []`,
			assert: func(t *testing.T, err error, products []Product) {
				t.Helper()

				require.NoError(t, err)
				assert.Empty(t, products)
			},
		},
		{
			uc:       "malformed yaml",
			contents: `products: [ foo`,
			assert: func(t *testing.T, err error, _ []Product) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, kn3d.ErrConfiguration)
				assert.Contains(t, err.Error(), "failed parsing")
			},
		},
		{
			uc: "product without sku",
			contents: `
products:
  - name: Resina UV
    price: 129
`,
			assert: func(t *testing.T, err error, _ []Product) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, kn3d.ErrConfiguration)
				assert.Contains(t, err.Error(), "invalid product #0")
			},
		},
		{
			uc: "product with negative price",
			contents: `
products:
  - sku: RES-UV-500
    name: Resina UV
    price: -1
`,
			assert: func(t *testing.T, err error, _ []Product) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, kn3d.ErrConfiguration)
			},
		},
		{
			uc: "products sharing a slug",
			contents: `
products:
  - sku: A
    name: Resina UV
  - sku: B
    name: resina   uv
`,
			assert: func(t *testing.T, err error, _ []Product) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, kn3d.ErrConfiguration)
				assert.Contains(t, err.Error(), `share the slug "resina-uv"`)
			},
		},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			// GIVEN
			repo := NewFileRepository(writeCatalogFile(t, tc.contents))

			// WHEN
			products, err := repo.Products(context.TODO())

			// THEN
			tc.assert(t, err, products)
		})
	}
}

func TestFileRepositoryWithMissingFile(t *testing.T) {
	t.Parallel()

	// GIVEN
	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing.yaml"))

	// WHEN
	_, err := repo.Products(context.TODO())

	// THEN
	require.Error(t, err)
	require.ErrorIs(t, err, kn3d.ErrInternal)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileRepositoryWithCanceledContext(t *testing.T) {
	t.Parallel()

	// GIVEN
	repo := NewFileRepository(writeCatalogFile(t, `products: []`))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// WHEN
	_, err := repo.Products(ctx)

	// THEN
	require.ErrorIs(t, err, context.Canceled)
}

func TestStaticRepositoryReturnsCopy(t *testing.T) {
	t.Parallel()

	// GIVEN
	repo := StaticRepository{{SKU: "A", Name: "a", Slug: "a"}}

	// WHEN
	products, err := repo.Products(context.TODO())
	require.NoError(t, err)

	products[0].Name = "changed"

	// THEN
	assert.Equal(t, "a", repo[0].Name)
}
