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

package api

import (
	"net/http"
	"strconv"

	"github.com/snestors/kn3d/internal/catalog"
	"github.com/snestors/kn3d/internal/commerce"
	"github.com/snestors/kn3d/internal/kn3d"
	"github.com/snestors/kn3d/internal/x/errorchain"
)

const summaryLength = 120

type productSummary struct {
	SKU            string  `json:"sku"`
	Name           string  `json:"name"`
	Slug           string  `json:"slug"`
	Category       string  `json:"category,omitempty"`
	Summary        string  `json:"summary,omitempty"`
	Price          float64 `json:"price"`
	FormattedPrice string  `json:"formatted_price"`
	InStock        bool    `json:"in_stock"`
	Featured       bool    `json:"featured"`
}

type productDetail struct {
	SKU            string  `json:"sku"`
	Name           string  `json:"name"`
	Slug           string  `json:"slug"`
	Category       string  `json:"category,omitempty"`
	Description    string  `json:"description,omitempty"`
	Price          float64 `json:"price"`
	FormattedPrice string  `json:"formatted_price"`
	Stock          int     `json:"stock"`
	Featured       bool    `json:"featured"`
}

func (h *handler) listProducts(rw http.ResponseWriter, req *http.Request) error {
	query := req.URL.Query()
	filter := catalog.Filter{Category: query.Get("category")}

	if featured := query.Get("featured"); len(featured) != 0 {
		flag, err := strconv.ParseBool(featured)
		if err != nil {
			return errorchain.NewWithMessagef(kn3d.ErrArgument, "invalid value %q for featured", featured)
		}

		filter.FeaturedOnly = flag
	}

	products, err := h.catalog.List(req.Context(), filter)
	if err != nil {
		return err
	}

	summaries := make([]productSummary, len(products))
	for idx, product := range products {
		summaries[idx] = productSummary{
			SKU:            product.SKU,
			Name:           product.Name,
			Slug:           product.Slug,
			Category:       product.Category,
			Summary:        commerce.TruncateText(product.Description, summaryLength),
			Price:          product.Price,
			FormattedPrice: h.formatter.Format(product.Price),
			InStock:        product.Stock > 0,
			Featured:       product.Featured,
		}
	}

	return writeJSON(rw, http.StatusOK, summaries)
}

func (h *handler) getProduct(rw http.ResponseWriter, req *http.Request) error {
	product, err := h.catalog.BySlug(req.Context(), req.PathValue("slug"))
	if err != nil {
		return err
	}

	return writeJSON(rw, http.StatusOK, productDetail{
		SKU:            product.SKU,
		Name:           product.Name,
		Slug:           product.Slug,
		Category:       product.Category,
		Description:    product.Description,
		Price:          product.Price,
		FormattedPrice: h.formatter.Format(product.Price),
		Stock:          product.Stock,
		Featured:       product.Featured,
	})
}
