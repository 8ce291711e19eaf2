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

	"github.com/goccy/go-json"

	"github.com/snestors/kn3d/internal/commerce"
	"github.com/snestors/kn3d/internal/kn3d"
	"github.com/snestors/kn3d/internal/x/errorchain"
)

const maxQuoteRequestSize = 64 << 10

type quoteRequest struct {
	Items []struct {
		Slug     string `json:"slug"`
		Quantity int    `json:"quantity"`
	} `json:"items"`
}

type quoteLine struct {
	SKU             string  `json:"sku"`
	Name            string  `json:"name"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	Amount          float64 `json:"amount"`
	FormattedAmount string  `json:"formatted_amount"`
}

type formattedTotals struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

type quoteResponse struct {
	OrderNumber  string          `json:"order_number"`
	Lines        []quoteLine     `json:"lines"`
	Subtotal     float64         `json:"subtotal"`
	Shipping     float64         `json:"shipping"`
	Tax          float64         `json:"tax"`
	Total        float64         `json:"total"`
	FreeShipping bool            `json:"free_shipping"`
	Formatted    formattedTotals `json:"formatted"`
}

func (h *handler) quote(rw http.ResponseWriter, req *http.Request) error {
	var body quoteRequest

	dec := json.NewDecoder(http.MaxBytesReader(rw, req.Body, maxQuoteRequestSize))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&body); err != nil {
		return errorchain.NewWithMessage(kn3d.ErrArgument, "malformed request body").CausedBy(err)
	}

	items := make([]commerce.LineItem, len(body.Items))

	for idx, item := range body.Items {
		product, err := h.catalog.BySlug(req.Context(), item.Slug)
		if err != nil {
			return err
		}

		items[idx] = commerce.LineItem{
			SKU:       product.SKU,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  item.Quantity,
		}
	}

	quote, err := h.pricing.Quote(items)
	if err != nil {
		return err
	}

	lines := make([]quoteLine, len(quote.Lines))
	for idx, line := range quote.Lines {
		lines[idx] = quoteLine{
			SKU:             line.SKU,
			Name:            line.Name,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
			Amount:          line.Amount,
			FormattedAmount: h.formatter.Format(line.Amount),
		}
	}

	return writeJSON(rw, http.StatusOK, quoteResponse{
		OrderNumber:  commerce.GenerateOrderNumber(),
		Lines:        lines,
		Subtotal:     quote.Subtotal,
		Shipping:     quote.Shipping,
		Tax:          quote.Tax,
		Total:        quote.Total,
		FreeShipping: quote.FreeShipping,
		Formatted: formattedTotals{
			Subtotal: h.formatter.Format(quote.Subtotal),
			Shipping: h.formatter.Format(quote.Shipping),
			Tax:      h.formatter.Format(quote.Tax),
			Total:    h.formatter.Format(quote.Total),
		},
	})
}
