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

package commerce

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/snestors/kn3d/internal/kn3d"
	"github.com/snestors/kn3d/internal/x/errorchain"
)

const centsPlaces = 2

// LineItem is a single product position of an order.
type LineItem struct {
	SKU       string  `json:"sku"        yaml:"sku"`
	Name      string  `json:"name"       yaml:"name"`
	UnitPrice float64 `json:"unit_price" yaml:"unit_price"`
	Quantity  int     `json:"quantity"   yaml:"quantity"`
}

type QuoteLine struct {
	LineItem `yaml:",inline"`

	Amount float64 `json:"amount" yaml:"amount"`
}

// Quote holds the amounts shown to the customer and persisted with the order.
// All amounts are rounded to cents and Total == Subtotal + Shipping + Tax.
type Quote struct {
	Lines        []QuoteLine `json:"lines"         yaml:"lines"`
	Subtotal     float64     `json:"subtotal"      yaml:"subtotal"`
	Shipping     float64     `json:"shipping"      yaml:"shipping"`
	Tax          float64     `json:"tax"           yaml:"tax"`
	Total        float64     `json:"total"         yaml:"total"`
	FreeShipping bool        `json:"free_shipping" yaml:"free_shipping"`
}

// Pricing holds the parameters used to compute quotes.
type Pricing struct {
	FreeShippingThreshold float64
	TaxRate               float64
}

func DefaultPricing() Pricing {
	return Pricing{
		FreeShippingThreshold: DefaultFreeShippingThreshold,
		TaxRate:               DefaultTaxRate,
	}
}

// Quote computes the totals for items. Tax and shipping are derived from the
// subtotal. Empty orders, non positive quantities and negative or non finite
// prices are rejected with kn3d.ErrArgument.
func (p Pricing) Quote(items []LineItem) (Quote, error) {
	if len(items) == 0 {
		return Quote{}, errorchain.NewWithMessage(kn3d.ErrArgument, "order has no items")
	}

	lines := make([]QuoteLine, len(items))
	subtotal := decimal.Zero

	for idx, item := range items {
		if err := validateItem(idx, item); err != nil {
			return Quote{}, err
		}

		amount := decimal.NewFromFloat(item.UnitPrice).
			Mul(decimal.NewFromInt(int64(item.Quantity))).
			Round(centsPlaces)

		lines[idx] = QuoteLine{LineItem: item, Amount: amount.InexactFloat64()}
		subtotal = subtotal.Add(amount)
	}

	shipping := decimal.NewFromFloat(CalculateShipping(subtotal.InexactFloat64(), p.FreeShippingThreshold))
	tax := subtotal.Mul(decimal.NewFromFloat(p.TaxRate)).Round(centsPlaces)
	total := subtotal.Add(shipping).Add(tax)

	return Quote{
		Lines:        lines,
		Subtotal:     subtotal.InexactFloat64(),
		Shipping:     shipping.InexactFloat64(),
		Tax:          tax.InexactFloat64(),
		Total:        total.InexactFloat64(),
		FreeShipping: shipping.IsZero(),
	}, nil
}

func validateItem(idx int, item LineItem) error {
	switch {
	case item.Quantity <= 0:
		return errorchain.NewWithMessagef(kn3d.ErrArgument,
			"item #%d: quantity must be positive, got %d", idx, item.Quantity)
	case math.IsNaN(item.UnitPrice) || math.IsInf(item.UnitPrice, 0):
		return errorchain.NewWithMessagef(kn3d.ErrArgument,
			"item #%d: unit price must be a finite number", idx)
	case item.UnitPrice < 0:
		return errorchain.NewWithMessagef(kn3d.ErrArgument,
			"item #%d: unit price must not be negative, got %v", idx, item.UnitPrice)
	default:
		return nil
	}
}
