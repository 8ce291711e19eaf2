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

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

const (
	DefaultCurrencySymbol = "S/"

	priceFormat = "#,###.##"
)

// PriceFormatter renders amounts as "<Symbol> 1,234.50".
type PriceFormatter struct {
	Symbol string
}

// Format renders price, which can be any number, a numeric string, a
// decimal.Decimal or nil. Values which cannot be interpreted as a finite number
// render as zero.
func (f PriceFormatter) Format(price any) string {
	symbol := f.Symbol
	if len(symbol) == 0 {
		symbol = DefaultCurrencySymbol
	}

	amount := decimal.NewFromFloat(toAmount(price)).Round(2) //nolint:mnd

	// avoids a rendered "-0.00"
	if amount.IsZero() {
		amount = decimal.Zero
	}

	return symbol + " " + humanize.FormatFloat(priceFormat, amount.InexactFloat64())
}

// FormatPrice renders price using the default currency symbol.
func FormatPrice(price any) string {
	return PriceFormatter{Symbol: DefaultCurrencySymbol}.Format(price)
}

func toAmount(price any) float64 {
	var value float64

	switch typed := price.(type) {
	case decimal.Decimal:
		value = typed.InexactFloat64()
	case *decimal.Decimal:
		if typed != nil {
			value = typed.InexactFloat64()
		}
	default:
		// unparsable input is zero by definition
		value, _ = cast.ToFloat64E(price)
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}

	return value
}
