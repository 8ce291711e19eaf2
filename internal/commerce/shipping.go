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

// Package commerce contains the arithmetic and text helpers shared by the
// storefront display and the order totals, so both always agree.
package commerce

const (
	// FlatShippingRate is charged for orders below the free shipping threshold.
	FlatShippingRate             = 15.00
	DefaultFreeShippingThreshold = 200.00
	DefaultTaxRate               = 0.18
)

// CalculateShipping returns 0 if total reaches freeShippingThreshold and
// FlatShippingRate otherwise.
func CalculateShipping(total, freeShippingThreshold float64) float64 {
	if total >= freeShippingThreshold {
		return 0
	}

	return FlatShippingRate
}

func CalculateTax(subtotal, taxRate float64) float64 {
	return subtotal * taxRate
}
