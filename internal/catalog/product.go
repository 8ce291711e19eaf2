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

import "strings"

// Product is a sellable catalog item.
type Product struct {
	SKU         string  `json:"sku"         yaml:"sku"         validate:"required"`
	Name        string  `json:"name"        yaml:"name"        validate:"required"`
	Slug        string  `json:"slug"        yaml:"slug"`
	Category    string  `json:"category"    yaml:"category"`
	Description string  `json:"description" yaml:"description"`
	Price       float64 `json:"price"       yaml:"price"       validate:"gte=0"`
	Stock       int     `json:"stock"       yaml:"stock"       validate:"gte=0"`
	Featured    bool    `json:"featured"    yaml:"featured"`
}

// Filter restricts the products returned by Service.List. The zero value
// matches every product.
type Filter struct {
	Category     string
	FeaturedOnly bool
}

func (f Filter) matches(p Product) bool {
	if len(f.Category) != 0 && !strings.EqualFold(f.Category, p.Category) {
		return false
	}

	return !f.FeaturedOnly || p.Featured
}
