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

package config

import "time"

// CacheConfig selects the cache implementation. Config is passed as is to the
// factory of the selected type.
type CacheConfig struct {
	Type   string         `koanf:"type"`
	Config map[string]any `koanf:"config"`
}

type PricingConfig struct {
	FreeShippingThreshold float64 `koanf:"free_shipping_threshold" validate:"gte=0"`
	TaxRate               float64 `koanf:"tax_rate"                validate:"gte=0,lte=1"`
	CurrencySymbol        string  `koanf:"currency_symbol"`
	SKUPrefix             string  `koanf:"sku_prefix"`
}

// CatalogConfig points to the YAML catalog file. Without a file the catalog is empty.
// With Watch enabled, changes to the file invalidate cached catalog data.
type CatalogConfig struct {
	File  string        `koanf:"file"`
	TTL   time.Duration `koanf:"ttl"   validate:"gte=0"`
	Watch bool          `koanf:"watch"`
}
