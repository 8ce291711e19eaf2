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

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultReadTimeout  = time.Second * 5
	defaultWriteTimeout = time.Second * 10
	defaultIdleTimeout  = time.Second * 120

	defaultPort = 4460

	defaultFreeShippingThreshold = 200
	defaultTaxRate               = 0.18

	defaultCatalogTTL = 5 * time.Minute
)

func defaultConfig() Configuration {
	return Configuration{
		Serve: ServeConfig{
			Port: defaultPort,
			Timeout: Timeout{
				Read:  defaultReadTimeout,
				Write: defaultWriteTimeout,
				Idle:  defaultIdleTimeout,
			},
		},
		Log: LoggingConfig{
			Level:  zerolog.InfoLevel,
			Format: LogTextFormat,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Cache: CacheConfig{
			Type:   "memory",
			Config: map[string]any{},
		},
		Pricing: PricingConfig{
			FreeShippingThreshold: defaultFreeShippingThreshold,
			TaxRate:               defaultTaxRate,
			CurrencySymbol:        "S/",
			SKUPrefix:             "PROD",
		},
		Catalog: CatalogConfig{
			TTL: defaultCatalogTTL,
		},
	}
}
