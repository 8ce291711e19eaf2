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
	"github.com/go-playground/validator/v10"

	"github.com/snestors/kn3d/internal/kn3d"
	"github.com/snestors/kn3d/internal/x/errorchain"
)

type (
	EnvVarPrefix      string
	ConfigurationPath string
)

type Configuration struct {
	Serve   ServeConfig   `koanf:"serve"`
	Log     LoggingConfig `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
	Cache   CacheConfig   `koanf:"cache"`
	Pricing PricingConfig `koanf:"pricing"`
	Catalog CatalogConfig `koanf:"catalog"`
}

// NewConfiguration builds the configuration from the defaults, the optional
// yaml file and the environment variables starting with the given prefix, in
// that order of precedence (last one wins).
func NewConfiguration(envPrefix EnvVarPrefix, configFile ConfigurationPath) (*Configuration, error) {
	result := defaultConfig()

	if err := load(&result, string(envPrefix), string(configFile)); err != nil {
		return nil, err
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(&result); err != nil {
		return nil, errorchain.NewWithMessage(kn3d.ErrConfiguration,
			"configuration is invalid").CausedBy(err)
	}

	return &result, nil
}
