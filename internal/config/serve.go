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
	"fmt"
	"time"
)

type ServeConfig struct {
	Host           string   `koanf:"host"`
	Port           int      `koanf:"port"            validate:"gt=0,lte=65535"`
	Timeout        Timeout  `koanf:"timeout"`
	CORS           CORS     `koanf:"cors"`
	TrustedProxies []string `koanf:"trusted_proxies" validate:"dive,ip|cidr"`
}

func (c ServeConfig) Address() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

type Timeout struct {
	Read  time.Duration `koanf:"read"  validate:"gte=0"`
	Write time.Duration `koanf:"write" validate:"gte=0"`
	Idle  time.Duration `koanf:"idle"  validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string      `koanf:"allowed_origins"`
	AllowedMethods []string      `koanf:"allowed_methods"`
	MaxAge         time.Duration `koanf:"max_age"`
}

func (c CORS) Enabled() bool { return len(c.AllowedOrigins) != 0 }

type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"    validate:"omitempty,startswith=/"`
}
