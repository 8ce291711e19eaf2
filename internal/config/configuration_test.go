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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snestors/kn3d/internal/kn3d"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestNewConfigurationDefaults(t *testing.T) {
	// WHEN
	conf, err := NewConfiguration("KN3DDEFAULTSTEST_", "")

	// THEN
	require.NoError(t, err)
	assert.Equal(t, ":4460", conf.Serve.Address())
	assert.Equal(t, defaultWriteTimeout, conf.Serve.Timeout.Write)
	assert.Equal(t, zerolog.InfoLevel, conf.Log.Level)
	assert.Equal(t, LogTextFormat, conf.Log.Format)
	assert.True(t, conf.Metrics.Enabled)
	assert.Equal(t, "/metrics", conf.Metrics.Path)
	assert.Equal(t, "memory", conf.Cache.Type)
	assert.InDelta(t, 200.0, conf.Pricing.FreeShippingThreshold, 0.0001)
	assert.InDelta(t, 0.18, conf.Pricing.TaxRate, 0.0001)
	assert.Equal(t, "S/", conf.Pricing.CurrencySymbol)
	assert.Equal(t, defaultCatalogTTL, conf.Catalog.TTL)
	assert.False(t, conf.Serve.CORS.Enabled())
}

func TestNewConfigurationFromFileAndEnv(t *testing.T) {
	// GIVEN
	path := writeConfigFile(t, `
serve:
  port: 8080
  cors:
    allowed_origins:
      - https://kn3d.example
log:
  level: debug
  format: gelf
cache:
  type: memory
  config:
    default_ttl: 1m
    max_entries: 100
pricing:
  tax_rate: 0.16
  currency_symbol: "$"
catalog:
  file: /etc/kn3d/catalog.yaml
  ttl: 30s
`)

	t.Setenv("KN3DFILETEST_SERVE_PORT", "9090")
	t.Setenv("KN3DFILETEST_PRICING_FREE__SHIPPING__THRESHOLD", "150")
	t.Setenv("KN3DFILETEST_METRICS_ENABLED", "false")

	// WHEN
	conf, err := NewConfiguration("KN3DFILETEST_", ConfigurationPath(path))

	// THEN
	require.NoError(t, err)

	assert.Equal(t, 9090, conf.Serve.Port) // env wins over yaml
	assert.Equal(t, []string{"https://kn3d.example"}, conf.Serve.CORS.AllowedOrigins)
	assert.True(t, conf.Serve.CORS.Enabled())
	assert.Equal(t, defaultReadTimeout, conf.Serve.Timeout.Read)
	assert.Equal(t, zerolog.DebugLevel, conf.Log.Level)
	assert.Equal(t, LogGelfFormat, conf.Log.Format)
	assert.False(t, conf.Metrics.Enabled)
	assert.Equal(t, "memory", conf.Cache.Type)
	assert.Equal(t, "1m", conf.Cache.Config["default_ttl"])
	assert.InDelta(t, 0.16, conf.Pricing.TaxRate, 0.0001)
	assert.InDelta(t, 150.0, conf.Pricing.FreeShippingThreshold, 0.0001)
	assert.Equal(t, "$", conf.Pricing.CurrencySymbol)
	assert.Equal(t, "PROD", conf.Pricing.SKUPrefix)
	assert.Equal(t, "/etc/kn3d/catalog.yaml", conf.Catalog.File)
	assert.Equal(t, 30*time.Second, conf.Catalog.TTL)
}

func TestNewConfigurationSubstitutesEnvironmentVariables(t *testing.T) {
	// GIVEN
	path := writeConfigFile(t, `
pricing:
  currency_symbol: ${KN3D_SUBST_TEST_SYMBOL}
catalog:
  file: ${KN3D_SUBST_TEST_DIR}/catalog.yaml
`)

	t.Setenv("KN3D_SUBST_TEST_SYMBOL", "USD")
	t.Setenv("KN3D_SUBST_TEST_DIR", "/srv/kn3d")

	// WHEN
	conf, err := NewConfiguration("KN3DSUBSTTEST_", ConfigurationPath(path))

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "USD", conf.Pricing.CurrencySymbol)
	assert.Equal(t, "/srv/kn3d/catalog.yaml", conf.Catalog.File)
}

func TestNewConfigurationWithCacheSettings(t *testing.T) {
	for _, tc := range []struct {
		uc      string
		content string
		env     map[string]string
	}{
		{
			uc:      "from yaml",
			content: "cache: { type: memory, config: { default_ttl: 1m } }",
		},
		{
			uc:  "from env",
			env: map[string]string{"KN3DCACHETEST_CACHE_CONFIG_DEFAULT__TTL": "1m"},
		},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			// GIVEN
			var path string
			if len(tc.content) != 0 {
				path = writeConfigFile(t, tc.content)
			}

			for key, val := range tc.env {
				t.Setenv(key, val)
			}

			// WHEN
			conf, err := NewConfiguration("KN3DCACHETEST_", ConfigurationPath(path))

			// THEN
			require.NoError(t, err)
			assert.Equal(t, "memory", conf.Cache.Type)
			assert.Equal(t, "1m", conf.Cache.Config["default_ttl"])
		})
	}
}

func TestNewConfigurationErrors(t *testing.T) {
	for _, tc := range []struct {
		uc      string
		content string
		path    func(t *testing.T, content string) string
	}{
		{
			uc: "config file does not exist",
			path: func(t *testing.T, _ string) string {
				t.Helper()

				return filepath.Join(t.TempDir(), "missing.yaml")
			},
		},
		{
			uc:      "malformed yaml",
			content: "serve: [",
		},
		{
			uc:      "tax rate out of range",
			content: "pricing: { tax_rate: 1.5 }",
		},
		{
			uc:      "negative free shipping threshold",
			content: "pricing: { free_shipping_threshold: -1 }",
		},
		{
			uc:      "invalid port",
			content: "serve: { port: 70000 }",
		},
		{
			uc:      "invalid trusted proxy",
			content: "serve: { trusted_proxies: [ 10.0.0.0/33 ] }",
		},
		{
			uc:      "unsupported log format",
			content: "log: { format: xml }",
		},
		{
			uc:      "unsupported log level",
			content: "log: { level: loud }",
		},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			// GIVEN
			var path string
			if tc.path != nil {
				path = tc.path(t, tc.content)
			} else {
				path = writeConfigFile(t, tc.content)
			}

			// WHEN
			conf, err := NewConfiguration("KN3DERRORTEST_", ConfigurationPath(path))

			// THEN
			require.Error(t, err)
			require.ErrorIs(t, err, kn3d.ErrConfiguration)
			assert.Nil(t, conf)
		})
	}
}

func TestLogFormatString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text", LogTextFormat.String())
	assert.Equal(t, "gelf", LogGelfFormat.String())
}
