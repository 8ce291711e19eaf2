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

package memory

import (
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/go-playground/validator/v10"
	"github.com/inhies/go-bytesize"

	"github.com/snestors/kn3d/internal/config"
	"github.com/snestors/kn3d/internal/kn3d"
	"github.com/snestors/kn3d/internal/x/errorchain"
)

const (
	defaultTTL             = 5 * time.Minute
	defaultCleanupInterval = 10 * time.Minute
)

// Config holds the settings of the in memory cache. A CleanupInterval of 0
// disables the periodic sweep, leaving eviction to reads and explicit Cleanup calls.
type Config struct {
	DefaultTTL      *time.Duration     `mapstructure:"default_ttl"      validate:"omitnil,gt=0"`
	CleanupInterval *time.Duration     `mapstructure:"cleanup_interval" validate:"omitnil,gte=0"`
	MaxEntries      uint64             `mapstructure:"max_entries"`
	MaxMemory       *bytesize.ByteSize `mapstructure:"max_memory"`
}

func (c Config) ttl() time.Duration {
	if c.DefaultTTL == nil {
		return defaultTTL
	}

	return *c.DefaultTTL
}

func (c Config) cleanupInterval() time.Duration {
	if c.CleanupInterval == nil {
		return defaultCleanupInterval
	}

	return *c.CleanupInterval
}

func decodeConfig(input map[string]any) (Config, error) {
	var cfg Config

	if len(input) == 0 {
		return cfg, nil
	}

	dec, err := mapstructure.NewDecoder(
		&mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				config.StringToByteSizeHookFunc(),
			),
			Result:           &cfg,
			ErrorUnused:      true,
			WeaklyTypedInput: true,
		})
	if err != nil {
		return cfg, errorchain.NewWithMessage(kn3d.ErrConfiguration,
			"failed decoding memory cache config").CausedBy(err)
	}

	if err = dec.Decode(input); err != nil {
		return cfg, errorchain.NewWithMessage(kn3d.ErrConfiguration,
			"failed decoding memory cache config").CausedBy(err)
	}

	if err = validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return cfg, errorchain.NewWithMessage(kn3d.ErrConfiguration,
			"failed validating memory cache config").CausedBy(err)
	}

	return cfg, nil
}
