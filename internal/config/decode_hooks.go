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
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"

	"github.com/snestors/kn3d/internal/kn3d"
	"github.com/snestors/kn3d/internal/x/errorchain"
)

func logLevelDecodeHookFunc(from reflect.Type, to reflect.Type, val any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(zerolog.Level(0)) {
		return val, nil
	}

	// nolint: forcetypeassert
	level, err := zerolog.ParseLevel(strings.ToLower(val.(string)))
	if err != nil {
		return nil, errorchain.NewWithMessagef(kn3d.ErrConfiguration, "unsupported log level %q", val).
			CausedBy(err)
	}

	return level, nil
}

func logFormatDecodeHookFunc(from reflect.Type, to reflect.Type, val any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(LogFormat(0)) {
		return val, nil
	}

	// nolint: forcetypeassert
	switch strings.ToLower(val.(string)) {
	case "", "text":
		return LogTextFormat, nil
	case "gelf":
		return LogGelfFormat, nil
	default:
		return nil, errorchain.NewWithMessagef(kn3d.ErrConfiguration, "unsupported log format %q", val)
	}
}

// StringToByteSizeHookFunc converts strings like "64MB" into bytesize.ByteSize values.
func StringToByteSizeHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, val any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(bytesize.ByteSize(0)) {
			return val, nil
		}

		// nolint: forcetypeassert
		return bytesize.Parse(val.(string))
	}
}
