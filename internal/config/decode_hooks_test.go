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
	"testing"

	"github.com/go-viper/mapstructure/v2"
	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringToByteSizeHookFunc(t *testing.T) {
	t.Parallel()

	type typ struct {
		Size bytesize.ByteSize `mapstructure:"size"`
	}

	for _, tc := range []struct {
		uc     string
		input  map[string]any
		assert func(t *testing.T, err error, result typ)
	}{
		{
			uc:    "megabytes",
			input: map[string]any{"size": "64MB"},
			assert: func(t *testing.T, err error, result typ) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, 64*bytesize.MB, result.Size)
			},
		},
		{
			uc:    "plain number",
			input: map[string]any{"size": 1024},
			assert: func(t *testing.T, err error, result typ) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, bytesize.KB, result.Size)
			},
		},
		{
			uc:    "malformed",
			input: map[string]any{"size": "a lot"},
			assert: func(t *testing.T, err error, _ typ) {
				t.Helper()

				require.Error(t, err)
			},
		},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			var result typ

			dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				DecodeHook: StringToByteSizeHookFunc(),
				Result:     &result,
			})
			require.NoError(t, err)

			err = dec.Decode(tc.input)

			tc.assert(t, err, result)
		})
	}
}

func TestLogLevelDecodeHookFunc(t *testing.T) {
	t.Parallel()

	type typ struct {
		Level zerolog.Level `mapstructure:"level"`
	}

	for _, tc := range []struct {
		uc       string
		value    string
		expLevel zerolog.Level
		expErr   bool
	}{
		{uc: "lower case", value: "debug", expLevel: zerolog.DebugLevel},
		{uc: "upper case", value: "WARN", expLevel: zerolog.WarnLevel},
		{uc: "unknown", value: "loud", expErr: true},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			var result typ

			dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				DecodeHook: logLevelDecodeHookFunc,
				Result:     &result,
			})
			require.NoError(t, err)

			err = dec.Decode(map[string]any{"level": tc.value})

			if tc.expErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported log level")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expLevel, result.Level)
		})
	}
}
