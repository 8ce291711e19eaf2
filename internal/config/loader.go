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
	"strings"
	"unicode"

	"github.com/drone/envsubst/v2"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/snestors/kn3d/internal/kn3d"
	"github.com/snestors/kn3d/internal/x/errorchain"
)

func load(conf *Configuration, envPrefix, configFile string) error {
	parser, err := koanfFromStruct(conf)
	if err != nil {
		return err
	}

	if len(configFile) != 0 {
		if err = loadYaml(parser, configFile); err != nil {
			return err
		}
	}

	if err = loadEnv(parser, envPrefix); err != nil {
		return err
	}

	err = parser.UnmarshalWithConf("", conf, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
				logLevelDecodeHookFunc,
				logFormatDecodeHookFunc,
			),
			Metadata:         nil,
			Result:           conf,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return errorchain.NewWithMessage(kn3d.ErrConfiguration, "failed to decode configuration").
			CausedBy(err)
	}

	return nil
}

func koanfFromStruct(conf any) (*koanf.Koanf, error) {
	parser := koanf.New(".")

	if err := parser.Load(structs.Provider(conf, "koanf"), nil); err != nil {
		return nil, errorchain.NewWithMessage(kn3d.ErrConfiguration, "failed to load defaults").
			CausedBy(err)
	}

	for _, key := range parser.Keys() {
		if !isLower(key) {
			return nil, errorchain.NewWithMessagef(kn3d.ErrConfiguration,
				"field %s does not have lowercase key, use the `koanf` tag", key)
		}
	}

	return parser, nil
}

func loadYaml(parser *koanf.Koanf, configFile string) error {
	raw, err := os.ReadFile(configFile)
	if err != nil {
		return errorchain.NewWithMessagef(kn3d.ErrConfiguration,
			"failed to read config file %s", configFile).CausedBy(err)
	}

	content, err := envsubst.EvalEnv(string(raw))
	if err != nil {
		return errorchain.NewWithMessagef(kn3d.ErrConfiguration,
			"failed to substitute environment variables in %s", configFile).CausedBy(err)
	}

	if err = parser.Load(rawbytes.Provider([]byte(content)), yaml.Parser()); err != nil {
		return errorchain.NewWithMessagef(kn3d.ErrConfiguration,
			"failed to parse yaml config from %s", configFile).CausedBy(err)
	}

	return nil
}

// loadEnv merges environment variables starting with prefix. A single "_"
// separates hierarchy levels, "__" stands for a literal underscore, so
// KN3D_PRICING_TAX__RATE sets pricing.tax_rate.
func loadEnv(parser *koanf.Koanf, prefix string) error {
	provider := env.Provider(".", env.Opt{
		Prefix: prefix,
		TransformFunc: func(key, val string) (string, any) {
			tmp := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, prefix)), "__", `\:\`)
			tmp = strings.ReplaceAll(tmp, "_", ".")

			return strings.ReplaceAll(tmp, `\:\`, "_"), val
		},
	})

	if err := parser.Load(provider, nil); err != nil {
		return errorchain.NewWithMessage(kn3d.ErrConfiguration,
			"failed to parse environment variables to config").CausedBy(err)
	}

	return nil
}

func isLower(s string) bool {
	for _, r := range s {
		if !unicode.IsLower(r) && unicode.IsLetter(r) {
			return false
		}
	}

	return true
}
