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

package serve

import (
	"bytes"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/snestors/kn3d/cmd/flags"
	"github.com/snestors/kn3d/internal"
	"github.com/snestors/kn3d/internal/config"
	"github.com/snestors/kn3d/internal/logging"
)

func createApp(cmd *cobra.Command, extra fx.Option) (*fx.App, error) {
	configPath, _ := cmd.Flags().GetString(flags.Config)
	envPrefix, _ := cmd.Flags().GetString(flags.EnvironmentConfigPrefix)
	cli := bytes.NewBufferString(cmd.CommandPath())

	cmd.Flags().Visit(func(flag *pflag.Flag) {
		cli.WriteString(" --")
		cli.WriteString(flag.Name)

		if flag.Value.Type() != "bool" {
			cli.WriteString(" ")
			cli.WriteString(flag.Value.String())
		}
	})

	cfg, err := config.NewConfiguration(
		config.EnvVarPrefix(envPrefix),
		config.ConfigurationPath(configPath),
	)
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(cfg.Log)
	logger.Info().
		Str("_version", cmd.Root().Version).
		Str("_cli", cli.String()).
		Msg("Starting kn3d")

	app := fx.New(
		fx.Supply(cfg, logger),
		fx.WithLogger(func(logger zerolog.Logger) fxevent.Logger {
			return &eventLogger{l: logger}
		}),
		internal.Module,
		extra,
	)

	return app, app.Err()
}
