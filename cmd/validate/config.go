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

package validate

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/snestors/kn3d/cmd/flags"
	"github.com/snestors/kn3d/internal/config"
)

var ErrNoConfigFile = errors.New("no config file provided")

// NewValidateConfigCommand represents the "validate config" command.
func NewValidateConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   "Validates kn3d's configuration",
		Example: "kn3d validate config -c myconfig.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateConfig(cmd); err != nil {
				return err
			}

			cmd.Println("Configuration is valid")

			return nil
		},
	}
}

func validateConfig(cmd *cobra.Command) error {
	envPrefix, _ := cmd.Flags().GetString(flags.EnvironmentConfigPrefix)
	configPath, _ := cmd.Flags().GetString(flags.Config)

	if len(configPath) == 0 {
		return ErrNoConfigFile
	}

	_, err := config.NewConfiguration(
		config.EnvVarPrefix(envPrefix),
		config.ConfigurationPath(configPath),
	)

	return err
}
