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
	"github.com/spf13/cobra"

	"github.com/snestors/kn3d/cmd/flags"
	"github.com/snestors/kn3d/internal/catalog"
	"github.com/snestors/kn3d/internal/config"
	"github.com/snestors/kn3d/internal/kn3d"
	"github.com/snestors/kn3d/internal/x/errorchain"
)

const catalogFileFlag = "file"

// NewValidateCatalogCommand represents the "validate catalog" command. The
// catalog file is taken from the --file flag, or from the configuration if
// the flag is not set.
func NewValidateCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "catalog",
		Short:   "Validates a product catalog file",
		Example: "kn3d validate catalog -f products.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, err := validateCatalog(cmd)
			if err != nil {
				return err
			}

			cmd.Printf("Catalog is valid, %d products\n", count)

			return nil
		},
	}

	cmd.Flags().StringP(catalogFileFlag, "f", "", "Path to the catalog file")

	return cmd
}

func validateCatalog(cmd *cobra.Command) (int, error) {
	catalogFile, _ := cmd.Flags().GetString(catalogFileFlag)

	if len(catalogFile) == 0 {
		envPrefix, _ := cmd.Flags().GetString(flags.EnvironmentConfigPrefix)
		configPath, _ := cmd.Flags().GetString(flags.Config)

		conf, err := config.NewConfiguration(config.EnvVarPrefix(envPrefix), config.ConfigurationPath(configPath))
		if err != nil {
			return 0, err
		}

		catalogFile = conf.Catalog.File
	}

	if len(catalogFile) == 0 {
		return 0, errorchain.NewWithMessage(kn3d.ErrArgument, "no catalog file provided")
	}

	products, err := catalog.NewFileRepository(catalogFile).Products(cmd.Context())
	if err != nil {
		return 0, err
	}

	return len(products), nil
}
