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

package commerce

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/snestors/kn3d/internal/commerce"
	"github.com/snestors/kn3d/internal/kn3d"
	"github.com/snestors/kn3d/internal/x/errorchain"
)

const (
	prefixFlag = "prefix"
	countFlag  = "count"
)

func NewSKUCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sku",
		Short:   "Generates product SKUs",
		Example: "kn3d sku --prefix PLA --count 3",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefix, _ := cmd.Flags().GetString(prefixFlag)

			return generate(cmd, func() string { return commerce.GenerateSKU(prefix) })
		},
	}

	cmd.Flags().String(prefixFlag, commerce.DefaultSKUPrefix, "Prefix of the generated SKUs")
	cmd.Flags().Int(countFlag, 1, "Number of SKUs to generate")

	return cmd
}

func NewOrderNumberCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order-number",
		Short: "Generates order numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return generate(cmd, commerce.GenerateOrderNumber)
		},
	}

	cmd.Flags().Int(countFlag, 1, "Number of order numbers to generate")

	return cmd
}

func generate(cmd *cobra.Command, next func() string) error {
	count, _ := cmd.Flags().GetInt(countFlag)
	if count <= 0 {
		return errorchain.NewWithMessagef(kn3d.ErrArgument, "count must be positive, got %d", count)
	}

	ids := make([]string, count)
	for idx := range ids {
		ids[idx] = next()
	}

	cmd.Println(strings.Join(ids, "\n"))

	return nil
}
