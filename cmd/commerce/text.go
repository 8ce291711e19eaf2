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

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/snestors/kn3d/internal/commerce"
	"github.com/snestors/kn3d/internal/kn3d"
	"github.com/snestors/kn3d/internal/x/errorchain"
)

func NewSlugifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "slugify <text>...",
		Short:   "Turns a product name into an URL slug",
		Example: "kn3d slugify Filamento PLA Ñandú 1.75mm",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println(commerce.Slugify(strings.Join(args, " ")))

			return nil
		},
	}
}

func NewTruncateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "truncate <max-length> <text>...",
		Short:   "Shortens a text to the given number of characters",
		Example: "kn3d truncate 20 Filamento de alta calidad para impresoras FDM",
		Args:    cobra.MinimumNArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			maxLength, err := cast.ToIntE(args[0])
			if err != nil {
				return errorchain.NewWithMessagef(kn3d.ErrArgument, "invalid max length %q", args[0]).
					CausedBy(err)
			}

			cmd.Println(commerce.TruncateText(strings.Join(args[1:], " "), maxLength))

			return nil
		},
	}
}
