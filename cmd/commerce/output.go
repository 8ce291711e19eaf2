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
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/snestors/kn3d/cmd/flags"
	"github.com/snestors/kn3d/internal/kn3d"
	"github.com/snestors/kn3d/internal/x/errorchain"
)

// render writes value in the format selected with the output flag. textFn is
// used for the text format.
func render(cmd *cobra.Command, value any, textFn func(cmd *cobra.Command)) error {
	outputFormat, _ := cmd.Flags().GetString(flags.Output)

	switch outputFormat {
	case "json":
		raw, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return errorchain.NewWithMessage(kn3d.ErrInternal, "failed to render json").CausedBy(err)
		}

		cmd.Println(string(raw))
	case "yaml":
		raw, err := yaml.Marshal(value)
		if err != nil {
			return errorchain.NewWithMessage(kn3d.ErrInternal, "failed to render yaml").CausedBy(err)
		}

		cmd.Print(string(raw))
	case "text", "":
		textFn(cmd)
	default:
		return errorchain.NewWithMessagef(kn3d.ErrArgument, "unsupported output format %q", outputFormat)
	}

	return nil
}
