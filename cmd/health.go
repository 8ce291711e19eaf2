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

package cmd

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/ybbus/httpretry"
	"gopkg.in/yaml.v3"

	"github.com/snestors/kn3d/cmd/flags"
	"github.com/snestors/kn3d/internal/handler/api"
	"github.com/snestors/kn3d/internal/kn3d"
	"github.com/snestors/kn3d/internal/x/errorchain"
)

const (
	healthRequestTimeout = 5 * time.Second
	healthRetryMinDelay  = 100 * time.Millisecond
	healthRetryMaxDelay  = time.Second
)

func init() {
	RootCmd.AddCommand(newHealthCmd())
}

func newHealthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "health",
		Short:   "Checks the health status of a kn3d deployment",
		Example: "kn3d health -e http://localhost:4460",
		RunE: func(cmd *cobra.Command, _ []string) error {
			endpointURL, _ := cmd.Flags().GetString("endpoint")
			outputFormat, _ := cmd.Flags().GetString(flags.Output)
			retries, _ := cmd.Flags().GetInt("retries")

			return checkHealth(cmd, endpointURL, outputFormat, retries)
		},
	}

	cmd.PersistentFlags().StringP("endpoint", "e", "http://localhost:4460",
		"The base URL of kn3d's deployment.")
	cmd.PersistentFlags().Int("retries", 3, //nolint:mnd
		"How often a failed health request is retried before giving up.")
	flags.RegisterOutputFlag(cmd)

	return cmd
}

func checkHealth(cmd *cobra.Command, endpointURL, outputFormat string, retries int) error {
	client := httpretry.NewCustomClient(
		&http.Client{Timeout: healthRequestTimeout},
		httpretry.WithMaxRetryCount(max(retries, 0)),
		httpretry.WithBackoffPolicy(httpretry.ExponentialBackoff(healthRetryMinDelay, healthRetryMaxDelay, 0)))

	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet,
		fmt.Sprintf("%s%s", strings.TrimSuffix(endpointURL, "/"), api.EndpointHealth), nil)
	if err != nil {
		return errorchain.NewWithMessage(kn3d.ErrArgument, "invalid endpoint").CausedBy(err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return errorchain.NewWithMessage(kn3d.ErrInternal, "failed to send request").CausedBy(err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errorchain.NewWithMessagef(kn3d.ErrInternal, "unexpected HTTP status code: %s", resp.Status)
	}

	rawResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return errorchain.NewWithMessage(kn3d.ErrInternal, "failed to read response").CausedBy(err)
	}

	var structuredResponse map[string]any
	if err = json.Unmarshal(rawResp, &structuredResponse); err != nil {
		return errorchain.NewWithMessage(kn3d.ErrInternal, "failed to unmarshal response").CausedBy(err)
	}

	switch outputFormat {
	case "json":
		cmd.Println(string(rawResp))
	case "yaml":
		rawYaml, err := yaml.Marshal(structuredResponse)
		if err != nil {
			return errorchain.NewWithMessage(kn3d.ErrInternal, "failed to convert response to yaml").CausedBy(err)
		}

		cmd.Print(string(rawYaml))
	default:
		cmd.Println(structuredResponse["status"])
	}

	return nil
}
