// Copyright 2026 The headerkey Authors
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
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/headerkey/internal/handler/service"
	"github.com/dadrus/headerkey/internal/x/stringx"
)

var errUnexpectedStatus = errors.New("unexpected HTTP status code")

// nolint: gochecknoglobals
var healthCmd = &cobra.Command{
	Use:     "health",
	Short:   "Checks the health status of a headerkey deployment",
	Example: "headerkey health -e http://localhost:4460",
	Run: func(cmd *cobra.Command, _ []string) {
		endpointURL, _ := cmd.Flags().GetString("endpoint")
		outputFormat, _ := cmd.Flags().GetString("output")

		out, err := checkHealth(cmd.Context(), endpointURL, outputFormat)
		if err != nil {
			cmd.PrintErrln(err)
			osExit(-1)

			return
		}

		cmd.Println(out)
	},
}

// nolint: gochecknoglobals
var osExit = os.Exit

// nolint: gochecknoinits
func init() {
	RootCmd.AddCommand(healthCmd)

	healthCmd.PersistentFlags().StringP("endpoint", "e", "http://localhost:4460",
		"The base URL of the headerkey deployment")
	healthCmd.PersistentFlags().StringP("output", "o", "text", `The format for the result output.
Can be "json", "text", or "yaml".`)
}

func checkHealth(ctx context.Context, endpointURL, outputFormat string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second) //nolint:mnd
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpointURL+service.EndpointHealth, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s", errUnexpectedStatus, resp.Status)
	}

	rawResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var structuredResponse map[string]any
	if err = json.Unmarshal(rawResp, &structuredResponse); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	switch outputFormat {
	case "json":
		return stringx.ToString(rawResp), nil
	case "yaml":
		rawYaml, err := yaml.Marshal(structuredResponse)
		if err != nil {
			return "", fmt.Errorf("failed to convert response to yaml: %w", err)
		}

		return stringx.ToString(rawYaml), nil
	default:
		return fmt.Sprintf("%v", structuredResponse["status"]), nil
	}
}
