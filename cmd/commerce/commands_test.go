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
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/snestors/kn3d/internal/commerce"
	"github.com/snestors/kn3d/internal/kn3d"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	buf := bytes.NewBuffer([]byte{})
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{}, args...))
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()

	return buf.String(), err
}

func TestParseItem(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc       string
		entry    string
		expItem  commerce.LineItem
		expError bool
	}{
		{uc: "price only", entry: "129", expItem: commerce.LineItem{Name: "item #3", UnitPrice: 129, Quantity: 1}},
		{uc: "price and quantity", entry: "59.9:2", expItem: commerce.LineItem{Name: "item #3", UnitPrice: 59.9, Quantity: 2}},
		{
			uc:      "named item",
			entry:   "PLA Negro = 59.9 : 2",
			expItem: commerce.LineItem{Name: "PLA Negro", UnitPrice: 59.9, Quantity: 2},
		},
		{uc: "invalid price", entry: "cheap:2", expError: true},
		{uc: "invalid quantity", entry: "10:many", expError: true},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			// WHEN
			item, err := parseItem(2, tc.entry)

			// THEN
			if tc.expError {
				require.Error(t, err)
				require.ErrorIs(t, err, kn3d.ErrArgument)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expItem, item)
			}
		})
	}
}

func TestQuoteCommand(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		args   []string
		assert func(t *testing.T, out string, err error)
	}{
		{
			uc:   "text output",
			args: []string{"--item", "PLA Negro=59.90:2"},
			assert: func(t *testing.T, out string, err error) {
				t.Helper()

				require.NoError(t, err)
				assert.Contains(t, out, "PLA Negro")
				assert.Contains(t, out, "Subtotal: S/ 119.80")
				assert.Contains(t, out, "Shipping: S/ 15.00")
				assert.Contains(t, out, "Tax:      S/ 21.56")
				assert.Contains(t, out, "Total:    S/ 156.36")
			},
		},
		{
			uc:   "free shipping with custom parameters",
			args: []string{"--item", "100", "--threshold", "50", "--tax-rate", "0", "--symbol", "$"},
			assert: func(t *testing.T, out string, err error) {
				t.Helper()

				require.NoError(t, err)
				assert.Contains(t, out, "Shipping: $ 0.00 (free)")
				assert.Contains(t, out, "Total:    $ 100.00")
			},
		},
		{
			uc:   "json output",
			args: []string{"--item", "10:3", "-o", "json"},
			assert: func(t *testing.T, out string, err error) {
				t.Helper()

				require.NoError(t, err)

				var quote commerce.Quote
				require.NoError(t, json.Unmarshal([]byte(out), &quote))
				assert.InDelta(t, 30, quote.Subtotal, 1e-9)
				assert.InDelta(t, 15, quote.Shipping, 1e-9)
				assert.InDelta(t, 5.4, quote.Tax, 1e-9)
				assert.InDelta(t, 50.4, quote.Total, 1e-9)
			},
		},
		{
			uc:   "yaml output",
			args: []string{"--item", "250", "-o", "yaml"},
			assert: func(t *testing.T, out string, err error) {
				t.Helper()

				require.NoError(t, err)

				var quote commerce.Quote
				require.NoError(t, yaml.Unmarshal([]byte(out), &quote))
				assert.True(t, quote.FreeShipping)
				assert.InDelta(t, 295, quote.Total, 1e-9)
			},
		},
		{
			uc:   "no items",
			args: []string{},
			assert: func(t *testing.T, _ string, err error) {
				t.Helper()

				require.ErrorIs(t, err, kn3d.ErrArgument)
			},
		},
		{
			uc:   "invalid quantity",
			args: []string{"--item", "10:0"},
			assert: func(t *testing.T, _ string, err error) {
				t.Helper()

				require.ErrorIs(t, err, kn3d.ErrArgument)
			},
		},
		{
			uc:   "unsupported output format",
			args: []string{"--item", "10", "-o", "xml"},
			assert: func(t *testing.T, _ string, err error) {
				t.Helper()

				require.ErrorIs(t, err, kn3d.ErrArgument)
			},
		},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			// WHEN
			out, err := execute(t, NewQuoteCommand(), tc.args...)

			// THEN
			tc.assert(t, out, err)
		})
	}
}

func TestSKUCommand(t *testing.T) {
	t.Parallel()

	// WHEN
	out, err := execute(t, NewSKUCommand(), "--prefix", "pla", "--count", "3")

	// THEN
	require.NoError(t, err)

	skus := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, skus, 3)

	for _, sku := range skus {
		assert.Regexp(t, `^PLA-[0-9A-Z]{6}-[0-9A-Z]{4}$`, sku)
	}
}

func TestOrderNumberCommand(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc       string
		args     []string
		expCount int
		expError bool
	}{
		{uc: "single order number", expCount: 1},
		{uc: "several order numbers", args: []string{"--count", "2"}, expCount: 2},
		{uc: "invalid count", args: []string{"--count", "0"}, expError: true},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			// WHEN
			out, err := execute(t, NewOrderNumberCommand(), tc.args...)

			// THEN
			if tc.expError {
				require.ErrorIs(t, err, kn3d.ErrArgument)

				return
			}

			require.NoError(t, err)

			numbers := strings.Split(strings.TrimSpace(out), "\n")
			require.Len(t, numbers, tc.expCount)

			for _, number := range numbers {
				assert.Regexp(t, `^ORD-\d{8}-[0-9A-Z]{4}$`, number)
			}
		})
	}
}

func TestSlugifyCommand(t *testing.T) {
	t.Parallel()

	// WHEN
	out, err := execute(t, NewSlugifyCommand(), "Filamento", "PLA", "Ñandú")

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "filamento-pla-nandu\n", out)
}

func TestTruncateCommand(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc       string
		args     []string
		expOut   string
		expError bool
	}{
		{uc: "short text", args: []string{"20", "Resina", "UV"}, expOut: "Resina UV\n"},
		{uc: "long text", args: []string{"9", "Filamento de alta calidad"}, expOut: "Filamento...\n"},
		{uc: "invalid length", args: []string{"ten", "text"}, expError: true},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			// WHEN
			out, err := execute(t, NewTruncateCommand(), tc.args...)

			// THEN
			if tc.expError {
				require.ErrorIs(t, err, kn3d.ErrArgument)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expOut, out)
			}
		})
	}
}
