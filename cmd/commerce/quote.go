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
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/snestors/kn3d/cmd/flags"
	"github.com/snestors/kn3d/internal/commerce"
	"github.com/snestors/kn3d/internal/kn3d"
	"github.com/snestors/kn3d/internal/x/errorchain"
)

const (
	itemFlag      = "item"
	thresholdFlag = "threshold"
	taxRateFlag   = "tax-rate"
	symbolFlag    = "symbol"
)

func NewQuoteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Computes the totals of an order",
		Long: "Computes subtotal, shipping, tax and total of an order. Every item is given as\n" +
			"[name=]price[:quantity], the quantity defaults to 1.",
		Example: "kn3d quote --item 'PLA Negro=59.90:2' --item 129",
		Args:    cobra.NoArgs,
		RunE:    runQuote,
	}

	cmd.Flags().StringArray(itemFlag, nil, "Order item as [name=]price[:quantity]")
	cmd.Flags().Float64(thresholdFlag, commerce.DefaultFreeShippingThreshold,
		"Subtotal from which on shipping is free")
	cmd.Flags().Float64(taxRateFlag, commerce.DefaultTaxRate, "Tax rate applied to the subtotal")
	cmd.Flags().String(symbolFlag, commerce.DefaultCurrencySymbol, "Currency symbol used in text output")
	flags.RegisterOutputFlag(cmd)

	return cmd
}

func runQuote(cmd *cobra.Command, _ []string) error {
	entries, _ := cmd.Flags().GetStringArray(itemFlag)
	threshold, _ := cmd.Flags().GetFloat64(thresholdFlag)
	taxRate, _ := cmd.Flags().GetFloat64(taxRateFlag)
	symbol, _ := cmd.Flags().GetString(symbolFlag)

	items := make([]commerce.LineItem, len(entries))

	for idx, entry := range entries {
		item, err := parseItem(idx, entry)
		if err != nil {
			return err
		}

		items[idx] = item
	}

	quote, err := commerce.Pricing{FreeShippingThreshold: threshold, TaxRate: taxRate}.Quote(items)
	if err != nil {
		return err
	}

	return render(cmd, quote, func(cmd *cobra.Command) {
		printQuote(cmd, quote, commerce.PriceFormatter{Symbol: symbol})
	})
}

func parseItem(idx int, entry string) (commerce.LineItem, error) {
	name, value, named := strings.Cut(entry, "=")
	if !named {
		name, value = "item #"+strconv.Itoa(idx+1), entry
	}

	rawPrice, rawQuantity, withQuantity := strings.Cut(value, ":")

	price, err := cast.ToFloat64E(strings.TrimSpace(rawPrice))
	if err != nil {
		return commerce.LineItem{}, errorchain.NewWithMessagef(kn3d.ErrArgument,
			"invalid price in item %q", entry).CausedBy(err)
	}

	quantity := 1
	if withQuantity {
		if quantity, err = cast.ToIntE(strings.TrimSpace(rawQuantity)); err != nil {
			return commerce.LineItem{}, errorchain.NewWithMessagef(kn3d.ErrArgument,
				"invalid quantity in item %q", entry).CausedBy(err)
		}
	}

	return commerce.LineItem{Name: strings.TrimSpace(name), UnitPrice: price, Quantity: quantity}, nil
}

func printQuote(cmd *cobra.Command, quote commerce.Quote, formatter commerce.PriceFormatter) {
	rows := make([][]string, len(quote.Lines))
	for idx, line := range quote.Lines {
		rows[idx] = []string{
			line.Name,
			strconv.Itoa(line.Quantity),
			formatter.Format(line.UnitPrice),
			formatter.Format(line.Amount),
		}
	}

	tbl := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderHeader(false).
		Headers("Item", "Qty", "Unit price", "Amount").
		Rows(rows...)

	cmd.Println(tbl.String())

	shipping := formatter.Format(quote.Shipping)
	if quote.FreeShipping {
		shipping += " (free)"
	}

	cmd.Printf("Subtotal: %s\n", formatter.Format(quote.Subtotal))
	cmd.Printf("Shipping: %s\n", shipping)
	cmd.Printf("Tax:      %s\n", formatter.Format(quote.Tax))
	cmd.Printf("Total:    %s\n", formatter.Format(quote.Total))
}
