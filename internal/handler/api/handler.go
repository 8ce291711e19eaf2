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

package api

import (
	"context"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/snestors/kn3d/internal/catalog"
	"github.com/snestors/kn3d/internal/commerce"
	"github.com/snestors/kn3d/internal/config"
	"github.com/snestors/kn3d/internal/handler/middleware/http/errorhandler"
	"github.com/snestors/kn3d/internal/kn3d"
	"github.com/snestors/kn3d/internal/logging"
	"github.com/snestors/kn3d/internal/x"
	"github.com/snestors/kn3d/internal/x/errorchain"
)

const (
	EndpointHealth   = "/health"
	EndpointProducts = "/api/products"
	EndpointQuote    = "/api/quote"

	defaultMetricsPath = "/metrics"
)

// Catalog is the part of catalog.Service the API depends on.
type Catalog interface {
	List(ctx context.Context, filter catalog.Filter) ([]catalog.Product, error)
	BySlug(ctx context.Context, slug string) (catalog.Product, error)
}

type handler struct {
	catalog   Catalog
	pricing   commerce.Pricing
	formatter commerce.PriceFormatter
	eh        errorhandler.ErrorHandler
}

func newHandler(
	conf *config.Configuration,
	cat Catalog,
	eh errorhandler.ErrorHandler,
	gatherer prometheus.Gatherer,
	reg prometheus.Registerer,
	logger zerolog.Logger,
) http.Handler {
	h := &handler{
		catalog: cat,
		pricing: commerce.Pricing{
			FreeShippingThreshold: conf.Pricing.FreeShippingThreshold,
			TaxRate:               conf.Pricing.TaxRate,
		},
		formatter: commerce.PriceFormatter{Symbol: conf.Pricing.CurrencySymbol},
		eh:        eh,
	}

	logger.Debug().Msg("Registering API routes")

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+EndpointHealth, h.handle(health))
	mux.HandleFunc("GET "+EndpointProducts, h.handle(h.listProducts))
	mux.HandleFunc("GET "+EndpointProducts+"/{slug}", h.handle(h.getProduct))
	mux.HandleFunc("POST "+EndpointQuote, h.handle(h.quote))

	if conf.Metrics.Enabled {
		path := x.IfThenElse(len(conf.Metrics.Path) != 0, conf.Metrics.Path, defaultMetricsPath)

		mux.Handle("GET "+path, promhttp.InstrumentMetricHandler(
			reg,
			promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
				Registry: reg,
				ErrorLog: logging.NewStdLogger(logger),
			}),
		))
	}

	return mux
}

func (h *handler) handle(fn func(rw http.ResponseWriter, req *http.Request) error) http.HandlerFunc {
	return func(rw http.ResponseWriter, req *http.Request) {
		if err := fn(rw, req); err != nil {
			h.eh.HandleError(rw, req, err)
		}
	}
}

func health(rw http.ResponseWriter, _ *http.Request) error {
	type status struct {
		Status string `json:"status"`
	}

	return writeJSON(rw, http.StatusOK, status{Status: "ok"})
}

func writeJSON(rw http.ResponseWriter, code int, body any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return errorchain.NewWithMessage(kn3d.ErrInternal, "failed encoding response").CausedBy(err)
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	_, _ = rw.Write(raw)

	return nil
}
