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
	"net/http"

	"github.com/justinas/alice"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/snestors/kn3d/internal/config"
	"github.com/snestors/kn3d/internal/handler/middleware/http/accesslog"
	"github.com/snestors/kn3d/internal/handler/middleware/http/dump"
	"github.com/snestors/kn3d/internal/handler/middleware/http/errorhandler"
	"github.com/snestors/kn3d/internal/handler/middleware/http/passthrough"
	"github.com/snestors/kn3d/internal/handler/middleware/http/recovery"
	"github.com/snestors/kn3d/internal/handler/middleware/http/trustedproxy"
	"github.com/snestors/kn3d/internal/logging"
	"github.com/snestors/kn3d/internal/x"
)

func newService(
	conf *config.Configuration,
	handler http.Handler,
	eh errorhandler.ErrorHandler,
	log zerolog.Logger,
) *http.Server {
	cfg := conf.Serve

	hc := alice.New(
		trustedproxy.New(log, cfg.TrustedProxies...),
		accesslog.New(log),
		dump.New(),
		recovery.New(eh),
		x.IfThenElseExec(cfg.CORS.Enabled(),
			func() func(http.Handler) http.Handler {
				return cors.New(
					cors.Options{
						AllowedOrigins: cfg.CORS.AllowedOrigins,
						AllowedMethods: x.IfThenElse(len(cfg.CORS.AllowedMethods) != 0,
							cfg.CORS.AllowedMethods,
							[]string{http.MethodGet, http.MethodPost}),
						AllowedHeaders: []string{"Content-Type"},
						MaxAge:         int(cfg.CORS.MaxAge.Seconds()),
					},
				).Handler
			},
			func() func(http.Handler) http.Handler { return passthrough.New },
		),
	).Then(handler)

	return &http.Server{
		Handler:      hc,
		Addr:         cfg.Address(),
		ReadTimeout:  cfg.Timeout.Read,
		WriteTimeout: cfg.Timeout.Write,
		IdleTimeout:  cfg.Timeout.Idle,
		ErrorLog:     logging.NewStdLogger(log),
	}
}
