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

package accesslog

import (
	"net/http"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/rs/zerolog"

	"github.com/snestors/kn3d/internal/x"
	"github.com/snestors/kn3d/internal/x/httpx"
)

// New logs the start and the end of every transaction and makes the request
// scoped logger available to downstream handlers via zerolog.Ctx.
func New(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			start := time.Now()

			logCtx := logger.With().
				Int64("_tx_start", start.Unix()).
				Str("_client_ip", httpx.IPFromHostPort(req.RemoteAddr)).
				Str("_http_method", req.Method).
				Str("_http_path", req.URL.Path).
				Str("_http_user_agent", req.Header.Get("User-Agent")).
				Str("_http_host", req.Host).
				Str("_http_scheme", x.IfThenElse(req.TLS != nil, "https", "http"))

			logCtx = logHeader(req, logCtx, "X-Forwarded-For", "_http_x_forwarded_for")
			logCtx = logHeader(req, logCtx, "X-Request-Id", "_http_x_request_id")

			reqLog := logCtx.Logger()
			req = req.WithContext(reqLog.WithContext(req.Context()))

			accLog := reqLog.Level(zerolog.InfoLevel)
			accLog.Info().Msg("TX started")

			metrics := httpsnoop.CaptureMetrics(next, rw, req)

			event := x.IfThenElseExec(metrics.Code >= http.StatusInternalServerError, accLog.Warn, accLog.Info)

			event.
				Int64("_body_bytes_sent", metrics.Written).
				Int("_http_status_code", metrics.Code).
				Int64("_tx_duration_ms", metrics.Duration.Milliseconds()).
				Msg("TX finished")
		})
	}
}

func logHeader(req *http.Request, logCtx zerolog.Context, headerName, logKey string) zerolog.Context {
	if headerValue := req.Header.Get(headerName); len(headerValue) != 0 {
		logCtx = logCtx.Str(logKey, headerValue)
	}

	return logCtx
}
