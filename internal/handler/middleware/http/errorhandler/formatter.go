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

package errorhandler

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/iancoleman/strcase"
	"github.com/rs/zerolog"

	"github.com/snestors/kn3d/internal/x/errorchain"
)

type errorBody struct {
	Code string `json:"code"`
}

func errorWriter(o *opts, code int, clientError bool) func(rw http.ResponseWriter, req *http.Request, err error) {
	return func(rw http.ResponseWriter, req *http.Request, err error) {
		body, fErr := format(err, code, clientError || o.verboseErrors)
		if fErr != nil {
			zerolog.Ctx(req.Context()).Warn().Err(fErr).Msg("Failed rendering error response. No body is sent")
		}

		if len(body) != 0 {
			rw.Header().Set("Content-Type", "application/json")
			rw.Header().Set("X-Content-Type-Options", "nosniff")
		}

		rw.WriteHeader(code)

		if len(body) != 0 {
			_, _ = rw.Write(body)
		}
	}
}

func format(err error, code int, withDetails bool) ([]byte, error) {
	var chain *errorchain.ErrorChain

	if withDetails && errors.As(err, &chain) {
		return json.Marshal(chain)
	}

	return json.Marshal(errorBody{Code: strcase.ToLowerCamel(http.StatusText(code))})
}
