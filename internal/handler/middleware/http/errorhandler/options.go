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

import "net/http"

type opts struct {
	verboseErrors   bool
	onArgumentError func(rw http.ResponseWriter, req *http.Request, err error)
	onNotFoundError func(rw http.ResponseWriter, req *http.Request, err error)
	onInternalError func(rw http.ResponseWriter, req *http.Request, err error)
}

type Option func(*opts)

func WithArgumentErrorCode(code int) Option {
	return func(o *opts) {
		if code != 0 {
			o.onArgumentError = errorWriter(o, code, true)
		}
	}
}

func WithNotFoundErrorCode(code int) Option {
	return func(o *opts) {
		if code != 0 {
			o.onNotFoundError = errorWriter(o, code, true)
		}
	}
}

func WithInternalServerErrorCode(code int) Option {
	return func(o *opts) {
		if code != 0 {
			o.onInternalError = errorWriter(o, code, false)
		}
	}
}

// WithVerboseErrors makes the messages of internal errors part of the response.
// Messages of client errors are always sent.
func WithVerboseErrors(flag bool) Option {
	return func(o *opts) {
		o.verboseErrors = flag
	}
}

func defaultOptions() *opts {
	defaults := &opts{}
	defaults.onArgumentError = errorWriter(defaults, http.StatusBadRequest, true)
	defaults.onNotFoundError = errorWriter(defaults, http.StatusNotFound, true)
	defaults.onInternalError = errorWriter(defaults, http.StatusInternalServerError, false)

	return defaults
}
