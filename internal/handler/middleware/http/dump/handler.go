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

package dump

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httputil"
	"strings"

	"github.com/felixge/httpsnoop"
	"github.com/rs/zerolog"
)

// maxDumpedBodySize limits the part of a response body written to the log.
const maxDumpedBodySize = 4 << 10

// New dumps requests and responses with the logger stored in the request
// context. Nothing is dumped unless that logger runs at trace level.
func New() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			logger := zerolog.Ctx(req.Context())

			if logger.GetLevel() != zerolog.TraceLevel {
				next.ServeHTTP(rw, req)

				return
			}

			contentType := req.Header.Get("Content-Type")
			if dump, err := httputil.DumpRequest(req,
				req.ContentLength != 0 && !strings.Contains(contentType, "stream")); err == nil {
				logger.Trace().Msgf("Request: %s\n", dump)
			} else {
				logger.Trace().Err(err).Msg("Failed dumping request")
			}

			var (
				code   = http.StatusOK
				body   bytes.Buffer
				header http.Header
			)

			next.ServeHTTP(httpsnoop.Wrap(rw, httpsnoop.Hooks{
				WriteHeader: func(writeHeader httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
					return func(statusCode int) {
						if header == nil {
							code = statusCode
							header = rw.Header().Clone()
						}

						writeHeader(statusCode)
					}
				},
				Write: func(write httpsnoop.WriteFunc) httpsnoop.WriteFunc {
					return func(data []byte) (int, error) {
						if header == nil {
							header = rw.Header().Clone()
						}

						if remaining := maxDumpedBodySize - body.Len(); remaining > 0 {
							body.Write(data[:min(len(data), remaining)])
						}

						return write(data)
					}
				},
			}), req)

			logger.Trace().Msgf("Response: %s\n", responseDump(req.Proto, code, header, body.Bytes()))
		})
	}
}

func responseDump(proto string, code int, header http.Header, body []byte) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s %03d %s\r\n", proto, code, http.StatusText(code))
	header.Write(&buf) //nolint:errcheck
	buf.WriteString("\r\n")
	buf.Write(body)

	return buf.Bytes()
}
