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
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snestors/kn3d/internal/handler/api"
	"github.com/snestors/kn3d/internal/kn3d"
)

func TestCheckHealth(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc       string
		status   int
		body     string
		output   string
		expOut   string
		expError error
	}{
		{uc: "text output", status: http.StatusOK, body: `{"status":"ok"}`, output: "text", expOut: "ok\n"},
		{uc: "json output", status: http.StatusOK, body: `{"status":"ok"}`, output: "json", expOut: "{\"status\":\"ok\"}\n"},
		{uc: "yaml output", status: http.StatusOK, body: `{"status":"ok"}`, output: "yaml", expOut: "status: ok\n"},
		{uc: "unhealthy service", status: http.StatusServiceUnavailable, expError: kn3d.ErrInternal},
		{uc: "malformed response", status: http.StatusOK, body: `ok`, output: "text", expError: kn3d.ErrInternal},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			// GIVEN
			srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
				assert.Equal(t, api.EndpointHealth, req.URL.Path)

				rw.WriteHeader(tc.status)
				_, _ = rw.Write([]byte(tc.body))
			}))
			defer srv.Close()

			cmd := newHealthCmd()
			cmd.SetContext(context.Background())

			buf := bytes.NewBuffer([]byte{})
			cmd.SetOut(buf)

			// WHEN
			err := checkHealth(cmd, srv.URL+"/", tc.output, 0)

			// THEN
			if tc.expError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expOut, buf.String())
			}
		})
	}
}

func TestCheckHealthUnreachableEndpoint(t *testing.T) {
	t.Parallel()

	// GIVEN
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	cmd := newHealthCmd()
	cmd.SetContext(context.Background())

	// WHEN
	err := checkHealth(cmd, url, "text", 0)

	// THEN
	require.Error(t, err)
	require.ErrorIs(t, err, kn3d.ErrInternal)
}

func TestCheckHealthRetriesUnavailableService(t *testing.T) {
	t.Parallel()

	// GIVEN
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			rw.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		_, _ = rw.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	cmd := newHealthCmd()
	cmd.SetContext(context.Background())

	buf := bytes.NewBuffer([]byte{})
	cmd.SetOut(buf)

	// WHEN
	err := checkHealth(cmd, srv.URL, "text", 2)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "ok\n", buf.String())
	assert.Equal(t, int32(2), calls.Load())
}
