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

package trustedproxy

import (
	"net"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yl2chen/cidranger"

	"github.com/snestors/kn3d/internal/x/httpx"
)

var forwardingHeaders = []string{ //nolint:gochecknoglobals
	"Forwarded",
	"X-Forwarded-For",
	"X-Forwarded-Proto",
	"X-Forwarded-Host",
}

// New removes the forwarding headers from every request not sent by one of the
// given proxies. Entries are single IPs or CIDR ranges. Unparsable entries are
// logged and ignored.
func New(logger zerolog.Logger, proxies ...string) func(http.Handler) http.Handler {
	ranger := cidranger.NewPCTrieRanger()

	for _, entry := range proxies {
		ipNet, err := parseEntry(entry)
		if err == nil {
			err = ranger.Insert(cidranger.NewBasicRangerEntry(*ipNet))
		}

		if err != nil {
			logger.Warn().Err(err).
				Msgf("Trusted proxies entry %q could not be parsed and will be ignored", entry)

			continue
		}

		if ones, _ := ipNet.Mask.Size(); ones == 0 {
			logger.Warn().Msgf("Configured trusted proxies contain an insecure network: %s", entry)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			if !isTrusted(ranger, httpx.IPFromHostPort(req.RemoteAddr)) {
				for _, name := range forwardingHeaders {
					req.Header.Del(name)
				}
			}

			next.ServeHTTP(rw, req)
		})
	}
}

func isTrusted(ranger cidranger.Ranger, remote string) bool {
	ip := net.ParseIP(remote)
	if ip == nil {
		return false
	}

	ok, err := ranger.Contains(ip)

	return err == nil && ok
}

func parseEntry(entry string) (*net.IPNet, error) {
	if strings.Contains(entry, "/") {
		_, ipNet, err := net.ParseCIDR(entry)

		return ipNet, err
	}

	ip := net.ParseIP(entry)
	if ip == nil {
		return nil, &net.ParseError{Type: "IP address", Text: entry}
	}

	if v4 := ip.To4(); v4 != nil {
		return &net.IPNet{IP: v4, Mask: net.CIDRMask(32, 32)}, nil //nolint:mnd
	}

	return &net.IPNet{IP: ip, Mask: net.CIDRMask(128, 128)}, nil //nolint:mnd
}
