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
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultSKUPrefix  = "PROD"
	orderNumberPrefix = "ORD"

	timestampChars = 6
	randomChars    = 4
	orderDigits    = 8
)

//nolint:gochecknoglobals
var now = time.Now

// GenerateSKU returns an identifier like PROD-LQ3Z8K-4F2A built from the current
// time and random characters. SKUs are unique in practice only and must be
// backed by a uniqueness constraint where it matters.
func GenerateSKU(prefix string) string {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if len(prefix) == 0 {
		prefix = DefaultSKUPrefix
	}

	stamp := strconv.FormatInt(now().UnixMilli(), 36) //nolint:mnd

	return fmt.Sprintf("%s-%s-%s", prefix, strings.ToUpper(lastN(stamp, timestampChars)), randomToken())
}

// GenerateOrderNumber returns an identifier like ORD-48213377-7QX2. The same
// uniqueness caveats as for GenerateSKU apply.
func GenerateOrderNumber() string {
	stamp := fmt.Sprintf("%0*d", orderDigits, now().UnixMilli())

	return fmt.Sprintf("%s-%s-%s", orderNumberPrefix, lastN(stamp, orderDigits), randomToken())
}

func randomToken() string {
	id := uuid.New()
	// the trailing digits of the random bytes are uniformly distributed, the leading ones are not
	token := strconv.FormatUint(binary.BigEndian.Uint64(id[8:]), 36) //nolint:mnd

	if len(token) < randomChars {
		token = strings.Repeat("0", randomChars-len(token)) + token
	}

	return strings.ToUpper(lastN(token, randomChars))
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[len(s)-n:]
}
