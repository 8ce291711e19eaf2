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

package internal

import (
	"go.uber.org/fx"

	cachemodule "github.com/snestors/kn3d/internal/cache/module"
	"github.com/snestors/kn3d/internal/catalog"
	"github.com/snestors/kn3d/internal/handler/api"
	"github.com/snestors/kn3d/internal/prometheus"
)

// Module wires the storefront service. The configuration and the logger are
// expected to be supplied by the caller.
var Module = fx.Options( // nolint: gochecknoglobals
	prometheus.Module,
	cachemodule.Module,
	catalog.Module,
	api.Module,
)
