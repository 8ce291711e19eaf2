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

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/snestors/kn3d/internal/catalog"
	"github.com/snestors/kn3d/internal/config"
	"github.com/snestors/kn3d/internal/handler/fxlcm"
	"github.com/snestors/kn3d/internal/handler/middleware/http/errorhandler"
)

var Module = fx.Options( // nolint: gochecknoglobals
	fx.Provide(
		func(svc *catalog.Service) Catalog { return svc },
		func() errorhandler.ErrorHandler { return errorhandler.New() },
		newHandler,
		newService,
	),
	fx.Invoke(registerHooks),
)

type hooksArgs struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Configuration
	Logger    zerolog.Logger
	Server    *http.Server
}

func registerHooks(args hooksArgs) {
	lcm := &fxlcm.LifecycleManager{
		ServiceName: "API",
		Config:      args.Config.Serve,
		Server:      args.Server,
		Logger:      args.Logger,
	}

	args.Lifecycle.Append(fx.StartStopHook(lcm.Start, lcm.Stop))
}
