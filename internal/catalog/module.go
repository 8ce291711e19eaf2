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

package catalog

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/snestors/kn3d/internal/cache"
	"github.com/snestors/kn3d/internal/config"
)

//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		newRepository,
		newService,
	),
	fx.Invoke(registerFileWatcher),
)

func newRepository(conf *config.Configuration, logger zerolog.Logger) Repository {
	if len(conf.Catalog.File) == 0 {
		logger.Warn().Msg("No catalog file configured. The catalog is empty.")

		return StaticRepository{}
	}

	logger.Info().Str("_file", conf.Catalog.File).Msg("Using file based catalog")

	return NewFileRepository(conf.Catalog.File)
}

func newService(conf *config.Configuration, repo Repository, cch cache.Cache, logger zerolog.Logger) *Service {
	return NewService(repo, cch, conf.Catalog.TTL, logger)
}

func registerFileWatcher(lc fx.Lifecycle, conf *config.Configuration, svc *Service, logger zerolog.Logger) error {
	if len(conf.Catalog.File) == 0 || !conf.Catalog.Watch {
		return nil
	}

	fw, err := newFileWatcher(conf.Catalog.File, svc.Invalidate, logger)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{OnStart: fw.Start, OnStop: fw.Stop})

	return nil
}
