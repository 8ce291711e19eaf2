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
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/snestors/kn3d/internal/kn3d"
	"github.com/snestors/kn3d/internal/x/errorchain"
)

// fileWatcher calls onChange whenever the watched file is written, created,
// renamed or removed. The parent directory is watched, since editors usually
// replace files instead of writing them in place.
type fileWatcher struct {
	file     string
	onChange func()
	w        *fsnotify.Watcher
	done     chan struct{}
	l        zerolog.Logger
}

func newFileWatcher(file string, onChange func(), logger zerolog.Logger) (*fileWatcher, error) {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return nil, errorchain.NewWithMessage(kn3d.ErrInternal,
			"failed to get the absolute path for the catalog file").CausedBy(err)
	}

	return &fileWatcher{
		file:     absPath,
		onChange: onChange,
		l:        logger.With().Str("_file", absPath).Logger(),
	}, nil
}

func (fw *fileWatcher) Start(_ context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errorchain.NewWithMessage(kn3d.ErrInternal, "failed instantiating catalog file watcher").
			CausedBy(err)
	}

	if err = watcher.Add(filepath.Dir(fw.file)); err != nil {
		_ = watcher.Close()

		return errorchain.NewWithMessage(kn3d.ErrInternal, "failed watching catalog file").
			CausedBy(err)
	}

	fw.w = watcher
	fw.done = make(chan struct{})

	go fw.watch()

	fw.l.Info().Msg("Watching catalog file for changes")

	return nil
}

func (fw *fileWatcher) Stop(_ context.Context) error {
	if fw.w == nil {
		return nil
	}

	err := fw.w.Close()
	<-fw.done

	fw.w = nil

	return err
}

func (fw *fileWatcher) watch() {
	defer close(fw.done)

	const relevant = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

	for {
		select {
		case evt, ok := <-fw.w.Events:
			if !ok {
				return
			}

			if filepath.Clean(evt.Name) != fw.file || evt.Op&relevant == 0 {
				continue
			}

			fw.l.Debug().Str("_event", evt.Op.String()).Msg("Catalog file changed")
			fw.onChange()
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}

			fw.l.Warn().Err(err).Msg("Catalog file watcher error received")
		}
	}
}
