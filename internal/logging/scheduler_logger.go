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

package logging

import (
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

// NewSchedulerLogger routes the log output of gocron schedulers to the given logger.
// Scheduler messages are chatty, so info output is demoted to debug.
func NewSchedulerLogger(logger zerolog.Logger) gocron.Logger {
	return schedulerLogger{l: logger.With().Str("_component", "scheduler").Logger()}
}

type schedulerLogger struct {
	l zerolog.Logger
}

func (s schedulerLogger) Debug(msg string, args ...any) { s.l.Debug().Fields(args).Msg(msg) }

func (s schedulerLogger) Info(msg string, args ...any) { s.l.Debug().Fields(args).Msg(msg) }

func (s schedulerLogger) Warn(msg string, args ...any) { s.l.Warn().Fields(args).Msg(msg) }

func (s schedulerLogger) Error(msg string, args ...any) { s.l.Error().Fields(args).Msg(msg) }
