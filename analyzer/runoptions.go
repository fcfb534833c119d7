// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package analyzer

import (
	"log/slog"
	"runtime"

	"fillmore-labs.com/signalcall/internal/config"
	"fillmore-labs.com/signalcall/internal/run"
	"fillmore-labs.com/signalcall/internal/tsparse"
)

// runOptions represent configuration options for the signalcall checker.
type runOptions struct {
	// behavior holds behavioral options.
	behavior config.BitMask[config.Config]

	// jobs is the maximum number of files checked concurrently.
	jobs int

	// maxFileSize is the maximum accepted file size in bytes.
	maxFileSize int

	logger *slog.Logger
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	if r.jobs <= 0 {
		r.jobs = runtime.GOMAXPROCS(0)
	}

	if r.maxFileSize <= 0 {
		r.maxFileSize = tsparse.DefaultMaxFileSize
	}

	return r
}

// defaultRunOptions initializes and returns a new runOptions instance with default values.
func defaultRunOptions() *runOptions {
	return &runOptions{
		behavior:    config.DefaultBehavior(),
		maxFileSize: tsparse.DefaultMaxFileSize,
		logger:      slog.Default(),
	}
}

// fileOptions returns the per-file pipeline configuration.
func (r *runOptions) fileOptions() *run.Options {
	return &run.Options{
		Behavior: r.behavior,
		Parser:   tsparse.New(tsparse.WithMaxFileSize(r.maxFileSize), tsparse.WithLogger(r.logger)),
		Logger:   r.logger,
	}
}
