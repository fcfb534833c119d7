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
	"github.com/spf13/pflag"

	"fillmore-labs.com/signalcall/internal/config"
)

// Flags binds checker options to command line flags.
type Flags struct {
	fs          *pflag.FlagSet
	behavior    config.BitMask[config.Config]
	jobs        int
	maxFileSize int
}

// RegisterFlags registers the checker flags with fs.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	r := defaultRunOptions()
	f := &Flags{fs: fs, behavior: r.behavior, jobs: r.jobs, maxFileSize: r.maxFileSize}

	f.boolVar(config.IncludeGenerated, "generated", "check generated files")
	f.boolVar(config.HonorNoLint, "nolint", "honor nolint and eslint-disable comments")
	fs.IntVarP(&f.jobs, "jobs", "j", f.jobs, "number of files checked concurrently (0: number of CPUs)")
	fs.IntVar(&f.maxFileSize, "max-file-size", f.maxFileSize, "maximum size of a checked file in bytes")

	return f
}

func (f *Flags) boolVar(value config.Config, name, usage string) {
	v := boolValue[config.Config, *config.BitMask[config.Config]]{flags: &f.behavior, value: value}
	f.fs.VarPF(v, name, "", usage).NoOptDefVal = "true"
}

// Options returns the options for all flags set explicitly on the command line.
func (f *Flags) Options() Options {
	var opts Options

	if f.fs.Changed("generated") {
		opts = append(opts, WithGenerated(f.behavior.Enabled(config.IncludeGenerated)))
	}

	if f.fs.Changed("nolint") {
		opts = append(opts, WithNoLint(f.behavior.Enabled(config.HonorNoLint)))
	}

	if f.fs.Changed("jobs") {
		opts = append(opts, WithJobs(f.jobs))
	}

	if f.fs.Changed("max-file-size") {
		opts = append(opts, WithMaxFileSize(f.maxFileSize))
	}

	return opts
}
