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

// Package settings reads signalcall configuration files.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	signalcall "fillmore-labs.com/signalcall/analyzer"
)

// DefaultFile is the configuration file read when none is given explicitly.
const DefaultFile = ".signalcall.yaml"

// Settings represents the configuration options of a signalcall run.
type Settings struct {
	// Generated enables checks of generated files.
	Generated *bool `yaml:"generated"`
	// NoLint enables suppression by nolint and eslint-disable comments.
	NoLint *bool `yaml:"nolint"`
	// Jobs sets the number of files checked concurrently.
	Jobs *int `yaml:"jobs"`
	// MaxFileSize sets the maximum size of a checked file in bytes.
	MaxFileSize *int `yaml:"max-file-size"`
	// Exclude lists glob patterns of paths not to check.
	Exclude []string `yaml:"exclude"`
}

// Options converts [Settings] into a list of [signalcall.Option] for the checker.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []signalcall.Option {
	var opts []signalcall.Option

	opts = appendOption(opts, s.Generated, signalcall.WithGenerated)
	opts = appendOption(opts, s.NoLint, signalcall.WithNoLint)
	opts = appendOption(opts, s.Jobs, signalcall.WithJobs)
	opts = appendOption(opts, s.MaxFileSize, signalcall.WithMaxFileSize)

	return opts
}

// appendOption appends a non-nil setting to a [signalcall.Option] list.
func appendOption[T any](opts []signalcall.Option, value *T, constructor func(T) signalcall.Option) []signalcall.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// Decode reads [Settings] from r, rejecting unknown keys. An empty document yields zero settings.
func Decode(r io.Reader) (Settings, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Settings
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}

	for _, pattern := range s.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return Settings{}, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
	}

	return s, nil
}

// Load reads [Settings] from the named file. When optional is set, a missing file yields zero settings.
func Load(name string, optional bool) (Settings, error) {
	data, err := os.ReadFile(name)
	switch {
	case err == nil:

	case optional && errors.Is(err, fs.ErrNotExist):
		return Settings{}, nil

	default:
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}

	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", name, err)
	}

	return s, nil
}
