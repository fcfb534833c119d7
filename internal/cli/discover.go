// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoFiles is returned when no TypeScript sources were found.
var ErrNoFiles = errors.New("no TypeScript files found")

var (
	sourceExtensions      = [...]string{".ts", ".tsx", ".mts", ".cts"}
	declarationExtensions = [...]string{".d.ts", ".d.mts", ".d.cts"}
)

// Discover returns the TypeScript sources named by paths. Directories are walked in lexical order.
// Files named explicitly are always included, discovered files are filtered by extension and
// the exclude glob patterns, which match either the base name or the slash separated path.
func Discover(paths, exclude []string) ([]string, error) {
	var files []string

	seen := make(map[string]struct{})
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}

		seen[name] = struct{}{}
		files = append(files, name)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("discover: %w", err)
		}

		if !info.IsDir() {
			add(root)

			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			name := d.Name()

			if d.IsDir() {
				if path != root && (name == "node_modules" || strings.HasPrefix(name, ".") || excluded(path, exclude)) {
					return filepath.SkipDir
				}

				return nil
			}

			if d.Type().IsRegular() && isSource(name) && !excluded(path, exclude) {
				add(path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("discover %s: %w", root, err)
		}
	}

	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	return files, nil
}

func isSource(name string) bool {
	for _, ext := range declarationExtensions {
		if strings.HasSuffix(name, ext) {
			return false
		}
	}

	for _, ext := range sourceExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}

	return false
}

func excluded(path string, exclude []string) bool {
	base, slashed := filepath.Base(path), filepath.ToSlash(path)

	for _, pattern := range exclude {
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}

		if ok, _ := filepath.Match(pattern, slashed); ok {
			return true
		}
	}

	return false
}
