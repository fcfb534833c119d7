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
	"context"
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"os"
	"runtime/trace"
	"slices"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"
)

// Public API constants for the signalcall checker.
const (
	Name = "signalcall"
	Doc  = `signalcall detects Angular signals used without calling their getter`
	URL  = "https://pkg.go.dev/fillmore-labs.com/signalcall"
)

// Checker checks TypeScript sources for signals used as plain values.
// It is safe for concurrent use.
type Checker struct {
	r *runOptions
}

// New creates a new instance of the signalcall checker.
// It allows for programmatic configuration using [Option].
func New(opts ...Option) *Checker {
	return &Checker{r: makeRunOptions(opts)}
}

// Source is a file to check. A nil Src is read from Filename.
type Source struct {
	Filename string
	Src      []byte
}

// Result holds the diagnostics of a check.
type Result struct {
	// Fset resolves the positions of the diagnostics.
	Fset *token.FileSet

	// Diagnostics are ordered by file, in argument order, then by position.
	Diagnostics []analysis.Diagnostic
}

// Check checks the given files.
func (c *Checker) Check(ctx context.Context, files ...string) (*Result, error) {
	sources := make([]Source, len(files))
	for i, f := range files {
		sources[i] = Source{Filename: f}
	}

	return c.CheckSources(ctx, sources...)
}

// CheckSources checks the given sources concurrently.
//
// Files that can't be read or parsed are skipped, their errors are joined in the returned error
// while the diagnostics of all other files are still returned. Context cancellation stops the
// check between files.
func (c *Checker) CheckSources(ctx context.Context, sources ...Source) (*Result, error) {
	ctx, task := trace.NewTask(ctx, "Check")
	defer task.End()

	fset := token.NewFileSet()
	results := make([][]analysis.Diagnostic, len(sources))
	errs := make([]error, len(sources))

	run := c.r.fileOptions()

	var g errgroup.Group
	g.SetLimit(c.r.jobs)

	for i, source := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err

				return nil
			}

			src := source.Src
			if src == nil {
				var err error
				if src, err = os.ReadFile(source.Filename); err != nil {
					errs[i] = fmt.Errorf("read %s: %w", source.Filename, err)

					return nil
				}
			}

			results[i], errs[i] = run.Run(ctx, fset, source.Filename, src)

			return nil
		})
	}

	_ = g.Wait() // errors are collected per file

	var diagnostics []analysis.Diagnostic
	for _, r := range results {
		diagnostics = append(diagnostics, r...)
	}

	c.r.logger.LogAttrs(ctx, slog.LevelDebug, "Check finished",
		slog.Int("files", len(sources)), slog.Int("diagnostics", len(diagnostics)))

	return &Result{Fset: fset, Diagnostics: diagnostics}, joinErrors(errs)
}

// joinErrors joins the errors, collapsing repeated context cancellations.
func joinErrors(errs []error) error {
	var canceled bool

	errs = slices.DeleteFunc(errs, func(err error) bool {
		if err == nil {
			return true
		}

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			if canceled {
				return true
			}

			canceled = true
		}

		return false
	})

	return errors.Join(errs...)
}
