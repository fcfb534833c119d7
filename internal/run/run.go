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

// Package run executes the signal check pipeline for a single source file.
package run

import (
	"context"
	"fmt"
	"go/token"
	"log/slog"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/signalcall/internal/astutil"
	"fillmore-labs.com/signalcall/internal/config"
	"fillmore-labs.com/signalcall/internal/declared"
	"fillmore-labs.com/signalcall/internal/report"
	"fillmore-labs.com/signalcall/internal/usage"
)

// Run checks a single source file. The file is registered with fset, diagnostic positions refer to it.
func (r *Options) Run(ctx context.Context, fset *token.FileSet, filename string, src []byte) ([]analysis.Diagnostic, error) {
	ctx, task := trace.NewTask(ctx, "SignalCall")
	defer task.End()

	trace.Log(ctx, "file", filename)

	tree, err := r.Parser.Parse(ctx, filename, src)
	if err != nil {
		return nil, err
	}

	currentFile := astutil.NewCurrentFile(fset, tree)
	if !currentFile.Valid() {
		return nil, fmt.Errorf("%s: file without valid info", filename)
	}

	// Skip generated files
	if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
		r.Logger.LogAttrs(ctx, slog.LevelDebug, "Skipping generated file", slog.String("file", filename))

		return nil, nil
	}

	honorNoLint := r.Behavior.Enabled(config.HonorNoLint)

	// Skip files with nolint comment
	if honorNoLint && currentFile.NoLintFile() {
		r.Logger.LogAttrs(ctx, slog.LevelDebug, "Skipping file with nolint comment", slog.String("file", filename))

		return nil, nil
	}

	o, err := declared.New(tree)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	var diagnostics []analysis.Diagnostic

	emitter := report.NewEmitter(currentFile, func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) })

	region := trace.StartRegion(ctx, "Classify")
	defer region.End()

	classifier := usage.NewClassifier(tree, o)
	for occurrence := range classifier.Violations() {
		if honorNoLint && currentFile.NoLintComment(occurrence) {
			continue
		}

		emitter.Emit(occurrence)
	}

	r.Logger.LogAttrs(ctx, slog.LevelDebug, "Checked file",
		slog.String("file", filename), slog.Int("diagnostics", len(diagnostics)))

	return diagnostics, nil
}
