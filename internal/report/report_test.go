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

package report_test

import (
	"go/token"
	"testing"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/signalcall/internal/astutil"
	. "fillmore-labs.com/signalcall/internal/report"
	"fillmore-labs.com/signalcall/internal/testsource"
)

func TestEmit(t *testing.T) {
	t.Parallel()

	fset := token.NewFileSet()
	tree := testsource.Parse(t, "const alias = count;\n")
	file := astutil.NewCurrentFile(fset, tree)

	var diagnostics []analysis.Diagnostic

	e := NewEmitter(file, func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) })

	occ := testsource.Find(t, tree, "count", 0)
	e.Emit(occ)
	e.Emit(occ)

	if len(diagnostics) != 2 {
		t.Fatalf("Got %d diagnostics, want one per call", len(diagnostics))
	}

	d := diagnostics[0]

	if d.Category != Category {
		t.Errorf("Category = %q, want %q", d.Category, Category)
	}

	if want := "Angular signal 'count' should be called with its getter"; d.Message != want {
		t.Errorf("Message = %q, want %q", d.Message, want)
	}

	if got := fset.Position(d.Pos); got.Line != 1 || got.Column != 15 {
		t.Errorf("Position = %v, want 1:15", got)
	}

	if d.End-d.Pos != token.Pos(len("count")) {
		t.Errorf("Range length = %d, want %d", d.End-d.Pos, len("count"))
	}

	if len(d.SuggestedFixes) != 0 || len(d.Related) != 0 {
		t.Error("Unexpected fixes or related information")
	}
}
