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

// Package report turns classified signal occurrences into diagnostics.
package report

import (
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/signalcall/internal/astutil"
	"fillmore-labs.com/signalcall/internal/tsast"
)

// Category is the diagnostic category of signal usage violations.
const Category = "enforceSignalCall"

// Emitter reports signal usage violations of one file.
type Emitter struct {
	file   astutil.CurrentFile
	report func(analysis.Diagnostic)
}

// NewEmitter creates an [Emitter] passing diagnostics of file to report.
func NewEmitter(file astutil.CurrentFile, report func(analysis.Diagnostic)) Emitter {
	return Emitter{file: file, report: report}
}

// Emit reports exactly one diagnostic for the occurrence.
func (e Emitter) Emit(occurrence tsast.NodeID) {
	pos, end := e.file.Range(occurrence)

	e.report(analysis.Diagnostic{
		Pos:      pos,
		End:      end,
		Category: Category,
		Message:  Message(e.file.Tree().Name(occurrence)),
	})
}

// Message returns the diagnostic message for a signal used without calling its getter.
func Message(name string) string {
	return "Angular signal '" + name + "' should be called with its getter"
}
