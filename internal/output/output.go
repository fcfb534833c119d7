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

// Package output prints signalcall diagnostics.
package output

import (
	"encoding/json"
	"fmt"
	"go/token"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
	"golang.org/x/tools/go/analysis"
)

// Printer writes diagnostics in a configured [Format].
type Printer struct {
	w      io.Writer
	format Format

	posn *color.Color
}

// NewPrinter creates a [Printer] writing to w.
func NewPrinter(w io.Writer, format Format, mode ColorMode) *Printer {
	p := &Printer{
		w:      w,
		format: format,
		posn:   color.New(color.Bold),
	}

	if useColor(w, mode) {
		p.posn.EnableColor()
	} else {
		p.posn.DisableColor()
	}

	return p
}

func useColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorOn:
		return true

	case ColorOff:
		return false

	default:
		f, ok := w.(*os.File)

		return ok && term.IsTerminal(int(f.Fd())) && os.Getenv("NO_COLOR") == ""
	}
}

// Print writes the diagnostics, resolving their positions in fset.
func (p *Printer) Print(fset *token.FileSet, diagnostics []analysis.Diagnostic) error {
	switch p.format {
	case FormatJSON:
		return p.printJSON(fset, diagnostics)

	default:
		return p.printText(fset, diagnostics)
	}
}

func (p *Printer) printText(fset *token.FileSet, diagnostics []analysis.Diagnostic) error {
	for _, d := range diagnostics {
		if _, err := fmt.Fprintf(p.w, "%s: %s\n", p.posn.Sprint(fset.Position(d.Pos)), d.Message); err != nil {
			return fmt.Errorf("print diagnostic: %w", err)
		}
	}

	return nil
}

// jsonDiagnostic mirrors the diagnostic records of the go/analysis JSON output.
type jsonDiagnostic struct {
	Category string `json:"category,omitempty"`
	Posn     string `json:"posn"`
	Message  string `json:"message"`
}

func (p *Printer) printJSON(fset *token.FileSet, diagnostics []analysis.Diagnostic) error {
	out := make([]jsonDiagnostic, 0, len(diagnostics))
	for _, d := range diagnostics {
		out = append(out, jsonDiagnostic{
			Category: d.Category,
			Posn:     fset.Position(d.Pos).String(),
			Message:  d.Message,
		})
	}

	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "\t")

	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("print diagnostics: %w", err)
	}

	return nil
}
