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

package output_test

import (
	"bytes"
	"encoding/json"
	"go/token"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/signalcall/internal/output"
)

func diagnostics(tb testing.TB) (*token.FileSet, []analysis.Diagnostic) {
	tb.Helper()

	src := []byte("const a = s;\nconst b = t;\n")

	fset := token.NewFileSet()
	f := fset.AddFile("app.ts", -1, len(src))
	f.SetLinesForContent(src)

	return fset, []analysis.Diagnostic{
		{Pos: f.Pos(10), Category: "enforceSignalCall", Message: "Angular signal 's' should be called with its getter"},
		{Pos: f.Pos(23), Category: "enforceSignalCall", Message: "Angular signal 't' should be called with its getter"},
	}
}

func TestPrinter_text(t *testing.T) {
	t.Parallel()

	fset, diags := diagnostics(t)

	var buf bytes.Buffer
	if err := NewPrinter(&buf, FormatText, ColorOff).Print(fset, diags); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	const want = "app.ts:1:11: Angular signal 's' should be called with its getter\n" +
		"app.ts:2:11: Angular signal 't' should be called with its getter\n"

	if got := buf.String(); got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestPrinter_color(t *testing.T) {
	t.Parallel()

	fset, diags := diagnostics(t)

	var buf bytes.Buffer
	if err := NewPrinter(&buf, FormatText, ColorOn).Print(fset, diags[:1]); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	if got := buf.String(); !strings.HasPrefix(got, "\x1b[1mapp.ts:1:11\x1b[") {
		t.Errorf("Expected bold position, got %q", got)
	}

	buf.Reset()

	if err := NewPrinter(&buf, FormatText, ColorAuto).Print(fset, diags[:1]); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	if got := buf.String(); strings.Contains(got, "\x1b[") {
		t.Errorf("Expected no color for a buffer, got %q", got)
	}
}

func TestPrinter_json(t *testing.T) {
	t.Parallel()

	fset, diags := diagnostics(t)

	var buf bytes.Buffer
	if err := NewPrinter(&buf, FormatJSON, ColorOn).Print(fset, diags); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	var got []struct {
		Category, Posn, Message string
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Invalid JSON %q: %v", buf.String(), err)
	}

	if len(got) != 2 || got[1].Posn != "app.ts:2:11" || got[1].Category != "enforceSignalCall" {
		t.Errorf("Unexpected output %+v", got)
	}

	buf.Reset()

	if err := NewPrinter(&buf, FormatJSON, ColorOff).Print(fset, nil); err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("Got %q, want []", got)
	}
}

func TestModes(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		text   string
		format Format
		mode   ColorMode
	}{
		{"", FormatText, ColorAuto},
		{"json", FormatJSON, ColorAuto},
		{"on", FormatText, ColorOn},
		{"off", FormatText, ColorOff},
		{"xml", FormatText, ColorAuto},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()

			var f Format
			if err := f.Set(tc.text); err == nil && f != tc.format {
				t.Errorf("Format %q: got %s, want %s", tc.text, f, tc.format)
			}

			var m ColorMode
			if err := m.Set(tc.text); err == nil && m != tc.mode {
				t.Errorf("Color mode %q: got %s, want %s", tc.text, m, tc.mode)
			}
		})
	}

	if err := new(Format).Set("xml"); err == nil {
		t.Error("Expected error for unknown format")
	}

	if got := Format(7).String(); !strings.Contains(got, "unknown") {
		t.Errorf("Got %q for invalid format", got)
	}
}
