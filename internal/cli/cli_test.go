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

package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	. "fillmore-labs.com/signalcall/internal/cli"
)

func TestMain_archives(t *testing.T) {
	t.Parallel()

	archives, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range archives {
		t.Run(strings.TrimSuffix(filepath.Base(name), ".txtar"), func(t *testing.T) {
			t.Parallel()

			ar, err := txtar.ParseFile(name)
			if err != nil {
				t.Fatalf("Can't parse archive: %v", err)
			}

			dir := t.TempDir()
			args, exit, wantStdout := extract(t, ar, dir)

			var stdout, stderr bytes.Buffer
			code := Main(context.Background(), args, &stdout, &stderr)

			if code != exit {
				t.Errorf("Exit code %d, want %d (stderr %q)", code, exit, stderr.String())
			}

			if got := strings.ReplaceAll(stdout.String(), dir, "$DIR"); got != wantStdout {
				t.Errorf("Got stdout:\n%s\nwant:\n%s", got, wantStdout)
			}

			if exit == ExitError && stderr.Len() == 0 {
				t.Error("Expected an error message")
			}
		})
	}
}

// extract writes the archive files into dir and returns the arguments, expected exit code and output.
func extract(tb testing.TB, ar *txtar.Archive, dir string) (args []string, exit int, stdout string) {
	tb.Helper()

	for line := range strings.Lines(string(ar.Comment)) {
		key, value, ok := strings.Cut(strings.TrimSpace(line), ": ")
		if !ok {
			continue
		}

		switch key {
		case "args":
			for arg := range strings.FieldsSeq(value) {
				args = append(args, strings.ReplaceAll(arg, "$DIR", dir))
			}

		case "exit":
			var err error
			if exit, err = strconv.Atoi(value); err != nil {
				tb.Fatalf("Invalid exit code %q: %v", value, err)
			}
		}
	}

	for _, f := range ar.Files {
		if f.Name == "stdout" {
			stdout = string(f.Data)

			continue
		}

		name := filepath.Join(dir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
			tb.Fatal(err)
		}

		if err := os.WriteFile(name, f.Data, 0o600); err != nil {
			tb.Fatal(err)
		}
	}

	return args, exit, stdout
}

func TestMain_help(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	if code := Main(context.Background(), []string{"--help"}, &stdout, &stderr); code != ExitOK {
		t.Errorf("Exit code %d, want %d", code, ExitOK)
	}

	for _, flag := range []string{"--config", "--format", "--color", "--generated", "--nolint", "--jobs", "--verbose"} {
		if !strings.Contains(stdout.String(), flag) {
			t.Errorf("Usage is missing %s", flag)
		}
	}
}

func TestMain_invalidFlag(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	if code := Main(context.Background(), []string{"--format", "xml", "."}, &stdout, &stderr); code != ExitError {
		t.Errorf("Exit code %d, want %d", code, ExitError)
	}

	if !strings.Contains(stderr.String(), "unknown output format") {
		t.Errorf("Unexpected error output %q", stderr.String())
	}
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{
		"a.ts", "b.tsx", "c.mts", "d.cts", "e.d.ts", "f.js",
		"sub/g.ts", "sub/g.spec.ts", "node_modules/x/h.ts", ".git/i.ts", "docs/index.md",
	} {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(path, nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	explicit := filepath.Join(dir, "e.d.ts")

	got, err := Discover([]string{dir, explicit, filepath.Join(dir, "sub")}, []string{"*.spec.ts"})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	var rel []string
	for _, name := range got {
		r, _ := filepath.Rel(dir, name)
		rel = append(rel, filepath.ToSlash(r))
	}

	want := []string{"a.ts", "b.tsx", "c.mts", "d.cts", "sub/g.ts", "e.d.ts"}
	if strings.Join(rel, " ") != strings.Join(want, " ") {
		t.Errorf("Got %q, want %q", rel, want)
	}

	if _, err := Discover([]string{filepath.Join(dir, "sub", "nested")}, nil); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected %v, got %v", os.ErrNotExist, err)
	}

	if _, err := Discover([]string{filepath.Join(dir, "docs")}, nil); !errors.Is(err, ErrNoFiles) {
		t.Errorf("Expected %v, got %v", ErrNoFiles, err)
	}
}
