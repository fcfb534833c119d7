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

// Package testsource provides utilities for parsing TypeScript source code in tests.
//
// It is designed to simplify testing of the signal checker components by handling
// common boilerplate for parsing source fragments and locating nodes.
package testsource

import (
	"context"
	"go/token"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"fillmore-labs.com/signalcall/internal/tsast"
	"fillmore-labs.com/signalcall/internal/tsparse"
)

// Parse parses a TypeScript source fragment into a [tsast.Tree].
//
// The fragment is parsed as the content of a file named "test.ts".
func Parse(tb testing.TB, src string) *tsast.Tree {
	tb.Helper()

	return ParseFile(tb, "test.ts", src)
}

// ParseFile parses a TypeScript or TSX source file into a [tsast.Tree].
func ParseFile(tb testing.TB, filename, src string) *tsast.Tree {
	tb.Helper()

	tree, err := tsparse.New().Parse(context.Background(), filename, []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return tree
}

// Find returns the n-th (zero-based) identifier with the given name in source order.
func Find(tb testing.TB, tree *tsast.Tree, name string, n int) tsast.NodeID {
	tb.Helper()

	for id := range tree.Preorder(tsast.Identifier) {
		if tree.Name(id) != name {
			continue
		}

		if n == 0 {
			return id
		}

		n--
	}

	tb.Fatalf("Can't find identifier %q", name)

	return tsast.NoNode
}

// FindKind returns the first node of the given kind enclosing the n-th identifier with the given name.
func FindKind(tb testing.TB, tree *tsast.Tree, kind tsast.Kind, name string, n int) tsast.NodeID {
	tb.Helper()

	id := tree.Enclosing(Find(tb, tree, name, n), kind)
	if !id.Valid() {
		tb.Fatalf("Can't find %v enclosing identifier %q", kind, name)
	}

	return id
}

var wantPattern = regexp.MustCompile(`//\s*want\s+(.*)$`)

// LineOf returns a function converting byte offsets of src into 1-based line numbers.
func LineOf(src []byte) func(offset int) int {
	f := token.NewFileSet().AddFile("", -1, len(src))
	f.SetLinesForContent(src)

	return func(offset int) int { return f.Line(f.Pos(offset)) }
}

// Expectations collects `// want "pattern"` comments, keyed by line number.
// Each quoted pattern is a regular expression expected to match one diagnostic on that line.
func Expectations(tb testing.TB, tree *tsast.Tree, line func(offset int) int) map[int][]*regexp.Regexp {
	tb.Helper()

	want := make(map[int][]*regexp.Regexp)

	for _, c := range tree.Comments {
		m := wantPattern.FindStringSubmatch(c.Text)
		if m == nil {
			continue
		}

		for rest := strings.TrimSpace(m[1]); rest != ""; {
			quoted, err := strconv.QuotedPrefix(rest)
			if err != nil {
				tb.Fatalf("%s:%d: malformed want comment %q: %v", tree.Filename, line(c.Start), c.Text, err)
			}

			pattern, _ := strconv.Unquote(quoted)

			re, err := regexp.Compile(pattern)
			if err != nil {
				tb.Fatalf("%s:%d: invalid pattern %q: %v", tree.Filename, line(c.Start), pattern, err)
			}

			l := line(c.Start)
			want[l] = append(want[l], re)
			rest = strings.TrimSpace(rest[len(quoted):])
		}
	}

	return want
}
