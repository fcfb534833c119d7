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

// Package typestr manipulates TypeScript type expressions in their textual form.
package typestr

import "strings"

// Normalize collapses white space in a type expression, so equal types compare equal as strings.
func Normalize(s string) string {
	s = strings.Join(strings.Fields(s), " ")

	var b strings.Builder
	b.Grow(len(s))

	for i := range len(s) {
		ch := s[i]
		if ch == ' ' {
			if i > 0 && strings.IndexByte("<([", s[i-1]) >= 0 {
				continue
			}

			if i+1 < len(s) && strings.IndexByte(">)],", s[i+1]) >= 0 {
				continue
			}
		}

		b.WriteByte(ch)
	}

	return b.String()
}

// Split separates a type reference into its head and top-level generic arguments.
// "Map<string, Signal<T>>" yields "Map" and ["string", "Signal<T>"].
func Split(s string) (head string, args []string) {
	head, rest, found := strings.Cut(s, "<")
	if !found || !strings.HasSuffix(rest, ">") {
		return s, nil
	}

	return head, SplitTopLevel(rest[:len(rest)-1], ',')
}

// SplitTopLevel splits s at every sep that is not nested in brackets. Parts are trimmed.
func SplitTopLevel(s string, sep byte) []string {
	var parts []string

	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '<', '(', '[', '{':
			depth++

		case '>':
			if i > 0 && s[i-1] == '=' {
				continue // arrow
			}

			depth--

		case ')', ']', '}':
			depth--

		case sep:
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}

	if last := strings.TrimSpace(s[start:]); last != "" || len(parts) > 0 {
		parts = append(parts, last)
	}

	return parts
}

// IndexTopLevel returns the index of the first sep in s that is not nested in brackets, or -1.
func IndexTopLevel(s string, sep byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '<', '(', '[', '{':
			depth++

		case '>':
			if i > 0 && s[i-1] == '=' {
				continue
			}

			depth--

		case ')', ']', '}':
			depth--

		case sep:
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// Substitute replaces whole identifiers in s according to bindings.
func Substitute(s string, bindings map[string]string) string {
	if len(bindings) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if !isIdentByte(s[i]) {
			b.WriteByte(s[i])
			i++

			continue
		}

		j := i
		for j < len(s) && isIdentByte(s[j]) {
			j++
		}

		word := s[i:j]
		if repl, ok := bindings[word]; ok && (i == 0 || s[i-1] != '.') {
			word = repl
		}

		b.WriteString(word)
		i = j
	}

	return b.String()
}

func isIdentByte(ch byte) bool {
	return ch == '_' || ch == '$' ||
		'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || '0' <= ch && ch <= '9'
}
