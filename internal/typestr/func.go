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

package typestr

import (
	"strings"

	"fillmore-labs.com/signalcall/internal/oracle"
)

// Func is a parsed function type.
type Func struct {
	TypeParams []string
	Params     []oracle.Param
	Result     string
}

// Signature converts the function type into an [oracle.Signature].
func (f Func) Signature() oracle.Signature {
	return oracle.Signature{Params: f.Params, Result: f.Result}
}

// String formats the function type, e.g. "<T>(value: T) => void".
func (f Func) String() string {
	var b strings.Builder

	if len(f.TypeParams) > 0 {
		b.WriteByte('<')
		b.WriteString(strings.Join(f.TypeParams, ", "))
		b.WriteByte('>')
	}

	b.WriteByte('(')

	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}

		if p.Rest {
			b.WriteString("...")
		}

		b.WriteString(p.Name)

		if p.Type != "" {
			b.WriteString(": ")
			b.WriteString(p.Type)
		}
	}

	b.WriteString(") => ")

	result := f.Result
	if result == "" {
		result = "unknown"
	}

	b.WriteString(result)

	return b.String()
}

// ParseFunc parses a function type like "<T>(a: T, ...rest: any[]) => R".
func ParseFunc(s string) (Func, bool) {
	var f Func

	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "<") {
		end := closing(s, 0)
		if end < 0 {
			return Func{}, false
		}

		for _, tp := range SplitTopLevel(s[1:end], ',') {
			if name, _, _ := strings.Cut(tp, " "); name != "" {
				f.TypeParams = append(f.TypeParams, name)
			}
		}

		s = strings.TrimSpace(s[end+1:])
	}

	if !strings.HasPrefix(s, "(") {
		return Func{}, false
	}

	end := closing(s, 0)
	if end < 0 {
		return Func{}, false
	}

	params, rest := s[1:end], strings.TrimSpace(s[end+1:])

	result, ok := strings.CutPrefix(rest, "=>")
	if !ok {
		return Func{}, false
	}

	f.Result = strings.TrimSpace(result)

	for _, p := range SplitTopLevel(params, ',') {
		if p == "" {
			continue
		}

		f.Params = append(f.Params, parseParam(p))
	}

	return f, true
}

func parseParam(p string) oracle.Param {
	var param oracle.Param

	if after, ok := strings.CutPrefix(p, "..."); ok {
		param.Rest, p = true, after
	}

	if i := IndexTopLevel(p, ':'); i >= 0 {
		param.Name, param.Type = strings.TrimSpace(p[:i]), strings.TrimSpace(p[i+1:])
	} else {
		param.Name = strings.TrimSpace(p)
	}

	param.Name = strings.TrimSuffix(param.Name, "?")

	return param
}

// closing returns the index of the bracket closing the one at open, or -1.
func closing(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[', '{':
			depth++

		case '>':
			if i > 0 && s[i-1] == '=' {
				continue
			}

			depth--

		case ')', ']', '}':
			depth--
		}

		if depth == 0 {
			return i
		}
	}

	return -1
}
