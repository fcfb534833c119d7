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

package declared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/signalcall/internal/declared"
	"fillmore-labs.com/signalcall/internal/oracle"
	"fillmore-labs.com/signalcall/internal/testsource"
	"fillmore-labs.com/signalcall/internal/tsast"
)

func TestTypeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		ident string
		n     int
		want  string
	}{
		{
			name:  "field initialized by factory",
			src:   "class C { count = signal(0); }",
			ident: "count",
			want:  "WritableSignal<number>",
		},
		{
			name:  "member access",
			src:   "class C { count = signal(0); read() { return this.count; } }",
			ident: "count",
			n:     1,
			want:  "WritableSignal<number>",
		},
		{
			name:  "computed from arrow body",
			src:   "const double = computed(() => 2);",
			ident: "double",
			want:  "Signal<number>",
		},
		{
			name:  "explicit type argument",
			src:   "class C { name = input<string>(''); }",
			ident: "name",
			want:  "InputSignal<string>",
		},
		{
			name:  "annotation wins",
			src:   "let items: Signal<string[]> = undefined;",
			ident: "items",
			want:  "Signal<string[]>",
		},
		{
			name:  "reference",
			src:   "const flag = signal(true); flag;",
			ident: "flag",
			n:     1,
			want:  "WritableSignal<boolean>",
		},
		{
			name:  "parameter",
			src:   "function f(s: Signal<number>) { return s; }",
			ident: "s",
			n:     1,
			want:  "Signal<number>",
		},
		{
			name:  "parameter property",
			src:   "class C { constructor(private readonly s: WritableSignal<boolean>) {} m() { this.s; } }",
			ident: "s",
			n:     1,
			want:  "WritableSignal<boolean>",
		},
		{
			name:  "inherited generic member",
			src:   "interface Store<T> { items: Signal<T[]>; }\ninterface Todos extends Store<string> {}\ndeclare const todos: Todos;\ntodos.items;",
			ident: "items",
			n:     1,
			want:  "Signal<string[]>",
		},
		{
			name:  "object literal key",
			src:   "const o = { a: signal(1) };",
			ident: "a",
			want:  "WritableSignal<number>",
		},
		{
			name:  "shorthand property",
			src:   "const a = signal('x'); const o = { a };",
			ident: "a",
			n:     1,
			want:  "WritableSignal<string>",
		},
		{
			name:  "arrow function",
			src:   "const f = (x: number) => x;",
			ident: "f",
			want:  "(x: number) => number",
		},
		{
			name:  "invocation result",
			src:   "const c = signal(1); const v = c();",
			ident: "v",
			want:  "number",
		},
		{
			name:  "untracked result",
			src:   "const c = signal('a'); const v = untracked(() => c);",
			ident: "v",
			want:  "WritableSignal<string>",
		},
		{
			name:  "readonly view",
			src:   "const c = signal(1); const r = c.asReadonly();",
			ident: "r",
			want:  "Signal<number>",
		},
		{
			name:  "constructor",
			src:   "class Store {} const s = new Store();",
			ident: "s",
			want:  "Store",
		},
		{
			name:  "destructured binding shadows",
			src:   "interface Point { x: number; }\ndeclare const p: Point;\nconst x = signal(0);\nfunction a() { const { x } = p; return x; }",
			ident: "x",
			n:     3,
			want:  "number",
		},
		{
			name:  "renamed destructured binding",
			src:   "interface Point { x: number; }\ndeclare const p: Point;\nconst y = signal(0);\nfunction a() { const { x: y } = p; return y; }",
			ident: "y",
			n:     2,
			want:  "number",
		},
		{
			name:  "destructured binding with default",
			src:   "interface Point { x: number; }\ndeclare const p: Point;\nconst x = signal(0);\nfunction a() { const { x = 1 } = p; return x; }",
			ident: "x",
			n:     3,
			want:  "number",
		},
		{
			name:  "destructured parameter",
			src:   "interface Point { x: number; }\nconst x = signal(0);\nfunction f({ x }: Point) { return x; }",
			ident: "x",
			n:     3,
			want:  "number",
		},
		{
			name:  "array destructuring",
			src:   "declare const xs: number[];\nconst x = signal(0);\nfunction a() { const [x] = xs; return x; }",
			ident: "x",
			n:     2,
			want:  "number",
		},
		{
			name:  "destructured member",
			src:   "class C { count = signal(0); m() { const { count } = this; return count; } }",
			ident: "count",
			n:     2,
			want:  "WritableSignal<number>",
		},
		{
			name:  "for-of binding",
			src:   "declare const xs: number[];\nconst x = signal(0);\nfor (const x of xs) { x; }",
			ident: "x",
			n:     2,
			want:  "number",
		},
		{
			name:  "for-of over signals",
			src:   "declare const sigs: Signal<number>[];\nfor (const s of sigs) { s; }",
			ident: "s",
			n:     1,
			want:  "Signal<number>",
		},
		{
			name:  "for-in binding",
			src:   "const x = signal(0);\nfor (const x in {}) { x; }",
			ident: "x",
			n:     2,
			want:  "string",
		},
		{
			name:  "for loop binding",
			src:   "const x = signal(0);\nfor (let x = 0; x < 3; x++) { x; }",
			ident: "x",
			n:     4,
			want:  "number",
		},
		{
			name:  "this in arrow function",
			src:   "class C { s = signal(1); m() { return () => this.s; } }",
			ident: "s",
			n:     1,
			want:  "WritableSignal<number>",
		},
		{
			name:  "file shadows prelude",
			src:   "function signal(x: number): number { return x; } const s = signal(1);",
			ident: "s",
			want:  "number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := testsource.Parse(t, tt.src)
			o, err := New(tree)
			require.NoError(t, err)

			got, ok := o.TypeOf(testsource.Find(t, tree, tt.ident, tt.n))
			require.True(t, ok, "type of %q not resolved", tt.ident)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTypeOf_unresolved(t *testing.T) {
	t.Parallel()

	tree := testsource.Parse(t, "external.value; const x = undeclared;")
	o, err := New(tree)
	require.NoError(t, err)

	for _, name := range []string{"external", "value", "undeclared", "x"} {
		_, ok := o.TypeOf(testsource.Find(t, tree, name, 0))
		assert.False(t, ok, "type of %q unexpectedly resolved", name)
	}

	_, ok := o.TypeOf(tsast.NoNode)
	assert.False(t, ok)
}

func TestTypeOf_rebound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		ident string
		n     int
	}{
		{"catch clause", "const x = signal(0);\ntry {} catch (x) { x; }", "x", 2},
		{"destructured literal", "const x = signal(0);\nfunction a() { const { x } = { x: 1 }; return x; }", "x", 3},
		{"this in function expression", "class C { s = signal(1); m() { setTimeout(function () { return this.s; }); } }", "s", 1},
		{"this in object literal method", "class C { s = signal(1); m() { const o = { s: 1, f() { return this.s; } }; } }", "s", 2},
		{"this in static method", "class C { s = signal(1); static m() { return this.s; } }", "s", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := testsource.Parse(t, tt.src)
			o, err := New(tree)
			require.NoError(t, err)

			typ, ok := o.TypeOf(testsource.Find(t, tree, tt.ident, tt.n))
			assert.False(t, ok, "type of %q unexpectedly resolved to %q", tt.ident, typ)
		})
	}
}

func TestTypeOf_cycle(t *testing.T) {
	t.Parallel()

	tree := testsource.Parse(t, "const a = b; const b = a;")
	o, err := New(tree)
	require.NoError(t, err)

	_, ok := o.TypeOf(testsource.Find(t, tree, "a", 0))
	assert.False(t, ok)
}

func TestCallSignatures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    string
		callee string
		n      int
		want   []oracle.Signature
	}{
		{
			name:   "console rest parameter",
			src:    "console.log(1);",
			callee: "log",
			want: []oracle.Signature{{
				Params: []oracle.Param{{Name: "data", Type: "any[]", Rest: true}},
				Result: "void",
			}},
		},
		{
			name:   "receiver type arguments",
			src:    "const c = signal(0); c.set(1);",
			callee: "set",
			want: []oracle.Signature{{
				Params: []oracle.Param{{Name: "value", Type: "number"}},
				Result: "void",
			}},
		},
		{
			name:   "call signature",
			src:    "const c = signal(0); c();",
			callee: "c",
			n:      1,
			want:   []oracle.Signature{{Result: "number"}},
		},
		{
			name:   "overloads in declaration order",
			src:    "function f(a: string): void;\nfunction f(a: Signal<number>): void;\nfunction f(a: any) {}\nf('');",
			callee: "f",
			n:      3,
			want: []oracle.Signature{
				{Params: []oracle.Param{{Name: "a", Type: "string"}}, Result: "void"},
				{Params: []oracle.Param{{Name: "a", Type: "Signal<number>"}}, Result: "void"},
			},
		},
		{
			name:   "function valued variable",
			src:    "const show = (value: string, ...rest: any[]) => value; show('');",
			callee: "show",
			n:      1,
			want: []oracle.Signature{{
				Params: []oracle.Param{{Name: "value", Type: "string"}, {Name: "rest", Type: "any[]", Rest: true}},
				Result: "string",
			}},
		},
		{
			name:   "method",
			src:    "class C { accept(s: Signal<number>, n: number) {} run() { this.accept(null, 1); } }",
			callee: "accept",
			n:      1,
			want: []oracle.Signature{{
				Params: []oracle.Param{{Name: "s", Type: "Signal<number>"}, {Name: "n", Type: "number"}},
				Result: "unknown",
			}},
		},
		{
			name:   "unknown callee",
			src:    "external(1);",
			callee: "external",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := testsource.Parse(t, tt.src)
			o, err := New(tree)
			require.NoError(t, err)

			ident := testsource.Find(t, tree, tt.callee, tt.n)

			callee := ident
			if parent := tree.Parent(ident); tree.Kind(parent) == tsast.Member {
				callee = parent
			}

			got := o.CallSignatures(callee)
			if len(tt.want) == 0 {
				assert.Empty(t, got)

				return
			}

			assert.Equal(t, tt.want, got)
		})
	}
}
