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

package tsparse_test

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"fillmore-labs.com/signalcall/internal/testsource"
	"fillmore-labs.com/signalcall/internal/tsast"
	. "fillmore-labs.com/signalcall/internal/tsparse"
)

func TestParse_shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    string
		ident  string
		n      int
		parent tsast.Kind
		edge   tsast.Edge
		index  int
	}{
		{"member property", "this.count();", "count", 0, tsast.Member, tsast.EdgeProperty, 0},
		{"member object", "count.set(1);", "count", 0, tsast.Member, tsast.EdgeObject, 0},
		{"callee", "count();", "count", 0, tsast.Call, tsast.EdgeCallee, 0},
		{"second argument", "f(a, count);", "count", 0, tsast.Call, tsast.EdgeArgument, 1},
		{"parenthesized argument", "f((count));", "count", 0, tsast.Call, tsast.EdgeArgument, 0},
		{"assignment target", "count = 1;", "count", 0, tsast.Assignment, tsast.EdgeLeft, 0},
		{"compound assignment value", "x += count;", "count", 0, tsast.Assignment, tsast.EdgeRight, 0},
		{"field name", "class C { count = signal(0); }", "count", 0, tsast.PropertyDefinition, tsast.EdgeKey, 0},
		{"object key", "const o = { count: 1 };", "count", 0, tsast.Property, tsast.EdgeKey, 0},
		{"shorthand", "const o = { count };", "count", 0, tsast.Property, tsast.EdgeValue, 0},
		{"arrow body", "const f = () => count;", "count", 0, tsast.ArrowFunction, tsast.EdgeBody, 0},
		{"arrow parameter", "const f = count => 1;", "count", 0, tsast.Parameter, tsast.EdgeName, 0},
		{"initializer", "const c = count;", "count", 0, tsast.VariableDeclarator, tsast.EdgeInit, 0},
		{"declarator name", "let count = 1;", "count", 0, tsast.VariableDeclarator, tsast.EdgeName, 0},
		{"method name", "class C { count() {} }", "count", 0, tsast.Method, tsast.EdgeKey, 0},
		{"function name", "function count() {}", "count", 0, tsast.Function, tsast.EdgeName, 0},
		{"exported", "export const c = count;", "count", 0, tsast.VariableDeclarator, tsast.EdgeInit, 0},
		{"computed member", "a[count];", "count", 0, tsast.Member, tsast.EdgeProperty, 0},
		{"new argument", "new Store(count);", "count", 0, tsast.New, tsast.EdgeArgument, 0},
		{"template substitution", "const s = `${count}`;", "count", 0, tsast.Literal, tsast.NoEdge, 0},
		{"object pattern", "const { count } = o;", "count", 0, tsast.Property, tsast.EdgeValue, 0},
		{"renaming pattern", "const { a: count } = o;", "count", 0, tsast.Property, tsast.EdgeValue, 0},
		{"pattern default", "const { count = 1 } = o;", "count", 0, tsast.Pattern, tsast.EdgeLeft, 0},
		{"array pattern", "const [a, count] = o;", "count", 0, tsast.Pattern, tsast.NoEdge, 1},
		{"for-of binding", "for (const count of xs) {}", "count", 0, tsast.Loop, tsast.EdgeName, 0},
		{"for-of target", "for (count of xs) {}", "count", 0, tsast.Loop, tsast.NoEdge, 0},
		{"for-of iterable", "for (const x of count) {}", "count", 0, tsast.Loop, tsast.EdgeInit, 0},
		{"catch binding", "try {} catch (count) {}", "count", 0, tsast.Catch, tsast.EdgeName, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := testsource.Parse(t, tt.src)
			id := testsource.Find(t, tree, tt.ident, tt.n)

			if got := tree.Kind(tree.Parent(id)); got != tt.parent {
				t.Errorf("Parent kind = %v, want %v", got, tt.parent)
			}

			edge, index := tree.ParentEdge(id)
			if edge != tt.edge || index != tt.index {
				t.Errorf("Edge = %v[%d], want %v[%d]", edge, index, tt.edge, tt.index)
			}
		})
	}
}

func TestParse_loops(t *testing.T) {
	t.Parallel()

	tree := testsource.Parse(t, "for (let i = 0; i < 3; i++) {}\nfor (const k in o) {}\nfor (const v of o) {}")

	var got []string
	for id := range tree.Preorder(tsast.Loop) {
		got = append(got, tree.Name(id))
	}

	if want := []string{"for", "in", "of"}; !slices.Equal(got, want) {
		t.Errorf("Loops = %v, want %v", got, want)
	}

	loop := first(tree, tsast.Loop)
	if head := tree.Child(loop, tsast.EdgeInit); tree.Kind(head) != tsast.Declaration {
		t.Errorf("Loop head = %v, want %v", tree.Kind(head), tsast.Declaration)
	}

	if body := tree.Child(loop, tsast.EdgeBody); tree.Kind(body) != tsast.Block {
		t.Errorf("Loop body = %v, want %v", tree.Kind(body), tsast.Block)
	}
}

func TestParse_declarations(t *testing.T) {
	t.Parallel()

	const src = `
export class Store<T> extends Base<T> {
  static readonly key = 'store';
  items = signal<T[]>([]);
  constructor(private readonly name: string, ...rest: any[]) { super(); }
}

interface Named extends Base<string>, Other {
  (): string;
  label?: string;
}
`

	tree := testsource.Parse(t, src)

	class := first(tree, tsast.Class)
	if got := tree.Node(class); got.Name != "Store" || !slices.Equal(got.TypeParams, []string{"T"}) ||
		!slices.Equal(got.Extends, []string{"Base<T>"}) {
		t.Errorf("Class = %q %v extends %v, want Store [T] extends [Base<T>]", got.Name, got.TypeParams, got.Extends)
	}

	if got := tree.Count(class, tsast.EdgeMember); got != 3 {
		t.Errorf("Class members = %d, want 3", got)
	}

	key := tree.Node(tree.ChildAt(class, tsast.EdgeMember, 0))
	if key.Kind != tsast.PropertyDefinition || !key.Flags.Has(tsast.Static) {
		t.Errorf("First member = %v %b, want static %v", key.Kind, key.Flags, tsast.PropertyDefinition)
	}

	items := tree.ChildAt(class, tsast.EdgeMember, 1)
	if call := tree.Child(items, tsast.EdgeValue); !slices.Equal(tree.Node(call).TypeArgs, []string{"T[]"}) {
		t.Errorf("Type arguments = %v, want [T[]]", tree.Node(call).TypeArgs)
	}

	ctor := tree.ChildAt(class, tsast.EdgeMember, 2)
	name, rest := tree.Node(tree.ChildAt(ctor, tsast.EdgeParam, 0)), tree.Node(tree.ChildAt(ctor, tsast.EdgeParam, 1))

	if !name.Flags.Has(tsast.ParamProperty) || name.Type != "string" {
		t.Errorf("First parameter = %b %q, want parameter property of type string", name.Flags, name.Type)
	}

	if !rest.Flags.Has(tsast.Rest) || rest.Type != "any[]" {
		t.Errorf("Second parameter = %b %q, want rest parameter of type any[]", rest.Flags, rest.Type)
	}

	iface := first(tree, tsast.Interface)
	if got := tree.Node(iface); got.Name != "Named" || !slices.Equal(got.Extends, []string{"Base<string>", "Other"}) {
		t.Errorf("Interface = %q extends %v, want Named extends [Base<string> Other]", got.Name, got.Extends)
	}

	sig := tree.Node(tree.ChildAt(iface, tsast.EdgeMember, 0))
	if sig.Kind != tsast.Method || !sig.Flags.Has(tsast.CallSignature) || sig.Type != "string" {
		t.Errorf("Call signature = %v %b %q", sig.Kind, sig.Flags, sig.Type)
	}

	label := tree.Node(tree.ChildAt(iface, tsast.EdgeMember, 1))
	if label.Kind != tsast.PropertyDefinition || !label.Flags.Has(tsast.Optional) || label.Type != "string" {
		t.Errorf("Property signature = %v %b %q", label.Kind, label.Flags, label.Type)
	}
}

func TestParse_comments(t *testing.T) {
	t.Parallel()

	tree := testsource.Parse(t, "// first\nconst a = 1; /* second */\n")

	var got []string
	for _, c := range tree.Comments {
		got = append(got, c.Text)
	}

	if want := []string{"// first", "/* second */"}; !slices.Equal(got, want) {
		t.Errorf("Comments = %q, want %q", got, want)
	}
}

func TestParse_tsx(t *testing.T) {
	t.Parallel()

	tree := testsource.ParseFile(t, "view.tsx", "const v = <div>{count()}</div>;")
	id := testsource.Find(t, tree, "count", 0)

	if got := tree.Kind(tree.Parent(id)); got != tsast.Call {
		t.Errorf("Parent kind = %v, want %v", got, tsast.Call)
	}
}

func TestParse_errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	if _, err := New(WithMaxFileSize(8)).Parse(ctx, "big.ts", []byte("const a = 1;")); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("Expected %v, got %v", ErrFileTooLarge, err)
	}

	if _, err := New().Parse(ctx, "bad.ts", []byte{0xff, 0xfe}); !errors.Is(err, ErrInvalidContent) {
		t.Errorf("Expected %v, got %v", ErrInvalidContent, err)
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()

	if _, err := New().Parse(canceled, "a.ts", []byte("a;")); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected %v, got %v", context.Canceled, err)
	}

	tree, err := New().Parse(ctx, "broken.ts", []byte("const = ;\nvalue.count;"))
	if err != nil {
		t.Fatalf("Syntax errors should be tolerated, got %v", err)
	}

	if !strings.Contains(string(tree.Src), "value") {
		t.Error("Source not retained")
	}
}

func first(tree *tsast.Tree, kind tsast.Kind) tsast.NodeID {
	for id := range tree.Preorder(kind) {
		return id
	}

	return tsast.NoNode
}
