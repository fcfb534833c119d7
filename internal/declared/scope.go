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

package declared

import (
	"strings"

	"fillmore-labs.com/signalcall/internal/tsast"
	"fillmore-labs.com/signalcall/internal/typestr"
)

// lookup finds the declarations of name visible from r, innermost scope first.
// Overloaded functions yield all their declarations in source order.
func (o *Oracle) lookup(r ref, name string) []ref {
	for a := range r.t.Ancestors(r.id) {
		if decls := scopeDecls(ref{r.t, a}, name); len(decls) > 0 {
			return decls
		}
	}

	if r.t != o.prelude {
		return scopeDecls(ref{o.prelude, o.prelude.Root()}, name)
	}

	return nil
}

// scopeDecls returns the declarations of name directly in the scope s.
func scopeDecls(s ref, name string) []ref {
	t := s.t

	switch n := s.node(); {
	case n.Kind == tsast.Program, n.Kind == tsast.Block:
		var decls []ref

		for stmt := range t.ChildrenOf(s.id, tsast.EdgeStatement) {
			decls = append(decls, statementDecls(ref{t, stmt}, name)...)
		}

		return decls

	case n.Kind.IsFunctionLike():
		for p := range t.ChildrenOf(s.id, tsast.EdgeParam) {
			if decl, ok := declBinding(ref{t, p}, name); ok {
				return []ref{decl}
			}
		}

		if n.Kind == tsast.Function && bindsName(s.child(tsast.EdgeName), name) {
			return []ref{s}
		}

	case n.Kind == tsast.Loop:
		if head := s.child(tsast.EdgeInit); head.kind() == tsast.Declaration {
			return statementDecls(head, name)
		}

		if b, ok := binding(s.child(tsast.EdgeName), name); ok {
			return []ref{b}
		}

	case n.Kind == tsast.Catch:
		if b, ok := binding(s.child(tsast.EdgeName), name); ok {
			return []ref{b}
		}
	}

	return nil
}

// statementDecls returns the declarations of name introduced by a statement.
func statementDecls(stmt ref, name string) []ref {
	t := stmt.t

	switch n := stmt.node(); n.Kind {
	case tsast.Declaration:
		for d := range t.ChildrenOf(stmt.id, tsast.EdgeDeclarator) {
			if decl, ok := declBinding(ref{t, d}, name); ok {
				return []ref{decl}
			}
		}

	case tsast.Function:
		if bindsName(stmt.child(tsast.EdgeName), name) {
			return []ref{stmt}
		}

	case tsast.Class:
		if n.Name == name {
			return []ref{stmt}
		}
	}

	return nil
}

// bindsName reports whether the binding r is the identifier name.
func bindsName(r ref, name string) bool {
	return r.valid() && r.kind() == tsast.Identifier && r.node().Name == name
}

// declBinding finds name bound by a variable declarator or parameter. A plain name yields the
// declaration itself, a name inside a destructuring pattern its binding identifier.
func declBinding(decl ref, name string) (ref, bool) {
	target := decl.child(tsast.EdgeName)
	if bindsName(target, name) {
		return decl, true
	}

	return binding(target, name)
}

// binding finds the identifier binding name in the binding target r.
func binding(r ref, name string) (ref, bool) {
	if !r.valid() {
		return ref{}, false
	}

	switch r.kind() {
	case tsast.Identifier:
		return r, r.node().Name == name

	case tsast.Property:
		return binding(r.child(tsast.EdgeValue), name)

	case tsast.Pattern:
		if r.node().Name == "=" {
			return binding(r.child(tsast.EdgeLeft), name)
		}

		for c := range r.t.ChildrenOf(r.id, tsast.NoEdge) {
			if b, ok := binding(ref{r.t, c}, name); ok {
				return b, true
			}
		}
	}

	return ref{}, false
}

// typeDecl finds the class or interface declaring the named type, first in the file, then in the prelude.
func (o *Oracle) typeDecl(name string) (ref, bool) {
	if o.decls == nil {
		o.decls = make(map[string]ref)
		// prelude first, so file declarations shadow it
		for _, t := range [...]*tsast.Tree{o.prelude, o.tree} {
			for id := range t.Preorder(tsast.Class, tsast.Interface) {
				if n := t.Node(id); n.Name != "" {
					o.decls[n.Name] = ref{t, id}
				}
			}
		}
	}

	decl, ok := o.decls[name]

	return decl, ok
}

// memberName returns the declared name of a class or interface member.
func memberName(m ref) string {
	key := m.child(tsast.EdgeKey)
	if key.kind() != tsast.Identifier {
		return ""
	}

	return key.node().Name
}

// members finds the declarations of the member name of typ, following heritage clauses.
// It returns the bindings of the declaring type's parameters.
func (o *Oracle) members(typ, name string, depth int) ([]ref, map[string]string) {
	if depth > maxDepth {
		return nil, nil
	}

	if elem, ok := elementType(typ); ok {
		typ = "Array<" + elem + ">"
	}

	head, args := typestr.Split(typ)

	decl, ok := o.typeDecl(head)
	if !ok {
		return nil, nil
	}

	n := decl.node()
	bindings := bind(n.TypeParams, args)

	var found []ref

	for m := range decl.t.ChildrenOf(decl.id, tsast.EdgeMember) {
		member := ref{decl.t, m}
		if memberName(member) == name {
			found = append(found, member)

			continue
		}

		if member.kind() == tsast.Method && memberName(member) == "constructor" {
			found = append(found, paramProperties(member, name)...)
		}
	}

	if len(found) > 0 {
		return preferSignatures(found), bindings
	}

	for _, ext := range n.Extends {
		if found, inner := o.members(typestr.Substitute(ext, bindings), name, depth+1); len(found) > 0 {
			return found, inner
		}
	}

	return nil, nil
}

// paramProperties returns the constructor parameters declaring the field name.
func paramProperties(ctor ref, name string) []ref {
	var found []ref

	for p := range ctor.t.ChildrenOf(ctor.id, tsast.EdgeParam) {
		param := ref{ctor.t, p}
		if param.node().Flags.Has(tsast.ParamProperty) && bindsName(param.child(tsast.EdgeName), name) {
			found = append(found, param)
		}
	}

	return found
}

// preferSignatures drops implementations of overloaded functions, which are not callable from outside.
func preferSignatures(decls []ref) []ref {
	var signatures, implementations int

	for _, d := range decls {
		switch {
		case !d.kind().IsFunctionLike():
			return decls

		case d.node().Flags.Has(tsast.Ambient):
			signatures++

		default:
			implementations++
		}
	}

	if signatures == 0 || implementations == 0 {
		return decls
	}

	result := make([]ref, 0, signatures)

	for _, d := range decls {
		if d.node().Flags.Has(tsast.Ambient) {
			result = append(result, d)
		}
	}

	return result
}

// elementType returns the element type of an array type.
func elementType(typ string) (string, bool) {
	if elem, ok := strings.CutSuffix(typ, "[]"); ok {
		return elem, true
	}

	if head, args := typestr.Split(typ); (head == "Array" || head == "ReadonlyArray") && len(args) == 1 {
		return args[0], true
	}

	return "", false
}
