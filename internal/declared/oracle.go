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

// Package declared implements [oracle.Oracle] from the declarations of a single file.
//
// Types are tracked as normalized type strings. Names not declared in the file resolve against
// an embedded prelude declaring the Angular signal API and a few global objects.
package declared

import (
	"fillmore-labs.com/signalcall/internal/oracle"
	"fillmore-labs.com/signalcall/internal/tsast"
	"fillmore-labs.com/signalcall/internal/typestr"
)

// Unknown is the type of expressions that cannot be resolved.
const Unknown = "unknown"

// maxDepth limits recursion through heritage clauses and nested types.
const maxDepth = 16

// ref identifies a node in the analyzed file or the prelude.
type ref struct {
	t  *tsast.Tree
	id tsast.NodeID
}

func (r ref) valid() bool { return r.t != nil && r.id.Valid() }

func (r ref) node() *tsast.Node { return r.t.Node(r.id) }

func (r ref) kind() tsast.Kind { return r.t.Kind(r.id) }

func (r ref) child(edge tsast.Edge) ref { return ref{r.t, r.t.Child(r.id, edge)} }

func (r ref) parent() ref { return ref{r.t, r.t.Parent(r.id)} }

// Oracle resolves types for the nodes of one [tsast.Tree]. It is not safe for concurrent use.
type Oracle struct {
	tree    *tsast.Tree
	prelude *tsast.Tree

	types   map[ref]string
	pending map[ref]struct{}
	decls   map[string]ref
}

var _ oracle.Oracle = (*Oracle)(nil)

// New creates an [Oracle] for t.
func New(t *tsast.Tree) (*Oracle, error) {
	prelude, err := loadPrelude()
	if err != nil {
		return nil, err
	}

	o := &Oracle{
		tree:    t,
		prelude: prelude,
		types:   make(map[ref]string),
		pending: make(map[ref]struct{}),
	}

	return o, nil
}

// TypeOf implements [oracle.Oracle].
func (o *Oracle) TypeOf(node tsast.NodeID) (string, bool) {
	if !node.Valid() {
		return "", false
	}

	typ := o.typeOf(ref{o.tree, node})

	return typ, typ != Unknown
}

// CallSignatures implements [oracle.Oracle].
func (o *Oracle) CallSignatures(callee tsast.NodeID) []oracle.Signature {
	if !callee.Valid() {
		return nil
	}

	funcs := o.signatures(ref{o.tree, callee})

	signatures := make([]oracle.Signature, 0, len(funcs))
	for _, f := range funcs {
		signatures = append(signatures, f.Signature())
	}

	return signatures
}

// typeOf returns the memoized type of r.
func (o *Oracle) typeOf(r ref) string {
	if !r.valid() {
		return Unknown
	}

	if typ, ok := o.types[r]; ok {
		return typ
	}

	if _, ok := o.pending[r]; ok {
		return Unknown // cycle
	}

	o.pending[r] = struct{}{}
	typ := o.resolve(r)
	delete(o.pending, r)

	if typ == "" {
		typ = Unknown
	}

	o.types[r] = typ

	return typ
}

// resolve computes the type of r.
func (o *Oracle) resolve(r ref) string {
	n := r.node()

	switch n.Kind {
	case tsast.Identifier:
		return o.identifierType(r)

	case tsast.This:
		return o.thisType(r)

	case tsast.Member:
		return o.memberExprType(r)

	case tsast.Call:
		return o.callType(r)

	case tsast.New:
		return o.newType(r)

	case tsast.Assignment:
		return o.typeOf(r.child(tsast.EdgeRight))

	case tsast.Literal:
		return n.Type

	case tsast.ArrowFunction, tsast.Function, tsast.Method:
		return o.funcType(r).String()

	case tsast.Class:
		return classType(n)

	case tsast.VariableDeclarator, tsast.PropertyDefinition, tsast.Parameter:
		return o.declType(r)

	case tsast.Property:
		return o.typeOf(r.child(tsast.EdgeValue))

	default:
		return Unknown
	}
}

// identifierType resolves an identifier by its role in the parent.
func (o *Oracle) identifierType(r ref) string {
	parent := r.parent()
	edge, _ := r.t.ParentEdge(r.id)

	switch parent.kind() {
	case tsast.Member:
		if edge == tsast.EdgeProperty && !parent.node().Flags.Has(tsast.Computed) {
			return o.typeOf(parent)
		}

	case tsast.Property:
		switch {
		case edge == tsast.EdgeKey:
			return o.typeOf(parent.child(tsast.EdgeValue))

		case parent.parent().kind() == tsast.Pattern:
			return o.bindingType(r)
		}

	case tsast.Pattern:
		if edge != tsast.EdgeRight {
			return o.bindingType(r)
		}

	case tsast.Loop, tsast.Catch:
		if edge == tsast.EdgeName {
			return o.bindingType(r)
		}

	case tsast.PropertyDefinition:
		if edge == tsast.EdgeKey {
			return o.declType(parent)
		}

	case tsast.VariableDeclarator, tsast.Parameter:
		if edge == tsast.EdgeName {
			return o.declType(parent)
		}

	case tsast.Function, tsast.Method:
		if edge == tsast.EdgeName || edge == tsast.EdgeKey {
			return o.funcType(parent).String()
		}
	}

	decls := o.lookup(r, r.node().Name)
	if len(decls) == 0 {
		return Unknown
	}

	return o.typeOf(decls[0])
}

// declType returns the declared type of a binding, or the type of its initializer.
func (o *Oracle) declType(r ref) string {
	n := r.node()

	switch n.Kind {
	case tsast.VariableDeclarator, tsast.Parameter:
		if n.Type != "" {
			return n.Type
		}

		return o.typeOf(r.child(tsast.EdgeInit))

	case tsast.PropertyDefinition:
		if n.Type != "" {
			return n.Type
		}

		return o.typeOf(r.child(tsast.EdgeValue))

	default:
		return o.typeOf(r)
	}
}

// thisType returns the instance type of the class whose member binds this.
// Arrow functions inherit this, other functions and object literal methods rebind it.
func (o *Oracle) thisType(r ref) string {
	for a := range r.t.Ancestors(r.id) {
		n := r.t.Node(a)
		class := r.t.Parent(a)
		member := r.t.Kind(class) == tsast.Class

		switch {
		case n.Kind == tsast.Function:
			return Unknown

		case n.Kind == tsast.Method, member:
			if !member || n.Flags.Has(tsast.Static) || (n.Kind != tsast.Method && n.Kind != tsast.PropertyDefinition) {
				return Unknown
			}

			return classType(r.t.Node(class))
		}
	}

	return Unknown
}

// bindingType resolves the value bound at the position p of a binding target.
func (o *Oracle) bindingType(p ref) string {
	parent := p.parent()
	edge, _ := p.t.ParentEdge(p.id)

	switch parent.kind() {
	case tsast.VariableDeclarator, tsast.Parameter:
		if edge == tsast.EdgeName {
			return o.declType(parent)
		}

	case tsast.Loop:
		if edge == tsast.EdgeName {
			return o.loopType(parent)
		}

	case tsast.Property: // { key: p } or { p }
		if edge != tsast.EdgeValue {
			return Unknown
		}

		name := p.node().Name
		if key := parent.child(tsast.EdgeKey); key.valid() {
			if key.kind() != tsast.Identifier {
				return Unknown
			}

			name = key.node().Name
		} else if p.kind() != tsast.Identifier {
			return Unknown
		}

		return o.memberType(o.bindingType(parent.parent()), name)

	case tsast.Pattern:
		switch parent.node().Name {
		case "=":
			if edge != tsast.EdgeLeft {
				return Unknown
			}

			// { p = init } names the property
			if outer := parent.parent(); outer.kind() == tsast.Pattern && outer.node().Name == "{}" {
				if p.kind() != tsast.Identifier {
					return Unknown
				}

				return o.memberType(o.bindingType(outer), p.node().Name)
			}

			return o.bindingType(parent)

		case "[]":
			if elem, ok := elementType(o.bindingType(parent)); ok {
				return elem
			}
		}
	}

	return Unknown
}

// loopType returns the element type of a for-in or for-of loop.
func (o *Oracle) loopType(loop ref) string {
	switch loop.node().Name {
	case "in":
		return "string"

	case "of":
		if elem, ok := elementType(o.typeOf(loop.child(tsast.EdgeInit))); ok {
			return elem
		}
	}

	return Unknown
}

// classType returns the instance type of a class declaration.
func classType(n *tsast.Node) string {
	if n.Name == "" {
		return Unknown
	}

	if len(n.TypeParams) == 0 {
		return n.Name
	}

	return n.Name + "<" + joinTypes(n.TypeParams) + ">"
}

// memberExprType resolves a member access.
func (o *Oracle) memberExprType(r ref) string {
	object := o.typeOf(r.child(tsast.EdgeObject))
	if object == Unknown {
		return Unknown
	}

	property := r.child(tsast.EdgeProperty)

	if r.node().Flags.Has(tsast.Computed) {
		if elem, ok := elementType(object); ok {
			return elem
		}

		return Unknown
	}

	if property.kind() != tsast.Identifier {
		return Unknown
	}

	return o.memberType(object, property.node().Name)
}

// memberType returns the type of the member name of typ.
func (o *Oracle) memberType(typ, name string) string {
	if typ == Unknown {
		return Unknown
	}

	members, bindings := o.members(typ, name, 0)
	if len(members) == 0 {
		return Unknown
	}

	return typestr.Substitute(o.typeOf(members[0]), bindings)
}

// newType resolves a constructor call to the instance type.
func (o *Oracle) newType(r ref) string {
	callee := r.child(tsast.EdgeCallee)
	if callee.kind() != tsast.Identifier {
		return Unknown
	}

	name := callee.node().Name
	if args := r.node().TypeArgs; len(args) > 0 {
		return name + "<" + joinTypes(args) + ">"
	}

	return name
}
