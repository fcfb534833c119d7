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
	"slices"
	"strings"

	"fillmore-labs.com/signalcall/internal/tsast"
	"fillmore-labs.com/signalcall/internal/typestr"
)

// funcType builds the function type of a function-like declaration.
func (o *Oracle) funcType(r ref) typestr.Func {
	n := r.node()

	f := typestr.Func{TypeParams: n.TypeParams, Result: n.Type}

	for p := range r.t.ChildrenOf(r.id, tsast.EdgeParam) {
		param := ref{r.t, p}
		pn := param.node()

		name := "_"
		if binding := param.child(tsast.EdgeName); binding.kind() == tsast.Identifier {
			name = binding.node().Name
		}

		f.Params = append(f.Params, oracleParam(name, pn.Type, pn.Flags.Has(tsast.Rest)))
	}

	if f.Result == "" {
		f.Result = Unknown

		if body := r.child(tsast.EdgeBody); body.valid() && body.kind() != tsast.Block {
			f.Result = o.typeOf(body)
		}
	}

	return f
}

// signatures returns the call signatures of a callee expression.
func (o *Oracle) signatures(callee ref) []typestr.Func {
	if decls, bindings := o.calleeDecls(callee); len(decls) > 0 {
		var funcs []typestr.Func

		for _, d := range preferSignatures(decls) {
			if !d.kind().IsFunctionLike() {
				funcs = nil

				break
			}

			funcs = append(funcs, substituteFunc(o.funcType(d), bindings))
		}

		if len(funcs) > 0 {
			return funcs
		}
	}

	return o.typeSignatures(o.typeOf(callee), 0)
}

// calleeDecls returns the declarations a callee refers to.
func (o *Oracle) calleeDecls(callee ref) ([]ref, map[string]string) {
	switch callee.kind() {
	case tsast.Identifier:
		return o.lookup(callee, callee.node().Name), nil

	case tsast.Member:
		if callee.node().Flags.Has(tsast.Computed) {
			return nil, nil
		}

		property := callee.child(tsast.EdgeProperty)
		if property.kind() != tsast.Identifier {
			return nil, nil
		}

		object := o.typeOf(callee.child(tsast.EdgeObject))
		if object == Unknown {
			return nil, nil
		}

		return o.members(object, property.node().Name, 0)

	default:
		return nil, nil
	}
}

// typeSignatures returns the call signatures of a type: a function type or
// the call signatures of a named interface.
func (o *Oracle) typeSignatures(typ string, depth int) []typestr.Func {
	if typ == Unknown || depth > maxDepth {
		return nil
	}

	if f, ok := typestr.ParseFunc(typ); ok {
		return []typestr.Func{f}
	}

	head, args := typestr.Split(typ)

	decl, ok := o.typeDecl(head)
	if !ok {
		return nil
	}

	n := decl.node()
	bindings := bind(n.TypeParams, args)

	var funcs []typestr.Func

	for m := range decl.t.ChildrenOf(decl.id, tsast.EdgeMember) {
		member := ref{decl.t, m}
		if member.kind() == tsast.Method && member.node().Flags.Has(tsast.CallSignature) {
			funcs = append(funcs, substituteFunc(o.funcType(member), bindings))
		}
	}

	if len(funcs) > 0 {
		return funcs
	}

	for _, ext := range n.Extends {
		if funcs := o.typeSignatures(typestr.Substitute(ext, bindings), depth+1); len(funcs) > 0 {
			return funcs
		}
	}

	return nil
}

// callType returns the result type of a call using the first signature of the callee.
func (o *Oracle) callType(call ref) string {
	funcs := o.signatures(call.child(tsast.EdgeCallee))
	if len(funcs) == 0 {
		return Unknown
	}

	f := funcs[0]
	if len(f.TypeParams) == 0 {
		return f.Result
	}

	bindings := o.infer(call, f)

	return typestr.Substitute(f.Result, bindings)
}

// infer binds the type parameters of f for a call, from explicit type arguments first,
// then from arguments passed directly for a parameter typed as a type parameter,
// an array of it or a function returning it. Unbound parameters become unknown.
func (o *Oracle) infer(call ref, f typestr.Func) map[string]string {
	bindings := bind(f.TypeParams, call.node().TypeArgs)

	for i, param := range f.Params {
		if param.Rest {
			break
		}

		arg := ref{call.t, call.t.ChildAt(call.id, tsast.EdgeArgument, i)}
		if !arg.valid() {
			continue
		}

		switch typ := param.Type; {
		case isTypeParam(f.TypeParams, typ):
			bindOnce(bindings, typ, o.typeOf(arg))

		case strings.HasSuffix(typ, "[]") && isTypeParam(f.TypeParams, strings.TrimSuffix(typ, "[]")):
			if elem, ok := elementType(o.typeOf(arg)); ok {
				bindOnce(bindings, strings.TrimSuffix(typ, "[]"), elem)
			}

		default:
			pf, ok := typestr.ParseFunc(typ)
			if !ok || !isTypeParam(f.TypeParams, pf.Result) || !arg.kind().IsFunctionLike() {
				continue
			}

			bindOnce(bindings, pf.Result, o.funcType(arg).Result)
		}
	}

	for _, tp := range f.TypeParams {
		bindOnce(bindings, tp, Unknown)
	}

	return bindings
}

func isTypeParam(params []string, typ string) bool {
	return slices.Contains(params, typ)
}

func bindOnce(bindings map[string]string, name, typ string) {
	if _, ok := bindings[name]; !ok && typ != "" {
		bindings[name] = typ
	}
}
