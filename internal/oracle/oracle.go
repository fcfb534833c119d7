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

// Package oracle defines the type information the signal checker consumes.
package oracle

import "fillmore-labs.com/signalcall/internal/tsast"

// Oracle resolves static types of syntax tree nodes.
//
// Implementations must be free of observable side effects. A node whose type cannot be
// resolved reports ok == false and is treated as not signal-typed.
type Oracle interface {
	// TypeOf returns the canonical type name of a node, with generic arguments intact,
	// e.g. "WritableSignal<string>".
	TypeOf(node tsast.NodeID) (typeName string, ok bool)

	// CallSignatures returns the call signatures of a callee expression in declaration order.
	CallSignatures(callee tsast.NodeID) []Signature
}

// Signature is a resolved call signature.
type Signature struct {
	Params []Param
	Result string
}

// Param is a declared parameter of a [Signature].
type Param struct {
	Name string
	Type string
	Rest bool
}

// ParamAt returns the parameter receiving the argument at position i.
// Positions beyond the declared parameters map onto a trailing rest parameter.
func (s Signature) ParamAt(i int) (Param, bool) {
	if i < 0 {
		return Param{}, false
	}

	if i < len(s.Params) {
		return s.Params[i], true
	}

	if n := len(s.Params); n > 0 && s.Params[n-1].Rest {
		return s.Params[n-1], true
	}

	return Param{}, false
}
