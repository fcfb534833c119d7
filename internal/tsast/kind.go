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

package tsast

// Kind classifies a [Node].
type Kind uint8

//go:generate go tool stringer -type Kind,Edge -output kind_string.go
const (
	// Other is any node outside the recognized set.
	Other Kind = iota

	// Program is the root of a source file.
	Program

	// Identifier is a name reference or binding, including property names.
	Identifier

	// This is the this keyword.
	This

	// Member is a property access, either a.b or a[b] (flagged [Computed]).
	Member

	// Call is a call expression.
	Call

	// New is a constructor call.
	New

	// Assignment is a plain or compound assignment; Name holds the operator.
	Assignment

	// PropertyDefinition is a class field or an interface property signature.
	PropertyDefinition

	// Property is a key/value pair in an object literal or an object [Pattern].
	Property

	// ArrowFunction is an arrow function expression.
	ArrowFunction

	// Function is a function declaration, expression or ambient signature.
	Function

	// Method is a class method, an interface method signature or a call signature.
	Method

	// Class is a class declaration or expression.
	Class

	// Interface is an interface declaration.
	Interface

	// Declaration is a let, const or var statement; Name holds the keyword.
	Declaration

	// VariableDeclarator binds a single name inside a [Declaration].
	VariableDeclarator

	// Parameter is a function or method parameter.
	Parameter

	// Block is a statement block.
	Block

	// Return is a return statement.
	Return

	// Literal is a primitive literal; Type holds its type.
	Literal

	// Pattern is a destructuring pattern. Name is "{}" for objects, "[]" for arrays,
	// "..." for rest elements and "=" for defaults, which bind [EdgeLeft].
	Pattern

	// Loop is a for statement; Name is "for", "in" or "of". A for-in or for-of loop binds
	// [EdgeName] to the elements of [EdgeInit], a for loop declares in [EdgeInit].
	Loop

	// Catch is a catch clause binding [EdgeName].
	Catch
)

// Edge describes the role a node plays in its parent.
type Edge uint8

const (
	// NoEdge marks the root or an unnamed child.
	NoEdge Edge = iota

	// EdgeCallee is the function of a [Call] or the constructor of a [New].
	EdgeCallee

	// EdgeArgument is an argument of a [Call] or [New].
	EdgeArgument

	// EdgeObject is the object of a [Member].
	EdgeObject

	// EdgeProperty is the property of a [Member].
	EdgeProperty

	// EdgeLeft is the target of an [Assignment] or the binding of a default [Pattern].
	EdgeLeft

	// EdgeRight is the value of an [Assignment] or a default [Pattern].
	EdgeRight

	// EdgeKey is the name of a [PropertyDefinition], [Property] or [Method].
	EdgeKey

	// EdgeValue is the value of a [PropertyDefinition] or [Property].
	EdgeValue

	// EdgeName is the name of a declaration or the binding of a [Parameter], [Loop] or [Catch].
	EdgeName

	// EdgeInit is the initializer of a [VariableDeclarator], a parameter default or the head of a [Loop].
	EdgeInit

	// EdgeParam is a parameter of a function-like node.
	EdgeParam

	// EdgeBody is the body of a function-like node, a [Loop] or a [Catch].
	EdgeBody

	// EdgeMember is a member of a [Class] or [Interface].
	EdgeMember

	// EdgeDeclarator is a declarator of a [Declaration].
	EdgeDeclarator

	// EdgeStatement is a statement of a [Program] or [Block].
	EdgeStatement
)

// Flags carries boolean attributes of a [Node].
type Flags uint16

const (
	// Rest marks a rest parameter (...args).
	Rest Flags = 1 << iota

	// Optional marks an optional parameter or property.
	Optional

	// Computed marks a computed member access (a[b]).
	Computed

	// Static marks a static class member.
	Static

	// Ambient marks a declaration without implementation (declare, overload or interface signature).
	Ambient

	// ParamProperty marks a constructor parameter that also declares a class field.
	ParamProperty

	// CallSignature marks an interface call signature.
	CallSignature

	// Shorthand marks a shorthand property in an object literal or pattern.
	Shorthand
)

// Has reports whether all flags in f are set.
func (fl Flags) Has(f Flags) bool { return fl&f == f }

// IsFunctionLike reports whether nodes of this kind take parameters.
func (k Kind) IsFunctionLike() bool {
	switch k {
	case ArrowFunction, Function, Method:
		return true

	default:
		return false
	}
}
