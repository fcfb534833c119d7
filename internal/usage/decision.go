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

package usage

// Decision is the verdict for a signal-typed occurrence.
type Decision uint8

//go:generate go tool stringer -type Decision,Context -linecomment -output decision_string.go
const (
	// Exempt means the occurrence is a sanctioned use of the signal object.
	Exempt Decision = iota // exempt

	// Violation means the signal object is used where its value was intended.
	Violation // violation
)

// Context is the syntactic category of an occurrence, one per row of the decision table.
type Context uint8

const (
	// ContextOther is any shape without a rule, exempt by default.
	ContextOther Context = iota // other

	// ContextAssignment is an occurrence directly inside an assignment (sig = v).
	ContextAssignment // assignment

	// ContextMemberDefinition is a member chain initializing a class field.
	ContextMemberDefinition // member-definition

	// ContextMemberFactoryAssignment is a member chain assigned a freshly constructed signal
	// (this.sig = signal(v)).
	ContextMemberFactoryAssignment // member-factory-assignment

	// ContextMemberSignalProperty is a member chain stored in an object literal property
	// whose key is signal-typed.
	ContextMemberSignalProperty // member-signal-property

	// ContextMemberCall is a member chain ending in a call, either as callee or argument.
	ContextMemberCall // member-call

	// ContextMemberOther is a member chain ending in a plain read.
	ContextMemberOther // member-other

	// ContextInvocation is the occurrence being called (sig()).
	ContextInvocation // invocation

	// ContextUntracked is an argument to untracked.
	ContextUntracked // untracked

	// ContextArgument is an argument to any other call.
	ContextArgument // argument

	// ContextArrowBody is the bare expression body of an arrow function (() => sig).
	ContextArrowBody // arrow-body

	// ContextAlias is the bare initializer of a variable (const y = sig).
	ContextAlias // alias
)
