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

import (
	"fillmore-labs.com/signalcall/internal/oracle"
	"fillmore-labs.com/signalcall/internal/signal"
	"fillmore-labs.com/signalcall/internal/tsast"
)

// Classifier decides whether signal-typed occurrences in one tree are violations.
type Classifier struct {
	tree   *tsast.Tree
	oracle oracle.Oracle
}

// NewClassifier creates a [Classifier] for the given tree, resolving types through o.
// A nil oracle disables the analysis: no occurrence is considered signal-typed.
func NewClassifier(t *tsast.Tree, o oracle.Oracle) *Classifier {
	return &Classifier{tree: t, oracle: o}
}

// IsSignal reports whether the resolved type of a node is a signal type.
func (c *Classifier) IsSignal(node tsast.NodeID) bool {
	if c.oracle == nil {
		return false
	}

	typeName, ok := c.oracle.TypeOf(node)

	return ok && signal.IsType(typeName)
}

// Classify returns the decision for a signal-typed occurrence.
func (c *Classifier) Classify(occurrence tsast.NodeID) Decision {
	return c.Decide(occurrence, c.Categorize(occurrence))
}

// Categorize determines the [Site] of an occurrence.
func (c *Classifier) Categorize(occurrence tsast.NodeID) Site {
	t := c.tree
	parent := t.Parent(occurrence)
	site := Site{Context: ContextOther, Parent: parent, Outer: parent}

	switch t.Kind(parent) {
	case tsast.Assignment:
		site.Context = ContextAssignment

	case tsast.Member:
		site.Outer, site.Chain = ResolveOuter(t, occurrence)
		site.Context = c.memberContext(site.Outer)

	case tsast.Call:
		switch callee := t.Child(parent, tsast.EdgeCallee); {
		case callee == occurrence:
			site.Context = ContextInvocation

		case isUntracked(t, callee):
			site.Context = ContextUntracked

		default:
			if edge, _ := t.ParentEdge(occurrence); edge == tsast.EdgeArgument {
				site.Context = ContextArgument
			}
		}

	case tsast.ArrowFunction:
		if edge, _ := t.ParentEdge(occurrence); edge == tsast.EdgeBody {
			site.Context = ContextArrowBody
		}

	case tsast.VariableDeclarator:
		if edge, _ := t.ParentEdge(occurrence); edge == tsast.EdgeInit {
			site.Context = ContextAlias
		}
	}

	return site
}

// memberContext categorizes a member chain by its outer node.
func (c *Classifier) memberContext(outer tsast.NodeID) Context {
	t := c.tree

	switch t.Kind(outer) {
	case tsast.PropertyDefinition:
		return ContextMemberDefinition

	case tsast.Assignment:
		if isFactoryCall(t, t.Child(outer, tsast.EdgeRight)) {
			return ContextMemberFactoryAssignment
		}

	case tsast.Property:
		if key := t.Child(outer, tsast.EdgeKey); key.Valid() && c.IsSignal(key) {
			return ContextMemberSignalProperty
		}

	case tsast.Call:
		return ContextMemberCall
	}

	return ContextMemberOther
}

// Decide maps a categorized [Site] to a [Decision].
func (c *Classifier) Decide(occurrence tsast.NodeID, site Site) Decision {
	switch site.Context {
	case ContextAssignment,
		ContextMemberOther,
		ContextArrowBody,
		ContextAlias:
		return Violation

	case ContextMemberCall,
		ContextArgument:
		return c.CheckArgument(site.Outer, occurrence, site.Chain)

	default:
		return Exempt
	}
}

// isFactoryCall reports whether node calls a signal-construction function by name.
func isFactoryCall(t *tsast.Tree, node tsast.NodeID) bool {
	if t.Kind(node) != tsast.Call {
		return false
	}

	callee := t.Child(node, tsast.EdgeCallee)

	return t.Kind(callee) == tsast.Identifier && signal.IsFactory(t.Name(callee))
}

// isUntracked reports whether callee names the untracked escape.
func isUntracked(t *tsast.Tree, callee tsast.NodeID) bool {
	return t.Kind(callee) == tsast.Identifier && t.Name(callee) == signal.Untracked
}
