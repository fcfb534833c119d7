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

import (
	"iter"
	"slices"
)

// NodeID is the index of a [Node] in its [Tree].
type NodeID int32

// NoNode represents a missing node.
const NoNode NodeID = -1

// Valid checks if this ID refers to a node.
func (id NodeID) Valid() bool {
	return id != NoNode
}

// Node is a single syntax tree node.
type Node struct {
	Kind Kind

	// Name is the identifier text, the operator of an [Assignment] or the keyword of a [Declaration].
	Name string

	// Type is the normalized declared type annotation, the return type of a function-like node
	// or the type of a [Literal].
	Type string

	// TypeParams are the declared type parameter names of a function-like node, class or interface.
	TypeParams []string

	// TypeArgs are the explicit type arguments of a [Call] or [New].
	TypeArgs []string

	// Extends are the heritage types of a [Class] or [Interface].
	Extends []string

	Flags Flags

	// Start and End are byte offsets into the source.
	Start, End int

	Parent NodeID
	Edge   Edge

	// Index is the position among the parent's children with the same [Edge].
	Index int

	Children []NodeID
}

// Comment is a source comment.
type Comment struct {
	Text       string
	Start, End int
}

// Tree is an immutable syntax tree of one source file.
type Tree struct {
	Filename string
	Src      []byte
	Comments []Comment

	nodes []Node
}

// Root returns the root node, or [NoNode] for an empty tree.
func (t *Tree) Root() NodeID {
	if len(t.nodes) == 0 {
		return NoNode
	}

	return 0
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node with the given ID.
func (t *Tree) Node(id NodeID) *Node {
	return &t.nodes[id]
}

// Kind returns the kind of a node, [Other] for [NoNode].
func (t *Tree) Kind(id NodeID) Kind {
	if !id.Valid() {
		return Other
	}

	return t.nodes[id].Kind
}

// Name returns the name of a node, the empty string for [NoNode].
func (t *Tree) Name(id NodeID) string {
	if !id.Valid() {
		return ""
	}

	return t.nodes[id].Name
}

// Parent returns the parent of a node, [NoNode] for the root.
func (t *Tree) Parent(id NodeID) NodeID {
	if !id.Valid() {
		return NoNode
	}

	return t.nodes[id].Parent
}

// ParentEdge returns the role of a node in its parent and its index for list roles.
func (t *Tree) ParentEdge(id NodeID) (Edge, int) {
	if !id.Valid() {
		return NoEdge, -1
	}

	n := &t.nodes[id]

	return n.Edge, n.Index
}

// Child returns the first child with the given role, or [NoNode].
func (t *Tree) Child(id NodeID, edge Edge) NodeID {
	if !id.Valid() {
		return NoNode
	}

	for _, c := range t.nodes[id].Children {
		if t.nodes[c].Edge == edge {
			return c
		}
	}

	return NoNode
}

// ChildrenOf yields the children with the given role in source order.
func (t *Tree) ChildrenOf(id NodeID, edge Edge) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		if !id.Valid() {
			return
		}

		for _, c := range t.nodes[id].Children {
			if t.nodes[c].Edge != edge {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}

// ChildAt returns the child with the given role and index, or [NoNode].
func (t *Tree) ChildAt(id NodeID, edge Edge, index int) NodeID {
	for c := range t.ChildrenOf(id, edge) {
		if t.nodes[c].Index == index {
			return c
		}
	}

	return NoNode
}

// Count returns the number of children with the given role.
func (t *Tree) Count(id NodeID, edge Edge) int {
	n := 0
	for range t.ChildrenOf(id, edge) {
		n++
	}

	return n
}

// Ancestors yields the ancestors of a node, innermost first.
func (t *Tree) Ancestors(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for p := t.Parent(id); p.Valid(); p = t.nodes[p].Parent {
			if !yield(p) {
				return
			}
		}
	}
}

// Enclosing returns the innermost ancestor of one of the given kinds, or [NoNode].
func (t *Tree) Enclosing(id NodeID, kinds ...Kind) NodeID {
	for a := range t.Ancestors(id) {
		if slices.Contains(kinds, t.nodes[a].Kind) {
			return a
		}
	}

	return NoNode
}

// Preorder yields all nodes of the given kinds in pre-order. With no kinds, all nodes are yielded.
func (t *Tree) Preorder(kinds ...Kind) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for i := range t.nodes {
			if len(kinds) > 0 && !slices.Contains(kinds, t.nodes[i].Kind) {
				continue
			}

			if !yield(NodeID(i)) {
				return
			}
		}
	}
}

// Text returns the source text of a node.
func (t *Tree) Text(id NodeID) string {
	if !id.Valid() {
		return ""
	}

	n := &t.nodes[id]

	return string(t.Src[n.Start:n.End])
}
