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

// Builder assembles a [Tree]. Nodes must be added in pre-order.
type Builder struct {
	tree *Tree
}

// NewBuilder starts a new [Tree] for the given source.
func NewBuilder(filename string, src []byte) *Builder {
	return &Builder{tree: &Tree{Filename: filename, Src: src}}
}

// Add appends a node as the next child of parent in the given role and returns its ID.
// Pass [NoNode] as parent for the root.
func (b *Builder) Add(parent NodeID, edge Edge, n Node) NodeID {
	t := b.tree
	id := NodeID(len(t.nodes))

	n.Parent, n.Edge, n.Index, n.Children = parent, edge, 0, nil

	if parent.Valid() {
		p := &t.nodes[parent]
		for _, c := range p.Children {
			if t.nodes[c].Edge == edge {
				n.Index++
			}
		}

		p.Children = append(p.Children, id)
	}

	t.nodes = append(t.nodes, n)

	return id
}

// Node gives access to an already added node for late updates.
func (b *Builder) Node(id NodeID) *Node {
	return &b.tree.nodes[id]
}

// AddComment records a source comment.
func (b *Builder) AddComment(c Comment) {
	b.tree.Comments = append(b.tree.Comments, c)
}

// Tree returns the finished tree. The [Builder] must not be used afterwards.
func (b *Builder) Tree() *Tree {
	t := b.tree
	b.tree = nil

	return t
}
