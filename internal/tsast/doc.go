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

// Package tsast holds a read-only, arena-allocated syntax tree for TypeScript sources.
//
// Nodes live in a single slice indexed by [NodeID]. Every node records its parent and the
// [Edge] it occupies in that parent, so the tree can be navigated upwards without owning
// pointers. Nodes are stored in pre-order: a parent always precedes its children and siblings
// appear in source order.
//
// The node kinds form a closed set shaped after ESTree, which is what the signal checker
// reasons about. Anything outside that set is represented as [Other].
package tsast
