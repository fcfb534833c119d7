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

import "fillmore-labs.com/signalcall/internal/tsast"

// ResolveOuter walks from an occurrence through the enclosing member accesses and returns
// the first ancestor that is not a member access, together with the member accesses passed,
// innermost first.
//
// The outer node is [tsast.NoNode] when the occurrence has no parent.
func ResolveOuter(t *tsast.Tree, occurrence tsast.NodeID) (outer tsast.NodeID, chain []tsast.NodeID) {
	outer = t.Parent(occurrence)
	for t.Kind(outer) == tsast.Member {
		chain = append(chain, outer)
		outer = t.Parent(outer)
	}

	return outer, chain
}

// chainTop returns the outermost node of an occurrence's member chain.
func chainTop(occurrence tsast.NodeID, chain []tsast.NodeID) tsast.NodeID {
	if len(chain) == 0 {
		return occurrence
	}

	return chain[len(chain)-1]
}
