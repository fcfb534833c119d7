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

// Site is the categorized syntactic surrounding of an occurrence.
type Site struct {
	Context Context

	// Parent is the immediate parent of the occurrence.
	Parent tsast.NodeID

	// Outer is the first non-member ancestor. For direct call contexts it is the call.
	Outer tsast.NodeID

	// Chain holds the member accesses between the occurrence and Outer, innermost first.
	Chain []tsast.NodeID
}
