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
	"fillmore-labs.com/signalcall/internal/signal"
	"fillmore-labs.com/signalcall/internal/tsast"
)

// CheckArgument decides an occurrence whose member chain (possibly empty) ends in call.
//
// A chain in callee position is a method call on the signal or its invocation and is exempt.
// In argument position the first call signature of the callee decides: parameters typed as
// a signal or as any receive the signal object on purpose, every other declared type expects
// the signal's value. Missing signatures or parameters never produce a violation.
func (c *Classifier) CheckArgument(call, occurrence tsast.NodeID, chain []tsast.NodeID) Decision {
	t := c.tree

	callee := t.Child(call, tsast.EdgeCallee)
	if isUntracked(t, callee) {
		return Exempt
	}

	edge, position := t.ParentEdge(chainTop(occurrence, chain))
	if edge != tsast.EdgeArgument || c.oracle == nil {
		return Exempt
	}

	signatures := c.oracle.CallSignatures(callee)
	if len(signatures) == 0 {
		return Exempt
	}

	// Overloads beyond the first are not considered.
	param, ok := signatures[0].ParamAt(position)
	if !ok || param.Type == "" {
		return Exempt
	}

	if signal.IsType(param.Type) || param.Type == signal.AnyType {
		return Exempt
	}

	return Violation
}
