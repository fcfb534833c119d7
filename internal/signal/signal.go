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

// Package signal knows the Angular signal API surface the checker reasons about.
package signal

import "strings"

// IsType reports whether a canonical type name denotes a signal, like "WritableSignal<string>".
//
// The name is cut at its first '<' and the head is compared case-sensitively against
// the recognized signal types. An empty head is never a signal.
func IsType(typeName string) bool {
	head, _, _ := strings.Cut(typeName, "<")

	switch head {
	case "Signal", "WritableSignal", "InputSignal":
		return true

	default:
		return false
	}
}

// IsFactory reports whether name is a signal-construction function.
func IsFactory(name string) bool {
	switch name {
	case "signal", "computed", "input", "linkedSignal":
		return true

	default:
		return false
	}
}

// Untracked is the name of the function reading signals without tracking them.
const Untracked = "untracked"

// AnyType is the unconstrained parameter type.
const AnyType = "any"
