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

package oracle_test

import (
	"testing"

	. "fillmore-labs.com/signalcall/internal/oracle"
)

func TestSignature_ParamAt(t *testing.T) {
	t.Parallel()

	fixed := Signature{Params: []Param{{Name: "a", Type: "number"}, {Name: "b", Type: "Signal<number>"}}}
	rest := Signature{Params: []Param{{Name: "fmt", Type: "string"}, {Name: "data", Type: "any[]", Rest: true}}}

	tests := []struct {
		name     string
		sig      Signature
		pos      int
		wantType string
		wantOK   bool
	}{
		{"first", fixed, 0, "number", true},
		{"second", fixed, 1, "Signal<number>", true},
		{"beyond", fixed, 2, "", false},
		{"negative", fixed, -1, "", false},
		{"rest_declared", rest, 1, "any[]", true},
		{"rest_spread", rest, 5, "any[]", true},
		{"empty", Signature{}, 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, ok := tt.sig.ParamAt(tt.pos)
			if ok != tt.wantOK || p.Type != tt.wantType {
				t.Errorf("ParamAt(%d) = %q, %v, want %q, %v", tt.pos, p.Type, ok, tt.wantType, tt.wantOK)
			}
		})
	}
}
