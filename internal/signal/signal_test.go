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

package signal_test

import (
	"testing"

	. "fillmore-labs.com/signalcall/internal/signal"
)

func TestIsType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typeName string
		want     bool
	}{
		{"Signal<number>", true},
		{"WritableSignal<string>", true},
		{"InputSignal<boolean | undefined>", true},
		{"WritableSignal<Map<string, Signal<number>>>", true},
		{"Signal", true},
		{"signal<number>", false},
		{"ModelSignal<number>", false},
		{"Signals<number>", false},
		{"<number>", false},
		{"", false},
		{"Array<Signal<number>>", false},
		{"() => Signal<number>", false},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			t.Parallel()

			if got := IsType(tt.typeName); got != tt.want {
				t.Errorf("IsType(%q) = %v, want %v", tt.typeName, got, tt.want)
			}
		})
	}
}

func TestIsFactory(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"signal", "computed", "input", "linkedSignal"} {
		if !IsFactory(name) {
			t.Errorf("IsFactory(%q) = false, want true", name)
		}
	}

	for _, name := range []string{"effect", "untracked", "Signal", ""} {
		if IsFactory(name) {
			t.Errorf("IsFactory(%q) = true, want false", name)
		}
	}
}
