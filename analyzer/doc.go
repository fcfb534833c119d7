// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package analyzer implements the signalcall checker for TypeScript sources.
//
// # Overview
//
// An Angular signal is a reactive value holder that is read by calling it. Passing or
// storing the signal object where its value was intended is a common mistake that type
// checking does not catch when the target accepts arbitrary values.
//
// # Example
//
// Before:
//
//	export class Counter {
//	  count = signal(0);
//
//	  log() {
//	    console.log(this.count);  // logs the signal object
//	  }
//	}
//
// After:
//
//	log() {
//	  console.log(this.count());
//	}
//
// # Exempt Usages
//
// Calling the signal, calling methods like set or update on it, passing it to untracked,
// storing it in class fields and passing it to parameters typed as a signal or any
// are never reported.
package analyzer
