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

package declared

import (
	"strings"

	"fillmore-labs.com/signalcall/internal/oracle"
	"fillmore-labs.com/signalcall/internal/typestr"
)

// bind maps type parameters to arguments by position.
func bind(params, args []string) map[string]string {
	bindings := make(map[string]string, len(params))

	for i, p := range params {
		if i < len(args) {
			bindings[p] = args[i]
		}
	}

	return bindings
}

// substituteFunc applies bindings to the parameter and result types of f.
func substituteFunc(f typestr.Func, bindings map[string]string) typestr.Func {
	if len(bindings) == 0 {
		return f
	}

	if len(f.Params) > 0 {
		params := make([]oracle.Param, len(f.Params))
		for i, p := range f.Params {
			p.Type = typestr.Substitute(p.Type, bindings)
			params[i] = p
		}

		f.Params = params
	}

	f.Result = typestr.Substitute(f.Result, bindings)

	return f
}

func oracleParam(name, typ string, rest bool) oracle.Param {
	return oracle.Param{Name: name, Type: typ, Rest: rest}
}

func joinTypes(types []string) string {
	return strings.Join(types, ", ")
}
