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
	"context"
	_ "embed"
	"fmt"
	"sync"

	"fillmore-labs.com/signalcall/internal/tsast"
	"fillmore-labs.com/signalcall/internal/tsparse"
)

//go:embed prelude.d.ts
var preludeSource []byte

var loadPrelude = sync.OnceValues(func() (*tsast.Tree, error) {
	tree, err := tsparse.New().Parse(context.Background(), "prelude.d.ts", preludeSource)
	if err != nil {
		return nil, fmt.Errorf("load prelude: %w", err)
	}

	return tree, nil
})
