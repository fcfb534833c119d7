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

package analyzer

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"fillmore-labs.com/signalcall/internal/config"
)

type boolValue[F any, B boolFlag[F]] struct {
	flags B
	value F
}

type boolFlag[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

var _ pflag.Value = boolValue[config.Config, *config.BitMask[config.Config]]{}

// Set implements [pflag.Value].
func (f boolValue[_, B]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [pflag.Value].
func (f boolValue[_, B]) String() string {
	var null B
	if f.flags == null {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

// Type implements [pflag.Value].
func (f boolValue[_, _]) Type() string { return "bool" }

// IsBoolFlag marks the value as a boolean flag, allowing "--flag" without an argument.
func (f boolValue[_, _]) IsBoolFlag() bool { return true }

// parseBool accepts the values of [strconv.ParseBool] and "on" / "off" in any case.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on":
		return true, nil

	case "off":
		return false, nil

	default:
		return strconv.ParseBool(s)
	}
}
