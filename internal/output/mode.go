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

package output

import (
	"fmt"
	"strings"
)

// Format specifies the diagnostic output format.
type Format uint8

const (
	// FormatText prints one diagnostic per line.
	FormatText Format = iota

	// FormatJSON prints a JSON array of diagnostics.
	FormatJSON
)

// MarshalText implements [encoding.TextMarshaler].
func (o Format) MarshalText() ([]byte, error) {
	switch o {
	case FormatText:
		return []byte("text"), nil

	case FormatJSON:
		return []byte("json"), nil

	default:
		return nil, fmt.Errorf("unknown output format %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Format) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "text":
		*o = FormatText

	case "json":
		*o = FormatJSON

	default:
		return fmt.Errorf("unknown output format %q", string(text))
	}

	return nil
}

// String implements [pflag.Value].
func (o Format) String() string { return marshalString(o) }

// Set implements [pflag.Value].
func (o *Format) Set(s string) error { return o.UnmarshalText([]byte(s)) }

// Type implements [pflag.Value].
func (o Format) Type() string { return "format" }

// ColorMode specifies when text output is colored.
type ColorMode uint8

const (
	// ColorAuto colors output written to a terminal.
	ColorAuto ColorMode = iota

	// ColorOn always colors output.
	ColorOn

	// ColorOff never colors output.
	ColorOff
)

// MarshalText implements [encoding.TextMarshaler].
func (o ColorMode) MarshalText() ([]byte, error) {
	switch o {
	case ColorAuto:
		return []byte("auto"), nil

	case ColorOn:
		return []byte("on"), nil

	case ColorOff:
		return []byte("off"), nil

	default:
		return nil, fmt.Errorf("unknown color mode %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *ColorMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "auto":
		*o = ColorAuto

	case "on", "true", "always":
		*o = ColorOn

	case "off", "false", "never":
		*o = ColorOff

	default:
		return fmt.Errorf("unknown color mode %q", string(text))
	}

	return nil
}

// String implements [pflag.Value].
func (o ColorMode) String() string { return marshalString(o) }

// Set implements [pflag.Value].
func (o *ColorMode) Set(s string) error { return o.UnmarshalText([]byte(s)) }

// Type implements [pflag.Value].
func (o ColorMode) Type() string { return "mode" }

func marshalString(m interface{ MarshalText() ([]byte, error) }) string {
	text, err := m.MarshalText()
	if err != nil {
		return err.Error()
	}

	return string(text)
}
