// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package color provides options to configure the colors used by textmerge.TerminalColors.
//
// All options take ANSI SGR parameters, e.g. Unique(1, 32) colors lines unique to one input in
// bold green. Calling an option without parameters resets the color for that kind of line.
package color

import (
	"fmt"
	"strings"

	"znkr.io/multidiff/internal/config"
)

// A Option makes it possible to configure custom colors in textmerge.TerminalColors.
type Option func(*config.ColorConfig)

// Shared colors lines that appear in all inputs.
func Shared(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Shared = code
	}
}

// Partial colors lines that appear in more than one, but not in all inputs.
func Partial(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Partial = code
	}
}

// Unique colors lines that appear in exactly one input.
func Unique(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Unique = code
	}
}

func format(params []int) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
