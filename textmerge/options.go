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

package textmerge

import (
	"znkr.io/multidiff"
	"znkr.io/multidiff/internal/config"
	"znkr.io/multidiff/textmerge/color"
)

// TerminalColors colors the output of [Combined] with ANSI escape sequences.
//
// By default, lines that appear in all inputs are not colored, lines that appear in exactly one
// input are cyan and all other lines are yellow. Use the options in package color to change that.
func TerminalColors(opts ...color.Option) multidiff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Color = true
		for _, opt := range opts {
			opt(&cfg.Colors)
		}
		return config.Color
	}
}
