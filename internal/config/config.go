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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// multidiff.Option.
package config

// Mode selects the algorithm used to align two sequences.
type Mode int

const (
	// Align using a table of longest common subsequence lengths. This is quadratic in time and
	// memory, but it breaks ties in a well defined way. Tables above a fixed size fall back to
	// ModeLinear.
	ModeTable Mode = iota

	// Align using the linear space variant of Myers' algorithm. The alignment is still optimal,
	// but ties are broken differently from ModeTable.
	ModeLinear
)

// ColorConfig holds the ANSI escape sequences used to color merged text. An empty string disables
// coloring for that kind of line.
type ColorConfig struct {
	Shared  string // Lines present in all inputs.
	Partial string // Lines present in more than one, but not all inputs.
	Unique  string // Lines present in exactly one input.
}

// Config collects all configurable parameters for merge functions in this module.
type Config struct {
	// Alignment algorithm.
	Mode Mode

	// If set, textmerge colors its output.
	Color bool

	// Colors to use if Color is set.
	Colors ColorConfig
}

// DefaultColors are the colors used when coloring is enabled without further configuration.
var DefaultColors = ColorConfig{
	Shared:  "",
	Partial: "\033[33m",
	Unique:  "\033[36m",
}

// Default is the default configuration.
var Default = Config{
	Mode:   ModeTable,
	Color:  false,
	Colors: DefaultColors,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Linear Flag = 1 << iota
	Color
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Linear:
		return "multidiff.Linear"
	case Color:
		return "textmerge.TerminalColors"
	default:
		panic("never reached")
	}
}
