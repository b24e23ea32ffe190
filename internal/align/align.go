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

// Package align computes optimal alignments of two sequences.
//
// This package selects the algorithm configured in config.Config and takes care of the parts that
// are shared by all algorithms: Allocating the result vectors, stripping a common prefix and
// suffix, and handling trivial inputs.
//
// The table aligner needs one cell per pair of elements. Inputs that would need more than
// maxTableCells cells are aligned in linear space instead, which keeps the peak memory bounded by
// the input lengths. The result is still optimal, but ties may be broken differently.
package align

import (
	"fmt"

	"znkr.io/multidiff/internal/config"
	"znkr.io/multidiff/internal/lcs"
	"znkr.io/multidiff/internal/myers"
	"znkr.io/multidiff/internal/rvecs"
)

// maxTableCells is the largest table the table aligner allocates (32 MiB on 64-bit platforms).
const maxTableCells = 1 << 22

// Align aligns x and y and returns the result vectors (see package rvecs).
//
// The alignment has the length of a longest common subsequence of x and y. The function eq is
// always called with an element of x as first and an element of y as second argument.
func Align[T any](x, y []T, eq func(a, b T) bool, cfg config.Config) (rx, ry []bool) {
	rx, ry = rvecs.Make(len(x), len(y))

	smin, smax, tmin, tmax := findChangeBounds(x, y, eq)
	if handleTrivialBounds(rx, ry, smin, smax, tmin, tmax) {
		return rx, ry
	}

	switch cfg.Mode {
	case config.ModeTable:
		if fitsTable(smax-smin, tmax-tmin) {
			lcs.Align(x, y, eq, rx, ry, smin, smax, tmin, tmax)
		} else {
			myers.Align(x, y, eq, rx, ry, smin, smax, tmin, tmax)
		}
	case config.ModeLinear:
		myers.Align(x, y, eq, rx, ry, smin, smax, tmin, tmax)
	default:
		panic(fmt.Sprintf("unknown mode: %v", cfg.Mode))
	}
	return rx, ry
}

// fitsTable reports whether an n by m table stays within maxTableCells. Both n and m are positive.
func fitsTable(n, m int) bool {
	return n <= maxTableCells/m
}

// findChangeBounds returns the upper and lower bounds for the changed portion of the inputs.
func findChangeBounds[T any](x, y []T, eq func(a, b T) bool) (smin, smax, tmin, tmax int) {
	smin, tmin = 0, 0
	smax, tmax = len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && eq(x[smin], y[tmin]) {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && eq(x[smax-1], y[tmax-1]) {
		smax--
		tmax--
	}

	return
}

// handleTrivialBounds handles trivial bounds. It returns true if the bounds are trivial.
func handleTrivialBounds(rx, ry []bool, smin, smax, tmin, tmax int) bool {
	switch {
	case smin != smax && tmin == tmax:
		for s := smin; s < smax; s++ {
			rx[s] = true
		}
		return true
	case smin == smax && tmin != tmax:
		for t := tmin; t < tmax; t++ {
			ry[t] = true
		}
		return true
	case smin == smax && tmin == tmax:
		return true
	default:
		return false
	}
}
