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

// Package rvecs contains functions to work with the result vectors, the internal representation
// that's used by the alignment algorithms and is then translated to a user facing API.
//
// For inputs x and y, the result vectors are two slices rx and ry with len(rx) = len(x)+1 and
// len(ry) = len(y)+1. If rx[s] is set, x[s] is not part of the alignment (it's only present in x),
// and the same is true for ry[t] and y[t]. All other elements are aligned in order. The last
// element of both vectors is a border that's never set, it simplifies iterating over the vectors.
package rvecs

import "iter"

// Kind describes the kind of a run.
type Kind int

const (
	Match  Kind = iota // Elements present in both inputs.
	Delete             // Elements present only in x.
	Insert             // Elements present only in y.
)

// Run describes a maximal sequence of consecutive elements of the same kind.
type Run struct {
	Kind Kind
	Len  int
}

// Make allocates result vectors for inputs of length n and m with a single allocation.
func Make(n, m int) (rx, ry []bool) {
	r := make([]bool, n+m+2)
	rx = r[: n+1 : n+1]
	ry = r[n+1:]
	return
}

// Runs returns the runs described by rx and ry in order.
//
// Between two matches, all deletions come before all insertions. Consecutive runs never have the
// same kind.
func Runs(rx, ry []bool) iter.Seq[Run] {
	return func(yield func(Run) bool) {
		n, m := len(rx)-1, len(ry)-1
		for s, t := 0, 0; s < n || t < m; {
			if l := count(rx[s:n], true); l > 0 {
				if !yield(Run{Delete, l}) {
					return
				}
				s += l
			}
			if l := count(ry[t:m], true); l > 0 {
				if !yield(Run{Insert, l}) {
					return
				}
				t += l
			}
			l := 0
			for s+l < n && t+l < m && !rx[s+l] && !ry[t+l] {
				l++
			}
			if l > 0 {
				if !yield(Run{Match, l}) {
					return
				}
				s += l
				t += l
			}
		}
	}
}

// Inserts returns the number of elements only present in y.
func Inserts(ry []bool) int {
	n := 0
	for _, r := range ry {
		if r {
			n++
		}
	}
	return n
}

// count returns the length of the prefix of r where all elements are equal to v.
func count(r []bool, v bool) int {
	for i, e := range r {
		if e != v {
			return i
		}
	}
	return len(r)
}
