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

// Package myers aligns two sequences with the linear space variant of Myers' algorithm.
//
// The implementation follows section 4.2 of the paper: the middle snake of an optimal path is
// found by searching forwards from the top left corner and backwards from the bottom right corner
// at the same time, and the problem is then split into the two rectangles before and after the
// middle snake. No heuristics are applied, the result is always an optimal alignment (a longest
// common subsequence of both inputs).
//
// The runtime is O(ND) where N is the sum of the length of both inputs and D is the number of
// unaligned elements. Memory is O(N).
//
// # Edit graph
//
// For x = "ABCABBA" and y = "CBABAC" every possible alignment corresponds to a path from the top
// left (0,0) to the bottom right (7,6) of the following graph:
//
//	(0,0)   A   B   C   A   B   B   A
//	    ┌───┬───┬───┬───┬───┬───┬───┐ 0
//	    │   │   │ ╲ │   │   │   │   │
//	 C  ├───┼───┼───┼───┼───┼───┼───┤ 1
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 2
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 3
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 4
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 5
//	    │   │   │ ╲ │   │   │   │   │
//	 C  └───┴───┴───┴───┴───┴───┴───┘
//	    0   1   2   3   4   5   6     (7,6)
//
// A horizontal edge leaves an element of x unaligned, a vertical edge leaves an element of y
// unaligned, and a diagonal edge (only present where both elements are equal) aligns them. With a
// cost of 1 for horizontal and vertical edges and 0 for diagonals, a minimum cost path is an
// optimal alignment.
//
// We use s and t for the horizontal and vertical coordinates and k = s - t for diagonals. A d-path
// is a path with exactly d non-diagonal edges. The facts the algorithm relies on are:
//
//   - A d-path ends on one of the diagonals -d, -d+2, ..., d-2, d.
//   - The furthest reaching d-path on diagonal k consists of the furthest reaching (d-1)-path on
//     diagonal k-1 or k+1, followed by a horizontal or vertical edge, followed by as many diagonal
//     edges as possible.
//   - There is a d-path from (0,0) to (N,M) if and only if there is a ⌈d/2⌉-path from (0,0) and
//     a ⌊d/2⌋-path to (N,M) that overlap on a diagonal.
//
// # References
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
package myers
