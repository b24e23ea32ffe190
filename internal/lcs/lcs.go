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

// Package lcs aligns two sequences using a table of longest common subsequence lengths.
//
// The table is filled front to back: tbl[i][j] is the length of the longest common subsequence of
// x[:i] and y[:j]. The alignment is then recovered by walking the table back from the end. Many
// alignments have the same length, the walk picks one deterministically:
//
//   - If the length doesn't change when dropping the last element of y, that element is not
//     aligned.
//   - Otherwise, if the length doesn't change when dropping the last element of x, that element is
//     not aligned.
//   - Otherwise, the last elements of x and y are aligned with each other.
//
// The effect is that elements are aligned as early as possible, with y taking precedence over x.
// Time and memory complexity are O(NM), callers are expected to bound the size of the table.
package lcs

// Align aligns x[smin:smax] and y[tmin:tmax] and marks all elements that are not part of the
// alignment in rx and ry respectively.
//
// Important: eq is always called with an element of x as first and an element of y as second
// argument.
func Align[T any](x, y []T, eq func(a, b T) bool, rx, ry []bool, smin, smax, tmin, tmax int) {
	n, m := smax-smin, tmax-tmin
	w := m + 1
	tbl := make([]int, (n+1)*w)
	for i := 1; i <= n; i++ {
		row, prev := tbl[i*w:(i+1)*w], tbl[(i-1)*w:i*w]
		for j := 1; j <= m; j++ {
			if eq(x[smin+i-1], y[tmin+j-1]) {
				row[j] = prev[j-1] + 1
			} else {
				row[j] = max(row[j-1], prev[j])
			}
		}
	}

	// Everything is unaligned until proven otherwise.
	for s := smin; s < smax; s++ {
		rx[s] = true
	}
	for t := tmin; t < tmax; t++ {
		ry[t] = true
	}

	for i, j := n, m; i > 0 && j > 0; {
		cur := tbl[i*w+j]
		if cur == tbl[i*w+j-1] {
			j--
			continue
		}
		i--
		if cur == tbl[i*w+j] {
			continue
		}
		j--
		rx[smin+i] = false
		ry[tmin+j] = false
	}
}

// Len returns the length of the longest common subsequence of x and y.
func Len[T any](x, y []T, eq func(a, b T) bool) int {
	// Only two rows of the table are needed for the length.
	prev, row := make([]int, len(y)+1), make([]int, len(y)+1)
	for i := range x {
		for j := range y {
			if eq(x[i], y[j]) {
				row[j+1] = prev[j] + 1
			} else {
				row[j+1] = max(row[j], prev[j+1])
			}
		}
		prev, row = row, prev
	}
	return prev[len(y)]
}
