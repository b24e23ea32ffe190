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

package multidiff

// Absent marks an input that an entry doesn't appear in, in the result of [Indexes].
const Absent = -1

// Indexes returns the position of every entry in each of the k inputs it was merged from.
//
// The result has one row per entry and one column per input. Column i holds the index of the entry
// in input i, or [Absent] if the entry doesn't appear in input i. This makes it possible to look
// up the original value in every input, for example to merge nested structures recursively.
//
// All provenance indices in entries must be less than k.
func Indexes[T any](entries []Entry[T], k int) [][]int {
	next := make([]int, k) // next position in each input
	buf := make([]int, len(entries)*k)
	out := make([][]int, len(entries))
	for j, e := range entries {
		row := buf[j*k : (j+1)*k : (j+1)*k]
		for i := range row {
			row[i] = Absent
		}
		for i := range e.Provenance.All() {
			row[i] = next[i]
			next[i]++
		}
		out[j] = row
	}
	return out
}

// MergeIndexes merges seqs like [Merge] and returns the positions of every entry in every input
// like [Indexes].
//
// The following option is supported: [Linear]
func MergeIndexes[T comparable](seqs [][]T, opts ...Option) [][]int {
	return Indexes(Merge(seqs, opts...), len(seqs))
}

// MergeIndexesFunc merges seqs like [MergeFunc] and returns the positions of every entry in every
// input like [Indexes].
//
// The following option is supported: [Linear]
func MergeIndexesFunc[T any](seqs [][]T, eq func(old, new T) bool, opts ...Option) [][]int {
	return Indexes(MergeFunc(seqs, eq, opts...), len(seqs))
}

// Filter returns the values of all entries that appear in input i, in order. For a merge result,
// this is input i.
func Filter[T any](entries []Entry[T], i int) []T {
	var out []T
	for _, e := range entries {
		if e.Provenance.Contains(i) {
			out = append(out, e.Value)
		}
	}
	return out
}
