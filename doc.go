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

// Package multidiff aligns any number of sequences with each other.
//
// The main function is [Merge]. It takes K sequences and produces a single sequence of entries,
// where each entry holds a value and its [Provenance], the set of inputs the value appears in.
// The result has the following properties:
//
//   - Filtering the result for entries that appear in input i yields input i (see [Filter]).
//   - Values that are shared between inputs are merged into a single entry where possible. The
//     result is never shorter than the longest input and never longer than all inputs combined.
//
// For two inputs, this is equivalent to a diff: entries that appear in both inputs are matches,
// and entries that appear in only one are deletions or insertions. For example, merging "aab",
// "baa", "bc", and "abc" results in:
//
//	| Value | Appears in | Idx 0 | Idx 1 | Idx 2 | Idx 3 |
//	|-------|------------|-------|-------|-------|-------|
//	| b     | 1, 2       | -     | 0     | 0     | -     |
//	| a     | 0, 1       | 0     | 1     | -     | -     |
//	| a     | 0, 1, 3    | 1     | 2     | -     | 0     |
//	| b     | 0, 3       | 2     | -     | -     | 1     |
//	| c     | 2, 3       | -     | -     | 1     | 2     |
//
// The Idx columns are computed by [Indexes]. They hold the position of the value in the respective
// input.
//
// The inputs are folded into the result one by one, from first to last. Every step aligns the
// result so far with the next input using a longest common subsequence. The result depends on the
// order of the inputs.
//
// Note: For a line-by-line merge of text, please see [znkr.io/multidiff/textmerge].
//
// [znkr.io/multidiff/textmerge]: https://pkg.go.dev/znkr.io/multidiff/textmerge
package multidiff
