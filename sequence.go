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

import (
	"iter"
	"slices"
)

// Sequence is an ordered sequence of values with an equality comparison. It's used to merge
// collections that are not slices or that need an equality comparison per input.
type Sequence[T any] interface {
	// Len returns the number of values in the sequence.
	Len() int

	// All returns an iterator over all values in order. It must be possible to iterate more than
	// once.
	All() iter.Seq[T]

	// Equal compares a value from a merge result (old) with a value of this sequence (new).
	Equal(old, new T) bool
}

// Slice returns a [Sequence] for s that compares values using ==.
func Slice[T comparable](s []T) Sequence[T] {
	return sliceSeq[T]{s, equal[T]}
}

// SliceFunc returns a [Sequence] for s that compares values using eq.
func SliceFunc[T any](s []T, eq func(old, new T) bool) Sequence[T] {
	return sliceSeq[T]{s, eq}
}

type sliceSeq[T any] struct {
	s  []T
	eq func(old, new T) bool
}

func (s sliceSeq[T]) Len() int              { return len(s.s) }
func (s sliceSeq[T]) All() iter.Seq[T]      { return slices.Values(s.s) }
func (s sliceSeq[T]) Equal(old, new T) bool { return s.eq(old, new) }
