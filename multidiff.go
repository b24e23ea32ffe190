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
	"slices"

	"znkr.io/multidiff/internal/align"
	"znkr.io/multidiff/internal/config"
	"znkr.io/multidiff/internal/rvecs"
)

// Op describes the kind of a [Run] in an alignment of two sequences.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Equal     Op = iota // Elements present in both sequences
	LeftOnly            // Elements only present in the left sequence
	RightOnly           // Elements only present in the right sequence
)

// Run describes a maximal sequence of consecutive elements of an alignment with the same [Op].
type Run struct {
	Op  Op
	Len int
}

var opOfKind = [...]Op{
	rvecs.Match:  Equal,
	rvecs.Delete: LeftOnly,
	rvecs.Insert: RightOnly,
}

// Entry is a single element of a merge result.
type Entry[T any] struct {
	Value      T          // Value of the input that introduced the entry first.
	Provenance Provenance // Inputs the entry appears in.
}

// Merge aligns the contents of all seqs with each other and returns the merged sequence.
//
// Every entry of the result holds a value and the inputs it appears in. Filtering the result for
// entries that appear in seqs[i] yields seqs[i] again. Values that appear in multiple inputs are
// merged into a single entry, the value is taken from the first input it appears in.
//
// If seqs is empty, the result is empty. If seqs contains a single input, the result is that input
// with every entry appearing in input 0.
//
// The inputs are merged one after another. Merging the same inputs in a different order can produce
// a different result.
//
// The following option is supported: [Linear]
func Merge[T comparable](seqs [][]T, opts ...Option) []Entry[T] {
	m := NewMerger[T](opts...)
	for _, seq := range seqs {
		m.Add(seq, equal[T])
	}
	return m.Entries()
}

// MergeFunc aligns the contents of all seqs with each other using the provided equality comparison
// and returns the merged sequence.
//
// The equality comparison is always called with a value from the result so far as first argument
// (old) and a value from the input being merged as second argument (new). It doesn't need to be
// structural equality, it's fine to ignore parts of a value that are merged separately.
//
// See [Merge] for a description of the result.
//
// The following option is supported: [Linear]
func MergeFunc[T any](seqs [][]T, eq func(old, new T) bool, opts ...Option) []Entry[T] {
	m := NewMerger[T](opts...)
	for _, seq := range seqs {
		m.Add(seq, eq)
	}
	return m.Entries()
}

// MergeSequences aligns the contents of all seqs with each other and returns the merged sequence.
//
// The equality comparison used to merge seqs[i] is seqs[i].Equal. See [MergeFunc] for how it's
// called and [Merge] for a description of the result.
//
// The following option is supported: [Linear]
func MergeSequences[T any](seqs []Sequence[T], opts ...Option) []Entry[T] {
	m := NewMerger[T](opts...)
	for _, seq := range seqs {
		m.AddSequence(seq)
	}
	return m.Entries()
}

// Merger merges inputs incrementally. The result after adding a number of inputs is the same as
// calling [MergeFunc] with the same inputs.
//
// The zero value is ready to use with the default options.
type Merger[T any] struct {
	cfg config.Config
	n   int // number of inputs added so far
	acc []Entry[T]
}

// NewMerger returns a new Merger.
//
// The following option is supported: [Linear]
func NewMerger[T any](opts ...Option) *Merger[T] {
	return &Merger[T]{cfg: config.FromOptions(opts, config.Linear)}
}

// Add merges seq into the result. The new input has the index [Merger.Len] before the call.
//
// The equality comparison is called as described in [MergeFunc].
func (m *Merger[T]) Add(seq []T, eq func(old, new T) bool) {
	idx := m.n
	m.n++
	if idx == 0 {
		m.acc = make([]Entry[T], len(seq))
		for j, v := range seq {
			m.acc[j] = Entry[T]{v, NewProvenance(idx)}
		}
		return
	}
	m.acc = step(m.acc, seq, idx, eq, m.cfg)
}

// AddSequence merges seq into the result using seq.Equal as equality comparison.
func (m *Merger[T]) AddSequence(seq Sequence[T]) {
	vals := slices.AppendSeq(make([]T, 0, seq.Len()), seq.All())
	m.Add(vals, seq.Equal)
}

// Len returns the number of inputs merged so far.
func (m *Merger[T]) Len() int { return m.n }

// Entries returns the result so far.
//
// The returned slice is not changed by subsequent calls to [Merger.Add], but it must not be
// modified by the caller either.
func (m *Merger[T]) Entries() []Entry[T] { return m.acc }

// side tags the elements that take part in the alignment of a merge step.
type side uint8

const (
	accumulated side = iota // An entry of the result so far.
	incoming                // An element of the input being merged.
)

// element refers to a value on either side of a merge step.
type element struct {
	side side
	idx  int
}

type stepper[T any] struct {
	acc []Entry[T]
	seq []T
	eq  func(old, new T) bool
}

// equal compares elements across sides. The aligner never compares two elements of the same side.
func (st *stepper[T]) equal(a, b element) bool {
	switch {
	case a.side == accumulated && b.side == incoming:
		return st.eq(st.acc[a.idx].Value, st.seq[b.idx])
	case a.side == incoming && b.side == accumulated:
		return st.eq(st.acc[b.idx].Value, st.seq[a.idx])
	default:
		panic("never reached: comparing two elements from the same side")
	}
}

// step merges the input seq with index idx into acc and returns the new result.
func step[T any](acc []Entry[T], seq []T, idx int, eq func(old, new T) bool, cfg config.Config) []Entry[T] {
	x := make([]element, len(acc))
	for s := range x {
		x[s] = element{accumulated, s}
	}
	y := make([]element, len(seq))
	for t := range y {
		y[t] = element{incoming, t}
	}

	st := &stepper[T]{acc, seq, eq}
	rx, ry := align.Align(x, y, st.equal, cfg)

	next := make([]Entry[T], 0, len(acc)+rvecs.Inserts(ry))
	s, t := 0, 0
	for r := range rvecs.Runs(rx, ry) {
		switch r.Kind {
		case rvecs.Match:
			for range r.Len {
				e := acc[s]
				next = append(next, Entry[T]{e.Value, e.Provenance.Add(idx)})
				s++
				t++
			}
		case rvecs.Delete:
			next = append(next, acc[s:s+r.Len]...)
			s += r.Len
		case rvecs.Insert:
			for _, v := range seq[t : t+r.Len] {
				next = append(next, Entry[T]{v, NewProvenance(idx)})
			}
			t += r.Len
		default:
			panic("never reached")
		}
	}
	return next
}

// Align compares the contents of x and y and returns an optimal alignment as a sequence of runs.
//
// Replaying the runs against x and y reconstructs both: [Equal] and [LeftOnly] runs consume
// elements of x, [Equal] and [RightOnly] runs consume elements of y. The [Equal] runs form a
// longest common subsequence of x and y. Between two [Equal] runs, a [LeftOnly] run comes before
// a [RightOnly] run.
//
// The following option is supported: [Linear]
func Align[T comparable](x, y []T, opts ...Option) []Run {
	return AlignFunc(x, y, equal[T], opts...)
}

// AlignFunc compares the contents of x and y using the provided equality comparison and returns an
// optimal alignment as a sequence of runs.
//
// See [Align] for a description of the result. The equality comparison is always called with an
// element of x as first and an element of y as second argument.
//
// The following option is supported: [Linear]
func AlignFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) []Run {
	cfg := config.FromOptions(opts, config.Linear)
	rx, ry := align.Align(x, y, eq, cfg)
	var runs []Run
	for r := range rvecs.Runs(rx, ry) {
		runs = append(runs, Run{opOfKind[r.Kind], r.Len})
	}
	return runs
}

func equal[T comparable](a, b T) bool { return a == b }
